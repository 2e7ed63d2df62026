package main

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/skysail/audio"
	"github.com/lixenwraith/skysail/chart"
	"github.com/lixenwraith/skysail/config"
	"github.com/lixenwraith/skysail/event"
	"github.com/lixenwraith/skysail/logbook"
	"github.com/lixenwraith/skysail/parameter"
	"github.com/lixenwraith/skysail/telemetry"
)

// sinks are the event consumers attached to a voyage
type sinks struct {
	handlers []event.Handler
	track    *chart.Track

	book     *logbook.Logbook
	exporter *telemetry.Exporter
	player   *audio.SpeakerPlayer
}

// openSinks connects the configured journals in parallel
// Audio is opened only when a speaker is wanted and is never fatal
func openSinks(ctx context.Context, cfg *config.Config, log zerolog.Logger, voyageID string, epoch time.Time, speaker bool) (*sinks, error) {
	s := &sinks{track: chart.NewTrack(parameter.TrackSpacing)}
	s.handlers = append(s.handlers, s.track)

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Logbook.Enabled {
		g.Go(func() error {
			book, err := logbook.Open(cfg.Logbook.Path, log.With().Str("component", "logbook").Logger())
			if err != nil {
				return err
			}
			s.book = book
			return nil
		})
	}
	if cfg.Telemetry.Enabled {
		g.Go(func() error {
			exp, err := telemetry.NewExporter(gctx, cfg.Telemetry, log.With().Str("component", "telemetry").Logger())
			if err != nil {
				return err
			}
			s.exporter = exp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.Close()
		return nil, err
	}

	if s.book != nil {
		s.handlers = append(s.handlers, logbook.NewRecorder(s.book, voyageID))
	}
	if s.exporter != nil {
		s.handlers = append(s.handlers, telemetry.NewHandler(s.exporter, voyageID, cfg.Telemetry.Every, epoch))
	}

	if speaker && cfg.Audio.Enabled {
		p := audio.NewSpeakerPlayer()
		if err := p.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		} else {
			s.player = p
			s.handlers = append(s.handlers, audio.NewCues(p, cfg.Audio.Volume))
		}
	}
	return s, nil
}

func (s *sinks) Close() error {
	var errs []error
	if s.player != nil {
		s.player.Close()
	}
	if s.exporter != nil {
		errs = append(errs, s.exporter.Close())
	}
	if s.book != nil {
		errs = append(errs, s.book.Close())
	}
	return errors.Join(errs...)
}
