package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/skysail/chart"
	"github.com/lixenwraith/skysail/config"
	"github.com/lixenwraith/skysail/logging"
	"github.com/lixenwraith/skysail/metrics"
	"github.com/lixenwraith/skysail/sky"
	"github.com/lixenwraith/skysail/voyage"
)

var (
	configFlag   = flag.String("config", "", "Config file (toml, yaml or json)")
	headlessFlag = flag.Int("headless", 0, "Run N ticks at full throttle without a screen and print a summary")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skysail: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *headlessFlag, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "skysail: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and drives either the headless or the screen loop
func run(ctx context.Context, cfg *config.Config, headless int, out io.Writer) error {
	start := time.Now()
	interactive := headless <= 0

	logs, logFile, err := setupLogging(cfg, interactive, start)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	defer logs.Close()
	log := logs.Logger

	islands := sky.DefaultIslands()
	if cfg.Chart.Path != "" {
		if islands, err = chart.LoadIslandsFile(cfg.Chart.Path); err != nil {
			return err
		}
	}

	m, err := metrics.Global()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	voyageID := start.UTC().Format("20060102T150405")
	s, err := openSinks(ctx, cfg, log, voyageID, start, interactive)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Warn().Err(err).Msg("closing sinks")
		}
	}()

	v, err := voyage.New(cfg,
		voyage.WithLogging(logs),
		voyage.WithMetrics(m),
		voyage.WithIslands(islands),
		voyage.WithHandlers(s.handlers...),
	)
	if err != nil {
		return err
	}
	log.Info().Str("voyage", voyageID).Bool("interactive", interactive).Msg("voyage start")

	if !interactive {
		err = runHeadless(ctx, v, headless, s.track, out)
	} else {
		err = runScreen(ctx, v)
	}
	if err != nil {
		// An invalid transition means the navigator and voyage disagree, nothing to salvage
		log.Error().Err(err).Int64("tick", v.TickCount()).Msg("voyage aborted")
		return err
	}

	log.Info().
		Int64("ticks", v.TickCount()).
		Int("track", s.track.Len()).
		Msg("voyage end")
	return nil
}

// setupLogging keeps the console free while the screen owns the terminal
func setupLogging(cfg *config.Config, interactive bool, start time.Time) (*logging.Logging, *os.File, error) {
	opts := logging.Options{Level: cfg.Log.Level}
	if !interactive {
		opts.Console = os.Stderr
	}
	var file *os.File
	if cfg.Log.Dir != "" {
		f, err := logging.OpenFile(cfg.Log.Dir, "skysail", start)
		if err != nil {
			return nil, nil, err
		}
		file = f
		opts.File = f
	}
	if cfg.Log.Graylog.Enabled {
		opts.GraylogAddr = cfg.Log.Graylog.Address
	}
	logs, err := logging.New(opts)
	if err != nil {
		if file != nil {
			file.Close()
		}
		return nil, nil, err
	}
	return logs, file, nil
}

// crashGuard restores the terminal before a panic escapes
func crashGuard(reset func()) {
	if r := recover(); r != nil {
		reset()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSKYSAIL CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}
