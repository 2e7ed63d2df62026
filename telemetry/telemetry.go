// Package telemetry exports boat samples to InfluxDB.
// When the server cannot be reached at startup, samples go to a gzip
// line-protocol backup file instead.
package telemetry

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	influxdb2_api "github.com/influxdata/influxdb-client-go/v2/api"
	influxdb2_write "github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/skysail/config"
)

// Measurement is the point name for boat samples
const Measurement = "boat"

const writeTimeout = 2 * time.Second

var ErrUnavailable = errors.New("telemetry unavailable")

// Exporter writes points to InfluxDB or the backup file
type Exporter struct {
	client influxdb2.Client
	writer influxdb2_api.WriteAPIBlocking

	backup     *gzip.Writer
	backupFile *os.File

	log zerolog.Logger
}

// NewExporter connects to the configured server, falling back to cfg.Backup
func NewExporter(ctx context.Context, cfg config.TelemetryConfig, log zerolog.Logger) (*Exporter, error) {
	e := &Exporter{log: log}
	e.client = influxdb2.NewClient(cfg.URL, cfg.Token)

	pingCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	running, err := e.client.Ping(pingCtx)
	cancel()

	if err == nil && running {
		e.writer = e.client.WriteAPIBlocking(cfg.Org, cfg.Bucket)
		log.Info().Str("url", cfg.URL).Str("bucket", cfg.Bucket).Msg("telemetry connected")
		return e, nil
	}

	e.client.Close()
	e.client = nil
	if cfg.Backup == "" {
		return nil, fmt.Errorf("%w: ping %s: %v", ErrUnavailable, cfg.URL, err)
	}

	file, ferr := os.OpenFile(cfg.Backup, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if ferr != nil {
		return nil, fmt.Errorf("create telemetry backup: %w", ferr)
	}
	e.backupFile = file
	e.backup = gzip.NewWriter(file)
	log.Warn().Err(err).Str("backupPath", cfg.Backup).Msg("telemetry server unreachable, writing to backup file")
	return e, nil
}

// Backup reports whether points go to the backup file
func (e *Exporter) Backup() bool {
	return e.backup != nil
}

// WritePoint sends one point
func (e *Exporter) WritePoint(ctx context.Context, p *influxdb2_write.Point) error {
	if e.writer != nil {
		ctx, cancel := context.WithTimeout(ctx, writeTimeout)
		defer cancel()
		if err := e.writer.WritePoint(ctx, p); err != nil {
			return fmt.Errorf("write point: %w", err)
		}
		return nil
	}
	if e.backup == nil {
		return ErrUnavailable
	}
	line := influxdb2_write.PointToLineProtocol(p, time.Nanosecond)
	if _, err := io.WriteString(e.backup, line+"\n"); err != nil {
		return fmt.Errorf("write telemetry backup: %w", err)
	}
	return nil
}

func (e *Exporter) Close() error {
	if e.client != nil {
		e.client.Close()
	}
	if e.backup == nil {
		return nil
	}
	return errors.Join(e.backup.Close(), e.backupFile.Close())
}
