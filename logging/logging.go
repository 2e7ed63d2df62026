// Package logging builds the zerolog loggers shared by every component.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"
)

// Options selects the log sinks
type Options struct {
	Level       string    // trace, debug, info, warn, error; default info
	Console     io.Writer // colored console output, nil disables
	File        io.Writer // uncolored console format, nil disables
	GraylogAddr string    // host:port of a GELF UDP input, empty disables
	NoColor     bool
}

// Logging owns the root logger, a sampled per-tick logger and sink closers
type Logging struct {
	Logger zerolog.Logger

	// Trace is sampled for per-tick chatter: 5 entries per 10s, then 1 in 100
	Trace zerolog.Logger

	closers []io.Closer
}

// ParseLevel maps a config string to a zerolog level, defaulting to info
func ParseLevel(s string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "FATAL":
		return zerolog.FatalLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	}
	return zerolog.InfoLevel
}

// New assembles a multi-level writer over the configured sinks
func New(opts Options) (*Logging, error) {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	l := &Logging{}
	var writers []io.Writer

	if opts.Console != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        opts.Console,
			TimeFormat: time.RFC3339,
			NoColor:    opts.NoColor,
		})
	}
	if opts.File != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        opts.File,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
	}
	if opts.GraylogAddr != "" {
		gw, err := gelf.NewWriter(opts.GraylogAddr)
		if err != nil {
			return nil, fmt.Errorf("graylog writer %s: %w", opts.GraylogAddr, err)
		}
		writers = append(writers, gw)
		l.closers = append(l.closers, gw)
	}

	var out io.Writer = io.Discard
	if len(writers) > 0 {
		out = zerolog.MultiLevelWriter(writers...)
	}

	l.Logger = zerolog.New(out).Level(ParseLevel(opts.Level)).With().Timestamp().Logger()
	l.Trace = l.Logger.With().Bool("sampled", true).Logger().Sample(&zerolog.BurstSampler{
		Burst:       5,
		Period:      10 * time.Second,
		NextSampler: &zerolog.BasicSampler{N: 100},
	})
	return l, nil
}

// Nop returns a Logging that drops everything
func Nop() *Logging {
	return &Logging{Logger: zerolog.Nop(), Trace: zerolog.Nop()}
}

// Close releases network sinks
func (l *Logging) Close() error {
	var errs []error
	for _, c := range l.closers {
		errs = append(errs, c.Close())
	}
	l.closers = nil
	return errors.Join(errs...)
}

// LogFilePath builds a session log file path
func LogFilePath(logsDir, name string, sessionStart time.Time) string {
	return filepath.Join(
		logsDir,
		fmt.Sprintf("%s.%s.log", name, sessionStart.Format("20060102_150405")),
	)
}

// OpenFile creates logsDir if needed and opens a fresh session log
func OpenFile(logsDir, name string, sessionStart time.Time) (*os.File, error) {
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	path := LogFilePath(logsDir, name, sessionStart)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
