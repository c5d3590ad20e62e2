// Package logger builds the application's zerolog logger.  Records go to
// stdout (console format in dev, JSON otherwise) and warnings and errors are
// additionally appended to a size-rotated log file.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction.
type Options struct {
	Env   string // "dev" selects the human readable console writer
	Level string // minimum level, e.g. "debug", "info"
	File  string // rotated error log path; empty disables the file sink
}

// New returns a logger configured from opts.  The returned closer flushes and
// closes the rotated file and must be called on shutdown.
func New(opts Options) (zerolog.Logger, io.Closer) {
	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var stdout io.Writer = os.Stdout
	if opts.Env == "dev" {
		stdout = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	writers := []io.Writer{stdout}
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		file := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
		}
		writers = append(writers, minLevelWriter{w: file, min: zerolog.WarnLevel})
		closer = file
	}

	l := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
	return l, closer
}

// minLevelWriter forwards only records at or above min.
type minLevelWriter struct {
	w   io.Writer
	min zerolog.Level
}

func (m minLevelWriter) Write(p []byte) (int, error) {
	return m.w.Write(p)
}

func (m minLevelWriter) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	if l < m.min {
		return len(p), nil
	}
	return m.w.Write(p)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
