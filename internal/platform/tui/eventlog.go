package tui

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vmatyush/brickstorm/internal/sim"
)

// LogSink writes simulation events as structured log lines. The terminal is
// owned by Bubble Tea while a session runs, so events go to a file.
type LogSink struct {
	logger *log.Logger
	closer io.Closer
}

// NewLogSink wraps a writer in a structured event logger.
func NewLogSink(w io.Writer) *LogSink {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Formatter:       log.LogfmtFormatter,
	})
	return &LogSink{logger: logger}
}

// OpenLogSink creates a log sink appending to the given file path.
func OpenLogSink(path string) (*LogSink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	sink := NewLogSink(f)
	sink.closer = f
	return sink, nil
}

// Emit implements sim.Sink.
func (s *LogSink) Emit(ev sim.Event) {
	s.logger.Info(ev.Name(), ev.Fields()...)
}

// Close releases the underlying file, if any.
func (s *LogSink) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
