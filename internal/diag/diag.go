// Package diag is the kernel's host diagnostic channel: a small logging
// seam wrapping charmbracelet/log so that best-effort failures (a trace
// write that couldn't be flushed, a bypass-list watch that lost its file)
// are visible to an operator without ever propagating as errors back
// through the hook pipeline.
package diag

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// Sink is the logging surface hooks and stores depend on. It is an
// interface, not the concrete charmbracelet logger, so tests can inject a
// recording sink instead of writing to stderr.
type Sink interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// charmSink adapts *log.Logger to Sink.
type charmSink struct {
	l *log.Logger
}

func (c charmSink) Debugf(format string, args ...any) { c.l.Debugf(format, args...) }
func (c charmSink) Infof(format string, args ...any)  { c.l.Infof(format, args...) }
func (c charmSink) Errorf(format string, args ...any) { c.l.Errorf(format, args...) }

var defaultSink Sink = newCharmSink(false)

func newCharmSink(verbose bool) charmSink {
	l := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "igk",
		ReportTimestamp: true,
	})
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	return charmSink{l: l}
}

// Default returns the process-wide fallback sink, used whenever a caller
// doesn't have (or care to inject) one of its own.
func Default() Sink {
	return defaultSink
}

// NewVerboseSink returns a Sink writing to stderr at debug level when
// verbose is true, info level otherwise — the levels cmd/igk's --verbose
// flag toggles between.
func NewVerboseSink(verbose bool) Sink {
	return newCharmSink(verbose)
}

// SetDefault replaces the process-wide fallback sink. Intended for cmd/igk
// to wire verbosity flags through at startup.
func SetDefault(s Sink) {
	if s != nil {
		defaultSink = s
	}
}

// Discard is a Sink that drops everything, useful in tests that don't want
// diagnostic noise on stderr but also don't need to assert on it.
type Discard struct{}

func (Discard) Debugf(string, ...any) {}
func (Discard) Infof(string, ...any)  {}
func (Discard) Errorf(string, ...any) {}

// Recorder is a Sink that captures messages for assertions in tests.
type Recorder struct {
	Debug []string
	Info  []string
	Error []string
}

func (r *Recorder) Debugf(format string, args ...any) { r.Debug = append(r.Debug, fmt.Sprintf(format, args...)) }
func (r *Recorder) Infof(format string, args ...any)  { r.Info = append(r.Info, fmt.Sprintf(format, args...)) }
func (r *Recorder) Errorf(format string, args ...any) { r.Error = append(r.Error, fmt.Sprintf(format, args...)) }
