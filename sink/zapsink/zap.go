package zapsink

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hierlog/hierlog/core"
	"github.com/hierlog/hierlog/sink"
)

// Sink is an adapter that forwards finished messages to a zap.Logger,
// letting a hierlog tree feed an existing zap-based pipeline.
//
// The message is buffered between StartMessage and EndMessage. A
// line-terminating break closes the current record early, so a message
// composed of several terminated lines becomes several zap records.
// Every record carries the canonical logger name under the "logger" key
// and the original severity under "severity".
//
// FATAL messages are emitted at zap's error level: zap's own fatal level
// exits the process, which is not this sink's call to make.
type Sink struct {
	logger *zap.Logger
	lock   sync.Locker
	buf    strings.Builder
	sev    core.Severity
	src    core.Source
}

// Compile-time safety: *Sink implements sink.Sink and sink.EncodingAware.
var (
	_ sink.Sink          = (*Sink)(nil)
	_ sink.EncodingAware = (*Sink)(nil)
)

// Option configures a Sink.
type Option func(*Sink)

// WithLocker sets the locker guarding the message buffer between
// StartMessage and EndMessage. Default: sink.NopLocker. zap serializes
// its own writes; the lock only protects this sink's buffer.
func WithLocker(l sync.Locker) Option {
	return func(s *Sink) { s.lock = l }
}

// New creates a Sink forwarding to l.
func New(l *zap.Logger, opts ...Option) *Sink {
	s := &Sink{
		logger: l,
		lock:   sink.NopLocker{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartMessage acquires the lock and starts buffering a record.
func (s *Sink) StartMessage(source core.Source, severity core.Severity) {
	s.lock.Lock()
	s.sev = severity
	s.src = source
	s.buf.Reset()
}

// Put appends a value to the buffered record.
func (s *Sink) Put(_ core.Source, value any) {
	fmt.Fprint(&s.buf, value)
}

// PutBreak closes the buffered record when the primitive carries a line
// terminator; a bare flush is a no-op since zap manages its own output.
func (s *Sink) PutBreak(brk core.LineBreak) {
	if brk.Newline() {
		s.emit()
	}
}

// EndMessage flushes any remaining buffered content as a record and
// releases the lock.
func (s *Sink) EndMessage(core.Source) {
	s.emit()
	s.lock.Unlock()
}

func (s *Sink) emit() {
	msg := s.buf.String()
	s.buf.Reset()
	if msg == "" {
		return
	}
	if ce := s.logger.Check(zapLevel(s.sev), msg); ce != nil {
		ce.Write(
			zap.String("logger", s.src.CanonicalName()),
			zap.String("severity", s.sev.String()),
		)
	}
}

// Encoding reports UTF-8, matching zap's text handling.
func (s *Sink) Encoding() sink.Encoding {
	return sink.EncodingUTF8
}

// zapLevel maps a severity to the zapcore level records are emitted at.
func zapLevel(sev core.Severity) zapcore.Level {
	switch {
	case sev.IsTrace():
		return zapcore.DebugLevel
	case sev == core.LevelInfo.Severity():
		return zapcore.InfoLevel
	case sev == core.LevelWarning.Severity():
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
