package syslogsink

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hierlog/hierlog/core"
	"github.com/hierlog/hierlog/sink"
)

// writer is the subset of *syslog.Writer the sink needs. The indirection
// keeps the hook logic testable without a running syslog daemon.
type writer interface {
	Debug(m string) error
	Info(m string) error
	Warning(m string) error
	Err(m string) error
	Emerg(m string) error
	Close() error
}

// Sink delivers log messages to the system log daemon. The message is
// buffered between StartMessage and EndMessage and submitted as one
// syslog entry at the priority mapped from its severity:
//
//	TRACE, DEBUG → Debug
//	INFO         → Info
//	WARNING      → Warning
//	ERROR        → Err
//	FATAL        → Emerg
//
// Delivery is best-effort; syslog write errors are dropped, since there
// is nowhere sensible left to report them.
type Sink struct {
	w    writer
	lock sync.Locker
	buf  strings.Builder
	sev  core.Severity
	// names caches canonical names per source so repeated messages from
	// the same logger don't re-join the chain every time.
	names map[core.Source]string
}

// Compile-time safety: *Sink implements sink.Sink and sink.EncodingAware.
var (
	_ sink.Sink          = (*Sink)(nil)
	_ sink.EncodingAware = (*Sink)(nil)
)

// Option configures a Sink.
type Option func(*Sink)

// WithLocker sets the locker guarding the message buffer between
// StartMessage and EndMessage. Default: sink.NopLocker.
func WithLocker(l sync.Locker) Option {
	return func(s *Sink) { s.lock = l }
}

func newWith(w writer, opts ...Option) *Sink {
	s := &Sink{
		w:     w,
		lock:  sink.NopLocker{},
		names: make(map[core.Source]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartMessage acquires the lock and starts buffering a message,
// prefixed with the source's cached canonical name and the severity tag.
func (s *Sink) StartMessage(source core.Source, severity core.Severity) {
	s.lock.Lock()
	s.sev = severity
	s.buf.Reset()
	if name := s.sourceName(source); name != "" {
		s.buf.WriteByte('(')
		s.buf.WriteString(name)
		s.buf.WriteString(") ")
	}
	s.buf.WriteByte('[')
	s.buf.WriteString(severity.String())
	s.buf.WriteString("] ")
}

func (s *Sink) sourceName(source core.Source) string {
	if name, ok := s.names[source]; ok {
		return name
	}
	name := source.CanonicalName()
	s.names[source] = name
	return name
}

// Put appends a value to the buffered message.
func (s *Sink) Put(_ core.Source, value any) {
	fmt.Fprint(&s.buf, value)
}

// PutBreak appends a line terminator to the buffered message. Syslog
// entries are flushed on EndMessage, not here.
func (s *Sink) PutBreak(brk core.LineBreak) {
	if brk.Newline() {
		s.buf.WriteByte('\n')
	}
}

// EndMessage submits the buffered message at the mapped priority and
// releases the lock.
func (s *Sink) EndMessage(core.Source) {
	msg := strings.TrimRight(s.buf.String(), "\n")
	switch s.sev {
	case core.LevelTrace.Severity(), core.LevelDebug.Severity():
		_ = s.w.Debug(msg)
	case core.LevelInfo.Severity():
		_ = s.w.Info(msg)
	case core.LevelWarning.Severity():
		_ = s.w.Warning(msg)
	case core.LevelError.Severity():
		_ = s.w.Err(msg)
	default:
		_ = s.w.Emerg(msg)
	}
	s.buf.Reset()
	s.lock.Unlock()
}

// Encoding reports raw bytes: syslog transports whatever it is handed.
func (s *Sink) Encoding() sink.Encoding {
	return sink.EncodingBytes
}

// Close closes the connection to the system log daemon.
func (s *Sink) Close() error {
	return s.w.Close()
}
