package streamsink

import (
	"fmt"
	"io"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/hierlog/hierlog/core"
	"github.com/hierlog/hierlog/sink"
)

const dateLayout = "2006-01-02 15:04:05.000"

// Sink writes log messages to an io.Writer. Each message begins with an
// optional timestamp, the source's canonical name in parentheses when it
// has one, and the bracketed severity tag:
//
//	(svc::worker) [WARNING] queue depth 93
//
// The sink holds only a reference to the writer; the writer must outlive
// the sink. With the default NopLocker the sink is not safe for use from
// multiple goroutines; pass WithLocker(&sync.Mutex{}) to share it.
type Sink struct {
	w          io.Writer
	flusher    flusher
	lock       sync.Locker
	clock      clockwork.Clock
	timestamps bool
}

// flusher is implemented by buffered writers such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// Compile-time safety: *Sink implements sink.Sink and sink.EncodingAware.
var (
	_ sink.Sink          = (*Sink)(nil)
	_ sink.EncodingAware = (*Sink)(nil)
)

// Option configures a Sink.
type Option func(*Sink)

// WithLocker sets the locker guarding the writer between StartMessage
// and EndMessage. Default: sink.NopLocker.
func WithLocker(l sync.Locker) Option {
	return func(s *Sink) { s.lock = l }
}

// WithTimestamps prefixes every message with the current time.
func WithTimestamps() Option {
	return func(s *Sink) { s.timestamps = true }
}

// WithClock sets the clock used for timestamps. Default: the real clock.
func WithClock(c clockwork.Clock) Option {
	return func(s *Sink) { s.clock = c }
}

// New creates a Sink wrapping w.
func New(w io.Writer, opts ...Option) *Sink {
	s := &Sink{
		w:     w,
		lock:  sink.NopLocker{},
		clock: clockwork.NewRealClock(),
	}
	s.flusher, _ = w.(flusher)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartMessage acquires the lock and writes the message prefix. It may
// block until the lock is available.
func (s *Sink) StartMessage(source core.Source, severity core.Severity) {
	s.lock.Lock()
	if s.timestamps {
		fmt.Fprintf(s.w, "%s ", s.clock.Now().Format(dateLayout))
	}
	if name := source.CanonicalName(); name != "" {
		fmt.Fprintf(s.w, "(%s) ", name)
	}
	fmt.Fprintf(s.w, "[%s] ", severity)
}

// Put writes a value to the underlying writer, like fmt.Fprint.
func (s *Sink) Put(_ core.Source, value any) {
	fmt.Fprint(s.w, value)
}

// PutBreak writes a newline when the primitive carries one and flushes
// the writer when it supports flushing.
func (s *Sink) PutBreak(brk core.LineBreak) {
	if brk.Newline() {
		_, _ = io.WriteString(s.w, "\n")
	}
	if s.flusher != nil {
		_ = s.flusher.Flush()
	}
}

// EndMessage releases the lock, making the writer available again.
func (s *Sink) EndMessage(core.Source) {
	s.lock.Unlock()
}

// Encoding reports UTF-8: values are rendered as text via fmt.
func (s *Sink) Encoding() sink.Encoding {
	return sink.EncodingUTF8
}
