package logger

import (
	"fmt"

	"github.com/hierlog/hierlog/core"
)

// message is the live state behind an enabled sentry. Copies of a sentry
// share it, so the end hook fires exactly once overall no matter how the
// sentry value is passed around.
type message struct {
	snk  messageSink
	src  core.Source
	done bool
}

// messageSink is the subset of the sink contract a message needs.
// Declared locally so the compiler enforces exactly what a sentry may
// call after the start hook has fired.
type messageSink interface {
	Put(source core.Source, value any)
	PutBreak(brk core.LineBreak)
	EndMessage(source core.Source)
}

func (m *message) put(v any) {
	if m.done {
		return
	}
	if brk, ok := v.(core.LineBreak); ok {
		m.snk.PutBreak(brk)
		return
	}
	m.snk.Put(m.src, v)
}

func (m *message) putf(format string, args ...any) {
	if m.done {
		return
	}
	m.snk.Put(m.src, fmt.Sprintf(format, args...))
}

func (m *message) end() {
	if m.done {
		return
	}
	m.done = true
	m.snk.EndMessage(m.src)
}

// Sentry is the scoped message builder for log-category statements. A
// disabled sentry (statement below threshold, or no sink) carries no
// state and every operation is a no-op; an enabled sentry has already
// fired the sink's StartMessage hook and must be ended exactly once.
// End is idempotent, and because defer runs during panic unwinding,
//
//	defer sentry.End()
//
// guarantees the sink's EndMessage hook — and with it the sink's lock
// release — on every exit path.
type Sentry struct {
	m *message
}

// Enabled reports whether this sentry forwards to a sink.
func (s Sentry) Enabled() bool {
	return s.m != nil
}

// Put appends a value to the message. A core.LineBreak value is routed
// to the sink's PutBreak hook instead of Put. Returns the sentry for
// chaining.
func (s Sentry) Put(v any) Sentry {
	if s.m != nil {
		s.m.put(v)
	}
	return s
}

// Putf appends a fmt.Sprintf-formatted string to the message. The
// formatting work is skipped entirely when the sentry is disabled.
func (s Sentry) Putf(format string, args ...any) Sentry {
	if s.m != nil {
		s.m.putf(format, args...)
	}
	return s
}

// End fires the sink's EndMessage hook. The first call wins; later calls
// and calls on a disabled sentry do nothing.
func (s Sentry) End() {
	if s.m != nil {
		s.m.end()
	}
}

// TraceSentry is the scoped message builder for trace-category
// statements. Its behavior is selected by the node's compile-time trace
// mode: instantiated with TraceOff it is the elided variant — no sink
// reference, no state, every method a constant no-op the optimizer can
// remove. Instantiated with TraceOn it behaves exactly like Sentry.
type TraceSentry[M Mode] struct {
	m *message
}

// Enabled reports whether this sentry forwards to a sink. Always false
// for the elided variant.
func (t TraceSentry[M]) Enabled() bool {
	var mode M
	return mode.Enabled() && t.m != nil
}

// Put appends a value to the message; see Sentry.Put.
func (t TraceSentry[M]) Put(v any) TraceSentry[M] {
	var mode M
	if !mode.Enabled() {
		return t
	}
	if t.m != nil {
		t.m.put(v)
	}
	return t
}

// Putf appends a fmt.Sprintf-formatted string; see Sentry.Putf.
func (t TraceSentry[M]) Putf(format string, args ...any) TraceSentry[M] {
	var mode M
	if !mode.Enabled() {
		return t
	}
	if t.m != nil {
		t.m.putf(format, args...)
	}
	return t
}

// End fires the sink's EndMessage hook; see Sentry.End.
func (t TraceSentry[M]) End() {
	var mode M
	if !mode.Enabled() {
		return
	}
	if t.m != nil {
		t.m.end()
	}
}
