package syslogsink

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hierlog/hierlog/core"
)

// fakeWriter records which priority method received which message.
type fakeWriter struct {
	entries []string
	closed  bool
}

func (w *fakeWriter) record(prio, m string) error {
	w.entries = append(w.entries, fmt.Sprintf("%s: %s", prio, m))
	return nil
}

func (w *fakeWriter) Debug(m string) error   { return w.record("debug", m) }
func (w *fakeWriter) Info(m string) error    { return w.record("info", m) }
func (w *fakeWriter) Warning(m string) error { return w.record("warning", m) }
func (w *fakeWriter) Err(m string) error     { return w.record("err", m) }
func (w *fakeWriter) Emerg(m string) error   { return w.record("emerg", m) }
func (w *fakeWriter) Close() error           { w.closed = true; return nil }

type namedSource string

func (s namedSource) Name() string          { return string(s) }
func (s namedSource) CanonicalName() string { return string(s) }

func deliver(s *Sink, src core.Source, sev core.Leveler, msg string) {
	s.StartMessage(src, sev.Severity())
	s.Put(src, msg)
	s.EndMessage(src)
}

func TestSink_PriorityMapping(t *testing.T) {
	w := &fakeWriter{}
	s := newWith(w)
	src := namedSource("svc")

	deliver(s, src, core.LevelTrace, "t")
	deliver(s, src, core.LevelDebug, "d")
	deliver(s, src, core.LevelInfo, "i")
	deliver(s, src, core.LevelWarning, "w")
	deliver(s, src, core.LevelError, "e")
	deliver(s, src, core.LevelFatal, "f")

	require.Equal(t, []string{
		"debug: (svc) [TRACE] t",
		"debug: (svc) [DEBUG] d",
		"info: (svc) [INFO] i",
		"warning: (svc) [WARNING] w",
		"err: (svc) [ERROR] e",
		"emerg: (svc) [FATAL] f",
	}, w.entries)
}

func TestSink_TrailingNewlineTrimmed(t *testing.T) {
	w := &fakeWriter{}
	s := newWith(w)
	src := namedSource("")

	s.StartMessage(src, core.LevelInfo.Severity())
	s.Put(src, "line")
	s.PutBreak(core.Endl)
	s.EndMessage(src)

	require.Equal(t, []string{"info: [INFO] line"}, w.entries)
}

func TestSink_NameCachedPerSource(t *testing.T) {
	w := &fakeWriter{}
	s := newWith(w)

	src := &countingSource{name: "svc::worker"}
	deliver(s, src, core.LevelInfo, "one")
	deliver(s, src, core.LevelInfo, "two")

	require.Equal(t, 1, src.canonicalCalls, "canonical name should be resolved once per source")
	require.Len(t, w.entries, 2)
}

type countingSource struct {
	name           string
	canonicalCalls int
}

func (s *countingSource) Name() string { return s.name }

func (s *countingSource) CanonicalName() string {
	s.canonicalCalls++
	return s.name
}

func TestSink_Close(t *testing.T) {
	w := &fakeWriter{}
	s := newWith(w)
	require.NoError(t, s.Close())
	require.True(t, w.closed)
}
