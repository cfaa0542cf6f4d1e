package logger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hierlog/hierlog/core"
	"github.com/hierlog/hierlog/sink"
)

// recordingSink captures every hook call it observes.
type recordingSink struct {
	events []string
	starts int
	ends   int
}

var _ sink.Sink = (*recordingSink)(nil)

func (r *recordingSink) StartMessage(src core.Source, sev core.Severity) {
	r.starts++
	r.events = append(r.events, fmt.Sprintf("start %s %s", src.CanonicalName(), sev))
}

func (r *recordingSink) Put(_ core.Source, v any) {
	r.events = append(r.events, fmt.Sprintf("put %v", v))
}

func (r *recordingSink) PutBreak(brk core.LineBreak) {
	r.events = append(r.events, fmt.Sprintf("break newline=%v", brk.Newline()))
}

func (r *recordingSink) EndMessage(src core.Source) {
	r.ends++
	r.events = append(r.events, fmt.Sprintf("end %s", src.CanonicalName()))
}

func newTestNode[M Mode](rec *recordingSink, level core.Leveler) *Node[M] {
	return NewBuilder[M]().WithSink(rec).WithLevel(level).Build()
}

func TestNode_LogCategoryEnablement(t *testing.T) {
	logLevels := []core.LogSeverity{LevelInfo, LevelWarning, LevelError, LevelFatal}
	thresholds := []core.Leveler{LevelTrace, LevelDebug, LevelInfo, LevelWarning, LevelError, LevelFatal}

	for _, th := range thresholds {
		on := newTestNode[TraceOn](&recordingSink{}, th)
		off := newTestNode[TraceOff](&recordingSink{}, th)
		for _, sev := range logLevels {
			want := sev.Severity() >= th.Severity()
			if got := on.Enabled(sev); got != want {
				t.Errorf("TraceOn: Enabled(%v) with threshold %v = %v, want %v", sev, th.Severity(), got, want)
			}
			// Log-category enablement must not depend on the trace mode.
			if got := off.Enabled(sev); got != want {
				t.Errorf("TraceOff: Enabled(%v) with threshold %v = %v, want %v", sev, th.Severity(), got, want)
			}
		}
	}
}

func TestNode_TraceCategoryEnablement(t *testing.T) {
	traceLevels := []core.TraceSeverity{LevelTrace, LevelDebug}
	thresholds := []core.Leveler{LevelTrace, LevelDebug, LevelInfo}

	for _, th := range thresholds {
		on := newTestNode[TraceOn](&recordingSink{}, th)
		off := newTestNode[TraceOff](&recordingSink{}, th)
		for _, sev := range traceLevels {
			want := sev.Severity() >= th.Severity()
			if got := on.Enabled(sev); got != want {
				t.Errorf("TraceOn: Enabled(%v) with threshold %v = %v, want %v", sev, th.Severity(), got, want)
			}
			if off.Enabled(sev) {
				t.Errorf("TraceOff: Enabled(%v) with threshold %v = true, want false", sev, th.Severity())
			}
		}
	}
}

func TestNode_ChildIdempotent(t *testing.T) {
	root := newTestNode[TraceOn](&recordingSink{}, LevelInfo)

	a, err := root.Child("svc")
	require.NoError(t, err)
	b, err := root.Child("svc")
	require.NoError(t, err)
	require.Same(t, a, b)
	require.Len(t, root.children, 1)
}

func TestNode_ChildEmptyName(t *testing.T) {
	root := newTestNode[TraceOn](&recordingSink{}, LevelInfo)

	_, err := root.Child("")
	require.ErrorIs(t, err, ErrEmptyName)

	require.Panics(t, func() { root.MustChild("") })
}

func TestNode_ChildInheritsConfig(t *testing.T) {
	rec := &recordingSink{}
	root := newTestNode[TraceOn](rec, LevelError)

	c := root.MustChild("svc")
	require.Equal(t, LevelError.Severity(), c.Level())
	require.Same(t, rec, c.Sink().(*recordingSink))
	require.Same(t, root, c.Parent())
}

func TestNode_SetLevelCascades(t *testing.T) {
	root := newTestNode[TraceOn](&recordingSink{}, LevelInfo)
	svc := root.MustChild("svc")
	worker := svc.MustChild("worker")

	// Diverge the leaf, then re-synchronize the whole subtree.
	worker.SetLocalLevel(LevelFatal)
	require.Equal(t, LevelFatal.Severity(), worker.Level())
	require.Equal(t, LevelInfo.Severity(), svc.Level())

	root.SetLevel(LevelDebug)
	require.Equal(t, LevelDebug.Severity(), root.Level())
	require.Equal(t, LevelDebug.Severity(), svc.Level())
	require.Equal(t, LevelDebug.Severity(), worker.Level())
}

func TestNode_SetSinkCascades(t *testing.T) {
	first := &recordingSink{}
	second := &recordingSink{}
	root := newTestNode[TraceOn](first, LevelInfo)
	svc := root.MustChild("svc")
	worker := svc.MustChild("worker")

	divergent := &recordingSink{}
	worker.SetLocalSink(divergent)
	require.Same(t, divergent, worker.Sink().(*recordingSink))

	root.SetSink(second)
	require.Same(t, second, root.Sink().(*recordingSink))
	require.Same(t, second, svc.Sink().(*recordingSink))
	require.Same(t, second, worker.Sink().(*recordingSink))
}

func TestNode_SetLocalLeavesChildren(t *testing.T) {
	root := newTestNode[TraceOn](&recordingSink{}, LevelInfo)
	svc := root.MustChild("svc")

	root.SetLocalLevel(LevelError)
	require.Equal(t, LevelError.Severity(), root.Level())
	require.Equal(t, LevelInfo.Severity(), svc.Level())

	other := &recordingSink{}
	root.SetLocalSink(other)
	require.NotSame(t, other, svc.Sink().(*recordingSink))
}

func TestNode_CanonicalName(t *testing.T) {
	root := newTestNode[TraceOn](&recordingSink{}, LevelInfo)
	worker := root.MustChild("svc").MustChild("worker")

	require.Equal(t, "", root.CanonicalName())
	require.Equal(t, "svc::worker", worker.CanonicalName())

	named := NewBuilder[TraceOn]().WithSink(&recordingSink{}).WithName("app").Build()
	require.Equal(t, "app::svc", named.MustChild("svc").CanonicalName())
}

func TestNode_CustomSeparator(t *testing.T) {
	root := NewBuilder[TraceOn]().
		WithSink(&recordingSink{}).
		WithSeparator(".").
		Build()
	worker := root.MustChild("svc").MustChild("worker")
	require.Equal(t, "svc.worker", worker.CanonicalName())
}

func TestNode_SinkSwapDoesNotAffectOpenMessage(t *testing.T) {
	oldSink := &recordingSink{}
	newSink := &recordingSink{}
	root := newTestNode[TraceOn](oldSink, LevelInfo)

	m := root.Log(LevelInfo)
	root.SetSink(newSink)
	m.Put("late").End()

	require.Equal(t, []string{"start  INFO", "put late", "end "}, oldSink.events)
	require.Empty(t, newSink.events, "replacement sink must not see the in-flight message")

	root.Log(LevelInfo).Put("fresh").End()
	require.Equal(t, []string{"start  INFO", "put fresh", "end "}, newSink.events)
}

func TestNode_NilSinkProducesDisabledSentry(t *testing.T) {
	root := NewBuilder[TraceOn]().WithLevel(LevelTrace).Build()

	m := root.Log(LevelError)
	require.False(t, m.Enabled())
	m.Put("dropped").End()

	tm := root.Trace(LevelDebug)
	require.False(t, tm.Enabled())
	tm.Put("dropped").End()
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
	}{
		{"trace", LevelTrace.Severity()},
		{"DEBUG", LevelDebug.Severity()},
		{"Info", LevelInfo.Severity()},
		{"warn", LevelWarning.Severity()},
		{"WARNING", LevelWarning.Severity()},
		{"error", LevelError.Severity()},
		{"fatal", LevelFatal.Severity()},
		{"nonsense", LevelInfo.Severity()},
	}
	for _, tt := range tests {
		if got := ParseSeverity(tt.in); got != tt.want {
			t.Errorf("ParseSeverity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
