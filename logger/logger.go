package logger

import (
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/hierlog/hierlog/core"
	"github.com/hierlog/hierlog/sink"
)

// DefaultSeparator joins the segments of a canonical logger name.
const DefaultSeparator = "::"

// ErrEmptyName indicates a child logger was requested with an empty name.
var ErrEmptyName = errors.New("logger: child name must not be empty")

// Node is one named point in the logger hierarchy. Each node carries its
// own severity threshold and a shared reference to a sink; children
// inherit both at creation time and can diverge afterward, until a
// cascading SetLevel or SetSink on an ancestor overwrites the divergence.
//
// The threshold and the sink handle are atomic, so cascades may race
// with concurrent logging. The children map is not synchronized:
// concurrent Child calls on the same node must be serialized by the
// caller. Nodes are exclusively owned by their parent; the parent
// pointer exists for ancestry queries only.
type Node[M Mode] struct {
	name      string
	parent    *Node[M]
	children  map[string]*Node[M]
	separator string
	level     atomic.Int32
	target    atomic.Pointer[sinkHandle]
}

// sinkHandle wraps the sink interface value so replacement is a single
// pointer swap. In-flight sentries keep the sink they captured.
type sinkHandle struct {
	s sink.Sink
}

// Compile-time safety: *Node satisfies the Source seen by sinks.
var _ core.Source = (*Node[TraceOn])(nil)

// Builder provides a fluent API for constructing a root Node
type Builder[M Mode] struct {
	sink      sink.Sink
	name      string
	level     core.Severity
	separator string
}

// NewBuilder creates a new root logger builder
func NewBuilder[M Mode]() *Builder[M] {
	return &Builder[M]{
		level:     core.LevelInfo.Severity(), // Default threshold
		separator: DefaultSeparator,
	}
}

// WithSink sets the sink the root (and, by inheritance, its subtree)
// writes to.
func (b *Builder[M]) WithSink(s sink.Sink) *Builder[M] {
	b.sink = s
	return b
}

// WithName sets the root's name. An empty name keeps the root out of
// canonical names, which is the conventional choice.
func (b *Builder[M]) WithName(name string) *Builder[M] {
	b.name = name
	return b
}

// WithLevel sets the initial severity threshold
func (b *Builder[M]) WithLevel(l core.Leveler) *Builder[M] {
	b.level = l.Severity()
	return b
}

// WithSeparator sets the canonical-name separator for the whole subtree
func (b *Builder[M]) WithSeparator(sep string) *Builder[M] {
	b.separator = sep
	return b
}

// Build creates the root Node
func (b *Builder[M]) Build() *Node[M] {
	n := &Node[M]{
		name:      b.name,
		children:  make(map[string]*Node[M]),
		separator: b.separator,
	}
	n.level.Store(int32(b.level))
	n.target.Store(&sinkHandle{s: b.sink})
	return n
}

// Name returns the node's own name segment, empty for an anonymous root.
func (n *Node[M]) Name() string {
	return n.name
}

// Parent returns the enclosing node, nil for the root.
func (n *Node[M]) Parent() *Node[M] {
	return n.parent
}

// CanonicalName returns the separator-joined chain of names from the
// root down to this node. Ancestors with empty names contribute nothing.
func (n *Node[M]) CanonicalName() string {
	if n.parent != nil && n.parent.name != "" {
		return n.parent.CanonicalName() + n.separator + n.name
	}
	return n.name
}

// Level returns the node's current severity threshold.
func (n *Node[M]) Level() core.Severity {
	return core.Severity(n.level.Load())
}

// Sink returns the node's current sink.
func (n *Node[M]) Sink() sink.Sink {
	if h := n.target.Load(); h != nil {
		return h.s
	}
	return nil
}

// SetLevel sets the threshold on this node and cascades the same value
// to every descendant, overwriting any per-descendant customization.
// Calling it on a subtree root re-synchronizes the whole subtree.
func (n *Node[M]) SetLevel(l core.Leveler) {
	n.level.Store(int32(l.Severity()))
	for _, c := range n.children {
		c.SetLevel(l)
	}
}

// SetLocalLevel sets the threshold on this node only, leaving
// descendants untouched.
func (n *Node[M]) SetLocalLevel(l core.Leveler) {
	n.level.Store(int32(l.Severity()))
}

// SetSink replaces the sink on this node and cascades the replacement to
// every descendant. Sentries already in flight keep the old sink.
func (n *Node[M]) SetSink(s sink.Sink) {
	n.target.Store(&sinkHandle{s: s})
	for _, c := range n.children {
		c.SetSink(s)
	}
}

// SetLocalSink replaces the sink on this node only.
func (n *Node[M]) SetLocalSink(s sink.Sink) {
	n.target.Store(&sinkHandle{s: s})
}

// Child returns the child node with the given name, creating it on first
// request. A new child inherits the node's current threshold, sink and
// separator. Repeated calls with the same name return the same node.
//
// Child mutates the children map and is not safe for concurrent use;
// serialize registry mutation externally.
func (n *Node[M]) Child(name string) (*Node[M], error) {
	if name == "" {
		return nil, errors.Wrapf(ErrEmptyName, "parent %q", n.CanonicalName())
	}
	if c, ok := n.children[name]; ok {
		return c, nil
	}
	c := &Node[M]{
		name:      name,
		parent:    n,
		children:  make(map[string]*Node[M]),
		separator: n.separator,
	}
	c.level.Store(n.level.Load())
	c.target.Store(&sinkHandle{s: n.Sink()})
	n.children[name] = c
	return c, nil
}

// MustChild is like Child but panics on error. Useful during setup.
func (n *Node[M]) MustChild(name string) *Node[M] {
	c, err := n.Child(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Enabled reports whether a message of the given severity would be
// forwarded by this node. Log-category severities compare against the
// threshold only; trace-category severities additionally require the
// node's compile-time trace mode to be on.
func (n *Node[M]) Enabled(l core.Leveler) bool {
	s := l.Severity()
	if s.IsTrace() {
		var m M
		if !m.Enabled() {
			return false
		}
	}
	return s >= n.Level()
}

// Log starts a log-category message and returns the sentry bound to it.
// The sentry type is always the active one; when the statement is below
// the threshold the sentry simply does no work.
//
// End the sentry on every path, typically with defer:
//
//	m := node.Log(logger.LevelWarning)
//	defer m.End()
//	m.Put("disk almost full: ").Put(pct).Put("%")
func (n *Node[M]) Log(l core.LogSeverity) Sentry {
	sev := l.Severity()
	if sev < n.Level() {
		return Sentry{}
	}
	snk := n.Sink()
	if snk == nil {
		return Sentry{}
	}
	snk.StartMessage(n, sev)
	return Sentry{m: &message{snk: snk, src: n}}
}

// Trace starts a trace-category message. With a TraceOff node this
// returns the stateless no-op sentry unconditionally; no sink hook is
// ever reached regardless of the runtime threshold.
func (n *Node[M]) Trace(t core.TraceSeverity) TraceSentry[M] {
	var m M
	if !m.Enabled() {
		return TraceSentry[M]{}
	}
	sev := t.Severity()
	if sev < n.Level() {
		return TraceSentry[M]{}
	}
	snk := n.Sink()
	if snk == nil {
		return TraceSentry[M]{}
	}
	snk.StartMessage(n, sev)
	return TraceSentry[M]{m: &message{snk: snk, src: n}}
}
