// Package logger is the public API of hierlog. Most users only need to
// import this package and one sink implementation.
//
// Loggers form a tree of named nodes. The application builds the root
// explicitly — there is no hidden global registry — and derives children
// on demand:
//
//	root := logger.NewBuilder[logger.TraceOn]().
//	    WithSink(streamsink.New(os.Stdout)).
//	    WithLevel(logger.LevelDebug).
//	    Build()
//	worker := root.MustChild("svc").MustChild("worker")
//
// Children inherit the parent's threshold and sink at creation time and
// may diverge afterward; SetLevel and SetSink on a node cascade to the
// whole subtree, deliberately overwriting any divergence. The
// non-cascading SetLocalLevel and SetLocalSink variants touch one node
// only.
//
// A log statement obtains a short-lived sentry, streams values into it
// and ends it; the sentry guarantees the sink's EndMessage hook — and so
// the sink's lock release — exactly once on every exit path:
//
//	m := worker.Log(logger.LevelWarning)
//	defer m.End()
//	m.Putf("queue depth %d", depth).Put(core.Endl)
//
// The type parameter on the node is the compile-time trace mode. With
// TraceOff, Trace statements construct the stateless no-op sentry and
// compile to nothing; with TraceOn they are filtered by the runtime
// threshold like any other severity. Pick the mode once per build, e.g.
//
//	type Log = logger.Node[logger.TraceOn]
//
// in a debug-tagged file and the TraceOff twin in its release
// counterpart.
package logger
