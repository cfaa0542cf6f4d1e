package logger

// Mode is the compile-time switch deciding whether trace-category
// messages exist in a build. It is a closed set: TraceOn or TraceOff.
// The mode is baked into the logger's type, not read from a runtime
// flag, so that with TraceOff every trace statement constructs the
// stateless no-op sentry and the optimizer can remove the whole path.
type Mode interface {
	TraceOn | TraceOff
	Enabled() bool
}

// TraceOn compiles trace-category messages in; they are then subject to
// the ordinary runtime threshold.
type TraceOn struct{}

// Enabled returns true.
func (TraceOn) Enabled() bool { return true }

// TraceOff elides trace-category messages from the build. No trace
// statement ever touches a sink, for any threshold value.
type TraceOff struct{}

// Enabled returns false.
func (TraceOff) Enabled() bool { return false }
