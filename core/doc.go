// Package core defines the shared types used across the hierlog framework.
//
// It provides the Severity order for filtering, split into the trace
// category (TRACE, DEBUG) and the log category (INFO through FATAL). The
// two categories are distinct compile-time types so that trace statements
// and log statements cannot be confused at a call site; both widen into
// the shared Severity total order through the Leveler interface.
//
// The Source interface is how sinks see the logger a message came from
// without depending on the logger package, and LineBreak is the
// stream-termination primitive that sentries route to a sink's dedicated
// PutBreak hook.
package core
