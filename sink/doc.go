// Package sink provides the Sink capability contract and its built-in
// compositions for dispatching log messages to various outputs.
//
// A Sink receives one message through a fixed hook sequence: StartMessage
// once, any number of Put and PutBreak calls, EndMessage once. Locking is
// the sink's own responsibility — StartMessage acquires, EndMessage
// releases — which lets single-threaded programs compose with NopLocker
// and pay nothing, while shared sinks plug in a *sync.Mutex.
//
// Sinks may declare their character encoding through the optional
// EncodingAware interface; EncodingOf falls back to EncodingBytes for
// sinks that don't.
//
// The Router type composes a fixed list of member sinks with one
// runtime-selectable active member and satisfies the Sink contract
// itself, so output can be redirected (say, console during startup,
// system log once daemonized) without touching any logger.
//
// Built-in sink implementations live in subpackages:
//
//   - streamsink writes messages to any io.Writer.
//   - syslogsink delivers messages to the system log daemon.
//   - zapsink forwards finished messages to a zap logger.
package sink
