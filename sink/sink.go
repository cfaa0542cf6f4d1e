package sink

import (
	"github.com/hierlog/hierlog/core"
)

// Sink defines the capability contract for output sinks. The logger core
// never assumes more than these four hooks; everything else (formats,
// timestamps, name caching) is a sink's own business.
//
// Mutual exclusion is entirely the sink's responsibility: StartMessage is
// expected to acquire whatever lock the sink composes with, and
// EndMessage to release it. Sentries guarantee the Start/End pairing on
// every exit path.
type Sink interface {
	// StartMessage prepares the sink to receive one message's content.
	// It may block on the sink's internal lock. Called at most once per
	// sentry, and only when the statement is enabled.
	StartMessage(source core.Source, severity core.Severity)

	// Put appends a value to the current message.
	Put(source core.Source, value any)

	// PutBreak appends a stream-termination primitive. It is kept apart
	// from Put because sinks treat the primitive specially, e.g. flush
	// without closing the message.
	PutBreak(brk core.LineBreak)

	// EndMessage finalizes the message and releases any lock acquired in
	// StartMessage. Called exactly once per StartMessage call.
	EndMessage(source core.Source)
}

// Encoding describes the character encoding a sink accepts.
type Encoding uint8

const (
	// EncodingBytes is the narrowest common denominator: uninterpreted
	// single-byte output.
	EncodingBytes Encoding = iota
	// EncodingUTF8 marks sinks that interpret their input as UTF-8 text.
	EncodingUTF8
)

// String returns the string representation of the encoding
func (e Encoding) String() string {
	switch e {
	case EncodingBytes:
		return "bytes"
	case EncodingUTF8:
		return "utf-8"
	default:
		return "unknown"
	}
}

// EncodingAware is an optional interface that sinks can implement to
// declare their character encoding.
type EncodingAware interface {
	Encoding() Encoding
}

// EncodingOf returns the declared encoding of s, or EncodingBytes when s
// does not declare one.
func EncodingOf(s Sink) Encoding {
	if ea, ok := s.(EncodingAware); ok {
		return ea.Encoding()
	}
	return EncodingBytes
}

// NopLocker is a sync.Locker that does no locking at all. Use it where
// only a single goroutine accesses a sink and the cost of a mutex is
// unwanted; pass a *sync.Mutex instead for shared use.
type NopLocker struct{}

// Lock does nothing.
func (NopLocker) Lock() {}

// Unlock does nothing.
func (NopLocker) Unlock() {}
