// Package zapsink adapts the Sink contract to go.uber.org/zap, so a
// hierlog tree can deliver its messages into an application's existing
// zap pipeline — encoders, sampling, output routing and all.
//
// The adapter is deliberately thin: it buffers one message, maps the
// severity to a zapcore level and emits a single record (or one record
// per terminated line) with the canonical logger name attached as a
// field.
package zapsink
