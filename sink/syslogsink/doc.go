// Package syslogsink implements the Sink contract over the system log
// daemon.
//
// Unlike streamsink, which writes incrementally, this sink buffers the
// whole message between StartMessage and EndMessage and submits it as a
// single syslog entry, at a priority derived from the message severity.
// Canonical logger names are cached per source.
//
// New is unavailable on Windows and Plan 9, where the platform has no
// syslog.
package syslogsink
