// Package streamsink implements the Sink contract over any io.Writer.
//
// It is the conventional console sink — point it at os.Stdout or
// os.Stderr — but works just as well with a *bufio.Writer over a file or
// a bytes.Buffer in tests. Writers that expose Flush() error are flushed
// whenever a stream-termination primitive arrives.
//
// Messages are written incrementally as values are put, under the lock
// the sink composes with. Timestamps are off by default and can be
// enabled with WithTimestamps; the clock is injectable for tests.
package streamsink
