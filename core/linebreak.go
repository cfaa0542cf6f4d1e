package core

// LineBreak is the stream-termination primitive. A sentry recognizes it
// among appended values and forwards it to the sink's dedicated PutBreak
// hook instead of the ordinary Put hook, because sinks treat it specially:
// a stream sink writes a newline and flushes, a record-oriented sink may
// close the current record.
type LineBreak struct {
	newline bool
}

var (
	// Endl terminates the current line and asks the sink to flush.
	Endl = LineBreak{newline: true}

	// Flush asks the sink to flush without terminating the line.
	Flush = LineBreak{}
)

// Newline reports whether the primitive carries a line terminator.
func (b LineBreak) Newline() bool { return b.newline }
