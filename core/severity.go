package core

// Severity is the total order over all message levels. It spans two
// categories: the trace category (TRACE, DEBUG), which is eligible for
// compile-time elision, and the log category (INFO through FATAL), which
// is always compiled in and filtered only by the runtime threshold.
type Severity int8

// TraceSeverity is the compile-time type of the two trace-category levels.
// Logger.Trace only accepts this type, so a trace statement can never be
// confused with a log statement.
type TraceSeverity int8

// LogSeverity is the compile-time type of the four log-category levels.
type LogSeverity int8

const (
	// LevelTrace for very fine-grained diagnostic output
	LevelTrace TraceSeverity = iota
	// LevelDebug for debugging information
	LevelDebug
)

const (
	// LevelInfo for general informational messages (default threshold)
	LevelInfo LogSeverity = iota + 2
	// LevelWarning for warning messages
	LevelWarning
	// LevelError for error messages
	LevelError
	// LevelFatal for unrecoverable errors
	LevelFatal
)

// Leveler is implemented by Severity, TraceSeverity and LogSeverity so
// that threshold-taking operations accept any of the three.
type Leveler interface {
	Severity() Severity
}

// Severity returns s unchanged, making Severity its own Leveler.
func (s Severity) Severity() Severity { return s }

// Severity widens a trace-category level into the shared total order.
func (t TraceSeverity) Severity() Severity { return Severity(t) }

// Severity widens a log-category level into the shared total order.
func (l LogSeverity) Severity() Severity { return Severity(l) }

// IsTrace reports whether s belongs to the trace category.
func (s Severity) IsTrace() bool { return s <= LevelDebug.Severity() }

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case LevelTrace.Severity():
		return "TRACE"
	case LevelDebug.Severity():
		return "DEBUG"
	case LevelInfo.Severity():
		return "INFO"
	case LevelWarning.Severity():
		return "WARNING"
	case LevelError.Severity():
		return "ERROR"
	case LevelFatal.Severity():
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

func (t TraceSeverity) String() string { return t.Severity().String() }

func (l LogSeverity) String() string { return l.Severity().String() }
