package logger

import (
	"strings"

	"github.com/hierlog/hierlog/core"
)

// Severity Re-export type and constants for convenience
type Severity = core.Severity

const (
	LevelTrace   = core.LevelTrace
	LevelDebug   = core.LevelDebug
	LevelInfo    = core.LevelInfo
	LevelWarning = core.LevelWarning
	LevelError   = core.LevelError
	LevelFatal   = core.LevelFatal
)

// ParseSeverity converts a string to a Severity
func ParseSeverity(s string) Severity {
	switch strings.ToUpper(s) {
	case "TRACE":
		return LevelTrace.Severity()
	case "DEBUG":
		return LevelDebug.Severity()
	case "INFO":
		return LevelInfo.Severity()
	case "WARN", "WARNING":
		return LevelWarning.Severity()
	case "ERROR":
		return LevelError.Severity()
	case "FATAL":
		return LevelFatal.Severity()
	default:
		return LevelInfo.Severity()
	}
}
