package core

import "testing"

func TestSeverity_Order(t *testing.T) {
	order := []Severity{
		LevelTrace.Severity(),
		LevelDebug.Severity(),
		LevelInfo.Severity(),
		LevelWarning.Severity(),
		LevelError.Severity(),
		LevelFatal.Severity(),
	}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("expected %v < %v", order[i-1], order[i])
		}
	}
}

func TestSeverity_IsTrace(t *testing.T) {
	tests := []struct {
		sev  Severity
		want bool
	}{
		{LevelTrace.Severity(), true},
		{LevelDebug.Severity(), true},
		{LevelInfo.Severity(), false},
		{LevelWarning.Severity(), false},
		{LevelError.Severity(), false},
		{LevelFatal.Severity(), false},
	}
	for _, tt := range tests {
		if got := tt.sev.IsTrace(); got != tt.want {
			t.Errorf("IsTrace(%v) = %v, want %v", tt.sev, got, tt.want)
		}
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		sev  Leveler
		want string
	}{
		{LevelTrace, "TRACE"},
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarning, "WARNING"},
		{LevelError, "ERROR"},
		{LevelFatal, "FATAL"},
		{Severity(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.sev.Severity().String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestLineBreak_Newline(t *testing.T) {
	if !Endl.Newline() {
		t.Error("Endl should carry a line terminator")
	}
	if Flush.Newline() {
		t.Error("Flush should not carry a line terminator")
	}
}
