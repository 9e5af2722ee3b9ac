package entities

// MaxLogEntries bounds the room log; older entries are dropped on write
const MaxLogEntries = 50

// LogType classifies a log entry for display
type LogType string

// Log types
const (
	LogInfo    LogType = "info"
	LogSuccess LogType = "success"
	LogWarning LogType = "warning"
	LogDanger  LogType = "danger"
)

// IsValid reports whether the type is one of the known log types
func (t LogType) IsValid() bool {
	switch t {
	case LogInfo, LogSuccess, LogWarning, LogDanger:
		return true
	default:
		return false
	}
}

// GameLog is one append-only narrative entry. Message is already localized.
type GameLog struct {
	ID        string  `json:"id"`
	Timestamp int64   `json:"timestamp"` // unix milliseconds
	Message   string  `json:"message"`
	Type      LogType `json:"type"`
}

// PrependLogs places entries (oldest first) ahead of existing and truncates
// to MaxLogEntries. The result is most-recent-first.
func PrependLogs(existing []GameLog, entries ...GameLog) []GameLog {
	out := make([]GameLog, 0, len(entries)+len(existing))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
	}
	out = append(out, existing...)
	if len(out) > MaxLogEntries {
		out = out[:MaxLogEntries]
	}
	return out
}
