package core

// LogLevel orders logging severities from most to least verbose
type LogLevel int

const (
	// LogLevelDebug traces individual queries and cache hits
	LogLevelDebug LogLevel = iota
	// LogLevelInfo records committed ledger operations
	LogLevelInfo
	// LogLevelWarn flags degraded but recoverable conditions
	LogLevelWarn
	// LogLevelError records failed operations
	LogLevelError
)

// Logger is the structured logging port used across the engine. Fields
// carry the identifiers of the affected ledger rows (user, match, bet,
// transaction) so one operation can be traced across its log lines.
type Logger interface {
	// SetLevel sets the minimum severity to emit
	SetLevel(level LogLevel)
	// GetLevel returns the current minimum severity
	GetLevel() LogLevel
	// Debug logs at debug severity
	Debug(message string, fields map[string]any)
	// Info logs at info severity
	Info(message string, fields map[string]any)
	// Warn logs at warn severity
	Warn(message string, fields map[string]any)
	// Error logs at error severity
	Error(message string, fields map[string]any)
	// Flush writes out any buffered entries
	Flush() error
}
