package logging

// MockLogger is a mock implementation of the Logger interface for testing.
// It captures log entries for verification in tests. Derived loggers from
// WithError/WithField share the root logger's entry list.
type MockLogger struct {
	root          *MockLogger
	entries       []LogEntry
	pendingError  error
	pendingFields []Field
}

// LogEntry represents a single log entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// Entries returns all captured log entries, including those recorded through
// derived loggers.
func (m *MockLogger) Entries() []LogEntry {
	return m.sink().entries
}

func (m *MockLogger) sink() *MockLogger {
	if m.root != nil {
		return m.root
	}
	return m
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	allFields := append(append([]Field{}, m.pendingFields...), fields...)
	s := m.sink()
	s.entries = append(s.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   m.pendingError,
	})
}

// Debug logs a debug-level message with optional fields.
func (m *MockLogger) Debug(msg string, fields ...Field) {
	m.record("DEBUG", msg, fields)
}

// Info logs an info-level message with optional fields.
func (m *MockLogger) Info(msg string, fields ...Field) {
	m.record("INFO", msg, fields)
}

// Warn logs a warning-level message with optional fields.
func (m *MockLogger) Warn(msg string, fields ...Field) {
	m.record("WARN", msg, fields)
}

// Error logs an error-level message with optional fields.
func (m *MockLogger) Error(msg string, fields ...Field) {
	m.record("ERROR", msg, fields)
}

// WithError returns a derived logger with an error attached to subsequent entries.
func (m *MockLogger) WithError(err error) Logger {
	return &MockLogger{
		root:          m.sink(),
		pendingError:  err,
		pendingFields: m.pendingFields,
	}
}

// WithField returns a derived logger with a field attached to subsequent entries.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a derived logger with fields attached to subsequent entries.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	combined := make([]Field, 0, len(m.pendingFields)+len(fields))
	combined = append(combined, m.pendingFields...)
	combined = append(combined, fields...)
	return &MockLogger{
		root:          m.sink(),
		pendingError:  m.pendingError,
		pendingFields: combined,
	}
}

// HasMessage reports whether any captured entry contains the given message.
func (m *MockLogger) HasMessage(msg string) bool {
	for _, e := range m.Entries() {
		if e.Message == msg {
			return true
		}
	}
	return false
}
