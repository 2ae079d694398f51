package utils

import (
	"fmt"
	"io"
	"log"
)

// Log levels
const (
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
	DEBUG = "DEBUG"
)

// Logger writes leveled lines to one output. Debug lines are dropped unless
// the logger was built in debug mode.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
}

func newLevel(w io.Writer, level string) *log.Logger {
	return log.New(w, "["+level+"] ", log.Ldate|log.Ltime)
}

// NewLogger creates a logger writing to w. A nil writer discards everything.
func NewLogger(w io.Writer, debugMode bool) *Logger {
	if w == nil {
		w = io.Discard
	}

	debugWriter := io.Discard
	if debugMode {
		debugWriter = w
	}

	return &Logger{
		infoLogger:  newLevel(w, INFO),
		warnLogger:  newLevel(w, WARN),
		errorLogger: newLevel(w, ERROR),
		debugLogger: newLevel(debugWriter, DEBUG),
	}
}

// Discard returns a logger that writes nothing.
func Discard() *Logger {
	return NewLogger(io.Discard, false)
}

// Logging methods
func (l *Logger) Info(message string) {
	l.infoLogger.Println(message)
}

func (l *Logger) Warn(message string) {
	l.warnLogger.Println(message)
}

func (l *Logger) Error(message string) {
	l.errorLogger.Println(message)
}

func (l *Logger) Debug(message string) {
	l.debugLogger.Println(message)
}

// Debugf formats only when debug output is enabled, so hot paths can log
// without paying for Sprintf.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.debugLogger.Writer() == io.Discard {
		return
	}
	l.debugLogger.Println(fmt.Sprintf(format, args...))
}
