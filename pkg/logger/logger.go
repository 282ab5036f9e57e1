package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"doc-translator/internal/domain"
)

// LogLevel represents different logging levels
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// RequestIDField is lifted out of the key/value list into the line prefix.
const RequestIDField = "request_id"

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

// AppLogger implements domain.Logger with one line per entry:
//
//	2024-01-02T15:04:05Z INFO [req-id] message key=value key="with spaces"
type AppLogger struct {
	level  LogLevel
	logger *log.Logger
	now    func() time.Time
}

// NewLogger creates a logger writing to stdout
func NewLogger(levelStr string) domain.Logger {
	return NewLoggerWithWriter(levelStr, os.Stdout)
}

// NewLoggerWithWriter creates a logger that writes to w. The CLI passes
// stderr so translated text on stdout stays clean.
func NewLoggerWithWriter(levelStr string, w io.Writer) domain.Logger {
	return &AppLogger{
		level:  parseLogLevel(levelStr),
		logger: log.New(w, "", 0),
		now:    time.Now,
	}
}

// Info logs an info message
func (l *AppLogger) Info(msg string, fields ...interface{}) {
	l.log(INFO, msg, fields)
}

// Error logs an error message. A nil err adds no error field.
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	if err != nil {
		fields = append([]interface{}{"error", err}, fields...)
	}
	l.log(ERROR, msg, fields)
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	l.log(DEBUG, msg, fields)
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	l.log(WARN, msg, fields)
}

func (l *AppLogger) log(level LogLevel, msg string, fields []interface{}) {
	if level < l.level {
		return
	}

	var sb strings.Builder
	sb.WriteString(l.now().UTC().Format(time.RFC3339))
	sb.WriteByte(' ')
	sb.WriteString(levelNames[level])

	pairs := make([]string, 0, len(fields)/2)
	requestID := ""
	// a trailing key without a value is dropped
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprint(fields[i])
		value := fmt.Sprint(fields[i+1])
		if key == RequestIDField {
			requestID = value
			continue
		}
		pairs = append(pairs, key+"="+quoteValue(value))
	}

	if requestID != "" {
		sb.WriteString(" [" + requestID + "]")
	}
	sb.WriteByte(' ')
	sb.WriteString(msg)
	for _, p := range pairs {
		sb.WriteByte(' ')
		sb.WriteString(p)
	}

	l.logger.Println(sb.String())
}

// quoteValue quotes values that would otherwise break key=value parsing.
func quoteValue(v string) string {
	if v == "" || strings.ContainsAny(v, " \t\n\"=") {
		return strconv.Quote(v)
	}
	return v
}

// parseLogLevel converts string log level to LogLevel enum
func parseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}
