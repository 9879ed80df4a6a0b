// Package logger provides leveled terminal output for the generator CLI and
// the default diagnostic sink.
package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
)

// LogLevel represents the verbosity level
type LogLevel int

const (
	LogLevelQuiet LogLevel = iota
	LogLevelNormal
	LogLevelVerbose
	LogLevelDebug
)

// ANSI color codes for terminal output
const (
	ColorReset   = "\033[0m"
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorCyan    = "\033[36m"
	ColorGray    = "\033[90m"
	ColorMagenta = "\033[35m"
)

// Logger handles all logging for the generator
type Logger struct {
	mu        sync.Mutex
	level     LogLevel
	writer    io.Writer
	errWriter io.Writer
	colors    bool
}

var defaultLogger = &Logger{
	level:     LogLevelNormal,
	writer:    os.Stdout,
	errWriter: os.Stderr,
	colors:    detectColorSupport(os.Stdout),
}

// SetLevel sets the global log level
func SetLevel(level LogLevel) {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	defaultLogger.level = level
}

// Level returns the global log level
func Level() LogLevel {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	return defaultLogger.level
}

// SetVerbose enables verbose logging
func SetVerbose(verbose bool) {
	if verbose && Level() < LogLevelVerbose {
		SetLevel(LogLevelVerbose)
	}
}

// SetColors enables or disables color output
func SetColors(enabled bool) {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	defaultLogger.colors = enabled
}

// SetOutput redirects normal and error output. Colors are re-detected for w.
func SetOutput(w, errW io.Writer) {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	defaultLogger.writer = w
	defaultLogger.errWriter = errW
	defaultLogger.colors = detectColorSupport(w)
}

// detectColorSupport checks if the terminal supports colors
func detectColorSupport(writer io.Writer) bool {
	// https://no-color.org/
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}

	file, ok := writer.(*os.File)
	if !ok {
		return false
	}

	stat, err := file.Stat()
	if err != nil {
		return false
	}

	return (stat.Mode() & os.ModeCharDevice) != 0
}

func (l *Logger) printf(w io.Writer, min LogLevel, label, color, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.level < min {
		return
	}

	prefix := label
	if l.colors {
		prefix = color + label + ColorReset
	}

	fmt.Fprintf(w, prefix+format+"\n", args...)
}

// Info logs informational messages (always shown unless quiet)
func Info(format string, args ...any) {
	defaultLogger.printf(defaultLogger.writer, LogLevelNormal, "[INFO] ", ColorCyan, format, args...)
}

// Success logs success messages
func Success(format string, args ...any) {
	defaultLogger.printf(defaultLogger.writer, LogLevelNormal, "[SUCCESS] ", ColorGreen, format, args...)
}

// Warning logs warning messages
func Warning(format string, args ...any) {
	defaultLogger.printf(defaultLogger.errWriter, LogLevelNormal, "[WARNING] ", ColorYellow, format, args...)
}

// Error logs error messages (always shown)
func Error(format string, args ...any) {
	defaultLogger.printf(defaultLogger.errWriter, LogLevelQuiet, "[ERROR] ", ColorRed, format, args...)
}

// Verbose logs detailed information (only in verbose mode)
func Verbose(format string, args ...any) {
	defaultLogger.printf(defaultLogger.writer, LogLevelVerbose, "  [VERBOSE] ", ColorGray, format, args...)
}

// Debug logs debug information with the caller (only in debug mode)
func Debug(format string, args ...any) {
	if !IsDebugEnabled() {
		return
	}

	if pc, file, line, ok := runtime.Caller(1); ok {
		parts := strings.Split(runtime.FuncForPC(pc).Name(), ".")
		format = fmt.Sprintf("(%s:%d %s) ", file, line, parts[len(parts)-1]) + format
	}

	defaultLogger.printf(defaultLogger.writer, LogLevelDebug, "  [DEBUG] ", ColorMagenta, format, args...)
}

// IsDebugEnabled returns true if debug logging is enabled
func IsDebugEnabled() bool {
	return Level() >= LogLevelDebug
}

// IsVerboseEnabled returns true if verbose logging is enabled
func IsVerboseEnabled() bool {
	return Level() >= LogLevelVerbose
}
