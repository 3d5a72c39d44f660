// Package logging is a minimal leveled wrapper over the standard
// library's log package for the bot layer (cmd/demobot uses it). The
// engine core (hsm, tree, syntax) does not log at all; this package
// exists only so chat-bot operational output can be filtered by level
// without pulling a third-party logging library into the engine itself.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level is a log verbosity, ordered Debug < Info < Warn < Error.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config string ("debug", "info", "warn", "error",
// case-insensitive) to a Level, defaulting to Info on an unrecognized
// value.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return Debug
	case "warn":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

// Logger is a leveled logger backed by the standard library's *log.Logger,
// used by cmd/demobot for timestamped operational lines of the form
// "LEVEL: message".
type Logger struct {
	min Level
	std *log.Logger
}

// New returns a Logger writing to w, with lines below min suppressed.
func New(w io.Writer, min Level) *Logger {
	return &Logger{min: min, std: log.New(w, "", log.LstdFlags)}
}

// Default returns a Logger writing to os.Stderr at Info level.
func Default() *Logger { return New(os.Stderr, Info) }

func (l *Logger) logf(level Level, format string, args ...any) {
	if level < l.min {
		return
	}
	l.std.Printf("%s: %s", level, fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(Debug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(Info, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(Warn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(Error, format, args...) }
