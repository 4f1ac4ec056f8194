// Package log writes leveled, categorized debug lines for the demo binary.
// Library packages never log; only cmd/ wires this up.
package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatConfig Category = "config" // flags and contacts file
	CatSearch Category = "search" // query matching and highlighting
	CatUI     Category = "ui"     // model updates
)

type logger struct {
	mu       sync.Mutex
	w        io.Writer
	minLevel Level
}

var (
	mu      sync.Mutex
	current *logger
)

// Init opens path through tea.LogToFile and routes every later call there.
// The returned func closes the file and disables logging.
func Init(path, prefix string) (func(), error) {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	setWriter(f)
	return func() {
		setWriter(nil)
		_ = f.Close()
	}, nil
}

func setWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		current = nil
		return
	}
	current = &logger{w: w, minLevel: LevelDebug}
}

// SetMinLevel drops messages below level. No-op before Init.
func SetMinLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()
	if current != nil {
		current.minLevel = level
	}
}

func Debug(cat Category, msg string, fields ...any) { write(LevelDebug, cat, msg, fields...) }
func Info(cat Category, msg string, fields ...any)  { write(LevelInfo, cat, msg, fields...) }
func Warn(cat Category, msg string, fields ...any)  { write(LevelWarn, cat, msg, fields...) }
func Error(cat Category, msg string, fields ...any) { write(LevelError, cat, msg, fields...) }

// ErrorErr logs at error level with err appended as the "error" field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

func write(level Level, cat Category, msg string, fields ...any) {
	mu.Lock()
	l := current
	mu.Unlock()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.minLevel {
		return
	}
	_, _ = io.WriteString(l.w, format(time.Now(), level, cat, msg, fields...))
}

// format renders one line:
// 2026-01-02T15:04:05 [INFO] [search] message key=value
func format(ts time.Time, level Level, cat Category, msg string, fields ...any) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] [%s] %s", ts.Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&sb, " %v=<missing>", fields[len(fields)-1])
	}
	sb.WriteByte('\n')
	return sb.String()
}
