package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file, relative to the working directory.
const DefaultPath = "logs/boxview.txt"

const timeLayout = "2006-01-02 15:04:05"

// Logger keeps lines in memory for the UI overlay, appends them to a file on disk and
// mirrors them to an optional writer (stderr in the binary). Write failures are dropped:
// logging never fails the caller.
type Logger struct {
	mu    sync.Mutex
	path  string
	out   io.Writer
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path (empty = memory and out only) and out (may be nil).
// The directory of path is created if needed.
func New(path string, out io.Writer) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, out: out, lines: make([]string, 0), now: time.Now}
}

// Log stores line prefixed with [timestamp] and appends it to the file and writer.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format(timeLayout) + "] " + line

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, stamped)
	if l.out != nil {
		_, _ = io.WriteString(l.out, stamped+"\n")
	}
	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to format and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Tail returns a copy of the last n stored lines (fewer if not that many, none for n <= 0).
func (l *Logger) Tail(n int) []string {
	if n <= 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	start := max(len(l.lines)-n, 0)
	out := make([]string, len(l.lines)-start)
	copy(out, l.lines[start:])
	return out
}
