package file

import (
	"fmt"
	"time"
)

// Logger writes the engine's info log. Lines are timestamped and the
// backing handle is opened non-inheritable like every other handle in
// this package.
type Logger struct {
	f *WritableFile
}

// NewLogger opens (appending) the log file at name.
func NewLogger(name string) (*Logger, error) {
	f, err := NewAppendableFile(name)
	if err != nil {
		return nil, err
	}
	return &Logger{f: f}, nil
}

// Printf formats one log line.
func (l *Logger) Printf(format string, v ...interface{}) {
	now := time.Now().Format("2006/01/02-15:04:05.000000")
	_, _ = fmt.Fprintf(l.f, "%s %s\n", now, fmt.Sprintf(format, v...))
}

func (l *Logger) Sync() error {
	return l.f.Sync()
}

func (l *Logger) Close() error {
	return l.f.Close()
}
