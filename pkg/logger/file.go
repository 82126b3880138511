package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

const (
	// DefaultLogFilePath is used when no path is configured.
	DefaultLogFilePath = "log.txt"
	fileTimeFormat     = "2006-01-02 15:04:05"
)

// FileLogger appends timestamped lines to a log file. It is constructed once
// and handed to whoever needs it; there is no package-level instance.
type FileLogger struct {
	mu       sync.Mutex
	fs       afero.Fs
	path     string
	fallback io.Writer
	now      func() time.Time
}

// NewFileLogger returns a logger appending to path on fs. Write failures are
// reported on fallback (stdout when nil).
func NewFileLogger(fs afero.Fs, path string, fallback io.Writer) *FileLogger {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if path == "" {
		path = DefaultLogFilePath
	}
	if fallback == nil {
		fallback = os.Stdout
	}
	return &FileLogger{
		fs:       fs,
		path:     path,
		fallback: fallback,
		now:      time.Now,
	}
}

// SetFilePath changes the file subsequent lines are appended to.
func (l *FileLogger) SetFilePath(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.path = path
}

func (l *FileLogger) FilePath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.path
}

// Log appends message as one line. The file is opened per call so that other
// processes may rotate or remove it between calls.
func (l *FileLogger) Log(message string) (err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	defer func() {
		if err != nil {
			_, _ = fmt.Fprintf(l.fallback, "failed to write log: %v\n", err)
		}
	}()
	if l.path == "" {
		return errors.New("log file path is empty")
	}
	f, err := l.fs.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", l.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", l.path, cerr)
		}
	}()
	w := &errWriter{w: f}
	line := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      fileTimeFormat,
		TimeFunction:    func(time.Time) time.Time { return l.now() },
		Level:           charmlog.InfoLevel,
	})
	line.SetFormatter(charmlog.TextFormatter)
	line.Info(message)
	if w.err != nil {
		return fmt.Errorf("write %s: %w", l.path, w.err)
	}
	return nil
}

// errWriter remembers the first write error, which charm log does not return.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
