// Package debuglog writes diagnostics to an append-only file.
//
// The terminal belongs to the TUI, so nothing is ever printed to stdout or
// stderr from here. A nil *Logger discards everything.
package debuglog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

// EnvVar turns debug logging on when set to "1"
const EnvVar = "TODOSCREEN_DEBUG"

// DefaultPath returns the default debug log location
func DefaultPath() string {
	return filepath.Join(os.TempDir(), "todoscreen-debug.log")
}

// Logger tags each line with the session it belongs to
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	closer  io.Closer
	lock    *flock.Flock // shared with other processes logging to the same file
	session string
	now     func() time.Time

	// first write failure, handed out once by TakeErr
	err      error
	reported bool
}

// LockPath returns the lock file guarding the log at path
func LockPath(path string) string {
	return path + ".lock"
}

// Open appends to the file at path, creating it if needed. Several
// sessions may share one file; each line is written under LockPath(path).
func Open(path, session string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	l := New(f, session)
	l.closer = f
	l.lock = flock.New(LockPath(path))
	return l, nil
}

// New wraps an arbitrary writer
func New(w io.Writer, session string) *Logger {
	return &Logger{w: w, session: session, now: time.Now}
}

// Printf writes one line. The first write failure is kept for TakeErr.
func (l *Logger) Printf(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	// Write anyway if the lock is unavailable
	if l.lock != nil {
		if err := l.lock.Lock(); err != nil {
			l.fail(fmt.Errorf("lock debug log: %w", err))
		} else {
			defer l.lock.Unlock()
		}
	}

	prefix := l.now().Format("15:04:05.000")
	if l.session != "" {
		prefix += " [" + l.session + "]"
	}
	if _, err := fmt.Fprintf(l.w, prefix+" "+format+"\n", args...); err != nil {
		l.fail(fmt.Errorf("write debug log: %w", err))
		return
	}
	if f, ok := l.w.(*os.File); ok {
		if err := f.Sync(); err != nil {
			l.fail(fmt.Errorf("sync debug log: %w", err))
		}
	}
}

func (l *Logger) fail(err error) {
	if l.err == nil && !l.reported {
		l.err = err
	}
}

// TakeErr returns the first write failure, once. Later failures are not
// reported again.
func (l *Logger) TakeErr() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.err
	if err != nil {
		l.err = nil
		l.reported = true
	}
	return err
}

// Close closes the underlying file if the logger opened one
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	var errs []error
	if l.lock != nil {
		if err := l.lock.Close(); err != nil {
			errs = append(errs, fmt.Errorf("release lock: %w", err))
		}
	}
	if err := l.closer.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close file: %w", err))
	}
	return errors.Join(errs...)
}
