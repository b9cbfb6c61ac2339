package debuglog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNilLoggerIsNoop(t *testing.T) {
	var l *Logger
	l.Printf("ignored %d", 1)
	if err := l.Close(); err != nil {
		t.Fatalf("Close on nil logger: %v", err)
	}
}

func TestPrintfFormatsLine(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "abc")
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 6000000, time.UTC) }

	l.Printf("dispatch %s -> %d todos", "add_todo", 2)

	want := "03:04:05.006 [abc] dispatch add_todo -> 2 todos\n"
	if buf.String() != want {
		t.Fatalf("line = %q, want %q", buf.String(), want)
	}
}

func TestPrintfWithoutSession(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "")
	l.Printf("hello")
	if strings.Contains(buf.String(), "[") {
		t.Fatalf("unexpected session tag in %q", buf.String())
	}
}

func TestOpenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")

	for i := 0; i < 2; i++ {
		l, err := Open(path, "s")
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		l.Printf("run %d", i)
		if err := l.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), data)
	}
	if !strings.HasSuffix(lines[1], "run 1") {
		t.Errorf("last line = %q", lines[1])
	}
}

func TestOpenSharedAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	a, err := Open(path, "one")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	b, err := Open(path, "two")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	a.Printf("from a")
	b.Printf("from b")
	a.Printf("from a again")
	a.Close()
	b.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	got := string(data)
	for _, want := range []string{"[one] from a\n", "[two] from b\n", "[one] from a again\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("log missing %q:\n%s", want, got)
		}
	}
	if _, err := os.Stat(LockPath(path)); err != nil {
		t.Errorf("lock file not created: %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestTakeErrReportsFirstFailureOnce(t *testing.T) {
	l := New(failingWriter{}, "s")
	if err := l.TakeErr(); err != nil {
		t.Fatalf("TakeErr before any write = %v", err)
	}

	l.Printf("one")
	l.Printf("two")

	err := l.TakeErr()
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("TakeErr = %v, want the write failure", err)
	}
	if err := l.TakeErr(); err != nil {
		t.Fatalf("second TakeErr = %v, want nil", err)
	}

	l.Printf("three")
	if err := l.TakeErr(); err != nil {
		t.Fatalf("failure reported twice: %v", err)
	}
}

func TestTakeErrNilLogger(t *testing.T) {
	var l *Logger
	if err := l.TakeErr(); err != nil {
		t.Fatalf("TakeErr on nil logger = %v", err)
	}
}

func TestCloseReportsFileError(t *testing.T) {
	l, err := Open(filepath.Join(t.TempDir(), "debug.log"), "s")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	l.Printf("hello")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	err = l.Close()
	if err == nil || !strings.Contains(err.Error(), "close file") {
		t.Fatalf("second Close = %v, want a close error", err)
	}
}
