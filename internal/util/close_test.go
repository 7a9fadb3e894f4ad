package util

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
)

var errCloseFailed = errors.New("disk gone")

type failingCloser struct{ calls int }

func (c *failingCloser) Close() error {
	c.calls++
	return errCloseFailed
}

func TestCloseWrapsName(t *testing.T) {
	c := &failingCloser{}
	err := Close(c, "summary output")
	if !errors.Is(err, errCloseFailed) {
		t.Fatalf("cause lost: %v", err)
	}
	if !strings.Contains(err.Error(), "close summary output") {
		t.Fatalf("name missing: %v", err)
	}
	if c.calls != 1 {
		t.Fatalf("calls=%d", c.calls)
	}
	if err := Close(&failingCloser{}, ""); err == nil || !strings.Contains(err.Error(), "close resource") {
		t.Fatalf("default name missing: %v", err)
	}
}

func TestCloseIgnoresNil(t *testing.T) {
	var typed *failingCloser
	if err := Close(typed, "typed nil"); err != nil {
		t.Fatalf("typed nil: %v", err)
	}
	if err := Close(nil, "nil"); err != nil {
		t.Fatalf("nil: %v", err)
	}
}

func TestCloseWithErrLogs(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	CloseWithErr(&failingCloser{}, "log file")
	if !strings.Contains(buf.String(), "close log file: disk gone") {
		t.Fatalf("unexpected log output: %q", buf.String())
	}
}
