package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadLengthRetries(t *testing.T) {
	in := strings.NewReader("abc\n0\n101\n  12 \n")
	var out bytes.Buffer
	n, err := ReadLength(in, &out, 1, 100)
	if err != nil {
		t.Fatalf("read length: %v", err)
	}
	if n != 12 {
		t.Fatalf("n=%d", n)
	}
	text := out.String()
	if got := strings.Count(text, LengthPrompt); got != 4 {
		t.Fatalf("expected 4 prompts, got %d: %q", got, text)
	}
	if got := strings.Count(text, InvalidInput); got != 1 {
		t.Fatalf("expected 1 invalid input message, got %d", got)
	}
	if got := strings.Count(text, InvalidLength); got != 2 {
		t.Fatalf("expected 2 invalid length messages, got %d", got)
	}
}

func TestReadLengthLastLineWithoutNewline(t *testing.T) {
	n, err := ReadLength(strings.NewReader("100"), io.Discard, 1, 100)
	if err != nil || n != 100 {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestReadLengthEOF(t *testing.T) {
	_, err := ReadLength(strings.NewReader("x\n"), io.Discard, 1, 100)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected unexpected EOF, got %v", err)
	}
	_, err = ReadLength(strings.NewReader("200"), io.Discard, 1, 100)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected unexpected EOF for trailing invalid value, got %v", err)
	}
}
