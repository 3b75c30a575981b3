package term

import (
	"bytes"
	"strings"
	"testing"
)

func TestStylerPassesThroughWithoutTerminal(t *testing.T) {
	s := NewStyler(&bytes.Buffer{})

	got := s.Green("Correct!")
	if got != "Correct!" {
		t.Fatalf("expected plain text for non-terminal writer, got %q", got)
	}
	if strings.Contains(s.Bright(s.Red("x")), "\x1b") {
		t.Fatalf("expected no escape codes for non-terminal writer")
	}
}

func TestStylerWrapsWhenEnabled(t *testing.T) {
	s := &Styler{enabled: true}

	got := s.Yellow("Time's up!")
	if !strings.HasPrefix(got, codeYellow) || !strings.HasSuffix(got, codeReset) {
		t.Fatalf("expected styled text, got %q", got)
	}
}
