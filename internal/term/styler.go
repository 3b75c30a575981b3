package term

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	codeReset  = "\x1b[0m"
	codeBright = "\x1b[1m"
	codeRed    = "\x1b[31m"
	codeGreen  = "\x1b[32m"
	codeYellow = "\x1b[33m"
	codeBlue   = "\x1b[34m"
	codeCyan   = "\x1b[36m"
)

// Styler decorates text with ANSI colors when the target writer is a
// terminal, and passes text through untouched everywhere else.
type Styler struct {
	enabled bool
}

// NewStyler probes w for terminal capability.
func NewStyler(w io.Writer) *Styler {
	enabled := false
	if f, ok := w.(*os.File); ok {
		enabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Styler{enabled: enabled}
}

func (s *Styler) paint(code, text string) string {
	if !s.enabled {
		return text
	}
	return code + text + codeReset
}

func (s *Styler) Bright(text string) string { return s.paint(codeBright, text) }
func (s *Styler) Red(text string) string    { return s.paint(codeRed, text) }
func (s *Styler) Green(text string) string  { return s.paint(codeGreen, text) }
func (s *Styler) Yellow(text string) string { return s.paint(codeYellow, text) }
func (s *Styler) Blue(text string) string   { return s.paint(codeBlue, text) }
func (s *Styler) Cyan(text string) string   { return s.paint(codeCyan, text) }
