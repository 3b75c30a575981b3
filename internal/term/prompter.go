package term

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// Prompter reads newline-terminated input with an optional per-call
// deadline. All reads happen on one background goroutine, because a
// blocked terminal read cannot be interrupted: when a deadline fires the
// in-flight read stays pending and whatever it eventually produces is
// delivered to the next call, never to the question that timed out.
//
// Prompter is not safe for concurrent callers; the game is a single
// sequential prompt loop.
type Prompter struct {
	out      io.Writer
	requests chan struct{}
	lines    chan string
	pending  bool
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		out:      out,
		requests: make(chan struct{}),
		lines:    make(chan string),
	}
	go p.readLoop(in)
	return p
}

func (p *Prompter) readLoop(in io.Reader) {
	reader := bufio.NewReader(in)
	for range p.requests {
		// On EOF the partial text (possibly empty) still counts as the
		// answer, so piped sessions finish instead of hanging.
		text, _ := reader.ReadString('\n')
		p.lines <- strings.TrimSpace(text)
	}
}

// ReadAnswer prints prompt and waits for one line. ok is false when the
// deadline elapsed first. timeout <= 0 waits indefinitely. The deadline
// timer is local to the call and stopped on every exit path.
func (p *Prompter) ReadAnswer(prompt string, timeout time.Duration) (answer string, ok bool) {
	fmt.Fprint(p.out, prompt)

	if !p.pending {
		p.requests <- struct{}{}
		p.pending = true
	}

	var deadline <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	select {
	case text := <-p.lines:
		p.pending = false
		return text, true
	case <-deadline:
		return "", false
	}
}

// ReadLine is an undeadlined ReadAnswer for preference prompts.
func (p *Prompter) ReadLine(prompt string) string {
	text, _ := p.ReadAnswer(prompt, 0)
	return text
}
