package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// ConfirmHint is appended to every confirmation question.
const ConfirmHint = "delete: type 1, cancel: type 2"

// confirmToken is the only answer accepted as "yes".
const confirmToken = "1"

// Prompter reads single-line answers from the user.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter reads answers from in and writes questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Confirm asks question and reports whether the user typed the confirm
// token. Any other answer, including end of input, is a refusal.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s (%s): ", strings.TrimSpace(question), ConfirmHint)
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	return line == confirmToken, nil
}

// WaitForEnter prints message and blocks until a line (or end of input) is read.
func (p *Prompter) WaitForEnter(message string) error {
	fmt.Fprint(p.out, strings.TrimSpace(message)+" ")
	_, err := p.readLine()
	return err
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(p.out)
	}
	return strings.TrimSpace(line), nil
}

// LinePause waits for the user to press Enter.
type LinePause struct {
	Prompter *Prompter
	Message  string
}

func (p LinePause) Pause(context.Context) error {
	msg := p.Message
	if strings.TrimSpace(msg) == "" {
		msg = "Press Enter to exit."
	}
	return p.Prompter.WaitForEnter(msg)
}

// DelayPause sleeps for a fixed duration before exit.
type DelayPause struct {
	Delay time.Duration
}

func (p DelayPause) Pause(ctx context.Context) error {
	if p.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
