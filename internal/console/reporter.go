package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// Severity is the semantic category of a console line.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityLog
	SeverityWarn
	SeverityError
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
)

func (s Severity) String() string {
	switch s {
	case SeverityLog:
		return "log"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

func (s Severity) color() string {
	switch s {
	case SeverityLog:
		return ansiGreen
	case SeverityWarn:
		return ansiYellow
	case SeverityError:
		return ansiRed
	default:
		return ansiCyan
	}
}

// Reporter prints user-facing progress lines. Color is applied only when the
// destination is a terminal.
type Reporter struct {
	mu       sync.Mutex
	out      io.Writer
	colorize bool
}

// NewReporter builds a reporter for out, detecting terminal support.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out, colorize: ShouldColorize(out)}
}

// NewPlainReporter builds a reporter that never emits ANSI sequences.
func NewPlainReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) Info(format string, args ...any) { r.print(SeverityInfo, format, args...) }

func (r *Reporter) Log(format string, args ...any) { r.print(SeverityLog, format, args...) }

func (r *Reporter) Warn(format string, args ...any) { r.print(SeverityWarn, format, args...) }

func (r *Reporter) Error(format string, args ...any) { r.print(SeverityError, format, args...) }

// Section prints an emphasized banner line.
func (r *Reporter) Section(title string) {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	if r.colorize {
		line = ansiBold + ansiCyan + line + ansiReset
	}
	r.write(line + "\n")
}

// Table prints a rendered table without severity coloring. Columns listed in
// rightAligned (zero-based) are right aligned.
func (r *Reporter) Table(headers []string, rows [][]string, rightAligned ...int) {
	right := make(map[int]bool, len(rightAligned))
	for _, idx := range rightAligned {
		right[idx] = true
	}
	rendered := renderTable(headers, rows, right)
	if rendered == "" {
		return
	}
	r.write(rendered + "\n")
}

func (r *Reporter) print(sev Severity, format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if r.colorize {
		line = sev.color() + line + ansiReset
	}
	r.write(line + "\n")
}

func (r *Reporter) write(s string) {
	if r == nil || r.out == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = io.WriteString(r.out, s)
}

// ShouldColorize reports whether writer is a terminal that accepts ANSI colors.
func ShouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsInteractive reports whether reader is attached to a terminal.
func IsInteractive(reader io.Reader) bool {
	file, ok := reader.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
