package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestReporterPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.Section("organize")
	r.Info("info %d", 1)
	r.Log("created %s", "originals")
	r.Warn("moved")
	r.Error("nothing to delete")

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no ANSI codes for non-terminal writer, got %q", out)
	}
	want := "== organize ==\ninfo 1\ncreated originals\nmoved\nnothing to delete\n"
	if out != want {
		t.Fatalf("unexpected output:\n%q\nwant\n%q", out, want)
	}
}

func TestReporterColorsBySeverity(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{out: &buf, colorize: true}

	r.Info("i")
	r.Log("l")
	r.Warn("w")
	r.Error("e")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	wantPrefixes := []string{ansiCyan, ansiGreen, ansiYellow, ansiRed}
	if len(lines) != len(wantPrefixes) {
		t.Fatalf("expected %d lines, got %d", len(wantPrefixes), len(lines))
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, wantPrefixes[i]) || !strings.HasSuffix(line, ansiReset) {
			t.Fatalf("line %d %q missing expected color", i, line)
		}
	}
}

func TestReporterTable(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlainReporter(&buf)
	r.Table([]string{"File", "Captured"}, [][]string{{"b.CR2", "-"}, {"c.CR2"}})
	out := buf.String()
	for _, want := range []string{"File", "Captured", "b.CR2", "c.CR2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "CAPTURED") {
		t.Fatalf("headers should keep their case:\n%s", out)
	}

	buf.Reset()
	r.Table(nil, [][]string{{"x"}})
	if buf.Len() != 0 {
		t.Fatalf("expected no output without headers, got %q", buf.String())
	}
}

func TestSeverityString(t *testing.T) {
	got := []string{SeverityInfo.String(), SeverityLog.String(), SeverityWarn.String(), SeverityError.String()}
	want := []string{"info", "log", "warn", "error"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("severity %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPrompterConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1\n", true},
		{"  1  \n", true},
		{"2\n", false},
		{"yes\n", false},
		{"\n", false},
		{"", false},
		{"1", true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader(tt.input), &out)
		got, err := p.Confirm("Delete 3 files?")
		if err != nil {
			t.Fatalf("Confirm(%q) error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), ConfirmHint) {
			t.Fatalf("prompt missing hint: %q", out.String())
		}
	}
}

func TestPrompterSequentialReads(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("1\n\n"), &out)
	ok, err := p.Confirm("Delete?")
	if err != nil || !ok {
		t.Fatalf("Confirm = %v, %v", ok, err)
	}
	if err := (LinePause{Prompter: p}).Pause(context.Background()); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if !strings.Contains(out.String(), "Press Enter to exit.") {
		t.Fatalf("expected default pause message, got %q", out.String())
	}
}

func TestDelayPause(t *testing.T) {
	if err := (DelayPause{}).Pause(context.Background()); err != nil {
		t.Fatalf("zero delay should return immediately: %v", err)
	}

	start := time.Now()
	if err := (DelayPause{Delay: 20 * time.Millisecond}).Pause(context.Background()); err != nil {
		t.Fatal(err)
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Fatal("pause returned early")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := (DelayPause{Delay: time.Hour}).Pause(ctx); err == nil {
		t.Fatal("expected context error when cancelled")
	}
}
