package output

import (
	"bytes"
	"strings"
	"testing"
)

func newTestWriter() (*Writer, *bytes.Buffer, *bytes.Buffer) {
	var out, err bytes.Buffer
	return NewWithWriters(&out, &err, false), &out, &err
}

func TestPrintln_WritesToStdout(t *testing.T) {
	w, out, errBuf := newTestWriter()

	w.Println("hello %s", "world")

	if out.String() != "hello world\n" {
		t.Errorf("stdout = %q, want %q", out.String(), "hello world\n")
	}
	if errBuf.Len() != 0 {
		t.Errorf("stderr = %q, want empty", errBuf.String())
	}
}

func TestErrorPrefix_WritesToStderrWithPrefix(t *testing.T) {
	w, out, errBuf := newTestWriter()

	w.ErrorPrefix("something failed")

	if got := errBuf.String(); got != "vecgen: something failed\n" {
		t.Errorf("stderr = %q, want %q", got, "vecgen: something failed\n")
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
}

func TestGenerated_PlainMode_UsesCheckMark(t *testing.T) {
	w, out, _ := newTestWriter()

	w.Generated("Generated test case %d: %s", 1, "zero")

	if got := out.String(); got != "✓ Generated test case 1: zero\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestList_IndentsItems(t *testing.T) {
	w, out, _ := newTestWriter()

	w.List([]string{"a.json", "b.json"})

	want := "  - a.json\n  - b.json\n"
	if out.String() != want {
		t.Errorf("stdout = %q, want %q", out.String(), want)
	}
}

func TestBanner_WrapsTitleInRules(t *testing.T) {
	w, out, _ := newTestWriter()

	w.Banner("Done")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("banner has %d lines, want 3", len(lines))
	}
	if lines[1] != "Done" {
		t.Errorf("banner title = %q, want Done", lines[1])
	}
	if !strings.HasPrefix(lines[0], "====") || lines[0] != lines[2] {
		t.Errorf("banner rules = %q / %q", lines[0], lines[2])
	}
}

func TestStep_NumbersSteps(t *testing.T) {
	w, out, _ := newTestWriter()

	w.Step(2, "Compile: %s", "./scripts/compile.sh")

	if got := out.String(); got != "2. Compile: ./scripts/compile.sh\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestColorMode_WrapsWithANSICodes(t *testing.T) {
	var out, errBuf bytes.Buffer
	w := NewWithWriters(&out, &errBuf, true)

	w.Generated("done")

	if !strings.Contains(out.String(), "\033[32m") {
		t.Errorf("stdout = %q, want ANSI green", out.String())
	}
}
