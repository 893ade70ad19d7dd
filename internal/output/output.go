// Package output provides formatted console output for vecgen.
package output

import (
	"fmt"
	"io"
	"os"
)

// ANSI color codes.
const (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"
	red   = "\033[31m"
	green = "\033[32m"
	cyan  = "\033[36m"
)

// Writer handles console output formatting.
type Writer struct {
	out   io.Writer
	err   io.Writer
	color bool
}

// New creates a new Writer with default settings.
func New() *Writer {
	return &Writer{
		out:   os.Stdout,
		err:   os.Stderr,
		color: isTerminal(),
	}
}

// NewWithWriters creates a Writer with custom io.Writers (for testing).
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	return &Writer{
		out:   out,
		err:   err,
		color: color,
	}
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format+"\n", args...)
}

// ErrorPrefix prints an error message with the vecgen prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%svecgen:%s %s", red, reset, msg)
	} else {
		w.Errorln("vecgen: %s", msg)
	}
}

// Action prints an action message (what the tool is doing).
func (w *Writer) Action(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Println("%s%s%s", cyan, msg, reset)
	} else {
		w.Println("%s", msg)
	}
}

// Generated prints a per-item success line with a check mark.
func (w *Writer) Generated(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Println("%s%s%s %s", green, "✓", reset, msg)
	} else {
		w.Println("✓ %s", msg)
	}
}

// Detail prints an indented detail line under a per-item message.
func (w *Writer) Detail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Println("  %s%s%s", dim, msg, reset)
	} else {
		w.Println("  %s", msg)
	}
}

// Banner prints a highlighted banner block around a title.
func (w *Writer) Banner(title string) {
	rule := "============================================================"
	if w.color {
		w.Println("%s%s%s", bold+cyan, rule, reset)
		w.Println("%s%s%s", bold+cyan, title, reset)
		w.Println("%s%s%s", bold+cyan, rule, reset)
	} else {
		w.Println("%s", rule)
		w.Println("%s", title)
		w.Println("%s", rule)
	}
}

// Section prints a section header.
func (w *Writer) Section(title string) {
	if w.color {
		w.Println("%s%s%s", bold, title, reset)
	} else {
		w.Println("%s", title)
	}
}

// List prints a list of items.
func (w *Writer) List(items []string) {
	for _, item := range items {
		w.Println("  - %s", item)
	}
}

// Step prints a numbered step message.
func (w *Writer) Step(num int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Println("%s%d.%s %s", cyan, num, reset, msg)
	} else {
		w.Println("%d. %s", num, msg)
	}
}

// isTerminal returns true if stdout is a terminal.
func isTerminal() bool {
	if fi, _ := os.Stdout.Stat(); fi != nil {
		return (fi.Mode() & os.ModeCharDevice) != 0
	}
	return false
}
