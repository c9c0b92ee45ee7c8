// Package output renders report sections and diagnostic narration for the CLI.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// ColorMode represents color output mode
type ColorMode int

const (
	// ColorAuto enables colors when stdout is a terminal (default)
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever forces colors off
	ColorNever
)

// sectionRule separates report sections.
const sectionRule = "--------------------"

// ParseColorMode parses a string into a ColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// ResolveColors determines whether to use colors based on mode and environment
func ResolveColors(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		if os.Getenv("TERM") == "dumb" {
			return false
		}
		return !color.NoColor
	}
}

// Printer writes report output to out and narration to diag.
type Printer struct {
	out       io.Writer
	diag      io.Writer
	useColors bool
}

// NewPrinter creates a printer writing to the given streams.
func NewPrinter(out, diag io.Writer, useColors bool) *Printer {
	return &Printer{out: out, diag: diag, useColors: useColors}
}

// Out returns the report stream.
func (p *Printer) Out() io.Writer { return p.out }

// Section prints a report section header: a rule, the title, and two blank lines.
func (p *Printer) Section(title string) {
	fmt.Fprintln(p.out, sectionRule)
	if p.useColors {
		color.New(color.Bold).Fprint(p.out, title)
		fmt.Fprint(p.out, "\n\n\n")
		return
	}
	fmt.Fprintf(p.out, "%s\n\n\n", title)
}

// Rule prints a bare section rule on the diagnostic stream.
func (p *Printer) Rule() {
	fmt.Fprintln(p.diag, sectionRule)
}

// Note prints a narration line on the diagnostic stream.
func (p *Printer) Note(format string, args ...any) {
	if p.useColors {
		color.New(color.FgCyan).Fprintf(p.diag, format+"\n", args...)
		return
	}
	fmt.Fprintf(p.diag, format+"\n", args...)
}

// List prints items joined by ", " on the diagnostic stream.
func (p *Printer) List(items []string) {
	fmt.Fprintln(p.diag, strings.Join(items, ", "))
}
