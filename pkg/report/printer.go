// Package report prints user-facing progress and the final summary of a run.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// NewPrinterParams contains parameters for creating a new Printer.
type NewPrinterParams struct {
	Out     io.Writer
	Quiet   bool
	NoColor bool
}

// Printer writes status lines. In quiet mode only warnings and errors are shown.
type Printer struct {
	out     io.Writer
	quiet   bool
	info    *color.Color
	success *color.Color
	warn    *color.Color
	fail    *color.Color
}

// NewPrinter creates a new Printer.
func NewPrinter(params NewPrinterParams) *Printer {
	out := params.Out
	if out == nil {
		out = os.Stdout
	}

	p := &Printer{
		out:     out,
		quiet:   params.Quiet,
		info:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
	}

	if params.NoColor {
		for _, c := range []*color.Color{p.info, p.success, p.warn, p.fail} {
			c.DisableColor()
		}
	}

	return p
}

// Infof prints a section or informational line.
func (p *Printer) Infof(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	p.info.Fprintf(p.out, format+"\n", args...)
}

// Successf prints a completed action.
func (p *Printer) Successf(format string, args ...interface{}) {
	if p.quiet {
		return
	}
	p.success.Fprintf(p.out, format+"\n", args...)
}

// Warnf prints a warning.
func (p *Printer) Warnf(format string, args ...interface{}) {
	p.warn.Fprintf(p.out, format+"\n", args...)
}

// Errorf prints a recovered error.
func (p *Printer) Errorf(format string, args ...interface{}) {
	p.fail.Fprintf(p.out, format+"\n", args...)
}

// Items prints a bullet list.
func (p *Printer) Items(items []string) {
	if p.quiet {
		return
	}
	for _, item := range items {
		fmt.Fprintf(p.out, " - %s\n", item)
	}
}
