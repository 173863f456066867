// Package iomsg prints user-facing status lines. These are the lines a
// person running the setup reads; structured diagnostics go through
// slog instead (see internal/iologger).
package iomsg

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/udbtool/udb/pkg/errcode"
	"github.com/udbtool/udb/pkg/setup"
)

// Console writes leveled, colorized status lines to a writer.
// Color is suppressed automatically when the writer is not a terminal.
type Console struct {
	w io.Writer

	info    *color.Color
	success *color.Color
	warn    *color.Color
	err     *color.Color
}

// New creates a Console writing to stdout.
func New() *Console {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a Console writing to w. Used in tests.
func NewWithWriter(w io.Writer) *Console {
	return &Console{
		w:       w,
		info:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		err:     color.New(color.FgRed, color.Bold),
	}
}

var _ setup.Reporter = (*Console)(nil)

func (c *Console) Infof(format string, a ...any) {
	c.line(c.info, "", format, a...)
}

func (c *Console) Successf(format string, a ...any) {
	c.line(c.success, "OK ", format, a...)
}

func (c *Console) Warnf(format string, a ...any) {
	c.line(c.warn, "WARNING: ", format, a...)
}

func (c *Console) Errorf(format string, a ...any) {
	c.line(c.err, "ERROR: ", format, a...)
}

// Hint prints the remediation text attached to err, if any, prefixed
// with its error code. Silent when the error carries no hint.
func (c *Console) Hint(err error) {
	var hinter errcode.Hinter
	if !errors.As(err, &hinter) {
		return
	}
	var code errcode.Code
	var coder errcode.Coder
	if errors.As(err, &coder) {
		code = coder.Code()
	}
	fmt.Fprintln(c.w)
	c.line(c.warn, "", "[%s] %s", code, hinter.Hint())
}

func (c *Console) line(
	col *color.Color, prefix, format string, a ...any,
) {
	msg := fmt.Sprintf(format, a...)
	fmt.Fprintln(c.w, col.Sprint(prefix+msg))
}
