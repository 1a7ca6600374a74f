package ui

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/zenith/pkg/errors"
	"github.com/arthur-debert/zenith/pkg/markup"
)

// lineCol converts a byte offset in input to 1-based line and column
func lineCol(input string, offset int) (int, int) {
	if offset > len(input) {
		offset = len(input)
	}

	line, col := 1, 1
	for _, r := range input[:offset] {
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

// FormatDiagnostics renders non-fatal render diagnostics for stderr, one
// line each, with the input position when known.
func FormatDiagnostics(input string, diags []markup.Diagnostic) string {
	styles := defaultStyles()

	var b strings.Builder
	for _, d := range diags {
		line, col := lineCol(input, d.Offset)
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			styles.WarningLabel.Render("warning:"),
			d.Message,
			styles.Location.Render(fmt.Sprintf("(%d:%d)", line, col)),
		))
	}
	return b.String()
}

// FormatError renders a fatal error for stderr. Markup errors that carry
// a byte offset get their input position appended.
func FormatError(input string, err error) string {
	styles := defaultStyles()

	msg := err.Error()
	if offset := errors.GetOffset(err); offset >= 0 && input != "" {
		line, col := lineCol(input, offset)
		msg += " " + styles.Location.Render(fmt.Sprintf("(%d:%d)", line, col))
	}

	return fmt.Sprintf("%s %s\n", styles.ErrorLabel.Render("error:"), msg)
}
