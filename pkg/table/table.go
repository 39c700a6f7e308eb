// Package table renders a grid of strings as a fixed-width bordered text
// table, the kind embedded in CLI output and plain-text reports.
//
// The renderer computes each column's width from the widest cell in that
// column, draws separator lines from configurable glyphs, and pads every
// cell with spaces to its column width. Rows may be ragged: the widest row
// determines the column count and shorter rows are padded with empty cells.
// When Config.ANSI is set, cells may contain ANSI SGR color escape
// sequences; they are measured by visible length so colored cells align
// with plain ones.
//
// Example:
//
//	out, err := table.Render([][]string{
//		{"Name", "Rank"},
//		{"alice", "pvt"},
//	}, table.Config{HeaderRow: true})
//
//	+-------+------+
//	| Name  | Rank |
//	+-------+------+
//	| alice | pvt  |
//	+-------+------+
//
// Out of scope: applying color (cells arrive already colored), wide-rune
// and grapheme width, wrapping, truncation, and multi-line cells.
package table

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoRows indicates a nil or zero-row grid.
var ErrNoRows = errors.New("grid must contain at least one row")

// ErrNoColumns indicates a grid whose every row is empty, leaving nothing
// to size columns from.
var ErrNoColumns = errors.New("grid must contain at least one column")

// ConfigError reports an invalid grid passed to Render. It is returned
// before any layout work begins.
type ConfigError struct {
	Message string
	Cause   error
}

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap implements the error unwrapping interface for error chain inspection.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Config controls layout policy and border glyphs for one Render call.
// The zero value renders with the default glyphs and no header, row
// separators, or border suppression.
type Config struct {
	// HeaderRow treats the first row as a header, set off by a rule.
	HeaderRow bool
	// SeparateRows draws a rule between every data row. Combined with
	// HeaderRow, the header gets the heavier header rule instead.
	SeparateRows bool
	// TopAndTail suppresses the outermost top and bottom border lines.
	TopAndTail bool
	// ANSI declares that cells may contain SGR color escape sequences,
	// which must be measured around rather than padded over.
	ANSI bool

	// Separator is the column-separator glyph (default "|").
	Separator string
	// Fill is the row-rule fill glyph (default "-").
	Fill string
	// Corner is the row-rule corner glyph (default "+").
	Corner string
	// HeaderFill is the header-rule fill glyph (default "=").
	HeaderFill string
	// HeaderCorner is the header-rule corner glyph (default "O").
	HeaderCorner string
}

// DefaultConfig returns a Config with the standard glyph set and all layout
// flags off.
func DefaultConfig() Config {
	return Config{
		Separator:    "|",
		Fill:         "-",
		Corner:       "+",
		HeaderFill:   "=",
		HeaderCorner: "O",
	}
}

// withDefaults fills any unset glyph field with its default, so a
// zero-value Config renders the standard border.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Separator == "" {
		c.Separator = d.Separator
	}
	if c.Fill == "" {
		c.Fill = d.Fill
	}
	if c.Corner == "" {
		c.Corner = d.Corner
	}
	if c.HeaderFill == "" {
		c.HeaderFill = d.HeaderFill
	}
	if c.HeaderCorner == "" {
		c.HeaderCorner = d.HeaderCorner
	}
	return c
}

// Render formats the grid as a bordered table and returns it as a single
// string: lines joined by "\n", no trailing newline. Every cell is set off
// by one space on each side of every separator glyph.
//
// Render never modifies the grid, even in ANSI mode (padded cells are local
// copies), so concurrent renders over a shared grid are safe.
//
// A nil or empty grid, or a grid whose rows are all empty, returns a
// *ConfigError; all other shapes (ragged rows, empty cells) are rendered
// without error.
func Render(rows [][]string, cfg Config) (string, error) {
	if rows == nil {
		return "", &ConfigError{Message: "rows must not be nil", Cause: ErrNoRows}
	}
	if len(rows) == 0 {
		return "", &ConfigError{Message: "rows must not be empty", Cause: ErrNoRows}
	}
	cfg = cfg.withDefaults()

	widths := columnWidths(rows, cfg.ANSI)
	if len(widths) == 0 {
		return "", &ConfigError{Message: "every row is empty", Cause: ErrNoColumns}
	}
	rowRule := buildRule(widths, cfg.Fill, cfg.Corner)
	headerRule := buildRule(widths, cfg.HeaderFill, cfg.HeaderCorner)

	var lines []string
	if !cfg.TopAndTail {
		lines = append(lines, rowRule)
	}

	data := rows
	if cfg.HeaderRow {
		lines = append(lines, formatRow(rows[0], widths, cfg.Separator))
		if cfg.SeparateRows {
			lines = append(lines, headerRule)
		} else {
			lines = append(lines, rowRule)
		}
		data = rows[1:]
	}

	for i, row := range data {
		if cfg.ANSI {
			row = coloredCopy(row, widths)
		}
		lines = append(lines, formatRow(row, widths, cfg.Separator))
		if cfg.SeparateRows && !(cfg.TopAndTail && i == len(data)-1) {
			lines = append(lines, rowRule)
		}
	}

	if !cfg.SeparateRows && !cfg.TopAndTail {
		lines = append(lines, rowRule)
	}

	return strings.Join(lines, "\n"), nil
}

// buildRule constructs a full-width separator line: a corner glyph, then
// for each column the fill glyph repeated to cover the cell and its two
// padding spaces, then a corner glyph again.
func buildRule(widths []int, fill, corner string) string {
	var b strings.Builder
	b.WriteString(corner)
	for _, w := range widths {
		b.WriteString(strings.Repeat(fill, w+2))
		b.WriteString(corner)
	}
	return b.String()
}

// formatRow renders one grid row as a table line: each cell left-justified
// to its column width between separator glyphs, one space of padding on
// each side. Missing trailing cells render as empty. ANSI-mode cells arrive
// pre-padded by coloredCopy, so their raw length already meets the column
// width and no further justification applies.
func formatRow(row []string, widths []int, sep string) string {
	var b strings.Builder
	b.WriteString(sep)
	for i, w := range widths {
		fmt.Fprintf(&b, " %-*s %s", w, cellAt(row, i), sep)
	}
	return b.String()
}

// coloredCopy returns a copy of row with every cell padded to its column
// width by visible length and suffixed with an SGR reset. The original row
// is left untouched.
func coloredCopy(row []string, widths []int) []string {
	padded := make([]string, len(widths))
	for i := range widths {
		padded[i] = padColored(cellAt(row, i), widths[i])
	}
	return padded
}
