package table

import (
	"regexp"
	"strings"
)

// sgrPattern matches ANSI SGR color escape sequences: ESC '[' followed by
// zero or more ';'-separated decimal parameters, terminated by 'm'
// (e.g. "\x1b[32m", "\x1b[1;31m", "\x1b[0m"). Other CSI sequences are not
// handled; cells containing them will mismeasure.
var sgrPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// ansiReset clears all SGR attributes. It is appended after ANSI-mode
// padding so that a colored cell cannot bleed into the border glyphs.
const ansiReset = "\x1b[0m"

// StripSGR returns s with all ANSI SGR color escape sequences removed.
func StripSGR(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

// VisibleLen returns the display length of s: the character count after
// stripping SGR escape sequences. Wide runes and grapheme clusters are not
// given special treatment.
func VisibleLen(s string) int {
	return len([]rune(StripSGR(s)))
}

// padColored right-pads cell with spaces up to width, measuring by visible
// length, and appends a reset sequence. The padding must be baked into the
// cell value: format-template justification pads by raw length, which
// over-counts once escape bytes are present. A cell whose visible length
// already exceeds width is returned with no padding (it will overflow the
// border, same as an over-wide cell in plain mode).
func padColored(cell string, width int) string {
	pad := width - VisibleLen(cell)
	if pad < 0 {
		pad = 0
	}
	return cell + strings.Repeat(" ", pad) + ansiReset
}
