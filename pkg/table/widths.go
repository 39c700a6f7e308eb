package table

// cellAt returns the cell at index i, or the empty string when the row is
// too short. Ragged rows are logically padded with empty cells up to the
// grid's column count.
func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// columnCount returns the number of columns in the grid: the length of its
// widest row. Shorter rows still occupy every column, contributing empty
// cells.
func columnCount(rows [][]string) int {
	count := 0
	for _, row := range rows {
		if len(row) > count {
			count = len(row)
		}
	}
	return count
}

// columnWidths computes the width of each column: the maximum measured
// length of any cell in that column across all rows, header included.
// In ANSI mode cells are measured by visible length so that escape bytes
// do not inflate the column.
func columnWidths(rows [][]string, ansi bool) []int {
	widths := make([]int, columnCount(rows))
	for _, row := range rows {
		for i := range widths {
			n := len(cellAt(row, i))
			if ansi {
				n = VisibleLen(cellAt(row, i))
			}
			if n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}
