package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellAt(t *testing.T) {
	row := []string{"a", "b"}

	assert.Equal(t, "a", cellAt(row, 0))
	assert.Equal(t, "b", cellAt(row, 1))
	assert.Equal(t, "", cellAt(row, 2))
	assert.Equal(t, "", cellAt(nil, 0))
}

func TestColumnCount(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want int
	}{
		{name: "uniform", rows: [][]string{{"a", "b"}, {"c", "d"}}, want: 2},
		{name: "ragged widest last", rows: [][]string{{"a"}, {"b", "c", "d"}}, want: 3},
		{name: "ragged widest first", rows: [][]string{{"a", "b", "c"}, {"d"}}, want: 3},
		{name: "empty rows only", rows: [][]string{{}, {}}, want: 0},
		{name: "single cell", rows: [][]string{{"a"}}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, columnCount(tt.rows))
		})
	}
}

func TestColumnWidths(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		ansi bool
		want []int
	}{
		{
			name: "max per column",
			rows: [][]string{{"a", "long"}, {"wider", "b"}},
			want: []int{5, 4},
		},
		{
			name: "short rows contribute zero",
			rows: [][]string{{"ab"}, {"c", "dd", "eee"}},
			want: []int{2, 2, 3},
		},
		{
			name: "empty strings",
			rows: [][]string{{"", ""}, {"", "x"}},
			want: []int{0, 1},
		},
		{
			name: "raw length counts escapes when ansi off",
			rows: [][]string{{"\x1b[31mab\x1b[0m"}},
			ansi: false,
			want: []int{11},
		},
		{
			name: "visible length when ansi on",
			rows: [][]string{{"\x1b[31mab\x1b[0m"}, {"xyz"}},
			ansi: true,
			want: []int{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, columnWidths(tt.rows, tt.ansi))
		})
	}
}
