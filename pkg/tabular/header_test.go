package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferHeaderRow(t *testing.T) {
	tests := []struct {
		name string
		grid [][]string
		want bool
	}{
		{
			name: "header over numeric body",
			grid: [][]string{{"Name", "Qty"}, {"Apple", "3"}, {"Pear", "5"}},
			want: true,
		},
		{
			name: "narrative text misdetected as table",
			grid: [][]string{{"Total Report"}, {"See attached narrative."}},
			want: false,
		},
		{
			name: "numeric cell in first row",
			grid: [][]string{{"Name", "2024"}, {"Apple", "3"}},
			want: false,
		},
		{
			name: "empty grid",
			grid: nil,
			want: false,
		},
		{
			name: "empty first row",
			grid: [][]string{{}},
			want: false,
		},
		{
			name: "no data body",
			grid: [][]string{{"Name", "Qty"}},
			want: false,
		},
		{
			name: "body of empty cells only",
			grid: [][]string{{"Name", "Qty"}, {"", ""}},
			want: false,
		},
		{
			name: "comma thousands count as numeric",
			grid: [][]string{{"Item", "Amount"}, {"Total", "1,234.50"}},
			want: true,
		},
		{
			name: "empty header cells are acceptable",
			grid: [][]string{{"Name", ""}, {"Apple", "3"}},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := InferHeaderRow(tt.grid, DefaultHeaderNumericRatio)
			require.Equal(t, tt.want, ok)
			if ok {
				assert.Equal(t, 0, idx)
			}
		})
	}
}

func TestInferHeaderRowThresholdBoundary(t *testing.T) {
	// 20 body cells, 3 numeric: ratio exactly 0.15 must not pass.
	grid := [][]string{{"A", "B"}}
	for i := 0; i < 10; i++ {
		grid = append(grid, []string{"x", "y"})
	}
	grid[1][0], grid[2][0], grid[3][0] = "1", "2", "3"
	_, ok := InferHeaderRow(grid, DefaultHeaderNumericRatio)
	assert.False(t, ok, "ratio at the threshold must not infer a header")

	// One more numeric cell pushes the ratio past the threshold.
	grid[4][0] = "4"
	_, ok = InferHeaderRow(grid, DefaultHeaderNumericRatio)
	assert.True(t, ok)
}

func TestInferHeaderRowDeterministic(t *testing.T) {
	grid := [][]string{{"Name", "Qty"}, {"Apple", "3"}, {"Pear", "5"}}
	first, firstOK := InferHeaderRow(grid, DefaultHeaderNumericRatio)
	for i := 0; i < 10; i++ {
		idx, ok := InferHeaderRow(grid, DefaultHeaderNumericRatio)
		require.Equal(t, first, idx)
		require.Equal(t, firstOK, ok)
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, isNumeric("3"))
	assert.True(t, isNumeric("-1.5"))
	assert.True(t, isNumeric("1,234"))
	assert.True(t, isNumeric(" 42 "))
	assert.False(t, isNumeric(""))
	assert.False(t, isNumeric("Apple"))
	assert.False(t, isNumeric("Q1"))
}
