package tabular

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   [][]string
		want [][]string
	}{
		{
			name: "nil input",
			in:   nil,
			want: nil,
		},
		{
			name: "no rows",
			in:   [][]string{},
			want: nil,
		},
		{
			name: "all rows empty",
			in:   [][]string{{"", ""}, {""}, {}},
			want: nil,
		},
		{
			name: "already clean",
			in:   [][]string{{"a", "b"}, {"c", "d"}},
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "drops empty rows",
			in:   [][]string{{"a", "b"}, {"", ""}, {"c", "d"}},
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "pads ragged rows",
			in:   [][]string{{"a"}, {"b", "c", "d"}},
			want: [][]string{{"a", "", ""}, {"b", "c", "d"}},
		},
		{
			name: "drops empty columns",
			in:   [][]string{{"a", "", "b"}, {"c", "", "d"}},
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "keeps column order",
			in:   [][]string{{"", "x", "", "y"}, {"", "", "", "z"}},
			want: [][]string{{"x", "y"}, {"", "z"}},
		},
		{
			name: "short row padded into populated column",
			in:   [][]string{{"a", "b"}, {"c"}},
			want: [][]string{{"a", "b"}, {"c", ""}},
		},
		{
			name: "single cell",
			in:   [][]string{{"only"}},
			want: [][]string{{"only"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	grids := [][][]string{
		nil,
		{{"a", "b"}, {"", ""}, {"c"}},
		{{"", "x", ""}, {"", "y", "z"}},
		{{"1"}, {"2", "3"}, {"", "", ""}},
	}
	for _, g := range grids {
		once := Normalize(g)
		require.Equal(t, once, Normalize(once))
	}
}

func TestNormalizeRectangular(t *testing.T) {
	in := [][]string{
		{"a"},
		{"b", "c", "d", ""},
		{"", "", "e"},
		{"", "", "", ""},
	}
	got := Normalize(in)
	require.NotEmpty(t, got)
	width := len(got[0])
	for _, row := range got {
		require.Len(t, row, width)
	}
	// No surviving column may be empty across all rows.
	for c := 0; c < width; c++ {
		empty := true
		for _, row := range got {
			if row[c] != "" {
				empty = false
				break
			}
		}
		require.False(t, empty, "column %d is entirely empty", c)
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	in := [][]string{{"a"}, {"b", "c"}}
	_ = Normalize(in)
	require.Equal(t, [][]string{{"a"}, {"b", "c"}}, in)
}
