package schematic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSumValidNumbers(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		grid string
		want uint32
	}{
		{
			name: "diagonal contact",
			grid: "467..114..\n...*......\n",
			want: 467,
		},
		{
			name: "no symbols",
			grid: "467..114..\n..........\n",
			want: 0,
		},
		{
			name: "counted once when several digits touch",
			grid: "12\n**\n",
			want: 12,
		},
		{
			name: "counted once when touching several symbols",
			grid: "#.#\n.5.\n#.#\n",
			want: 5,
		},
		{
			name: "symbol to the left",
			grid: "$99\n...\n",
			want: 99,
		},
		{
			name: "symbol to the right at last column",
			grid: "..7/\n....\n",
			want: 7,
		},
		{
			name: "symbol below",
			grid: "...\n.8.\n.-.\n",
			want: 8,
		},
		{
			name: "runs are not joined across rows",
			grid: "..12\n34.#\n",
			want: 12,
		},
		{
			name: "symbol on previous row end does not reach next row start",
			grid: "...#\n7...\n",
			want: 0,
		},
		{
			name: "open run flushed at end of buffer",
			grid: "..#\n..7",
			want: 7,
		},
		{
			name: "distant symbol excluded",
			grid: "5..\n...\n..#\n",
			want: 0,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, mustBuild(t, tc.grid).SumValidNumbers())
		})
	}
}
