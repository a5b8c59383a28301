package schematic

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, sample)

	testCases := []struct {
		name  string
		index int
		want  Number
	}{
		{name: "first digit of run", index: 0, want: Number{Value: 467, Start: 0, End: 3}},
		{name: "middle digit of run", index: 1, want: Number{Value: 467, Start: 0, End: 3}},
		{name: "last digit of run", index: 7, want: Number{Value: 114, Start: 5, End: 8}},
		{name: "run at row start", index: 45, want: Number{Value: 617, Start: 44, End: 47}},
		{name: "two digit run", index: 24, want: Number{Value: 35, Start: 24, End: 26}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := g.Extract(tc.index)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Extract(%d) mismatch (-want +got):\n%s", tc.index, diff)
			}
		})
	}
}

func TestExtract_NoRowLeakage(t *testing.T) {
	t.Parallel()

	// Arrange: a run at the end of row 0 sits next to a run at the start of
	// row 1 in the flat buffer, separated only by the terminator.
	g := mustBuild(t, "..12\n34..\n")

	// Act
	upper := g.Extract(3)
	lower := g.Extract(5)

	// Assert
	require.Equal(t, Number{Value: 12, Start: 2, End: 4}, upper)
	require.Equal(t, Number{Value: 34, Start: 5, End: 7}, lower)
}

func TestExtract_UnterminatedLastRow(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, "...\n.42")

	require.Equal(t, Number{Value: 42, Start: 5, End: 7}, g.Extract(6))
}

func TestExtract_PanicsOnNonDigit(t *testing.T) {
	t.Parallel()

	g := mustBuild(t, sample)

	for _, index := range []int{3, 10, -1, g.Len()} {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "Extract(%d) should panic", index)
				err, ok := r.(error)
				require.True(t, ok, "panic value should be an error, got %T", r)
				require.True(t, errors.Is(err, ErrInvalidArgument))
			}()
			g.Extract(index)
		}()
	}
}
