package parse_test

import (
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/xorsolve/builder"
	"github.com/katalvlaran/xorsolve/parse"
	"github.com/katalvlaran/xorsolve/toggle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "```" + `
[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
[...#.] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}

[.###.#] (0,1,2,3,4) (0,3,4) (0,1,2,4,5) (1,2) {10,11,11,5,10,5}
` + "```\n"

// TestParse_Sample reads the three sample machines and solves them.
func TestParse_Sample(t *testing.T) {
	insts, err := parse.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, insts, 3)

	first := insts[0]
	assert.Equal(t, []bool{false, true, true, false}, first.Target)
	assert.Equal(t, [][]int{{3}, {1, 3}, {2}, {2, 3}, {0, 2}, {0, 1}}, first.Operations)
	assert.Equal(t, []int64{3, 5, 4, 7}, first.Aux)

	res, err := toggle.NewSolver().SolveAll(context.Background(), insts)
	require.NoError(t, err)
	assert.Equal(t, 2, res[0].Weight)
	assert.Equal(t, 3, res[1].Weight)
	assert.Equal(t, 2, res[2].Weight)

	sum, err := toggle.NewSolver().Total(context.Background(), insts)
	require.NoError(t, err)
	assert.Equal(t, 7, sum)
}

// TestParseLine_EmptyGroupsAndSkips covers no-op operations and ignored lines.
func TestParseLine_EmptyGroupsAndSkips(t *testing.T) {
	inst, ok, err := parse.ParseLine("  [#] ( ) (0)  ")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, [][]int{{}, {0}}, inst.Operations)
	assert.Nil(t, inst.Aux)

	for _, line := range []string{"", "   ", "```", "```text", "no pattern (1,2)"} {
		_, ok, err := parse.ParseLine(line)
		assert.NoError(t, err, line)
		assert.False(t, ok, line)
	}
}

// TestParse_SyntaxErrors checks ErrSyntax with line numbers.
func TestParse_SyntaxErrors(t *testing.T) {
	_, err := parse.Parse(strings.NewReader("[#] (0)\n[#] (x)\n"))
	assert.ErrorIs(t, err, parse.ErrSyntax)
	assert.Contains(t, err.Error(), "line 2")

	_, _, err = parse.ParseLine("[#] (-1)")
	assert.ErrorIs(t, err, parse.ErrSyntax)

	_, _, err = parse.ParseLine("[#] (0) {1,z}")
	assert.ErrorIs(t, err, parse.ErrSyntax)
}

// TestFormat_RoundTrip formats generated instances and parses them back.
func TestFormat_RoundTrip(t *testing.T) {
	batch, err := builder.RandomBatch(10, 9, 7, builder.WithSeed(4))
	require.NoError(t, err)
	for i := range batch {
		batch[i].Aux = []int64{int64(i), -1}
		line := parse.Format(batch[i])
		got, ok, err := parse.ParseLine(line)
		require.NoError(t, err, line)
		require.True(t, ok, line)
		assert.Equal(t, batch[i], got, line)
	}

	assert.Equal(t, "[#.] () (0,1)", parse.Format(toggle.Instance{
		Target: []bool{true, false}, Operations: [][]int{{}, {0, 1}},
	}))
}
