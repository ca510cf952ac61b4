package gf2_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/xorsolve/bitvec"
	"github.com/katalvlaran/xorsolve/gf2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomOps returns m operations over n bits, each bit included with probability p.
func randomOps(rng *rand.Rand, n, m int, p float64) [][]int {
	ops := make([][]int, m)
	for j := range ops {
		ops[j] = []int{}
		for i := 0; i < n; i++ {
			if rng.Float64() < p {
				ops[j] = append(ops[j], i)
			}
		}
	}
	return ops
}

func randomTarget(rng *rand.Rand, n int) []bool {
	t := make([]bool, n)
	for i := range t {
		t[i] = rng.Intn(2) == 1
	}
	return t
}

// bruteSolutions enumerates every x in {0,1}^m that solves the system.
func bruteSolutions(t *testing.T, sys *gf2.System) []*bitvec.Vector {
	t.Helper()
	m := sys.Cols()
	var out []*bitvec.Vector
	for mask := 0; mask < 1<<m; mask++ {
		x := bitvec.New(m)
		for j := 0; j < m; j++ {
			if mask&(1<<j) != 0 {
				x.Set(j)
			}
		}
		if sys.Satisfies(x) {
			out = append(out, x)
		}
	}
	return out
}

// TestNewSystem_Layout checks that row i / column j is set iff op j toggles bit i.
func TestNewSystem_Layout(t *testing.T) {
	sys, err := gf2.NewSystem([]bool{true, false, true}, [][]int{{0}, {0, 2}, {}})
	require.NoError(t, err)
	assert.Equal(t, 3, sys.Rows())
	assert.Equal(t, 3, sys.Cols())
	assert.Equal(t, "110", sys.Row(0).String())
	assert.Equal(t, "000", sys.Row(1).String())
	assert.Equal(t, "010", sys.Row(2).String())
	assert.Equal(t, "101", sys.Column(1).String())
	assert.True(t, sys.Target(2))
}

// TestNewSystem_BadIndex verifies out-of-range operation indices are rejected.
func TestNewSystem_BadIndex(t *testing.T) {
	_, err := gf2.NewSystem([]bool{true}, [][]int{{1}})
	assert.ErrorIs(t, err, gf2.ErrOperationIndex)

	_, err = gf2.NewSystem([]bool{true}, [][]int{{-1}})
	assert.ErrorIs(t, err, gf2.ErrOperationIndex)
}

// TestEliminate_UniqueSolution covers a full-rank system with a single solution.
func TestEliminate_UniqueSolution(t *testing.T) {
	sys, err := gf2.NewSystem([]bool{true, false, true}, [][]int{{0}, {0, 2}})
	require.NoError(t, err)

	red, err := gf2.Eliminate(sys)
	require.NoError(t, err)
	assert.Equal(t, 2, red.Rank())
	assert.Equal(t, 0, red.Nullity())
	assert.Empty(t, red.FreeColumns())
	assert.Equal(t, []int{0, 1}, red.PivotColumns())

	cs := gf2.Extract(red)
	assert.Equal(t, 0, cs.Dim())
	assert.Equal(t, "01", cs.Particular.String(), "only operation 1 is needed")
	assert.True(t, sys.Satisfies(cs.Particular))
}

// TestEliminate_Infeasible covers a no-op operation against a set target bit.
func TestEliminate_Infeasible(t *testing.T) {
	sys, err := gf2.NewSystem([]bool{true}, [][]int{{}})
	require.NoError(t, err)

	red, err := gf2.Eliminate(sys)
	assert.ErrorIs(t, err, gf2.ErrInfeasible)
	assert.Nil(t, red)
}

// TestEliminate_NoOperations covers m = 0 for zero and non-zero targets.
func TestEliminate_NoOperations(t *testing.T) {
	sys, err := gf2.NewSystem([]bool{false, false}, nil)
	require.NoError(t, err)
	red, err := gf2.Eliminate(sys)
	require.NoError(t, err)
	assert.Equal(t, 0, red.Rank())
	cs := gf2.Extract(red)
	assert.Equal(t, 0, cs.Particular.Len())
	assert.Equal(t, 0, cs.Dim())

	sys, err = gf2.NewSystem([]bool{false, true}, nil)
	require.NoError(t, err)
	_, err = gf2.Eliminate(sys)
	assert.ErrorIs(t, err, gf2.ErrInfeasible)
}

// TestEliminate_NilSystem verifies the nil guard.
func TestEliminate_NilSystem(t *testing.T) {
	_, err := gf2.Eliminate(nil)
	assert.ErrorIs(t, err, gf2.ErrNilSystem)
}

// TestEliminate_Deterministic re-runs elimination and compares rank and pivots,
// and checks the input system is not modified.
func TestEliminate_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ops := randomOps(rng, 12, 15, 0.4)
	sys, err := gf2.NewSystem(make([]bool, 12), ops)
	require.NoError(t, err)

	before := make([]string, sys.Rows())
	for i := range before {
		before[i] = sys.Row(i).String()
	}

	a, err := gf2.Eliminate(sys)
	require.NoError(t, err)
	b, err := gf2.Eliminate(sys)
	require.NoError(t, err)

	assert.Equal(t, a.Rank(), b.Rank())
	assert.Equal(t, a.PivotColumns(), b.PivotColumns())
	for c := 0; c < sys.Cols(); c++ {
		ra, oka := a.PivotRow(c)
		rb, okb := b.PivotRow(c)
		assert.Equal(t, oka, okb)
		assert.Equal(t, ra, rb)
	}
	for i := range before {
		assert.Equal(t, before[i], sys.Row(i).String(), "row %d mutated", i)
	}
}

// TestEliminate_ReducedForm checks every pivot column is a unit column.
func TestEliminate_ReducedForm(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	sys, err := gf2.NewSystem(make([]bool, 10), randomOps(rng, 10, 14, 0.5))
	require.NoError(t, err)
	red, err := gf2.Eliminate(sys)
	require.NoError(t, err)

	assert.LessOrEqual(t, red.Rank(), 10)
	assert.Len(t, red.PivotColumns(), red.Rank())
	assert.Len(t, red.FreeColumns(), red.Nullity())
	for _, c := range red.PivotColumns() {
		pr, ok := red.PivotRow(c)
		require.True(t, ok)
		for i := 0; i < red.Rows(); i++ {
			assert.Equal(t, i == pr, red.Row(i).Test(c), "column %d row %d", c, i)
		}
	}
}

// TestExtract_SpansAllSolutions compares the coset against brute force on small systems.
func TestExtract_SpansAllSolutions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 60; trial++ {
		n, m := 1+rng.Intn(8), 1+rng.Intn(10)
		ops := randomOps(rng, n, m, 0.35)
		target := randomTarget(rng, n)
		sys, err := gf2.NewSystem(target, ops)
		require.NoError(t, err)

		want := bruteSolutions(t, sys)
		red, err := gf2.Eliminate(sys)
		if len(want) == 0 {
			assert.ErrorIs(t, err, gf2.ErrInfeasible, "trial %d", trial)
			continue
		}
		require.NoError(t, err, "trial %d", trial)

		cs := gf2.Extract(red)
		assert.Equal(t, m-red.Rank(), cs.Dim())
		require.Len(t, want, 1<<cs.Dim(), "trial %d: coset size", trial)

		got := map[string]bool{}
		for mask := uint64(0); mask < 1<<uint(cs.Dim()); mask++ {
			x := cs.Combine(mask)
			assert.True(t, sys.Satisfies(x), "trial %d mask %b", trial, mask)
			got[x.Key()] = true
		}
		for _, w := range want {
			assert.True(t, got[w.Key()], "trial %d: solution %s missing", trial, w)
			assert.True(t, cs.Contains(w), "trial %d: %s", trial, w)
		}
		for j := 0; j < m; j++ {
			x := cs.Particular.Clone()
			x.Flip(j)
			assert.Equal(t, sys.Satisfies(x), cs.Contains(x), "trial %d flip %d", trial, j)
		}
		assert.False(t, cs.Contains(bitvec.New(m+1)))
	}
}

// TestExtract_BasisIsHomogeneous checks each basis vector solves A·v = 0.
func TestExtract_BasisIsHomogeneous(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	ops := randomOps(rng, 6, 12, 0.5)
	sys, err := gf2.NewSystem(make([]bool, 6), ops)
	require.NoError(t, err)
	red, err := gf2.Eliminate(sys)
	require.NoError(t, err)

	cs := gf2.Extract(red)
	require.GreaterOrEqual(t, cs.Dim(), 6)
	free := red.FreeColumns()
	for i, v := range cs.Basis {
		assert.True(t, sys.Satisfies(v), "basis %d", i)
		assert.True(t, v.Test(free[i]), "basis %d must own free column %d", i, free[i])
		for _, f := range free {
			if f != free[i] {
				assert.False(t, v.Test(f))
			}
		}
	}
}
