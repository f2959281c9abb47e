package preorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderCOLAMD_Empty(t *testing.T) {
	p := OrderCOLAMD(0, func(int) []int { return nil })
	assert.Equal(t, []int{}, p.New2Orig)
}

func TestOrderCOLAMD_SingleColumn(t *testing.T) {
	p := OrderCOLAMD(1, func(int) []int { return []int{0} })
	assertInversePerm(t, 1, p)
	assert.Equal(t, []int{0}, p.New2Orig)
}

// TestOrderCOLAMD_FourColumnProjection reproduces the worked example: a
// 4x5 source matrix projected onto columns [0,1,2,4], entries at
// (0,0),(1,0),(2,0),(3,0), (2,1), (0,2),(1,2), (1,3),(2,3),(3,3) (columns
// renumbered 0..3 after the projection).
func TestOrderCOLAMD_FourColumnProjection(t *testing.T) {
	cols := [][]int{
		{0, 1, 2, 3}, // col 0
		{2},          // col 1
		{0, 1},       // col 2
		{1, 2, 3},    // col 3
	}
	col, err := PatternFromColumns(cols)
	assert.NoError(t, err)

	p := OrderCOLAMD(4, col)
	assertInversePerm(t, 4, p)
	assert.Equal(t, []int{1, 0, 2, 3}, p.New2Orig)
	assert.Equal(t, []int{1, 0, 2, 3}, p.Orig2New)
}

// TestOrderCOLAMD_SingletonChainNeverReachesPhaseF builds a column chain
// where every column becomes a singleton once its predecessor is
// ordered: col 0 has only its diagonal row; col i (i>0) has rows
// {i-1, i}. Phase A's single ascending pass resolves the whole chain —
// ordering col i absorbs row i, which is exactly the row col(i+1)
// needs to drop to become a singleton itself — so the queue used by
// Phases D-F is never populated.
func TestOrderCOLAMD_SingletonChainNeverReachesPhaseF(t *testing.T) {
	const size = 6
	cols := make([][]int, size)
	cols[0] = []int{0}
	for i := 1; i < size; i++ {
		cols[i] = []int{i - 1, i}
	}
	col, err := PatternFromColumns(cols)
	assert.NoError(t, err)

	p := OrderCOLAMD(size, col)
	assertInversePerm(t, size, p)

	expected := make([]int, size)
	for i := range expected {
		expected[i] = i
	}
	assert.Equal(t, expected, p.New2Orig)
}

func TestOrderCOLAMD_DiagonalMatrixIsIdentityUpToOrder(t *testing.T) {
	const size = 5
	dense := make([][]bool, size)
	for i := range dense {
		dense[i] = make([]bool, size)
		dense[i][i] = true
	}
	col, err := PatternFromDense(dense)
	assert.NoError(t, err)

	p := OrderCOLAMD(size, col)
	assertInversePerm(t, size, p)
}

func TestOrderCOLAMD_FullMatrix(t *testing.T) {
	const size = 4
	dense := make([][]bool, size)
	for r := range dense {
		dense[r] = make([]bool, size)
		for c := range dense[r] {
			dense[r][c] = true
		}
	}
	col, err := PatternFromDense(dense)
	assert.NoError(t, err)

	p := OrderCOLAMD(size, col)
	assertInversePerm(t, size, p)
}

// TestOrderCOLAMD_DenseColumnsPushedToTail exercises Phase D: a handful
// of columns touch nearly every row while the rest are sparse, so the
// dense ones should land at the tail of the final ordering.
func TestOrderCOLAMD_DenseColumnsPushedToTail(t *testing.T) {
	const size = 40
	cols := make([][]int, size)
	// Columns 0..4 are dense: each touches rows [0, 20).
	for c := 0; c < 5; c++ {
		rows := make([]int, 20)
		for r := range rows {
			rows[r] = r
		}
		cols[c] = rows
	}
	// The remaining columns are sparse singletons over the rows [20, 40)
	// that the dense columns leave untouched, wrapping around so every
	// row index stays in range.
	for c := 5; c < size; c++ {
		cols[c] = []int{20 + (c-5)%20}
	}
	col, err := PatternFromColumns(cols)
	assert.NoError(t, err)

	p := OrderCOLAMD(size, col)
	assertInversePerm(t, size, p)

	tail := make(map[int]bool, 5)
	for _, orig := range p.New2Orig[size-5:] {
		tail[orig] = true
	}
	for c := 0; c < 5; c++ {
		assert.True(t, tail[c], "dense column %d should be pushed to the tail", c)
	}
}
