package preorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindBlockDiagForm_Empty(t *testing.T) {
	bd, err := FindBlockDiagForm(0, func(int) []int { return nil })
	assert.NoError(t, err)
	assert.Equal(t, []int{}, bd.Row2Col)
	assert.Equal(t, [][]int{}, bd.BlockCols)
}

func TestFindBlockDiagForm_NoPerfectMatching(t *testing.T) {
	cols := [][]int{
		{0},
		{},
	}
	col, err := PatternFromColumns(cols)
	assert.NoError(t, err)

	_, err = FindBlockDiagForm(2, col)
	assert.ErrorIs(t, err, ErrNoPerfectMatching)
}

func TestFindBlockDiagForm_Diagonal(t *testing.T) {
	const size = 4
	dense := make([][]bool, size)
	for i := range dense {
		dense[i] = make([]bool, size)
		dense[i][i] = true
	}
	col, err := PatternFromDense(dense)
	assert.NoError(t, err)

	bd, err := FindBlockDiagForm(size, col)
	assert.NoError(t, err)
	for r := 0; r < size; r++ {
		assert.Equal(t, r, bd.Row2Col[r])
	}
	assert.Equal(t, size, len(bd.BlockCols))
	for i, block := range bd.BlockCols {
		assert.Equal(t, []int{i}, block)
	}
}

func TestFindBlockDiagForm_FullMatrixIsOneBlock(t *testing.T) {
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

	bd, err := FindBlockDiagForm(size, col)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(bd.BlockCols))
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, bd.BlockCols[0])
}

// TestFindBlockDiagForm_ThreeByThree reproduces the worked example:
// nonzeros at (1,0),(2,0),(0,1),(1,1),(2,1),(0,2).
func TestFindBlockDiagForm_ThreeByThree(t *testing.T) {
	cols := [][]int{
		{1, 2},    // col 0
		{0, 1, 2}, // col 1
		{0},       // col 2
	}
	col, err := PatternFromColumns(cols)
	assert.NoError(t, err)

	bd, err := FindBlockDiagForm(3, col)
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, bd.Row2Col)
	assert.Equal(t, [][]int{{0, 1}, {2}}, bd.BlockCols)
}

func assertPartitionsRange(t *testing.T, size int, blocks [][]int) {
	t.Helper()
	seen := make([]bool, size)
	total := 0
	for _, block := range blocks {
		for _, c := range block {
			assert.False(t, seen[c], "column %d appears in more than one block", c)
			seen[c] = true
			total++
		}
	}
	assert.Equal(t, size, total)
	for c, ok := range seen {
		assert.True(t, ok, "column %d missing from any block", c)
	}
}

// TestFindBlockDiagForm_LowerBlockTriangular checks the universal
// invariant: for blocks B_i, B_j with i<j, no matched-digraph edge runs
// from a column in B_j to a column in B_i.
func TestFindBlockDiagForm_LowerBlockTriangular(t *testing.T) {
	cols := [][]int{
		{1, 2},    // col 0
		{0, 1, 2}, // col 1
		{0},       // col 2
	}
	col, err := PatternFromColumns(cols)
	assert.NoError(t, err)

	bd, err := FindBlockDiagForm(3, col)
	assert.NoError(t, err)
	assertPartitionsRange(t, 3, bd.BlockCols)

	blockOf := make([]int, 3)
	for i, block := range bd.BlockCols {
		for _, c := range block {
			blockOf[c] = i
		}
	}

	for c := 0; c < 3; c++ {
		for _, r := range col(c) {
			c2 := bd.Row2Col[r]
			assert.GreaterOrEqual(t, blockOf[c2], blockOf[c],
				"edge %d -> %d must not run from a later block to an earlier one", c, c2)
		}
	}
}
