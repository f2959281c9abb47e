package preorder

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath/core"
)

// rowVertexID and colVertexID are the vertex-naming convention
// PatternFromGraph expects: row i is "r<i>", column j is "c<j>".
func rowVertexID(i int) string { return "r" + strconv.Itoa(i) }
func colVertexID(j int) string { return "c" + strconv.Itoa(j) }

// PatternFromGraph adapts a *core.Graph into a ColumnFunc, letting
// preorder consume the same bipartite incidence that the rest of the
// module already knows how to build and inspect.
//
// g must contain vertices "r0".."r(size-1)" and "c0".."c(size-1)" and,
// for every nonzero at (row i, col j), an undirected edge between
// "r<i>" and "c<j>" (bipartite incidence has no inherent direction —
// an undirected edge lets NeighborIDs answer both "rows of column j"
// and "columns of row i" from the same edge set, which a directed
// edge in either direction could not). Use g.AddEdge(rowVertexID(i),
// colVertexID(j), 0) while building the graph; PatternFromGraph
// itself never mutates g.
//
// Returns ErrSizeMismatch if any "c<j>" vertex is missing. Neighbor IDs
// that do not parse back to a row index in [0, size) are skipped by the
// returned ColumnFunc, not reported.
//
// Complexity: O(size) validation up front; each returned ColumnFunc
// call is O(d log d) via core.Graph.NeighborIDs.
func PatternFromGraph(g *core.Graph, size int) (ColumnFunc, error) {
	if size == 0 {
		return func(int) []int { return nil }, nil
	}

	for j := 0; j < size; j++ {
		if !g.HasVertex(colVertexID(j)) {
			return nil, fmt.Errorf("preorder: column vertex %q missing: %w", colVertexID(j), ErrSizeMismatch)
		}
	}

	rowOf := func(id string) (int, bool) {
		idx, ok := strings.CutPrefix(id, "r")
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(idx)
		if err != nil || n < 0 || n >= size {
			return 0, false
		}

		return n, true
	}

	cache := make([][]int, size)
	loaded := make([]bool, size)

	return func(col int) []int {
		if loaded[col] {
			return cache[col]
		}

		neighbors, err := g.NeighborIDs(colVertexID(col))
		if err != nil {
			loaded[col] = true
			cache[col] = nil

			return nil
		}

		rows := make([]int, 0, len(neighbors))
		for _, id := range neighbors {
			r, ok := rowOf(id)
			if !ok {
				continue
			}
			rows = append(rows, r)
		}
		sort.Ints(rows)

		loaded[col] = true
		cache[col] = rows

		return rows
	}, nil
}

// PatternFromColumns adapts a literal [][]int fixture — cols[c] is the
// (deduplicated) row-index list for column c — into a ColumnFunc. This
// is the lightest-weight adapter, meant for test fixtures and worked
// examples where building a *core.Graph would be pure ceremony.
//
// Returns ErrSizeMismatch if any row index lies outside [0, len(cols))
// or repeats within one column.
func PatternFromColumns(cols [][]int) (ColumnFunc, error) {
	size := len(cols)
	seen := make([]int, size) // seen[r] == c+1 once column c has listed row r
	for c, rows := range cols {
		for _, r := range rows {
			if r < 0 || r >= size || seen[r] == c+1 {
				return nil, ErrSizeMismatch
			}
			seen[r] = c + 1
		}
	}

	return func(col int) []int {
		return cols[col]
	}, nil
}

// PatternFromDense adapts a dense size x size 0/1 matrix, given as
// dense[row][col], into a ColumnFunc. Convenient for hand-written test
// matrices where a picture of the pattern is clearer than an explicit
// row-index list.
//
// Returns ErrSizeMismatch if dense is not square.
func PatternFromDense(dense [][]bool) (ColumnFunc, error) {
	size := len(dense)
	for _, row := range dense {
		if len(row) != size {
			return nil, ErrSizeMismatch
		}
	}

	cols := make([][]int, size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if dense[r][c] {
				cols[c] = append(cols[c], r)
			}
		}
	}

	return func(col int) []int {
		return cols[col]
	}, nil
}
