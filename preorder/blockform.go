package preorder

// FindBlockDiagForm computes the block triangular structure exposed by
// the diagonal matching from FindDiagMatching: a decomposition of
// columns into strongly connected components of the digraph where
// column c has an edge to column c' iff c' = row2col[r] for some row r
// in col(c) (c has a nonzero in the row matched to c').
//
// Returns ErrNoPerfectMatching if the pattern has no zero-free
// diagonal; FindBlockDiagForm cannot expose block structure without
// one.
//
// Steps (two-pass Kosaraju SCC, both passes iterative):
//  1. Forward DFS over columns in index order, producing a post-order
//     finishing list.
//  2. Build the transpose adjacency (sources per target column).
//  3. Reverse DFS over the transpose, processing roots in reverse
//     post-order; each DFS tree is one SCC, appended as one block.
//     Because Kosaraju yields SCCs in topological order of the
//     condensation, BlockCols comes out in lower-block-triangular
//     order with no further sorting.
//
// Complexity: O(size + nnz) for both DFS passes and the transpose.
func FindBlockDiagForm(size int, col ColumnFunc) (BlockDiagForm, error) {
	if size == 0 {
		return BlockDiagForm{Row2Col: []int{}, BlockCols: [][]int{}}, nil
	}

	row2col, ok := FindDiagMatching(size, col)
	if !ok {
		return BlockDiagForm{}, ErrNoPerfectMatching
	}

	type dfsFrame struct {
		c int
		i int
	}

	// Pass 1: forward DFS over col(c) -> row2col[r] edges, column order.
	visited := make([]bool, size)
	postOrder := make([]int, 0, size)
	stack := make([]dfsFrame, 0, size)

	for start := 0; start < size; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		stack = stack[:0]
		stack = append(stack, dfsFrame{c: start, i: 0})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			rows := col(top.c)

			advanced := false
			for top.i < len(rows) {
				r := rows[top.i]
				top.i++

				c2 := row2col[r]
				if !visited[c2] {
					visited[c2] = true
					stack = append(stack, dfsFrame{c: c2, i: 0})
					advanced = true

					break
				}
			}
			if advanced {
				continue
			}

			postOrder = append(postOrder, top.c)
			stack = stack[:len(stack)-1]
		}
	}

	// Transpose: rowsT[t] lists every source s with an edge s -> t.
	rowsT := make([][]int, size)
	for c := 0; c < size; c++ {
		for _, r := range col(c) {
			t := row2col[r]
			rowsT[t] = append(rowsT[t], c)
		}
	}

	// Pass 2: reverse DFS over the transpose, roots taken in reverse
	// post-order of pass 1. Each tree is one SCC and one output block.
	visited2 := make([]bool, size)
	blockCols := make([][]int, 0, size)

	for i := len(postOrder) - 1; i >= 0; i-- {
		root := postOrder[i]
		if visited2[root] {
			continue
		}
		visited2[root] = true
		block := []int{root}
		stack = stack[:0]
		stack = append(stack, dfsFrame{c: root, i: 0})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			srcs := rowsT[top.c]

			advanced := false
			for top.i < len(srcs) {
				s := srcs[top.i]
				top.i++

				if !visited2[s] {
					visited2[s] = true
					block = append(block, s)
					stack = append(stack, dfsFrame{c: s, i: 0})
					advanced = true

					break
				}
			}
			if advanced {
				continue
			}

			stack = stack[:len(stack)-1]
		}

		blockCols = append(blockCols, block)
	}

	return BlockDiagForm{Row2Col: row2col, BlockCols: blockCols}, nil
}
