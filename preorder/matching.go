package preorder

// FindDiagMatching computes a maximum-cardinality bipartite matching
// between rows and columns of the pattern, returning row2col such that
// row2col[r] is the column matched to row r and r is a nonzero of that
// column. ok is false iff no perfect matching exists (some row is left
// unmatched), in which case row2col is nil.
//
// The matching is the classical augmenting-path algorithm, specialized
// two ways to amortize the repeated searches:
//
//   - a "cheap" cursor per column (cheap[c]) remembers, across every
//     start_c iteration, how far col(c) has already been scanned for a
//     free row. Rows never become unmatched once matched, so a row
//     found occupied at some cheap[c] position stays occupied — the
//     cursor is monotone and never needs to back up.
//   - visitation is tracked per column (colVisitedOnIter[c]), not per
//     row: a row whose matched column has already been explored this
//     iteration is a dead end and is skipped without descending.
//
// The DFS itself is iterative: frames record (col, nextRowIndex,
// pendingRow), where pendingRow is the row in the frame's own column
// that led to pushing its child. When a descent eventually finds a
// free row, every frame on the stack reclaims its pendingRow for its
// own column as the stack unwinds — this is the augmenting path being
// realized one edge at a time.
//
// Complexity: O(size * nnz) worst case; in practice the cheap cursor
// keeps repeated searches cheap since it never revisits a confirmed-
// matched prefix of any column.
func FindDiagMatching(size int, col ColumnFunc) (row2col []int, ok bool) {
	if size == 0 {
		return []int{}, true
	}

	row2matchedCol := make([]int, size)
	for r := range row2matchedCol {
		row2matchedCol[r] = -1
	}

	colVisitedOnIter := make([]int, size)
	for c := range colVisitedOnIter {
		colVisitedOnIter[c] = -1
	}
	cheap := make([]int, size)

	// tryCheap scans col(c) from the persistent cursor cheap[c] for an
	// unmatched row, claiming and returning the first one found. It
	// advances cheap[c] past every row it inspects, whether or not the
	// scan succeeds, since rows already seen matched stay matched.
	tryCheap := func(c int) int {
		rows := col(c)
		for i := cheap[c]; i < len(rows); i++ {
			r := rows[i]
			if row2matchedCol[r] == -1 {
				cheap[c] = i + 1

				return r
			}
		}
		cheap[c] = len(rows)

		return -1
	}

	type matchFrame struct {
		c          int
		i          int
		pendingRow int
	}
	stack := make([]matchFrame, 0, size)

	for startC := 0; startC < size; startC++ {
		colVisitedOnIter[startC] = startC

		if r := tryCheap(startC); r != -1 {
			row2matchedCol[r] = startC
			continue
		}

		stack = stack[:0]
		stack = append(stack, matchFrame{c: startC, i: 0})
		found := false

	search:
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			rows := col(top.c)

			for top.i < len(rows) {
				r := rows[top.i]
				top.i++

				c2 := row2matchedCol[r]
				if c2 == -1 {
					row2matchedCol[r] = top.c
					found = true

					break search
				}
				if colVisitedOnIter[c2] == startC {
					continue
				}
				colVisitedOnIter[c2] = startC

				if rr := tryCheap(c2); rr != -1 {
					row2matchedCol[rr] = c2
					row2matchedCol[r] = top.c
					found = true

					break search
				}

				top.pendingRow = r
				stack = append(stack, matchFrame{c: c2, i: 0})

				continue search
			}

			stack = stack[:len(stack)-1]
		}

		if !found {
			return nil, false
		}

		// Unwind: every ancestor below the frame that directly succeeded
		// reclaims its pendingRow for its own column — the augmenting
		// path realized one link at a time.
		for i := len(stack) - 2; i >= 0; i-- {
			row2matchedCol[stack[i].pendingRow] = stack[i].c
		}
	}

	return row2matchedCol, true
}
