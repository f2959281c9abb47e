package preorder

// OrderCOLAMD computes an approximate minimum-degree column ordering,
// following Davis, Gilbert, Larimore & Ng's "A column approximate minimum
// degree ordering algorithm" (COLAMD). It greedily eliminates columns from
// a bipartite (row, column) hypergraph, at each step choosing the column
// with the smallest approximate fill-in score and folding its row
// partners into a single "pivot row" supervariable.
//
// The six phases below mirror the reference implementation:
//
//	A — materialize live rows/columns, ordering size-1 columns immediately
//	B — cascade singleton elimination through chains the first pass creates
//	C — drop dense rows (they make the fill-in bound useless)
//	D — push dense columns to the tail of the ordering
//	E — score remaining columns by external degree
//	F — greedy elimination: pick, absorb, aggressively absorb, re-score
//
// Supercolumn detection (grouping columns with identical residual row
// patterns) is not implemented; it would shrink the working set but does
// not change correctness, and the reference defers it as future work.
//
// Complexity: O(size + nnz) for phases A–E; phase F's total cost across
// all iterations is bounded by O(size + nnz) amortized set-difference
// work, per the COLAMD paper's analysis.
func OrderCOLAMD(size int, col ColumnFunc) Perm {
	if size == 0 {
		return Perm{New2Orig: []int{}, Orig2New: []int{}}
	}

	rows := make([][]int, size) // rows[r] = live columns containing r
	cols := make([][]int, size) // cols[c] = live rows of c

	new2orig := make([]int, size)
	curOrdered := 0

	isOrderedCol := make([]bool, size)
	isAbsorbedRow := make([]bool, size)

	order := func(c int) {
		new2orig[curOrdered] = c
		curOrdered++
		isOrderedCol[c] = true
	}

	// Phase A: gather live rows/columns, cheaply ordering columns whose
	// live row count is exactly 1 (or 0) as we go.
	{
		curCol := make([]int, 0, 8)
		for c := 0; c < size; c++ {
			curCol = curCol[:0]
			for _, r := range col(c) {
				if !isAbsorbedRow[r] {
					curCol = append(curCol, r)
				}
			}

			if len(curCol) > 1 {
				cols[c] = append([]int(nil), curCol...)
				for _, r := range curCol {
					rows[r] = append(rows[r], c)
				}
				continue
			}

			order(c)
			if len(curCol) == 1 {
				isAbsorbedRow[curCol[0]] = true
			}
		}
	}

	// Phase B: cascade singleton elimination. Ordering a singleton column
	// absorbs its one live row, which can turn other columns sharing that
	// row into singletons in turn; a stack drains the whole chain without
	// re-scanning from the top.
	{
		colRowsLen := make([]int, size) // live (non-absorbed) rows per column
		for c := 0; c < size; c++ {
			for _, r := range cols[c] {
				if !isAbsorbedRow[r] {
					colRowsLen[c]++
				}
			}
		}

		stack := make([]int, 0, 8)
		for c := 0; c < size; c++ {
			if isOrderedCol[c] || colRowsLen[c] != 1 {
				continue
			}

			stack = stack[:0]
			stack = append(stack, c)
			for len(stack) > 0 {
				cc := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				r := -1
				for _, candidate := range cols[cc] {
					if !isAbsorbedRow[candidate] {
						r = candidate
						break
					}
				}
				if r < 0 {
					// Every row of cc was absorbed while it waited on the stack.
					cols[cc] = nil
					order(cc)
					continue
				}

				for _, otherC := range rows[r] {
					colRowsLen[otherC]--
					if colRowsLen[otherC] == 1 {
						stack = append(stack, otherC)
					}
				}

				rows[r] = nil
				isAbsorbedRow[r] = true

				cols[cc] = nil
				order(cc)
			}
		}
	}

	nsSize := size - curOrdered // number of non-singleton columns remaining

	// Phase C: dense rows defeat the COLAMD fill-in bound, so exclude them
	// from further consideration; with luck they become late pivots anyway.
	{
		denseRowThresh := maxInt(16, nsSize/4)
		for r := 0; r < size; r++ {
			if isAbsorbedRow[r] {
				continue
			}
			if len(rows[r]) >= denseRowThresh {
				rows[r] = nil
				isAbsorbedRow[r] = true
			}
		}
	}

	queue := newBucketQueue(size)

	// Phase D: compact each unordered column in place (dropping absorbed
	// rows) and push dense columns to the tail of the final ordering.
	{
		denseColThresh := maxInt(16, isqrt(nsSize))
		for c := 0; c < size; c++ {
			if isOrderedCol[c] {
				continue
			}

			col := cols[c]
			curI := 0
			for _, r := range col {
				if !isAbsorbedRow[r] {
					col[curI] = r
					curI++
				}
			}
			col = col[:curI]
			cols[c] = col

			if curI >= denseColThresh {
				queue.Add(c, curI) // least-dense dense columns come out first
			} else if curI == 0 {
				// Only dense rows remained: push to the very end.
				queue.Add(c, size-1)
			}
		}

		numDenseCols := queue.Len()
		for i := 0; i < numDenseCols; i++ {
			denseC, _ := queue.PopMin()
			new2orig[size-numDenseCols+i] = denseC
			isOrderedCol[denseC] = true
		}
	}

	colScores := make([]int, size)

	// Phase E: external-degree score for every remaining column, reusing
	// the now-empty queue.
	for c := 0; c < size; c++ {
		if isOrderedCol[c] {
			continue
		}

		score := 0
		for _, r := range cols[c] {
			score += len(rows[r]) - 1
		}
		if score > size-1 {
			score = size - 1
		}

		colScores[c] = score
		queue.Add(c, score)
	}

	// Phase F: greedy elimination.
	pivotRow := make([]int, 0, 8)
	isInPivotRow := make([]bool, size)

	rowSetDiffs := make([]int, size)
	rowsWithDiffs := make([]int, 0, 8)
	isInDiffs := make([]bool, size)

	for queue.Len() > 0 {
		pivotC, _ := queue.PopMin()
		order(pivotC)

		// 1. Build the pivot row: the union of live columns in every row
		// pivotC still touches, absorbing each such row as we go.
		pivotRow = pivotRow[:0]
		pivotR := -1
		for _, r := range cols[pivotC] {
			if isAbsorbedRow[r] {
				continue
			}
			isAbsorbedRow[r] = true
			pivotR = r

			for _, c := range rows[r] {
				if !isOrderedCol[c] && !isInPivotRow[c] {
					isInPivotRow[c] = true
					pivotRow = append(pivotRow, c)
				}
			}
			rows[r] = nil
		}

		for _, c := range pivotRow {
			isInPivotRow[c] = false
		}

		// 2. Approximate set-difference: for every row any pivot-row
		// column still touches, count how many pivot-row columns already
		// contain it. A row whose count reaches zero is a subset of the
		// pivot row and carries no new information — aggressive absorption.
		for _, c := range pivotRow {
			for _, r := range cols[c] {
				if isAbsorbedRow[r] {
					continue
				}

				if !isInDiffs[r] {
					isInDiffs[r] = true
					rowsWithDiffs = append(rowsWithDiffs, r)
					rowSetDiffs[r] = len(rows[r])
				}

				rowSetDiffs[r]--
				if rowSetDiffs[r] == 0 {
					isAbsorbedRow[r] = true
				}
			}
		}

		// 3. Score update and mass elimination: compact each pivot-row
		// column's rows while summing its row-set-diffs. A zero diff means
		// the column needs no additional fill-in and can be ordered now.
		curPivotI := 0
		for _, c := range pivotRow {
			queue.Remove(c, colScores[c])

			diff := 0
			curI := 0
			rs := cols[c]
			for _, r := range rs {
				if !isAbsorbedRow[r] {
					rs[curI] = r
					curI++
					diff += rowSetDiffs[r]
				}
			}
			cols[c] = rs[:curI]

			if diff == 0 {
				order(c)
				cols[c] = nil
				continue
			}

			colScores[c] = diff // intermediate; final score adds |pivotRow|-1 below
			pivotRow[curPivotI] = c
			curPivotI++
		}
		pivotRow = pivotRow[:curPivotI]

		for _, r := range rowsWithDiffs {
			rowSetDiffs[r] = 0
			isInDiffs[r] = false
		}
		rowsWithDiffs = rowsWithDiffs[:0]

		// 4. Re-install the pivot row under the identity of one absorbed
		// row (pivotR), un-absorbing it as a fresh supervariable, and
		// compute final scores for every column it contains.
		if len(pivotRow) > 0 {
			rows[pivotR] = append([]int(nil), pivotRow...)
			isAbsorbedRow[pivotR] = false

			for _, c := range rows[pivotR] {
				score := colScores[c] + len(pivotRow) - 1
				if score > size-1 {
					score = size - 1
				}
				colScores[c] = score
				queue.Add(c, score)
			}
		}
	}

	return newPerm(new2orig)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// isqrt returns floor(sqrt(n)) for n >= 0, matching the reference's
// (ns_size as f64).sqrt() as usize truncation.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}

	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}

	return r
}
