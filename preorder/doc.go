// Package preorder implements the symbolic pre-pass of a sparse LU/Cholesky
// style factorization: permutations computed from a matrix's nonzero
// pattern alone, before any numeric elimination takes place.
//
// The key algorithms offered are:
//
//   - OrderSimple
//
//   - Method: sort columns by ascending nonzero count.
//
//   - Time:   O(n) bucket-queue operations (no comparison sort).
//
//   - Memory: O(n) for the bucket queue.
//
//   - Use as a cheap baseline or when COLAMD's bookkeeping is overkill.
//
//   - OrderCOLAMD
//
//   - Method: approximate minimum-degree column ordering via greedy
//     elimination over a bipartite (row, column) hypergraph — singleton
//     chaining, dense-row/column filtering, and mass elimination, per
//     Davis et al.'s COLAMD.
//
//   - Time:   O(n + nnz) amortized in practice; no worst-case fill-in
//     optimality guarantee (the scores are an upper bound, not the
//     true fill-in).
//
//   - Memory: O(n + nnz) for row/column adjacency and queue scratch.
//
//   - Use to reduce expected fill-in before a sparse factorization.
//
//   - FindDiagMatching
//
//   - Method: maximum cardinality bipartite matching via augmenting
//     paths, found by an iterative (non-recursive) DFS with persistent
//     "cheap" match cursors.
//
//   - Time:   O(n · nnz) worst case; the cheap cursor makes repeated
//     searches amortized much cheaper in practice.
//
//   - Memory: O(n) for visitation state and the DFS stack.
//
//   - Use to find a zero-free diagonal assignment of rows to columns.
//
//   - FindBlockDiagForm
//
//   - Method: two-pass Kosaraju SCC on the digraph induced by the
//     matching from FindDiagMatching (column c → column c' whenever c
//     has a nonzero in the row matched to c').
//
//   - Time:   O(n + nnz).
//
//   - Memory: O(n + nnz) for the transposed adjacency and DFS stacks.
//
//   - Use to expose the Dulmage–Mendelsohn block triangular structure
//     of a matrix ahead of a block-wise factorization.
//
// # Pattern input
//
// All four functions consume a pattern through ColumnFunc, a pure
// function mapping a column index to the (deduplicated) row indices of
// its nonzeros:
//
//	type ColumnFunc func(col int) []int
//
// ColumnFunc is invoked many times per column (FindDiagMatching and
// FindBlockDiagForm re-read columns during their searches), so it must be cheap
// and must return the same view on every call for a given column. Use
// PatternFromGraph, PatternFromColumns, or PatternFromDense to build one
// from more convenient representations.
//
// # Scope
//
// This package has no numeric pivoting, no supercolumn detection, and
// no file/CLI/environment surface — it is a pure, single-threaded
// computation over an already in-memory pattern. The permutation
// carrier (Perm), matrix storage, and the numerical factorization that
// consumes these orderings are the caller's concern.
//
// # Integration
//
//   - Relies on github.com/katalvlaran/lvlath/core only for the optional
//     PatternFromGraph adapter; the core four algorithms operate on
//     plain ColumnFunc closures and int-indexed scratch slices.
package preorder
