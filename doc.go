// Package lvlath (root) is documentation-only: the module has no root-level
// importable code. See the subpackages:
//
//	core/     — thread-safe Graph, Vertex, Edge primitives (vertex/edge CRUD,
//	            cloning, views, neighbor queries)
//	preorder/ — sparse-matrix preordering: approximate minimum-degree column
//	            ordering (COLAMD-lite), maximum bipartite matching for a
//	            zero-free diagonal, and Dulmage–Mendelsohn-style block
//	            triangular decomposition
//
// preorder consumes plain int-indexed sparse column patterns
// (preorder.ColumnFunc) as its native input, with core.Graph as one
// optional pattern carrier via preorder.PatternFromGraph — see
// preorder/doc.go for the full algorithm overview.
package lvlath
