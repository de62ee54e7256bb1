// Package matrix builds the symmetric matrices of a core.Graph and computes
// their eigendecomposition.
//
// Surface:
//
//	Dense            row-major float64 storage with error-returning At/Set
//	Kind             Laplacian (D − A) or Adjacency (A)
//	Build(g, kind)   matrix over the graph's live nodes in ascending id order
//	Solver           EigenSym(*Dense) → eigenvalues, eigenvectors (columns)
//	Gonum            Solver backed by gonum.org/v1/gonum/mat.EigenSym
//	Jacobi           Solver using cyclic max-pivot Jacobi rotations
//
// Row/column i of a built matrix corresponds to g.Nodes()[i], equivalently
// to the node whose g.Index(id) is i.
//
// Solvers make no ordering promise on eigenvalues; callers sort.
package matrix
