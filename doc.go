// Package linearalgebrabasics is a compact dense linear-algebra toolkit built
// around Gaussian elimination.
//
// What is inside?
//
//	matrix/   - dense float64 matrices, arithmetic (Add, Scale, Mul, Power),
//	            elementary row operations, echelon and reduced echelon forms,
//	            rank/pivots, Gauss–Jordan inverse, printing, gonum interop
//	examples/ - runnable programs: solving a linear system, power iteration
//
// Why this shape?
//
//   - Beginner-friendly – the reductions are written as the textbook
//     algorithm: first nonzero pivot, clear below, normalize, clear above.
//   - Explicit errors – bounds, shapes and numeric faults come back as
//     sentinel errors; nothing panics on user input.
//   - Interop – ToGonum/FromGonum move data to and from gonum/mat.
//
// Quick look:
//
//	m, _ := matrix.NewFromRows([][]float64{{2, 0}, {0, 2}})
//	inv, _ := matrix.Inverse(m) // [[0.5 0] [0 0.5]]
//
//	go get github.com/AntiSocialSkynet/LinearAlgebraBasics/matrix
package linearalgebrabasics
