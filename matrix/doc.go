// Package matrix is a small dense-matrix algebra library over float64 entries
// with a Gaussian-elimination core.
//
// The matrix package provides:
//
//   - Dense, a row-major implementation of the Matrix interface with
//     bounds-checked accessors (At/Set never panic).
//   - Constructors: NewDense/NewZeros, NewFromRows, NewIdentity, and the
//     random generators NewRandom (float bounds) and NewRandomInt (integer
//     bounds).
//   - Arithmetic: Add, Scale, Mul, Power and column augmentation (Augment).
//   - The elimination engine: RowInterchange, RowCombination, RowScaling,
//     EchelonForm, ReducedEchelonForm, plus Rank/Pivots.
//   - Inverse, built as [A | I] → reduced echelon form → right block.
//
// Ownership: the row primitives and both reductions mutate the matrix they
// receive and hand the same value back. Clone first when the original must
// survive.
//
// Numeric policy: pivot detection uses exact comparison with zero unless a
// tolerance is supplied via WithEpsilon. Inverse does not report singular
// inputs unless WithSingularCheck is given.
//
// See the examples in this package and examples/linear_system for usage.
package matrix
