// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose the pivot predicate, the policy-aware constructor and resolved
//     options to matrix_test ONLY, without widening the production API.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

var (
	// ExportedNewDenseWithPolicy exposes newDenseWithPolicy for white-box tests.
	ExportedNewDenseWithPolicy = newDenseWithPolicy

	// ExportedIsNegligible exposes the pivot predicate of the elimination engine.
	ExportedIsNegligible = isNegligible
)

// PanicEpsilonInvalid_TestOnly avoids a magic string in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// OptionsSnapshot is a read-only copy of resolved Options.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
	SingularCheck  bool
	Seed           uint64
	Seeded         bool
}

// GatherOptionsSnapshot_TestOnly resolves opts and returns the snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Eps:            o.eps,
		ValidateNaNInf: o.validateNaNInf,
		SingularCheck:  o.singularCheck,
		Seed:           o.seed,
		Seeded:         o.seeded,
	}
}
