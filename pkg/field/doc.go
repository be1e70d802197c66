// Package field provides a single-field validation cell: a small unit of
// state that tracks one input value, validates it on demand, and can reset
// to or re-baseline a known-good save point.
//
// The package revolves around three pieces:
//  1. Cell — the state holder with its four operations (Set/Update,
//     Validate, Reset, Commit)
//  2. Validator and Result — an explicit two-case validation outcome,
//     either Valid or Invalid with an optional hint payload
//  3. Store — the host framework's state primitive, abstracted so the
//     cell works under both immediate and batched state application
//
// A cell is deliberately minimal: it does not render anything, does not
// debounce or schedule validation, does not compose multiple fields into a
// form, and holds no state beyond one value, one hint, and one save point.
// It is meant to be embedded inside a larger component tree; the root
// fieldkit package supplies hypermedia glue for DataStar and HTMX hosts.
//
// # Usage
//
// Basic cell with a static hint:
//
//	import "github.com/dmitrymomot/fieldkit/pkg/field"
//
//	cell := field.New("", "email is required",
//		field.Predicate[string, string](func(v string) bool {
//			return v != ""
//		}),
//	)
//
//	cell.Set("alice@example.com")
//	if cell.Validate() {
//		cell.Commit() // new baseline for Reset
//	}
//
// A validator can carry its own hint instead of falling back to the static
// one:
//
//	cell := field.New(0, "invalid age", func(age int) field.Result[string] {
//		if age < 0 {
//			return field.InvalidHint[string]("age cannot be negative")
//		}
//		if age > 150 {
//			return field.InvalidHint[string]("age is implausibly large")
//		}
//		return field.Valid[string]()
//	})
//
// # Hint lifecycle
//
// Validate is the only operation that records a hint; Set and Update never
// touch it, Commit never touches it, and Reset unconditionally clears it.
// A cell therefore has two observable modes, valid (no hint) and invalid
// (hint present), with Validate as the only arc between them and Reset as
// an unconditional jump back to valid.
//
// # Save point
//
// The save point is the value Reset restores. It starts as the
// construction-time value and advances only through Commit (to the current
// value) or CommitValue (to an explicit value). Committing never changes
// the current value or the hint.
//
// # Batched hosts and stale reads
//
// UI frameworks that batch state updates apply writes at the end of a
// tick. With BatchedStore the cell reproduces that behavior faithfully:
// calling Validate in the same tick as a preceding Set observes the value
// from before the Set until the host flushes the queue. The default
// ImmediateStore applies writes synchronously, which is a deliberate
// semantic difference from batching hosts; pick the store that matches the
// host you are embedding in.
//
// # Concurrency
//
// Cells and stores are single-threaded by contract: operations are invoked
// synchronously from one logical event loop, nothing blocks, and no
// instance shares state with another, so there is no locking.
//
// # Error handling
//
// None of the operations fail. The only failure mode is a validator that
// panics, which is a violation of the pure-validator contract; the panic
// propagates to the caller unchanged.
package field
