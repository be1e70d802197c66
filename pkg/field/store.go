package field

// Store holds a cell's current value on behalf of its host.
// It models the host framework's state primitive: Set and Update record a
// new value, Value reports the value the host currently exposes. Whether a
// recorded write is visible immediately depends on the implementation.
//
// Stores are not safe for concurrent use; cells run on a single logical
// thread of their host.
type Store[V any] interface {
	Value() V
	Set(v V)
	Update(fn func(V) V)
}

// ImmediateStore applies writes synchronously, so a read directly after a
// write observes the new value. Hosts with batched state application defer
// writes instead; embedding a cell in such a host calls for BatchedStore,
// otherwise validate-after-set gains read-your-write semantics the host
// does not have.
type ImmediateStore[V any] struct {
	v V
}

// NewImmediateStore creates a store seeded with v.
func NewImmediateStore[V any](v V) *ImmediateStore[V] {
	return &ImmediateStore[V]{v: v}
}

func (s *ImmediateStore[V]) Value() V {
	return s.v
}

func (s *ImmediateStore[V]) Set(v V) {
	s.v = v
}

func (s *ImmediateStore[V]) Update(fn func(V) V) {
	s.v = fn(s.v)
}

// BatchedStore defers writes until Flush, the way batching UI frameworks
// apply state updates at the end of a tick. Value returns the last flushed
// value, so a read scheduled in the same tick as a write observes the
// previous value. Updater functions queued via Update are applied against
// the value current when the queue runs, not when they were recorded, so
// rapid sequential updates compose instead of overwriting each other.
type BatchedStore[V any] struct {
	v       V
	pending []func(V) V
}

// NewBatchedStore creates a store seeded with v and an empty write queue.
func NewBatchedStore[V any](v V) *BatchedStore[V] {
	return &BatchedStore[V]{v: v}
}

func (s *BatchedStore[V]) Value() V {
	return s.v
}

func (s *BatchedStore[V]) Set(v V) {
	s.pending = append(s.pending, func(V) V { return v })
}

func (s *BatchedStore[V]) Update(fn func(V) V) {
	s.pending = append(s.pending, fn)
}

// Flush applies the queued writes in order and empties the queue.
// The host calls this at its tick boundary.
func (s *BatchedStore[V]) Flush() {
	for _, fn := range s.pending {
		s.v = fn(s.v)
	}
	s.pending = nil
}

// Pending returns the number of queued writes.
func (s *BatchedStore[V]) Pending() int {
	return len(s.pending)
}
