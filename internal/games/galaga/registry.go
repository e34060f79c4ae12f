package galaga

// Deletable is implemented by every entity held in a Registry.
type Deletable interface {
	IsDeleted() bool
}

// Registry is an ordered container of one entity type.
// Entities are never removed mid-tick: subsystems mark them and Compact
// drops them once, at the end of the tick.
type Registry[T Deletable] struct {
	items []T
	limit int // 0 = unbounded
}

// NewRegistry creates a registry. A positive limit evicts the oldest entity
// when a new one would exceed it.
func NewRegistry[T Deletable](limit int) *Registry[T] {
	return &Registry[T]{
		items: make([]T, 0, 16),
		limit: limit,
	}
}

// Add appends an entity, evicting the oldest one when the limit is reached.
func (r *Registry[T]) Add(item T) {
	if r.limit > 0 && len(r.items) >= r.limit {
		n := copy(r.items, r.items[1:])
		var zero T
		r.items[n] = zero
		r.items = r.items[:n]
	}
	r.items = append(r.items, item)
}

// Each calls fn for every entity that is not marked for deletion.
// Entities added while iterating are not visited, and an entity marked by an
// earlier callback in the same pass is skipped.
func (r *Registry[T]) Each(fn func(T)) {
	n := len(r.items)
	for i := 0; i < n && i < len(r.items); i++ {
		item := r.items[i]
		if item.IsDeleted() {
			continue
		}
		fn(item)
	}
}

// Count returns the number of live entities matching pred.
func (r *Registry[T]) Count(pred func(T) bool) int {
	n := 0
	for _, item := range r.items {
		if !item.IsDeleted() && (pred == nil || pred(item)) {
			n++
		}
	}
	return n
}

// Compact drops every entity marked for deletion, keeping survivor order.
// Returns how many were removed.
func (r *Registry[T]) Compact() int {
	kept := r.items[:0]
	for _, item := range r.items {
		if !item.IsDeleted() {
			kept = append(kept, item)
		}
	}
	removed := len(r.items) - len(kept)

	// Release references held past the new length
	var zero T
	for i := len(kept); i < len(r.items); i++ {
		r.items[i] = zero
	}
	r.items = kept
	return removed
}

// Items returns the backing slice, including marked entities.
// Callers must not modify it.
func (r *Registry[T]) Items() []T {
	return r.items
}

// Len returns the number of stored entities, marked ones included.
func (r *Registry[T]) Len() int {
	return len(r.items)
}

// Clear removes every entity.
func (r *Registry[T]) Clear() {
	var zero T
	for i := range r.items {
		r.items[i] = zero
	}
	r.items = r.items[:0]
}
