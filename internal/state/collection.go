// Package state holds the pure state transitions of the dashboard panels.
// Every mutator returns a new slice and never writes to its input.
package state

// Entity is a record with a string identity
type Entity interface {
	EntityID() string
}

// Toggler is an entity whose active flag can be negated
type Toggler[T any] interface {
	Entity
	Toggled() T
}

// Append returns a new collection with item added at the end
func Append[T any](items []T, item T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

// Remove returns a new collection without the entities matching id
func Remove[T Entity](items []T, id string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.EntityID() != id {
			out = append(out, item)
		}
	}
	return out
}

// Update returns a new collection where the entity matching id is replaced by fn(entity)
func Update[T Entity](items []T, id string, fn func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		if item.EntityID() == id {
			item = fn(item)
		}
		out[i] = item
	}
	return out
}

// ToggleActive returns a new collection with the matched entity's active flag negated
func ToggleActive[T Toggler[T]](items []T, id string) []T {
	return Update(items, id, func(item T) T { return item.Toggled() })
}

// Find returns the entity matching id
func Find[T Entity](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Clone returns a shallow copy safe to hand out to readers
func Clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
