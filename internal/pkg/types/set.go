package types

// Set is a generic hash set for comparable types backed by map[T]struct{}.
// Methods like Add and Delete modify the set in place.
type Set[T comparable] map[T]struct{}

// NewSet creates a new Set holding the provided elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Delete removes one or more elements from the set.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Unique returns the elements of values without duplicates, keeping the
// position of the first occurrence of each one.
func Unique[T comparable](values []T) []T {
	seen := NewSet[T]()
	out := make([]T, 0, len(values))
	for _, v := range values {
		if seen.Has(v) {
			continue
		}

		seen.Add(v)
		out = append(out, v)
	}

	return out
}
