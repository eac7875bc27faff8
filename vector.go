package ledger

import "iter"

// Vector is an ordered sequence that never grows past the capacity it was
// built with. Erase is unordered (the last element fills the gap); Insert keeps
// order by shifting.
type Vector[T any] struct {
	items []T
}

func NewVector[T any](capacity int) *Vector[T] {
	if capacity < 0 {
		violate(ContainerIndexError{Index: capacity})
	}
	return &Vector[T]{items: make([]T, 0, capacity)}
}

func (v *Vector[T]) Cap() int    { return cap(v.items) }
func (v *Vector[T]) Len() int    { return len(v.items) }
func (v *Vector[T]) Full() bool  { return len(v.items) == cap(v.items) }
func (v *Vector[T]) Empty() bool { return len(v.items) == 0 }

func (v *Vector[T]) PushBack(item T) {
	if v.Full() {
		violate(ContainerFullError{Capacity: cap(v.items)})
	}
	v.items = append(v.items, item)
}

func (v *Vector[T]) PopBack() {
	last := v.check(len(v.items) - 1)
	var zero T
	v.items[last] = zero
	v.items = v.items[:last]
}

func (v *Vector[T]) Front() T {
	return v.items[v.check(0)]
}

func (v *Vector[T]) Back() T {
	return v.items[v.check(len(v.items)-1)]
}

func (v *Vector[T]) Get(i int) T {
	return v.items[v.check(i)]
}

// At returns a pointer to element i, valid until the element is moved by
// Erase, Insert or PopBack.
func (v *Vector[T]) At(i int) *T {
	return &v.items[v.check(i)]
}

func (v *Vector[T]) Set(i int, item T) {
	v.items[v.check(i)] = item
}

// Insert places item at index i, shifting the tail right. i may equal Len.
func (v *Vector[T]) Insert(i int, item T) {
	if v.Full() {
		violate(ContainerFullError{Capacity: cap(v.items)})
	}
	if i < 0 || i > len(v.items) {
		violate(ContainerIndexError{Index: i, Len: len(v.items)})
	}
	v.items = v.items[:len(v.items)+1]
	copy(v.items[i+1:], v.items[i:len(v.items)-1])
	v.items[i] = item
}

// Erase removes element i by moving the last element into its slot.
func (v *Vector[T]) Erase(i int) {
	v.check(i)
	last := len(v.items) - 1
	v.items[i] = v.items[last]
	var zero T
	v.items[last] = zero
	v.items = v.items[:last]
}

func (v *Vector[T]) Clear() {
	clear(v.items)
	v.items = v.items[:0]
}

func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range v.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.items {
			if !yield(item) {
				return
			}
		}
	}
}

func (v *Vector[T]) check(i int) int {
	if i < 0 || i >= len(v.items) {
		violate(ContainerIndexError{Index: i, Len: len(v.items)})
	}
	return i
}
