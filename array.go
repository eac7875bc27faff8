package ledger

import "iter"

// Array is a fixed-length sequence. Its length is set at construction and
// every slot exists for the array's whole lifetime.
type Array[T any] struct {
	items []T
}

func NewArray[T any](size int) *Array[T] {
	if size < 0 {
		violate(ContainerIndexError{Index: size})
	}
	return &Array[T]{items: make([]T, size)}
}

// NewArrayOf returns an array with every slot set to v.
func NewArrayOf[T any](size int, v T) *Array[T] {
	a := NewArray[T](size)
	a.Fill(v)
	return a
}

func (a *Array[T]) Len() int {
	return len(a.items)
}

func (a *Array[T]) Get(i int) T {
	a.check(i)
	return a.items[i]
}

// At returns a pointer to slot i. The pointer stays valid as long as the array.
func (a *Array[T]) At(i int) *T {
	a.check(i)
	return &a.items[i]
}

func (a *Array[T]) Set(i int, v T) {
	a.check(i)
	a.items[i] = v
}

func (a *Array[T]) Fill(v T) {
	for i := range a.items {
		a.items[i] = v
	}
}

func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (a *Array[T]) check(i int) {
	if i < 0 || i >= len(a.items) {
		violate(ContainerIndexError{Index: i, Len: len(a.items)})
	}
}
