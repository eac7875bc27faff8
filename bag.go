package ledger

import (
	"iter"

	iter_util "github.com/TheBitDrifter/util/iter"
)

// EntityBag is an unordered, capacity-bounded collection of entity ids.
// Removal always swaps the last id into the vacated slot.
//
// Copying a bag shares its storage; use Clone for an independent snapshot.
type EntityBag struct {
	ids []Entity
}

func NewEntityBag(capacity int) EntityBag {
	if capacity < 0 {
		violate(ContainerIndexError{Index: capacity})
	}
	return EntityBag{ids: make([]Entity, 0, capacity)}
}

func (b *EntityBag) Cap() int    { return cap(b.ids) }
func (b *EntityBag) Len() int    { return len(b.ids) }
func (b *EntityBag) Full() bool  { return len(b.ids) == cap(b.ids) }
func (b *EntityBag) Empty() bool { return len(b.ids) == 0 }

func (b *EntityBag) PushBack(e Entity) {
	if b.Full() {
		violate(ContainerFullError{Capacity: cap(b.ids)})
	}
	b.ids = append(b.ids, e)
}

// Erase removes the id at index i. The order of the remaining ids changes.
func (b *EntityBag) Erase(i int) {
	b.check(i)
	last := len(b.ids) - 1
	b.ids[i] = b.ids[last]
	b.ids = b.ids[:last]
}

func (b *EntityBag) Clear() {
	b.ids = b.ids[:0]
}

func (b *EntityBag) Front() Entity {
	return b.ids[b.check(0)]
}

func (b *EntityBag) Back() Entity {
	return b.ids[b.check(len(b.ids)-1)]
}

func (b *EntityBag) Get(i int) Entity {
	return b.ids[b.check(i)]
}

// IndexOf returns the position of e, or -1 when the bag does not hold it.
func (b *EntityBag) IndexOf(e Entity) int {
	for i, id := range b.ids {
		if id == e {
			return i
		}
	}
	return -1
}

func (b *EntityBag) All() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, id := range b.ids {
			if !yield(id) {
				return
			}
		}
	}
}

// Clone returns a bag with the same capacity and ids that shares no storage
// with b.
func (b *EntityBag) Clone() EntityBag {
	clone := NewEntityBag(cap(b.ids))
	clone.ids = append(clone.ids, b.ids...)
	return clone
}

// Slice copies the live ids into a new slice.
func (b *EntityBag) Slice() []Entity {
	return iter_util.Collect(b.All())
}

func (b *EntityBag) check(i int) int {
	if i < 0 || i >= len(b.ids) {
		violate(ContainerIndexError{Index: i, Len: len(b.ids)})
	}
	return i
}
