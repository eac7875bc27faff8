package ledger

import (
	"fmt"
	"reflect"
)

// AttachShared registers a caller-owned array holding kind's components by
// value, one slot per entity. The table writes into it through SetShared but
// never frees it.
func AttachShared[T any](t *Table, kind Kind, arr *Array[T]) {
	t.checkOpen()
	t.checkKind(kind)
	if arr == nil {
		violate(SharedStorageError{Kind: kind, Reason: "nil array"})
	}
	if arr.Len() != t.cfg.MaxEntities {
		violate(SharedStorageError{Kind: kind, Reason: fmt.Sprintf("array holds %d slots, want %d", arr.Len(), t.cfg.MaxEntities)})
	}
	slot := t.shared.At(int(kind))
	if slot.storage != nil {
		violate(SharedStorageError{Kind: kind, Reason: "already attached"})
	}
	slot.storage = arr
	slot.present = NewEntityMask(t.cfg.MaxEntities)
}

// SetShared copies v into e's slot of kind's shared array and marks e as
// holding the kind.
func SetShared[T any](t *Table, kind Kind, e Entity, v T) {
	t.checkOpen()
	t.checkLive(e)
	arr := SharedArray[T](t, kind)
	if t.components.Get(int(kind)).Get(int(e)) != nil {
		violate(ComponentExistsError{Kind: kind, Entity: e})
	}
	arr.Set(int(e), v)
	t.shared.Get(int(kind)).present.Add(e)
	t.signatures.At(int(e)).Mark(uint32(kind))
}

// SharedArray returns the array attached to kind with AttachShared.
func SharedArray[T any](t *Table, kind Kind) *Array[T] {
	t.checkKind(kind)
	storage := t.shared.Get(int(kind)).storage
	if storage == nil {
		violate(SharedStorageError{Kind: kind, Reason: "not attached"})
	}
	arr, ok := storage.(*Array[T])
	if !ok {
		violate(SharedStorageError{Kind: kind, Reason: fmt.Sprintf("holds %T, not %s", storage, reflect.TypeFor[*Array[T]]())})
	}
	return arr
}

// GetShared returns e's slot in kind's shared array. e must have been given a
// value with SetShared since it was created.
func GetShared[T any](t *Table, kind Kind, e Entity) *T {
	arr := SharedArray[T](t, kind)
	if !t.hasShared(kind, e) {
		violate(ComponentNotFoundError{Kind: kind, Entity: e})
	}
	return arr.At(int(e))
}

func (t *Table) hasShared(kind Kind, e Entity) bool {
	present := t.shared.Get(int(kind)).present
	return present != nil && present.Contains(e)
}
