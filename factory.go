package ledger

import "github.com/TheBitDrifter/table"

type factory struct{}

var Factory factory

func (f factory) NewTable(cfg TableConfig) (*Table, error) {
	return newTable(cfg)
}

// NewCursor walks the live entities of t accepted by pred. A nil pred
// accepts every entity.
func (f factory) NewCursor(t *Table, pred Predicate) *Cursor {
	return newCursor(t, pred)
}

// NewSystemCursor walks the subscribers of system id accepted by pred.
func (f factory) NewSystemCursor(t *Table, id SystemID, pred Predicate) *Cursor {
	c := newCursor(t, pred)
	c.system = t.System(id)
	return c
}

func FactoryNewKind[T any](id Kind) AccessibleKind[T] {
	return AccessibleKind[T]{
		id:          id,
		ElementType: table.FactoryNewElementType[T](),
	}
}
