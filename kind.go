package ledger

import (
	"reflect"

	"github.com/TheBitDrifter/table"
	"go.uber.org/zap"
)

// AccessibleKind binds a Kind to the Go type stored under it, so components
// can be attached and read without spelling out the type at every call.
type AccessibleKind[T any] struct {
	id Kind
	table.ElementType
}

func (k AccessibleKind[T]) ID() Kind {
	return k.id
}

// Add attaches c to e. The first typed use of a kind on a table registers T
// for it; using the same kind with another type afterwards panics.
func (k AccessibleKind[T]) Add(t *Table, e Entity, c *T) {
	if c == nil {
		violate(NilComponentError{Kind: k.id, Entity: e})
	}
	t.registerKind(k.id, k.ElementType, reflect.TypeFor[T]())
	t.Add(k.id, e, c)
}

func (k AccessibleKind[T]) Get(t *Table, e Entity) *T {
	return Get[T](t, k.id, e)
}

func (k AccessibleKind[T]) Has(t *Table, e Entity) bool {
	return t.Has(k.id, e)
}

func (t *Table) registerKind(kind Kind, et table.ElementType, rt reflect.Type) {
	t.checkKind(kind)
	if have := t.kindTypes.Get(int(kind)); have != nil {
		if have != rt {
			violate(KindTypeError{Kind: kind, Registered: have.String(), Requested: rt.String()})
		}
		return
	}
	t.schema.Register(et)
	t.kindTypes.Set(int(kind), rt)
	Config.logger.Debug("component kind registered",
		zap.Uint8("kind", uint8(kind)),
		zap.Stringer("type", rt),
		zap.Uint32("row", t.schema.RowIndexFor(et)),
	)
}
