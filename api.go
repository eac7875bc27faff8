package ledger

import (
	"reflect"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

// System is a unit of per-frame processing over the entities it subscribed.
type System interface {
	// Select decides membership when the table subscribes an entity. It is
	// not consulted again until the entity is subscribed anew.
	Select(Entity) bool
	Init()
	Update()

	Subscribe(Entity)
	Unsubscribe(Entity)
	Subscribed(Entity) bool
	Subscribers() EntityBag

	Active() bool
	Activate()
	Deactivate()
}

// Predicate filters entities in computed queries.
type Predicate func(*Table, Entity) bool

// ParamPredicate filters entities against a caller-owned parameter value.
type ParamPredicate[P any] func(*Table, Entity, *P) bool

// sharedSlot is caller-owned storage for one kind: an *Array[T] and the
// entities that hold a value in it.
type sharedSlot struct {
	storage any
	present *EntityMask
}

// Table owns entities, their components and the systems processing them.
// All capacities are fixed by the TableConfig it was built with.
type Table struct {
	cfg    TableConfig
	closed bool

	entities   *EntityMask
	components *Array[*Array[Component]]
	signatures *Array[mask.Mask]
	systems    *Array[System]

	shared   *Array[sharedSlot]
	deferred deferQueue

	schema    table.Schema
	kindTypes *Array[reflect.Type]
}
