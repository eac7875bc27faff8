package ledger

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
	"go.uber.org/zap"
)

func newTable(cfg TableConfig) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	components := NewArray[*Array[Component]](cfg.MaxComponentKinds)
	for k := range cfg.MaxComponentKinds {
		components.Set(k, NewArray[Component](cfg.MaxEntities))
	}
	t := &Table{
		cfg:        cfg,
		entities:   NewEntityMask(cfg.MaxEntities),
		components: components,
		signatures: NewArray[mask.Mask](cfg.MaxEntities),
		systems:    NewArray[System](cfg.MaxSystems),
		shared:     NewArray[sharedSlot](cfg.MaxComponentKinds),
		deferred:   newDeferQueue(cfg.MaxEntities),
		schema:     table.Factory.NewSchema(),
		kindTypes:  NewArray[reflect.Type](cfg.MaxComponentKinds),
	}
	Config.logger.Debug("table created",
		zap.Int("max_entities", cfg.MaxEntities),
		zap.Int("max_component_kinds", cfg.MaxComponentKinds),
		zap.Int("max_systems", cfg.MaxSystems),
	)
	return t, nil
}

func (t *Table) Config() TableConfig {
	return t.cfg
}

// Create allocates the lowest free entity id, or returns NoEntity when the
// table is full.
func (t *Table) Create() Entity {
	t.checkOpen()
	return t.entities.Create()
}

func (t *Table) Contains(e Entity) bool {
	return t.entities.Contains(e)
}

// Len counts live entities.
func (t *Table) Len() int {
	return t.entities.Len()
}

// Entities yields live entity ids in ascending order.
func (t *Table) Entities() iter.Seq[Entity] {
	return t.entities.All()
}

// Add attaches c to e under kind. The table owns c from now on; the slot must
// be empty.
func (t *Table) Add(kind Kind, e Entity, c Component) {
	t.checkOpen()
	t.checkKind(kind)
	t.checkLive(e)
	if isNil(c) {
		violate(NilComponentError{Kind: kind, Entity: e})
	}
	slot := t.components.Get(int(kind)).At(int(e))
	if *slot != nil || t.hasShared(kind, e) {
		violate(ComponentExistsError{Kind: kind, Entity: e})
	}
	*slot = c
	t.signatures.At(int(e)).Mark(uint32(kind))
}

// Component returns the component attached to e under kind.
func (t *Table) Component(kind Kind, e Entity) Component {
	t.checkKind(kind)
	t.checkEntity(e)
	c := t.components.Get(int(kind)).Get(int(e))
	if c == nil {
		violate(ComponentNotFoundError{Kind: kind, Entity: e})
	}
	return c
}

// Get returns the *T attached to e under kind.
func Get[T any](t *Table, kind Kind, e Entity) *T {
	c := t.Component(kind, e)
	v, ok := c.(*T)
	if !ok {
		violate(ComponentTypeError{Kind: kind, Entity: e, Stored: c, Want: reflect.TypeFor[*T]().String()})
	}
	return v
}

func (t *Table) Has(kind Kind, e Entity) bool {
	t.checkKind(kind)
	t.checkEntity(e)
	return t.components.Get(int(kind)).Get(int(e)) != nil || t.hasShared(kind, e)
}

// Signature returns the set of kinds attached to e.
func (t *Table) Signature(e Entity) mask.Mask {
	t.checkEntity(e)
	return t.signatures.Get(int(e))
}

// Subscribe offers e to every system in id order, subscribing it to those
// whose Select accepts it.
func (t *Table) Subscribe(e Entity) {
	t.checkOpen()
	t.checkLive(e)
	for _, s := range t.systems.All() {
		if s != nil && s.Select(e) {
			s.Subscribe(e)
		}
	}
}

// Destroy releases e's components, drops it from every system and frees its
// id. Destroying an id that is not live does nothing.
func (t *Table) Destroy(e Entity) {
	t.checkOpen()
	if !t.entities.Contains(e) {
		return
	}
	for k, slots := range t.components.All() {
		slot := slots.At(int(e))
		if *slot != nil {
			release(*slot)
			*slot = nil
		}
		if present := t.shared.Get(k).present; present != nil {
			present.Destroy(e)
		}
	}
	for _, s := range t.systems.All() {
		if s != nil && s.Subscribed(e) {
			s.Unsubscribe(e)
		}
	}
	t.signatures.Set(int(e), mask.Mask{})
	t.deferred.drop(e)
	t.entities.Destroy(e)
}

// Clear destroys every live entity in ascending id order.
func (t *Table) Clear() {
	t.checkOpen()
	n := 0
	for e := range t.entities.All() {
		t.Destroy(e)
		n++
	}
	Config.logger.Debug("table cleared", zap.Int("destroyed", n))
}

// AddSystem registers s under id. The slot must be empty.
func (t *Table) AddSystem(id SystemID, s System) {
	t.checkOpen()
	t.checkSystem(id)
	if isNil(s) {
		violate(NilSystemError{ID: id})
	}
	if t.systems.Get(int(id)) != nil {
		violate(SystemExistsError{ID: id})
	}
	if t.cfg.ActivateOnRegister {
		s.Activate()
	}
	t.systems.Set(int(id), s)
	Config.logger.Debug("system registered",
		zap.Uint8("id", uint8(id)),
		zap.String("type", fmt.Sprintf("%T", s)),
		zap.Bool("active", s.Active()),
	)
}

// System returns the system registered under id.
func (t *Table) System(id SystemID) System {
	t.checkSystem(id)
	s := t.systems.Get(int(id))
	if s == nil {
		violate(SystemNotFoundError{ID: id})
	}
	return s
}

// Systems yields registered systems in id order.
func (t *Table) Systems() iter.Seq2[SystemID, System] {
	return func(yield func(SystemID, System) bool) {
		for i, s := range t.systems.All() {
			if s == nil {
				continue
			}
			if !yield(SystemID(i), s) {
				return
			}
		}
	}
}

func (t *Table) Activate(id SystemID) {
	t.System(id).Activate()
}

func (t *Table) Deactivate(id SystemID) {
	t.System(id).Deactivate()
}

func (t *Table) ActivateAll() {
	for _, s := range t.Systems() {
		s.Activate()
	}
}

func (t *Table) DeactivateAll() {
	for _, s := range t.Systems() {
		s.Deactivate()
	}
}

// Init runs every system's Init in id order. Call it once before the first
// Update.
func (t *Table) Init() {
	t.checkOpen()
	for _, s := range t.Systems() {
		s.Init()
	}
}

// Update runs the Update of every active system in id order, then flushes
// destroys queued with DeferDestroy. Call it once per frame.
func (t *Table) Update() {
	t.checkOpen()
	for _, s := range t.Systems() {
		if s.Active() {
			s.Update()
		}
	}
	t.FlushDeferred()
}

// Close releases every remaining component and every system. The table is
// unusable afterwards.
func (t *Table) Close() {
	if t.closed {
		return
	}
	released := 0
	for _, slots := range t.components.All() {
		for e, c := range slots.All() {
			if c != nil {
				release(c)
				slots.Set(e, nil)
				released++
			}
		}
	}
	for i, s := range t.systems.All() {
		if s != nil {
			release(s)
			t.systems.Set(i, nil)
		}
	}
	for k := range t.shared.All() {
		t.shared.Set(k, sharedSlot{})
	}
	t.deferred.reset()
	t.entities.Reset()
	t.closed = true
	Config.logger.Debug("table closed", zap.Int("released_components", released))
}

func (t *Table) checkOpen() {
	if t.closed {
		violate(ClosedTableError{})
	}
}

func (t *Table) checkKind(kind Kind) {
	if int(kind) >= t.cfg.MaxComponentKinds {
		violate(KindRangeError{Kind: kind, Max: t.cfg.MaxComponentKinds})
	}
}

func (t *Table) checkSystem(id SystemID) {
	if int(id) >= t.cfg.MaxSystems {
		violate(SystemRangeError{ID: id, Max: t.cfg.MaxSystems})
	}
}

func (t *Table) checkLive(e Entity) {
	if !t.entities.Contains(e) {
		violate(EntityNotFoundError{Entity: e})
	}
}

func (t *Table) checkEntity(e Entity) {
	if int(e) >= t.cfg.MaxEntities {
		violate(EntityRangeError{Entity: e, Size: t.cfg.MaxEntities})
	}
}

// isNil reports whether v is nil or a nil pointer, map, slice, func or chan
// wrapped in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
