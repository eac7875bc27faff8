package ledger

import "iter"

// SystemID identifies a system slot, in [0, MaxSystems).
type SystemID uint8

var _ System = &BaseSystem{}

// BaseSystem tracks the entities subscribed to a system. Embed a *BaseSystem
// in a concrete system and override Select, Init and Update.
//
// Membership is tested by a linear scan of the subscribers unless the system
// was built WithIndex, which keeps a bit per entity for constant-time tests.
type BaseSystem struct {
	active      bool
	subscribers EntityBag
	index       *EntityMask
}

type SystemOption func(*BaseSystem)

// WithIndex backs membership tests with a bitmask over maxEntities ids.
func WithIndex(maxEntities int) SystemOption {
	return func(s *BaseSystem) {
		s.index = NewEntityMask(maxEntities)
	}
}

// WithInactive builds the system in the Inactive state.
func WithInactive() SystemOption {
	return func(s *BaseSystem) {
		s.active = false
	}
}

// NewBaseSystem returns an active system holding at most capacity subscribers.
func NewBaseSystem(capacity int, opts ...SystemOption) *BaseSystem {
	s := &BaseSystem{
		active:      true,
		subscribers: NewEntityBag(capacity),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *BaseSystem) Select(Entity) bool { return false }
func (s *BaseSystem) Init()              {}
func (s *BaseSystem) Update()            {}

func (s *BaseSystem) Active() bool { return s.active }
func (s *BaseSystem) Activate()    { s.active = true }
func (s *BaseSystem) Deactivate()  { s.active = false }

// Subscribe adds e to the subscribers. Subscribing twice has no effect.
func (s *BaseSystem) Subscribe(e Entity) {
	if s.Subscribed(e) {
		return
	}
	s.subscribers.PushBack(e)
	if s.index != nil {
		s.index.Add(e)
	}
}

// Unsubscribe removes e if it is subscribed.
func (s *BaseSystem) Unsubscribe(e Entity) {
	if s.index != nil {
		if !s.index.Contains(e) {
			return
		}
		s.index.Destroy(e)
	}
	if i := s.subscribers.IndexOf(e); i >= 0 {
		s.subscribers.Erase(i)
	}
}

func (s *BaseSystem) Subscribed(e Entity) bool {
	if s.index != nil {
		return s.index.Contains(e)
	}
	return s.subscribers.IndexOf(e) >= 0
}

// Subscribers returns a snapshot that later subscription changes do not touch.
func (s *BaseSystem) Subscribers() EntityBag {
	return s.subscribers.Clone()
}

// Each calls fn for every subscriber without copying the set. fn must not
// subscribe or unsubscribe entities of this system.
func (s *BaseSystem) Each(fn func(Entity)) {
	for _, e := range s.subscribers.ids {
		fn(e)
	}
}

func (s *BaseSystem) All() iter.Seq[Entity] {
	return s.subscribers.All()
}

// subscriberTracker is satisfied by any system embedding *BaseSystem.
type subscriberTracker interface {
	base() *BaseSystem
}

func (s *BaseSystem) base() *BaseSystem { return s }

func (s *BaseSystem) Len() int      { return s.subscribers.Len() }
func (s *BaseSystem) Cap() int      { return s.subscribers.Cap() }
func (s *BaseSystem) Indexed() bool { return s.index != nil }
