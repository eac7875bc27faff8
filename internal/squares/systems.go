package squares

import (
	"github.com/TheBitDrifter/ledger"
	"go.uber.org/zap"
)

const (
	boundX         = FieldWidth / 2
	boundY         = FieldHeight / 2
	animationDelay = 10
)

var (
	_ ledger.System = &Movement{}
	_ ledger.System = &Rotation{}
	_ ledger.System = &Scaling{}
	_ ledger.System = &Visibility{}
	_ ledger.System = &EntityManager{}
	_ ledger.System = &AnimationSystem{}
)

// Movement moves squares by their velocity and bounces them off the field
// edges.
type Movement struct {
	*ledger.BaseSystem
	table *ledger.Table
}

func NewMovement(t *ledger.Table, capacity int) *Movement {
	return &Movement{
		BaseSystem: ledger.NewBaseSystem(capacity, ledger.WithIndex(t.Config().MaxEntities)),
		table:      t,
	}
}

func (m *Movement) Select(e ledger.Entity) bool {
	return Position.Has(m.table, e) && Velocity.Has(m.table, e)
}

func (m *Movement) Update() {
	for e := range m.All() {
		pos, vel := Position.Get(m.table, e), Velocity.Get(m.table, e)
		pos.X += vel.X
		pos.Y += vel.Y
		pos.X, vel.X = bounce(pos.X, vel.X, boundX)
		pos.Y, vel.Y = bounce(pos.Y, vel.Y, boundY)

		if s := spriteOf(m.table, e); s != nil {
			s.X, s.Y = pos.X, pos.Y
		}
	}
}

func bounce(p, v, limit float64) (float64, float64) {
	switch {
	case p < -limit:
		return -limit, -v
	case p > limit:
		return limit, -v
	}
	return p, v
}

// Rotation spins squares holding a transform one degree per frame.
type Rotation struct {
	*ledger.BaseSystem
	table *ledger.Table
}

func NewRotation(t *ledger.Table, capacity int) *Rotation {
	return &Rotation{
		BaseSystem: ledger.NewBaseSystem(capacity),
		table:      t,
	}
}

func (r *Rotation) Select(e ledger.Entity) bool {
	return TransformKind.Has(r.table, e)
}

func (r *Rotation) Update() {
	for e := range r.All() {
		tr := TransformKind.Get(r.table, e)
		tr.Angle++
		if tr.Angle == 360 {
			tr.Angle = 0
		}
		if s := spriteOf(r.table, e); s != nil {
			s.Angle = tr.Angle
		}
	}
}

// Scaling toggles the scale of squares holding a transform when R is pressed.
type Scaling struct {
	*ledger.BaseSystem
	table *ledger.Table
	keys  *Keypad
}

func NewScaling(t *ledger.Table, keys *Keypad, capacity int) *Scaling {
	return &Scaling{
		BaseSystem: ledger.NewBaseSystem(capacity),
		table:      t,
		keys:       keys,
	}
}

func (s *Scaling) Select(e ledger.Entity) bool {
	return TransformKind.Has(s.table, e)
}

func (s *Scaling) Update() {
	toggle := s.keys.Pressed(KeyR)
	for e := range s.All() {
		tr := TransformKind.Get(s.table, e)
		if toggle {
			if tr.Scale == 1 {
				tr.Scale = 1.5
			} else {
				tr.Scale = 1
			}
		}
		if sp := spriteOf(s.table, e); sp != nil {
			sp.Scale = tr.Scale
		}
	}
}

// Visibility toggles every sprite when L is pressed.
type Visibility struct {
	*ledger.BaseSystem
	table *ledger.Table
	keys  *Keypad
}

func NewVisibility(t *ledger.Table, keys *Keypad, capacity int) *Visibility {
	return &Visibility{
		BaseSystem: ledger.NewBaseSystem(capacity),
		table:      t,
		keys:       keys,
	}
}

func (v *Visibility) Select(e ledger.Entity) bool {
	return GfxKind.Has(v.table, e)
}

func (v *Visibility) Update() {
	if !v.keys.Pressed(KeyL) {
		return
	}
	for e := range v.All() {
		if s := spriteOf(v.table, e); s != nil {
			s.Visible = !s.Visible
		}
	}
}

// AnimationSystem steps animated squares through their tiles.
type AnimationSystem struct {
	*ledger.BaseSystem
	table *ledger.Table
}

func NewAnimationSystem(t *ledger.Table, capacity int) *AnimationSystem {
	return &AnimationSystem{
		BaseSystem: ledger.NewBaseSystem(capacity),
		table:      t,
	}
}

func (a *AnimationSystem) Select(e ledger.Entity) bool {
	return AnimationKind.Has(a.table, e)
}

func (a *AnimationSystem) Update() {
	for e := range a.All() {
		anim := AnimationKind.Get(a.table, e)
		if anim.Timer > 0 {
			anim.Timer--
		} else {
			if anim.Curr < anim.Last {
				anim.Curr++
			} else {
				anim.Curr = anim.First
			}
			anim.Timer = animationDelay
		}
		if s := spriteOf(a.table, e); s != nil && anim.Timer == 0 {
			s.Tile = anim.Curr
		}
	}
}

// EntityManager turns key presses into table-wide operations. It subscribes
// no entities of its own; it works through queries.
type EntityManager struct {
	*ledger.BaseSystem
	table    *ledger.Table
	renderer *Renderer
	keys     *Keypad
	sound    Sound
	logger   *zap.Logger

	found ledger.EntityBag
}

func NewEntityManager(t *ledger.Table, r *Renderer, keys *Keypad, sound Sound, logger *zap.Logger) *EntityManager {
	return &EntityManager{
		BaseSystem: ledger.NewBaseSystem(0),
		table:      t,
		renderer:   r,
		keys:       keys,
		sound:      sound,
		logger:     logger,
		found:      ledger.NewEntityBag(t.Config().MaxEntities),
	}
}

func (m *EntityManager) Update() {
	if m.keys.Pressed(KeyA) {
		m.spawn()
	}

	switch {
	case m.keys.Pressed(KeyUp):
		m.table.QueryAllInto(&m.found, FindRedSquares)
		m.destroyFound("red")
	case m.keys.Pressed(KeyDown):
		n := m.table.Len()
		m.table.Clear()
		m.logger.Info("table cleared", zap.Int("destroyed", n))
	case m.keys.Pressed(KeyLeft):
		m.table.QueryInto(&m.found, SysRotation)
		m.destroyFound("rotating")
	case m.keys.Pressed(KeyRight):
		b := XBoundary{Min: -64, Max: 64}
		ledger.QueryWithInto(m.table, &m.found, FindYellowSquaresWithin, &b)
		for e := range m.found.All() {
			vel := Velocity.Get(m.table, e)
			vel.X, vel.Y = 0, 0
		}
		m.logger.Info("squares frozen", zap.Int("count", m.found.Len()))
	}
}

func (m *EntityManager) spawn() {
	n := SpawnWave(m.table, m.renderer)
	if n < 4 {
		m.logger.Warn("table full", zap.Int("spawned", n), zap.Int("live", m.table.Len()))
	}
	if n > 0 {
		m.sound.Spawn()
	}
}

func (m *EntityManager) destroyFound(what string) {
	for e := range m.found.All() {
		m.table.Destroy(e)
	}
	m.logger.Info("squares destroyed", zap.String("which", what), zap.Int("count", m.found.Len()))
}
