package ledger

import (
	"slices"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// kindSystem selects entities holding every one of its kinds.
type kindSystem struct {
	*BaseSystem
	table *Table
	kinds []Kind
}

func newKindSystem(t *Table, capacity int, kinds ...Kind) *kindSystem {
	return &kindSystem{
		BaseSystem: NewBaseSystem(capacity),
		table:      t,
		kinds:      kinds,
	}
}

func (s *kindSystem) Select(e Entity) bool {
	for _, k := range s.kinds {
		if !s.table.Has(k, e) {
			return false
		}
	}
	return true
}

// recordingSystem appends its name to a shared log on every hook.
type recordingSystem struct {
	*BaseSystem
	name string
	log  *[]string
}

func (s *recordingSystem) Init()   { *s.log = append(*s.log, "init:"+s.name) }
func (s *recordingSystem) Update() { *s.log = append(*s.log, "update:"+s.name) }

type releaseCounter struct {
	releases int
}

func (c *releaseCounter) Release() { c.releases++ }

type releasingSystem struct {
	*BaseSystem
	releaseCounter
}

func TestTableScenario(t *testing.T) {
	tbl := newTestTable(t, 4, 2, 1)

	for i := 0; i < 4; i++ {
		if got := tbl.Create(); got != Entity(i) {
			t.Fatalf("Create() = %d, want %d", got, i)
		}
	}
	if got := tbl.Create(); got != NoEntity {
		t.Fatalf("5th Create() = %d, want NoEntity", got)
	}

	tbl.Destroy(1)
	if got := tbl.Create(); got != 1 {
		t.Fatalf("Create() after Destroy(1) = %d, want 1", got)
	}

	tbl.Add(0, 0, &Velocity{X: 1})
	if !tbl.Has(0, 0) {
		t.Fatalf("Has(0, 0) = false, want true")
	}

	sys := newKindSystem(tbl, 4, 0, 1)
	tbl.AddSystem(0, sys)

	tbl.Subscribe(0)
	if sys.Subscribed(0) {
		t.Fatalf("entity 0 subscribed without kind 1")
	}

	tbl.Add(1, 0, &Position{})
	tbl.Subscribe(0)
	if !sys.Subscribed(0) {
		t.Fatalf("entity 0 not subscribed with kinds 0 and 1")
	}

	tbl.Destroy(0)
	if sys.Subscribed(0) {
		t.Errorf("Subscribed(0) after Destroy = true")
	}
	if tbl.Has(0, 0) || tbl.Has(1, 0) {
		t.Errorf("Has after Destroy = %v, %v, want false, false", tbl.Has(0, 0), tbl.Has(1, 0))
	}
	if tbl.Contains(0) {
		t.Errorf("Contains(0) after Destroy = true")
	}
}

func TestTableComponentValues(t *testing.T) {
	tbl := newTestTable(t, 8, 3, 1)
	e := tbl.Create()
	tbl.Add(0, e, &Position{X: 1, Y: 2})
	tbl.Add(1, e, &Velocity{X: 3, Y: 4})

	pos := Get[Position](tbl, 0, e)
	vel := Get[Velocity](tbl, 1, e)
	pos.X += vel.X
	pos.Y += vel.Y

	if got := Get[Position](tbl, 0, e); got.X != 4 || got.Y != 6 {
		t.Errorf("Position = {%v, %v}, want {4, 6}", got.X, got.Y)
	}
	if _, ok := tbl.Component(1, e).(*Velocity); !ok {
		t.Errorf("Component(1) = %T, want *Velocity", tbl.Component(1, e))
	}
}

func TestTableViolations(t *testing.T) {
	tbl := newTestTable(t, 4, 2, 2)
	e := tbl.Create()
	tbl.Add(0, e, &Position{})
	tbl.AddSystem(0, NewBaseSystem(4))

	t.Run("Duplicate add", func(t *testing.T) {
		expectViolation[ComponentExistsError](t, func() { tbl.Add(0, e, &Position{}) })
	})
	t.Run("Nil component", func(t *testing.T) {
		expectViolation[NilComponentError](t, func() { tbl.Add(1, e, nil) })
	})
	t.Run("Typed nil component", func(t *testing.T) {
		expectViolation[NilComponentError](t, func() { tbl.Add(1, e, (*Velocity)(nil)) })
	})
	t.Run("Typed nil through kind", func(t *testing.T) {
		vel := FactoryNewKind[Velocity](1)
		expectViolation[NilComponentError](t, func() { vel.Add(tbl, e, nil) })
		if tbl.Has(1, e) {
			t.Error("nil component was stored")
		}
	})
	t.Run("Missing get", func(t *testing.T) {
		expectViolation[ComponentNotFoundError](t, func() { Get[Velocity](tbl, 1, e) })
	})
	t.Run("Wrong type", func(t *testing.T) {
		expectViolation[ComponentTypeError](t, func() { Get[Velocity](tbl, 0, e) })
	})
	t.Run("Kind out of range", func(t *testing.T) {
		expectViolation[KindRangeError](t, func() { tbl.Has(2, e) })
	})
	t.Run("Entity out of range", func(t *testing.T) {
		expectViolation[EntityRangeError](t, func() { tbl.Has(0, 4) })
	})
	t.Run("Add to dead entity", func(t *testing.T) {
		expectViolation[EntityNotFoundError](t, func() { tbl.Add(1, 3, &Velocity{}) })
	})
	t.Run("Subscribe dead entity", func(t *testing.T) {
		expectViolation[EntityNotFoundError](t, func() { tbl.Subscribe(2) })
	})
	t.Run("Duplicate system", func(t *testing.T) {
		expectViolation[SystemExistsError](t, func() { tbl.AddSystem(0, NewBaseSystem(1)) })
	})
	t.Run("Nil system", func(t *testing.T) {
		expectViolation[NilSystemError](t, func() { tbl.AddSystem(1, nil) })
	})
	t.Run("Typed nil system", func(t *testing.T) {
		expectViolation[NilSystemError](t, func() { tbl.AddSystem(1, (*BaseSystem)(nil)) })
	})
	t.Run("Missing system", func(t *testing.T) {
		expectViolation[SystemNotFoundError](t, func() { tbl.System(1) })
	})
	t.Run("System out of range", func(t *testing.T) {
		expectViolation[SystemRangeError](t, func() { tbl.Activate(2) })
	})
}

func TestTableViolationIsLogged(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	Config.SetLogger(zap.New(core))
	defer Config.SetLogger(nil)

	tbl := newTestTable(t, 2, 1, 1)
	expectViolation[ComponentNotFoundError](t, func() { tbl.Component(0, 0) })

	entries := logs.FilterMessage("contract violation").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d violations, want 1", len(entries))
	}
	if entries[0].LoggerName != "ledger" {
		t.Errorf("LoggerName = %q, want ledger", entries[0].LoggerName)
	}
}

func TestTableDestroyReleasesOnce(t *testing.T) {
	tbl := newTestTable(t, 4, 2, 2)
	e := tbl.Create()
	counter := &releaseCounter{}
	tbl.Add(0, e, counter)
	tbl.AddSystem(0, newKindSystem(tbl, 4, 0))
	tbl.Subscribe(e)

	tbl.Destroy(e)
	tbl.Destroy(e)
	if counter.releases != 1 {
		t.Errorf("released %d times, want 1", counter.releases)
	}
	if tbl.System(0).Subscribed(e) {
		t.Errorf("entity still subscribed after Destroy")
	}
}

func TestTableCloseReleasesEverything(t *testing.T) {
	cfg := DefaultTableConfig()
	cfg.MaxEntities = 4
	tbl, err := Factory.NewTable(cfg)
	if err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}

	components := []*releaseCounter{{}, {}, {}}
	for i, c := range components {
		e := tbl.Create()
		tbl.Add(Kind(i%2), e, c)
	}
	destroyed := components[0]
	tbl.Destroy(0)

	sys := &releasingSystem{BaseSystem: NewBaseSystem(1)}
	tbl.AddSystem(3, sys)

	tbl.Close()
	tbl.Close()

	for i, c := range components {
		if c.releases != 1 {
			t.Errorf("component %d released %d times, want 1", i, c.releases)
		}
	}
	if destroyed.releases != 1 {
		t.Errorf("destroyed component released %d times, want 1", destroyed.releases)
	}
	if sys.releases != 1 {
		t.Errorf("system released %d times, want 1", sys.releases)
	}
	expectViolation[ClosedTableError](t, func() { tbl.Create() })
}

func TestTableClear(t *testing.T) {
	tbl := newTestTable(t, 8, 1, 1)
	sys := newKindSystem(tbl, 8, 0)
	tbl.AddSystem(0, sys)
	for range 5 {
		e := tbl.Create()
		tbl.Add(0, e, &Health{})
		tbl.Subscribe(e)
	}

	tbl.Clear()
	if tbl.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", tbl.Len())
	}
	if sys.Len() != 0 {
		t.Errorf("system holds %d subscribers after Clear", sys.Len())
	}
	if got := tbl.Create(); got != 0 {
		t.Errorf("Create() after Clear = %d, want 0", got)
	}
}

func TestTableSubscriptionIsSticky(t *testing.T) {
	tbl := newTestTable(t, 4, 2, 1)
	sys := newKindSystem(tbl, 4, 0)
	tbl.AddSystem(0, sys)

	e := tbl.Create()
	tbl.Add(0, e, &Position{})
	if sys.Subscribed(e) {
		t.Fatalf("Add subscribed the entity without Subscribe")
	}
	tbl.Subscribe(e)
	tbl.Subscribe(e)
	if sys.Len() != 1 {
		t.Errorf("Len() after double Subscribe = %d, want 1", sys.Len())
	}

	sys.kinds = []Kind{1}
	if !sys.Subscribed(e) {
		t.Errorf("membership changed without Subscribe/Destroy")
	}
}

func TestTableUpdateOrder(t *testing.T) {
	run := func() []string {
		var log []string
		tbl := newTestTable(t, 1, 1, 4)
		for _, id := range []SystemID{2, 0, 3, 1} {
			tbl.AddSystem(id, &recordingSystem{
				BaseSystem: NewBaseSystem(1),
				name:       string(rune('a' + id)),
				log:        &log,
			})
		}
		tbl.Init()
		tbl.Deactivate(1)
		tbl.Update()
		tbl.ActivateAll()
		tbl.Update()
		return log
	}

	want := []string{
		"init:a", "init:b", "init:c", "init:d",
		"update:a", "update:c", "update:d",
		"update:a", "update:b", "update:c", "update:d",
	}
	for i := range 3 {
		if got := run(); !slices.Equal(got, want) {
			t.Fatalf("run %d: log = %v, want %v", i, got, want)
		}
	}
}

func TestTableActivation(t *testing.T) {
	tests := []struct {
		name       string
		autoActive bool
		want       bool
	}{
		{"Activate on register", true, true},
		{"Keep constructed state", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTableConfig()
			cfg.ActivateOnRegister = tt.autoActive
			tbl, err := Factory.NewTable(cfg)
			if err != nil {
				t.Fatalf("Failed to create table: %v", err)
			}
			defer tbl.Close()

			tbl.AddSystem(0, NewBaseSystem(1, WithInactive()))
			if got := tbl.System(0).Active(); got != tt.want {
				t.Errorf("Active() = %v, want %v", got, tt.want)
			}

			tbl.AddSystem(1, NewBaseSystem(1))
			tbl.DeactivateAll()
			for id, s := range tbl.Systems() {
				if s.Active() {
					t.Errorf("system %d active after DeactivateAll", id)
				}
			}
			tbl.Activate(1)
			if !tbl.System(1).Active() || tbl.System(0).Active() {
				t.Errorf("Activate(1) changed the wrong systems")
			}
		})
	}
}

func TestTableDeactivateKeepsSubscriptions(t *testing.T) {
	tbl := newTestTable(t, 2, 1, 1)
	sys := newKindSystem(tbl, 2, 0)
	tbl.AddSystem(0, sys)
	e := tbl.Create()
	tbl.Add(0, e, &Position{})
	tbl.Subscribe(e)

	tbl.Deactivate(0)
	if !sys.Subscribed(e) {
		t.Errorf("Deactivate dropped a subscriber")
	}
}

func TestTableConfigRejected(t *testing.T) {
	cfg := DefaultTableConfig()
	cfg.MaxComponentKinds = MaxKindBits + 1
	if _, err := Factory.NewTable(cfg); err == nil {
		t.Errorf("NewTable accepted %d kinds", cfg.MaxComponentKinds)
	}
}
