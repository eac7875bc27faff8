package ledger

import (
	"slices"
	"testing"
)

func TestSharedStorage(t *testing.T) {
	tbl := newTestTable(t, 8, 3, 1)
	positions := NewArray[Position](8)
	AttachShared(tbl, kindPosition, positions)
	tbl.AddSystem(0, newKindSystem(tbl, 8, kindPosition))

	a, b := tbl.Create(), tbl.Create()
	SetShared(tbl, kindPosition, a, Position{X: 3, Y: 4})
	tbl.Subscribe(a)
	tbl.Subscribe(b)

	t.Run("Has", func(t *testing.T) {
		if !tbl.Has(kindPosition, a) {
			t.Error("Has(a) = false, want true")
		}
		if tbl.Has(kindPosition, b) {
			t.Error("Has(b) = true, want false")
		}
	})

	t.Run("SharedArray is the attached array", func(t *testing.T) {
		if SharedArray[Position](tbl, kindPosition) != positions {
			t.Error("SharedArray returned a different array")
		}
	})

	t.Run("Writes land in caller array", func(t *testing.T) {
		GetShared[Position](tbl, kindPosition, a).X = 10
		if got := positions.Get(int(a)).X; got != 10 {
			t.Errorf("positions[a].X = %v, want 10", got)
		}
	})

	t.Run("Selected like heap components", func(t *testing.T) {
		subscribers := tbl.Query(0, 8)
		got := subscribers.Slice()
		if !slices.Equal(got, []Entity{a}) {
			t.Errorf("Query = %v, want [%d]", got, a)
		}
		found := tbl.QueryAll(8, Requires(kindPosition))
		if n := found.Len(); n != 1 {
			t.Errorf("QueryAll(Requires) found %d, want 1", n)
		}
	})

	t.Run("Set again overwrites", func(t *testing.T) {
		SetShared(tbl, kindPosition, a, Position{X: 1})
		if got := GetShared[Position](tbl, kindPosition, a).X; got != 1 {
			t.Errorf("X = %v, want 1", got)
		}
	})

	t.Run("Destroy clears presence", func(t *testing.T) {
		tbl.Destroy(a)
		reused := tbl.Create()
		if reused != a {
			t.Fatalf("Create() = %d, want reused id %d", reused, a)
		}
		if tbl.Has(kindPosition, reused) {
			t.Error("reused id still holds the shared kind")
		}
	})
}

func TestSharedStorageViolations(t *testing.T) {
	tbl := newTestTable(t, 4, 3, 1)
	AttachShared(tbl, kindPosition, NewArray[Position](4))
	e := tbl.Create()

	tests := []struct {
		name string
		fn   func()
	}{
		{"Nil array", func() { AttachShared[Velocity](tbl, kindVelocity, nil) }},
		{"Wrong length", func() { AttachShared(tbl, kindVelocity, NewArray[Velocity](3)) }},
		{"Attached twice", func() { AttachShared(tbl, kindPosition, NewArray[Position](4)) }},
		{"Not attached", func() { SetShared(tbl, kindHealth, e, Health{}) }},
		{"Wrong type", func() { SetShared(tbl, kindPosition, e, Velocity{}) }},
		{"Not set", func() { GetShared[Position](tbl, kindPosition, e) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic")
				}
			}()
			tt.fn()
		})
	}

	t.Run("Heap component blocks shared value", func(t *testing.T) {
		SetShared(tbl, kindPosition, e, Position{})
		expectViolation[ComponentExistsError](t, func() { tbl.Add(kindPosition, e, &Position{}) })
	})
}
