package ledger

import (
	"errors"
	"testing"
)

// Test component types
type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Current, Max int
}

// expectViolation runs fn and fails the test unless it panics with an error
// of type E.
func expectViolation[E error](t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		var target E
		if r == nil {
			t.Fatalf("expected %T panic, got none", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		if !errors.As(err, &target) {
			t.Fatalf("panic = %v, want %T", err, target)
		}
	}()
	fn()
}

func newTestTable(t *testing.T, entities, kinds, systems int) *Table {
	t.Helper()
	cfg := DefaultTableConfig()
	cfg.MaxEntities = entities
	cfg.MaxComponentKinds = kinds
	cfg.MaxSystems = systems
	tbl, err := Factory.NewTable(cfg)
	if err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}
	t.Cleanup(tbl.Close)
	return tbl
}
