package ledger

import (
	"fmt"

	"go.uber.org/zap"
)

// violate reports a broken precondition. The table has no recovery path for
// these, so the error is logged and raised as the panic value.
func violate(err error) {
	Config.logger.Error("contract violation", zap.Error(err))
	panic(err)
}

type EntityRangeError struct {
	Entity Entity
	Size   int
}

func (e EntityRangeError) Error() string {
	return fmt.Sprintf("entity %d is out of range [0, %d)", e.Entity, e.Size)
}

type EntityNotFoundError struct {
	Entity Entity
}

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %d is not allocated", e.Entity)
}

type KindRangeError struct {
	Kind Kind
	Max  int
}

func (e KindRangeError) Error() string {
	return fmt.Sprintf("component kind %d is out of range [0, %d)", e.Kind, e.Max)
}

type SystemRangeError struct {
	ID  SystemID
	Max int
}

func (e SystemRangeError) Error() string {
	return fmt.Sprintf("system id %d is out of range [0, %d)", e.ID, e.Max)
}

type ComponentExistsError struct {
	Kind   Kind
	Entity Entity
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component of kind %d already exists on entity %d", e.Kind, e.Entity)
}

type ComponentNotFoundError struct {
	Kind   Kind
	Entity Entity
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component of kind %d does not exist on entity %d", e.Kind, e.Entity)
}

type ComponentTypeError struct {
	Kind   Kind
	Entity Entity
	Stored Component
	Want   string
}

func (e ComponentTypeError) Error() string {
	return fmt.Sprintf("component of kind %d on entity %d is %T, not %s", e.Kind, e.Entity, e.Stored, e.Want)
}

type NilComponentError struct {
	Kind   Kind
	Entity Entity
}

func (e NilComponentError) Error() string {
	return fmt.Sprintf("nil component attached as kind %d to entity %d", e.Kind, e.Entity)
}

type KindTypeError struct {
	Kind       Kind
	Registered string
	Requested  string
}

func (e KindTypeError) Error() string {
	return fmt.Sprintf("component kind %d is registered as %s, requested as %s", e.Kind, e.Registered, e.Requested)
}

type SystemExistsError struct {
	ID SystemID
}

func (e SystemExistsError) Error() string {
	return fmt.Sprintf("system %d already exists", e.ID)
}

type SystemNotFoundError struct {
	ID SystemID
}

func (e SystemNotFoundError) Error() string {
	return fmt.Sprintf("system %d not found", e.ID)
}

type NilSystemError struct {
	ID SystemID
}

func (e NilSystemError) Error() string {
	return fmt.Sprintf("nil system registered as %d", e.ID)
}

type ContainerFullError struct {
	Capacity int
}

func (e ContainerFullError) Error() string {
	return fmt.Sprintf("container is full (capacity %d)", e.Capacity)
}

type ContainerIndexError struct {
	Index int
	Len   int
}

func (e ContainerIndexError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("index %d on empty container", e.Index)
	}
	return fmt.Sprintf("index %d is out of range [0, %d)", e.Index, e.Len)
}

type SharedStorageError struct {
	Kind   Kind
	Reason string
}

func (e SharedStorageError) Error() string {
	return fmt.Sprintf("shared storage for kind %d: %s", e.Kind, e.Reason)
}

type ClosedTableError struct{}

func (e ClosedTableError) Error() string {
	return "table is closed"
}

type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("invalid %s (%d): %s", e.Field, e.Value, e.Reason)
}
