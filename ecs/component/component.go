package component

import (
	"errors"
	"reflect"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

type ComponentID uint32

var nextComponentID atomic.Uint32

// Kind is the untyped view of a ComponentKind used by multi-kind queries and
// error messages.
type Kind interface {
	ID() ComponentID
	Name() string
}

// ComponentKind identifies one component type. Kinds are numbered in
// creation order; the zero kind is invalid.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func NewComponentKind[T any]() ComponentKind[T] {
	name := reflect.TypeFor[T]().String()
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1)), name: name}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }
func (k ComponentKind[T]) Valid() bool     { return k.id != 0 }

func (k ComponentKind[T]) Name() string {
	if k.name == "" {
		return "invalid"
	}
	return k.name
}

// ComponentHandle is the package-level declaration form of a kind, as in
// `var SpriteComponent = NewComponent[Sprite]()`.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
