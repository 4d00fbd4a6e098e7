package ecs

import (
	"fmt"

	"github.com/milk9111/jackrun/ecs/component"
)

// Add attaches value to e under kind, replacing any previous value.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return fmt.Errorf("%w: add %s to %s", component.ErrEntityNotAlive, kind.Name(), e)
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("%w: %s on %s", component.ErrNilComponent, kind.Name(), e)
	}
	w.store(kind.ID(), true).Set(e.id(), value)
	return nil
}

// Remove detaches kind from e and reports whether it was present.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e.id())
}

// Has reports whether e holds kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e.id())
}

// Get returns the component pointer for kind on e. Mutations through the
// pointer are visible to every later reader.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e.id()).(*T)
	return v, ok
}

// ForEach calls fn for every live entity holding a. Entities that lose the
// component or die during iteration are skipped.
func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A)) {
	if w == nil {
		return
	}
	for _, e := range w.Query(a) {
		va, ok := Get(w, e, a)
		if !ok {
			continue
		}
		fn(e, va)
	}
}

// ForEach2 calls fn for every live entity holding both a and b.
func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil {
		return
	}
	for _, e := range w.Query(a, b) {
		va, okA := Get(w, e, a)
		vb, okB := Get(w, e, b)
		if !okA || !okB {
			continue
		}
		fn(e, va, vb)
	}
}

// ForEach3 calls fn for every live entity holding a, b and c.
func ForEach3[A, B, C any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil {
		return
	}
	for _, e := range w.Query(a, b, c) {
		va, okA := Get(w, e, a)
		vb, okB := Get(w, e, b)
		vc, okC := Get(w, e, c)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, va, vb, vc)
	}
}
