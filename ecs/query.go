package ecs

import "github.com/milk9111/jackrun/ecs/component"

// intersect returns slot ids present in every set, iterating the smallest one.
func intersect(sets ...*SparseSet) []entityID {
	if len(sets) == 0 {
		return nil
	}
	smallest := sets[0]
	for _, s := range sets {
		if s == nil {
			return nil
		}
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	src := smallest.entities()
	out := make([]entityID, 0, len(src))
outer:
	for _, id := range src {
		for _, s := range sets {
			if !s.Has(id) {
				continue outer
			}
		}
		out = append(out, id)
	}
	return out
}

// Query returns the live entities holding every given component kind, in
// storage order of the smallest set.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, len(kinds))
	for i, k := range kinds {
		sets[i] = w.stores[k.ID()]
	}
	ids := intersect(sets...)
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}
