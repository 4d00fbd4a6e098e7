package system

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/jackrun/ecs"
	"github.com/milk9111/jackrun/ecs/component"
)

var ErrMultipleControllersFound = errors.New("system: multiple controlled entities")

// ControlledEntity returns the player-tagged entity. With none it returns
// false. With several it returns the first in storage order together with
// ErrMultipleControllersFound.
func ControlledEntity(w *ecs.World) (ecs.Entity, bool, error) {
	ents := w.Query(component.PlayerTagComponent.Kind())
	switch len(ents) {
	case 0:
		return 0, false, nil
	case 1:
		return ents[0], true, nil
	default:
		return ents[0], true, fmt.Errorf("%w: %d entities, using %s", ErrMultipleControllersFound, len(ents), ents[0])
	}
}

// controller wraps ControlledEntity so each system logs a duplicate-player
// condition once instead of every tick.
type controller struct {
	name   string
	warned bool
}

func (c *controller) find(w *ecs.World) (ecs.Entity, bool) {
	e, ok, err := ControlledEntity(w)
	if err != nil {
		if !c.warned {
			log.Printf("%s: %v", c.name, err)
			c.warned = true
		}
	} else {
		c.warned = false
	}
	return e, ok
}
