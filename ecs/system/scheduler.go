package system

import "github.com/milk9111/jackrun/ecs"

// System updates a world once per tick.
type System interface {
	Update(w *ecs.World, ctx *Context)
}

// Scheduler runs systems in a fixed order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

// NewPlayerScheduler returns the character-control pipeline in tick order:
// input intent, horizontal movement, vertical motion, frame advance and
// finally clip selection.
func NewPlayerScheduler() *Scheduler {
	return NewScheduler(
		NewIntentSystem(),
		NewMovementSystem(),
		NewVerticalMotionSystem(),
		NewFrameAdvanceSystem(),
		NewAnimationSelectSystem(),
	)
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *ecs.World, ctx *Context) {
	if w == nil || ctx == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w, ctx)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
