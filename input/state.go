package input

// Source reports whether an action is held right now.
type Source interface {
	Pressed(a Action) bool
}

// SourceFunc adapts a function to Source.
type SourceFunc func(Action) bool

func (f SourceFunc) Pressed(a Action) bool { return f(a) }

// State is one tick's input snapshot: what is held now and what was held on
// the previous poll.
type State struct {
	held [actionCount]bool
	prev [actionCount]bool
}

// Snapshot builds a State from the actions held now and on the previous tick.
func Snapshot(held, previous []Action) State {
	var s State
	for _, a := range held {
		if a < actionCount {
			s.held[a] = true
		}
	}
	for _, a := range previous {
		if a < actionCount {
			s.prev[a] = true
		}
	}
	return s
}

func (s State) Held(a Action) bool {
	return a < actionCount && s.held[a]
}

// AnyHeld reports whether at least one of actions is held.
func (s State) AnyHeld(actions ...Action) bool {
	for _, a := range actions {
		if s.Held(a) {
			return true
		}
	}
	return false
}

func (s State) JustPressed(a Action) bool {
	return a < actionCount && s.held[a] && !s.prev[a]
}

func (s State) JustReleased(a Action) bool {
	return a < actionCount && !s.held[a] && s.prev[a]
}

// Moving reports whether either movement action is held.
func (s State) Moving() bool {
	return s.AnyHeld(MoveLeft, MoveRight)
}

// Tracker turns successive polls of a Source into States with edges.
type Tracker struct {
	last [actionCount]bool
}

// Poll samples src and returns the snapshot relative to the previous poll.
// The first poll treats every action as previously released.
func (t *Tracker) Poll(src Source) State {
	var s State
	s.prev = t.last
	if src != nil {
		for i := range s.held {
			s.held[i] = src.Pressed(Action(i))
		}
	}
	t.last = s.held
	return s
}

// Reset forgets the previous poll.
func (t *Tracker) Reset() {
	t.last = [actionCount]bool{}
}
