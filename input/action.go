package input

import (
	"errors"
	"fmt"
)

// Action is a logical control. Physical keys are bound to actions outside
// the core.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	Run
	Jump

	actionCount
)

var ErrUnknownAction = errors.New("input: unknown action")

var actionNames = [actionCount]string{
	MoveLeft:  "move_left",
	MoveRight: "move_right",
	Run:       "run",
	Jump:      "jump",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", a)
}

// ParseAction maps a config name such as "move_left" to its Action.
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Actions lists every action in declaration order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}
