package component

// Direction is the horizontal heading of a move.
type Direction int8

const (
	DirectionRight Direction = 1
	DirectionLeft  Direction = -1
)

// Sign returns -1 for left and +1 for right.
func (d Direction) Sign() float64 {
	if d == DirectionLeft {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

type MoveMode uint8

const (
	MoveWalk MoveMode = iota
	MoveRun
)

func (m MoveMode) String() string {
	if m == MoveRun {
		return "run"
	}
	return "walk"
}

// HorizontalIntent is a one-tick move request. It is attached from input and
// removed by the movement system once applied, so Run never carries over.
type HorizontalIntent struct {
	Direction Direction
	Mode      MoveMode
}

var HorizontalIntentComponent = NewComponent[HorizontalIntent]()
