package component

// Transform holds an entity's ground position. Vertical offset above the
// ground lives in VerticalMotion.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
