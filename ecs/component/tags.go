package component

// PlayerTag marks the entity driven by player input.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()
