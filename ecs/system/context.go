package system

import (
	"github.com/milk9111/jackrun/config"
	"github.com/milk9111/jackrun/ecs/resource"
	"github.com/milk9111/jackrun/input"
)

// Context carries everything a tick reads besides the world itself. Systems
// get it explicitly; nothing here is global.
type Context struct {
	DT     float64
	Input  input.State
	Clips  *resource.ClipLibrary
	Tuning config.Tuning
}
