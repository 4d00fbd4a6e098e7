package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milk9111/jackrun/ecs"
	"github.com/milk9111/jackrun/ecs/component"
	"github.com/milk9111/jackrun/ecs/entity"
	"github.com/milk9111/jackrun/ecs/system"
	"github.com/milk9111/jackrun/input"
	"github.com/milk9111/jackrun/prefabs"
)

var errBadOptions = errors.New("sim: invalid options")

type options struct {
	Prefab string
	Script string
	Ticks  int
	DT     float64
	Every  int
}

// run drives the player pipeline headlessly from a tengo input script and
// writes a trace line every opts.Every ticks plus one line per event.
func run(out io.Writer, opts options) error {
	if opts.Ticks < 0 || !(opts.DT > 0) || opts.Every < 0 {
		return fmt.Errorf("%w: ticks=%d dt=%v every=%d", errBadOptions, opts.Ticks, opts.DT, opts.Every)
	}

	setup, err := entity.LoadPlayerSetup(opts.Prefab)
	if err != nil {
		return err
	}
	src, err := prefabs.LoadScript(opts.Script)
	if err != nil {
		return fmt.Errorf("sim: script %q: %w", opts.Script, err)
	}
	script, err := input.NewScript(src)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	player, err := entity.NewPlayer(w, setup.Spec, setup.Clips)
	if err != nil {
		return err
	}
	scheduler := system.NewPlayerScheduler()
	var tracker input.Tracker

	for tick := 0; tick < opts.Ticks; tick++ {
		if err := script.Next(); err != nil {
			return err
		}
		ctx := &system.Context{DT: opts.DT, Input: tracker.Poll(script), Clips: setup.Clips, Tuning: setup.Tuning}
		scheduler.Update(w, ctx)

		for _, ev := range w.Events().Drain() {
			fmt.Fprintf(out, "%5d event %s %s\n", tick, ev.Type, describe(ev))
		}
		if opts.Every > 0 && tick%opts.Every == 0 {
			fmt.Fprintf(out, "%5d %s\n", tick, trace(w, player))
		}
	}
	fmt.Fprintf(out, "final %s\n", trace(w, player))
	return nil
}

func trace(w *ecs.World, e ecs.Entity) string {
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	vm, _ := ecs.Get(w, e, component.VerticalMotionComponent.Kind())
	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	if tr == nil || vm == nil || anim == nil || sprite == nil {
		return "missing player"
	}
	return fmt.Sprintf("x=%.2f height=%.2f phase=%s clip=%s frame=%d flip=%v", tr.X, vm.Height, vm.Phase(), anim.Clip, anim.Frame, sprite.FlipX)
}

func describe(ev ecs.Event) string {
	switch data := ev.Data.(type) {
	case ecs.MotionEvent:
		return fmt.Sprintf("height=%.2f", data.Height)
	case ecs.ClipChangedEvent:
		return data.From + "->" + data.To
	default:
		return fmt.Sprint(data)
	}
}

func main() {
	opts := options{}
	flag.StringVar(&opts.Prefab, "prefab", prefabs.PlayerPrefab, "player prefab in prefabs/")
	flag.StringVar(&opts.Script, "script", "demo.tengo", "input script in prefabs/scripts/")
	flag.IntVar(&opts.Ticks, "ticks", 480, "number of ticks to simulate")
	flag.Float64Var(&opts.DT, "dt", 1.0/60, "seconds per tick")
	flag.IntVar(&opts.Every, "every", 30, "trace every n ticks (0 disables)")
	flag.Parse()

	if err := run(os.Stdout, opts); err != nil {
		log.Fatal(err)
	}
}
