package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/jackrun/common"
	"github.com/milk9111/jackrun/ecs"
	"github.com/milk9111/jackrun/ecs/component"
	"github.com/milk9111/jackrun/ecs/entity"
	"github.com/milk9111/jackrun/ecs/render"
	"github.com/milk9111/jackrun/ecs/system"
	"github.com/milk9111/jackrun/input"
	"github.com/milk9111/jackrun/prefabs"
)

type Options struct {
	Prefab string
	Watch  bool
	Debug  bool
	Demo   string
}

type Game struct {
	opts   Options
	frames int
	paused bool
	debug  bool

	world     *ecs.World
	scheduler *system.Scheduler
	renderer  *render.RenderSystem
	setup     entity.PlayerSetup
	player    ecs.Entity

	tracker   input.Tracker
	keyboard  *keyboard
	script    *input.Script
	watcher   *prefabs.Watcher
	pauseUI   *ebitenui.UI
	pauseInfo *widget.Text
	quit      bool
}

func NewGame(opts Options) (*Game, error) {
	setup, err := entity.LoadPlayerSetup(opts.Prefab)
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	player, err := entity.NewPlayer(world, setup.Spec, setup.Clips)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:      opts,
		debug:     opts.Debug,
		world:     world,
		scheduler: system.NewPlayerScheduler(),
		renderer:  render.NewRenderSystem(nil),
		setup:     setup,
		player:    player,
		keyboard:  newKeyboard(setup.Bindings),
	}

	if opts.Demo != "" {
		if err := g.loadScript(opts.Demo); err != nil {
			return nil, err
		}
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	g.pollReloads()

	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	g.frames++

	var src input.Source = g.keyboard
	if g.script != nil {
		if err := g.script.Next(); err != nil {
			log.Printf("game: demo script stopped: %v", err)
			g.script = nil
		} else {
			src = g.script
		}
	}

	ctx := &system.Context{
		DT:     1 / float64(ebiten.TPS()),
		Input:  g.tracker.Poll(src),
		Clips:  g.setup.Clips,
		Tuning: g.setup.Tuning,
	}
	g.scheduler.Update(g.world, ctx)
	g.drainEvents()
	return nil
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	// Keys held across the pause must not read as fresh presses or releases.
	g.tracker.Reset()
	if paused {
		refreshPauseUI(g)
	}
}

func (g *Game) drainEvents() {
	events := g.world.Events().Drain()
	if !g.debug {
		return
	}
	for _, ev := range events {
		log.Printf("event: %s %+v", ev.Type, ev.Data)
	}
}

func (g *Game) pollReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name := <-g.watcher.Changes():
			g.reload(name)
		case err := <-g.watcher.Errors():
			log.Printf("game: watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	switch {
	case name == prefabs.Name(g.opts.Prefab):
		setup, err := entity.LoadPlayerSetup(g.opts.Prefab)
		if err != nil {
			log.Printf("game: reload %s: %v (keeping previous)", name, err)
			return
		}
		g.setup = setup
		g.keyboard.bind(setup.Bindings)
		g.renderer.Sheets().Reset()
		refreshPauseUI(g)
		log.Printf("game: reloaded %s: %s", name, setup.Tuning)
	case g.opts.Demo != "" && name == prefabs.ScriptName(g.opts.Demo):
		if err := g.loadScript(g.opts.Demo); err != nil {
			log.Printf("game: reload %s: %v (keeping previous)", name, err)
			return
		}
		log.Printf("game: reloaded %s", name)
	}
}

func (g *Game) loadScript(name string) error {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return fmt.Errorf("game: demo %q: %w", name, err)
	}
	script, err := input.NewScript(src)
	if err != nil {
		return fmt.Errorf("game: demo %q: %w", name, err)
	}
	g.script = script
	g.tracker.Reset()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen, g.setup.Clips)

	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) debugText() string {
	s := fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS())
	tr, _ := ecs.Get(g.world, g.player, component.TransformComponent.Kind())
	vm, _ := ecs.Get(g.world, g.player, component.VerticalMotionComponent.Kind())
	anim, _ := ecs.Get(g.world, g.player, component.AnimationComponent.Kind())
	if tr == nil || vm == nil || anim == nil {
		return s
	}
	budget, _ := vm.JumpBudget()
	s += fmt.Sprintf("\nx=%.1f height=%.1f phase=%s budget=%.1f", tr.X, vm.Height, vm.Phase(), budget)
	s += fmt.Sprintf("\nclip=%s frame=%d elapsed=%.3f", anim.Clip, anim.Frame, anim.Elapsed)
	if g.script != nil {
		s += fmt.Sprintf("\ndemo tick=%d", g.script.Tick())
	}
	return s
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}
