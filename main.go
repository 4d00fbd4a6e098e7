package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jackrun/common"
	"github.com/milk9111/jackrun/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "log gameplay events and show the debug overlay")
	prefab := flag.String("prefab", prefabs.PlayerPrefab, "player prefab in prefabs/")
	watch := flag.Bool("watch", false, "reload prefabs from disk when they change")
	demo := flag.String("demo", "", "drive input from a tengo script in prefabs/scripts/ instead of the keyboard")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("jackrun")

	game, err := NewGame(Options{Prefab: *prefab, Watch: *watch, Debug: *debug, Demo: *demo})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
