package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	scriptPath := flag.String("script", "", "tengo timeline script that drives the showcase")
	watch := flag.Bool("watch", false, "reload tuning/motion.yaml on change")
	flag.Parse()

	game, err := NewGame(*scriptPath, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("motion showcase")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
