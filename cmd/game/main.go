package main

import (
	"log"

	"github.com/DragonMoffon/Acerola-Jam-0/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ebiten.SetWindowTitle("Light Lab")
	ebiten.SetWindowSize(1280, 720)
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
