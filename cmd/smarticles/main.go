//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"smarticles/internal/app"
	"smarticles/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	loop := sim.NewLoop(sim.NewEngine())
	loop.Start()

	game := app.New(loop, cfg)

	ebiten.SetWindowTitle("smarticles")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(game)

	// Whatever ended the window, shut the simulation goroutine down and join
	// it before exiting.
	loop.Send(sim.Quit{})
	loop.Wait()

	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
