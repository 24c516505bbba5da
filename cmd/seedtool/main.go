// seedtool expands a seed string into its configuration, prints the canonical
// save string, and can benchmark the engine headlessly.
package main

import (
	"flag"
	"fmt"
	"time"

	"smarticles/internal/sim"
)

func main() {
	seed := flag.String("seed", "", "seed to expand (empty generates a random phrase)")
	steps := flag.Int("steps", 0, "benchmark: spawn and run this many engine steps")
	flag.Parse()

	s := *seed
	if s == "" {
		s = sim.RandomSeedPhrase()
	}

	settings := sim.DefaultSettings()
	settings.ApplySeed(s)

	fmt.Printf("seed:         %s\n", s)
	fmt.Printf("world radius: %.0f\n", settings.WorldRadius)
	fmt.Printf("classes:      %d\n", settings.ClassCount)
	for i := 0; i < settings.ClassCount; i++ {
		fmt.Printf("  class %d: %4d particles\n", i, settings.ParticleCounts[i])
	}

	fmt.Println("matrix (force/radius):")
	for i := 0; i < settings.ClassCount; i++ {
		for j := 0; j < settings.ClassCount; j++ {
			p := settings.Params[i][j]
			fmt.Printf("  %6.1f/%-5.1f", p.Force, p.Radius)
		}
		fmt.Println()
	}

	fmt.Printf("export: %s\n", settings.Export())

	if *steps > 0 {
		engine := sim.NewEngine()
		engine.SetSettings(settings)
		engine.Spawn()
		engine.Play()

		dt := float32(sim.TickInterval.Seconds())
		start := time.Now()
		for i := 0; i < *steps; i++ {
			engine.Step(dt)
		}
		elapsed := time.Since(start)
		fmt.Printf("%d steps in %v (%.3f ms/step)\n",
			*steps, elapsed.Round(time.Millisecond), elapsed.Seconds()*1000/float64(*steps))
	}
}
