package sim

import "math/rand/v2"

// seedWords feeds RandomSeedPhrase. Short lowercase words only, so generated
// seeds stay easy to read back and retype.
var seedWords = []string{
	"amber", "basalt", "bloom", "breeze", "cinder", "cloud", "comet", "coral",
	"crystal", "drift", "dusk", "ember", "fern", "flint", "fog", "garnet",
	"glow", "grove", "hazel", "ion", "iris", "jade", "kelp", "lagoon",
	"lichen", "lunar", "maple", "meadow", "mist", "moss", "nebula", "north",
	"ocean", "onyx", "opal", "orbit", "pebble", "pine", "plume", "prism",
	"quartz", "quill", "raven", "reef", "ripple", "river", "sage", "shale",
	"slate", "spark", "spruce", "storm", "swan", "thorn", "tide", "topaz",
	"vapor", "violet", "willow", "zephyr",
}

// RandomSeedPhrase returns a readable random seed of three words joined by
// underscores, for the "randomize" action and headless tooling.
func RandomSeedPhrase() string {
	w := func() string { return seedWords[rand.IntN(len(seedWords))] }
	return w() + "_" + w() + "_" + w()
}
