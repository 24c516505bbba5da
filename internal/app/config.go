package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Seed   string
	Width  int
	Height int
	Zoom   float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 1280, Height: 900, Zoom: 1.2}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Seed, "seed", c.Seed, "initial seed (empty draws from entropy)")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.Float64Var(&c.Zoom, "zoom", c.Zoom, "initial zoom factor")
}
