// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"log/slog"
	"math/rand/v2"
)

// Rand is the randomness used for clip choice and pitch jitter.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// Config tunes a Manager.
type Config struct {
	// Dir is the root of the sound groups inside the file system.
	Dir string

	// NoSound mutes every play.
	NoSound bool

	// SoundInSpace treats the listener as always being in atmosphere.
	SoundInSpace bool

	// Debug collects a hint for each play, see Manager.DrawDebug.
	Debug bool

	// HintTTL is how long, in simulation seconds, a hint stays visible.
	HintTTL float64

	Logger *slog.Logger
	Rand   Rand
}

func DefaultConfig() Config {
	return Config{
		Dir:     "res/sounds",
		HintTTL: 1.0,
		Logger:  slog.Default(),
		Rand:    globalRand{},
	}
}

// withDefaults fills the fields a zero Config leaves unusable.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.HintTTL <= 0 {
		c.HintTTL = def.HintTTL
	}
	if c.Logger == nil {
		c.Logger = def.Logger
	}
	if c.Rand == nil {
		c.Rand = def.Rand
	}
	return c
}
