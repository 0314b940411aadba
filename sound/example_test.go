// SPDX-License-Identifier: EPL-2.0

package sound_test

import (
	"fmt"
	"math/rand/v2"
	"testing/fstest"

	"github.com/ik5/audman/internal/audiotest"
	"github.com/ik5/audman/sound"
)

type ship struct {
	id  sound.EntityID
	pos sound.Vec2
}

func (s ship) ID() sound.EntityID   { return s.id }
func (s ship) Position() sound.Vec2 { return s.pos }

type space struct {
	now float64
}

func (w *space) Time() float64                       { return w.now }
func (w *space) Listener() sound.Vec2                { return sound.Vec2{} }
func (w *space) NearestPlanet() (sound.Planet, bool) { return sound.Planet{FullHeight: 100}, true }
func (w *space) ShouldRemove(id sound.EntityID) bool { return false }

// Example_loop retriggers an engine hum only once its loop time has passed.
func Example_loop() {
	fsys := fstest.MapFS{
		"res/sounds/engine/params.txt": {Data: []byte("volume = 0.5\nloopTime = 2\n")},
		"res/sounds/engine/hum.ogg":    {Data: []byte("...")},
	}

	cfg := sound.DefaultConfig()
	cfg.Rand = rand.New(rand.NewPCG(1, 2))

	mgr := sound.NewManager(fsys, &audiotest.Player{}, cfg)
	engine := sound.Must(mgr.LoopedSound("engine", sound.Hardcoded))

	w := &space{}
	for _, now := range []float64{0, 1, 2, 3.5, 4} {
		w.now = now
		out, _ := mgr.Play(w, engine, sound.From(ship{id: 1}))
		fmt.Printf("t=%.1f %v\n", now, out)
	}
	// Output:
	// t=0.0 played
	// t=1.0 suppressed
	// t=2.0 played
	// t=3.5 suppressed
	// t=4.0 played
}
