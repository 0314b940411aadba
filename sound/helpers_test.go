// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"bytes"
	"log/slog"
	"testing/fstest"
)

type testEntity struct {
	id  EntityID
	pos Vec2
}

func (e testEntity) ID() EntityID   { return e.id }
func (e testEntity) Position() Vec2 { return e.pos }

type testWorld struct {
	now      float64
	listener Vec2
	planet   *Planet
	removed  map[EntityID]bool
}

// newTestWorld puts the listener at the origin inside a large atmosphere.
func newTestWorld() *testWorld {
	return &testWorld{
		planet:  &Planet{FullHeight: 1000},
		removed: make(map[EntityID]bool),
	}
}

func (w *testWorld) Time() float64  { return w.now }
func (w *testWorld) Listener() Vec2 { return w.listener }

func (w *testWorld) NearestPlanet() (Planet, bool) {
	if w.planet == nil {
		return Planet{}, false
	}
	return *w.planet, true
}

func (w *testWorld) ShouldRemove(id EntityID) bool { return w.removed[id] }

// fixedRand always yields f and picks index n (modulo the range).
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(n int) int   { return r.n % n }

type hintRecorder struct {
	hints []Hint
}

func (r *hintRecorder) DrawHint(h Hint) { r.hints = append(r.hints, h) }

func testFS() fstest.MapFS {
	clip := func(s string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(s)} }

	return fstest.MapFS{
		"res/sounds/laser/a.wav":     clip("a"),
		"res/sounds/laser/b.ogg":     clip("b"),
		"res/sounds/laser/notes.txt": clip("not a clip"),
		"res/sounds/laser/old.aiff":  clip("unsupported"),
		"res/sounds/laser/sub/c.wav": clip("nested"),

		"res/sounds/engine/params.txt": clip("volume = 0.5\nloopTime = 2\n"),
		"res/sounds/engine/hum.mp3":    clip("hum"),

		"res/sounds/noloop/params.txt": clip("volume = 0.5\n"),
		"res/sounds/noloop/buzz.wav":   clip("buzz"),

		"res/sounds/empty/params.txt": clip("loopTime = 3\n"),

		"res/sounds/quiet/params.txt": clip("volume = 0\n"),
		"res/sounds/quiet/q.wav":      clip("q"),

		"res/sounds/nan/params.txt": clip("volume = NaN\nloopTime = NaN\n"),
		"res/sounds/nan/n.wav":      clip("n"),

		"res/sounds/inf/params.txt": clip("volume = -Inf\nloopTime = +Inf\n"),
		"res/sounds/inf/i.wav":      clip("i"),
	}
}

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func testConfig(buf *bytes.Buffer) Config {
	cfg := DefaultConfig()
	cfg.Logger = testLogger(buf)
	cfg.Rand = fixedRand{f: 0.5}
	return cfg
}
