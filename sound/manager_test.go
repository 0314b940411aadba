// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/ik5/audman/internal/audiotest"
)

func newTestManager(t *testing.T, mutate func(*Config)) (*Manager, *audiotest.Player) {
	t.Helper()

	cfg := testConfig(new(bytes.Buffer))
	if mutate != nil {
		mutate(&cfg)
	}
	player := &audiotest.Player{}
	return NewManager(testFS(), player, cfg), player
}

func TestManager_Play(t *testing.T) {
	t.Parallel()

	m, player := newTestManager(t, func(c *Config) { c.Rand = fixedRand{f: 0.5, n: 1} })
	laser := Must(m.Sound("laser", Hardcoded))

	out, err := m.Play(newTestWorld(), laser, From(testEntity{id: 1, pos: Vec2{X: 3}}))
	if err != nil || out != Played {
		t.Fatalf("Play() = %v, %v; want played", out, err)
	}

	plays := player.Plays()
	if len(plays) != 1 {
		t.Fatalf("engine got %d plays, want 1", len(plays))
	}

	p := plays[0]
	if p.Clip.Name() != "res/sounds/laser/b.ogg" {
		t.Errorf("played %s, want the clip at index 1", p.Clip.Name())
	}
	if math.Abs(p.Volume-1.0/3) > 1e-12 || math.Abs(p.Pitch-1) > 1e-9 || p.Pan != 0 {
		t.Errorf("play = vol %v, pitch %v, pan %v", p.Volume, p.Pitch, p.Pan)
	}
}

func TestManager_PlayOutcomes(t *testing.T) {
	t.Parallel()

	near := testEntity{id: 1, pos: Vec2{X: 0.5}}
	far := testEntity{id: 2, pos: Vec2{X: 5}}

	tests := []struct {
		name    string
		mutate  func(*Config)
		space   bool // listener outside any atmosphere
		group   string
		req     Request
		want    Outcome
		engines int
	}{
		{"muted", func(c *Config) { c.NoSound = true }, false, "laser", From(near), Muted, 0},
		{"zero request", nil, false, "laser", Request{}, NoPosition, 0},
		{"nil entity", nil, false, "laser", From(nil), NoPosition, 0},
		{"typed nil entity", nil, false, "laser", From((*testEntity)(nil)), NoPosition, 0},
		{"typed nil entity at position", nil, false, "laser", FromAt((*testEntity)(nil), Vec2{X: 1}), Played, 1},
		{"explicit position", nil, false, "laser", At(Vec2{X: 1}), Played, 1},
		{"explicit position wins", nil, true, "laser", FromAt(far, Vec2{}), Played, 1},
		{"vacuum far", nil, true, "laser", From(far), Inaudible, 0},
		{"vacuum near", nil, true, "laser", From(near), Played, 1},
		{"sound in space", func(c *Config) { c.SoundInSpace = true }, true, "laser", From(far), Played, 1},
		{"zero volume", nil, false, "quiet", From(near), Inaudible, 0},
		{"empty group", nil, false, "empty", From(near), NoClips, 0},
		{"missing group", nil, false, "missing", At(Vec2{}), NoClips, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, player := newTestManager(t, tt.mutate)
			g := Must(m.Sound(tt.group, Hardcoded))

			w := newTestWorld()
			if tt.space {
				w.planet = nil
			}

			out, err := m.Play(w, g, tt.req)
			if err != nil {
				t.Fatalf("Play() error = %v", err)
			}
			if out != tt.want {
				t.Errorf("Play() = %v, want %v", out, tt.want)
			}
			if got := len(player.Plays()); got != tt.engines {
				t.Errorf("engine got %d plays, want %d", got, tt.engines)
			}
		})
	}
}

func TestManager_LoopWithoutSource(t *testing.T) {
	t.Parallel()

	m, player := newTestManager(t, nil)
	engine := Must(m.LoopedSound("engine", "ships.cfg"))

	out, err := m.Play(newTestWorld(), engine, At(Vec2{}))
	if !errors.Is(err, ErrLoopWithoutSource) {
		t.Fatalf("Play() error = %v, want ErrLoopWithoutSource", err)
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Group != "engine" {
		t.Errorf("error = %#v, want a *ConfigError for engine", err)
	}
	if out != Rejected || len(player.Plays()) != 0 {
		t.Errorf("Play() = %v with %d plays", out, len(player.Plays()))
	}
}

func TestManager_LoopFromTypedNil(t *testing.T) {
	t.Parallel()

	var ship *testEntity
	req := FromAt(ship, Vec2{})
	if req.Source() != nil {
		t.Fatalf("Source() = %#v, want nil", req.Source())
	}

	m, player := newTestManager(t, nil)
	engine := Must(m.LoopedSound("engine", Hardcoded))

	out, err := m.Play(newTestWorld(), engine, req)
	if !errors.Is(err, ErrLoopWithoutSource) || out != Rejected {
		t.Errorf("Play() = %v, %v; want rejected with ErrLoopWithoutSource", out, err)
	}
	if len(player.Plays()) != 0 {
		t.Errorf("engine got %d plays, want 0", len(player.Plays()))
	}
}

func TestManager_LoopSuppression(t *testing.T) {
	t.Parallel()

	m, player := newTestManager(t, nil)
	engine := Must(m.LoopedSound("engine", Hardcoded))
	ship := testEntity{id: 9}
	w := newTestWorld()

	steps := []struct {
		now     float64
		removed bool
		want    Outcome
	}{
		{0, false, Played},
		{1, false, Suppressed},
		{2, false, Played},
		{3.5, false, Suppressed},
		{3.6, true, Played}, // swept, so a first trigger again
	}

	for _, s := range steps {
		w.now = s.now
		if s.removed {
			w.removed[ship.id] = true
			m.Update(w)
			delete(w.removed, ship.id)
		}

		out, err := m.Play(w, engine, From(ship))
		if err != nil {
			t.Fatalf("t=%v: Play() error = %v", s.now, err)
		}
		if out != s.want {
			t.Errorf("t=%v: Play() = %v, want %v", s.now, out, s.want)
		}
	}

	if got := len(player.Plays()); got != 3 {
		t.Errorf("engine got %d plays, want 3", got)
	}
	if m.Loops().Tracked(ship.id) != 1 {
		t.Errorf("Tracked() = %d, want 1", m.Loops().Tracked(ship.id))
	}
}

func TestManager_InaudibleDoesNotArmLoop(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t, nil)
	engine := Must(m.LoopedSound("engine", Hardcoded))
	w := newTestWorld()
	w.planet = nil

	if out, _ := m.Play(w, engine, From(testEntity{id: 1, pos: Vec2{X: 9}})); out != Inaudible {
		t.Fatalf("Play() = %v, want inaudible", out)
	}
	if m.Loops().Len() != 0 {
		t.Error("an inaudible play armed a loop window")
	}
}

func TestManager_DebugHints(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t, func(c *Config) { c.Debug = true })
	w := newTestWorld()

	laser := Must(m.Sound("laser", Hardcoded))
	missing := Must(m.Sound("missing", Hardcoded))

	m.Play(w, laser, From(testEntity{id: 1}))
	if out, _ := m.Play(w, missing, At(Vec2{X: 4})); out != NoClips {
		t.Fatalf("Play(missing) = %v, want no clips", out)
	}

	r := &hintRecorder{}
	m.DrawDebug(r)
	if len(r.hints) != 2 {
		t.Fatalf("drew %d hints, want 2", len(r.hints))
	}
	if r.hints[0].Labels[0] != "laser [2]" || r.hints[1].Labels[0] != "missing [0]" {
		t.Errorf("hints = %+v", r.hints)
	}

	w.now = 5
	m.Update(w)

	r = &hintRecorder{}
	m.DrawDebug(r)
	if len(r.hints) != 0 {
		t.Errorf("drew %d hints after they expired", len(r.hints))
	}
}

func TestManager_DrawDebugOff(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t, nil)
	m.Play(newTestWorld(), Must(m.Sound("laser", Hardcoded)), At(Vec2{}))

	r := &hintRecorder{}
	m.DrawDebug(r)
	if len(r.hints) != 0 {
		t.Errorf("drew %d hints with debug off", len(r.hints))
	}
}

func TestMust(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t, nil)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Must() did not panic on a loop without loopTime")
		}
	}()
	Must(m.LoopedSound("noloop", Hardcoded))
}

func TestNewManager_ZeroConfig(t *testing.T) {
	t.Parallel()

	m := NewManager(testFS(), &audiotest.Player{}, Config{Dir: "res/sounds"})
	cfg := m.Config()

	if cfg.Logger == nil || cfg.Rand == nil || cfg.HintTTL != 1 {
		t.Errorf("zero config not filled: %+v", cfg)
	}
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	if Suppressed.String() != "suppressed" || Outcome(99).String() != "unknown" {
		t.Errorf("String() = %q, %q", Suppressed, Outcome(99))
	}
}
