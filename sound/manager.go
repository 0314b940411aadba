// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"io/fs"
	"log/slog"

	"github.com/ik5/audman/audio"
)

// Manager owns the group cache, the loop state and the debug hints, and
// forwards plays to an audio.Player.
type Manager struct {
	cfg    Config
	player audio.Player

	cache *Cache
	loops *LoopTracker
	hints *Hints
}

// NewManager reads groups from cfg.Dir inside fsys and plays them on player.
func NewManager(fsys fs.FS, player audio.Player, cfg Config) *Manager {
	cfg = cfg.withDefaults()

	return &Manager{
		cfg:    cfg,
		player: player,
		cache:  NewCache(fsys, player, cfg.Dir, cfg.Logger),
		loops:  NewLoopTracker(),
		hints:  NewHints(cfg.HintTTL),
	}
}

// Sound resolves a one-shot group.
func (m *Manager) Sound(groupPath, definedBy string) (*Group, error) {
	return m.cache.Resolve(groupPath, definedBy, false)
}

// LoopedSound resolves a group meant to loop. It fails when the group has
// clips but no loopTime.
func (m *Manager) LoopedSound(groupPath, definedBy string) (*Group, error) {
	return m.cache.Resolve(groupPath, definedBy, true)
}

// Play dispatches one clip of g as heard from the listener of w.
//
// Every reason not to play is reported as an Outcome. The only error is a
// looped group played without a source entity.
func (m *Manager) Play(w World, g *Group, req Request) (Outcome, error) {
	if m.cfg.NoSound {
		return m.skip(g, Muted), nil
	}

	pos, ok := req.Position()
	if !ok {
		return m.skip(g, NoPosition), nil
	}

	src := req.Source()
	if src == nil && g.Looped() {
		return Rejected, &ConfigError{Group: g.path, Err: ErrLoopWithoutSource}
	}

	listener := w.Listener()
	planet, hasPlanet := w.NearestPlanet()
	inAtmosphere := m.cfg.SoundInSpace || InAtmosphere(listener, planet, hasPlanet)

	vol, pitch := Attenuate(pos, listener, inAtmosphere, g.volume, m.cfg.Rand)
	if vol <= 0 {
		return m.skip(g, Inaudible), nil
	}

	now := w.Time()
	if src != nil && m.loops.ShouldSkip(src.ID(), g, now) {
		return m.skip(g, Suppressed), nil
	}

	if m.cfg.Debug {
		m.hints.Add(src, pos, g.DebugString(), now)
	}

	if len(g.clips) == 0 {
		return m.skip(g, NoClips), nil
	}

	clip := g.clips[m.cfg.Rand.IntN(len(g.clips))]
	m.player.PlayClip(clip, vol, pitch, 0)

	return Played, nil
}

func (m *Manager) skip(g *Group, o Outcome) Outcome {
	m.cfg.Logger.Debug("sound not played",
		slog.String("group", g.path),
		slog.String("outcome", o.String()))
	return o
}

// Update runs once per simulation tick. It expires debug hints and drops the
// loop state of entities the world is removing.
func (m *Manager) Update(w World) {
	m.hints.Update(w.Time())
	m.loops.Sweep(func(id EntityID) bool { return !w.ShouldRemove(id) })
}

// DrawDebug hands the current hints to r. It does nothing unless Debug is on.
func (m *Manager) DrawDebug(r HintRenderer) {
	if !m.cfg.Debug {
		return
	}
	for _, h := range m.hints.All() {
		r.DrawHint(h)
	}
}

func (m *Manager) Cache() *Cache       { return m.cache }
func (m *Manager) Loops() *LoopTracker { return m.loops }
func (m *Manager) Config() Config      { return m.cfg }

// Must panics on a resolution error. Meant for groups resolved during setup.
func Must(g *Group, err error) *Group {
	if err != nil {
		panic(err)
	}
	return g
}
