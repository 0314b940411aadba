// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"cmp"
	"slices"
)

// Hint is a debug label drawn where sounds recently played.
type Hint struct {
	Source    EntityID
	HasSource bool
	Pos       Vec2
	Labels    []string
	LastSeen  float64
}

// HintRenderer draws hints on the debug overlay.
type HintRenderer interface {
	DrawHint(h Hint)
}

type hintKey struct {
	id     EntityID
	entity bool
	pos    Vec2
}

// Hints collects one hint per emitting entity, or per position for sounds
// without a source. Not safe for concurrent use.
type Hints struct {
	ttl   float64
	hints map[hintKey]*Hint
}

func NewHints(ttl float64) *Hints {
	return &Hints{ttl: ttl, hints: make(map[hintKey]*Hint)}
}

// Add records that label played from src at pos. src may be nil.
func (h *Hints) Add(src Entity, pos Vec2, label string, now float64) {
	key := hintKey{pos: pos}
	if src != nil {
		key = hintKey{id: src.ID(), entity: true}
	}

	hint, ok := h.hints[key]
	if !ok {
		hint = &Hint{Source: key.id, HasSource: key.entity}
		h.hints[key] = hint
	}

	hint.Pos = pos
	hint.LastSeen = now
	if !slices.Contains(hint.Labels, label) {
		hint.Labels = append(hint.Labels, label)
	}
}

// Update drops hints not refreshed within the TTL.
func (h *Hints) Update(now float64) {
	for key, hint := range h.hints {
		if now-hint.LastSeen > h.ttl {
			delete(h.hints, key)
		}
	}
}

// All returns copies of the live hints, entity hints first, by ID then position.
func (h *Hints) All() []Hint {
	out := make([]Hint, 0, len(h.hints))
	for _, hint := range h.hints {
		c := *hint
		c.Labels = slices.Clone(hint.Labels)
		out = append(out, c)
	}

	slices.SortFunc(out, func(a, b Hint) int {
		if a.HasSource != b.HasSource {
			if a.HasSource {
				return -1
			}
			return 1
		}
		return cmp.Or(
			cmp.Compare(a.Source, b.Source),
			cmp.Compare(a.Pos.X, b.Pos.X),
			cmp.Compare(a.Pos.Y, b.Pos.Y),
		)
	})
	return out
}

func (h *Hints) Len() int { return len(h.hints) }
