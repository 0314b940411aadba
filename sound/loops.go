// SPDX-License-Identifier: EPL-2.0

package sound

// LoopTracker remembers, per entity and group, when the last dispatched loop
// ends. It is not safe for concurrent use.
type LoopTracker struct {
	ends map[EntityID]map[string]float64
}

func NewLoopTracker() *LoopTracker {
	return &LoopTracker{ends: make(map[EntityID]map[string]float64)}
}

// ShouldSkip reports whether a play of g on id at now would overlap a loop
// that is still running. When it returns false for a looped group the loop
// window restarts at now.
func (t *LoopTracker) ShouldSkip(id EntityID, g *Group, now float64) bool {
	if !g.Looped() {
		return false
	}

	groups, ok := t.ends[id]
	if !ok {
		groups = make(map[string]float64)
		t.ends[id] = groups
	}

	if end, ok := groups[g.path]; ok && end > now {
		return true
	}

	groups[g.path] = now + g.loopTime
	return false
}

// Sweep forgets every entity live reports as gone.
func (t *LoopTracker) Sweep(live func(EntityID) bool) {
	for id := range t.ends {
		if !live(id) {
			delete(t.ends, id)
		}
	}
}

// Tracked returns the number of loop windows held for id.
func (t *LoopTracker) Tracked(id EntityID) int { return len(t.ends[id]) }

// Len returns the number of entities with loop state.
func (t *LoopTracker) Len() int { return len(t.ends) }
