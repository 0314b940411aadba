// SPDX-License-Identifier: EPL-2.0

package sound

import "math"

// Vec2 is a position in world units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Len() float64    { return math.Hypot(v.X, v.Y) }

// Dist returns the euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// EntityID identifies a simulation entity for as long as it exists.
type EntityID uint64

// Entity is anything that can emit a sound.
type Entity interface {
	ID() EntityID
	Position() Vec2
}

// Planet is a large body. Sound carries within FullHeight of its center.
type Planet struct {
	Pos        Vec2
	FullHeight float64
}

// World is what the manager reads from the running simulation.
type World interface {
	// Time is the simulation clock in seconds. It never goes backwards.
	Time() float64
	Listener() Vec2
	NearestPlanet() (Planet, bool)
	// ShouldRemove reports entities that have left the simulation.
	ShouldRemove(id EntityID) bool
}
