// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"fmt"
	"path"
	"slices"

	"github.com/ik5/audman/audio"
)

// Hardcoded is the provenance of groups no config file refers to.
const Hardcoded = "hardcoded"

// ParamsFile is the name of the params file inside a group directory.
const ParamsFile = "params.txt"

// Group is a set of interchangeable clips sharing one volume and loop time.
// It never changes once the cache built it.
type Group struct {
	path      string
	definedBy string
	dir       string
	loopTime  float64
	volume    float64
	clips     []audio.Clip
}

func (g *Group) Path() string      { return g.path }
func (g *Group) DefinedBy() string { return g.definedBy }
func (g *Group) Dir() string       { return g.dir }
func (g *Group) LoopTime() float64 { return g.loopTime }
func (g *Group) Volume() float64   { return g.volume }

// Looped reports whether plays of g are retriggered loops.
func (g *Group) Looped() bool { return g.loopTime > 0 }

// Clips returns the clips in directory order.
func (g *Group) Clips() []audio.Clip { return slices.Clone(g.clips) }

func (g *Group) DebugString() string {
	if g.Looped() {
		return fmt.Sprintf("%s [%d, loop %gs]", g.path, len(g.clips), g.loopTime)
	}
	return fmt.Sprintf("%s [%d]", g.path, len(g.clips))
}

func (g *Group) paramsPath() string { return path.Join(g.dir, ParamsFile) }

// checkLoop fails when g is used as a loop without a loop time.
func (g *Group) checkLoop() error {
	if len(g.clips) > 0 && g.loopTime == 0 {
		return &ConfigError{Group: g.path, Path: g.paramsPath(), Err: ErrLoopTimeMissing}
	}
	return nil
}
