// SPDX-License-Identifier: EPL-2.0

package sound

import "github.com/ik5/audman/utils"

const (
	// MaxVolRadius is the distance within which a sound plays at full volume
	// in atmosphere. Beyond it volume falls off as 1/distance.
	MaxVolRadius = 2.0

	// MaxSpaceDist is the distance at which a sound fades out in vacuum.
	MaxSpaceDist = 1.0

	// pitch is jittered by up to this much either way
	pitchJitter = 0.05
)

// Attenuate returns the volume and pitch of a play at source as heard from
// listener. A volume of zero or less means the play should be dropped.
func Attenuate(source, listener Vec2, inAtmosphere bool, baseVolume float64, rnd Rand) (volume, pitch float64) {
	dst := source.Dist(listener)

	volume = 1
	if dst > MaxVolRadius {
		volume = 1 / dst
	}
	pitch = 1 - pitchJitter + 2*pitchJitter*rnd.Float64()

	if !inAtmosphere {
		volume = 1 - utils.Clamp(dst/MaxSpaceDist, 0, 1)
		pitch = 0.75*volume + 0.25
	}

	return volume * baseVolume, pitch
}

// InAtmosphere reports whether listener is inside the atmosphere of planet.
// ok is false when there is no planet around.
func InAtmosphere(listener Vec2, planet Planet, ok bool) bool {
	if !ok {
		return false
	}
	return listener.Dist(planet.Pos) < planet.FullHeight
}
