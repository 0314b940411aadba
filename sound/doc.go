// SPDX-License-Identifier: EPL-2.0

// Package sound is the runtime side of the audio system.
//
// A Manager resolves sound groups, computes how loud and at which pitch a play
// is heard from the listener, and makes sure a looping sound is not restarted
// on an entity while its previous instance is still running.
//
// A sound group is a directory under Config.Dir holding interchangeable clips
// and an optional params.txt:
//
//	res/sounds/ship/engine/
//	    params.txt    volume = 0.5, loopTime = 2
//	    hum1.ogg
//	    hum2.ogg
//
// Every play picks one clip at random. Loops are never handed to the engine
// as loops; the group is simply retriggered once its loopTime has passed.
//
// The manager is driven by a single goroutine: Play from event sites and
// Update once per simulation tick. Only the group cache is safe for
// concurrent use.
package sound
