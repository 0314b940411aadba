// SPDX-License-Identifier: EPL-2.0

// Package audman wires the decoders for the sound formats a game ships with.
//
// The runtime manager itself lives in the sound package. It resolves sound
// groups from a directory tree, attenuates each play against the listener and
// keeps looping sounds from stacking on the same entity. Playback is handed to
// an audio.Player, of which two are provided:
//
//   - backend/otoplay plays through the system audio device via oto
//   - backend/render writes every play to a 16-bit mono WAV file
//
// # Supported Formats
//
// A sound group directory may hold any mix of:
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// Files with other extensions are ignored.
//
// # Quick Start
//
//	reg := audman.NewRegistry()
//	player, _ := otoplay.New(reg, otoplay.DefaultOptions())
//	defer player.Close()
//
//	cfg := sound.DefaultConfig()
//	mgr := sound.NewManager(os.DirFS("."), player, cfg)
//
//	shot := sound.Must(mgr.Sound("weapons/laser", "hardcoded"))
//	mgr.Play(world, shot, sound.From(ship))
//
// Call mgr.Update(world) once per simulation tick so loop state of removed
// entities is dropped.
package audman
