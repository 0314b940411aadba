// SPDX-License-Identifier: EPL-2.0

// Package otoplay plays clips on the system audio device through oto.
//
// Clips are decoded into memory on load. Each play gets its own oto player
// fed by a resampler that applies the requested pitch, so any number of
// plays of the same clip may overlap. oto allows a single context per
// process, so create one Player and share it.
package otoplay
