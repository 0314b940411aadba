// SPDX-License-Identifier: EPL-2.0

// Package render is an audio.Player that writes every play to its own
// 16-bit mono WAV file instead of a sound card.
//
// Volume and pitch are baked into the file: the clip is resampled by pitch,
// mixed down to mono and scaled by volume. Useful for headless servers, for
// checking a sound directory and for tests.
package render
