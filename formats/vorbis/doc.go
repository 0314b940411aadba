// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis with github.com/jfreymuth/oggvorbis.
//
// Samples are interleaved float32 in [-1.0, 1.0], with the channel count and
// sample rate of the file:
//
//	src, err := vorbis.Decoder{}.Decode(file)
package vorbis
