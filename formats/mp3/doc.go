// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always yields interleaved stereo 16-bit PCM, so every Source returned
// by Decoder reports two channels regardless of how the file was encoded:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(src)
package mp3
