// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes WAV files.
//
// Decoding is done by github.com/go-audio/wav and accepts integer PCM at 8, 16,
// 24 or 32 bits, any channel count and any sample rate. Samples come out of the
// returned audio.Source as float32 in [-1.0, 1.0]:
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
// WriteWAV16 writes mono 16-bit PCM with a canonical 44 byte header. The
// render backend uses it to store every dispatched play:
//
//	err := wav.WriteWAV16(out, 44100, samples)
package wav
