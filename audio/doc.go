// SPDX-License-Identifier: EPL-2.0

// Package audio holds the sample pipeline shared by the format decoders and
// the playback engines.
//
// # Sources
//
// Every decoder returns a Source: interleaved float32 samples in [-1, 1]
// read in chunks until io.EOF.
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// # Clips
//
// Sound effects are short and replayed often, so engines decode them once
// into a PCM clip. Registry.Load picks the decoder from the file extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	clip, err := reg.Load("boom.wav", f)
//
// A PCM is read-only. Each call to Source starts an independent stream, so
// overlapping plays of the same clip need no locking.
//
// # Pitch
//
// Repitch plays a Source faster or slower by resampling it:
//
//	src, _ := audio.Repitch(clip.Source(), 1.05, 44100)
//	mono := audio.NewMonoMixer(src)
//
// A pitch above 1 shortens the sound. The cubic Resampler behind it runs a
// one-pole low-pass when it has to drop samples.
//
// # Engines
//
// Clip and Player describe what the sound manager needs from a playback
// engine: load a file into a clip, fire a clip at a volume and a pitch.
// MixdownMono16 turns a Source into 16-bit PCM for engines that write files.
package audio
