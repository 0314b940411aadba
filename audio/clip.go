// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// PCM is a fully decoded clip held in memory. It never changes after Load,
// so any number of plays may read it at the same time through Source.
type PCM struct {
	name       string
	sampleRate int
	channels   int
	samples    []float32
}

func (p *PCM) Name() string    { return p.name }
func (p *PCM) SampleRate() int { return p.sampleRate }
func (p *PCM) Channels() int   { return p.channels }

// Frames returns the clip length in frames.
func (p *PCM) Frames() int { return len(p.samples) / p.channels }

// Seconds returns the clip duration.
func (p *PCM) Seconds() float64 {
	return float64(p.Frames()) / float64(p.sampleRate)
}

// Source returns a fresh stream positioned at the start of the clip.
func (p *PCM) Source() Source {
	return &pcmSource{pcm: p}
}

type pcmSource struct {
	pcm *PCM
	pos int
}

func (s *pcmSource) SampleRate() int { return s.pcm.sampleRate }
func (s *pcmSource) Channels() int   { return s.pcm.channels }
func (s *pcmSource) BufSize() int    { return 4096 }
func (s *pcmSource) Close() error    { return nil }

func (s *pcmSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.pcm.samples) {
		return 0, io.EOF
	}
	n := copy(dst, s.pcm.samples[s.pos:])
	s.pos += n
	return n, nil
}

// ReadAll drains src into a PCM clip named name and closes src.
func ReadAll(name string, src Source) (*PCM, error) {
	defer src.Close()

	channels := src.Channels()
	if channels < 1 {
		channels = 1
	}
	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}
	// keep reads frame aligned
	bufSize -= bufSize % channels
	if bufSize == 0 {
		bufSize = channels
	}

	buf := make([]float32, bufSize)
	var samples []float32

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		if n == 0 {
			break
		}
	}

	// drop a trailing partial frame
	samples = samples[:len(samples)-len(samples)%channels]
	if len(samples) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyClip)
	}

	return &PCM{
		name:       name,
		sampleRate: src.SampleRate(),
		channels:   channels,
		samples:    samples,
	}, nil
}

// Load picks the decoder registered for the extension of name, decodes r
// and keeps the whole clip in memory.
func (r *Registry) Load(name string, rd io.Reader) (*PCM, error) {
	ext := Ext(name)
	dec, ok := r.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%q: %w", ext, ErrUnknownFormat)
	}

	src, err := dec.Decode(rd)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}

	return ReadAll(name, src)
}
