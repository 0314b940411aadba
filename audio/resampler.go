// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/audman/utils"
)

// Resampler streams src at another sample rate using cubic interpolation.
// It keeps the channel count. When downsampling a one-pole low-pass runs on
// the input.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// frames t-1, t0, t+1, t+2 around the output position
	frames   [4][]float32
	hasFrame [4]bool
	pos      float64 // between frames[1] and frames[2]

	srcBuf []float32
	eof    bool
	primed bool

	alpha float32 // low-pass weight, 0 when off
	state []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		ratio:    float64(src.SampleRate()) / float64(dstRate),
		channels: src.Channels(),
		srcBuf:   make([]float32, src.Channels()),
		state:    make([]float32, src.Channels()),
	}
	if r.ratio > 1 {
		r.alpha = 0.5
	}

	for i := range r.frames {
		r.frames[i] = make([]float32, r.channels)
	}

	return r
}

// Repitch plays src at pitch times its natural speed, rendered at dstRate.
// A pitch of 2 halves the duration and raises the sound by an octave.
func Repitch(src Source, pitch float64, dstRate int) (*Resampler, error) {
	if pitch <= 0 || math.IsNaN(pitch) || math.IsInf(pitch, 0) {
		return nil, fmt.Errorf("%v: %w", pitch, ErrInvalidPitch)
	}

	rate := max(int(math.Round(float64(src.SampleRate())*pitch)), 1)

	return NewResampler(&retimed{Source: src, rate: rate}, dstRate), nil
}

// retimed reports a different sample rate for the same samples.
type retimed struct {
	Source
	rate int
}

func (r *retimed) SampleRate() int { return r.rate }

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame reads the next source frame into dst. It reports false once
// the source is exhausted.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.srcBuf)
	if err == io.EOF || (err == nil && n == 0) {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("%w", err)
	}

	if n == 0 {
		return false, nil
	}
	copy(dst, r.srcBuf[:n])
	return true, nil
}

func (r *Resampler) lowPass(frame []float32) {
	if r.alpha == 0 {
		return
	}
	for c := range frame {
		frame[c] = r.alpha*frame[c] + (1-r.alpha)*r.state[c]
		r.state[c] = frame[c]
	}
}

// prime centers the window on the first source frame. frames[0] has no
// real predecessor and repeats it.
func (r *Resampler) prime() error {
	ok, err := r.readFrame(r.frames[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}

	copy(r.frames[0], r.frames[1])
	copy(r.state, r.frames[1])
	r.hasFrame[0], r.hasFrame[1] = false, true

	for i := 2; i < len(r.frames); i++ {
		if r.hasFrame[i], err = r.readFrame(r.frames[i]); err != nil {
			return err
		}
		if r.hasFrame[i] {
			r.lowPass(r.frames[i])
		}
	}

	r.primed = true
	return nil
}

// advance slides the window one frame forward. Past the end of the source
// the slots it opens stay empty.
func (r *Resampler) advance() error {
	oldest := r.frames[0]
	copy(r.frames[:], r.frames[1:])
	r.frames[3] = oldest
	copy(r.hasFrame[:], r.hasFrame[1:])

	ok, err := r.readFrame(r.frames[3])
	if err != nil {
		return err
	}

	r.hasFrame[3] = ok
	if ok {
		r.lowPass(r.frames[3])
	}
	return nil
}

// ReadSamples fills dst at the target rate. len(dst) must be a multiple of
// the channel count. A source of n frames yields ceil(n / ratio) frames, the
// first of which is the first source frame.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	for written < len(dst)/r.channels {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		// the position left the last source frame
		if !r.hasFrame[1] {
			return written * r.channels, io.EOF
		}

		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			y1 := r.frames[1][c]
			y0, y2 := y1, y1
			if r.hasFrame[0] {
				y0 = r.frames[0][c]
			}
			if r.hasFrame[2] {
				y2 = r.frames[2][c]
			}
			y3 := y2
			if r.hasFrame[3] {
				y3 = r.frames[3][c]
			}
			out[c] = utils.CubicInterpolate(y0, y1, y2, y3, float32(r.pos))
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
