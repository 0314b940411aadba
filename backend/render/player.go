// SPDX-License-Identifier: EPL-2.0

package render

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ik5/audman/audio"
	"github.com/ik5/audman/formats/wav"
)

var ErrForeignClip = errors.New("clip was not loaded by this player")

// Sink opens the destination of the seq-th rendered play of clip.
type Sink func(clip string, seq int) (io.WriteCloser, error)

// DirSink writes numbered WAV files into dir.
func DirSink(dir string) Sink {
	return func(clip string, seq int) (io.WriteCloser, error) {
		base := strings.TrimSuffix(path.Base(clip), path.Ext(clip))
		f, err := os.Create(filepath.Join(dir, fmt.Sprintf("%04d-%s.wav", seq, base)))
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		return f, nil
	}
}

type Options struct {
	// SampleRate of the written files.
	SampleRate int
	Logger     *slog.Logger
}

func DefaultOptions() Options {
	return Options{SampleRate: 22050, Logger: slog.Default()}
}

// Player renders plays synchronously inside PlayClip.
type Player struct {
	reg    *audio.Registry
	sink   Sink
	rate   int
	logger *slog.Logger

	mtx sync.Mutex
	seq int
}

func New(reg *audio.Registry, sink Sink, opts Options) *Player {
	def := DefaultOptions()
	if opts.SampleRate <= 0 {
		opts.SampleRate = def.SampleRate
	}
	if opts.Logger == nil {
		opts.Logger = def.Logger
	}

	return &Player{
		reg:    reg,
		sink:   sink,
		rate:   opts.SampleRate,
		logger: opts.Logger,
	}
}

// LoadClip decodes r completely into memory.
func (p *Player) LoadClip(name string, r io.Reader) (audio.Clip, error) {
	pcm, err := p.reg.Load(name, r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return pcm, nil
}

// PlayClip renders c to the next sink. pan is ignored. Failures are logged.
func (p *Player) PlayClip(c audio.Clip, volume, pitch, pan float64) {
	p.mtx.Lock()
	seq := p.seq
	p.seq++
	p.mtx.Unlock()

	if err := p.play(c, seq, volume, pitch); err != nil {
		p.logger.Error("failed to render clip",
			slog.String("clip", c.Name()),
			slog.Int("seq", seq),
			slog.Any("error", err))
	}
}

func (p *Player) play(c audio.Clip, seq int, volume, pitch float64) error {
	pcm, ok := c.(*audio.PCM)
	if !ok {
		return ErrForeignClip
	}

	w, err := p.sink(c.Name(), seq)
	if err != nil {
		return err
	}

	err = Render(w, pcm, volume, pitch, p.rate)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err
}

// Rendered returns how many plays were dispatched.
func (p *Player) Rendered() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.seq
}

// Render writes pcm played at volume and pitch to w as a mono WAV at rate.
func Render(w io.Writer, pcm *audio.PCM, volume, pitch float64, rate int) error {
	src, err := audio.Repitch(pcm.Source(), pitch, rate)
	if err != nil {
		return err
	}

	samples, err := audio.MixdownMono16(src, float32(volume), 4096)
	if err != nil {
		return fmt.Errorf("mixing %s: %w", pcm.Name(), err)
	}

	return wav.WriteWAV16(w, rate, samples)
}
