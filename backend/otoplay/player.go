// SPDX-License-Identifier: EPL-2.0

package otoplay

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/audman/audio"
	"github.com/ik5/audman/utils"
)

var (
	ErrForeignClip = errors.New("clip was not loaded by this player")
	ErrClosed      = errors.New("player is closed")
)

type Options struct {
	SampleRate int
	// BufferSize is the device buffer length. Zero picks oto's default.
	BufferSize time.Duration
	Logger     *slog.Logger
}

func DefaultOptions() Options {
	return Options{SampleRate: 44100, Logger: slog.Default()}
}

// Player is an audio.Player on top of an oto context.
type Player struct {
	ctx    *oto.Context
	reg    *audio.Registry
	rate   int
	logger *slog.Logger

	mtx    sync.Mutex
	active map[*oto.Player]struct{}
	closed bool
	wg     sync.WaitGroup
}

// New opens the audio device and waits until it is ready.
func New(reg *audio.Registry, opts Options) (*Player, error) {
	def := DefaultOptions()
	if opts.SampleRate <= 0 {
		opts.SampleRate = def.SampleRate
	}
	if opts.Logger == nil {
		opts.Logger = def.Logger
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   opts.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   opts.BufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	return &Player{
		ctx:    ctx,
		reg:    reg,
		rate:   opts.SampleRate,
		logger: opts.Logger,
		active: make(map[*oto.Player]struct{}),
	}, nil
}

func (p *Player) LoadClip(name string, r io.Reader) (audio.Clip, error) {
	pcm, err := p.reg.Load(name, r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return pcm, nil
}

// PlayClip starts c and returns at once. pan is ignored.
func (p *Player) PlayClip(c audio.Clip, volume, pitch, pan float64) {
	if err := p.play(c, volume, pitch); err != nil {
		p.logger.Error("failed to play clip",
			slog.String("clip", c.Name()),
			slog.Any("error", err))
	}
}

func (p *Player) play(c audio.Clip, volume, pitch float64) error {
	pcm, ok := c.(*audio.PCM)
	if !ok {
		return ErrForeignClip
	}

	src, err := audio.Repitch(pcm.Source(), pitch, p.rate)
	if err != nil {
		return err
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.closed {
		return ErrClosed
	}

	pl := p.ctx.NewPlayer(newFloatReader(audio.NewMonoMixer(src)))
	pl.SetVolume(utils.Clamp(volume, 0, 1))
	pl.Play()

	p.active[pl] = struct{}{}
	p.wg.Add(1)
	go p.wait(pl)

	return nil
}

// wait closes pl once it went quiet.
func (p *Player) wait(pl *oto.Player) {
	defer p.wg.Done()

	for pl.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	if err := pl.Close(); err != nil {
		p.logger.Warn("failed to close oto player", slog.Any("error", err))
	}

	p.mtx.Lock()
	delete(p.active, pl)
	p.mtx.Unlock()
}

// Playing returns the number of plays still sounding.
func (p *Player) Playing() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return len(p.active)
}

// Close stops every play and waits for them to be released.
// Later plays are dropped.
func (p *Player) Close() error {
	p.mtx.Lock()
	p.closed = true
	for pl := range p.active {
		pl.Pause()
	}
	p.mtx.Unlock()

	p.wg.Wait()

	if err := p.ctx.Err(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
