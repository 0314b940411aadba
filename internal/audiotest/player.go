// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"fmt"
	"io"
	"sync"

	"github.com/ik5/audman/audio"
)

// Clip is the handle handed out by Player.
type Clip struct {
	name string
	Data []byte
}

func (c *Clip) Name() string { return c.name }

// Play is one recorded PlayClip call.
type Play struct {
	Clip   audio.Clip
	Volume float64
	Pitch  float64
	Pan    float64
}

// Player records every load and play instead of making noise.
type Player struct {
	mtx sync.Mutex

	// Fail makes LoadClip return the mapped error for a clip name.
	Fail map[string]error

	loads []string
	plays []Play
}

func (p *Player) LoadClip(name string, r io.Reader) (audio.Clip, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()

	if err := p.Fail[name]; err != nil {
		return nil, err
	}

	p.loads = append(p.loads, name)
	return &Clip{name: name, Data: data}, nil
}

func (p *Player) PlayClip(c audio.Clip, volume, pitch, pan float64) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.plays = append(p.plays, Play{Clip: c, Volume: volume, Pitch: pitch, Pan: pan})
}

// Loads returns the names passed to LoadClip, in call order.
func (p *Player) Loads() []string {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return append([]string(nil), p.loads...)
}

// Plays returns the recorded PlayClip calls, in call order.
func (p *Player) Plays() []Play {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return append([]Play(nil), p.plays...)
}
