// SPDX-License-Identifier: EPL-2.0

package otoplay

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/ik5/audman/audio"
)

// floatReader serves a mono Source as little-endian float32 bytes.
type floatReader struct {
	src audio.Source
	buf []float32
	err error
}

func newFloatReader(src audio.Source) *floatReader {
	return &floatReader{src: src}
}

func (r *floatReader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}

	n := len(p) / 4
	if n == 0 {
		return 0, nil
	}
	if cap(r.buf) < n {
		r.buf = make([]float32, n)
	}

	got, err := r.src.ReadSamples(r.buf[:n])
	for i, s := range r.buf[:got] {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(s))
	}

	if err != nil {
		// oto stops the player once it sees io.EOF
		r.err = err
		if err != io.EOF {
			r.src.Close()
		}
		if got == 0 {
			return 0, err
		}
	}

	return got * 4, nil
}
