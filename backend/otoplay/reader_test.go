// SPDX-License-Identifier: EPL-2.0

package otoplay

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audman/internal/audiotest"
)

func TestFloatReader(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 1, 5, func(i, _ int) float32 { return float32(i) / 10 })
	r := newFloatReader(src)

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(data) != 20 {
		t.Fatalf("read %d bytes, want 20", len(data))
	}

	for i := range 5 {
		got := math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
		if want := float32(i) / 10; got != want {
			t.Errorf("sample %d = %v, want %v", i, got, want)
		}
	}
}

func TestFloatReader_ShortBuffer(t *testing.T) {
	t.Parallel()

	r := newFloatReader(audiotest.NewConstantSource(8000, 1, 4, 0.5))

	if n, err := r.Read(make([]byte, 3)); n != 0 || err != nil {
		t.Errorf("Read(3 bytes) = %d, %v; want 0, nil", n, err)
	}
	if n, err := r.Read(make([]byte, 10)); n != 8 || err != nil {
		t.Errorf("Read(10 bytes) = %d, %v; want 8, nil", n, err)
	}
}

func TestFloatReader_Error(t *testing.T) {
	t.Parallel()

	src := audiotest.NewBrokenSource(8000, 1, 2)
	r := newFloatReader(src)

	buf := make([]byte, 64)
	var err error
	for range 10 {
		if _, err = r.Read(buf); err != nil {
			break
		}
	}

	if !errors.Is(err, audiotest.ErrBroken) {
		t.Fatalf("Read() error = %v, want ErrBroken", err)
	}
	if !src.Closed() {
		t.Error("source was not closed after a read error")
	}
	if _, again := r.Read(buf); !errors.Is(again, audiotest.ErrBroken) {
		t.Errorf("second Read() error = %v, want the same error", again)
	}
}
