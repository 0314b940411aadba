// SPDX-License-Identifier: EPL-2.0

package params

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"slices"

	"gopkg.in/ini.v1"
)

// Keys interpreted by Load.
const (
	KeyVolume   = "volume"
	KeyLoopTime = "loopTime"
)

// Defaults applied when a key or the whole file is missing.
const (
	DefaultVolume   = 1.0
	DefaultLoopTime = 0.0
)

// Params are the tunables of one sound group.
type Params struct {
	Volume   float64
	LoopTime float64
}

// Defaults returns the Params of a group without a params file.
func Defaults() Params {
	return Params{Volume: DefaultVolume, LoopTime: DefaultLoopTime}
}

// File is a parsed params file. Later lines override earlier ones.
type File struct {
	sec *ini.Section
}

// Parse reads key and value lines from r.
func Parse(r io.Reader) (File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return File{}, fmt.Errorf("%w", err)
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{}, data)
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return File{sec: cfg.Section("")}, nil
}

func (f File) has(key string) bool {
	return f.sec != nil && f.sec.HasKey(key)
}

// String returns the raw value of key, or def when the key is absent.
func (f File) String(key, def string) string {
	if !f.has(key) {
		return def
	}
	return f.sec.Key(key).String()
}

// Number returns key parsed as a finite number. It fails with ErrNoKey when
// the key is absent and ErrNotNumber when the value is anything else,
// NaN and infinities included.
func (f File) Number(key string) (float64, error) {
	if !f.has(key) {
		return 0, fmt.Errorf("%s: %w", key, ErrNoKey)
	}

	k := f.sec.Key(key)
	v, err := k.Float64()
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s = %q: %w", key, k.String(), ErrNotNumber)
	}
	return v, nil
}

// Float returns Number(key), or def when it fails.
func (f File) Float(key string, def float64) float64 {
	v, err := f.Number(key)
	if err != nil {
		return def
	}
	return v
}

// Keys lists the keys present in the file, sorted.
func (f File) Keys() []string {
	if f.sec == nil {
		return nil
	}
	keys := f.sec.KeyStrings()
	slices.Sort(keys)
	return keys
}

// Load reads the params file at name from fsys. A file that does not exist
// gives the defaults. A value that is not a number falls back to its default
// and is reported to logger at debug level. logger may be nil.
func Load(fsys fs.FS, name string, logger *slog.Logger) (Params, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fh, err := fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Params{}, fmt.Errorf("%w", err)
	}
	defer fh.Close()

	f, err := Parse(fh)
	if err != nil {
		return Params{}, fmt.Errorf("%s: %w", name, err)
	}

	number := func(key string, def float64) float64 {
		v, err := f.Number(key)
		if errors.Is(err, ErrNotNumber) {
			logger.Debug("params value is not a number",
				slog.String("file", name),
				slog.String("key", key),
				slog.String("value", f.String(key, "")))
		}
		if err != nil {
			return def
		}
		return v
	}

	return Params{
		Volume:   number(KeyVolume, DefaultVolume),
		LoopTime: number(KeyLoopTime, DefaultLoopTime),
	}, nil
}
