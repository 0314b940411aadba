// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrUnknownFormat  = errors.New("no decoder registered for format")
	ErrEmptyClip      = errors.New("clip holds no samples")
	ErrInvalidPitch   = errors.New("pitch must be positive")
)
