// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"errors"
	"fmt"
)

var (
	ErrLoopTimeMissing   = errors.New("looped sound group needs a loopTime")
	ErrLoopWithoutSource = errors.New("looped sound played without a source entity")
	ErrClipLoad          = errors.New("failed to load clip")
)

// ConfigError reports a content authoring mistake. Callers are expected to
// stop rather than carry on with broken audio.
type ConfigError struct {
	Group string
	Path  string // file to fix, if known
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("sound group %s (%s): %v", e.Group, e.Path, e.Err)
	}
	return fmt.Sprintf("sound group %s: %v", e.Group, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
