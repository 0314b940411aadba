// SPDX-License-Identifier: EPL-2.0

package audman

import (
	"github.com/ik5/audman/audio"
	"github.com/ik5/audman/formats/mp3"
	"github.com/ik5/audman/formats/vorbis"
	"github.com/ik5/audman/formats/wav"
)

// SupportedExtensions are the clip file extensions a sound group may contain.
var SupportedExtensions = []string{mp3.Extension, vorbis.Extension, wav.Extension}

// NewRegistry returns a registry holding a decoder for every supported extension.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(wav.Extension, wav.Decoder{})
	reg.Register(mp3.Extension, mp3.Decoder{})
	reg.Register(vorbis.Extension, vorbis.Decoder{})

	return reg
}
