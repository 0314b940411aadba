// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audman/utils"
)

// MixdownMono16 drains src through a MonoMixer, scales every sample by gain
// and returns the result as clipped 16-bit PCM.
//
// bufferSize controls how many samples are pulled per read. src is closed
// when the stream ends.
func MixdownMono16(src Source, gain float32, bufferSize int) ([]int16, error) {
	mono := NewMonoMixer(src)
	defer mono.Close()

	if bufferSize <= 0 {
		bufferSize = 4096
	}

	var pcm16 []int16
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for i := range n {
			pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]*gain))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n == 0 {
			break
		}
	}

	return pcm16, nil
}
