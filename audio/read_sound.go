// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/soundfx/sound"
)

// ReadSound drains src into a sound.Sound.
//
// Mono sources are copied into both channels. Sources with more than two
// channels are first averaged down to mono with a MonoMixer. The caller
// still owns src and must Close it.
func ReadSound(src Source) (sound.Sound, error) {
	rate, channels := src.SampleRate(), src.Channels()
	if rate <= 0 || channels <= 0 {
		return sound.Sound{}, fmt.Errorf("%w: %d Hz, %d channels", ErrInvalidFormat, rate, channels)
	}

	if channels > 2 {
		src = NewMonoMixer(src)
		channels = 1
	}

	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}
	// keep whole frames per read
	bufSize -= bufSize % channels
	if bufSize == 0 {
		bufSize = channels
	}
	buf := make([]float32, bufSize)

	var left, right []float64
	for {
		n, err := src.ReadSamples(buf)
		n -= n % channels

		for i := 0; i < n; i += channels {
			l := float64(buf[i])
			r := l
			if channels == 2 {
				r = float64(buf[i+1])
			}
			left = append(left, l)
			right = append(right, r)
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return sound.Sound{}, fmt.Errorf("reading samples: %w", err)
		}

		if n == 0 {
			// zero samples without EOF also ends the stream
			break
		}
	}

	if left == nil {
		left, right = []float64{}, []float64{}
	}

	return sound.Sound{Rate: rate, Left: left, Right: right}, nil
}
