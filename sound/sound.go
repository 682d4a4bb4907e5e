// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"fmt"
	"time"
)

// Sound is a stereo recording held in memory.
type Sound struct {
	// Rate is the sample rate in Hz.
	Rate int
	// Left and Right hold samples in [-1,1].
	Left  []float64
	Right []float64
}

// New builds a Sound from copies of left and right.
func New(rate int, left, right []float64) Sound {
	return Sound{
		Rate:  rate,
		Left:  clone(left),
		Right: clone(right),
	}
}

// Mono builds a Sound with samples copied into both channels.
func Mono(rate int, samples []float64) Sound {
	return New(rate, samples, samples)
}

// Frames returns the number of left/right sample pairs.
func (s Sound) Frames() int {
	return min(len(s.Left), len(s.Right))
}

// Duration is the playing time of Frames() samples at Rate.
func (s Sound) Duration() time.Duration {
	if s.Rate <= 0 {
		return 0
	}

	return time.Duration(s.Frames()) * time.Second / time.Duration(s.Rate)
}

// Clone returns a deep copy of s.
func (s Sound) Clone() Sound {
	return New(s.Rate, s.Left, s.Right)
}

// Validate reports whether s is well formed.
func (s Sound) Validate() error {
	if s.Rate <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRate, s.Rate)
	}

	if len(s.Left) != len(s.Right) {
		return fmt.Errorf("%w: left %d, right %d", ErrChannelMismatch, len(s.Left), len(s.Right))
	}

	return nil
}

func clone(src []float64) []float64 {
	dst := make([]float64, len(src))
	copy(dst, src)

	return dst
}
