// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Reverse returns s played backwards.
func Reverse(s Sound) Sound {
	out := s.Clone()
	slices.Reverse(out.Left)
	slices.Reverse(out.Right)

	return out
}

// Mix cross-fades two sounds of the same rate. Each output sample is
// p*s1 + (1-p)*s2 for the first min(len1, len2) samples of each channel.
//
// Sounds with different rates are not mixed: the zero Sound is returned with
// an error wrapping ErrRateMismatch.
func Mix(s1, s2 Sound, p float64) (Sound, error) {
	if s1.Rate != s2.Rate {
		return Sound{}, fmt.Errorf("%w: %d Hz and %d Hz", ErrRateMismatch, s1.Rate, s2.Rate)
	}

	return Sound{
		Rate:  s1.Rate,
		Left:  blend(s1.Left, s2.Left, p),
		Right: blend(s1.Right, s2.Right, p),
	}, nil
}

func blend(a, b []float64, p float64) []float64 {
	n := min(len(a), len(b))
	dst := make([]float64, n)
	floats.ScaleTo(dst, 1-p, b[:n])
	floats.AddScaled(dst, p, a[:n])

	return dst
}

// maxEchoFrames bounds the length of an echoed channel.
const maxEchoFrames = math.MaxInt32

// Echo adds numEchoes delayed copies of s to itself. The k-th copy starts
// k*delay seconds late and is attenuated by scale^k. The delay is rounded to
// the nearest whole sample and the result is long enough to hold the last
// echo in full.
//
// A negative count, or a delay that is negative or not finite, yields
// ErrInvalidEcho. A delay or a total length beyond math.MaxInt32 frames yields
// ErrEchoTooLong.
func Echo(s Sound, numEchoes int, delay, scale float64) (Sound, error) {
	if numEchoes < 0 || !(delay >= 0) || math.IsInf(delay, 1) {
		return Sound{}, fmt.Errorf("%w: %d echoes, %gs delay", ErrInvalidEcho, numEchoes, delay)
	}

	if s.Rate <= 0 {
		return Sound{}, fmt.Errorf("%w: got %d", ErrInvalidRate, s.Rate)
	}

	samples := math.Round(delay * float64(s.Rate))
	longest := max(len(s.Left), len(s.Right))
	if samples > maxEchoFrames || float64(longest)+float64(numEchoes)*samples > maxEchoFrames {
		return Sound{}, fmt.Errorf("%w: %d echoes of %gs exceed %d frames",
			ErrEchoTooLong, numEchoes, delay, maxEchoFrames)
	}

	offset := int(samples)

	return Sound{
		Rate:  s.Rate,
		Left:  echoChannel(s.Left, numEchoes, offset, scale),
		Right: echoChannel(s.Right, numEchoes, offset, scale),
	}, nil
}

func echoChannel(in []float64, numEchoes, offset int, scale float64) []float64 {
	out := make([]float64, len(in)+numEchoes*offset)
	copy(out, in)

	gain := 1.0
	for k := 1; k <= numEchoes; k++ {
		gain *= scale
		start := k * offset
		floats.AddScaled(out[start:start+len(in)], gain, in)
	}

	return out
}

// Pan sweeps s from the left speaker to the right one. Sample i of n is
// scaled by i/(n-1) on the right and by 1-i/(n-1) on the left.
//
// Sounds with fewer than two frames have nothing to sweep across and are
// returned unchanged.
func Pan(s Sound) Sound {
	n := s.Frames()
	if n < 2 {
		return New(s.Rate, s.Left[:n], s.Right[:n])
	}

	ramp := floats.Span(make([]float64, n), 0, 1)
	left := make([]float64, n)
	for i, g := range ramp {
		left[i] = (1 - g) * s.Left[i]
	}

	return Sound{
		Rate:  s.Rate,
		Left:  left,
		Right: floats.MulTo(make([]float64, n), ramp, s.Right[:n]),
	}
}

// RemoveVocals cancels whatever is panned to the center by subtracting the
// right channel from the left. Both output channels carry the difference.
func RemoveVocals(s Sound) Sound {
	n := s.Frames()
	diff := floats.SubTo(make([]float64, n), s.Left[:n], s.Right[:n])

	return Sound{
		Rate:  s.Rate,
		Left:  diff,
		Right: clone(diff),
	}
}
