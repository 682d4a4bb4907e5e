// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/soundfx/utils"
)

// Resampler converts src to another sample rate using Catmull-Rom cubic
// interpolation. It works on interleaved samples and keeps the channel count.
// When downsampling, input frames go through a one-pole low-pass filter
// tuned to the destination Nyquist frequency first to reduce aliasing.
//
// Resampling to the source rate reproduces the input frames.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames per output frame
	channels int

	// win holds four consecutive source frames; output is interpolated
	// between win[1] and win[2] at offset frac.
	win    [4][]float32
	valid  [4]bool
	frac   float64
	primed bool
	eof    bool

	in []float32

	lowpass bool
	warm    bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		in:       make([]float32, channels),
		lowpass:  step > 1,
		alpha:    lowpassAlpha(step),
		state:    make([]float32, channels),
	}

	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

// lowpassAlpha is the one-pole smoothing factor 1-exp(-2*pi*fc/fs) with the
// cutoff fc at the destination Nyquist frequency, fs/(2*step).
func lowpassAlpha(step float64) float32 {
	if step <= 1 {
		return 1
	}

	return float32(1 - math.Exp(-math.Pi/step))
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampled source: %w", err)
	}

	return nil
}

// pull reads one source frame into dst. It reports false once the source is
// exhausted.
func (r *Resampler) pull(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.in)
	if errors.Is(err, io.EOF) {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("reading source: %w", err)
	}

	if n < r.channels {
		r.eof = true
		return false, nil
	}

	copy(dst, r.in)

	if r.lowpass {
		if !r.warm {
			copy(r.state, dst)
			r.warm = true
		}
		for c := range dst {
			dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.state[c]
			r.state[c] = dst[c]
		}
	}

	return true, nil
}

func (r *Resampler) prime() error {
	ok, err := r.pull(r.win[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}

	// the first frame doubles as its own predecessor
	copy(r.win[0], r.win[1])
	r.valid[0], r.valid[1] = true, true

	for i := 2; i < len(r.win); i++ {
		if r.valid[i], err = r.pull(r.win[i]); err != nil {
			return err
		}
	}

	r.primed = true

	return nil
}

func (r *Resampler) advance() error {
	w := r.win
	r.win = [4][]float32{w[1], w[2], w[3], w[0]}
	r.valid[0], r.valid[1], r.valid[2] = r.valid[1], r.valid[2], r.valid[3]

	var err error
	r.valid[3], err = r.pull(r.win[3])

	return err
}

// ReadSamples produces interleaved samples at the destination rate. len(dst)
// must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.frac >= 1 {
			r.frac--
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.valid[1] {
			return written * r.channels, io.EOF
		}

		p0, p1, p2, p3 := r.win[0], r.win[1], r.win[2], r.win[3]
		if !r.valid[2] {
			p2 = p1
		}
		if !r.valid[3] {
			p3 = p2
		}

		x := float32(r.frac)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CatmullRom(p0[c], p1[c], p2[c], p3[c], x)
		}

		written++
		r.frac += r.step
	}

	return written * r.channels, nil
}
