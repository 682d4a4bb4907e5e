// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the package tests.
package audiotest

import (
	"io"
	"math"

	"github.com/ik5/soundfx/sound"
)

// MockSource generates frames from a waveform function. It satisfies
// audio.Source without importing it, so audio's own tests can use it.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	waveform   func(frame, channel int) float32

	// FailAfter makes ReadSamples return Err once this many frames have
	// been produced. Zero disables it.
	FailAfter int
	Err       error

	Closed bool
}

// NewMockSource builds a source of frames frames per channel.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewConstantSource produces value on every channel.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

// NewCountingSource produces frame/1000 + channel/10 so tests can tell
// frames and channels apart.
func NewCountingSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, channel int) float32 {
		return float32(frame)/1000 + float32(channel)/10
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.FailAfter > 0 && m.pos >= m.FailAfter {
		return 0, m.Err
	}

	if m.pos >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.pos)
	if m.FailAfter > 0 {
		n = min(n, m.FailAfter-m.pos)
	}

	for f := 0; f < n; f++ {
		for ch := 0; ch < m.channels; ch++ {
			dst[f*m.channels+ch] = m.waveform(m.pos+f, ch)
		}
	}
	m.pos += n

	if m.pos >= m.frames {
		return n * m.channels, io.EOF
	}

	return n * m.channels, nil
}

// Sine returns a stereo sine tone with the right channel a quarter period
// behind the left.
func Sine(rate, frames int, freq, amplitude float64) sound.Sound {
	left := make([]float64, frames)
	right := make([]float64, frames)

	for i := 0; i < frames; i++ {
		phase := 2 * math.Pi * freq * float64(i) / float64(rate)
		left[i] = amplitude * math.Sin(phase)
		right[i] = amplitude * math.Cos(phase)
	}

	return sound.Sound{Rate: rate, Left: left, Right: right}
}

// Ramp returns a sound whose left channel climbs from -1 to 1 and whose
// right channel falls from 1 to -1.
func Ramp(rate, frames int) sound.Sound {
	left := make([]float64, frames)
	right := make([]float64, frames)

	for i := 0; i < frames; i++ {
		v := -1.0
		if frames > 1 {
			v = -1 + 2*float64(i)/float64(frames-1)
		}
		left[i] = v
		right[i] = -v
	}

	return sound.Sound{Rate: rate, Left: left, Right: right}
}
