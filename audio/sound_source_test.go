// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"testing"

	"github.com/ik5/soundfx/sound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoundSource_Interleaves(t *testing.T) {
	t.Parallel()

	src := NewSoundSource(sound.New(8000, []float64{0.5, 0.25, -0.5}, []float64{-0.5, -0.25, 0.5}))
	assert.Equal(t, 8000, src.SampleRate())
	assert.Equal(t, 2, src.Channels())

	buf := make([]float32, 4)
	n, err := src.ReadSamples(buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []float32{0.5, -0.5, 0.25, -0.25}, buf)

	n, err = src.ReadSamples(buf)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 2, n)
	assert.Equal(t, []float32{-0.5, 0.5}, buf[:n])

	n, err = src.ReadSamples(buf)
	assert.ErrorIs(t, err, io.EOF)
	assert.Zero(t, n)
}

func TestSoundSource_Rewind(t *testing.T) {
	t.Parallel()

	src := NewSoundSource(sound.Mono(8000, []float64{0.125}))
	buf := make([]float32, 2)

	_, err := src.ReadSamples(buf)
	require.ErrorIs(t, err, io.EOF)

	src.Rewind()
	n, err := src.ReadSamples(buf)
	require.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 2, n)
	assert.Equal(t, []float32{0.125, 0.125}, buf)
}

func TestSoundSource_OddBuffer(t *testing.T) {
	t.Parallel()

	src := NewSoundSource(sound.Mono(8000, []float64{0, 0}))
	_, err := src.ReadSamples(make([]float32, 3))
	assert.ErrorIs(t, err, ErrInvalidDstSize)
}

func TestSoundSource_TruncatesToShorterChannel(t *testing.T) {
	t.Parallel()

	src := NewSoundSource(sound.New(8000, []float64{1, 1, 1}, []float64{1}))
	n, err := src.ReadSamples(make([]float32, 8))
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 2, n)
}

func TestSoundSource_Empty(t *testing.T) {
	t.Parallel()

	src := NewSoundSource(sound.Sound{Rate: 8000})
	n, err := src.ReadSamples(make([]float32, 2))
	assert.ErrorIs(t, err, io.EOF)
	assert.Zero(t, n)
	assert.NoError(t, src.Close())
}
