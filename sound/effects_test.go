// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

const tolerance = 1e-12

func ramp(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

func TestReverse(t *testing.T) {
	t.Parallel()

	s := New(8000, []float64{0.1, 0.2, 0.3}, []float64{-0.1, -0.2, -0.3})
	r := Reverse(s)

	assert.Equal(t, 8000, r.Rate)
	assert.Equal(t, []float64{0.3, 0.2, 0.1}, r.Left)
	assert.Equal(t, []float64{-0.3, -0.2, -0.1}, r.Right)

	// input untouched
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, s.Left)
}

func TestReverse_Involution(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 2, 7, 1000} {
		s := New(22050, ramp(n, -0.5, 0.001), ramp(n, 0.5, -0.001))
		rr := Reverse(Reverse(s))

		assert.Equal(t, s.Rate, rr.Rate)
		assert.Equal(t, s.Left, rr.Left, "n=%d", n)
		assert.Equal(t, s.Right, rr.Right, "n=%d", n)
	}
}

func TestReverse_Empty(t *testing.T) {
	t.Parallel()

	r := Reverse(Sound{Rate: 8000})
	assert.Empty(t, r.Left)
	assert.Empty(t, r.Right)
	assert.Equal(t, 8000, r.Rate)
}

func TestMix_Weights(t *testing.T) {
	t.Parallel()

	s1 := New(8000, []float64{0.2, 0.4, 0.6, 0.8}, []float64{-0.2, -0.4, -0.6, -0.8})
	s2 := New(8000, []float64{1, 1}, []float64{-1, 0})

	full, err := Mix(s1, s2, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.2, 0.4}, full.Left)
	assert.Equal(t, []float64{-0.2, -0.4}, full.Right)

	none, err := Mix(s1, s2, 0)
	require.NoError(t, err)
	assert.Equal(t, s2.Left, none.Left)
	assert.Equal(t, s2.Right, none.Right)

	half, err := Mix(s1, s2, 0.5)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox([]float64{0.6, 0.7}, half.Left, tolerance), "left %v", half.Left)
	assert.True(t, floats.EqualApprox([]float64{-0.6, -0.2}, half.Right, tolerance), "right %v", half.Right)
}

func TestMix_RateMismatch(t *testing.T) {
	t.Parallel()

	s1 := Mono(8000, []float64{0.1})
	s2 := Mono(16000, []float64{0.1})

	out, err := Mix(s1, s2, 0.5)
	require.ErrorIs(t, err, ErrRateMismatch)
	assert.Contains(t, err.Error(), "8000 Hz and 16000 Hz")
	assert.Zero(t, out.Rate)
	assert.Nil(t, out.Left)
	assert.Nil(t, out.Right)
}

func TestMix_DoesNotAlias(t *testing.T) {
	t.Parallel()

	s := Mono(8000, []float64{0.5, 0.5})
	out, err := Mix(s, s, 1)
	require.NoError(t, err)

	out.Left[0] = 0
	assert.InDelta(t, 0.5, s.Left[0], 0)
}

func TestEcho(t *testing.T) {
	t.Parallel()

	s := New(1, []float64{1, 0}, []float64{0, 1})
	out, err := Echo(s, 2, 1, 0.5)
	require.NoError(t, err)

	assert.Equal(t, 1, out.Rate)
	assert.True(t, floats.EqualApprox([]float64{1, 0.5, 0.25, 0}, out.Left, tolerance), "left %v", out.Left)
	assert.True(t, floats.EqualApprox([]float64{0, 1, 0.5, 0.25}, out.Right, tolerance), "right %v", out.Right)
}

func TestEcho_DelayRoundsToNearestSample(t *testing.T) {
	t.Parallel()

	// 0.26s at 10 Hz is 2.6 samples, rounded to 3
	s := Mono(10, []float64{1})
	out, err := Echo(s, 1, 0.26, 0.5)
	require.NoError(t, err)

	assert.Len(t, out.Left, 4)
	assert.InDelta(t, 0.5, out.Left[3], tolerance)
	assert.InDelta(t, 0, out.Left[2], tolerance)
}

func TestEcho_Overlapping(t *testing.T) {
	t.Parallel()

	s := Mono(2, []float64{1, 1, 1})
	out, err := Echo(s, 1, 0.5, 0.5)
	require.NoError(t, err)

	assert.True(t, floats.EqualApprox([]float64{1, 1.5, 1.5, 0.5}, out.Left, tolerance), "left %v", out.Left)
}

func TestEcho_NoEchoesIsCopy(t *testing.T) {
	t.Parallel()

	s := Mono(8000, []float64{0.3, -0.3})
	out, err := Echo(s, 0, 1, 0.5)
	require.NoError(t, err)

	assert.Equal(t, s.Left, out.Left)
	out.Left[0] = 0
	assert.InDelta(t, 0.3, s.Left[0], 0)
}

func TestEcho_ZeroDelayStacks(t *testing.T) {
	t.Parallel()

	s := Mono(8000, []float64{0.4})
	out, err := Echo(s, 2, 0, 0.5)
	require.NoError(t, err)

	assert.Len(t, out.Left, 1)
	assert.InDelta(t, 0.4*1.75, out.Left[0], tolerance)
}

func TestEcho_Invalid(t *testing.T) {
	t.Parallel()

	s := Mono(8000, []float64{0})

	_, err := Echo(s, -1, 0.1, 0.5)
	require.ErrorIs(t, err, ErrInvalidEcho)

	_, err = Echo(s, 1, -0.1, 0.5)
	require.ErrorIs(t, err, ErrInvalidEcho)

	_, err = Echo(Sound{}, 1, 0.1, 0.5)
	require.ErrorIs(t, err, ErrInvalidRate)
}

func TestEcho_RejectsUnboundedDelay(t *testing.T) {
	t.Parallel()

	s := Mono(44100, []float64{0.1})

	tests := []struct {
		name      string
		numEchoes int
		delay     float64
		want      error
	}{
		{"nan delay", 2, math.NaN(), ErrInvalidEcho},
		{"positive infinity", 2, math.Inf(1), ErrInvalidEcho},
		{"negative infinity", 2, math.Inf(-1), ErrInvalidEcho},
		{"huge delay", 2, 1e18, ErrEchoTooLong},
		{"huge delay without echoes", 0, 1e18, ErrEchoTooLong},
		{"too many echoes", math.MaxInt, 1, ErrEchoTooLong},
		{"just over the limit", 1, float64(math.MaxInt32) / 44100, ErrEchoTooLong},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				out Sound
				err error
			)
			require.NotPanics(t, func() {
				out, err = Echo(s, tt.numEchoes, tt.delay, 0.5)
			})
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, ErrInvalidEcho)
			assert.Nil(t, out.Left)
		})
	}
}

func TestPan_TwoSamples(t *testing.T) {
	t.Parallel()

	s := New(1, []float64{1, 1}, []float64{1, 1})
	out := Pan(s)

	assert.Equal(t, 1, out.Rate)
	assert.Equal(t, []float64{1, 0}, out.Left)
	assert.Equal(t, []float64{0, 1}, out.Right)
}

func TestPan_Ramp(t *testing.T) {
	t.Parallel()

	ones := []float64{1, 1, 1, 1, 1}
	out := Pan(New(8000, ones, ones))

	assert.True(t, floats.EqualApprox([]float64{1, 0.75, 0.5, 0.25, 0}, out.Left, tolerance), "left %v", out.Left)
	assert.True(t, floats.EqualApprox([]float64{0, 0.25, 0.5, 0.75, 1}, out.Right, tolerance), "right %v", out.Right)
}

func TestPan_ShortSounds(t *testing.T) {
	t.Parallel()

	single := New(8000, []float64{0.7}, []float64{-0.7})
	out := Pan(single)
	assert.Equal(t, single.Left, out.Left)
	assert.Equal(t, single.Right, out.Right)
	assert.False(t, math.IsNaN(out.Left[0]))

	empty := Pan(Sound{Rate: 8000})
	assert.Empty(t, empty.Left)
	assert.Empty(t, empty.Right)
}

func TestPan_UsesCommonLength(t *testing.T) {
	t.Parallel()

	out := Pan(New(8000, []float64{1, 1, 1}, []float64{1, 1}))
	assert.Len(t, out.Left, 2)
	assert.Len(t, out.Right, 2)
}

func TestRemoveVocals(t *testing.T) {
	t.Parallel()

	s := New(8000, []float64{0.5, 0.25, -0.5}, []float64{0.25, 0.5, 0.5})
	out := RemoveVocals(s)

	assert.Equal(t, 8000, out.Rate)
	assert.Equal(t, []float64{0.25, -0.25, -1}, out.Left)
	assert.Equal(t, out.Left, out.Right)

	out.Left[0] = 0
	assert.InDelta(t, 0.25, out.Right[0], 0, "channels must not share storage")
}

func TestRemoveVocals_CenteredCancels(t *testing.T) {
	t.Parallel()

	samples := ramp(100, -1, 0.02)
	out := RemoveVocals(Mono(44100, samples))

	for i := range out.Left {
		assert.Zero(t, out.Left[i])
		assert.Zero(t, out.Right[i])
	}
}

func TestRemoveVocals_MismatchedLengths(t *testing.T) {
	t.Parallel()

	out := RemoveVocals(New(8000, []float64{1, 1}, []float64{0.5}))
	assert.Equal(t, []float64{0.5}, out.Left)
	assert.Equal(t, []float64{0.5}, out.Right)
}
