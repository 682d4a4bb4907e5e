// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatmullRom_Endpoints(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.25, CatmullRom(-1, 0.25, 0.75, 2, 0), 0)
	assert.InDelta(t, 0.75, CatmullRom(-1, 0.25, 0.75, 2, 1), 1e-6)
}

func TestCatmullRom_Linear(t *testing.T) {
	t.Parallel()

	// a straight line is reproduced exactly
	for _, x := range []float32{0.1, 0.25, 0.5, 0.9} {
		assert.InDelta(t, 1+x, CatmullRom(0, 1, 2, 3, x), 1e-6, "x=%v", x)
	}
}

func TestCatmullRom_Constant(t *testing.T) {
	t.Parallel()

	for _, x := range []float32{0, 0.3, 0.7, 1} {
		assert.InDelta(t, -0.4, CatmullRom(-0.4, -0.4, -0.4, -0.4, x), 1e-6)
	}
}
