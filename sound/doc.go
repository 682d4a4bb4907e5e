// SPDX-License-Identifier: EPL-2.0

// Package sound holds an in-memory stereo sound and the effects that
// transform it.
//
// A Sound is a sample rate plus two channels of float64 samples in the range
// [-1.0, 1.0]:
//
//	s := sound.New(8000, left, right)
//
// # Effects
//
// Every effect reads its input and returns a freshly allocated Sound. Inputs
// are never modified and outputs never share backing arrays with them:
//
//	rev := sound.Reverse(s)
//	panned := sound.Pan(s)
//	karaoke := sound.RemoveVocals(s)
//
// Effects that can fail return an error alongside the result:
//
//	mixed, err := sound.Mix(a, b, 0.7)
//	if errors.Is(err, sound.ErrRateMismatch) {
//	    // resample one side first
//	}
//
//	echoed, err := sound.Echo(s, 3, 0.25, 0.6)
//
// # Channel Lengths
//
// Well-formed sounds have channels of equal length. Effects that pair left
// and right samples by index (Mix, Pan, RemoveVocals) work on the first
// Frames() samples and drop the rest of the longer channel.
package sound
