// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"errors"
	"fmt"
)

var (
	// ErrRateMismatch is returned when two sounds with different sample
	// rates are combined.
	ErrRateMismatch = errors.New("sample rates differ")

	// ErrInvalidRate indicates a sample rate that is not positive.
	ErrInvalidRate = errors.New("sample rate must be positive")

	// ErrChannelMismatch indicates left and right channels of different
	// lengths.
	ErrChannelMismatch = errors.New("left and right channels differ in length")

	// ErrInvalidEcho indicates a negative echo count, or a delay that is
	// negative or not finite.
	ErrInvalidEcho = errors.New("echo count and delay must be finite and not negative")

	// ErrEchoTooLong wraps ErrInvalidEcho for echoes that would make the
	// output too long to allocate.
	ErrEchoTooLong = fmt.Errorf("%w: output too long", ErrInvalidEcho)
)
