// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrInvalidFormat  = errors.New("source must have a positive rate and at least one channel")
)
