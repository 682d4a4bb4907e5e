// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var ErrNotMP3Stream = errors.New("not an MP3 stream")
