// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ik5/soundfx/sound"
)

// SoundSource streams a sound.Sound as interleaved stereo. Only the first
// Frames() samples of each channel are streamed.
type SoundSource struct {
	snd    sound.Sound
	frames int
	pos    int
}

func NewSoundSource(s sound.Sound) *SoundSource {
	return &SoundSource{snd: s, frames: s.Frames()}
}

func (s *SoundSource) SampleRate() int { return s.snd.Rate }
func (s *SoundSource) Channels() int   { return 2 }
func (s *SoundSource) BufSize() int    { return 4096 }
func (s *SoundSource) Close() error    { return nil }

// Rewind restarts the stream from the first frame.
func (s *SoundSource) Rewind() { s.pos = 0 }

func (s *SoundSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}

	if s.pos >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/2, s.frames-s.pos)
	for f := 0; f < n; f++ {
		dst[2*f] = float32(s.snd.Left[s.pos+f])
		dst[2*f+1] = float32(s.snd.Right[s.pos+f])
	}
	s.pos += n

	if s.pos >= s.frames {
		return 2 * n, io.EOF
	}

	return 2 * n, nil
}
