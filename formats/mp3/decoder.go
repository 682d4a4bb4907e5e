// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/soundfx/audio"
	"github.com/ik5/soundfx/utils"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels       = 2
	bytesPerSample = 2
)

// pcmStream is the part of gomp3.Decoder the source needs, so tests can fake
// it.
type pcmStream interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        pcmStream
	sampleRate int
	buf        []byte
	// odd trailing byte from the previous Read
	carry []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * bytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	k := copy(s.buf, s.carry)
	s.carry = s.carry[:0]

	n, err := s.dec.Read(s.buf[k:])
	n += k

	samples := n / bytesPerSample
	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerSample:]))
		dst[i] = utils.PCM16ToFloat(v)
	}
	s.carry = append(s.carry, s.buf[samples*bytesPerSample:n]...)

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("decoding MP3 frames: %w", err)
	}

	return samples, err
}

// Decoder reads MP3 streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3Stream, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
