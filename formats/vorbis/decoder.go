// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/soundfx/audio"
	"github.com/jfreymuth/oggvorbis"
)

// frameReader is the part of oggvorbis.Reader the source needs, so tests can
// fake it.
type frameReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec      frameReader
	channels int
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

// ReadSamples decodes straight into dst. oggvorbis fills whole frames of
// interleaved float32 and reports how many samples it wrote.
func (s *source) ReadSamples(dst []float32) (int, error) {
	usable := len(dst) - len(dst)%s.channels
	if usable == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:usable])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("decoding Vorbis packets: %w", err)
	}

	return n, err
}

// Decoder reads Ogg Vorbis streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisStream, err)
	}

	return &source{
		dec:      dec,
		channels: dec.Channels(),
	}, nil
}
