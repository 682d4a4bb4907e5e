// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/soundfx/audio"
	"github.com/ik5/soundfx/internal/seekbuf"
	"github.com/ik5/soundfx/utils"
)

// pcmReader is the part of aiff.Decoder the source needs, so tests can fake
// it.
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        pcmReader
	sampleRate int
	channels   int
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.dec.Format(),
			SourceBitDepth: 16,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	for i := 0; i < n; i++ {
		dst[i] = utils.PCM16ToFloat(int16(s.intBuf.Data[i]))
	}

	switch {
	case errors.Is(err, io.EOF), err == nil && n < len(dst):
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("reading AIFF sound data: %w", err)
	}

	return n, nil
}

// Decoder reads 16-bit PCM AIFF data.
type Decoder struct{}

// Decode validates r as an AIFF file and returns a stream over its samples.
// go-audio/aiff needs to seek, so plain readers are buffered in memory.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		buf, err := seekbuf.FromReader(r)
		if err != nil {
			return nil, err
		}
		rs = buf
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: got %d-bit", ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
	}, nil
}
