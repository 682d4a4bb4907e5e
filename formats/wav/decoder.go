// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/soundfx/audio"
	"github.com/ik5/soundfx/internal/seekbuf"
	"github.com/ik5/soundfx/sound"
	"github.com/ik5/soundfx/utils"
)

const pcmFormat = 1

// pcmReader is the part of wav.Decoder the source needs, so tests can fake it.
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        pcmReader
	format     *goaudio.Format
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
			Format:         s.format,
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
		return n, fmt.Errorf("reading PCM data: %w", err)
	}

	return n, nil
}

// Decoder reads 16-bit PCM WAV data.
type Decoder struct{}

// Decode checks the RIFF/WAVE header and format chunk of r and returns a
// stream over its samples. Readers that cannot seek are buffered in memory
// first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		buf, err := seekbuf.FromReader(r)
		if err != nil {
			return nil, err
		}
		rs = buf
	}

	header := make([]byte, 12)
	if _, err := io.ReadFull(rs, header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if !bytes.Equal(header[:4], []byte("RIFF")) || !bytes.Equal(header[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}

	if _, err := rs.Seek(-int64(len(header)), io.SeekCurrent); err != nil {
		return nil, fmt.Errorf("rewinding WAV header: %w", err)
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	if dec.WavAudioFormat != pcmFormat || dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, fmt.Errorf("%w: format %d, %d channels, %d Hz",
			ErrUnsupportedWavLayout, dec.WavAudioFormat, dec.NumChans, dec.SampleRate)
	}

	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: got %d-bit", ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	return &source{
		dec: dec,
		format: &goaudio.Format{
			NumChannels: int(dec.NumChans),
			SampleRate:  int(dec.SampleRate),
		},
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
	}, nil
}

// ReadSound decodes WAV data from r into a sound.Sound. Mono files fill both
// channels.
func ReadSound(r io.Reader) (sound.Sound, error) {
	src, err := Decoder{}.Decode(r)
	if err != nil {
		return sound.Sound{}, err
	}
	defer src.Close()

	return audio.ReadSound(src)
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (sound.Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		return sound.Sound{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	s, err := ReadSound(f)
	if err != nil {
		return sound.Sound{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	return s, nil
}
