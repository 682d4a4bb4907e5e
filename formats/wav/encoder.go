// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/soundfx/internal/seekbuf"
	"github.com/ik5/soundfx/sound"
	"github.com/ik5/soundfx/utils"
)

const (
	outChannels = 2
	outBitDepth = 16

	// frames converted per encoder write
	chunkFrames = 4096
)

// Encode writes s to w as a stereo 16-bit PCM WAV at s.Rate. Samples are
// clamped to [-1,1], scaled by 2^15-1 and rounded. Only the first Frames()
// samples of each channel are written.
//
// The WAV header is patched after the samples, so writers that cannot seek
// receive the file in one write once it is complete.
func Encode(w io.Writer, s sound.Sound) error {
	if s.Rate <= 0 {
		return fmt.Errorf("%w: got %d", sound.ErrInvalidRate, s.Rate)
	}

	if ws, ok := w.(io.WriteSeeker); ok {
		return encode(ws, s)
	}

	var buf seekbuf.Buffer
	if err := encode(&buf, s); err != nil {
		return err
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing WAV data: %w", err)
	}

	return nil
}

func encode(ws io.WriteSeeker, s sound.Sound) error {
	enc := gowav.NewEncoder(ws, s.Rate, outBitDepth, outChannels, pcmFormat)

	frames := s.Frames()
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: outChannels,
			SampleRate:  s.Rate,
		},
		Data:           make([]int, 0, outChannels*min(frames, chunkFrames)),
		SourceBitDepth: outBitDepth,
	}

	// an empty write still emits the header and data chunk
	for start := 0; start < frames || start == 0; start += chunkFrames {
		end := min(start+chunkFrames, frames)

		buf.Data = buf.Data[:0]
		for i := start; i < end; i++ {
			buf.Data = append(buf.Data,
				int(utils.FloatToPCM16(s.Left[i])),
				int(utils.FloatToPCM16(s.Right[i])),
			)
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("encoding samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing WAV header: %w", err)
	}

	return nil
}

// WriteFile encodes s into a new WAV file at path, replacing any existing
// file.
func WriteFile(path string, s sound.Sound) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err := Encode(f, s); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return nil
}
