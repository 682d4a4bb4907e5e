// SPDX-License-Identifier: EPL-2.0

package soundfx

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/soundfx/audio"
	"github.com/ik5/soundfx/formats/aiff"
	"github.com/ik5/soundfx/formats/mp3"
	"github.com/ik5/soundfx/formats/vorbis"
	"github.com/ik5/soundfx/formats/wav"
	"github.com/ik5/soundfx/sound"
)

// ErrUnsupportedFormat is returned for inputs no registered decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// DefaultRegistry returns a registry with every decoder in formats/.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

var registry = DefaultRegistry()

// Decode reads a whole stream of the given format ("wav", "mp3", ...) into a
// sound.Sound.
func Decode(r io.Reader, format string) (sound.Sound, error) {
	dec, ok := registry.Get(format)
	if !ok {
		return sound.Sound{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return decodeWith(dec, r)
}

func decodeWith(dec audio.Decoder, r io.Reader) (sound.Sound, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return sound.Sound{}, err
	}
	defer src.Close()

	return audio.ReadSound(src)
}

// Load decodes the file at path, picking the decoder by file extension.
func Load(path string) (sound.Sound, error) {
	dec, ok := registry.Lookup(path)
	if !ok {
		return sound.Sound{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return sound.Sound{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	s, err := decodeWith(dec, f)
	if err != nil {
		return sound.Sound{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	return s, nil
}

// Save writes s to path as a stereo 16-bit WAV file, whatever the extension.
func Save(path string, s sound.Sound) error {
	return wav.WriteFile(path, s)
}

// Conform resamples s to rate. A sound already at rate is returned as a copy.
func Conform(s sound.Sound, rate int) (sound.Sound, error) {
	if rate <= 0 {
		return sound.Sound{}, fmt.Errorf("%w: target %d", sound.ErrInvalidRate, rate)
	}

	if s.Rate == rate {
		return s.Clone(), nil
	}

	if s.Rate <= 0 {
		return sound.Sound{}, fmt.Errorf("%w: source %d", sound.ErrInvalidRate, s.Rate)
	}

	res := audio.NewResampler(audio.NewSoundSource(s), rate)
	defer res.Close()

	out, err := audio.ReadSound(res)
	if err != nil {
		return sound.Sound{}, fmt.Errorf("resampling %d Hz to %d Hz: %w", s.Rate, rate, err)
	}

	return out, nil
}

// MixConformed is sound.Mix after resampling s2 to the rate of s1.
func MixConformed(s1, s2 sound.Sound, p float64) (sound.Sound, error) {
	s2, err := Conform(s2, s1.Rate)
	if err != nil {
		return sound.Sound{}, err
	}

	return sound.Mix(s1, s2, p)
}
