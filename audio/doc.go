// SPDX-License-Identifier: EPL-2.0

// Package audio connects streaming decoders to in-memory sounds.
//
// Decoders in the formats/ subpackages produce a Source, a pull-based
// stream of interleaved float32 samples. This package turns a Source into a
// sound.Sound and back, and provides the stream processors the rest of the
// module needs:
//   - ReadSound drains a Source into a sound.Sound
//   - SoundSource streams a sound.Sound as interleaved stereo
//   - Resampler converts a Source to another sample rate
//   - MonoMixer averages a multi-channel Source down to mono
//   - Registry finds a Decoder by format name or file extension
//
// # Reading a Sound
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	s, err := audio.ReadSound(src)
//
// Mono sources fill both channels of the result with the same samples.
//
// # Changing the Sample Rate
//
//	res := audio.NewResampler(audio.NewSoundSource(s), 16000)
//	resampled, err := audio.ReadSound(res)
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Lookup("take1.WAV")
//
// # End of Stream
//
// ReadSamples returns io.EOF once no more data is available, possibly
// together with the final samples:
//
//	for {
//	    n, err := src.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
