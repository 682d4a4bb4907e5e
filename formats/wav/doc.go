// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit PCM WAV files.
//
// Both directions are built on github.com/go-audio/wav.
//
// # Decoding
//
// Decoder implements audio.Decoder and yields float32 samples scaled into
// [-1,1) by dividing by 2^15:
//
//	src, err := wav.Decoder{}.Decode(file)
//
// ReadSound and ReadFile go straight to a sound.Sound. A mono file fills both
// channels:
//
//	s, err := wav.ReadFile("sounds/hello.wav")
//
// Only 16-bit linear PCM is accepted. Other bit depths fail with
// ErrOnlyPCM16bitSupported, compressed or float formats with
// ErrUnsupportedWavLayout, and anything that is not RIFF/WAVE with
// ErrNotWavFile.
//
// # Encoding
//
// Output is always stereo 16-bit PCM at the sound's rate. Samples are
// clamped to [-1,1], scaled by 2^15-1 and rounded:
//
//	err := wav.WriteFile("hello_reversed.wav", sound.Reverse(s))
//
// Encode accepts any io.Writer. Writers that also implement io.Seeker (such
// as *os.File) are written in place; others receive the finished file in a
// single Write.
package wav
