// SPDX-License-Identifier: EPL-2.0

// Package soundfx applies simple effects to recorded sounds.
//
// The effects live in the sound subpackage and work on an in-memory
// sound.Sound. This package adds the file handling around them:
//
//	s, err := soundfx.Load("sounds/mystery.wav")
//	if err != nil {
//	    return err
//	}
//	err = soundfx.Save("mystery_reversed.wav", sound.Reverse(s))
//
// # Effects
//
//   - sound.Reverse plays a sound backwards
//   - sound.Mix cross-fades two sounds of the same rate
//   - sound.Echo adds decaying delayed copies
//   - sound.Pan sweeps a sound from the left speaker to the right
//   - sound.RemoveVocals cancels center-panned content
//
// # Supported Formats
//
// Load picks a decoder by file extension:
//   - WAV (PCM 16-bit) via formats/wav
//   - AIFF (PCM 16-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// Save always writes stereo 16-bit PCM WAV.
//
// # Sample Rates
//
// sound.Mix refuses sounds with different rates. Conform resamples a sound
// first, and MixConformed does both steps:
//
//	voice, _ := soundfx.Load("voice.wav")   // 16 kHz
//	music, _ := soundfx.Load("music.ogg")   // 44.1 kHz
//	mixed, err := soundfx.MixConformed(music, voice, 0.6)
//
// See the individual subpackages for more detailed documentation.
package soundfx
