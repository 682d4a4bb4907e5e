// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams into an audio.Source using
// github.com/hajimehoshi/go-mp3.
//
// The decoder always yields stereo at the stream's sample rate; mono MP3s
// come out with the same samples on both channels.
//
//	src, err := mp3.Decoder{}.Decode(file)
package mp3
