// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF files into an audio.Source using
// github.com/go-audio/aiff.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	s, err := audio.ReadSound(src)
//
// Files with any other bit depth fail with ErrOnlyPCM16bitSupported.
package aiff
