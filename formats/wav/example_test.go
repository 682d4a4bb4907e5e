// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/soundfx/formats/wav"
	"github.com/ik5/soundfx/sound"
)

// Example_roundTrip encodes a sound and reads it back.
func Example_roundTrip() {
	s := sound.New(8000, []float64{0.5, -0.5}, []float64{0, 1})

	var buf bytes.Buffer
	if err := wav.Encode(&buf, s); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("bytes:", buf.Len())

	out, err := wav.ReadSound(&buf)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("rate:", out.Rate)
	fmt.Printf("left: %.4f\n", out.Left)
	fmt.Printf("right: %.4f\n", out.Right)
	// Output:
	// bytes: 52
	// rate: 8000
	// left: [0.5000 -0.5000]
	// right: [0.0000 1.0000]
}
