// SPDX-License-Identifier: EPL-2.0

package reader_test

import (
	"fmt"

	"github.com/ik5/pcmaudio/reader"
	"github.com/ik5/pcmaudio/wave"
)

func ExampleWaveReader() {
	// A 4-frame mono clip at 8 kHz, played into a 16 kHz stereo stream.
	asset, err := wave.FromInts(8000, 16, 1, []int{0, 100, 200, 300})
	if err != nil {
		fmt.Println(err)
		return
	}

	r := reader.NewWaveReader(asset, 0)
	r.SetTargetSamplesPerSec(16000)

	for tick := 0; !r.IsCompleted(); tick++ {
		if tick%4 == 0 {
			fmt.Printf("tick %2d: %v\n", tick, int32(r.Read())>>16)
		}
		r.Next()
	}

	// Output:
	// tick  0: 0
	// tick  4: 100
	// tick  8: 200
	// tick 12: 300
}

func ExampleSilentReader() {
	s := reader.NewSilentReader(1000, 5)

	ticks := 0
	for !s.IsCompleted() {
		s.Next()
		ticks++
	}
	fmt.Println(ticks)

	// Output:
	// 10
}
