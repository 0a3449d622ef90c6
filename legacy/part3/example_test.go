package part3_test

import (
	"fmt"

	"github.com/ciembor/iso-1996/legacy/part3"
)

func ExampleTimeWeightedAverage() {
	// Eight working hours at 70 dB and sixteen quieter hours at 60 dB.
	periods := []part3.PeriodLevel{
		{Level: 70, Duration: 8},
		{Level: 60, Duration: 16},
	}
	fmt.Printf("%.1f dB\n", part3.TimeWeightedAverage(periods))

	// Output:
	// 66.0 dB
}

func ExampleTonalAdjustment() {
	// A tone 12 dB above its masking background falls in the 10..14 dB
	// table row.
	fmt.Printf("%.0f dB\n", part3.TonalAdjustment(12))

	// Output:
	// 5 dB
}
