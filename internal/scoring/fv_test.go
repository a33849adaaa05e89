package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFutureValue(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		nper int
		pmt  float64
		pv   float64
		due  int
		want float64
	}{
		{"zero rate sums contributions", 0, 10, -100, -1000, 0, 2000},
		{"compounding end of period", 0.05, 10, -100, -1000, 0, 2886.68},
		{"compounding start of period", 0.05, 10, -100, -1000, 1, 2949.57},
		{"no periods returns present value", 0.05, 0, -100, -1000, 0, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FutureValue(tt.rate, tt.nper, tt.pmt, tt.pv, tt.due)
			assert.InDelta(t, tt.want, got, 0.01)
		})
	}
}
