// Package scoring computes the three checkpoint scores: pacing,
// tax planning, and risk of failure. Every function is pure; missing
// answers take the documented defaults and no input can fail.
package scoring

import "math"

// assumedCurrentAge is the fixed age used everywhere a timeline is
// derived from the stated retirement age. The quiz does not collect a
// current age; changing this constant shifts every score threshold.
const assumedCurrentAge = 40

// FutureValue is the spreadsheet FV function: the value of an investment
// after nper periods at the given rate, with payment pmt per period and
// present value pv. due is 1 when payments fall at the start of each
// period, 0 at the end (the engine always passes 0).
func FutureValue(rate float64, nper int, pmt, pv float64, due int) float64 {
	if rate == 0 {
		return -(pv + pmt*float64(nper))
	}

	growth := math.Pow(1+rate, float64(nper))
	fv := -pv * growth
	fv -= pmt * (1 + rate*float64(due)) * (growth - 1) / rate
	return fv
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
