package analytics

import "math"

func round2(val float64) float64 { return math.Round(val*100) / 100 }

func round4(val float64) float64 { return math.Round(val*10000) / 10000 }

// pct is the 0-guarded percentage every ratio field uses: exactly 0 when the
// denominator is 0, never NaN and never an error.
func pct(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return round2(num / den * 100)
}

// ratio2 divides with a 0-guard, rounded to 2 decimals.
func ratio2(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return round2(num / den)
}

// ratio4 divides with a 0-guard, rounded to 4 decimals.
func ratio4(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return round4(num / den)
}

// trendPct is the period-over-period change. Unlike the ratio guards it
// reports nil when the baseline is 0 or absent, distinguishing "no prior
// data" from "no change".
func trendPct(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	v := round2((current - previous) / previous * 100)
	return &v
}
