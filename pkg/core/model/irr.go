package model

import "math"

// Bracket endpoints scanned for a sign change of NPV(r). The lower end sits
// just above -100% where the discount factor blows up; the upper end covers
// absurdly profitable series (10,000% per period).
var irrBrackets = []float64{
	-0.9999, -0.99, -0.9, -0.75, -0.5, -0.25, -0.1, -0.05,
	0, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 25, 100,
}

const (
	irrTolerance  = 1e-9
	irrMaxBisects = 200
)

// InternalRateOfReturn solves for the per-period rate r at which the series'
// net present value is zero. It returns ok=false when the series cannot have
// a real root: all flows of one sign (no sign change), or no bracketable
// zero crossing of NPV(r) on (-1, 100]. Callers must treat ok=false as
// "undefined", never as a zero rate.
func InternalRateOfReturn(flows []float64) (float64, bool) {
	if len(flows) < 2 {
		return 0, false
	}

	// A root requires at least one positive and one negative flow.
	hasPos, hasNeg := false, false
	for _, cf := range flows {
		if cf > 0 {
			hasPos = true
		}
		if cf < 0 {
			hasNeg = true
		}
	}
	if !hasPos || !hasNeg {
		return 0, false
	}

	f := func(r float64) float64 { return NetPresentValue(flows, r) }

	// 1. Scan for a bracket
	lo, hi := 0.0, 0.0
	found := false
	prev := f(irrBrackets[0])
	for i := 1; i < len(irrBrackets); i++ {
		cur := f(irrBrackets[i])
		if math.IsNaN(prev) || math.IsInf(prev, 0) {
			prev = cur
			continue
		}
		if prev == 0 {
			return irrBrackets[i-1], true
		}
		if !math.IsNaN(cur) && !math.IsInf(cur, 0) && prev*cur < 0 {
			lo, hi = irrBrackets[i-1], irrBrackets[i]
			found = true
			break
		}
		prev = cur
	}
	if !found {
		return 0, false
	}

	// 2. Bisect
	fLo := f(lo)
	for i := 0; i < irrMaxBisects; i++ {
		mid := (lo + hi) / 2
		fMid := f(mid)
		if math.Abs(fMid) < irrTolerance || (hi-lo)/2 < irrTolerance {
			return mid, true
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo = mid
			fLo = fMid
		}
	}
	return (lo + hi) / 2, true
}
