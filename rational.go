package abc

import "math/big"

// durationSeconds converts a note's length multiplier (e.g. 1, 3/2, 1/8),
// expressed relative to the tune's unit note length, into a duration in
// seconds at the given tempo in quarter notes per minute.
//
// A whole note lasts 4 beats, so seconds = multiplier * unit * 4 * (60/qpm).
// The multiplier*unit product is kept as an exact big.Rat until the very
// last step, so chains of broken-rhythm and tuplet scaling never
// accumulate floating point drift.
func durationSeconds(multiplier, unit *big.Rat, qpm float64) float64 {
	r := new(big.Rat).Mul(multiplier, unit)
	r.Mul(r, big.NewRat(4, 1))
	beats, _ := r.Float64()
	return beats * (60 / qpm)
}

// brokenRightMultiplier returns the duration multiplier applied to the
// note on the right side of a broken-rhythm operator repeated n times
// (n=1 for ">" or "<", n=2 for ">>" or "<<", etc).
func brokenRightMultiplier(n int) *big.Rat {
	denom := new(big.Int).Lsh(big.NewInt(1), uint(n))
	return new(big.Rat).SetFrac(big.NewInt(1), denom)
}

// brokenLeftMultiplier returns the duration multiplier applied to the
// note on the left side of a broken-rhythm operator, which together with
// its matching right multiplier must sum to 2 (the pair still spans two
// unit note lengths in total).
func brokenLeftMultiplier(n int) *big.Rat {
	return new(big.Rat).Sub(big.NewRat(2, 1), brokenRightMultiplier(n))
}
