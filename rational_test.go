package abc

import (
	"math/big"
	"testing"
)

// TestBrokenRhythmLawHolds exercises invariant 4: for any pair a>b (or
// a<b), the two note durations still sum to 2 unit durations.
func TestBrokenRhythmLawHolds(t *testing.T) {
	for n := 1; n <= 3; n++ {
		left := brokenLeftMultiplier(n)
		right := brokenRightMultiplier(n)
		sum := new(big.Rat).Add(left, right)
		if sum.Cmp(big.NewRat(2, 1)) != 0 {
			t.Errorf("n=%d: left+right = %v, want 2", n, sum)
		}
	}

	wantLeft := []string{"3/2", "7/4", "15/8"}
	wantRight := []string{"1/2", "1/4", "1/8"}
	for i, n := range []int{1, 2, 3} {
		if got := brokenLeftMultiplier(n).RatString(); got != wantLeft[i] {
			t.Errorf("brokenLeftMultiplier(%d) = %v, want %v", n, got, wantLeft[i])
		}
		if got := brokenRightMultiplier(n).RatString(); got != wantRight[i] {
			t.Errorf("brokenRightMultiplier(%d) = %v, want %v", n, got, wantRight[i])
		}
	}
}

// TestDurationSecondsSlashForms exercises S6's slash-duration arithmetic
// directly against the rational helper.
func TestDurationSecondsSlashForms(t *testing.T) {
	unit := big.NewRat(1, 4)
	qpm := 120.0

	cases := []struct {
		multiplier *big.Rat
		want       float64
	}{
		{big.NewRat(1, 1), 0.5},
		{big.NewRat(1, 2), 0.25},
		{big.NewRat(1, 4), 0.125},
		{big.NewRat(1, 8), 0.0625},
		{big.NewRat(1, 16), 0.03125},
	}
	for _, c := range cases {
		got := durationSeconds(c.multiplier, unit, qpm)
		if !almostEqual(got, c.want) {
			t.Errorf("durationSeconds(%v) = %v, want %v", c.multiplier, got, c.want)
		}
	}
}

func TestScanDurationTokens(t *testing.T) {
	cases := []struct {
		input string
		want  string
		next  int
	}{
		{"2", "2", 1},
		{"/", "1/2", 1},
		{"//", "1/4", 2},
		{"///", "1/8", 3},
		{"/3", "1/3", 2},
		{"3/2", "3/2", 3},
		{"", "", 0},
	}
	for _, c := range cases {
		pos := 0
		mult, has := scanDuration(c.input, &pos)
		if c.input == "" {
			if has {
				t.Errorf("scanDuration(%q) has = true, want false", c.input)
			}
			continue
		}
		if !has {
			t.Fatalf("scanDuration(%q) has = false", c.input)
		}
		if mult.RatString() != c.want {
			t.Errorf("scanDuration(%q) = %v, want %v", c.input, mult.RatString(), c.want)
		}
		if pos != c.next {
			t.Errorf("scanDuration(%q) consumed %d bytes, want %d", c.input, pos, c.next)
		}
	}
}
