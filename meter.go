package abc

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Meter is a parsed M: field value.
type Meter struct {
	Numerator   int
	Denominator int
}

// parseMeterField parses an M: field value. "C" means common time
// (4/4), "C|" means cut time (2/2), and an empty value also falls back
// to 4/4 per abc convention.
func parseMeterField(value string) (*Meter, error) {
	value = strings.TrimSpace(value)
	switch value {
	case "", "C":
		return &Meter{4, 4}, nil
	case "C|":
		return &Meter{2, 2}, nil
	}

	parts := strings.SplitN(value, "/", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("abc: invalid meter %q", value)
	}
	n, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	d, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || d == 0 {
		return nil, fmt.Errorf("abc: invalid meter %q", value)
	}
	return &Meter{n, d}, nil
}

// defaultUnitNoteLength implements the rule: when no L: field has been
// given, the unit note length is 1/16 if the meter is less than 3/4,
// otherwise 1/8.
func defaultUnitNoteLength(m *Meter) *big.Rat {
	ratio := big.NewRat(int64(m.Numerator), int64(m.Denominator))
	threshold := big.NewRat(3, 4)
	if ratio.Cmp(threshold) < 0 {
		return big.NewRat(1, 16)
	}
	return big.NewRat(1, 8)
}

// isCompoundMeter reports whether a meter is conventionally treated as
// compound time (6/8, 9/8, 12/8, ...), which changes the default tuplet
// ratio for 5, 7 and 9-note tuplets.
func isCompoundMeter(m *Meter) bool {
	return m.Denominator == 8 && m.Numerator > 3 && m.Numerator%3 == 0
}

// parseNoteLengthField parses an L: field value, e.g. "1/8".
func parseNoteLengthField(value string) (*big.Rat, error) {
	value = strings.TrimSpace(value)
	parts := strings.SplitN(value, "/", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("abc: invalid note length %q", value)
	}
	n, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	d, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || d == 0 || n == 0 {
		return nil, fmt.Errorf("abc: invalid note length %q", value)
	}
	return big.NewRat(int64(n), int64(d)), nil
}
