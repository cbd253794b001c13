package abc

import (
	"math/big"
	"strconv"
	"strings"
)

// tempoValue is the parsed form of a Q: field, prior to being resolved
// into a concrete Tempo event. The deprecated bare-number form can't be
// resolved until the tune's final unit note length is known, so it is
// kept unresolved (deferred) until then.
type tempoValue struct {
	present  bool    // false if the field was a label only, e.g. Q:"Allegro"
	deferred bool    // true for the deprecated bare-number form
	num      float64 // deprecated form: beats per minute of the unit note length
	qpm      float64 // resolved quarter notes per minute, when !deferred
}

// parseTempoField parses a Q: field value. Supported forms:
//
//	Q:120                 deprecated: beats (at the tune's eventual unit
//	                       note length) per minute; resolved once the
//	                       header's final unit note length is known.
//	Q:1/4=120              explicit: one quarter note equals 120 per minute.
//	Q:C=100                explicit: literal "C" stands for 1/4.
//	Q:1/4 3/8 1/4 3/8=40    explicit, compound: the note-group on the left
//	                       sums to one unit repeated 40 times per minute.
//	Q:"Allegro"             label only, discarded.
//	Q:"Allegro" 1/4=120     label with an explicit tempo.
func parseTempoField(value string) (tempoValue, error) {
	remaining := stripQuotedLabels(value)
	remaining = strings.TrimSpace(remaining)
	if remaining == "" {
		return tempoValue{present: false}, nil
	}

	eq := strings.Index(remaining, "=")
	if eq < 0 {
		num, err := strconv.ParseFloat(strings.TrimSpace(remaining), 64)
		if err != nil {
			return tempoValue{}, &TempoError{Value: value, Reason: "not a number"}
		}
		return tempoValue{present: true, deferred: true, num: num}, nil
	}

	left := strings.TrimSpace(remaining[:eq])
	right := strings.TrimSpace(remaining[eq+1:])
	bpm, err := strconv.ParseFloat(right, 64)
	if err != nil {
		return tempoValue{}, &TempoError{Value: value, Reason: "invalid beats-per-minute"}
	}

	unit, err := sumNoteLengthGroup(left)
	if err != nil {
		return tempoValue{}, &TempoError{Value: value, Reason: err.Error()}
	}
	unitFloat, _ := unit.Float64()
	return tempoValue{present: true, qpm: bpm * unitFloat * 4}, nil
}

// stripQuotedLabels removes any quoted "..." substrings from a Q: value,
// which abc uses for human-readable tempo labels such as "Allegro".
func stripQuotedLabels(s string) string {
	var b strings.Builder
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' {
			inQuote = !inQuote
			continue
		}
		if !inQuote {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// sumNoteLengthGroup parses the left side of a Q: assignment, which is
// either the literal "C" (1/4), a single fraction, or a space-separated
// list of fractions whose durations are summed (for Q:1/4 3/8 1/4 3/8=40).
func sumNoteLengthGroup(s string) (*big.Rat, error) {
	s = strings.Trim(s, "()")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, &TempoError{Value: s, Reason: "missing note length"}
	}
	total := new(big.Rat)
	for _, tok := range strings.Fields(s) {
		if tok == "C" {
			total.Add(total, big.NewRat(1, 4))
			continue
		}
		parts := strings.SplitN(tok, "/", 2)
		if len(parts) != 2 {
			return nil, &TempoError{Value: tok, Reason: "invalid note length"}
		}
		n, err1 := strconv.Atoi(parts[0])
		d, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || d == 0 {
			return nil, &TempoError{Value: tok, Reason: "invalid note length"}
		}
		total.Add(total, big.NewRat(int64(n), int64(d)))
	}
	return total, nil
}

// resolveDeferredTempo computes the quarter-notes-per-minute value for a
// deprecated bare-number Q: field, once the tune's unit note length is
// finally known.
func resolveDeferredTempo(num float64, unitNoteLength *big.Rat) float64 {
	unitFloat, _ := unitNoteLength.Float64()
	return num * unitFloat * 4
}
