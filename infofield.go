package abc

import (
	"strconv"
	"strings"
)

// handleInfoField applies one information-field line to the parser
// state. inline is true when the field arrived as a mid-body bracketed
// field such as "[K:D]" rather than a header line.
func (p *tuneParser) handleInfoField(field byte, value string, inline bool) error {
	value = strings.TrimSpace(value)

	switch field {
	case 'X':
		n, err := strconv.Atoi(value)
		if err != nil {
			return &TuneStructureError{Reason: "X: field is not an integer: " + value}
		}
		p.tune.ReferenceNumber = n

	case 'T':
		if p.tune.Title == "" {
			p.tune.Title = value
		} else {
			p.tune.Title += "; " + value
		}

	case 'C':
		p.tune.Composers = append(p.tune.Composers, value)
		if p.tune.Artist == "" {
			p.tune.Artist = value
		}

	case 'R':
		// rhythm, tolerated and ignored

	case 'M':
		m, err := parseMeterField(value)
		if err != nil {
			return err
		}
		p.meter = m
		p.tune.TimeSignatures = append(p.tune.TimeSignatures, TimeSignature{
			Numerator:   m.Numerator,
			Denominator: m.Denominator,
			Time:        p.currentTime,
		})

	case 'L':
		if p.noteLengthSet {
			return &MultipleNoteLengthError{ReferenceNumber: p.tune.ReferenceNumber}
		}
		unit, err := parseNoteLengthField(value)
		if err != nil {
			return err
		}
		p.unitNoteLength = unit
		p.noteLengthSet = true

	case 'Q':
		tv, err := parseTempoField(value)
		if err != nil {
			return err
		}
		if !tv.present {
			return nil
		}
		if tv.deferred {
			if inline || p.headerEnded {
				qpm := resolveDeferredTempo(tv.num, p.effectiveUnitNoteLength())
				p.tempoQpm = qpm
				p.tune.Tempos = append(p.tune.Tempos, Tempo{Qpm: qpm, Time: p.currentTime})
			} else {
				p.pending = &pendingTempo{num: tv.num, time: p.currentTime}
			}
			return nil
		}
		p.tempoQpm = tv.qpm
		p.tune.Tempos = append(p.tune.Tempos, Tempo{Qpm: tv.qpm, Time: p.currentTime})

	case 'K':
		acc, key, mode, err := ParseKey(value)
		if err != nil {
			return err
		}
		p.accidentals = acc
		p.resetMeasureAccidentals()
		p.tune.KeySignatures = append(p.tune.KeySignatures, KeySignature{Key: key, Mode: mode, Time: p.currentTime})
		if !inline {
			p.finalizeHeader()
		}

	case 'P':
		return &PartError{Line: p.lineNumber}

	default:
		// tolerated and ignored

	}
	return nil
}
