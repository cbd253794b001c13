package abc

import (
	"fmt"
	"strings"
)

// pitchClass indexes Accidentals alphabetically, A through G, matching
// how abc key signatures are conventionally tabulated.
type pitchClass int

const (
	pcA pitchClass = iota
	pcB
	pcC
	pcD
	pcE
	pcF
	pcG
)

func classOf(letter byte) (pitchClass, bool) {
	switch letter {
	case 'A':
		return pcA, true
	case 'B':
		return pcB, true
	case 'C':
		return pcC, true
	case 'D':
		return pcD, true
	case 'E':
		return pcE, true
	case 'F':
		return pcF, true
	case 'G':
		return pcG, true
	}
	return 0, false
}

// Accidentals holds a semitone offset (-1, 0, +1) for each of the seven
// natural pitch classes, indexed A through G.
type Accidentals [7]int

// naturalFifths gives each natural note's position on the circle of
// fifths relative to C.
var naturalFifths = map[byte]int{'F': -1, 'C': 0, 'G': 1, 'D': 2, 'A': 3, 'E': 4, 'B': 5}

// sharpOrder and flatOrder are the standard key-signature accidental
// orders: the nth sharp/flat added as the circle of fifths position
// moves away from C.
var sharpOrder = []byte{'F', 'C', 'G', 'D', 'A', 'E', 'B'}
var flatOrder = []byte{'B', 'E', 'A', 'D', 'G', 'C', 'F'}

// modeShift is each mode's position relative to major on the circle of
// fifths: Lydian is a fifth brighter, Locrian five fifths darker.
var modeShift = map[Mode]int{
	ModeLydian:     1,
	ModeMajor:      0,
	ModeMixolydian: -1,
	ModeDorian:     -2,
	ModeMinor:      -3,
	ModePhrygian:   -4,
	ModeLocrian:    -5,
}

type modeKeyword struct {
	word string
	mode Mode
}

// modeKeywords is ordered longest-match-wins is not required here since
// every prefix collision (e.g. "m" vs "maj" vs "mix") is resolved by
// trying the longer, more specific spellings first.
var modeKeywords = []modeKeyword{
	{"mixolydian", ModeMixolydian},
	{"phrygian", ModePhrygian},
	{"aeolian", ModeMinor},
	{"locrian", ModeLocrian},
	{"dorian", ModeDorian},
	{"lydian", ModeLydian},
	{"ionian", ModeMajor},
	{"major", ModeMajor},
	{"minor", ModeMinor},
	{"maj", ModeMajor},
	{"min", ModeMinor},
	{"mix", ModeMixolydian},
	{"dor", ModeDorian},
	{"phr", ModePhrygian},
	{"lyd", ModeLydian},
	{"loc", ModeLocrian},
	{"m", ModeMinor},
}

// ParseKey parses an abc K: field value (without the "K:" prefix, e.g.
// "F# mixolydian" or "D exp _b _e ^f") into the resulting per-pitch-class
// accidentals, the canonical tonic spelling, and the mode.
func ParseKey(designator string) (Accidentals, Key, Mode, error) {
	s := strings.TrimSpace(designator)
	if s == "" {
		return Accidentals{}, "", "", &KeyParseError{Designator: designator, Reason: "missing tonic"}
	}

	tonic := upper(s[0])
	if _, ok := classOf(tonic); !ok {
		return Accidentals{}, "", "", &KeyParseError{Designator: designator, Reason: "missing tonic"}
	}

	idx := 1
	tonicAcc := 0
	tonicSuffix := ""
	if idx < len(s) {
		switch s[idx] {
		case '#':
			tonicAcc = 1
			tonicSuffix = "#"
			idx++
		case 'b':
			tonicAcc = -1
			tonicSuffix = "b"
			idx++
		}
	}
	rest := strings.TrimLeft(s[idx:], " \t")

	mode := ModeMajor
	for _, kw := range modeKeywords {
		if strings.HasPrefix(strings.ToLower(rest), kw.word) {
			mode = kw.mode
			rest = strings.TrimLeft(rest[len(kw.word):], " \t")
			break
		}
	}

	explicitOnly := false
	lower := strings.ToLower(rest)
	if lower == "exp" || strings.HasPrefix(lower, "exp ") || strings.HasPrefix(lower, "exp\t") {
		explicitOnly = true
		rest = strings.TrimLeft(rest[3:], " \t")
	}

	var acc Accidentals
	if !explicitOnly {
		fifths := naturalFifths[tonic] + 7*tonicAcc + modeShift[mode]
		acc = accidentalsFromFifths(fifths)
	}

	for _, tok := range strings.Fields(rest) {
		offset, letter, err := parseExplicitAccidental(tok)
		if err != nil {
			return Accidentals{}, "", "", &KeyParseError{Designator: designator, Reason: fmt.Sprintf("unrecognized token %q", tok)}
		}
		pc, _ := classOf(letter)
		acc[pc] = offset
	}

	key := Key(string(tonic) + tonicSuffix)
	return acc, key, mode, nil
}

func accidentalsFromFifths(n int) Accidentals {
	var acc Accidentals
	if n > 0 {
		for i := 0; i < n && i < len(sharpOrder); i++ {
			pc, _ := classOf(sharpOrder[i])
			acc[pc] = 1
		}
	} else if n < 0 {
		for i := 0; i < -n && i < len(flatOrder); i++ {
			pc, _ := classOf(flatOrder[i])
			acc[pc] = -1
		}
	}
	return acc
}

func parseExplicitAccidental(tok string) (int, byte, error) {
	var offset int
	var rest string
	switch {
	case strings.HasPrefix(tok, "^^"):
		offset, rest = 2, tok[2:]
	case strings.HasPrefix(tok, "__"):
		offset, rest = -2, tok[2:]
	case strings.HasPrefix(tok, "^"):
		offset, rest = 1, tok[1:]
	case strings.HasPrefix(tok, "_"):
		offset, rest = -1, tok[1:]
	case strings.HasPrefix(tok, "="):
		offset, rest = 0, tok[1:]
	default:
		return 0, 0, fmt.Errorf("invalid accidental token %q", tok)
	}
	if len(rest) != 1 {
		return 0, 0, fmt.Errorf("invalid accidental token %q", tok)
	}
	letter := upper(rest[0])
	if _, ok := classOf(letter); !ok {
		return 0, 0, fmt.Errorf("invalid accidental token %q", tok)
	}
	return offset, letter, nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 32
	}
	return b
}
