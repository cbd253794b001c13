package abc

import (
	"regexp"
	"strings"
)

// infoFieldPattern matches a single-letter information field line, e.g.
// "X:1", "T:Cooley's", "K:D". Anything that doesn't match this is tune
// body content, even inside the header, which is how a record with no
// K: line still transitions cleanly into its body.
var infoFieldPattern = regexp.MustCompile(`^([A-Za-z]):\s?(.*)$`)

// classifiedLine is one physical line of a tune record, split into its
// field letter (zero byte if the line is body content) and value.
type classifiedLine struct {
	field byte
	value string
	raw   string
}

func classifyLine(line string) classifiedLine {
	line = stripComment(line)
	if m := infoFieldPattern.FindStringSubmatch(line); m != nil {
		return classifiedLine{field: m[1][0], value: m[2], raw: line}
	}
	return classifiedLine{raw: line}
}

// stripComment removes a trailing "% ..." comment from a line, whether
// it is an information field or tune body content.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '%'); i >= 0 {
		return line[:i]
	}
	return line
}

// noteLetterPitchClass maps an upper or lower-case note letter to its
// pitch class. The octave is not part of the result: computeMidiPitch
// places upper-case letters in the octave starting at middle C (MIDI 60)
// and lower-case letters one octave higher.
func noteLetterPitchClass(letter byte) (pitchClass, bool) {
	return classOf(upper(letter))
}

// semitoneFromC gives the semitone offset from C for each natural pitch
// class, used to compute absolute MIDI pitch numbers.
var semitoneFromC = map[pitchClass]int{
	pcC: 0, pcD: 2, pcE: 4, pcF: 5, pcG: 7, pcA: 9, pcB: 11,
}

// isDecorationLetter reports whether b is an upper-case ornament letter
// outside the A-G note range (e.g. H, T, M, used as single-character
// decorations such as fermata or trill markers).
func isDecorationLetter(b byte) bool {
	if b < 'H' || b > 'Z' {
		return false
	}
	_, isNote := classOf(b)
	return !isNote
}
