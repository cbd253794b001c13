package abc

// TicksPerQuarter is the fixed MIDI-style tick resolution every Tune's
// note timing is implicitly expressed at when exported. It never varies
// per tune.
const TicksPerQuarter = 220

// SourceType identifies how the original material was captured.
type SourceType int

const (
	SourceTypeUnknown SourceType = iota
	SourceTypeScoreBased
)

// EncodingType identifies the notation the source text was written in.
type EncodingType int

const (
	EncodingTypeUnknown EncodingType = iota
	EncodingTypeABC
)

// ParserTag identifies which parser produced a Tune, for downstream
// consumers that aggregate tunes from more than one source format.
type ParserTag int

const (
	ParserUnknown ParserTag = iota
	ParserABC
)

// SourceInfo records provenance metadata carried on every parsed Tune.
type SourceInfo struct {
	SourceType   SourceType
	EncodingType EncodingType
	Parser       ParserTag
}

// NoteEvent is a single sounding pitch with absolute start and end times
// in seconds from the start of the tune.
type NoteEvent struct {
	Pitch     int
	Velocity  int
	StartTime float64
	EndTime   float64
}

// TimeSignature is a meter change taking effect at Time seconds.
type TimeSignature struct {
	Numerator   int
	Denominator int
	Time        float64
}

// Tempo is a tempo change, in quarter notes per minute, taking effect at
// Time seconds.
type Tempo struct {
	Qpm  float64
	Time float64
}

// Key is the canonical tonic spelling of a key signature, e.g. "C",
// "F#", "Bb".
type Key string

// Mode names the scale mode a key signature was written in. Ionian and
// Aeolian collapse to Major and Minor respectively at parse time.
type Mode string

const (
	ModeMajor      Mode = "MAJOR"
	ModeMinor      Mode = "MINOR"
	ModeDorian     Mode = "DORIAN"
	ModePhrygian   Mode = "PHRYGIAN"
	ModeLydian     Mode = "LYDIAN"
	ModeMixolydian Mode = "MIXOLYDIAN"
	ModeLocrian    Mode = "LOCRIAN"
)

// KeySignature is a key change taking effect at Time seconds.
type KeySignature struct {
	Key  Key
	Mode Mode
	Time float64
}

// TextAnnotation is an opaque quoted-string annotation captured at its
// position in the tune without affecting timing.
type TextAnnotation struct {
	Text string
	Time float64
}

// Tune is the structured, timestamped result of parsing one ABC tune
// record. Notes, KeySignatures, TimeSignatures and Tempos are all kept
// in non-decreasing Time/StartTime order.
type Tune struct {
	ReferenceNumber int
	Title           string
	Composers       []string
	Artist          string

	KeySignatures   []KeySignature
	TimeSignatures  []TimeSignature
	Tempos          []Tempo
	Notes           []NoteEvent
	TextAnnotations []TextAnnotation

	SourceInfo      SourceInfo
	TicksPerQuarter int
}

func newTune(referenceNumber int) *Tune {
	return &Tune{
		ReferenceNumber: referenceNumber,
		SourceInfo: SourceInfo{
			SourceType:   SourceTypeScoreBased,
			EncodingType: EncodingTypeABC,
			Parser:       ParserABC,
		},
		TicksPerQuarter: TicksPerQuarter,
	}
}
