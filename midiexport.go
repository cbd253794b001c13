package abc

import (
	"fmt"
	"io"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// midiEvent is a MIDI event with an absolute tick time, prior to being
// converted into the delta-time form smf.Track requires.
type midiEvent struct {
	Tick    uint32
	Message smf.Message
}

// MidiExporter renders a parsed Tune to a standard MIDI file. It exists
// only as a reference comparator for tests and as the backing for the
// CLI's -export-midi flag; the parser itself never needs MIDI output.
type MidiExporter struct {
	smf *smf.SMF
}

// NewMidiExporter creates an exporter targeting an SMF format 1 file at
// the tune's fixed tick resolution.
func NewMidiExporter() *MidiExporter {
	s := smf.NewSMF1()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)
	return &MidiExporter{smf: s}
}

// AddTune appends a tempo/meter track and a melody track for tune to the
// exporter's output file.
func (e *MidiExporter) AddTune(tune *Tune) error {
	if tune == nil {
		return fmt.Errorf("abc: cannot export a nil tune")
	}
	e.smf.Add(buildTimingTrack(tune))
	e.smf.Add(buildMelodyTrack(tune))
	return nil
}

// WriteTo finalizes and writes the MIDI file.
func (e *MidiExporter) WriteTo(w io.Writer) error {
	_, err := e.smf.WriteTo(w)
	if err != nil {
		return fmt.Errorf("abc: error writing MIDI file: %w", err)
	}
	return nil
}

func buildTimingTrack(tune *Tune) smf.Track {
	track := smf.Track{}
	name := tune.Title
	if name == "" {
		name = fmt.Sprintf("Tune %d", tune.ReferenceNumber)
	}
	track = append(track, smf.Event{Delta: 0, Message: smf.Message(smf.MetaTrackSequenceName(name))})

	var events []midiEvent
	for _, t := range tune.Tempos {
		tick := secondsToTicks(t.Time, firstQpmAt(tune, t.Time))
		events = append(events, midiEvent{Tick: tick, Message: smf.Message(smf.MetaTempo(t.Qpm))})
	}
	for _, ts := range tune.TimeSignatures {
		tick := secondsToTicks(ts.Time, firstQpmAt(tune, ts.Time))
		events = append(events, midiEvent{Tick: tick, Message: smf.Message(smf.MetaTimeSig(uint8(ts.Numerator), uint8(ts.Denominator), 24, 8))})
	}
	if len(tune.Tempos) == 0 {
		events = append(events, midiEvent{Tick: 0, Message: smf.Message(smf.MetaTempo(defaultQpm))})
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Tick < events[j].Tick })
	track = appendRelativeDeltas(track, events)
	track = append(track, smf.Event{Delta: 0, Message: smf.EOT})
	return track
}

func buildMelodyTrack(tune *Tune) smf.Track {
	track := smf.Track{}
	track = append(track, smf.Event{Delta: 0, Message: smf.Message(smf.MetaTrackSequenceName("Melody"))})
	track = append(track, smf.Event{Delta: 0, Message: smf.Message(midi.ProgramChange(0, 0))})

	var events []midiEvent
	for _, n := range tune.Notes {
		qpmOn := firstQpmAt(tune, n.StartTime)
		qpmOff := firstQpmAt(tune, n.EndTime)
		events = append(events, midiEvent{Tick: secondsToTicks(n.StartTime, qpmOn), Message: smf.Message(midi.NoteOn(0, uint8(n.Pitch), uint8(n.Velocity)))})
		events = append(events, midiEvent{Tick: secondsToTicks(n.EndTime, qpmOff), Message: smf.Message(midi.NoteOff(0, uint8(n.Pitch)))})
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Tick < events[j].Tick })
	track = appendRelativeDeltas(track, events)
	track = append(track, smf.Event{Delta: 0, Message: smf.EOT})
	return track
}

func appendRelativeDeltas(track smf.Track, events []midiEvent) smf.Track {
	var lastTick uint32
	for _, ev := range events {
		delta := ev.Tick - lastTick
		track = append(track, smf.Event{Delta: delta, Message: ev.Message})
		lastTick = ev.Tick
	}
	return track
}

// firstQpmAt returns the tempo in effect at the given time, used to
// convert that moment's seconds offset into ticks. Tunes rarely change
// tempo mid-piece in this parser's test corpus, but this keeps the
// conversion correct when they do.
func firstQpmAt(tune *Tune, at float64) float64 {
	qpm := defaultQpm
	for _, t := range tune.Tempos {
		if t.Time > at {
			break
		}
		qpm = t.Qpm
	}
	return qpm
}

// secondsToTicks converts an absolute seconds offset into MIDI ticks at
// TicksPerQuarter resolution and the given tempo.
func secondsToTicks(seconds, qpm float64) uint32 {
	ticksPerSecond := (qpm / 60) * TicksPerQuarter
	return uint32(seconds*ticksPerSecond + 0.5)
}
