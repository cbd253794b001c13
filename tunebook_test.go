package abc

import "testing"

func TestParseTunebookMultipleTunes(t *testing.T) {
	const book = `X:1
T:First Tune
K:C
C

X:2
T:Second Tune
K:G
G
`
	tunes, errs := ParseTunebook(book)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(tunes) != 2 {
		t.Fatalf("got %d tunes, want 2", len(tunes))
	}
	if tunes[1].Title != "First Tune" {
		t.Errorf("tunes[1].Title = %q, want %q", tunes[1].Title, "First Tune")
	}
	if tunes[2].Title != "Second Tune" {
		t.Errorf("tunes[2].Title = %q, want %q", tunes[2].Title, "Second Tune")
	}
}

func TestParseTunebookFileHeaderDefaults(t *testing.T) {
	const book = `L:1/8
M:4/4

X:1
K:C
CC
`
	tunes, errs := ParseTunebook(book)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	tune := tunes[1]
	if len(tune.TimeSignatures) != 1 || tune.TimeSignatures[0].Numerator != 4 || tune.TimeSignatures[0].Denominator != 4 {
		t.Fatalf("time signatures = %+v, want one 4/4", tune.TimeSignatures)
	}
	for _, n := range tune.Notes {
		if !almostEqual(n.EndTime-n.StartTime, 0.25) {
			t.Errorf("note duration = %v, want 0.25 (file-level L:1/8 default)", n.EndTime-n.StartTime)
		}
	}
}

func TestTuneStructureErrorOnMissingReferenceNumber(t *testing.T) {
	const book = `X:1
K:C
C

T:No reference number
K:D
D
`
	tunes, errs := ParseTunebook(book)
	if len(tunes) != 1 {
		t.Fatalf("got %d tunes, want 1", len(tunes))
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if _, ok := errs[0].Err.(*TuneStructureError); !ok {
		t.Errorf("error = %v (%T), want *TuneStructureError", errs[0].Err, errs[0].Err)
	}
}

func TestDispatcherContinuesPastBadTune(t *testing.T) {
	const book = `X:1
L:1/4
L:1/8
K:C
C

X:2
K:C
C
`
	tunes, errs := ParseTunebook(book)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if len(tunes) != 1 {
		t.Fatalf("got %d tunes, want 1", len(tunes))
	}
	if _, ok := tunes[2]; !ok {
		t.Errorf("tune 2 should have parsed despite tune 1's error")
	}
}

func TestKeySignatureRecordedAtHeaderTime(t *testing.T) {
	const book = `X:1
K:D
D
`
	tunes, errs := ParseTunebook(book)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	tune := tunes[1]
	if len(tune.KeySignatures) != 1 {
		t.Fatalf("got %d key signatures, want 1", len(tune.KeySignatures))
	}
	if tune.KeySignatures[0].Key != "D" || tune.KeySignatures[0].Mode != ModeMajor || tune.KeySignatures[0].Time != 0 {
		t.Errorf("key signature = %+v, want {D MAJOR 0}", tune.KeySignatures[0])
	}
}

func TestParseTunebookFileMissingFile(t *testing.T) {
	_, errs := ParseTunebookFile("/nonexistent/path/to/tunebook.abc")
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
}

// TestInfoFieldCommentsAreStripped exercises spec §4.5: a trailing
// "% ..." comment is discarded everywhere, not only on note lines, so it
// must never reach M:/L:/Q:/K: field parsing.
func TestInfoFieldCommentsAreStripped(t *testing.T) {
	const book = `X:1
Q:100  % brisk
M:2/4  % cut common time
L:1/4  % quarter note unit
K:C  % no sharps or flats
C
`
	tunes, errs := ParseTunebook(book)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	tune := tunes[1]
	if len(tune.TimeSignatures) != 1 || tune.TimeSignatures[0].Numerator != 2 || tune.TimeSignatures[0].Denominator != 4 {
		t.Fatalf("time signatures = %+v, want one 2/4", tune.TimeSignatures)
	}
	if len(tune.KeySignatures) != 1 || tune.KeySignatures[0].Key != "C" {
		t.Fatalf("key signatures = %+v, want one C", tune.KeySignatures)
	}
	if !almostEqual(tune.Tempos[0].Qpm, 100) {
		t.Errorf("qpm = %v, want 100 (L:1/4 should resolve the deprecated Q:100 form)", tune.Tempos[0].Qpm)
	}
}
