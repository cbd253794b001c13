package abc

import (
	"fmt"
	"os"
	"strings"
)

// splitRecords separates a tune-book's lines into an optional file-level
// header (everything before the first X: line) and the tune records
// that follow it, each bounded by one or more blank lines.
func splitRecords(text string) (headerLines []string, records [][]string) {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(normalized, "\n")

	firstX := -1
	for i, l := range lines {
		if classifyLine(l).field == 'X' {
			firstX = i
			break
		}
	}
	if firstX < 0 {
		return nil, nil
	}

	headerLines = lines[:firstX]
	var current []string
	flush := func() {
		if len(current) > 0 {
			records = append(records, current)
			current = nil
		}
	}
	for _, l := range lines[firstX:] {
		if strings.TrimSpace(l) == "" {
			flush()
			continue
		}
		current = append(current, l)
	}
	flush()
	return headerLines, records
}

// parseTuneRecord parses one complete tune record (file-level header
// lines, if any, followed by the record's own lines starting with X:)
// into a Tune.
func parseTuneRecord(lines []string) (*Tune, error) {
	if len(lines) == 0 {
		return nil, &TuneStructureError{Reason: "empty tune record"}
	}

	startOfTune := -1
	for i, l := range lines {
		if classifyLine(l).field == 'X' {
			startOfTune = i
			break
		}
	}
	if startOfTune < 0 {
		return nil, &TuneStructureError{Reason: "tune record does not contain an X: field"}
	}

	p := newTuneParser(0)
	i := 0
	for i < len(lines) {
		cl := classifyLine(lines[i])
		if cl.field == 0 {
			break
		}
		if err := p.handleInfoField(cl.field, cl.value, false); err != nil {
			return nil, err
		}
		i++
		if cl.field == 'K' {
			break
		}
	}

	if err := p.parseBody(lines[i:]); err != nil {
		return nil, err
	}
	return p.tune, nil
}

// ParseTunebook parses a complete tune-book given as a string, returning
// the successfully parsed tunes keyed by reference number and a list of
// per-tune errors for records that could not be parsed. One bad tune
// never prevents the others from being returned.
func ParseTunebook(text string) (map[int]*Tune, []TuneError) {
	headerLines, records := splitRecords(text)

	tunes := make(map[int]*Tune)
	var errs []TuneError

	for idx, rec := range records {
		full := make([]string, 0, len(headerLines)+len(rec))
		full = append(full, headerLines...)
		full = append(full, rec...)

		tune, err := parseTuneRecord(full)
		if err != nil {
			errs = append(errs, TuneError{Index: idx, Err: err})
			continue
		}
		tunes[tune.ReferenceNumber] = tune
	}

	return tunes, errs
}

// ParseTunebookFile reads a tune-book from disk and parses it exactly
// as ParseTunebook would.
func ParseTunebookFile(path string) (map[int]*Tune, []TuneError) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []TuneError{{Index: -1, Err: fmt.Errorf("abc: failed to read tune-book file: %w", err)}}
	}
	return ParseTunebook(string(data))
}
