package abc

import "log"

// LogParseSummary reports, at the call site, how many tunes parsed
// cleanly out of a tune-book and logs each skipped tune's error. Library
// callers (ParseTunebook, ParseTunebookFile) stay silent; this is meant
// for CLI-style callers that want the teacher's style of continuing past
// bad input while still surfacing it.
func LogParseSummary(source string, tunes map[int]*Tune, errs []TuneError) {
	for _, e := range errs {
		log.Printf("%s: tune %d: %v", source, e.Index, e.Err)
	}
	log.Printf("%s: parsed %d tune(s), %d failed", source, len(tunes), len(errs))
}
