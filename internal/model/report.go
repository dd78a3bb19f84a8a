package model

// Report describes what happened to one candidate generation.
type Report struct {
	Program   int
	Candidate int
	Renamed   int  // distinct names renamed
	Fallback  bool // lexical path was used because the candidate did not parse
	Anchored  bool // protected prefix restored byte-exact
	Recovered bool // internal fault, original text returned untouched
}

// Summary aggregates reports for a whole batch run.
type Summary struct {
	Programs   int
	Candidates int
	Renamed    int // candidates with at least one renamed identifier
	Fallbacks  int
	Anchored   int
	Recovered  int
}

// Add folds one candidate report into the summary.
func (s *Summary) Add(r Report) {
	s.Candidates++

	if r.Renamed > 0 {
		s.Renamed++
	}

	if r.Fallback {
		s.Fallbacks++
	}

	if r.Anchored {
		s.Anchored++
	}

	if r.Recovered {
		s.Recovered++
	}
}
