package aggregate

// Stats accumulates walk counters over the life of an engine.
type Stats struct {
	Walks     int `json:"walks"`
	Stuck     int `json:"stuck"`
	StepLimit int `json:"step_limit"`
	Exhausted int `json:"exhausted"`
	Steps     int `json:"steps"`     // total unit steps over all walks
	Committed int `json:"committed"` // sites added to the cluster by walks
}

// Abandoned returns the number of walks that ended without sticking.
func (s Stats) Abandoned() int { return s.StepLimit + s.Exhausted }

func (s *Stats) record(r WalkResult) {
	s.Walks++
	s.Steps += r.Steps
	s.Committed += r.Added
	switch r.Outcome {
	case OutcomeStuck:
		s.Stuck++
	case OutcomeStepLimit:
		s.StepLimit++
	case OutcomeExhausted:
		s.Exhausted++
	}
}
