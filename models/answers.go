package models

// AgeBand is the coarse age tier that drives answer complexity.
type AgeBand string

const (
	AgeBandPreReader   AgeBand = "pre-reader"
	AgeBandEarlyReader AgeBand = "early-reader"
)

// AgeBandFor maps a child's age to its band. Every place that tiers
// behaviour by age must go through this helper so the cut-off stays
// consistent.
func AgeBandFor(age int) AgeBand {
	if age <= 6 {
		return AgeBandPreReader
	}
	return AgeBandEarlyReader
}

// AnswerTemplate pairs a lookup phrase with a curated answer. Lookup is
// a case-insensitive substring test against the question text.
type AnswerTemplate struct {
	Match  string
	Answer string
}

// BandTemplates is the curated answer set for one age band. Templates
// are tried in slice order; Default is returned when nothing matches.
type BandTemplates struct {
	Templates []AnswerTemplate
	Default   string
}

// AnswerCatalog holds the per-band template sets.
type AnswerCatalog map[AgeBand]BandTemplates

// VideoTopic pairs a topic keyword with a fixed video suggestion.
// Purely cosmetic: the suggestion never influences moderation or what
// gets stored.
type VideoTopic struct {
	Match      string
	Suggestion string
}

// GeneratedAnswer is the shaped output of the response generator.
type GeneratedAnswer struct {
	Answer          string `json:"answer"`
	VideoSuggestion string `json:"videoSuggestion"`
}
