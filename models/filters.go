package models

// FilterCategory is one of the fixed moderation categories plus the
// open "custom" bucket for keywords a parent adds themselves.
type FilterCategory string

const (
	CategoryViolence      FilterCategory = "violence"
	CategoryInappropriate FilterCategory = "inappropriate"
	CategoryPolitics      FilterCategory = "politics"
	CategoryAdult         FilterCategory = "adult"
	CategoryScary         FilterCategory = "scary"
	CategoryCustom        FilterCategory = "custom"
)

// FilterCategories returns the evaluation order. The first category
// whose keyword matches wins, so this order is part of the contract:
// the five fixed categories first, parent-defined keywords last.
func FilterCategories() []FilterCategory {
	return []FilterCategory{
		CategoryViolence,
		CategoryInappropriate,
		CategoryPolitics,
		CategoryAdult,
		CategoryScary,
		CategoryCustom,
	}
}

// Reason returns the parent-facing label shown when a question is
// blocked by this category.
func (c FilterCategory) Reason() string {
	switch c {
	case CategoryViolence:
		return "Filtr: przemoc"
	case CategoryInappropriate:
		return "Filtr: nieodpowiednie"
	case CategoryPolitics:
		return "Filtr: polityka"
	case CategoryAdult:
		return "Filtr: dla dorosłych"
	case CategoryScary:
		return "Filtr: straszne treści"
	case CategoryCustom:
		return "Filtr: słowa rodzica"
	default:
		return "Filtr: zablokowane treści"
	}
}

// ContentFilters maps a category to its blocked keywords.
type ContentFilters map[FilterCategory][]string

// FilterSettings is the per-child filter configuration stored under
// filters:{childId}. Keywords here are additive on top of the global
// defaults; a parent can never remove a default keyword.
type FilterSettings struct {
	CustomKeywords ContentFilters `json:"customKeywords"`
}

// MergeFilters unions the per-child additions into the defaults and
// returns a new map. Neither input is modified.
func MergeFilters(defaults ContentFilters, settings FilterSettings) ContentFilters {
	merged := make(ContentFilters, len(defaults)+1)
	for category, keywords := range defaults {
		merged[category] = append([]string(nil), keywords...)
	}
	for category, keywords := range settings.CustomKeywords {
		merged[category] = append(merged[category], keywords...)
	}
	return merged
}

// FilterVerdict is the outcome of evaluating one question.
type FilterVerdict struct {
	Flagged  bool
	Category FilterCategory
	Reason   string
}
