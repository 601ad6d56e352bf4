package services

import (
	"KidAsk/models"
	"strings"
)

// FilterService decides whether a question may be answered
// automatically. Matching is a case-insensitive literal substring test
// with no tokenization or stemming; partial-word hits are an accepted
// limitation of the design, not something to compensate for here.
type FilterService struct {
	defaults models.ContentFilters
}

func NewFilterService(defaults models.ContentFilters) *FilterService {
	return &FilterService{defaults: defaults}
}

// Evaluate checks the question against the merged keyword sets. The
// categories are tried in the fixed order from models.FilterCategories,
// so the first matching category wins when several would match. Pure:
// no lookups, no writes.
func (s *FilterService) Evaluate(question string, settings models.FilterSettings) models.FilterVerdict {
	merged := models.MergeFilters(s.defaults, settings)
	lowered := strings.ToLower(question)

	for _, category := range models.FilterCategories() {
		for _, keyword := range merged[category] {
			if keyword == "" {
				continue
			}
			if strings.Contains(lowered, strings.ToLower(keyword)) {
				return models.FilterVerdict{
					Flagged:  true,
					Category: category,
					Reason:   category.Reason(),
				}
			}
		}
	}

	return models.FilterVerdict{}
}
