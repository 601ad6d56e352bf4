package repositories

import "KidAsk/models"

// FilterRepository stores the per-child filter settings. Last write
// wins; no history is kept.
type FilterRepository interface {
	Get(childID string) (models.FilterSettings, bool, error)
	Save(childID string, settings models.FilterSettings) error
	// Delete reports whether settings existed for the child.
	Delete(childID string) (bool, error)
}
