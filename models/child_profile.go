package models

import "time"

// ChildProfile is a child registered by a guardian. ChildID is the
// opaque identifier the question pipeline keys all records by.
type ChildProfile struct {
	ID         uint   `json:"id" gorm:"primary_key"`
	GuardianID uint   `json:"guardian_id"`
	ChildID    string `json:"child_id" gorm:"unique"`
	Name       string `json:"name"`
	BirthYear  int    `json:"birth_year"`
	Avatar     string `json:"avatar"`
	Color      string `json:"color"`
}

// Age returns the child's age in the current calendar year.
func (p *ChildProfile) Age() int {
	return time.Now().Year() - p.BirthYear
}
