package model

import (
	"time"
)

// DiversityStats extends a college with enrollment composition. All
// fields are headcounts, not percentages. Group counts come straight
// from the source dataset and are not reconciled against
// TotalEnrollment here.
type DiversityStats struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	CollegeID       uint      `gorm:"uniqueIndex;not null" json:"college_id"`
	TotalEnrollment int       `gorm:"not null" json:"total_enrollment"`
	Women           int       `gorm:"not null" json:"women"`
	AmericanIndian  int       `gorm:"not null" json:"american_indian"`
	Asian           int       `gorm:"not null" json:"asian"`
	Black           int       `gorm:"not null" json:"black"`
	Hispanic        int       `gorm:"not null" json:"hispanic"`
	PacificIslander int       `gorm:"not null" json:"pacific_islander"`
	White           int       `gorm:"not null" json:"white"`
	TwoOrMore       int       `gorm:"not null" json:"two_or_more"`
	Unknown         int       `gorm:"not null" json:"unknown"`
	NonResident     int       `gorm:"not null" json:"non_resident"`
	TotalMinority   int       `gorm:"not null" json:"total_minority"`

	// Relationships
	College College `gorm:"foreignKey:CollegeID;constraint:OnDelete:CASCADE" json:"college,omitempty"`
}

// TableName keeps the relation singular to match the source dataset.
func (DiversityStats) TableName() string {
	return "diversity_stats"
}

// MinoritySum adds up the group counts that make up the dataset's
// "Total Minority" category.
func (d *DiversityStats) MinoritySum() int {
	return d.AmericanIndian + d.Asian + d.Black + d.Hispanic + d.PacificIslander + d.TwoOrMore
}
