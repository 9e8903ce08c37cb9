package model

import (
	"time"
)

// SalaryPotential extends a college with alumni pay estimates. Pay
// figures are annual USD; StemPercent is the share of the student body
// in STEM programs, 0 to 100.
type SalaryPotential struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	CollegeID      uint      `gorm:"uniqueIndex;not null" json:"college_id"`
	EarlyCareerPay int       `gorm:"not null" json:"early_career_pay"`
	MidCareerPay   int       `gorm:"not null" json:"mid_career_pay"`
	StemPercent    int       `gorm:"not null" json:"stem_percent"`

	// Relationships
	College College `gorm:"foreignKey:CollegeID;constraint:OnDelete:CASCADE" json:"college,omitempty"`
}

// TableName keeps the relation singular to match the source dataset.
func (SalaryPotential) TableName() string {
	return "salary_potential"
}
