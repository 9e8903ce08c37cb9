package model

import (
	"time"
)

// Institution types as they appear in the tuition dataset.
const (
	InstitutionPublic    = "Public"
	InstitutionPrivate   = "Private"
	InstitutionForProfit = "For Profit"
)

// Degree lengths as they appear in the tuition dataset.
const (
	DegreeTwoYear  = "2 Years"
	DegreeFourYear = "4 Years"
)

// TuitionInfo extends a college with published cost figures. All
// amounts are annual USD; totals add room and board on top of tuition.
type TuitionInfo struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	CollegeID         uint      `gorm:"uniqueIndex;not null" json:"college_id"`
	InstitutionType   string    `gorm:"type:varchar(32);not null;index" json:"institution_type"` // "Public", "Private", "For Profit"
	DegreeLength      string    `gorm:"type:varchar(16);not null" json:"degree_length"`          // "2 Years" or "4 Years"
	InStateTuition    int       `gorm:"not null" json:"in_state_tuition"`
	InStateTotal      int       `gorm:"not null" json:"in_state_total"`
	OutOfStateTuition int       `gorm:"not null" json:"out_of_state_tuition"`
	OutOfStateTotal   int       `gorm:"not null" json:"out_of_state_total"`

	// Relationships
	College College `gorm:"foreignKey:CollegeID;constraint:OnDelete:CASCADE" json:"college,omitempty"`
}

// TableName keeps the relation singular to match the source dataset.
func (TuitionInfo) TableName() string {
	return "tuition_info"
}
