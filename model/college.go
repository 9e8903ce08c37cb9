package model

import (
	"time"
)

// College represents an institution tracked by the catalog. The same
// name may appear in more than one state, so identity is the
// (name, state) pair rather than the name alone.
type College struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_college_name_state" json:"name"`
	State     string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_college_name_state" json:"state"`

	// Relationships. Each college carries at most one row of each
	// extension; removing the college removes them with it.
	Tuition   *TuitionInfo     `gorm:"foreignKey:CollegeID;constraint:OnDelete:CASCADE" json:"tuition,omitempty"`
	Diversity *DiversityStats  `gorm:"foreignKey:CollegeID;constraint:OnDelete:CASCADE" json:"diversity,omitempty"`
	Salary    *SalaryPotential `gorm:"foreignKey:CollegeID;constraint:OnDelete:CASCADE" json:"salary,omitempty"`
}
