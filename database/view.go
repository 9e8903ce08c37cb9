package database

import (
	"fmt"

	"github.com/collegemetrics/api/model"
	"gorm.io/gorm"
)

// SummaryViewName is the relation the CollegeSummary model reads from.
const SummaryViewName = "college_summary"

// SummaryViewQuery builds the SELECT behind college_summary: colleges
// joined with their tuition and salary rows. Inner joins on purpose, a
// college missing either extension has no summary row.
func SummaryViewQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&model.College{}).
		Select(`
			colleges.name AS name,
			colleges.state AS state,
			tuition_info.institution_type AS institution_type,
			tuition_info.degree_length AS degree_length,
			tuition_info.in_state_tuition AS in_state_tuition,
			tuition_info.out_of_state_tuition AS out_of_state_tuition,
			salary_potential.early_career_pay AS early_career_pay,
			salary_potential.mid_career_pay AS mid_career_pay,
			salary_potential.stem_percent AS stem_percent
		`).
		Joins("JOIN tuition_info ON tuition_info.college_id = colleges.id").
		Joins("JOIN salary_potential ON salary_potential.college_id = colleges.id")
}

// RecreateSummaryView drops and recreates the view so it always tracks
// the current model definitions. Drop-then-create instead of
// CREATE OR REPLACE because SQLite has no REPLACE for views.
func RecreateSummaryView(db *gorm.DB) error {
	if err := db.Migrator().DropView(SummaryViewName); err != nil {
		return fmt.Errorf("failed to drop %s view: %w", SummaryViewName, err)
	}

	if err := db.Migrator().CreateView(SummaryViewName, gorm.ViewOption{
		Query: SummaryViewQuery(db),
	}); err != nil {
		return fmt.Errorf("failed to create %s view: %w", SummaryViewName, err)
	}

	return nil
}
