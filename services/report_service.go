package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/collegemetrics/api/model"
	"gorm.io/gorm"
)

// ReportService exposes the fixed catalog of analytical queries over
// the college schema. Every method is a pure read: no parameters
// beyond context, no side effects, and an empty result is an empty
// slice rather than an error.
type ReportService struct {
	db *gorm.DB
}

// NewReportService creates a new report service
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{
		db: db,
	}
}

// TuitionRow is one college's published tuition figures
type TuitionRow struct {
	Name              string `json:"name"`
	State             string `json:"state"`
	InStateTuition    int    `json:"in_state_tuition"`
	OutOfStateTuition int    `json:"out_of_state_tuition"`
}

// TuitionOverview lists every college that has tuition data
func (s *ReportService) TuitionOverview(ctx context.Context) ([]TuitionRow, error) {
	rows := []TuitionRow{}

	if err := s.db.WithContext(ctx).Model(&model.TuitionInfo{}).
		Select("colleges.name AS name, colleges.state AS state, tuition_info.in_state_tuition AS in_state_tuition, tuition_info.out_of_state_tuition AS out_of_state_tuition").
		Joins("JOIN colleges ON colleges.id = tuition_info.college_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tuition overview: %w", err)
	}

	return rows, nil
}

// DiversityRow is one college's headline enrollment numbers
type DiversityRow struct {
	Name            string `json:"name"`
	TotalEnrollment int    `json:"total_enrollment"`
	TotalMinority   int    `json:"total_minority"`
}

// DiversityOverview lists every college that has diversity data
func (s *ReportService) DiversityOverview(ctx context.Context) ([]DiversityRow, error) {
	rows := []DiversityRow{}

	if err := s.db.WithContext(ctx).Model(&model.DiversityStats{}).
		Select("colleges.name AS name, diversity_stats.total_enrollment AS total_enrollment, diversity_stats.total_minority AS total_minority").
		Joins("JOIN colleges ON colleges.id = diversity_stats.college_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch diversity overview: %w", err)
	}

	return rows, nil
}

// SalaryRow is one college's pay estimates
type SalaryRow struct {
	Name           string `json:"name"`
	EarlyCareerPay int    `json:"early_career_pay"`
	MidCareerPay   int    `json:"mid_career_pay"`
}

// SalaryOverview lists every college that has salary data
func (s *ReportService) SalaryOverview(ctx context.Context) ([]SalaryRow, error) {
	rows := []SalaryRow{}

	if err := s.db.WithContext(ctx).Model(&model.SalaryPotential{}).
		Select("colleges.name AS name, salary_potential.early_career_pay AS early_career_pay, salary_potential.mid_career_pay AS mid_career_pay").
		Joins("JOIN colleges ON colleges.id = salary_potential.college_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch salary overview: %w", err)
	}

	return rows, nil
}

// PayRow pairs a college with a single pay figure
type PayRow struct {
	Name string `json:"name"`
	Pay  int    `json:"pay"`
}

// TopMidCareerPay returns the ten colleges with the highest mid-career pay
func (s *ReportService) TopMidCareerPay(ctx context.Context) ([]PayRow, error) {
	rows := []PayRow{}

	if err := s.db.WithContext(ctx).Model(&model.SalaryPotential{}).
		Select("colleges.name AS name, salary_potential.mid_career_pay AS pay").
		Joins("JOIN colleges ON colleges.id = salary_potential.college_id").
		Order("salary_potential.mid_career_pay DESC").
		Limit(10).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch top mid-career pay: %w", err)
	}

	return rows, nil
}

// Summaries returns the full college_summary view, recomputed from the
// base tables on every call
func (s *ReportService) Summaries(ctx context.Context) ([]model.CollegeSummary, error) {
	summaries := []model.CollegeSummary{}

	if err := s.db.WithContext(ctx).Find(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch college summaries: %w", err)
	}

	return summaries, nil
}

// StateTuitionRow places a tuition figure with the college's state
type StateTuitionRow struct {
	Name           string `json:"name"`
	State          string `json:"state"`
	InStateTuition int    `json:"in_state_tuition"`
}

// LowestInStateTuition returns the ten cheapest colleges by in-state tuition
func (s *ReportService) LowestInStateTuition(ctx context.Context) ([]StateTuitionRow, error) {
	rows := []StateTuitionRow{}

	if err := s.db.WithContext(ctx).Model(&model.CollegeSummary{}).
		Select("name, state, in_state_tuition").
		Order("in_state_tuition ASC").
		Limit(10).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch lowest in-state tuition: %w", err)
	}

	return rows, nil
}

// TopEarlyCareerPay returns the ten colleges with the highest early-career pay
func (s *ReportService) TopEarlyCareerPay(ctx context.Context) ([]PayRow, error) {
	rows := []PayRow{}

	if err := s.db.WithContext(ctx).Model(&model.CollegeSummary{}).
		Select("name, early_career_pay AS pay").
		Order("early_career_pay DESC").
		Limit(10).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch top early-career pay: %w", err)
	}

	return rows, nil
}

// StemRow pairs a college with its STEM share
type StemRow struct {
	Name        string `json:"name"`
	StemPercent int    `json:"stem_percent"`
}

// TopStemShare returns the ten colleges with the highest STEM percentage
func (s *ReportService) TopStemShare(ctx context.Context) ([]StemRow, error) {
	rows := []StemRow{}

	if err := s.db.WithContext(ctx).Model(&model.CollegeSummary{}).
		Select("name, stem_percent").
		Order("stem_percent DESC").
		Limit(10).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch top STEM share: %w", err)
	}

	return rows, nil
}

// TopTwoYearMidCareerPay returns the ten two-year colleges with the
// highest mid-career pay
func (s *ReportService) TopTwoYearMidCareerPay(ctx context.Context) ([]PayRow, error) {
	rows := []PayRow{}

	if err := s.db.WithContext(ctx).Model(&model.CollegeSummary{}).
		Select("name, mid_career_pay AS pay").
		Where("degree_length = ?", model.DegreeTwoYear).
		Order("mid_career_pay DESC").
		Limit(10).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch top two-year mid-career pay: %w", err)
	}

	return rows, nil
}

// StateAvgTuitionRow is one state's average tuition figures
type StateAvgTuitionRow struct {
	State         string  `json:"state"`
	AvgInState    float64 `json:"avg_in_state"`
	AvgOutOfState float64 `json:"avg_out_of_state"`
}

// AvgTuitionByState averages tuition per state, most expensive
// out-of-state first
func (s *ReportService) AvgTuitionByState(ctx context.Context) ([]StateAvgTuitionRow, error) {
	rows := []StateAvgTuitionRow{}

	if err := s.db.WithContext(ctx).Model(&model.TuitionInfo{}).
		Select("colleges.state AS state, AVG(tuition_info.in_state_tuition) AS avg_in_state, AVG(tuition_info.out_of_state_tuition) AS avg_out_of_state").
		Joins("JOIN colleges ON colleges.id = tuition_info.college_id").
		Group("colleges.state").
		Order("avg_out_of_state DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch average tuition by state: %w", err)
	}

	return rows, nil
}

// TypeAvgPayRow is one institution type's average early pay
type TypeAvgPayRow struct {
	InstitutionType   string  `json:"institution_type"`
	AvgEarlyCareerPay float64 `json:"avg_early_career_pay"`
}

// AvgEarlyPayByType averages early-career pay per institution type
func (s *ReportService) AvgEarlyPayByType(ctx context.Context) ([]TypeAvgPayRow, error) {
	rows := []TypeAvgPayRow{}

	if err := s.db.WithContext(ctx).Model(&model.TuitionInfo{}).
		Select("tuition_info.institution_type AS institution_type, AVG(salary_potential.early_career_pay) AS avg_early_career_pay").
		Joins("JOIN salary_potential ON salary_potential.college_id = tuition_info.college_id").
		Group("tuition_info.institution_type").
		Order("avg_early_career_pay DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch average early pay by type: %w", err)
	}

	return rows, nil
}

// StateAvgMinorityRow is one state's average minority count
type StateAvgMinorityRow struct {
	State       string  `json:"state"`
	AvgMinority float64 `json:"avg_minority"`
}

// TopStatesByAvgMinority returns the five states with the highest
// average minority count
func (s *ReportService) TopStatesByAvgMinority(ctx context.Context) ([]StateAvgMinorityRow, error) {
	rows := []StateAvgMinorityRow{}

	if err := s.db.WithContext(ctx).Model(&model.DiversityStats{}).
		Select("colleges.state AS state, AVG(diversity_stats.total_minority) AS avg_minority").
		Joins("JOIN colleges ON colleges.id = diversity_stats.college_id").
		Group("colleges.state").
		Order("avg_minority DESC").
		Limit(5).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch top states by average minority: %w", err)
	}

	return rows, nil
}

// AboveAvgEarlyPay returns colleges whose early pay strictly exceeds
// the mean across all salary rows
func (s *ReportService) AboveAvgEarlyPay(ctx context.Context) ([]PayRow, error) {
	rows := []PayRow{}

	avg := s.db.Model(&model.SalaryPotential{}).Select("AVG(early_career_pay)")

	if err := s.db.WithContext(ctx).Model(&model.SalaryPotential{}).
		Select("colleges.name AS name, salary_potential.early_career_pay AS pay").
		Joins("JOIN colleges ON colleges.id = salary_potential.college_id").
		Where("salary_potential.early_career_pay > (?)", avg).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch above-average early pay: %w", err)
	}

	return rows, nil
}

// MinorityRow pairs a college with its minority count
type MinorityRow struct {
	Name          string `json:"name"`
	TotalMinority int    `json:"total_minority"`
}

// AboveAvgMinority returns colleges whose minority count strictly
// exceeds the mean across all diversity rows
func (s *ReportService) AboveAvgMinority(ctx context.Context) ([]MinorityRow, error) {
	rows := []MinorityRow{}

	avg := s.db.Model(&model.DiversityStats{}).Select("AVG(total_minority)")

	if err := s.db.WithContext(ctx).Model(&model.DiversityStats{}).
		Select("colleges.name AS name, diversity_stats.total_minority AS total_minority").
		Joins("JOIN colleges ON colleges.id = diversity_stats.college_id").
		Where("diversity_stats.total_minority > (?)", avg).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch above-average minority: %w", err)
	}

	return rows, nil
}

// PayGrowthRow is a college's pay progression from early to mid career
type PayGrowthRow struct {
	Name   string `json:"name"`
	Growth int    `json:"growth"`
}

// TopPayGrowth returns the ten colleges with the largest gap between
// mid- and early-career pay
func (s *ReportService) TopPayGrowth(ctx context.Context) ([]PayGrowthRow, error) {
	rows := []PayGrowthRow{}

	if err := s.db.WithContext(ctx).Model(&model.SalaryPotential{}).
		Select("colleges.name AS name, salary_potential.mid_career_pay - salary_potential.early_career_pay AS growth").
		Joins("JOIN colleges ON colleges.id = salary_potential.college_id").
		Order("growth DESC").
		Limit(10).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch top pay growth: %w", err)
	}

	return rows, nil
}

// MostDiversePublic returns the ten public colleges with the highest
// minority count
func (s *ReportService) MostDiversePublic(ctx context.Context) ([]MinorityRow, error) {
	rows := []MinorityRow{}

	if err := s.db.WithContext(ctx).Model(&model.DiversityStats{}).
		Select("colleges.name AS name, diversity_stats.total_minority AS total_minority").
		Joins("JOIN colleges ON colleges.id = diversity_stats.college_id").
		Joins("JOIN tuition_info ON tuition_info.college_id = diversity_stats.college_id").
		Where("tuition_info.institution_type LIKE ?", "%Public%").
		Order("diversity_stats.total_minority DESC").
		Limit(10).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch most diverse public colleges: %w", err)
	}

	return rows, nil
}

// CostRow pairs a college with its all-in annual cost
type CostRow struct {
	Name         string `json:"name"`
	InStateTotal int    `json:"in_state_total"`
}

// CheapestPrivate returns the ten private colleges with the lowest
// in-state total cost
func (s *ReportService) CheapestPrivate(ctx context.Context) ([]CostRow, error) {
	rows := []CostRow{}

	if err := s.db.WithContext(ctx).Model(&model.TuitionInfo{}).
		Select("colleges.name AS name, tuition_info.in_state_total AS in_state_total").
		Joins("JOIN colleges ON colleges.id = tuition_info.college_id").
		Where("tuition_info.institution_type LIKE ?", "%Private%").
		Order("tuition_info.in_state_total ASC").
		Limit(10).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cheapest private colleges: %w", err)
	}

	return rows, nil
}

// WomenRow pairs a college with its women headcount
type WomenRow struct {
	Name  string `json:"name"`
	Women int    `json:"women"`
}

// LowWomenEnrollment returns colleges with fewer than fifty enrolled
// women. Women is a raw headcount, so this surfaces tiny or
// near-single-sex schools rather than a percentage cutoff.
func (s *ReportService) LowWomenEnrollment(ctx context.Context) ([]WomenRow, error) {
	rows := []WomenRow{}

	if err := s.db.WithContext(ctx).Model(&model.DiversityStats{}).
		Select("colleges.name AS name, diversity_stats.women AS women").
		Joins("JOIN colleges ON colleges.id = diversity_stats.college_id").
		Where("diversity_stats.women < ?", 50).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch low women enrollment: %w", err)
	}

	return rows, nil
}

// AvgMidPayLargeColleges averages mid-career pay across colleges with
// more than 20000 enrolled students. Returns nil when no college
// qualifies; callers must treat that as "no data", not zero.
func (s *ReportService) AvgMidPayLargeColleges(ctx context.Context) (*float64, error) {
	var avg sql.NullFloat64

	if err := s.db.WithContext(ctx).Model(&model.SalaryPotential{}).
		Select("AVG(salary_potential.mid_career_pay)").
		Joins("JOIN diversity_stats ON diversity_stats.college_id = salary_potential.college_id").
		Where("diversity_stats.total_enrollment > ?", 20000).
		Scan(&avg).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch average mid pay for large colleges: %w", err)
	}

	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// TuitionBelowTypeAverage returns colleges whose in-state tuition is
// strictly below the average for their own institution type, ordered
// by state. Each type is compared against its own average only.
func (s *ReportService) TuitionBelowTypeAverage(ctx context.Context) ([]StateTuitionRow, error) {
	rows := []StateTuitionRow{}

	if err := s.db.WithContext(ctx).Model(&model.TuitionInfo{}).
		Select("colleges.name AS name, colleges.state AS state, tuition_info.in_state_tuition AS in_state_tuition").
		Joins("JOIN colleges ON colleges.id = tuition_info.college_id").
		Where("tuition_info.in_state_tuition < (SELECT AVG(t2.in_state_tuition) FROM tuition_info t2 WHERE t2.institution_type = tuition_info.institution_type)").
		Order("colleges.state ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tuition below type average: %w", err)
	}

	return rows, nil
}
