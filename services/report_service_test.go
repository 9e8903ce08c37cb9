package services

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/collegemetrics/api/database"
	"github.com/collegemetrics/api/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newReportTestDB opens a migrated throwaway SQLite database, summary
// view included.
func newReportTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_fk=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("Failed to create fixture %T: %v", value, err)
	}
}

func TestAboveAvgEarlyPayIsStrict(t *testing.T) {
	db := newReportTestDB(t)
	svc := NewReportService(db)

	// Mean is 40000; the college sitting exactly on the mean must be
	// excluded along with everything below it.
	mustCreate(t, db, &model.College{Name: "Low College", State: "Ohio",
		Salary: &model.SalaryPotential{EarlyCareerPay: 30000, MidCareerPay: 50000}})
	mustCreate(t, db, &model.College{Name: "Mean College", State: "Iowa",
		Salary: &model.SalaryPotential{EarlyCareerPay: 40000, MidCareerPay: 60000}})
	mustCreate(t, db, &model.College{Name: "High College", State: "Utah",
		Salary: &model.SalaryPotential{EarlyCareerPay: 50000, MidCareerPay: 90000}})

	rows, err := svc.AboveAvgEarlyPay(context.Background())
	if err != nil {
		t.Fatalf("AboveAvgEarlyPay failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected exactly 1 college above the mean, got %d", len(rows))
	}
	if rows[0].Name != "High College" || rows[0].Pay != 50000 {
		t.Errorf("Expected High College at 50000, got %q at %d", rows[0].Name, rows[0].Pay)
	}
}

func TestAboveAvgMinorityIsStrict(t *testing.T) {
	db := newReportTestDB(t)
	svc := NewReportService(db)

	mustCreate(t, db, &model.College{Name: "Small College", State: "Ohio",
		Diversity: &model.DiversityStats{TotalEnrollment: 500, TotalMinority: 100}})
	mustCreate(t, db, &model.College{Name: "Mid College", State: "Iowa",
		Diversity: &model.DiversityStats{TotalEnrollment: 800, TotalMinority: 200}})
	mustCreate(t, db, &model.College{Name: "Large College", State: "Utah",
		Diversity: &model.DiversityStats{TotalEnrollment: 2000, TotalMinority: 300}})

	rows, err := svc.AboveAvgMinority(context.Background())
	if err != nil {
		t.Fatalf("AboveAvgMinority failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected exactly 1 college above the mean of 200, got %d", len(rows))
	}
	if rows[0].Name != "Large College" {
		t.Errorf("Expected Large College, got %q", rows[0].Name)
	}
}

func TestTopMidCareerPayLimitAndOrder(t *testing.T) {
	db := newReportTestDB(t)
	svc := NewReportService(db)

	for i := 1; i <= 12; i++ {
		mustCreate(t, db, &model.College{
			Name:  fmt.Sprintf("College %02d", i),
			State: "Texas",
			Salary: &model.SalaryPotential{
				EarlyCareerPay: 40000 + i*100,
				MidCareerPay:   80000 + i*1000,
			},
		})
	}

	rows, err := svc.TopMidCareerPay(context.Background())
	if err != nil {
		t.Fatalf("TopMidCareerPay failed: %v", err)
	}
	if len(rows) != 10 {
		t.Fatalf("Expected the list capped at 10, got %d", len(rows))
	}
	if rows[0].Name != "College 12" || rows[0].Pay != 92000 {
		t.Errorf("Expected College 12 at 92000 first, got %q at %d", rows[0].Name, rows[0].Pay)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Pay > rows[i-1].Pay {
			t.Errorf("Rows not in descending pay order at index %d: %d > %d", i, rows[i].Pay, rows[i-1].Pay)
		}
	}
	// The two lowest-paying colleges fall off the end.
	for _, row := range rows {
		if row.Name == "College 01" || row.Name == "College 02" {
			t.Errorf("College %q should not make the top ten", row.Name)
		}
	}
}

func TestTuitionBelowTypeAverageComparesWithinType(t *testing.T) {
	db := newReportTestDB(t)
	svc := NewReportService(db)

	// Public mean is 20000, private mean is 70000. Cheap Private sits
	// below its own type's mean but far above the public one; it must
	// still be included because each type is compared to itself.
	publics := []struct {
		name    string
		tuition int
	}{
		{"Cheap Public", 10000},
		{"Mid Public", 20000},
		{"Pricey Public", 30000},
	}
	for _, p := range publics {
		mustCreate(t, db, &model.College{Name: p.name, State: "Alabama",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPublic,
				DegreeLength:    model.DegreeFourYear,
				InStateTuition:  p.tuition,
			}})
	}
	mustCreate(t, db, &model.College{Name: "Cheap Private", State: "California",
		Tuition: &model.TuitionInfo{
			InstitutionType: model.InstitutionPrivate,
			DegreeLength:    model.DegreeFourYear,
			InStateTuition:  60000,
		}})
	mustCreate(t, db, &model.College{Name: "Pricey Private", State: "New York",
		Tuition: &model.TuitionInfo{
			InstitutionType: model.InstitutionPrivate,
			DegreeLength:    model.DegreeFourYear,
			InStateTuition:  80000,
		}})

	rows, err := svc.TuitionBelowTypeAverage(context.Background())
	if err != nil {
		t.Fatalf("TuitionBelowTypeAverage failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 colleges below their type averages, got %d", len(rows))
	}
	// Ordered by state: Alabama before California.
	if rows[0].Name != "Cheap Public" {
		t.Errorf("Expected Cheap Public first, got %q", rows[0].Name)
	}
	if rows[1].Name != "Cheap Private" {
		t.Errorf("Expected Cheap Private second, got %q", rows[1].Name)
	}
}

func TestAvgMidPayLargeColleges(t *testing.T) {
	db := newReportTestDB(t)
	svc := NewReportService(db)

	avg, err := svc.AvgMidPayLargeColleges(context.Background())
	if err != nil {
		t.Fatalf("AvgMidPayLargeColleges failed on empty database: %v", err)
	}
	if avg != nil {
		t.Fatalf("Expected nil when no college qualifies, got %f", *avg)
	}

	// 20000 students is not "more than 20000".
	mustCreate(t, db, &model.College{Name: "Boundary College", State: "Ohio",
		Diversity: &model.DiversityStats{TotalEnrollment: 20000},
		Salary:    &model.SalaryPotential{EarlyCareerPay: 50000, MidCareerPay: 90000}})

	avg, err = svc.AvgMidPayLargeColleges(context.Background())
	if err != nil {
		t.Fatalf("AvgMidPayLargeColleges failed: %v", err)
	}
	if avg != nil {
		t.Fatalf("College at exactly 20000 students should not qualify, got %f", *avg)
	}

	mustCreate(t, db, &model.College{Name: "Big College", State: "Texas",
		Diversity: &model.DiversityStats{TotalEnrollment: 25000},
		Salary:    &model.SalaryPotential{EarlyCareerPay: 55000, MidCareerPay: 100000}})
	mustCreate(t, db, &model.College{Name: "Bigger College", State: "Arizona",
		Diversity: &model.DiversityStats{TotalEnrollment: 40000},
		Salary:    &model.SalaryPotential{EarlyCareerPay: 60000, MidCareerPay: 120000}})
	// Large enrollment but no salary row; must not drag the average down.
	mustCreate(t, db, &model.College{Name: "Silent College", State: "Nevada",
		Diversity: &model.DiversityStats{TotalEnrollment: 50000}})

	avg, err = svc.AvgMidPayLargeColleges(context.Background())
	if err != nil {
		t.Fatalf("AvgMidPayLargeColleges failed: %v", err)
	}
	if avg == nil {
		t.Fatal("Expected an average once large colleges exist")
	}
	if *avg != 110000 {
		t.Errorf("Expected average 110000, got %f", *avg)
	}
}

func TestLowWomenEnrollmentBoundary(t *testing.T) {
	db := newReportTestDB(t)
	svc := NewReportService(db)

	mustCreate(t, db, &model.College{Name: "Forty-Nine College", State: "Virginia",
		Diversity: &model.DiversityStats{TotalEnrollment: 300, Women: 49}})
	mustCreate(t, db, &model.College{Name: "Fifty College", State: "Virginia",
		Diversity: &model.DiversityStats{TotalEnrollment: 300, Women: 50}})
	mustCreate(t, db, &model.College{Name: "Military Institute", State: "South Carolina",
		Diversity: &model.DiversityStats{TotalEnrollment: 2000, Women: 0}})

	rows, err := svc.LowWomenEnrollment(context.Background())
	if err != nil {
		t.Fatalf("LowWomenEnrollment failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 colleges under the cutoff, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Women >= 50 {
			t.Errorf("College %q with %d women should be excluded", row.Name, row.Women)
		}
	}
}

func TestMostDiversePublicFiltersByType(t *testing.T) {
	db := newReportTestDB(t)
	svc := NewReportService(db)

	mustCreate(t, db, &model.College{Name: "State University", State: "Arizona",
		Tuition:   &model.TuitionInfo{InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeFourYear},
		Diversity: &model.DiversityStats{TotalEnrollment: 30000, TotalMinority: 9000}})
	mustCreate(t, db, &model.College{Name: "Community College", State: "Arizona",
		Tuition:   &model.TuitionInfo{InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeTwoYear},
		Diversity: &model.DiversityStats{TotalEnrollment: 12000, TotalMinority: 5000}})
	// Higher minority count than any public school, wrong type.
	mustCreate(t, db, &model.College{Name: "Private University", State: "California",
		Tuition:   &model.TuitionInfo{InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear},
		Diversity: &model.DiversityStats{TotalEnrollment: 40000, TotalMinority: 20000}})

	rows, err := svc.MostDiversePublic(context.Background())
	if err != nil {
		t.Fatalf("MostDiversePublic failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 public colleges, got %d", len(rows))
	}
	if rows[0].Name != "State University" || rows[0].TotalMinority != 9000 {
		t.Errorf("Expected State University at 9000 first, got %q at %d", rows[0].Name, rows[0].TotalMinority)
	}
	for _, row := range rows {
		if row.Name == "Private University" {
			t.Error("Private colleges must not appear in the public ranking")
		}
	}
}

func TestCheapestPrivateOrdersByTotalCost(t *testing.T) {
	db := newReportTestDB(t)
	svc := NewReportService(db)

	mustCreate(t, db, &model.College{Name: "Private A", State: "Vermont",
		Tuition: &model.TuitionInfo{InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear, InStateTotal: 30000}})
	mustCreate(t, db, &model.College{Name: "Private B", State: "Maine",
		Tuition: &model.TuitionInfo{InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear, InStateTotal: 20000}})
	// Cheapest overall but public, so out of scope.
	mustCreate(t, db, &model.College{Name: "Public C", State: "Maine",
		Tuition: &model.TuitionInfo{InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeTwoYear, InStateTotal: 5000}})

	rows, err := svc.CheapestPrivate(context.Background())
	if err != nil {
		t.Fatalf("CheapestPrivate failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 private colleges, got %d", len(rows))
	}
	if rows[0].Name != "Private B" || rows[0].InStateTotal != 20000 {
		t.Errorf("Expected Private B at 20000 first, got %q at %d", rows[0].Name, rows[0].InStateTotal)
	}
}

func TestTopTwoYearMidCareerPayFiltersDegreeLength(t *testing.T) {
	db := newReportTestDB(t)
	svc := NewReportService(db)

	mustCreate(t, db, &model.College{Name: "Two-Year College", State: "Colorado",
		Tuition: &model.TuitionInfo{InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeTwoYear, InStateTuition: 4000},
		Salary:  &model.SalaryPotential{EarlyCareerPay: 40000, MidCareerPay: 70000}})
	mustCreate(t, db, &model.College{Name: "Four-Year College", State: "Colorado",
		Tuition: &model.TuitionInfo{InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeFourYear, InStateTuition: 12000},
		Salary:  &model.SalaryPotential{EarlyCareerPay: 60000, MidCareerPay: 110000}})

	rows, err := svc.TopTwoYearMidCareerPay(context.Background())
	if err != nil {
		t.Fatalf("TopTwoYearMidCareerPay failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected only the two-year college, got %d rows", len(rows))
	}
	if rows[0].Name != "Two-Year College" || rows[0].Pay != 70000 {
		t.Errorf("Expected Two-Year College at 70000, got %q at %d", rows[0].Name, rows[0].Pay)
	}
}

func TestAvgTuitionByState(t *testing.T) {
	db := newReportTestDB(t)
	svc := NewReportService(db)

	mustCreate(t, db, &model.College{Name: "Texas A", State: "Texas",
		Tuition: &model.TuitionInfo{InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeFourYear, InStateTuition: 10000, OutOfStateTuition: 20000}})
	mustCreate(t, db, &model.College{Name: "Texas B", State: "Texas",
		Tuition: &model.TuitionInfo{InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeFourYear, InStateTuition: 20000, OutOfStateTuition: 30000}})
	mustCreate(t, db, &model.College{Name: "California A", State: "California",
		Tuition: &model.TuitionInfo{InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear, InStateTuition: 40000, OutOfStateTuition: 50000}})

	rows, err := svc.AvgTuitionByState(context.Background())
	if err != nil {
		t.Fatalf("AvgTuitionByState failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 states, got %d", len(rows))
	}
	// California's out-of-state average (50000) beats Texas's (25000).
	if rows[0].State != "California" {
		t.Errorf("Expected California first, got %q", rows[0].State)
	}
	if rows[0].AvgInState != 40000 || rows[0].AvgOutOfState != 50000 {
		t.Errorf("Expected California averages 40000/50000, got %f/%f", rows[0].AvgInState, rows[0].AvgOutOfState)
	}
	if rows[1].State != "Texas" || rows[1].AvgInState != 15000 || rows[1].AvgOutOfState != 25000 {
		t.Errorf("Expected Texas averages 15000/25000, got %q at %f/%f", rows[1].State, rows[1].AvgInState, rows[1].AvgOutOfState)
	}
}

func TestAvgEarlyPayByType(t *testing.T) {
	db := newReportTestDB(t)
	svc := NewReportService(db)

	mustCreate(t, db, &model.College{Name: "Public A", State: "Ohio",
		Tuition: &model.TuitionInfo{InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeFourYear},
		Salary:  &model.SalaryPotential{EarlyCareerPay: 40000, MidCareerPay: 80000}})
	mustCreate(t, db, &model.College{Name: "Public B", State: "Ohio",
		Tuition: &model.TuitionInfo{InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeFourYear},
		Salary:  &model.SalaryPotential{EarlyCareerPay: 60000, MidCareerPay: 100000}})
	mustCreate(t, db, &model.College{Name: "Private A", State: "New York",
		Tuition: &model.TuitionInfo{InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear},
		Salary:  &model.SalaryPotential{EarlyCareerPay: 80000, MidCareerPay: 140000}})
	// Salary data but no tuition row, so no institution type to group under.
	mustCreate(t, db, &model.College{Name: "Untyped", State: "Ohio",
		Salary: &model.SalaryPotential{EarlyCareerPay: 10000, MidCareerPay: 20000}})

	rows, err := svc.AvgEarlyPayByType(context.Background())
	if err != nil {
		t.Fatalf("AvgEarlyPayByType failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 institution types, got %d", len(rows))
	}
	if rows[0].InstitutionType != model.InstitutionPrivate || rows[0].AvgEarlyCareerPay != 80000 {
		t.Errorf("Expected Private averaging 80000 first, got %q at %f",
			rows[0].InstitutionType, rows[0].AvgEarlyCareerPay)
	}
	if rows[1].InstitutionType != model.InstitutionPublic || rows[1].AvgEarlyCareerPay != 50000 {
		t.Errorf("Expected Public averaging 50000, got %q at %f",
			rows[1].InstitutionType, rows[1].AvgEarlyCareerPay)
	}
}

func TestTopStatesByAvgMinorityLimit(t *testing.T) {
	db := newReportTestDB(t)
	svc := NewReportService(db)

	states := []string{"Arizona", "California", "Florida", "Georgia", "Hawaii", "Idaho"}
	for i, state := range states {
		mustCreate(t, db, &model.College{
			Name:      fmt.Sprintf("College of %s", state),
			State:     state,
			Diversity: &model.DiversityStats{TotalEnrollment: 10000, TotalMinority: (i + 1) * 1000},
		})
	}

	rows, err := svc.TopStatesByAvgMinority(context.Background())
	if err != nil {
		t.Fatalf("TopStatesByAvgMinority failed: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("Expected the list capped at 5 states, got %d", len(rows))
	}
	if rows[0].State != "Idaho" || rows[0].AvgMinority != 6000 {
		t.Errorf("Expected Idaho at 6000 first, got %q at %f", rows[0].State, rows[0].AvgMinority)
	}
	for _, row := range rows {
		if row.State == "Arizona" {
			t.Error("The lowest state should not make the top five")
		}
	}
}

func TestTopPayGrowth(t *testing.T) {
	db := newReportTestDB(t)
	svc := NewReportService(db)

	mustCreate(t, db, &model.College{Name: "Steep Curve", State: "Massachusetts",
		Salary: &model.SalaryPotential{EarlyCareerPay: 50000, MidCareerPay: 100000}})
	mustCreate(t, db, &model.College{Name: "Flat Curve", State: "Ohio",
		Salary: &model.SalaryPotential{EarlyCareerPay: 40000, MidCareerPay: 60000}})

	rows, err := svc.TopPayGrowth(context.Background())
	if err != nil {
		t.Fatalf("TopPayGrowth failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "Steep Curve" || rows[0].Growth != 50000 {
		t.Errorf("Expected Steep Curve with growth 50000 first, got %q at %d", rows[0].Name, rows[0].Growth)
	}
	if rows[1].Growth != 20000 {
		t.Errorf("Expected Flat Curve growth 20000, got %d", rows[1].Growth)
	}
}

func TestSummaryBackedRankings(t *testing.T) {
	db := newReportTestDB(t)
	svc := NewReportService(db)

	// Only colleges with both tuition and salary data reach the view;
	// Partial College has tuition alone and must be invisible here.
	mustCreate(t, db, &model.College{Name: "Alpha", State: "Ohio",
		Tuition: &model.TuitionInfo{InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeFourYear, InStateTuition: 9000},
		Salary:  &model.SalaryPotential{EarlyCareerPay: 45000, MidCareerPay: 85000, StemPercent: 20}})
	mustCreate(t, db, &model.College{Name: "Beta", State: "Texas",
		Tuition: &model.TuitionInfo{InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear, InStateTuition: 50000},
		Salary:  &model.SalaryPotential{EarlyCareerPay: 70000, MidCareerPay: 140000, StemPercent: 85}})
	mustCreate(t, db, &model.College{Name: "Gamma", State: "Utah",
		Tuition: &model.TuitionInfo{InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeTwoYear, InStateTuition: 3000},
		Salary:  &model.SalaryPotential{EarlyCareerPay: 38000, MidCareerPay: 62000, StemPercent: 5}})
	mustCreate(t, db, &model.College{Name: "Partial College", State: "Nevada",
		Tuition: &model.TuitionInfo{InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeFourYear, InStateTuition: 1000}})

	summaries, err := svc.Summaries(context.Background())
	if err != nil {
		t.Fatalf("Summaries failed: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("Expected 3 summarized colleges, got %d", len(summaries))
	}

	cheapest, err := svc.LowestInStateTuition(context.Background())
	if err != nil {
		t.Fatalf("LowestInStateTuition failed: %v", err)
	}
	if len(cheapest) != 3 || cheapest[0].Name != "Gamma" {
		t.Errorf("Expected Gamma cheapest, got %+v", cheapest)
	}

	topPay, err := svc.TopEarlyCareerPay(context.Background())
	if err != nil {
		t.Fatalf("TopEarlyCareerPay failed: %v", err)
	}
	if len(topPay) != 3 || topPay[0].Name != "Beta" || topPay[0].Pay != 70000 {
		t.Errorf("Expected Beta leading early pay, got %+v", topPay)
	}

	topStem, err := svc.TopStemShare(context.Background())
	if err != nil {
		t.Fatalf("TopStemShare failed: %v", err)
	}
	if len(topStem) != 3 || topStem[0].Name != "Beta" || topStem[0].StemPercent != 85 {
		t.Errorf("Expected Beta leading STEM share, got %+v", topStem)
	}
}

func TestReportsOnEmptyDatabase(t *testing.T) {
	db := newReportTestDB(t)
	svc := NewReportService(db)
	ctx := context.Background()

	if rows, err := svc.TuitionOverview(ctx); err != nil || rows == nil || len(rows) != 0 {
		t.Errorf("TuitionOverview on empty database: rows=%v err=%v", rows, err)
	}
	if rows, err := svc.DiversityOverview(ctx); err != nil || rows == nil || len(rows) != 0 {
		t.Errorf("DiversityOverview on empty database: rows=%v err=%v", rows, err)
	}
	if rows, err := svc.SalaryOverview(ctx); err != nil || rows == nil || len(rows) != 0 {
		t.Errorf("SalaryOverview on empty database: rows=%v err=%v", rows, err)
	}
	if rows, err := svc.TopMidCareerPay(ctx); err != nil || rows == nil || len(rows) != 0 {
		t.Errorf("TopMidCareerPay on empty database: rows=%v err=%v", rows, err)
	}
	if rows, err := svc.Summaries(ctx); err != nil || rows == nil || len(rows) != 0 {
		t.Errorf("Summaries on empty database: rows=%v err=%v", rows, err)
	}
	if rows, err := svc.AboveAvgEarlyPay(ctx); err != nil || rows == nil || len(rows) != 0 {
		t.Errorf("AboveAvgEarlyPay on empty database: rows=%v err=%v", rows, err)
	}
	if rows, err := svc.AvgTuitionByState(ctx); err != nil || rows == nil || len(rows) != 0 {
		t.Errorf("AvgTuitionByState on empty database: rows=%v err=%v", rows, err)
	}
	if rows, err := svc.TuitionBelowTypeAverage(ctx); err != nil || rows == nil || len(rows) != 0 {
		t.Errorf("TuitionBelowTypeAverage on empty database: rows=%v err=%v", rows, err)
	}
}
