package report

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/collegemetrics/api/database"
	"github.com/collegemetrics/api/model"
	"github.com/collegemetrics/api/services"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newReportApp(t *testing.T) (*fiber.App, *gorm.DB) {
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

	reportService := services.NewReportService(db)
	exportService := services.NewExportService(db, nil, t.TempDir(), 30)
	handler := NewReportHandler(reportService, exportService)

	app := fiber.New()
	reports := app.Group("/api/v1/reports")
	reports.Get("/tuition", handler.TuitionOverview)
	reports.Get("/diversity", handler.DiversityOverview)
	reports.Get("/salaries", handler.SalaryOverview)
	reports.Get("/top-mid-career-pay", handler.TopMidCareerPay)
	reports.Get("/summary", handler.Summaries)
	reports.Get("/lowest-in-state-tuition", handler.LowestInStateTuition)
	reports.Get("/top-early-career-pay", handler.TopEarlyCareerPay)
	reports.Get("/top-stem-share", handler.TopStemShare)
	reports.Get("/top-two-year-mid-career-pay", handler.TopTwoYearMidCareerPay)
	reports.Get("/avg-tuition-by-state", handler.AvgTuitionByState)
	reports.Get("/avg-early-pay-by-type", handler.AvgEarlyPayByType)
	reports.Get("/top-states-by-avg-minority", handler.TopStatesByAvgMinority)
	reports.Get("/above-avg-early-pay", handler.AboveAvgEarlyPay)
	reports.Get("/above-avg-minority", handler.AboveAvgMinority)
	reports.Get("/top-pay-growth", handler.TopPayGrowth)
	reports.Get("/most-diverse-public", handler.MostDiversePublic)
	reports.Get("/cheapest-private", handler.CheapestPrivate)
	reports.Get("/low-women-enrollment", handler.LowWomenEnrollment)
	reports.Get("/avg-mid-pay-large-colleges", handler.AvgMidPayLargeColleges)
	reports.Get("/tuition-below-type-average", handler.TuitionBelowTypeAverage)
	reports.Get("/export", handler.Export)

	return app, db
}

func seedReportData(t *testing.T, db *gorm.DB) {
	t.Helper()

	colleges := []model.College{
		{
			Name: "Rice University", State: "Texas",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear,
				InStateTuition: 48330, InStateTotal: 62350, OutOfStateTuition: 48330, OutOfStateTotal: 62350,
			},
			Diversity: &model.DiversityStats{TotalEnrollment: 6989, Women: 3321, TotalMinority: 3654},
			Salary:    &model.SalaryPotential{EarlyCareerPay: 70600, MidCareerPay: 139100, StemPercent: 52},
		},
		{
			Name: "Arizona State University-Tempe", State: "Arizona",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeFourYear,
				InStateTuition: 10822, InStateTotal: 25002, OutOfStateTuition: 28336, OutOfStateTotal: 42516,
			},
			Diversity: &model.DiversityStats{TotalEnrollment: 44461, Women: 21383, TotalMinority: 19006},
			Salary:    &model.SalaryPotential{EarlyCareerPay: 56700, MidCareerPay: 103200, StemPercent: 25},
		},
		{
			// Tuition only; must stay out of the summary view.
			Name: "Sweet Briar College", State: "Virginia",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear,
				InStateTuition: 22160, InStateTotal: 35460, OutOfStateTuition: 22160, OutOfStateTotal: 35460,
			},
		},
	}
	for i := range colleges {
		if err := db.Create(&colleges[i]).Error; err != nil {
			t.Fatalf("Failed to seed %q: %v", colleges[i].Name, err)
		}
	}
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode %s response: %v", path, err)
	}
	return resp.StatusCode, body
}

func TestReportEndpointsRespond(t *testing.T) {
	app, db := newReportApp(t)
	seedReportData(t, db)

	listPaths := []string{
		"/api/v1/reports/tuition",
		"/api/v1/reports/diversity",
		"/api/v1/reports/salaries",
		"/api/v1/reports/top-mid-career-pay",
		"/api/v1/reports/summary",
		"/api/v1/reports/lowest-in-state-tuition",
		"/api/v1/reports/top-early-career-pay",
		"/api/v1/reports/top-stem-share",
		"/api/v1/reports/top-two-year-mid-career-pay",
		"/api/v1/reports/avg-tuition-by-state",
		"/api/v1/reports/avg-early-pay-by-type",
		"/api/v1/reports/top-states-by-avg-minority",
		"/api/v1/reports/above-avg-early-pay",
		"/api/v1/reports/above-avg-minority",
		"/api/v1/reports/top-pay-growth",
		"/api/v1/reports/most-diverse-public",
		"/api/v1/reports/cheapest-private",
		"/api/v1/reports/low-women-enrollment",
		"/api/v1/reports/tuition-below-type-average",
	}

	for _, path := range listPaths {
		status, body := getJSON(t, app, path)
		if status != fiber.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, status)
			continue
		}
		if success, _ := body["success"].(bool); !success {
			t.Errorf("%s: expected success envelope, got %v", path, body)
			continue
		}
		// Every list report returns an array, present even when empty.
		if _, ok := body["data"].([]interface{}); !ok {
			t.Errorf("%s: expected array data, got %T", path, body["data"])
		}
	}
}

func TestSummaryReportSkipsPartialColleges(t *testing.T) {
	app, db := newReportApp(t)
	seedReportData(t, db)

	status, body := getJSON(t, app, "/api/v1/reports/summary")
	if status != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	rows := body["data"].([]interface{})
	if len(rows) != 2 {
		t.Fatalf("Expected 2 summarized colleges, got %d", len(rows))
	}
	for _, raw := range rows {
		row := raw.(map[string]interface{})
		if row["name"] == "Sweet Briar College" {
			t.Error("College without salary data must not be summarized")
		}
	}
}

func TestAvgMidPayLargeCollegesNullWhenNoData(t *testing.T) {
	app, db := newReportApp(t)

	status, body := getJSON(t, app, "/api/v1/reports/avg-mid-pay-large-colleges")
	if status != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	data := body["data"].(map[string]interface{})
	if value, present := data["avg_mid_career_pay"]; !present || value != nil {
		t.Errorf("Expected an explicit null with no qualifying colleges, got %v", value)
	}

	seedReportData(t, db)

	status, body = getJSON(t, app, "/api/v1/reports/avg-mid-pay-large-colleges")
	if status != fiber.StatusOK {
		t.Fatalf("Expected 200, got %d", status)
	}
	data = body["data"].(map[string]interface{})
	// Only Arizona State clears the 20000-student bar.
	if data["avg_mid_career_pay"] != float64(103200) {
		t.Errorf("Expected 103200, got %v", data["avg_mid_career_pay"])
	}
}

func TestExportEndpointStreamsWorkbook(t *testing.T) {
	app, db := newReportApp(t)
	seedReportData(t, db)

	req := httptest.NewRequest("GET", "/api/v1/reports/export", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Export request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Unexpected content type %q", ct)
	}
	disposition := resp.Header.Get("Content-Disposition")
	if !strings.HasPrefix(disposition, `attachment; filename="college-report-`) {
		t.Errorf("Unexpected content disposition %q", disposition)
	}

	f, err := excelize.OpenReader(resp.Body)
	if err != nil {
		t.Fatalf("Response body is not a readable workbook: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 20 {
		t.Errorf("Expected 20 sheets in the exported workbook, got %d: %v", len(sheets), sheets)
	}
	if got, _ := f.GetCellValue("Tuition", "A2"); got == "" {
		t.Error("Expected tuition data in the exported workbook")
	}
}
