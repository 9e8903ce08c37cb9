package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/collegemetrics/api/services/objectstore"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ExportService renders the whole report catalog into one XLSX
// workbook, one sheet per query.
type ExportService struct {
	reports       *ReportService
	spaces        *objectstore.SpacesClient
	exportDir     string
	retentionDays int
}

// NewExportService creates a new export service. spaces may be nil when
// object storage is not configured; exports then stay on local disk.
func NewExportService(db *gorm.DB, spaces *objectstore.SpacesClient, exportDir string, retentionDays int) *ExportService {
	return &ExportService{
		reports:       NewReportService(db),
		spaces:        spaces,
		exportDir:     exportDir,
		retentionDays: retentionDays,
	}
}

// reportSheet is one rendered worksheet
type reportSheet struct {
	name    string
	headers []string
	rows    [][]interface{}
}

// BuildWorkbook runs every catalog query and renders the results
func (s *ExportService) BuildWorkbook(ctx context.Context) (*excelize.File, error) {
	sheets, err := s.collectSheets(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	for i, sheet := range sheets {
		if i == 0 {
			// Reuse the default sheet for the first report
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				return nil, fmt.Errorf("failed to name sheet %s: %w", sheet.name, err)
			}
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return nil, fmt.Errorf("failed to add sheet %s: %w", sheet.name, err)
			}
		}

		for col, header := range sheet.headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(sheet.name, cell, header)
		}

		for r, row := range sheet.rows {
			for col, value := range row {
				cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
				f.SetCellValue(sheet.name, cell, value)
			}
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

// collectSheets runs the catalog queries in a fixed order
func (s *ExportService) collectSheets(ctx context.Context) ([]reportSheet, error) {
	sheets := make([]reportSheet, 0, 20)

	tuition, err := s.reports.TuitionOverview(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([][]interface{}, 0, len(tuition))
	for _, r := range tuition {
		rows = append(rows, []interface{}{r.Name, r.State, r.InStateTuition, r.OutOfStateTuition})
	}
	sheets = append(sheets, reportSheet{"Tuition", []string{"Name", "State", "In-State Tuition", "Out-of-State Tuition"}, rows})

	diversity, err := s.reports.DiversityOverview(ctx)
	if err != nil {
		return nil, err
	}
	rows = make([][]interface{}, 0, len(diversity))
	for _, r := range diversity {
		rows = append(rows, []interface{}{r.Name, r.TotalEnrollment, r.TotalMinority})
	}
	sheets = append(sheets, reportSheet{"Diversity", []string{"Name", "Total Enrollment", "Total Minority"}, rows})

	salaries, err := s.reports.SalaryOverview(ctx)
	if err != nil {
		return nil, err
	}
	rows = make([][]interface{}, 0, len(salaries))
	for _, r := range salaries {
		rows = append(rows, []interface{}{r.Name, r.EarlyCareerPay, r.MidCareerPay})
	}
	sheets = append(sheets, reportSheet{"Salaries", []string{"Name", "Early Career Pay", "Mid Career Pay"}, rows})

	topMid, err := s.reports.TopMidCareerPay(ctx)
	if err != nil {
		return nil, err
	}
	rows = make([][]interface{}, 0, len(topMid))
	for _, r := range topMid {
		rows = append(rows, []interface{}{r.Name, r.Pay})
	}
	sheets = append(sheets, reportSheet{"Top Mid-Career Pay", []string{"Name", "Mid Career Pay"}, rows})

	summaries, err := s.reports.Summaries(ctx)
	if err != nil {
		return nil, err
	}
	rows = make([][]interface{}, 0, len(summaries))
	for _, r := range summaries {
		rows = append(rows, []interface{}{
			r.Name, r.State, r.InstitutionType, r.DegreeLength,
			r.InStateTuition, r.OutOfStateTuition,
			r.EarlyCareerPay, r.MidCareerPay, r.StemPercent,
		})
	}
	sheets = append(sheets, reportSheet{"Summary", []string{
		"Name", "State", "Institution Type", "Degree Length",
		"In-State Tuition", "Out-of-State Tuition",
		"Early Career Pay", "Mid Career Pay", "STEM Percent",
	}, rows})

	cheapest, err := s.reports.LowestInStateTuition(ctx)
	if err != nil {
		return nil, err
	}
	rows = make([][]interface{}, 0, len(cheapest))
	for _, r := range cheapest {
		rows = append(rows, []interface{}{r.Name, r.State, r.InStateTuition})
	}
	sheets = append(sheets, reportSheet{"Lowest In-State Tuition", []string{"Name", "State", "In-State Tuition"}, rows})

	topEarly, err := s.reports.TopEarlyCareerPay(ctx)
	if err != nil {
		return nil, err
	}
	rows = make([][]interface{}, 0, len(topEarly))
	for _, r := range topEarly {
		rows = append(rows, []interface{}{r.Name, r.Pay})
	}
	sheets = append(sheets, reportSheet{"Top Early-Career Pay", []string{"Name", "Early Career Pay"}, rows})

	topStem, err := s.reports.TopStemShare(ctx)
	if err != nil {
		return nil, err
	}
	rows = make([][]interface{}, 0, len(topStem))
	for _, r := range topStem {
		rows = append(rows, []interface{}{r.Name, r.StemPercent})
	}
	sheets = append(sheets, reportSheet{"Top STEM Share", []string{"Name", "STEM Percent"}, rows})

	topTwoYear, err := s.reports.TopTwoYearMidCareerPay(ctx)
	if err != nil {
		return nil, err
	}
	rows = make([][]interface{}, 0, len(topTwoYear))
	for _, r := range topTwoYear {
		rows = append(rows, []interface{}{r.Name, r.Pay})
	}
	sheets = append(sheets, reportSheet{"Top 2-Year Mid-Career Pay", []string{"Name", "Mid Career Pay"}, rows})

	stateTuition, err := s.reports.AvgTuitionByState(ctx)
	if err != nil {
		return nil, err
	}
	rows = make([][]interface{}, 0, len(stateTuition))
	for _, r := range stateTuition {
		rows = append(rows, []interface{}{r.State, r.AvgInState, r.AvgOutOfState})
	}
	sheets = append(sheets, reportSheet{"Avg Tuition by State", []string{"State", "Avg In-State", "Avg Out-of-State"}, rows})

	typePay, err := s.reports.AvgEarlyPayByType(ctx)
	if err != nil {
		return nil, err
	}
	rows = make([][]interface{}, 0, len(typePay))
	for _, r := range typePay {
		rows = append(rows, []interface{}{r.InstitutionType, r.AvgEarlyCareerPay})
	}
	sheets = append(sheets, reportSheet{"Avg Early Pay by Type", []string{"Institution Type", "Avg Early Career Pay"}, rows})

	minorityStates, err := s.reports.TopStatesByAvgMinority(ctx)
	if err != nil {
		return nil, err
	}
	rows = make([][]interface{}, 0, len(minorityStates))
	for _, r := range minorityStates {
		rows = append(rows, []interface{}{r.State, r.AvgMinority})
	}
	sheets = append(sheets, reportSheet{"Top States by Avg Minority", []string{"State", "Avg Minority"}, rows})

	abovePay, err := s.reports.AboveAvgEarlyPay(ctx)
	if err != nil {
		return nil, err
	}
	rows = make([][]interface{}, 0, len(abovePay))
	for _, r := range abovePay {
		rows = append(rows, []interface{}{r.Name, r.Pay})
	}
	sheets = append(sheets, reportSheet{"Above-Avg Early Pay", []string{"Name", "Early Career Pay"}, rows})

	aboveMinority, err := s.reports.AboveAvgMinority(ctx)
	if err != nil {
		return nil, err
	}
	rows = make([][]interface{}, 0, len(aboveMinority))
	for _, r := range aboveMinority {
		rows = append(rows, []interface{}{r.Name, r.TotalMinority})
	}
	sheets = append(sheets, reportSheet{"Above-Avg Minority", []string{"Name", "Total Minority"}, rows})

	growth, err := s.reports.TopPayGrowth(ctx)
	if err != nil {
		return nil, err
	}
	rows = make([][]interface{}, 0, len(growth))
	for _, r := range growth {
		rows = append(rows, []interface{}{r.Name, r.Growth})
	}
	sheets = append(sheets, reportSheet{"Top Pay Growth", []string{"Name", "Pay Growth"}, rows})

	diversePublic, err := s.reports.MostDiversePublic(ctx)
	if err != nil {
		return nil, err
	}
	rows = make([][]interface{}, 0, len(diversePublic))
	for _, r := range diversePublic {
		rows = append(rows, []interface{}{r.Name, r.TotalMinority})
	}
	sheets = append(sheets, reportSheet{"Most Diverse Public", []string{"Name", "Total Minority"}, rows})

	cheapPrivate, err := s.reports.CheapestPrivate(ctx)
	if err != nil {
		return nil, err
	}
	rows = make([][]interface{}, 0, len(cheapPrivate))
	for _, r := range cheapPrivate {
		rows = append(rows, []interface{}{r.Name, r.InStateTotal})
	}
	sheets = append(sheets, reportSheet{"Cheapest Private", []string{"Name", "In-State Total"}, rows})

	lowWomen, err := s.reports.LowWomenEnrollment(ctx)
	if err != nil {
		return nil, err
	}
	rows = make([][]interface{}, 0, len(lowWomen))
	for _, r := range lowWomen {
		rows = append(rows, []interface{}{r.Name, r.Women})
	}
	sheets = append(sheets, reportSheet{"Low Women Enrollment", []string{"Name", "Women"}, rows})

	avgMidPay, err := s.reports.AvgMidPayLargeColleges(ctx)
	if err != nil {
		return nil, err
	}
	rows = [][]interface{}{}
	if avgMidPay != nil {
		rows = append(rows, []interface{}{*avgMidPay})
	}
	sheets = append(sheets, reportSheet{"Avg Mid Pay Large Colleges", []string{"Avg Mid Career Pay"}, rows})

	belowType, err := s.reports.TuitionBelowTypeAverage(ctx)
	if err != nil {
		return nil, err
	}
	rows = make([][]interface{}, 0, len(belowType))
	for _, r := range belowType {
		rows = append(rows, []interface{}{r.Name, r.State, r.InStateTuition})
	}
	sheets = append(sheets, reportSheet{"Tuition Below Type Avg", []string{"Name", "State", "In-State Tuition"}, rows})

	return sheets, nil
}

// ExportToFile writes the workbook into the export directory and, when
// object storage is configured, uploads a copy. Returns the local path.
func (s *ExportService) ExportToFile(ctx context.Context) (string, error) {
	f, err := s.BuildWorkbook(ctx)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.exportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	filename := fmt.Sprintf("college-report-%s.xlsx", time.Now().Format("2006-01-02"))
	path := filepath.Join(s.exportDir, filename)

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	if s.spaces != nil {
		buf, err := f.WriteToBuffer()
		if err != nil {
			return path, fmt.Errorf("failed to buffer workbook: %w", err)
		}

		key := objectstore.GenerateKey("exports", filename)
		url, err := s.spaces.UploadBytes(ctx, key, buf.Bytes(), objectstore.GetContentType(filename))
		if err != nil {
			// The local file is already written; a failed upload is not fatal
			zap.L().Warn("export upload failed", zap.String("key", key), zap.Error(err))
		} else {
			zap.L().Info("export uploaded", zap.String("url", url))
		}
	}

	return path, nil
}

// CleanupOldExports removes export files older than the retention
// window and reports how many were deleted
func (s *ExportService) CleanupOldExports() (int, error) {
	entries, err := os.ReadDir(s.exportDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read export directory: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".xlsx" {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(s.exportDir, entry.Name())); err != nil {
				zap.L().Warn("failed to remove old export", zap.String("file", entry.Name()), zap.Error(err))
				continue
			}
			removed++
		}
	}

	return removed, nil
}
