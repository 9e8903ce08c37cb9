package report

import (
	"fmt"
	"time"

	"github.com/collegemetrics/api/services"
	"github.com/collegemetrics/api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// ReportHandler serves the read-only report catalog
type ReportHandler struct {
	reportService *services.ReportService
	exportService *services.ExportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService, exportService *services.ExportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		exportService: exportService,
	}
}

// TuitionOverview handles GET /api/v1/reports/tuition
func (h *ReportHandler) TuitionOverview(c *fiber.Ctx) error {
	rows, err := h.reportService.TuitionOverview(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch tuition report: "+err.Error())
	}
	return response.Success(c, rows)
}

// DiversityOverview handles GET /api/v1/reports/diversity
func (h *ReportHandler) DiversityOverview(c *fiber.Ctx) error {
	rows, err := h.reportService.DiversityOverview(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch diversity report: "+err.Error())
	}
	return response.Success(c, rows)
}

// SalaryOverview handles GET /api/v1/reports/salaries
func (h *ReportHandler) SalaryOverview(c *fiber.Ctx) error {
	rows, err := h.reportService.SalaryOverview(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch salary report: "+err.Error())
	}
	return response.Success(c, rows)
}

// TopMidCareerPay handles GET /api/v1/reports/top-mid-career-pay
func (h *ReportHandler) TopMidCareerPay(c *fiber.Ctx) error {
	rows, err := h.reportService.TopMidCareerPay(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch top mid-career pay: "+err.Error())
	}
	return response.Success(c, rows)
}

// Summaries handles GET /api/v1/reports/summary
func (h *ReportHandler) Summaries(c *fiber.Ctx) error {
	rows, err := h.reportService.Summaries(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch college summaries: "+err.Error())
	}
	return response.Success(c, rows)
}

// LowestInStateTuition handles GET /api/v1/reports/lowest-in-state-tuition
func (h *ReportHandler) LowestInStateTuition(c *fiber.Ctx) error {
	rows, err := h.reportService.LowestInStateTuition(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch lowest in-state tuition: "+err.Error())
	}
	return response.Success(c, rows)
}

// TopEarlyCareerPay handles GET /api/v1/reports/top-early-career-pay
func (h *ReportHandler) TopEarlyCareerPay(c *fiber.Ctx) error {
	rows, err := h.reportService.TopEarlyCareerPay(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch top early-career pay: "+err.Error())
	}
	return response.Success(c, rows)
}

// TopStemShare handles GET /api/v1/reports/top-stem-share
func (h *ReportHandler) TopStemShare(c *fiber.Ctx) error {
	rows, err := h.reportService.TopStemShare(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch top STEM share: "+err.Error())
	}
	return response.Success(c, rows)
}

// TopTwoYearMidCareerPay handles GET /api/v1/reports/top-two-year-mid-career-pay
func (h *ReportHandler) TopTwoYearMidCareerPay(c *fiber.Ctx) error {
	rows, err := h.reportService.TopTwoYearMidCareerPay(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch top two-year mid-career pay: "+err.Error())
	}
	return response.Success(c, rows)
}

// AvgTuitionByState handles GET /api/v1/reports/avg-tuition-by-state
func (h *ReportHandler) AvgTuitionByState(c *fiber.Ctx) error {
	rows, err := h.reportService.AvgTuitionByState(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch average tuition by state: "+err.Error())
	}
	return response.Success(c, rows)
}

// AvgEarlyPayByType handles GET /api/v1/reports/avg-early-pay-by-type
func (h *ReportHandler) AvgEarlyPayByType(c *fiber.Ctx) error {
	rows, err := h.reportService.AvgEarlyPayByType(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch average early pay by type: "+err.Error())
	}
	return response.Success(c, rows)
}

// TopStatesByAvgMinority handles GET /api/v1/reports/top-states-by-avg-minority
func (h *ReportHandler) TopStatesByAvgMinority(c *fiber.Ctx) error {
	rows, err := h.reportService.TopStatesByAvgMinority(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch top states by average minority: "+err.Error())
	}
	return response.Success(c, rows)
}

// AboveAvgEarlyPay handles GET /api/v1/reports/above-avg-early-pay
func (h *ReportHandler) AboveAvgEarlyPay(c *fiber.Ctx) error {
	rows, err := h.reportService.AboveAvgEarlyPay(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch above-average early pay: "+err.Error())
	}
	return response.Success(c, rows)
}

// AboveAvgMinority handles GET /api/v1/reports/above-avg-minority
func (h *ReportHandler) AboveAvgMinority(c *fiber.Ctx) error {
	rows, err := h.reportService.AboveAvgMinority(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch above-average minority: "+err.Error())
	}
	return response.Success(c, rows)
}

// TopPayGrowth handles GET /api/v1/reports/top-pay-growth
func (h *ReportHandler) TopPayGrowth(c *fiber.Ctx) error {
	rows, err := h.reportService.TopPayGrowth(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch top pay growth: "+err.Error())
	}
	return response.Success(c, rows)
}

// MostDiversePublic handles GET /api/v1/reports/most-diverse-public
func (h *ReportHandler) MostDiversePublic(c *fiber.Ctx) error {
	rows, err := h.reportService.MostDiversePublic(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch most diverse public colleges: "+err.Error())
	}
	return response.Success(c, rows)
}

// CheapestPrivate handles GET /api/v1/reports/cheapest-private
func (h *ReportHandler) CheapestPrivate(c *fiber.Ctx) error {
	rows, err := h.reportService.CheapestPrivate(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch cheapest private colleges: "+err.Error())
	}
	return response.Success(c, rows)
}

// LowWomenEnrollment handles GET /api/v1/reports/low-women-enrollment
func (h *ReportHandler) LowWomenEnrollment(c *fiber.Ctx) error {
	rows, err := h.reportService.LowWomenEnrollment(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch low women enrollment: "+err.Error())
	}
	return response.Success(c, rows)
}

// AvgMidPayLargeColleges handles GET /api/v1/reports/avg-mid-pay-large-colleges
// The value is null when no college passes the enrollment cutoff.
func (h *ReportHandler) AvgMidPayLargeColleges(c *fiber.Ctx) error {
	avg, err := h.reportService.AvgMidPayLargeColleges(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch average mid pay for large colleges: "+err.Error())
	}
	return response.Success(c, fiber.Map{
		"avg_mid_career_pay": avg,
	})
}

// TuitionBelowTypeAverage handles GET /api/v1/reports/tuition-below-type-average
func (h *ReportHandler) TuitionBelowTypeAverage(c *fiber.Ctx) error {
	rows, err := h.reportService.TuitionBelowTypeAverage(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch tuition below type average: "+err.Error())
	}
	return response.Success(c, rows)
}

// Export handles GET /api/v1/reports/export
// Streams the full catalog as an XLSX workbook, one sheet per report.
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	f, err := h.exportService.BuildWorkbook(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build export workbook: "+err.Error())
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return response.InternalServerError(c, "Failed to write export workbook: "+err.Error())
	}

	filename := fmt.Sprintf("college-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))

	return c.Send(buf.Bytes())
}
