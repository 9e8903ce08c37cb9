package college

import (
	"errors"

	"github.com/collegemetrics/api/database"
	"github.com/collegemetrics/api/model"
	"github.com/collegemetrics/api/utils/middleware"
	"github.com/collegemetrics/api/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TuitionRequest represents the request body for tuition figures
type TuitionRequest struct {
	InstitutionType   string `json:"institution_type" validate:"required,oneof=Public Private 'For Profit'"`
	DegreeLength      string `json:"degree_length" validate:"required,oneof='2 Years' '4 Years'"`
	InStateTuition    int    `json:"in_state_tuition" validate:"gte=0"`
	InStateTotal      int    `json:"in_state_total" validate:"gte=0"`
	OutOfStateTuition int    `json:"out_of_state_tuition" validate:"gte=0"`
	OutOfStateTotal   int    `json:"out_of_state_total" validate:"gte=0"`
}

// DiversityRequest represents the request body for enrollment headcounts.
// TotalMinority is derived from the group counts on the server and is
// not accepted from the caller.
type DiversityRequest struct {
	TotalEnrollment int `json:"total_enrollment" validate:"gte=0"`
	Women           int `json:"women" validate:"gte=0"`
	AmericanIndian  int `json:"american_indian" validate:"gte=0"`
	Asian           int `json:"asian" validate:"gte=0"`
	Black           int `json:"black" validate:"gte=0"`
	Hispanic        int `json:"hispanic" validate:"gte=0"`
	PacificIslander int `json:"pacific_islander" validate:"gte=0"`
	White           int `json:"white" validate:"gte=0"`
	TwoOrMore       int `json:"two_or_more" validate:"gte=0"`
	Unknown         int `json:"unknown" validate:"gte=0"`
	NonResident     int `json:"non_resident" validate:"gte=0"`
}

// SalaryRequest represents the request body for alumni pay estimates
type SalaryRequest struct {
	EarlyCareerPay int `json:"early_career_pay" validate:"gte=0"`
	MidCareerPay   int `json:"mid_career_pay" validate:"gte=0"`
	StemPercent    int `json:"stem_percent" validate:"gte=0,lte=100"`
}

func isAdmin(c *fiber.Ctx) bool {
	role, ok := middleware.GetUserRole(c)
	return ok && role == "admin"
}

// collegeExists reports whether the parent college row is present.
func (h *CollegeHandler) collegeExists(id int) (bool, error) {
	var count int64
	err := h.db.Model(&model.College{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetTuition handles GET /api/v1/colleges/:id/tuition
func (h *CollegeHandler) GetTuition(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid college id")
	}

	var tuition model.TuitionInfo
	if err := h.db.Where("college_id = ?", id).First(&tuition).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "No tuition figures for this college")
		}
		return response.InternalServerError(c, "Failed to fetch tuition figures")
	}

	return response.Success(c, tuition)
}

// CreateTuition handles POST /api/v1/colleges/:id/tuition
// Creating a second tuition row for a college is a conflict; attaching
// one to a missing college is unprocessable.
func (h *CollegeHandler) CreateTuition(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid college id")
	}

	if !isAdmin(c) {
		return response.Forbidden(c, "Administrator access required")
	}

	var req TuitionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	exists, err := h.collegeExists(id)
	if err != nil {
		return response.InternalServerError(c, "Failed to check college")
	}
	if !exists {
		return response.UnprocessableEntity(c, "College does not exist")
	}

	tuition := model.TuitionInfo{
		CollegeID:         uint(id),
		InstitutionType:   req.InstitutionType,
		DegreeLength:      req.DegreeLength,
		InStateTuition:    req.InStateTuition,
		InStateTotal:      req.InStateTotal,
		OutOfStateTuition: req.OutOfStateTuition,
		OutOfStateTotal:   req.OutOfStateTotal,
	}

	if err := h.db.Create(&tuition).Error; err != nil {
		switch terr := database.Translate(err); {
		case errors.Is(terr, database.ErrDuplicate):
			return response.Conflict(c, "Tuition figures already recorded for this college")
		case errors.Is(terr, database.ErrMissingCollege):
			return response.UnprocessableEntity(c, "College does not exist")
		}
		return response.InternalServerError(c, "Failed to record tuition figures")
	}

	return response.Created(c, tuition)
}

// PutTuition handles PUT /api/v1/colleges/:id/tuition
// Creates the row if the college has none yet, updates it otherwise.
func (h *CollegeHandler) PutTuition(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid college id")
	}

	if !isAdmin(c) {
		return response.Forbidden(c, "Administrator access required")
	}

	var req TuitionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	exists, err := h.collegeExists(id)
	if err != nil {
		return response.InternalServerError(c, "Failed to check college")
	}
	if !exists {
		return response.UnprocessableEntity(c, "College does not exist")
	}

	var tuition model.TuitionInfo
	err = h.db.Where("college_id = ?", id).First(&tuition).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.InternalServerError(c, "Failed to fetch tuition figures")
	}

	tuition.CollegeID = uint(id)
	tuition.InstitutionType = req.InstitutionType
	tuition.DegreeLength = req.DegreeLength
	tuition.InStateTuition = req.InStateTuition
	tuition.InStateTotal = req.InStateTotal
	tuition.OutOfStateTuition = req.OutOfStateTuition
	tuition.OutOfStateTotal = req.OutOfStateTotal

	if err := h.db.Save(&tuition).Error; err != nil {
		if errors.Is(database.Translate(err), database.ErrMissingCollege) {
			return response.UnprocessableEntity(c, "College does not exist")
		}
		return response.InternalServerError(c, "Failed to save tuition figures")
	}

	return response.SuccessWithMessage(c, "Tuition figures saved successfully", tuition)
}

// DeleteTuition handles DELETE /api/v1/colleges/:id/tuition
func (h *CollegeHandler) DeleteTuition(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid college id")
	}

	if !isAdmin(c) {
		return response.Forbidden(c, "Administrator access required")
	}

	result := h.db.Where("college_id = ?", id).Delete(&model.TuitionInfo{})
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete tuition figures")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "No tuition figures for this college")
	}

	return response.SuccessWithMessage(c, "Tuition figures deleted successfully", nil)
}

// GetDiversity handles GET /api/v1/colleges/:id/diversity
func (h *CollegeHandler) GetDiversity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid college id")
	}

	var diversity model.DiversityStats
	if err := h.db.Where("college_id = ?", id).First(&diversity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "No enrollment stats for this college")
		}
		return response.InternalServerError(c, "Failed to fetch enrollment stats")
	}

	return response.Success(c, diversity)
}

// CreateDiversity handles POST /api/v1/colleges/:id/diversity
func (h *CollegeHandler) CreateDiversity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid college id")
	}

	if !isAdmin(c) {
		return response.Forbidden(c, "Administrator access required")
	}

	var req DiversityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	exists, err := h.collegeExists(id)
	if err != nil {
		return response.InternalServerError(c, "Failed to check college")
	}
	if !exists {
		return response.UnprocessableEntity(c, "College does not exist")
	}

	diversity := model.DiversityStats{
		CollegeID:       uint(id),
		TotalEnrollment: req.TotalEnrollment,
		Women:           req.Women,
		AmericanIndian:  req.AmericanIndian,
		Asian:           req.Asian,
		Black:           req.Black,
		Hispanic:        req.Hispanic,
		PacificIslander: req.PacificIslander,
		White:           req.White,
		TwoOrMore:       req.TwoOrMore,
		Unknown:         req.Unknown,
		NonResident:     req.NonResident,
	}
	diversity.TotalMinority = diversity.MinoritySum()

	if err := h.db.Create(&diversity).Error; err != nil {
		switch terr := database.Translate(err); {
		case errors.Is(terr, database.ErrDuplicate):
			return response.Conflict(c, "Enrollment stats already recorded for this college")
		case errors.Is(terr, database.ErrMissingCollege):
			return response.UnprocessableEntity(c, "College does not exist")
		}
		return response.InternalServerError(c, "Failed to record enrollment stats")
	}

	return response.Created(c, diversity)
}

// PutDiversity handles PUT /api/v1/colleges/:id/diversity
func (h *CollegeHandler) PutDiversity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid college id")
	}

	if !isAdmin(c) {
		return response.Forbidden(c, "Administrator access required")
	}

	var req DiversityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	exists, err := h.collegeExists(id)
	if err != nil {
		return response.InternalServerError(c, "Failed to check college")
	}
	if !exists {
		return response.UnprocessableEntity(c, "College does not exist")
	}

	var diversity model.DiversityStats
	err = h.db.Where("college_id = ?", id).First(&diversity).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.InternalServerError(c, "Failed to fetch enrollment stats")
	}

	diversity.CollegeID = uint(id)
	diversity.TotalEnrollment = req.TotalEnrollment
	diversity.Women = req.Women
	diversity.AmericanIndian = req.AmericanIndian
	diversity.Asian = req.Asian
	diversity.Black = req.Black
	diversity.Hispanic = req.Hispanic
	diversity.PacificIslander = req.PacificIslander
	diversity.White = req.White
	diversity.TwoOrMore = req.TwoOrMore
	diversity.Unknown = req.Unknown
	diversity.NonResident = req.NonResident
	diversity.TotalMinority = diversity.MinoritySum()

	if err := h.db.Save(&diversity).Error; err != nil {
		if errors.Is(database.Translate(err), database.ErrMissingCollege) {
			return response.UnprocessableEntity(c, "College does not exist")
		}
		return response.InternalServerError(c, "Failed to save enrollment stats")
	}

	return response.SuccessWithMessage(c, "Enrollment stats saved successfully", diversity)
}

// DeleteDiversity handles DELETE /api/v1/colleges/:id/diversity
func (h *CollegeHandler) DeleteDiversity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid college id")
	}

	if !isAdmin(c) {
		return response.Forbidden(c, "Administrator access required")
	}

	result := h.db.Where("college_id = ?", id).Delete(&model.DiversityStats{})
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete enrollment stats")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "No enrollment stats for this college")
	}

	return response.SuccessWithMessage(c, "Enrollment stats deleted successfully", nil)
}

// GetSalary handles GET /api/v1/colleges/:id/salary
func (h *CollegeHandler) GetSalary(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid college id")
	}

	var salary model.SalaryPotential
	if err := h.db.Where("college_id = ?", id).First(&salary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "No salary estimates for this college")
		}
		return response.InternalServerError(c, "Failed to fetch salary estimates")
	}

	return response.Success(c, salary)
}

// CreateSalary handles POST /api/v1/colleges/:id/salary
func (h *CollegeHandler) CreateSalary(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid college id")
	}

	if !isAdmin(c) {
		return response.Forbidden(c, "Administrator access required")
	}

	var req SalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	exists, err := h.collegeExists(id)
	if err != nil {
		return response.InternalServerError(c, "Failed to check college")
	}
	if !exists {
		return response.UnprocessableEntity(c, "College does not exist")
	}

	salary := model.SalaryPotential{
		CollegeID:      uint(id),
		EarlyCareerPay: req.EarlyCareerPay,
		MidCareerPay:   req.MidCareerPay,
		StemPercent:    req.StemPercent,
	}

	if err := h.db.Create(&salary).Error; err != nil {
		switch terr := database.Translate(err); {
		case errors.Is(terr, database.ErrDuplicate):
			return response.Conflict(c, "Salary estimates already recorded for this college")
		case errors.Is(terr, database.ErrMissingCollege):
			return response.UnprocessableEntity(c, "College does not exist")
		}
		return response.InternalServerError(c, "Failed to record salary estimates")
	}

	return response.Created(c, salary)
}

// PutSalary handles PUT /api/v1/colleges/:id/salary
func (h *CollegeHandler) PutSalary(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid college id")
	}

	if !isAdmin(c) {
		return response.Forbidden(c, "Administrator access required")
	}

	var req SalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	exists, err := h.collegeExists(id)
	if err != nil {
		return response.InternalServerError(c, "Failed to check college")
	}
	if !exists {
		return response.UnprocessableEntity(c, "College does not exist")
	}

	var salary model.SalaryPotential
	err = h.db.Where("college_id = ?", id).First(&salary).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.InternalServerError(c, "Failed to fetch salary estimates")
	}

	salary.CollegeID = uint(id)
	salary.EarlyCareerPay = req.EarlyCareerPay
	salary.MidCareerPay = req.MidCareerPay
	salary.StemPercent = req.StemPercent

	if err := h.db.Save(&salary).Error; err != nil {
		if errors.Is(database.Translate(err), database.ErrMissingCollege) {
			return response.UnprocessableEntity(c, "College does not exist")
		}
		return response.InternalServerError(c, "Failed to save salary estimates")
	}

	return response.SuccessWithMessage(c, "Salary estimates saved successfully", salary)
}

// DeleteSalary handles DELETE /api/v1/colleges/:id/salary
func (h *CollegeHandler) DeleteSalary(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid college id")
	}

	if !isAdmin(c) {
		return response.Forbidden(c, "Administrator access required")
	}

	result := h.db.Where("college_id = ?", id).Delete(&model.SalaryPotential{})
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to delete salary estimates")
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "No salary estimates for this college")
	}

	return response.SuccessWithMessage(c, "Salary estimates deleted successfully", nil)
}
