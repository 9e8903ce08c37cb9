package college

import (
	"errors"
	"strconv"

	"github.com/collegemetrics/api/database"
	"github.com/collegemetrics/api/model"
	"github.com/collegemetrics/api/utils/middleware"
	"github.com/collegemetrics/api/utils/response"
	"github.com/collegemetrics/api/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CollegeHandler handles college-related requests
type CollegeHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewCollegeHandler creates a new college handler
func NewCollegeHandler(db *gorm.DB) *CollegeHandler {
	return &CollegeHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateCollegeRequest represents the request body for creating a college
type CreateCollegeRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=255"`
	State string `json:"state" validate:"required,min=2,max=64"`
}

// UpdateCollegeRequest represents the request body for updating a college
type UpdateCollegeRequest struct {
	Name  string `json:"name" validate:"omitempty,min=2,max=255"`
	State string `json:"state" validate:"omitempty,min=2,max=64"`
}

// ListColleges handles GET /api/v1/colleges
func (h *CollegeHandler) ListColleges(c *fiber.Ctx) error {
	// Parse query parameters
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	search := c.Query("search", "")
	state := c.Query("state", "")

	// Build query
	query := h.db.Model(&model.College{})

	// Apply filters
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if state != "" {
		query = query.Where("state = ?", state)
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count colleges")
	}

	// Calculate pagination
	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	// Get colleges with pagination
	var colleges []model.College
	if err := query.Order("state ASC, name ASC").
		Limit(limit).
		Offset(offset).
		Find(&colleges).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch colleges")
	}

	return response.Paginated(c, colleges, pagination)
}

// GetCollege handles GET /api/v1/colleges/:id
func (h *CollegeHandler) GetCollege(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid college id")
	}

	var college model.College
	if err := h.db.Preload("Tuition").Preload("Diversity").Preload("Salary").
		First(&college, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "College not found")
		}
		return response.InternalServerError(c, "Failed to fetch college")
	}

	return response.Success(c, college)
}

// CreateCollege handles POST /api/v1/colleges
func (h *CollegeHandler) CreateCollege(c *fiber.Ctx) error {
	// Authorization: Admin only
	role, ok := middleware.GetUserRole(c)
	if !ok || role != "admin" {
		return response.Forbidden(c, "Only administrators can create colleges")
	}

	// Parse request body
	var req CreateCollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate request
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	// Sanitize inputs
	req.Name = validation.SanitizeString(req.Name)
	req.State = validation.SanitizeString(req.State)

	// Create college; the (name, state) pair must be unique
	college := model.College{
		Name:  req.Name,
		State: req.State,
	}

	if err := h.db.Create(&college).Error; err != nil {
		if errors.Is(database.Translate(err), database.ErrDuplicate) {
			return response.Conflict(c, "College with this name and state already exists")
		}
		return response.InternalServerError(c, "Failed to create college")
	}

	return response.Created(c, college)
}

// UpdateCollege handles PUT /api/v1/colleges/:id
func (h *CollegeHandler) UpdateCollege(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid college id")
	}

	// Authorization: Admin only
	role, ok := middleware.GetUserRole(c)
	if !ok || role != "admin" {
		return response.Forbidden(c, "Only administrators can update colleges")
	}

	// Parse request body
	var req UpdateCollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate request
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	// Check if college exists
	var college model.College
	if err := h.db.First(&college, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "College not found")
		}
		return response.InternalServerError(c, "Failed to fetch college")
	}

	// Update fields if provided
	if req.Name != "" {
		college.Name = validation.SanitizeString(req.Name)
	}
	if req.State != "" {
		college.State = validation.SanitizeString(req.State)
	}

	// Save changes; renaming onto an existing (name, state) pair is a conflict
	if err := h.db.Save(&college).Error; err != nil {
		if errors.Is(database.Translate(err), database.ErrDuplicate) {
			return response.Conflict(c, "College with this name and state already exists")
		}
		return response.InternalServerError(c, "Failed to update college")
	}

	return response.SuccessWithMessage(c, "College updated successfully", college)
}

// DeleteCollege handles DELETE /api/v1/colleges/:id
// The tuition, diversity, and salary rows cascade with the college.
func (h *CollegeHandler) DeleteCollege(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid college id")
	}

	// Authorization: Admin only
	role, ok := middleware.GetUserRole(c)
	if !ok || role != "admin" {
		return response.Forbidden(c, "Only administrators can delete colleges")
	}

	// Check if college exists
	var college model.College
	if err := h.db.First(&college, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "College not found")
		}
		return response.InternalServerError(c, "Failed to fetch college")
	}

	if err := h.db.Delete(&college).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete college: "+err.Error())
	}

	return response.SuccessWithMessage(c, "College and its extension rows deleted successfully", nil)
}
