package auth

import (
	"time"

	"github.com/collegemetrics/api/utils/auth"
	"github.com/collegemetrics/api/utils/middleware"
	"github.com/collegemetrics/api/utils/response"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles the administrator login. There is no user table;
// the single operator account comes from configuration.
type AuthHandler struct {
	jwtManager           *auth.JWTManager
	bruteForceProtection *middleware.BruteForceProtection
	adminEmail           string
	adminPasswordHash    string
}

// NewAuthHandler creates a new auth handler. The admin password is
// hashed once here so login verifies against a bcrypt hash.
func NewAuthHandler(jwtManager *auth.JWTManager, bruteForceProtection *middleware.BruteForceProtection, adminEmail, adminPassword string) *AuthHandler {
	handler := &AuthHandler{
		jwtManager:           jwtManager,
		bruteForceProtection: bruteForceProtection,
		adminEmail:           adminEmail,
	}

	if adminPassword == "" {
		zap.L().Warn("ADMIN_PASSWORD is not set, admin login is disabled")
		return handler
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		zap.L().Warn("failed to hash admin password, admin login is disabled", zap.Error(err))
		return handler
	}
	handler.adminPasswordHash = hash

	return handler
}

// LoginRequest represents an administrator login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate request
	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	ip := c.IP()

	// Check against the configured operator account
	if h.adminPasswordHash == "" || req.Email != h.adminEmail {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Invalid email or password")
	}

	// Verify password
	if err := auth.VerifyPassword(h.adminPasswordHash, req.Password); err != nil {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Invalid email or password")
	}

	// Clear failed attempts on successful login
	if h.bruteForceProtection != nil {
		h.bruteForceProtection.RecordSuccessfulAttempt(c, ip)
	}

	accessToken, _, err := h.jwtManager.GenerateAccessToken(h.adminEmail, "admin")
	if err != nil {
		return response.InternalServerError(c, "Failed to generate access token")
	}

	expiresAt, err := h.jwtManager.GetTokenExpiry(accessToken)
	if err != nil {
		return response.InternalServerError(c, "Failed to read token expiry")
	}

	res := LoginResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Email:       h.adminEmail,
		Role:        "admin",
	}

	return response.Success(c, res)
}

// Me handles GET /api/v1/auth/me
// Returns the identity baked into the presented token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := middleware.GetClaims(c)
	if !ok || claims == nil {
		return response.Unauthorized(c, "User not authenticated")
	}

	jti, _ := middleware.GetTokenJTI(c)

	return response.Success(c, fiber.Map{
		"email": claims.Email,
		"role":  claims.Role,
		"jti":   jti,
	})
}
