package middleware

import (
	"strings"

	"github.com/collegemetrics/api/utils/auth"
	"github.com/collegemetrics/api/utils/response"
	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware handles JWT authentication. There is no user table;
// tokens are validated purely against the signing secret, and the only
// role ever issued is "admin".
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
	}
}

// Required is middleware that requires a valid JWT token
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := m.authenticate(c)
		if err != nil {
			return err
		}

		storeClaims(c, claims)
		return c.Next()
	}
}

// RequireAdmin is middleware that requires a valid token carrying the
// admin role. All write endpoints sit behind this.
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := m.authenticate(c)
		if err != nil {
			return err
		}

		// Check for admin role
		if claims.Role != "admin" {
			return response.Forbidden(c, "Admin access required")
		}

		storeClaims(c, claims)
		return c.Next()
	}
}

// authenticate parses and validates the Bearer token on the request.
// The returned error is already a fiber response.
func (m *AuthMiddleware) authenticate(c *fiber.Ctx) (*auth.Claims, error) {
	// Get token from Authorization header
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, response.Unauthorized(c, "Missing authorization token")
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, response.Unauthorized(c, "Invalid authorization format")
	}

	tokenString := parts[1]

	// Validate token
	claims, err := m.jwtManager.ValidateToken(tokenString)
	if err != nil {
		if err == auth.ErrExpiredToken {
			return nil, response.Unauthorized(c, "Token has expired")
		}
		return nil, response.Unauthorized(c, "Invalid token")
	}

	// Check if it's an access token
	if claims.TokenType != "access" {
		return nil, response.Unauthorized(c, "Invalid token type")
	}

	return claims, nil
}

func storeClaims(c *fiber.Ctx, claims *auth.Claims) {
	c.Locals("user_email", claims.Email)
	c.Locals("user_role", claims.Role)
	c.Locals("claims", claims)
	c.Locals("token_jti", claims.ID)
}

// GetUserEmail extracts the authenticated email from context
func GetUserEmail(c *fiber.Ctx) (string, bool) {
	email := c.Locals("user_email")
	if email == nil {
		return "", false
	}
	e, ok := email.(string)
	return e, ok
}

// GetUserRole extracts the authenticated role from context
func GetUserRole(c *fiber.Ctx) (string, bool) {
	role := c.Locals("user_role")
	if role == nil {
		return "", false
	}
	r, ok := role.(string)
	return r, ok
}

// GetClaims extracts full claims from context
func GetClaims(c *fiber.Ctx) (*auth.Claims, bool) {
	claims := c.Locals("claims")
	if claims == nil {
		return nil, false
	}
	claimsData, ok := claims.(*auth.Claims)
	return claimsData, ok
}

// GetTokenJTI extracts the token JTI from context
func GetTokenJTI(c *fiber.Ctx) (string, bool) {
	jti := c.Locals("token_jti")
	if jti == nil {
		return "", false
	}
	j, ok := jti.(string)
	return j, ok
}
