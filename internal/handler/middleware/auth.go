package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"checkin-core/internal/handler/httperr"
	"checkin-core/internal/pkg/cookie"
	"checkin-core/internal/pkg/jwt"
	"checkin-core/internal/usecase"
	"checkin-core/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxStaffIDKey   = "staff_id"
	ctxStaffRoleKey = "staff_role"
)

var roleHierarchy = map[jwt.Role]int{
	jwt.RoleVolunteer: 1,
	jwt.RoleStaff:     2,
	jwt.RoleAdmin:     3,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth validates the staff token and puts the staff id on the request
// context so history entries and notices carry it.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)
			return
		}

		staffID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetStaff(c, staffID, role)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole jwt.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetStaffRole(c)
		if !ok {
			// RequireAuth must run first
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
			return
		}

		if !hasMinimumRole(role, minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, nil, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

// SetStaff records an authenticated staff member on c.
func SetStaff(c *gin.Context, staffID string, role jwt.Role) {
	c.Set(ctxStaffIDKey, staffID)
	c.Set(ctxStaffRoleKey, role)
	c.Set("jwt_claims", map[string]any{
		"staff_id": staffID,
		"role":     string(role),
	})
	c.Request = c.Request.WithContext(shared.WithActor(c.Request.Context(), staffID))
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func hasMinimumRole(role, minRole jwt.Role) bool {
	level, ok := roleHierarchy[role]
	minLevel, minOK := roleHierarchy[minRole]
	return ok && minOK && level >= minLevel
}

func GetStaffID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxStaffIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func GetStaffRole(c *gin.Context) (jwt.Role, bool) {
	v, exists := c.Get(ctxStaffRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(jwt.Role)
	return role, ok
}
