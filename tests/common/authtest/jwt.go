//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"checkin-core/internal/pkg/config"
	"checkin-core/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret, cfg.Issuer)}
}

// GenerateToken issues an hour-long token for a fresh staff ID.
func (h *JWTHelper) GenerateToken(t *testing.T, role jwt.Role) (string, string) {
	t.Helper()
	staffID := uuid.NewString()
	token, err := h.service.GenerateToken(staffID, role, time.Hour)
	require.NoError(t, err)
	return token, staffID
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, role jwt.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(uuid.NewString(), role, -time.Minute)
	require.NoError(t, err)
	return token
}
