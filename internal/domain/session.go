package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DashboardSubject = "dashboard"

type Claims struct {
	AutoAuth bool `json:"auto_auth,omitempty"`
	jwt.RegisteredClaims
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
