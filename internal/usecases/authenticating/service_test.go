package authenticating

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/storymaker/tracking-api/internal/config"
	"github.com/storymaker/tracking-api/internal/domain"
	"github.com/storymaker/tracking-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newConfig(dashboard config.Dashboard, env string) *config.Config {
	return &config.Config{
		App:       config.App{Env: env},
		Dashboard: dashboard,
		SecretKey: "test-secret",
	}
}

func TestService_Login(t *testing.T) {
	service, err := NewService(newConfig(config.Dashboard{Password: "storymaker123"}, "production"))
	require.NoError(t, err)

	session, err := service.Login(context.Background(), "storymaker123")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.WithinDuration(t, time.Now().Add(defaultTokenTTL), session.ExpiresAt, time.Minute)

	claims, err := service.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.DashboardSubject, claims.Subject)
	assert.Len(t, claims.ID, tokenIDLength)
	assert.False(t, claims.AutoAuth)
}

func TestService_Login_Failures(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha-forte"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name      string
		dashboard config.Dashboard
		password  string
		wantErr   error
		wantCode  string
	}{
		{
			name:      "senha vazia",
			dashboard: config.Dashboard{PasswordHash: string(hash)},
			password:  "",
			wantErr:   ErrMissingRequiredData,
			wantCode:  apiErrors.ErrMissingRequiredData,
		},
		{
			name:      "senha incorreta",
			dashboard: config.Dashboard{PasswordHash: string(hash)},
			password:  "storymaker123",
			wantErr:   ErrInvalidCredentials,
			wantCode:  apiErrors.ErrInvalidCredentials,
		},
		{
			name:      "dashboard sem senha configurada",
			dashboard: config.Dashboard{},
			password:  "qualquer",
			wantErr:   ErrDashboardLocked,
			wantCode:  apiErrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := NewService(newConfig(tt.dashboard, "production"))
			require.NoError(t, err)

			session, err := service.Login(context.Background(), tt.password)
			assert.Nil(t, session)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsCredentialsError(err))

			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.wantCode, authErr.Code)
		})
	}
}

func TestService_Login_WithPasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha-forte"), bcrypt.MinCost)
	require.NoError(t, err)

	service, err := NewService(newConfig(config.Dashboard{PasswordHash: string(hash), Password: "ignorada"}, "production"))
	require.NoError(t, err)

	_, err = service.Login(context.Background(), "s3nha-forte")
	assert.NoError(t, err)

	_, err = service.Login(context.Background(), "ignorada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestNewService_InvalidPasswordHash(t *testing.T) {
	_, err := NewService(newConfig(config.Dashboard{PasswordHash: "not-bcrypt"}, "production"))
	assert.ErrorIs(t, err, ErrInvalidPasswordHash)
}

func TestService_ValidateToken(t *testing.T) {
	service, err := NewService(newConfig(config.Dashboard{Password: "storymaker123", TokenTTL: time.Hour}, "production"))
	require.NoError(t, err)

	issued := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issued }

	session, err := service.Login(context.Background(), "storymaker123")
	require.NoError(t, err)
	assert.Equal(t, issued.Add(time.Hour), session.ExpiresAt)

	t.Run("token válido dentro do prazo", func(t *testing.T) {
		service.now = func() time.Time { return issued.Add(30 * time.Minute) }
		_, err := service.ValidateToken(session.Token)
		assert.NoError(t, err)
	})

	t.Run("token expirado", func(t *testing.T) {
		service.now = func() time.Time { return issued.Add(2 * time.Hour) }
		_, err := service.ValidateToken(session.Token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsTokenError(err))
	})

	t.Run("assinado com outra chave", func(t *testing.T) {
		service.now = func() time.Time { return issued }
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   domain.DashboardSubject,
				ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour)),
			},
		})
		signed, err := forged.SignedString([]byte("outra-chave"))
		require.NoError(t, err)

		_, err = service.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("sem expiração", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: domain.DashboardSubject},
		})
		signed, err := forged.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = service.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("lixo", func(t *testing.T) {
		_, err := service.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_AutoAuth(t *testing.T) {
	dev, err := NewService(newConfig(config.Dashboard{AutoAuth: true}, "development"))
	require.NoError(t, err)
	assert.True(t, dev.AutoAuthEnabled())
	require.NotNil(t, dev.AutoAuthClaims())
	assert.True(t, dev.AutoAuthClaims().AutoAuth)

	prod, err := NewService(newConfig(config.Dashboard{AutoAuth: true}, "production"))
	require.NoError(t, err)
	assert.False(t, prod.AutoAuthEnabled())
	assert.Nil(t, prod.AutoAuthClaims())
}

func TestNewService_SecretKey(t *testing.T) {
	forge := func(t *testing.T, key string) string {
		t.Helper()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   domain.DashboardSubject,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := token.SignedString([]byte(key))
		require.NoError(t, err)
		return signed
	}

	for _, secret := range []string{"", placeholderSecretKey} {
		t.Run("produção recusa chave "+strconv.Quote(secret), func(t *testing.T) {
			cfg := newConfig(config.Dashboard{Password: "strong-password"}, "production")
			cfg.SecretKey = secret

			service, err := NewService(cfg)
			assert.ErrorIs(t, err, ErrInsecureSecretKey)
			assert.Nil(t, service)
		})
	}

	t.Run("desenvolvimento gera chave aleatória", func(t *testing.T) {
		cfg := newConfig(config.Dashboard{Password: "storymaker123"}, "development")
		cfg.SecretKey = placeholderSecretKey

		service, err := NewService(cfg)
		require.NoError(t, err)
		assert.Len(t, service.secretKey, secretKeyLength)

		_, err = service.ValidateToken(forge(t, placeholderSecretKey))
		assert.ErrorIs(t, err, ErrInvalidToken)

		session, err := service.Login(context.Background(), "storymaker123")
		require.NoError(t, err)
		_, err = service.ValidateToken(session.Token)
		assert.NoError(t, err)
	})

	t.Run("chaves geradas diferem entre instâncias", func(t *testing.T) {
		cfg := newConfig(config.Dashboard{}, "development")
		cfg.SecretKey = ""

		first, err := NewService(cfg)
		require.NoError(t, err)
		second, err := NewService(cfg)
		require.NoError(t, err)

		assert.NotEqual(t, first.secretKey, second.secretKey)
	})
}
