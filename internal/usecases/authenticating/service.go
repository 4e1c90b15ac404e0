package authenticating

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/storymaker/tracking-api/internal/config"
	"github.com/storymaker/tracking-api/internal/domain"
	"github.com/storymaker/tracking-api/pkg/apiErrors"
	"github.com/storymaker/tracking-api/pkg/log"
	"github.com/storymaker/tracking-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

const (
	defaultTokenTTL = 12 * time.Hour
	tokenIDLength   = 21
	secretKeyLength = 32

	// Valor distribuído no .env de exemplo, nunca aceito como chave real
	placeholderSecretKey = "your_secret_key"
)

type Authenticator interface {
	Login(ctx context.Context, password string) (*domain.Session, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	AutoAuthEnabled() bool
	AutoAuthClaims() *domain.Claims
}

type Service struct {
	secretKey    []byte
	passwordHash []byte
	tokenTTL     time.Duration
	autoAuth     bool
	now          func() time.Time
}

// NewService prepara a verificação da senha do dashboard. DASHBOARD_PASSWORD_HASH
// tem prioridade; a senha em texto puro é convertida em bcrypt aqui e descartada.
func NewService(cfg *config.Config) (*Service, error) {
	secretKey, err := signingKey(cfg)
	if err != nil {
		return nil, err
	}

	s := &Service{
		secretKey: secretKey,
		tokenTTL:  cfg.Dashboard.TokenTTL,
		now:       time.Now,
	}

	if s.tokenTTL <= 0 {
		s.tokenTTL = defaultTokenTTL
	}

	switch {
	case cfg.Dashboard.PasswordHash != "":
		if _, err := bcrypt.Cost([]byte(cfg.Dashboard.PasswordHash)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPasswordHash, err)
		}
		s.passwordHash = []byte(cfg.Dashboard.PasswordHash)
	case cfg.Dashboard.Password != "":
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Dashboard.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		s.passwordHash = hash
	default:
		log.L.Warn("Nenhuma senha de dashboard configurada, todo login será recusado")
	}

	if cfg.Dashboard.AutoAuth {
		if cfg.App.IsDevelopment() {
			s.autoAuth = true
			log.L.Warn("Autenticação automática do dashboard ativa (apenas desenvolvimento)")
		} else {
			log.L.Warnf("DASHBOARD_AUTO_AUTH ignorado fora de desenvolvimento (APP_ENV=%s)", cfg.App.Env)
		}
	}

	return s, nil
}

// signingKey recusa SECRET_KEY ausente ou de exemplo fora de desenvolvimento.
// Em desenvolvimento gera uma chave aleatória válida só para este processo.
func signingKey(cfg *config.Config) ([]byte, error) {
	if cfg.SecretKey != "" && cfg.SecretKey != placeholderSecretKey {
		return []byte(cfg.SecretKey), nil
	}

	if !cfg.App.IsDevelopment() {
		return nil, fmt.Errorf("%w (APP_ENV=%s)", ErrInsecureSecretKey, cfg.App.Env)
	}

	key := make([]byte, secretKeyLength)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}

	log.L.Warn("SECRET_KEY ausente, usando chave aleatória: sessões do dashboard expiram a cada reinício")
	return key, nil
}

func (s *Service) Login(ctx context.Context, password string) (*domain.Session, error) {
	if password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Senha é obrigatória")
	}

	if s.passwordHash == nil {
		return nil, NewAuthError(ErrDashboardLocked, apiErrors.ErrInvalidCredentials, "Senha incorreta")
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		log.ForContext(ctx).Info("Tentativa de login no dashboard com senha incorreta")
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Senha incorreta")
	}

	session, err := s.issueToken()
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return session, nil
}

func (s *Service) issueToken() (*domain.Session, error) {
	tokenID, err := utils.GenerateID(tokenIDLength)
	if err != nil {
		return nil, err
	}

	now := s.now()
	expiresAt := now.Add(s.tokenTTL)

	claims := domain.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   domain.DashboardSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return nil, err
	}

	return &domain.Session{Token: signed, ExpiresAt: expiresAt.UTC()}, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithSubject(domain.DashboardSubject),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

func (s *Service) AutoAuthEnabled() bool {
	return s.autoAuth
}

// AutoAuthClaims devolve claims sintéticas usadas quando a autenticação automática está ativa
func (s *Service) AutoAuthClaims() *domain.Claims {
	if !s.autoAuth {
		return nil
	}

	return &domain.Claims{
		AutoAuth: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: domain.DashboardSubject,
		},
	}
}
