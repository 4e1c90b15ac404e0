package capturing

import (
	"context"
	"errors"
	"strings"

	"github.com/storymaker/tracking-api/infrastructure/repository"
	"github.com/storymaker/tracking-api/internal/domain"
	"github.com/storymaker/tracking-api/internal/metrics"
	"github.com/storymaker/tracking-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Outcome string

const (
	OutcomeSaved           Outcome = "saved"
	OutcomeInvalidEmail    Outcome = "invalid_email"
	OutcomeConsentRequired Outcome = "consent_required"
	OutcomeDuplicate       Outcome = "duplicate"
	OutcomeFailed          Outcome = "failed"
)

// Submission é o que o formulário da landing page envia
type Submission struct {
	Email            string
	Source           string
	MarketingConsent bool
	PrivacyConsent   bool
}

type Recorder interface {
	SaveLead(ctx context.Context, submission Submission) bool
	Save(ctx context.Context, submission Submission) Outcome
}

type Service struct {
	leads repository.LeadRepository
}

func NewService(leads repository.LeadRepository) *Service {
	return &Service{
		leads: leads,
	}
}

func (s *Service) SaveLead(ctx context.Context, submission Submission) bool {
	return s.Save(ctx, submission) == OutcomeSaved
}

// Save revalida o envio no servidor antes de gravar. Envios inválidos nunca
// chegam ao repositório.
func (s *Service) Save(ctx context.Context, submission Submission) Outcome {
	outcome := s.save(ctx, submission)
	metrics.LeadsSubmitted.WithLabelValues(string(outcome)).Inc()
	return outcome
}

func (s *Service) save(ctx context.Context, submission Submission) Outcome {
	logger := log.ForContext(ctx)

	email := NormalizeEmail(submission.Email)
	if !strings.Contains(email, "@") {
		logger.WithField("outcome", OutcomeInvalidEmail).Info("Lead rejeitado: e-mail inválido")
		return OutcomeInvalidEmail
	}

	if !submission.PrivacyConsent {
		logger.WithField("outcome", OutcomeConsentRequired).Info("Lead rejeitado: consentimento de privacidade ausente")
		return OutcomeConsentRequired
	}

	lead := &domain.Lead{
		Email:            email,
		Source:           strings.TrimSpace(submission.Source),
		MarketingConsent: submission.MarketingConsent,
	}

	if err := s.leads.InsertLead(ctx, lead); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			logger.WithField("outcome", OutcomeDuplicate).Info("Lead já cadastrado")
			return OutcomeDuplicate
		}

		logger.WithError(err).WithField("kind", kindOf(err)).Error("Erro ao salvar lead")
		return OutcomeFailed
	}

	logger.WithField("lead_source", lead.Source).Info("Lead salvo com sucesso")
	return OutcomeSaved
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func kindOf(err error) string {
	switch {
	case errors.Is(err, repository.ErrSchemaMissing):
		return "schema_missing"
	case errors.Is(err, repository.ErrPermissionDenied):
		return "permission_denied"
	default:
		return "storage"
	}
}
