package repository

import (
	"context"

	"github.com/storymaker/tracking-api/internal/domain"
	"github.com/storymaker/tracking-api/pkg/log"
	"github.com/storymaker/tracking-api/pkg/utils"
)

// degradedRepository substitui o banco quando não há configuração:
// inserções só registram o payload e consultas devolvem ErrNotConfigured.
type degradedRepository struct{}

func (degradedRepository) InsertClick(ctx context.Context, click *domain.ClickEvent) error {
	log.ForContext(ctx).Infof("Banco não configurado, clique descartado: %s", utils.PrettyJson(click))
	return nil
}

func (degradedRepository) InsertLead(ctx context.Context, lead *domain.Lead) error {
	log.ForContext(ctx).Infof("Banco não configurado, lead descartado: %s", utils.PrettyJson(lead))
	return nil
}

func (degradedRepository) ListLeads(context.Context, domain.LeadFilters) ([]*domain.Lead, error) {
	return []*domain.Lead{}, ErrNotConfigured
}

func (degradedRepository) ClickStats(context.Context) ([]*domain.ClickStats, error) {
	return []*domain.ClickStats{}, ErrNotConfigured
}

func (degradedRepository) LeadStats(context.Context) ([]*domain.LeadStats, error) {
	return []*domain.LeadStats{}, ErrNotConfigured
}
