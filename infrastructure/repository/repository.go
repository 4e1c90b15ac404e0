// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"

	"github.com/storymaker/tracking-api/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks

type ClickRepository interface {
	InsertClick(ctx context.Context, click *domain.ClickEvent) error
}

type LeadRepository interface {
	InsertLead(ctx context.Context, lead *domain.Lead) error
	ListLeads(ctx context.Context, filters domain.LeadFilters) ([]*domain.Lead, error)
}

type StatsRepository interface {
	ClickStats(ctx context.Context) ([]*domain.ClickStats, error)
	LeadStats(ctx context.Context) ([]*domain.LeadStats, error)
}
