package repository

import (
	"context"

	"github.com/storymaker/tracking-api/infrastructure/database/postgres"
	"github.com/storymaker/tracking-api/internal/config"
	"github.com/storymaker/tracking-api/pkg/log"
)

type Mode string

const (
	ModeConnected Mode = "connected"
	ModeDegraded  Mode = "degraded"
)

// Backend agrupa os repositórios escolhidos uma única vez na inicialização
type Backend struct {
	Clicks ClickRepository
	Leads  LeadRepository
	Stats  StatsRepository

	mode Mode
	conn postgres.Conn
}

func NewBackend(conn postgres.Conn) *Backend {
	return &Backend{
		Clicks: NewClickRepository(conn),
		Leads:  NewLeadRepository(conn),
		Stats:  NewStatsRepository(conn),
		mode:   ModeConnected,
		conn:   conn,
	}
}

func NewDegradedBackend() *Backend {
	degraded := degradedRepository{}
	return &Backend{
		Clicks: degraded,
		Leads:  degraded,
		Stats:  degraded,
		mode:   ModeDegraded,
	}
}

// Open seleciona o backend conforme a configuração. Sem DSN válido o serviço
// continua no ar em modo degradado.
func Open(cfg config.Database) (*Backend, error) {
	if !cfg.Configured() {
		log.L.Warn("DATABASE_URL ou DATABASE_PASSWORD ausentes, armazenamento em modo degradado")
		return NewDegradedBackend(), nil
	}

	conn, err := postgres.NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	return NewBackend(conn), nil
}

func (b *Backend) Mode() Mode {
	return b.mode
}

func (b *Backend) Ping(ctx context.Context) error {
	if b.conn == nil {
		return ErrNotConfigured
	}
	return b.conn.Ping(ctx)
}

func (b *Backend) Close() error {
	if b.conn == nil {
		return nil
	}
	return b.conn.Close()
}
