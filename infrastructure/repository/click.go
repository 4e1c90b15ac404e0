package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
	"github.com/storymaker/tracking-api/infrastructure/database/postgres"
	"github.com/storymaker/tracking-api/infrastructure/database/schema"
	"github.com/storymaker/tracking-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type clickRepository struct {
	conn postgres.Queryer
}

func NewClickRepository(conn postgres.Queryer) ClickRepository {
	return &clickRepository{
		conn: conn,
	}
}

func (r *clickRepository) InsertClick(ctx context.Context, click *domain.ClickEvent) error {
	metadata := "{}"
	if len(click.Metadata) > 0 {
		encoded, err := json.Marshal(click.Metadata)
		if err != nil {
			return pkgerrors.Wrap(err, "erro ao serializar metadata do clique")
		}
		metadata = string(encoded)
	}

	query, args, err := squirrel.
		Insert(schema.ClicksTable).
		Columns("button_type", "user_ip", "user_agent", "referrer", "button_text", "button_url", "metadata").
		Values(
			click.ButtonType,
			nullIfEmpty(click.UserIP),
			nullIfEmpty(click.UserAgent),
			nullIfEmpty(click.Referrer),
			nullIfEmpty(click.ButtonText),
			nullIfEmpty(click.ButtonURL),
			metadata,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao construir a query")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&click.ID, &click.CreatedAt); err != nil {
		return classify(err, "erro ao inserir clique")
	}

	return nil
}

// nullIfEmpty grava NULL em colunas opcionais sem valor
func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
