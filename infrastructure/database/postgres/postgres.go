package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/storymaker/tracking-api/internal/config"
)

// Códigos SQLSTATE tratados pela camada de repositório
const (
	CodeUndefinedTable        = "42P01"
	CodeUniqueViolation       = "23505"
	CodeInsufficientPrivilege = "42501"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
}

type Connection struct {
	*sql.DB
}

// NewConnection abre o pool sem validar a conexão. O acesso ao banco é
// preguiçoso: quem quiser verificar deve chamar Ping.
func NewConnection(cfg config.Database) (*Connection, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = "postgres"
	}

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// ErrorCode devolve o SQLSTATE de um *pq.Error em qualquer ponto da cadeia de erros
func ErrorCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
