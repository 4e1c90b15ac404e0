package repository

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"github.com/storymaker/tracking-api/infrastructure/database/postgres"
)

var (
	// ErrNotConfigured indica backend degradado, sem banco configurado. Não é fatal.
	ErrNotConfigured = errors.New("armazenamento não configurado")
	// ErrSchemaMissing indica tabela ou view inexistente (SQLSTATE 42P01)
	ErrSchemaMissing = errors.New("tabela ou view não encontrada")
	// ErrDuplicate indica violação de unicidade (SQLSTATE 23505)
	ErrDuplicate = errors.New("registro duplicado")
	// ErrPermissionDenied indica privilégio insuficiente (SQLSTATE 42501)
	ErrPermissionDenied = errors.New("permissão negada")
	// ErrStorage cobre as demais falhas de armazenamento, tratadas como transitórias
	ErrStorage = errors.New("falha no armazenamento")
)

// classify associa o erro do driver a um dos sentinelas acima, preservando o
// erro original na cadeia para errors.As.
func classify(err error, operation string) error {
	if err == nil {
		return nil
	}

	var kind error
	switch postgres.ErrorCode(err) {
	case postgres.CodeUndefinedTable:
		kind = ErrSchemaMissing
	case postgres.CodeUniqueViolation:
		kind = ErrDuplicate
	case postgres.CodeInsufficientPrivilege:
		kind = ErrPermissionDenied
	default:
		kind = ErrStorage
	}

	return pkgerrors.Wrap(fmt.Errorf("%w: %w", kind, err), operation)
}
