package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/disaster_preparedness/internal/models"
)

// translateError приводит ошибки pgx к доменным: нет строки -> ErrNotFound,
// нарушение внешнего ключа -> ErrReferenceNotFound. Остальное возвращается как есть.
func translateError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return fmt.Errorf("%w: %s", models.ErrReferenceNotFound, pgErr.ConstraintName)
	}
	return err
}
