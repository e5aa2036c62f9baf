package repositories

import (
	"errors"

	apperrors "workshop-system/pkg/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// wrapPgError переводит нарушения ограничений БД в доменную ошибку.
// Любая попытка записи, нарушившая уникальность или внешний ключ,
// отклоняется - каскадов нет.
func wrapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation:
			return apperrors.NewConstraintViolationError(pgErr.Message)
		}
	}
	return err
}
