package repository

import (
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
)

// Postgres SQLSTATE codes we translate into domain errors
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError maps constraint violations onto entities.ConstraintError so
// callers can tell a bad request from a storage outage.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return &entities.ConstraintError{Kind: entities.ErrDuplicate, Message: pgErr.Message, Err: err}
	case pgForeignKeyViolation:
		return &entities.ConstraintError{Kind: entities.ErrMissingReference, Message: pgErr.Message, Err: err}
	}
	return err
}

// storableID reports whether id fits the BIGINT primary keys. Larger values
// cannot name a row, so lookups treat them as absent.
func storableID(id uint) bool {
	return uint64(id) <= math.MaxInt64
}

// missingReference reports a reference to a row that cannot exist
func missingReference(table string, id uint) error {
	return &entities.ConstraintError{
		Kind:    entities.ErrMissingReference,
		Message: fmt.Sprintf("%s id %d does not exist", table, id),
		Err:     entities.ErrMissingReference,
	}
}
