package errors

import (
	"errors"
	"fmt"

	apperrors "github.com/johnquangdev/meeting-planner/errors"
	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
)

// Translate converts a repository failure into an application error.
// Constraint violations become client errors carrying the storage message,
// anything else becomes an internal error that hides the cause.
func Translate(err error, operation string) error {
	if err == nil {
		return nil
	}

	var appErr apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var constraintErr *entities.ConstraintError
	if errors.As(err, &constraintErr) {
		if errors.Is(constraintErr.Kind, entities.ErrDuplicate) {
			return apperrors.ErrConflict(constraintErr.Message, err)
		}
		invalid := apperrors.ErrInvalidArgument(constraintErr.Message)
		invalid.Raw = err
		return invalid
	}

	return apperrors.ErrInternal(fmt.Errorf("failed to %s: %w", operation, err))
}
