package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/johnquangdev/meeting-planner/errors"
	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
)

func TestTranslate(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, Translate(nil, "list teams"))
	})

	t.Run("duplicate becomes conflict with storage message", func(t *testing.T) {
		cause := &entities.ConstraintError{
			Kind:    entities.ErrDuplicate,
			Message: `duplicate key value violates unique constraint "teams_name_key"`,
			Err:     errors.New("pg"),
		}

		var appErr apperrors.AppError
		require.True(t, errors.As(Translate(cause, "create team"), &appErr))
		assert.Equal(t, apperrors.ErrorCode_CONFLICT, appErr.Code)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
		assert.Equal(t, cause.Message, appErr.Message)
	})

	t.Run("missing reference is a bad request", func(t *testing.T) {
		cause := &entities.ConstraintError{Kind: entities.ErrMissingReference, Message: "violates foreign key", Err: errors.New("pg")}

		var appErr apperrors.AppError
		require.True(t, errors.As(Translate(cause, "create member"), &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	})

	t.Run("app errors pass through", func(t *testing.T) {
		in := apperrors.ErrTokenNotFound()
		assert.True(t, apperrors.HasCode(Translate(in, "respond"), apperrors.ErrorCode_TOKEN_NOT_FOUND))
	})

	t.Run("unknown errors are internal and keep the cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := Translate(cause, "list meetings")

		var appErr apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
		assert.Equal(t, "Internal server error", appErr.Message)
		assert.ErrorIs(t, err, cause)
	})
}
