package repository

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-planner/internal/domain/entities"
)

func TestTranslateError(t *testing.T) {
	plain := stdErrors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		wantKind error
		wantMsg  string
	}{
		{
			name:     "unique violation",
			err:      &pgconn.PgError{Code: "23505", Message: `duplicate key value violates unique constraint "idx_teams_name"`},
			wantKind: entities.ErrDuplicate,
			wantMsg:  `duplicate key value violates unique constraint "idx_teams_name"`,
		},
		{
			name:     "foreign key violation wrapped",
			err:      fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503", Message: "insert violates foreign key constraint"}),
			wantKind: entities.ErrMissingReference,
			wantMsg:  "insert violates foreign key constraint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateError(tt.err)

			var constraintErr *entities.ConstraintError
			require.ErrorAs(t, err, &constraintErr)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.Equal(t, tt.wantMsg, constraintErr.Message)

			var pgErr *pgconn.PgError
			assert.ErrorAs(t, err, &pgErr, "the driver error stays reachable")
		})
	}

	t.Run("other sqlstate passes through", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23514", Message: "check violation"}
		assert.Same(t, err, translateError(err))
	})

	t.Run("non driver error passes through", func(t *testing.T) {
		assert.Equal(t, plain, translateError(plain))
	})

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, translateError(nil))
	})
}
