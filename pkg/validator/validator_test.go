package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	FileName string `json:"fileName" validate:"max=3"`
}

type payload struct {
	Name  string `json:"name" validate:"required"`
	Items []item `json:"items" validate:"dive"`
}

func TestDescribeUsesJSONNames(t *testing.T) {
	v := New()

	err := v.Validate(&payload{Items: []item{{FileName: strings.Repeat("x", 4)}}})
	require.Error(t, err)
	assert.Equal(t, "Invalid request: name is required; items[0].fileName must be at most 3 characters.", Describe(err))
}

func TestDescribeNonValidationError(t *testing.T) {
	assert.Equal(t, "Invalid request.", Describe(errors.New("boom")))
}

func TestValidatePasses(t *testing.T) {
	assert.NoError(t, New().Validate(&payload{Name: "ok"}))
}
