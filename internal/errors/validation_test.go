package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleasonw/lidnd/internal/errors"
)

func TestValidationBuilderNoErrors(t *testing.T) {
	vb := errors.NewValidationBuilder()
	assert.NoError(t, vb.Build())
}

func TestValidationBuilderCollectsFields(t *testing.T) {
	err := errors.NewValidationBuilder().
		RequiredField("Repository").
		RequiredField("IDGenerator").
		InvalidField("MaxHP", "must be positive").
		Build()

	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	var customErr *errors.Error
	require.True(t, errors.As(err, &customErr))

	fields, ok := customErr.Meta["validation_errors"].(map[string][]string)
	require.True(t, ok)
	assert.Len(t, fields, 3)
	assert.Equal(t, []string{"is required"}, fields["Repository"])
}

func TestValidationErrorMessageListsEveryField(t *testing.T) {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldErrorf("hp", "must be at most %d", 40)

	msg := ve.Error()
	assert.Contains(t, msg, "name: is required")
	assert.Contains(t, msg, "hp: must be at most 40")
}
