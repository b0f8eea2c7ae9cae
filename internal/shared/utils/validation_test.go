package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingErrorMessageListsFields(t *testing.T) {
	type form struct {
		Name string `validate:"required,max=5"`
		Kind string `validate:"oneof=like heart"`
	}

	err := validator.New().Struct(form{Kind: "frown"})
	require.Error(t, err)

	msg := BindingErrorMessage(err)
	assert.Contains(t, msg, "name is required")
	assert.Contains(t, msg, "kind must be one of [like heart]")
}

func TestBindingErrorMessageHidesNonValidatorErrors(t *testing.T) {
	msg := BindingErrorMessage(errors.New("unexpected EOF"))
	assert.Equal(t, "invalid request body", msg)
}
