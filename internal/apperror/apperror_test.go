package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("note")))
	assert.Equal(t, KindAlreadyExists, KindOf(AlreadyExists("user already exists")))
	assert.Equal(t, KindInvalidCredentials, KindOf(InvalidCredentials()))
	assert.Equal(t, KindSetupRequired, KindOf(SetupRequired(errors.New("relation does not exist"))))

	t.Run("plain errors default to generic", func(t *testing.T) {
		assert.Equal(t, KindGeneric, KindOf(errors.New("boom")))
	})

	t.Run("wrapped errors keep their kind", func(t *testing.T) {
		err := fmt.Errorf("service layer: %w", NotFound("category"))
		assert.Equal(t, KindNotFound, KindOf(err))
		assert.True(t, IsNotFound(err))
	})
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindGeneric, "failed to fetch notes", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to fetch notes")
	assert.Contains(t, err.Error(), "connection refused")
}
