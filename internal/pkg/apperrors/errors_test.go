package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidation(t *testing.T) {
	err := NewValidation("venues.binance.api_secret", "api key set without a matching secret")

	assert.Equal(t, ErrValidation, err.Type)
	assert.Equal(t, "venues.binance.api_secret", err.Field)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Equal(t, "api key set without a matching secret", err.Error())
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil))

	appErr := NewNotFound("unknown venue")
	assert.Same(t, appErr, Wrap(appErr))

	plain := errors.New("boom")
	wrapped := Wrap(plain)
	assert.Equal(t, ErrInternal, wrapped.Type)
	assert.Equal(t, http.StatusInternalServerError, wrapped.HTTPStatus)
	assert.ErrorIs(t, wrapped, plain)
}
