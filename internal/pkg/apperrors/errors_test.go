package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"configuration", Configuration("keys missing"), http.StatusInternalServerError},
		{"validation", Validation("orderID is required"), http.StatusBadRequest},
		{"unsupported currency", UnsupportedCurrency("USD"), http.StatusBadRequest},
		{"empty cart", EmptyCart(), http.StatusBadRequest},
		{"missing customer", MissingCustomer(), http.StatusBadRequest},
		{"invalid amount", InvalidAmount(), http.StatusBadRequest},
		{"invalid cart", InvalidCart(), http.StatusBadRequest},
		{"out of stock", OutOfStock("p1"), http.StatusBadRequest},
		{"signature", Signature("bad signature"), http.StatusBadRequest},
		{"decode", Decode(errors.New("bad base64")), http.StatusBadRequest},
		{"not found", NotFound("no transaction"), http.StatusNotFound},
		{"not confirmed", NotConfirmed("pending"), http.StatusConflict},
		{"internal", Internal("db down", errors.New("boom")), http.StatusInternalServerError},
		{"foreign", errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("confirm order: %w", NotConfirmed("payment still pending"))

	assert.True(t, IsKind(err, KindNotConfirmed))
	assert.False(t, IsKind(err, KindNotFound))
	assert.Equal(t, KindNotConfirmed, KindOf(err))
	assert.True(t, errors.Is(err, &Error{Kind: KindNotConfirmed}))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestOutOfStockCarriesCause(t *testing.T) {
	err := OutOfStock("kettle-42")

	assert.Equal(t, CauseOutOfStock, err.Cause)
	assert.True(t, err.IsValidation())
	assert.True(t, errors.Is(err, &Error{Kind: KindValidation, Cause: CauseOutOfStock}))
	assert.Contains(t, err.Error(), "kettle-42")
}

func TestWrapUnwraps(t *testing.T) {
	inner := errors.New("connection reset")
	err := Internal("failed to load transaction", inner)

	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "failed to load transaction: connection reset", err.Error())
}
