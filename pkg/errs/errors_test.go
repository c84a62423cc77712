package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorStatusCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "client error", err: ErrClient, expected: http.StatusBadRequest},
		{name: "duplicate email", err: ErrEmailAlreadyUsed, expected: http.StatusBadRequest},
		{name: "invalid credentials", err: ErrInvalidCredentials, expected: http.StatusBadRequest},
		{name: "wrong password", err: ErrWrongPassword, expected: http.StatusBadRequest},
		{name: "non-image upload", err: ErrNotAnImage, expected: http.StatusBadRequest},
		{name: "not logged in", err: ErrNotLoggedIn, expected: http.StatusUnauthorized},
		{name: "forbidden", err: ErrForbidden, expected: http.StatusForbidden},
		{name: "not found", err: ErrNotFound, expected: http.StatusNotFound},
		{name: "gateway failure", err: ErrGateway, expected: http.StatusBadGateway},
		{name: "internal", err: ErrInternalServer, expected: http.StatusInternalServerError},
		{name: "unknown error defaults to internal", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetErrorStatusCode(tc.err))
		})
	}
}
