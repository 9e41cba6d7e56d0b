package handler

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        &ValidationError{Message: "Required", Field: "name"},
			wantStatus: fiber.StatusBadRequest,
			wantBody:   `{"message":"Required","field":"name"}`,
		},
		{
			name:       "not found",
			err:        NotFound("Game not found"),
			wantStatus: fiber.StatusNotFound,
			wantBody:   `{"message":"Game not found"}`,
		},
		{
			name:       "unexpected",
			err:        errors.New("db on fire"), //nolint:goerr113
			wantStatus: fiber.StatusInternalServerError,
			wantBody:   `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
			app.Get("/", func(*fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantBody, string(body))
		})
	}
}

func TestDepsCheck(t *testing.T) {
	var nilDeps *Deps
	require.ErrorIs(t, nilDeps.Check(), ErrNilDeps)
	require.ErrorIs(t, (&Deps{}).Check(), ErrNilDeps)
}
