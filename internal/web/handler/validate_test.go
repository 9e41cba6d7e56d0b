package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nested struct {
	Label string `json:"label" validate:"required"`
}

type testInput struct {
	Name    string  `json:"name" validate:"required"`
	Note    *string `json:"note" validate:"required"`
	Short   *string `json:"short" validate:"omitnil,min=1,max=3"`
	Columns *int    `json:"columns" validate:"omitnil,min=1,max=12"`
	Width   *int    `json:"width" validate:"omitnil,gte=0"`
	Inner   nested  `json:"inner"`
}

func ptr[T any](v T) *T { return &v }

func valid() testInput {
	return testInput{Name: "a", Note: ptr(""), Inner: nested{Label: "x"}}
}

func TestValidatorStruct(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		mutate func(in *testInput)
		want   *ValidationError
	}{
		{name: "valid, empty but present pointer passes", mutate: func(*testInput) {}},
		{
			name:   "missing string",
			mutate: func(in *testInput) { in.Name = "" },
			want:   &ValidationError{Message: "Required", Field: "name"},
		},
		{
			name:   "missing pointer",
			mutate: func(in *testInput) { in.Note = nil },
			want:   &ValidationError{Message: "Required", Field: "note"},
		},
		{
			name:   "string too short",
			mutate: func(in *testInput) { in.Short = ptr("") },
			want:   &ValidationError{Message: "String must contain at least 1 character(s)", Field: "short"},
		},
		{
			name:   "string too long",
			mutate: func(in *testInput) { in.Short = ptr("abcd") },
			want:   &ValidationError{Message: "String must contain at most 3 character(s)", Field: "short"},
		},
		{
			name:   "number too big",
			mutate: func(in *testInput) { in.Columns = ptr(13) },
			want:   &ValidationError{Message: "Number must be less than or equal to 12", Field: "columns"},
		},
		{
			name:   "negative number",
			mutate: func(in *testInput) { in.Width = ptr(-1) },
			want:   &ValidationError{Message: "Number must be greater than or equal to 0", Field: "width"},
		},
		{
			name:   "nested field path",
			mutate: func(in *testInput) { in.Inner.Label = "" },
			want:   &ValidationError{Message: "Required", Field: "inner.label"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)

			err := v.Struct(&in)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.want, verr)
		})
	}
}

func TestBindJSON(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "ok",
			body:       `{"name":"a","note":"","inner":{"label":"x"}}`,
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "empty body is an empty object",
			body:       ``,
			wantStatus: fiber.StatusBadRequest,
			wantBody:   map[string]any{"message": "Required", "field": "name"},
		},
		{
			name:       "broken json",
			body:       `{"name":`,
			wantStatus: fiber.StatusBadRequest,
			wantBody:   map[string]any{"message": "Invalid JSON body"},
		},
		{
			name:       "wrong type",
			body:       `{"name":"a","note":"","columns":"four"}`,
			wantStatus: fiber.StatusBadRequest,
			wantBody:   map[string]any{"message": "Expected number, received string", "field": "columns"},
		},
		{
			name:       "wrong nested type",
			body:       `{"name":"a","note":"","inner":{"label":5}}`,
			wantStatus: fiber.StatusBadRequest,
			wantBody:   map[string]any{"message": "Expected string, received number", "field": "inner.label"},
		},
	}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Post("/", func(c *fiber.Ctx) error {
		var in testInput
		if err := v.BindJSON(c, &in); err != nil {
			return err
		}

		return c.JSON(in)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantBody == nil {
				return
			}

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var got map[string]any
			require.NoError(t, json.Unmarshal(raw, &got))
			assert.Equal(t, tt.wantBody, got)
		})
	}
}

func TestParseID(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/:id", func(c *fiber.Ctx) error {
		id, err := ParseID(c)
		if err != nil {
			return err
		}

		return c.JSON(id)
	})

	tests := []struct {
		path       string
		wantStatus int
	}{
		{path: "/12", wantStatus: fiber.StatusOK},
		{path: "/abc", wantStatus: fiber.StatusBadRequest},
		{path: "/0", wantStatus: fiber.StatusBadRequest},
		{path: "/-3", wantStatus: fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
