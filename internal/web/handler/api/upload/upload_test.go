package upload_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamelanding/gamelanding/internal/web/handler/api/upload"
	"github.com/gamelanding/gamelanding/internal/web/handler/handlertest"
)

func multipartRequest(t *testing.T, field, filename, content string) *http.Request {
	t.Helper()

	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)

	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)

		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	} else {
		require.NoError(t, w.WriteField("other", "value"))
	}

	require.NoError(t, w.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/upload", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())

	return req
}

func TestUpload(t *testing.T) {
	deps := handlertest.NewDeps(t)
	app := handlertest.NewApp(t, deps, &upload.Service{})

	req := multipartRequest(t, upload.FormField, "banner.png", "png-bytes")
	req.AddCookie(handlertest.AdminCookie(t, app))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got map[string]string
	handlertest.Decode(t, resp, &got)
	assert.Regexp(t, `^/uploads/\d+-\d{9}\.png$`, got["url"])

	content, err := os.ReadFile(filepath.Join(deps.Cfg.Upload.Dir, strings.TrimPrefix(got["url"], "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}

func TestUploadWithoutFile(t *testing.T) {
	app := handlertest.NewApp(t, handlertest.NewDeps(t), &upload.Service{})

	req := multipartRequest(t, "", "", "")
	req.AddCookie(handlertest.AdminCookie(t, app))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var got map[string]string
	handlertest.Decode(t, resp, &got)
	assert.Equal(t, "No file uploaded.", got["message"])
}

func TestUploadRejectsNonImages(t *testing.T) {
	deps := handlertest.NewDeps(t)
	app := handlertest.NewApp(t, deps, &upload.Service{})
	cookie := handlertest.AdminCookie(t, app)

	for _, name := range []string{"page.html", "logo.svg", "notes"} {
		t.Run(name, func(t *testing.T) {
			req := multipartRequest(t, upload.FormField, name, "<script>alert(1)</script>")
			req.AddCookie(cookie)

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var got map[string]string
			handlertest.Decode(t, resp, &got)
			assert.Equal(t, "Only image files can be uploaded.", got["message"])
		})
	}

	entries, err := os.ReadDir(deps.Cfg.Upload.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadRequiresAdmin(t *testing.T) {
	app := handlertest.NewApp(t, handlertest.NewDeps(t), &upload.Service{})

	resp, err := app.Test(multipartRequest(t, upload.FormField, "a.png", "x"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
