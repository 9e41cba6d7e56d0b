package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/gamelanding/gamelanding/internal/db/models"
)

const uploadField = "file"

// User returns the logged in user, nil when logged out.
func (c *Client) User(ctx context.Context) (*models.User, error) {
	u, err := query[*models.User](ctx, c, PathUser, 0)
	if IsStatus(err, http.StatusUnauthorized) {
		c.cache.put(PathUser, []byte("null"))

		return nil, nil
	}

	return u, err
}

// Login starts an admin session.
func (c *Client) Login(ctx context.Context, username, password string) error {
	in := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{username, password}

	if err := c.sendJSON(ctx, http.MethodPost, PathLogin, in, nil); err != nil {
		c.failure(TitleLoginFailed, err)

		return err
	}

	c.cache.invalidate(PathUser)

	return nil
}

// Logout ends the session.
func (c *Client) Logout(ctx context.Context) error {
	if _, err := c.send(ctx, http.MethodPost, PathLogout, nil, ""); err != nil {
		return err
	}

	c.cache.put(PathUser, []byte("null"))

	return nil
}

// Settings returns the site settings.
func (c *Client) Settings(ctx context.Context) (*models.Settings, error) {
	return query[*models.Settings](ctx, c, PathSettings, c.retries)
}

// UpdateSettings merges patch into the site settings.
func (c *Client) UpdateSettings(ctx context.Context, patch *models.SettingsPatch) (*models.Settings, error) {
	var out models.Settings

	if err := c.sendJSON(ctx, http.MethodPatch, PathSettings, patch, &out); err != nil {
		c.failure(TitleError, err)

		return nil, err
	}

	c.cache.invalidate(PathSettings)
	c.success(TitleSuccess, DescSettingsUpdated)

	return &out, nil
}

// Games lists games, only published ones when publishedOnly is set.
func (c *Client) Games(ctx context.Context, publishedOnly bool) ([]models.Game, error) {
	path := PathGames
	if publishedOnly {
		path += "?published=true"
	}

	return query[[]models.Game](ctx, c, path, c.retries)
}

// CreateGame adds a game.
func (c *Client) CreateGame(ctx context.Context, in *models.GameInput) (*models.Game, error) {
	return c.writeGame(ctx, http.MethodPost, PathGames, in, TitleGameCreated)
}

// UpdateGame merges patch into game id.
func (c *Client) UpdateGame(ctx context.Context, id uint64, patch *models.GamePatch) (*models.Game, error) {
	return c.writeGame(ctx, http.MethodPut, gamePath(id), patch, TitleGameUpdated)
}

// DuplicateGame copies game id.
func (c *Client) DuplicateGame(ctx context.Context, id uint64) (*models.Game, error) {
	return c.writeGame(ctx, http.MethodPost, gamePath(id)+"/duplicate", nil, TitleGameDuplicated)
}

// DeleteGame removes game id.
func (c *Client) DeleteGame(ctx context.Context, id uint64) error {
	return c.remove(ctx, gamePath(id), PathGames, TitleGameDeleted)
}

func (c *Client) writeGame(ctx context.Context, method, path string, in any, title string) (*models.Game, error) {
	var out models.Game

	if err := c.sendJSON(ctx, method, path, in, &out); err != nil {
		c.failure(TitleError, err)

		return nil, err
	}

	c.cache.invalidate(PathGames)
	c.success(title, "")

	return &out, nil
}

// Buttons lists buttons, only visible ones when visibleOnly is set.
func (c *Client) Buttons(ctx context.Context, visibleOnly bool) ([]models.Button, error) {
	path := PathButtons
	if visibleOnly {
		path += "?visible=true"
	}

	return query[[]models.Button](ctx, c, path, c.retries)
}

// CreateButton adds a button.
func (c *Client) CreateButton(ctx context.Context, in *models.ButtonInput) (*models.Button, error) {
	return c.writeButton(ctx, http.MethodPost, PathButtons, in, TitleButtonAdded)
}

// UpdateButton merges patch into button id.
func (c *Client) UpdateButton(ctx context.Context, id uint64, patch *models.ButtonPatch) (*models.Button, error) {
	return c.writeButton(ctx, http.MethodPut, buttonPath(id), patch, TitleButtonUpdated)
}

// DeleteButton removes button id.
func (c *Client) DeleteButton(ctx context.Context, id uint64) error {
	return c.remove(ctx, buttonPath(id), PathButtons, TitleButtonDeleted)
}

func (c *Client) writeButton(ctx context.Context, method, path string, in any, title string) (*models.Button, error) {
	var out models.Button

	if err := c.sendJSON(ctx, method, path, in, &out); err != nil {
		c.failure(TitleError, err)

		return nil, err
	}

	c.cache.invalidate(PathButtons)
	c.success(title, "")

	return &out, nil
}

func (c *Client) remove(ctx context.Context, path, key, title string) error {
	if _, err := c.send(ctx, http.MethodDelete, path, nil, ""); err != nil {
		c.failure(TitleError, err)

		return err
	}

	c.cache.invalidate(key)
	c.success(title, "")

	return nil
}

// Upload stores r under filename's extension and returns its public url.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(uploadField, filename)
	if err != nil {
		return "", errors.Wrap(err, "failed to create form file")
	}

	if _, err = io.Copy(part, r); err != nil {
		return "", errors.Wrap(err, "failed to read upload")
	}

	if err = mw.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish form")
	}

	raw, err := c.send(ctx, http.MethodPost, PathUpload, buf.Bytes(), mw.FormDataContentType())
	if err != nil {
		c.failure(TitleUploadFailed, err)

		return "", err
	}

	var out struct {
		URL string `json:"url"`
	}

	if err = decode(raw, &out); err != nil {
		return "", err
	}

	return out.URL, nil
}

func gamePath(id uint64) string {
	return PathGames + "/" + strconv.FormatUint(id, 10)
}

func buttonPath(id uint64) string {
	return PathButtons + "/" + strconv.FormatUint(id, 10)
}
