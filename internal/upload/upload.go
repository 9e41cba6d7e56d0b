// Package upload stores files posted by the admin and hands back their public url.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gamelanding/gamelanding/internal/uniuri"
)

const randomDigits = 9

var (
	// ErrEmptyName is returned when the original file name is missing.
	ErrEmptyName = errors.New("file name is empty")
	// ErrNilReader is returned when there is nothing to read.
	ErrNilReader = errors.New("reader is nil")
	// ErrUnsupportedType is returned for names without an image extension.
	ErrUnsupportedType = errors.New("unsupported file type")
)

// imageExts are served from the site origin, so svg and html stay out.
var imageExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
	".avif": {},
	".ico":  {},
	".bmp":  {},
}

// Allowed reports whether a file named original may be stored.
func Allowed(original string) bool {
	_, ok := imageExts[strings.ToLower(filepath.Ext(filepath.Base(original)))]

	return ok
}

// Store persists an uploaded file and returns the url it is served under.
type Store interface {
	Save(ctx context.Context, original string, r io.Reader) (url string, size int64, err error)
}

// Local writes files into a directory that is served statically.
type Local struct {
	dir       string
	urlPrefix string
	now       func() time.Time
}

// NewLocal creates the target directory if needed.
func NewLocal(dir, urlPrefix string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}

	return &Local{
		dir:       dir,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
		now:       time.Now,
	}, nil
}

// Dir returns the directory files are written to.
func (l *Local) Dir() string {
	return l.dir
}

// URLPrefix returns the public path prefix.
func (l *Local) URLPrefix() string {
	return l.urlPrefix
}

// Save copies r into a new file named after GenerateName.
func (l *Local) Save(ctx context.Context, original string, r io.Reader) (string, int64, error) {
	if original == "" {
		return "", 0, ErrEmptyName
	}

	if r == nil {
		return "", 0, ErrNilReader
	}

	if !Allowed(original) {
		return "", 0, fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Ext(original))
	}

	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	name := GenerateName(original, l.now())

	f, err := os.OpenFile(filepath.Join(l.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", 0, fmt.Errorf("create upload file: %w", err)
	}

	n, err := io.Copy(f, r)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())

		return "", 0, fmt.Errorf("write upload file: %w", err)
	}

	if err = f.Close(); err != nil {
		return "", 0, fmt.Errorf("close upload file: %w", err)
	}

	return path.Join(l.urlPrefix, name), n, nil
}

// GenerateName returns "<unix millis>-<9 random digits><ext>". The extension is
// the original one, including its dot, or nothing. Save only accepts names
// passing Allowed.
func GenerateName(original string, now time.Time) string {
	ext := filepath.Ext(filepath.Base(original))

	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + uniuri.NewDigits(randomDigits) + ext
}
