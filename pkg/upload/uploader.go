package upload

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"go-shop-admin/pkg/utils"
)

var (
	ErrTooLarge        = errors.New("upload: file exceeds size limit")
	ErrUnsupportedType = errors.New("upload: unsupported file type")
)

var supportedTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpg":  {},
	"image/jpeg": {},
}

// Uploader persists profile images under a local directory.
type Uploader struct {
	dir      string
	maxBytes int64
}

func New(dir string, maxSizeMB int) *Uploader {
	return &Uploader{dir: dir, maxBytes: int64(maxSizeMB) << 20}
}

// Store validates the file and writes it under a generated name.
// Returns the stored filename (relative to the upload dir).
func (u *Uploader) Store(fh *multipart.FileHeader) (string, error) {
	if fh.Size > u.maxBytes {
		return "", ErrTooLarge
	}
	ct := fh.Header.Get("Content-Type")
	if _, ok := supportedTypes[strings.ToLower(ct)]; !ok {
		return "", ErrUnsupportedType
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", err
	}

	name := utils.NewID() + strings.ToLower(filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}
