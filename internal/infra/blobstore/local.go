// Package blobstore stores uploaded artwork images.
package blobstore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxImageBytes caps a single upload.
const MaxImageBytes = 10 << 20

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrTooLarge        = fmt.Errorf("image exceeds %d bytes", MaxImageBytes)
)

// Local writes files into a directory served under a public prefix
// (e.g. "/uploads").
type Local struct {
	dir    string
	prefix string
}

func NewLocal(dir, publicPrefix string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{dir: dir, prefix: strings.TrimRight(publicPrefix, "/")}, nil
}

func (l *Local) Dir() string { return l.dir }

// Save stores r under a random name keeping the original extension and
// returns its public URL.
func (l *Local) Save(r io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExts[ext] {
		return "", ErrUnsupportedType
	}

	name := uuid.NewString() + ext
	f, err := os.OpenFile(filepath.Join(l.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}

	n, err := io.Copy(f, io.LimitReader(r, MaxImageBytes+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil && n > MaxImageBytes {
		err = ErrTooLarge
	}
	if err != nil {
		_ = os.Remove(filepath.Join(l.dir, name))
		return "", err
	}

	return l.prefix + "/" + name, nil
}

// Delete removes a file previously returned by Save. Unknown URLs are ignored.
func (l *Local) Delete(url string) error {
	if !strings.HasPrefix(url, l.prefix+"/") {
		return nil
	}
	name := path.Base(url)
	err := os.Remove(filepath.Join(l.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
