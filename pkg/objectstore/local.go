package objectstore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// LocalURLPrefix, local depodaki dosyaların servis edildiği URL prefix'i.
const LocalURLPrefix = "/api/uploads/"

type localStore struct {
	dir string
}

// NewLocalStore, dir altında dosya saklayan Store döner. Dizin yoksa oluşturulur.
func NewLocalStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &localStore{dir: dir}, nil
}

func (s *localStore) Put(_ context.Context, name string, data []byte, _ string) (string, error) {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid object name")
	}

	dst := filepath.Join(s.dir, name)
	// O_EXCL: aynı isimli dosyanın üzerine yazılmaz.
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	return LocalURLPrefix + url.PathEscape(name), nil
}

func (s *localStore) Owns(publicURL string) bool {
	return strings.HasPrefix(publicURL, LocalURLPrefix)
}

func (s *localStore) Delete(_ context.Context, publicURL string) error {
	if !s.Owns(publicURL) {
		return nil
	}
	name, err := url.PathUnescape(lastSegment(publicURL))
	if err != nil {
		return fmt.Errorf("invalid object url: %w", err)
	}
	name = filepath.Base(name)
	if name == "." || name == ".." || name == "" {
		return nil
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}
