// Package blob abstracts where uploaded images live. The API layer only
// deals in opaque location references.
package blob

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type Store interface {
	Save(ctx context.Context, content []byte, extension, container, contentType string) (string, error)
	Replace(ctx context.Context, content []byte, extension, container, oldRef, contentType string) (string, error)
	Delete(ctx context.Context, ref, container string) error
}

// DiskStore keeps files under basePath/<container>/ and hands out URLs below
// publicURL. Files are named with a fresh UUID so references never collide.
type DiskStore struct {
	basePath  string
	publicURL string
}

func NewDiskStore(basePath, publicURL string) *DiskStore {
	return &DiskStore{basePath: basePath, publicURL: publicURL}
}

func (s *DiskStore) Save(ctx context.Context, content []byte, extension, container, contentType string) (string, error) {
	dir := filepath.Join(s.basePath, container)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.New().String() + extension
	if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", s.publicURL, container, name), nil
}

// Replace is delete-then-save; a failed delete aborts the replacement so the
// store never holds both files.
func (s *DiskStore) Replace(ctx context.Context, content []byte, extension, container, oldRef, contentType string) (string, error) {
	if err := s.Delete(ctx, oldRef, container); err != nil {
		return "", err
	}

	return s.Save(ctx, content, extension, container, contentType)
}

// Delete is a no-op for an empty reference so callers can pass through
// whatever the entity currently holds.
func (s *DiskStore) Delete(ctx context.Context, ref, container string) error {
	if ref == "" {
		return nil
	}

	parsed, err := url.Parse(ref)
	if err != nil {
		return err
	}

	name := filepath.Base(parsed.Path)

	err = os.Remove(filepath.Join(s.basePath, container, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
