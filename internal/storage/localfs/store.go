// Package localfs provides a directory-backed template store, used both as
// the development store and as the sync target for the remote template set.
package localfs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"docugen/internal/domain"
	"docugen/internal/port"
)

type store struct {
	dir string
}

// NewStore creates a TemplateStore rooted at dir, creating it if needed.
func NewStore(dir string) (port.TemplateStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localfs.NewStore: %w", err)
	}
	return &store{dir: dir}, nil
}

// path resolves a template identifier inside the store directory. Template
// identifiers are bare file names; anything path-like is rejected.
func (s *store) path(templateID string) (string, error) {
	if templateID == "" || templateID != filepath.Base(templateID) || strings.HasPrefix(templateID, ".") {
		return "", fmt.Errorf("%w: invalid template id %q", domain.ErrTemplateNotFound, templateID)
	}
	return filepath.Join(s.dir, templateID), nil
}

func (s *store) Load(_ context.Context, templateID string) ([]byte, error) {
	p, err := s.path(templateID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, templateID)
		}
		return nil, fmt.Errorf("localfs.Load: %w", err)
	}
	return data, nil
}

func (s *store) Save(_ context.Context, templateID string, data []byte) error {
	p, err := s.path(templateID)
	if err != nil {
		return err
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("localfs.Save: %w", err)
	}
	return nil
}

func (s *store) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("localfs.List: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
