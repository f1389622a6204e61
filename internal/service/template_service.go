package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"docugen/internal/docgen"
	"docugen/internal/domain"
	"docugen/internal/port"
)

// TemplateService manages the template set: admin uploads, listing, and
// syncing the remote set into the local store.
type TemplateService interface {
	Upload(ctx context.Context, templateID string, data []byte) error
	List(ctx context.Context) ([]string, error)
	SyncFromRemote(ctx context.Context) (int, error)
}

type templateService struct {
	store  port.TemplateStore
	remote port.TemplateStore // nil when no remote is configured
}

// NewTemplateService creates a TemplateService over the active store and an
// optional remote source to sync from.
func NewTemplateService(store, remote port.TemplateStore) TemplateService {
	return &templateService{store: store, remote: remote}
}

func (s *templateService) Upload(ctx context.Context, templateID string, data []byte) error {
	if !strings.HasSuffix(templateID, ".docx") {
		return fmt.Errorf("%w: template name must end in .docx", domain.ErrMalformedPayload)
	}
	// Reject files that are not valid template packages up front.
	if _, err := docgen.OpenPackage(data); err != nil {
		return fmt.Errorf("%w: not a valid document package", domain.ErrMalformedPayload)
	}
	if err := s.store.Save(ctx, templateID, data); err != nil {
		return fmt.Errorf("templateService.Upload: %w", err)
	}
	return nil
}

func (s *templateService) List(ctx context.Context) ([]string, error) {
	names, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("templateService.List: %w", err)
	}
	return names, nil
}

// SyncFromRemote copies every template in the remote store into the active
// store, returning the number synced. Individual copy failures are logged
// and skipped so one bad object does not abort the whole sync.
func (s *templateService) SyncFromRemote(ctx context.Context) (int, error) {
	if s.remote == nil {
		return 0, fmt.Errorf("templateService.SyncFromRemote: no remote store configured")
	}

	names, err := s.remote.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("templateService.SyncFromRemote: %w", err)
	}

	synced := 0
	for _, name := range names {
		data, err := s.remote.Load(ctx, name)
		if err != nil {
			log.Printf("template sync: load %s: %v", name, err)
			continue
		}
		if err := s.store.Save(ctx, name, data); err != nil {
			log.Printf("template sync: save %s: %v", name, err)
			continue
		}
		synced++
	}
	return synced, nil
}
