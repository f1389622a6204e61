package port

import "context"

// TemplateStore abstracts where DOCX template packages live. Load returns
// domain.ErrTemplateNotFound when the identifier has no stored package.
type TemplateStore interface {
	Load(ctx context.Context, templateID string) ([]byte, error)
	Save(ctx context.Context, templateID string, data []byte) error
	List(ctx context.Context) ([]string, error)
}
