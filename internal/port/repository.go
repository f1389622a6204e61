package port

import (
	"context"

	"docugen/internal/domain"
)

// UserRepository provides user lookup for credential verification.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

// UsageLogRepository is the append-only usage log. Append failures are
// recovered by callers; generation success never depends on this store.
type UsageLogRepository interface {
	Append(ctx context.Context, entry *domain.UsageEntry) error
	List(ctx context.Context, limit int) ([]domain.UsageEntry, error)
}
