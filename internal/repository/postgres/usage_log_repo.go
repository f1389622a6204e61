package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"docugen/internal/domain"
	"docugen/internal/port"
)

type usageLogRepo struct {
	db *sqlx.DB
}

// NewUsageLogRepo creates a new PostgreSQL-backed UsageLogRepository.
func NewUsageLogRepo(db *sqlx.DB) port.UsageLogRepository {
	return &usageLogRepo{db: db}
}

func (r *usageLogRepo) Append(ctx context.Context, entry *domain.UsageEntry) error {
	entry.ID = uuid.New()
	if entry.GeneratedAt.IsZero() {
		entry.GeneratedAt = time.Now().UTC()
	}

	query := `INSERT INTO usage_logs (id, username, company, document_type, generated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.Username, entry.Company, entry.DocumentType, entry.GeneratedAt)
	if err != nil {
		return fmt.Errorf("usageLogRepo.Append: %w", err)
	}
	return nil
}

func (r *usageLogRepo) List(ctx context.Context, limit int) ([]domain.UsageEntry, error) {
	if limit <= 0 {
		limit = 1000
	}
	var entries []domain.UsageEntry
	err := r.db.SelectContext(ctx, &entries,
		"SELECT * FROM usage_logs ORDER BY generated_at DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("usageLogRepo.List: %w", err)
	}
	return entries, nil
}
