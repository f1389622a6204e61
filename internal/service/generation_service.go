package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"docugen/internal/docgen"
	"docugen/internal/domain"
	"docugen/internal/port"
)

// usageLogTimeout bounds the detached usage-log append so a slow log store
// cannot pile up goroutines.
const usageLogTimeout = 10 * time.Second

// GenerateOutput is a generated artifact plus its serving metadata.
type GenerateOutput struct {
	Data        []byte
	FileName    string
	ContentType string
}

// GenerationService runs the document generation pipeline for an
// authenticated user and records usage after success.
type GenerationService interface {
	Generate(ctx context.Context, username string, req *domain.GenerateRequest) (*GenerateOutput, error)
}

type generationService struct {
	assembler *docgen.Assembler
	usageLog  port.UsageLogRepository
}

// NewGenerationService creates a new GenerationService implementation.
func NewGenerationService(assembler *docgen.Assembler, usageLog port.UsageLogRepository) GenerationService {
	return &generationService{assembler: assembler, usageLog: usageLog}
}

func (s *generationService) Generate(ctx context.Context, username string, req *domain.GenerateRequest) (*GenerateOutput, error) {
	data, res, err := s.assembler.Assemble(ctx, req)
	if err != nil {
		return nil, err
	}

	// Usage logging is fire-and-forget: the artifact is already generated
	// and a log-store failure must never surface to the caller.
	entry := &domain.UsageEntry{
		Username:     username,
		Company:      docgen.CompanyName(req),
		DocumentType: string(res.DocType),
		GeneratedAt:  time.Now().UTC(),
	}
	go s.recordUsage(entry)

	return &GenerateOutput{
		Data:        data,
		FileName:    fmt.Sprintf("%s.docx", res.DocType),
		ContentType: domain.DocxContentType,
	}, nil
}

func (s *generationService) recordUsage(entry *domain.UsageEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), usageLogTimeout)
	defer cancel()

	if err := s.usageLog.Append(ctx, entry); err != nil {
		log.Printf("usage log append failed for %s/%s: %v", entry.Username, entry.DocumentType, err)
	}
}
