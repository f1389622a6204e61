package service

import (
	"context"
	"fmt"
	"time"

	"docugen/internal/port"
	"docugen/internal/xlsxexport"
)

// ReportService exports the usage log as a downloadable workbook.
type ReportService interface {
	UsageReport(ctx context.Context, limit int) ([]byte, string, error)
}

type reportService struct {
	usageLog port.UsageLogRepository
}

func NewReportService(usageLog port.UsageLogRepository) ReportService {
	return &reportService{usageLog: usageLog}
}

// UsageReport returns the workbook bytes and a suggested file name.
func (s *reportService) UsageReport(ctx context.Context, limit int) ([]byte, string, error) {
	entries, err := s.usageLog.List(ctx, limit)
	if err != nil {
		return nil, "", fmt.Errorf("reportService.UsageReport: %w", err)
	}

	rows := make([][]interface{}, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []interface{}{
			e.Username,
			e.Company,
			e.DocumentType,
			e.GeneratedAt.Format(time.RFC3339),
		})
	}

	data, err := xlsxexport.Write(xlsxexport.Sheet{
		Name:   "Usage",
		Header: []string{"Username", "Company", "Document Type", "Generated At"},
		Rows:   rows,
	})
	if err != nil {
		return nil, "", fmt.Errorf("reportService.UsageReport: %w", err)
	}

	fileName := fmt.Sprintf("usage-report-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	return data, fileName, nil
}
