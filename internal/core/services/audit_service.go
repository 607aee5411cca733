package services

import (
	"context"

	"hosteldesk/internal/adapters/persistence/models"
	"hosteldesk/internal/adapters/persistence/repositories"
)

// AuditService exposes the login audit log to administrators.
type AuditService struct {
	logRepo repositories.LoginLogRepository
}

// NewAuditService creates a new audit service
func NewAuditService(logRepo repositories.LoginLogRepository) *AuditService {
	return &AuditService{logRepo: logRepo}
}

// ListLogsInput represents list logs input
type ListLogsInput struct {
	Page  int
	Limit int
}

// ListLogsOutput represents list logs output
type ListLogsOutput struct {
	Logs  []*models.LoginLog `json:"logs"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// ListLogs lists login attempts, most recent first.
func (s *AuditService) ListLogs(ctx context.Context, input *ListLogsInput) (*ListLogsOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}

	offset := (input.Page - 1) * input.Limit

	logs, total, err := s.logRepo.List(ctx, offset, input.Limit)
	if err != nil {
		return nil, err
	}

	return &ListLogsOutput{
		Logs:  logs,
		Total: total,
		Page:  input.Page,
		Limit: input.Limit,
	}, nil
}

// DeleteLog removes one audit entry. Deleting an absent id is a no-op.
func (s *AuditService) DeleteLog(ctx context.Context, id uint) error {
	return s.logRepo.Delete(ctx, id)
}
