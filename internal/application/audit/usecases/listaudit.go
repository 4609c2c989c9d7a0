package usecases

import (
	"context"

	"lotledger/internal/application/audit/dto"
	"lotledger/internal/domain/audit"
	"lotledger/internal/shared/errors"
	"lotledger/internal/shared/logger"
)

type ListAuditQuery struct {
	Actor    string
	Action   string
	Page     int
	PageSize int
}

type ListAuditResult struct {
	Entries []*dto.EntryResponse
	Total   int64
}

// ListAuditUseCase reads the trail. There is no write counterpart here on
// purpose; entries are appended by the modules that do the work.
type ListAuditUseCase struct {
	auditRepo audit.Repository
	logger    logger.Interface
}

func NewListAuditUseCase(auditRepo audit.Repository, logger logger.Interface) *ListAuditUseCase {
	return &ListAuditUseCase{auditRepo: auditRepo, logger: logger}
}

func (uc *ListAuditUseCase) Execute(ctx context.Context, query ListAuditQuery) (*ListAuditResult, error) {
	filter := audit.Filter{
		Actor:    query.Actor,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Action != "" {
		action, err := audit.ParseAction(query.Action)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Action = action
	}

	entries, total, err := uc.auditRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list audit trail", "error", err)
		return nil, err
	}

	return &ListAuditResult{
		Entries: dto.EntriesToResponse(entries),
		Total:   total,
	}, nil
}
