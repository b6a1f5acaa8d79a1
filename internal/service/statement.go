package service

import (
	"context"
	"time"

	"github.com/carryint/carryint/internal/api/dto"
	"github.com/carryint/carryint/internal/domain/statement"
)

type StatementService interface {
	// GetStatement builds an aging statement over the current invoice set
	GetStatement(ctx context.Context, req dto.StatementRequest) (*dto.StatementResponse, error)
}

type statementService struct {
	ServiceParams
}

// NewStatementService creates a new instance of StatementService
func NewStatementService(params ServiceParams) StatementService {
	return &statementService{ServiceParams: params}
}

func (s *statementService) GetStatement(ctx context.Context, req dto.StatementRequest) (*dto.StatementResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	entityID := req.EntityID
	if entityID == "" {
		entityID = statement.EntityFilterAll
	}

	st := statement.Build(invoices, req.Type, entityID, time.Now().UTC())

	s.Logger.Debugw("built statement",
		"type", st.Type,
		"entity_id", entityID,
		"items", len(st.Items),
		"total", st.Total,
	)

	return dto.NewStatementResponse(st), nil
}
