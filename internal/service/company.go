package service

import (
	"context"

	"github.com/carryint/carryint/internal/domain/company"
	ierr "github.com/carryint/carryint/internal/errors"
)

type CompanyService interface {
	// GetCompanyInfo returns the stored profile, falling back to the
	// configured defaults when nothing has been stored yet
	GetCompanyInfo(ctx context.Context) (*company.Info, error)

	UpdateCompanyInfo(ctx context.Context, info *company.Info) error
}

type companyService struct {
	ServiceParams
}

// NewCompanyService creates a new instance of CompanyService
func NewCompanyService(params ServiceParams) CompanyService {
	return &companyService{ServiceParams: params}
}

func (s *companyService) GetCompanyInfo(ctx context.Context) (*company.Info, error) {
	info, err := s.CompanyRepo.Get(ctx)
	if err != nil {
		if ierr.IsNotFound(err) {
			return company.FromConfig(s.Config.Company), nil
		}
		return nil, err
	}
	return info, nil
}

func (s *companyService) UpdateCompanyInfo(ctx context.Context, info *company.Info) error {
	if info == nil || info.Name == "" {
		return ierr.NewError("company name is required").
			WithHint("Company name is required").
			Mark(ierr.ErrValidation)
	}
	if err := s.CompanyRepo.Set(ctx, info); err != nil {
		return err
	}

	s.Logger.Infow("updated company profile", "name", info.Name, "trn", info.TRN)
	return nil
}
