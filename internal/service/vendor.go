package service

import (
	"context"
	"time"

	"github.com/carryint/carryint/internal/api/dto"
	"github.com/carryint/carryint/internal/domain/statement"
	ierr "github.com/carryint/carryint/internal/errors"
	"github.com/carryint/carryint/internal/types"
)

type VendorService interface {
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*dto.VendorResponse, error)
	GetVendor(ctx context.Context, id string) (*dto.VendorResponse, error)

	// ListVendors returns every vendor with its open payable balance
	ListVendors(ctx context.Context) ([]*dto.VendorResponse, error)
}

type vendorService struct {
	ServiceParams
}

// NewVendorService creates a new instance of VendorService
func NewVendorService(params ServiceParams) VendorService {
	return &vendorService{ServiceParams: params}
}

func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	vend := req.ToVendor()
	if err := vend.Validate(); err != nil {
		return nil, err
	}
	if err := s.VendorRepo.Create(ctx, vend); err != nil {
		return nil, err
	}

	s.Logger.Infow("created vendor", "vendor_id", vend.ID)

	return &dto.VendorResponse{Vendor: vend}, nil
}

func (s *vendorService) GetVendor(ctx context.Context, id string) (*dto.VendorResponse, error) {
	if id == "" {
		return nil, ierr.NewError("vendor_id is required").
			WithHint("Vendor ID is required").
			Mark(ierr.ErrValidation)
	}

	vend, err := s.VendorRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &dto.VendorResponse{Vendor: vend}
	if err := s.attachPayables(ctx, []*dto.VendorResponse{resp}); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *vendorService) ListVendors(ctx context.Context) ([]*dto.VendorResponse, error) {
	vendors, err := s.VendorRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.VendorResponse, len(vendors))
	for i, vend := range vendors {
		items[i] = &dto.VendorResponse{Vendor: vend}
	}
	if err := s.attachPayables(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// attachPayables derives each vendor's open balance from the payables
// statement; nothing is ever stored on the vendor itself.
func (s *vendorService) attachPayables(ctx context.Context, items []*dto.VendorResponse) error {
	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, item := range items {
		st := statement.Build(invoices, types.StatementTypePayables, item.ID, now)
		item.OutstandingPayable = st.Total
	}
	return nil
}
