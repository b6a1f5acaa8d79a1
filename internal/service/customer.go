package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carryint/carryint/internal/api/dto"
	ierr "github.com/carryint/carryint/internal/errors"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	GetCustomer(ctx context.Context, id string) (*dto.CustomerResponse, error)

	// ListCustomers returns every customer with its billing activity
	// (invoice count and total billed) derived from the invoice set
	ListCustomers(ctx context.Context) ([]*dto.CustomerResponse, error)
}

type customerService struct {
	ServiceParams
}

// NewCustomerService creates a new instance of CustomerService
func NewCustomerService(params ServiceParams) CustomerService {
	return &customerService{ServiceParams: params}
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cust := req.ToCustomer()
	if err := cust.Validate(); err != nil {
		return nil, err
	}
	if err := s.CustomerRepo.Create(ctx, cust); err != nil {
		return nil, err
	}

	s.Logger.Infow("created customer", "customer_id", cust.ID, "type", cust.Type)

	return &dto.CustomerResponse{Customer: cust, TotalBilled: decimal.Zero}, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	if id == "" {
		return nil, ierr.NewError("customer_id is required").
			WithHint("Customer ID is required").
			Mark(ierr.ErrValidation)
	}

	cust, err := s.CustomerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &dto.CustomerResponse{Customer: cust, TotalBilled: decimal.Zero}
	if err := s.attachActivity(ctx, []*dto.CustomerResponse{resp}); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]*dto.CustomerResponse, error) {
	customers, err := s.CustomerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CustomerResponse, len(customers))
	for i, cust := range customers {
		items[i] = &dto.CustomerResponse{Customer: cust, TotalBilled: decimal.Zero}
	}
	if err := s.attachActivity(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *customerService) attachActivity(ctx context.Context, items []*dto.CustomerResponse) error {
	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return err
	}

	byCustomer := make(map[string]*dto.CustomerResponse, len(items))
	for _, item := range items {
		byCustomer[item.ID] = item
	}
	for _, inv := range invoices {
		item, ok := byCustomer[inv.CustomerID]
		if !ok {
			continue
		}
		item.InvoiceCount++
		item.TotalBilled = item.TotalBilled.Add(inv.TotalAmount)
	}
	return nil
}
