package service

import (
	"context"
	"sort"
	"time"

	"github.com/carryint/carryint/internal/api/dto"
	"github.com/carryint/carryint/internal/domain/invoice"
	ierr "github.com/carryint/carryint/internal/errors"
	"github.com/carryint/carryint/internal/types"
)

type InvoiceService interface {
	// CreateInvoice computes totals, snapshots the billed customer and
	// persists the new invoice. Invoices are immutable once created.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)

	GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context) ([]*dto.InvoiceResponse, error)

	// UpdatePaymentStatus settles or reopens the customer-facing and/or
	// vendor-facing balance of an invoice; nil leaves a side untouched
	UpdatePaymentStatus(ctx context.Context, id string, status, vendorStatus *types.PaymentStatus) error
}

type invoiceService struct {
	ServiceParams
}

// NewInvoiceService creates a new instance of InvoiceService
func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{ServiceParams: params}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cust, err := s.CustomerRepo.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	items := req.ToLineItems()
	totals := invoice.ComputeTotals(items, req.VendorCost)

	now := time.Now().UTC()
	inv := &invoice.Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		InvoiceNumber: types.GenerateInvoiceNumber(),
		Date:          now,
		CustomerID:    cust.ID,

		// snapshot the customer so later edits never rewrite history
		CustomerName:    cust.Name,
		CustomerAddress: cust.Address,
		CustomerContact: cust.Contact,
		CustomerEmail:   cust.Email,
		CustomerVAT:     cust.VATNumber,

		DestinationCountry: req.DestinationCountry,
		Items:              items,
		VendorCost:         req.VendorCost,

		// a one-time customer settles at the counter; credit opens unpaid
		PaymentStatus:       cust.Type.DefaultPaymentStatus(),
		VendorPaymentStatus: types.PaymentStatusUnpaid,

		BaseModel: types.BaseModel{CreatedAt: now, UpdatedAt: now},
	}
	inv.ApplyTotals(totals)

	if req.VendorID != "" {
		vend, err := s.VendorRepo.Get(ctx, req.VendorID)
		if err != nil {
			return nil, err
		}
		inv.VendorID = vend.ID
		inv.VendorName = vend.Name
	}

	inv.CompanyTRN = s.companyTRN(ctx)

	if err := inv.Validate(); err != nil {
		return nil, err
	}
	if err := s.InvoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	s.Logger.Infow("created invoice",
		"invoice_id", inv.ID,
		"invoice_number", inv.InvoiceNumber,
		"customer_id", inv.CustomerID,
		"total_amount", inv.TotalAmount,
	)

	return &dto.InvoiceResponse{Invoice: inv}, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	if id == "" {
		return nil, ierr.NewError("invoice_id is required").
			WithHint("Invoice ID is required").
			Mark(ierr.ErrValidation)
	}

	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceResponse{Invoice: inv}, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context) ([]*dto.InvoiceResponse, error) {
	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// newest first for the invoice register
	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].Date.After(invoices[j].Date)
	})

	items := make([]*dto.InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		items[i] = &dto.InvoiceResponse{Invoice: inv}
	}
	return items, nil
}

func (s *invoiceService) UpdatePaymentStatus(ctx context.Context, id string, status, vendorStatus *types.PaymentStatus) error {
	if id == "" {
		return ierr.NewError("invoice_id is required").
			WithHint("Invoice ID is required").
			Mark(ierr.ErrValidation)
	}
	if status == nil && vendorStatus == nil {
		return ierr.NewError("no status given").
			WithHint("Provide a customer or vendor payment status to update").
			Mark(ierr.ErrValidation)
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	if vendorStatus != nil {
		if err := vendorStatus.Validate(); err != nil {
			return err
		}
	}

	return s.InvoiceRepo.UpdatePaymentStatus(ctx, id, status, vendorStatus)
}

// companyTRN resolves the tax registration number stamped onto new
// invoices, preferring the stored profile over the configured default.
func (s *invoiceService) companyTRN(ctx context.Context) string {
	info, err := s.CompanyRepo.Get(ctx)
	if err == nil && info.TRN != "" {
		return info.TRN
	}
	return s.Config.Company.TRN
}
