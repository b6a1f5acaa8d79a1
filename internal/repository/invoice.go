package repository

import (
	"context"
	"sync"
	"time"

	"github.com/carryint/carryint/internal/domain/invoice"
	ierr "github.com/carryint/carryint/internal/errors"
	"github.com/carryint/carryint/internal/kv"
	"github.com/carryint/carryint/internal/types"
)

type invoiceRepository struct {
	store kv.Store
	mu    sync.Mutex
}

// NewInvoiceRepository creates an invoice repository over the blob store.
// Invoices are append-only apart from payment status updates.
func NewInvoiceRepository(store kv.Store) invoice.Repository {
	return &invoiceRepository{store: store}
}

func (r *invoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, existing := range items {
		if existing.ID == inv.ID {
			return ierr.NewError("invoice already exists").
				WithHintf("Invoice %s already exists", inv.ID).
				Mark(ierr.ErrAlreadyExists)
		}
	}

	items = append(items, inv)
	return r.store.Set(ctx, KeyInvoices, items)
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, inv := range items {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, ierr.NewError("invoice not found").
		WithHintf("Invoice %s does not exist", id).
		Mark(ierr.ErrNotFound)
}

func (r *invoiceRepository) List(ctx context.Context) ([]*invoice.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *invoiceRepository) UpdatePaymentStatus(ctx context.Context, id string, status, vendorStatus *types.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, inv := range items {
		if inv.ID != id {
			continue
		}
		if status != nil {
			inv.PaymentStatus = *status
		}
		if vendorStatus != nil {
			inv.VendorPaymentStatus = *vendorStatus
		}
		inv.UpdatedAt = time.Now().UTC()
		return r.store.Set(ctx, KeyInvoices, items)
	}
	return ierr.NewError("invoice not found").
		WithHintf("Invoice %s does not exist", id).
		Mark(ierr.ErrNotFound)
}

func (r *invoiceRepository) load(ctx context.Context) ([]*invoice.Invoice, error) {
	var items []*invoice.Invoice
	if err := r.store.Get(ctx, KeyInvoices, &items); err != nil {
		if ierr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return items, nil
}
