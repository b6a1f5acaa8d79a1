package invoice

import (
	"context"

	"github.com/carryint/carryint/internal/types"
)

// Repository provides access to invoice storage. Invoices are append-only
// apart from payment status updates; there is no full update operation.
type Repository interface {
	Create(ctx context.Context, invoice *Invoice) error
	Get(ctx context.Context, id string) (*Invoice, error)
	List(ctx context.Context) ([]*Invoice, error)

	// UpdatePaymentStatus settles or reopens a balance; nil leaves the
	// corresponding status untouched
	UpdatePaymentStatus(ctx context.Context, id string, status, vendorStatus *types.PaymentStatus) error
}
