package types

import (
	ierr "github.com/carryint/carryint/internal/errors"
	"github.com/samber/lo"
)

// PaymentStatus represents the settlement state of an invoice balance.
// The customer-facing and vendor-facing balances of an invoice each carry
// their own PaymentStatus since they track different money flows.
type PaymentStatus string

const (
	// PaymentStatusPaid indicates the balance is fully settled
	PaymentStatusPaid PaymentStatus = "PAID"
	// PaymentStatusUnpaid indicates the balance is fully open
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
	// PaymentStatusPartial indicates a partial settlement; treated as open
	// everywhere a statement or dashboard selects pending items
	PaymentStatusPartial PaymentStatus = "PARTIAL"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// IsSettled reports whether the balance is closed. PARTIAL counts as open.
func (s PaymentStatus) IsSettled() bool {
	return s == PaymentStatusPaid
}

func (s PaymentStatus) Validate() error {
	allowed := []PaymentStatus{
		PaymentStatusPaid,
		PaymentStatusUnpaid,
		PaymentStatusPartial,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid payment status").
			WithHint("Please provide a valid payment status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CustomerType determines the default payment status at invoice creation.
// A one-time (cash) customer settles immediately; a credit customer's
// invoice opens as unpaid.
type CustomerType string

const (
	CustomerTypeOneTime CustomerType = "ONE_TIME"
	CustomerTypeCredit  CustomerType = "CREDIT"
)

func (t CustomerType) String() string {
	return string(t)
}

// DefaultPaymentStatus returns the customer-facing payment status a freshly
// created invoice starts with for this customer type.
func (t CustomerType) DefaultPaymentStatus() PaymentStatus {
	if t == CustomerTypeOneTime {
		return PaymentStatusPaid
	}
	return PaymentStatusUnpaid
}

func (t CustomerType) Validate() error {
	allowed := []CustomerType{
		CustomerTypeOneTime,
		CustomerTypeCredit,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid customer type").
			WithHint("Please provide a valid customer type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// StatementType selects the direction of an aging statement.
type StatementType string

const (
	// StatementTypeReceivables selects open customer balances (money owed to us)
	StatementTypeReceivables StatementType = "RECEIVABLES"
	// StatementTypePayables selects open vendor balances (money we owe)
	StatementTypePayables StatementType = "PAYABLES"
)

func (t StatementType) String() string {
	return string(t)
}

func (t StatementType) Validate() error {
	allowed := []StatementType{
		StatementTypeReceivables,
		StatementTypePayables,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid statement type").
			WithHint("Please provide a valid statement type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
