package dto

import (
	"github.com/shopspring/decimal"

	"github.com/carryint/carryint/internal/domain/invoice"
	"github.com/carryint/carryint/internal/domain/statement"
	"github.com/carryint/carryint/internal/types"
	"github.com/carryint/carryint/internal/validator"
)

// OverdueThresholdDays is the age at which the presentation layer flags an
// open item. The statement engine itself only reports raw day counts; the
// threshold is policy, and it lives here with the rest of the presentation
// contract.
const OverdueThresholdDays = 30

// StatementRequest asks for an aging statement in one direction, optionally
// narrowed to a single customer or vendor. An empty or "all" EntityID means
// no restriction.
type StatementRequest struct {
	Type     types.StatementType `json:"type" validate:"required"`
	EntityID string              `json:"entity_id,omitempty"`
}

func (r *StatementRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.Type.Validate()
}

// StatementItemResponse is one open item with its presentation flags
type StatementItemResponse struct {
	Invoice  *invoice.Invoice `json:"invoice"`
	DaysOpen int              `json:"days_open"`
	Amount   decimal.Decimal  `json:"amount"`
	Overdue  bool             `json:"overdue"`
}

// StatementResponse is the rendered aging statement
type StatementResponse struct {
	Type  types.StatementType     `json:"type"`
	Items []StatementItemResponse `json:"items"`
	Total decimal.Decimal         `json:"total"`
}

// NewStatementResponse applies the overdue policy to an engine statement
func NewStatementResponse(st statement.Statement) *StatementResponse {
	items := make([]StatementItemResponse, len(st.Items))
	for i, item := range st.Items {
		items[i] = StatementItemResponse{
			Invoice:  item.Invoice,
			DaysOpen: item.DaysOpen,
			Amount:   item.Amount,
			Overdue:  item.DaysOpen > OverdueThresholdDays,
		}
	}
	return &StatementResponse{
		Type:  st.Type,
		Items: items,
		Total: st.Total,
	}
}

// DashboardStatsResponse is the headline view over all invoices
type DashboardStatsResponse struct {
	TotalRevenue           decimal.Decimal    `json:"total_revenue"`
	TotalProfit            decimal.Decimal    `json:"total_profit"`
	OutstandingReceivables decimal.Decimal    `json:"outstanding_receivables"`
	OutstandingPayables    decimal.Decimal    `json:"outstanding_payables"`
	RecentInvoices         []*invoice.Invoice `json:"recent_invoices"`
}
