package service

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carryint/carryint/internal/api/dto"
	"github.com/carryint/carryint/internal/domain/statement"
	"github.com/carryint/carryint/internal/types"
)

// recentInvoiceCount caps the dashboard's recent activity list
const recentInvoiceCount = 5

type DashboardService interface {
	// GetStats aggregates headline figures over the full invoice set
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	ServiceParams
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(params ServiceParams) DashboardService {
	return &dashboardService{ServiceParams: params}
}

func (s *dashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	profit := decimal.Zero
	for _, inv := range invoices {
		revenue = revenue.Add(inv.TotalAmount)
		profit = profit.Add(inv.Profit)
	}

	now := time.Now().UTC()
	receivables := statement.Build(invoices, types.StatementTypeReceivables, statement.EntityFilterAll, now)
	payables := statement.Build(invoices, types.StatementTypePayables, statement.EntityFilterAll, now)

	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].Date.After(invoices[j].Date)
	})
	recent := invoices
	if len(recent) > recentInvoiceCount {
		recent = recent[:recentInvoiceCount]
	}

	return &dto.DashboardStatsResponse{
		TotalRevenue:           revenue,
		TotalProfit:            profit,
		OutstandingReceivables: receivables.Total,
		OutstandingPayables:    payables.Total,
		RecentInvoices:         recent,
	}, nil
}
