package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/carryint/carryint/internal/api/dto"
	"github.com/carryint/carryint/internal/config"
	"github.com/carryint/carryint/internal/domain/company"
	"github.com/carryint/carryint/internal/kv"
	"github.com/carryint/carryint/internal/logger"
	"github.com/carryint/carryint/internal/money"
	"github.com/carryint/carryint/internal/repository"
	"github.com/carryint/carryint/internal/service"
	"github.com/carryint/carryint/internal/types"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "error loading .env file: %v\n", err)
		}
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles the wired stack behind every command
type app struct {
	cfg      *config.Configuration
	log      *logger.Logger
	services struct {
		customer  service.CustomerService
		vendor    service.VendorService
		invoice   service.InvoiceService
		company   service.CompanyService
		statement service.StatementService
		dashboard service.DashboardService
		export    service.ExportService
	}
}

func newApp() (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.NewLogger(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	store, err := kv.NewBlobStore(cfg.Store.DataDir, log)
	if err != nil {
		return nil, err
	}
	repos := repository.NewRepositories(store)

	params := service.ServiceParams{
		Logger:       log,
		Config:       cfg,
		CustomerRepo: repos.Customer,
		VendorRepo:   repos.Vendor,
		InvoiceRepo:  repos.Invoice,
		CompanyRepo:  repos.Company,
	}

	a := &app{cfg: cfg, log: log}
	a.services.customer = service.NewCustomerService(params)
	a.services.vendor = service.NewVendorService(params)
	a.services.invoice = service.NewInvoiceService(params)
	a.services.company = service.NewCompanyService(params)
	a.services.statement = service.NewStatementService(params)
	a.services.dashboard = service.NewDashboardService(params)
	a.services.export = service.NewExportService(params)
	return a, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "carryint",
		Short:         "Carryint invoicing and financial reporting",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newSeedCmd(), newExportCmd(), newStatsCmd(), newStatementCmd())
	return root
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load a small sample dataset into the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.seed(cmd.Context())
		},
	}
}

func newExportCmd() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the financial report workbook, or a full backup archive with --full",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.export(cmd.Context(), full)
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "package the workbook and a JSON snapshot into a backup archive")
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.stats(cmd.Context())
		},
	}
}

func newStatementCmd() *cobra.Command {
	var entityID string

	cmd := &cobra.Command{
		Use:       "statement [receivables|payables]",
		Short:     "Print an aging statement of open balances",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"receivables", "payables"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			stType := types.StatementTypeReceivables
			if args[0] == "payables" {
				stType = types.StatementTypePayables
			}
			return a.statement(cmd.Context(), stType, entityID)
		},
	}
	cmd.Flags().StringVar(&entityID, "entity", "", "restrict to one customer or vendor id")
	return cmd
}

func (a *app) seed(ctx context.Context) error {
	info := company.FromConfig(a.cfg.Company)
	if err := a.services.company.UpdateCompanyInfo(ctx, info); err != nil {
		return err
	}

	cust, err := a.services.customer.CreateCustomer(ctx, dto.CreateCustomerRequest{
		Name:      "Gulf Star General Trading",
		Address:   "Al Ras, Deira, Dubai",
		Contact:   "+971 501234567",
		VATNumber: "100123456700003",
		Type:      types.CustomerTypeCredit,
	})
	if err != nil {
		return err
	}
	walkIn, err := a.services.customer.CreateCustomer(ctx, dto.CreateCustomerRequest{
		Name:    "Ahmed Hassan",
		Contact: "+971 559876543",
		Type:    types.CustomerTypeOneTime,
	})
	if err != nil {
		return err
	}

	vend, err := a.services.vendor.CreateVendor(ctx, dto.CreateVendorRequest{
		Name:    "Falcon Express Cargo",
		Contact: "+971 42345678",
		Address: "Airport Road, Dubai",
	})
	if err != nil {
		return err
	}

	if _, err := a.services.invoice.CreateInvoice(ctx, dto.CreateInvoiceRequest{
		CustomerID:         cust.ID,
		DestinationCountry: "India",
		Items: []dto.CreateInvoiceLineItemRequest{
			{CommodityType: "Electronics", Description: "Mobile accessories", Weight: decimal.NewFromInt(120), Quantity: 4, COO: "China", Price: decimal.NewFromInt(850)},
			{CommodityType: "Textiles", Description: "Cotton fabric rolls", Weight: decimal.NewFromInt(300), Quantity: 10, COO: "UAE", Price: decimal.NewFromInt(220)},
		},
		VendorID:   vend.ID,
		VendorCost: decimal.NewFromInt(2100),
	}); err != nil {
		return err
	}

	if _, err := a.services.invoice.CreateInvoice(ctx, dto.CreateInvoiceRequest{
		CustomerID:         walkIn.ID,
		DestinationCountry: "Kenya",
		Items: []dto.CreateInvoiceLineItemRequest{
			{CommodityType: "Documents", Description: "Courier pouch", Quantity: 1, Price: decimal.NewFromInt(95)},
		},
	}); err != nil {
		return err
	}

	a.log.Infow("seeded sample dataset", "customers", 2, "vendors", 1, "invoices", 2)
	return nil
}

func (a *app) export(ctx context.Context, full bool) error {
	var resp *dto.ExportResponse
	var err error
	if full {
		resp, err = a.services.export.ExportArchive(ctx)
	} else {
		resp, err = a.services.export.ExportWorkbook(ctx)
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.cfg.Export.OutputDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(a.cfg.Export.OutputDir, resp.Filename)
	if err := os.WriteFile(path, resp.Data, 0o644); err != nil {
		return err
	}

	fmt.Println(path)
	return nil
}

func (a *app) stats(ctx context.Context) error {
	stats, err := a.services.dashboard.GetStats(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Total revenue:           %s\n", money.FormatAED(stats.TotalRevenue))
	fmt.Printf("Total profit:            %s\n", money.FormatAED(stats.TotalProfit))
	fmt.Printf("Outstanding receivables: %s\n", money.FormatAED(stats.OutstandingReceivables))
	fmt.Printf("Outstanding payables:    %s\n", money.FormatAED(stats.OutstandingPayables))

	if len(stats.RecentInvoices) > 0 {
		fmt.Println("\nRecent invoices:")
		for _, inv := range stats.RecentInvoices {
			fmt.Printf("  %s  %s  %-30s %s\n",
				inv.InvoiceNumber,
				inv.Date.Format("02/01/2006"),
				inv.CustomerName,
				money.FormatAED(inv.TotalAmount),
			)
		}
	}
	return nil
}

func (a *app) statement(ctx context.Context, stType types.StatementType, entityID string) error {
	resp, err := a.services.statement.GetStatement(ctx, dto.StatementRequest{
		Type:     stType,
		EntityID: entityID,
	})
	if err != nil {
		return err
	}

	for _, item := range resp.Items {
		flag := " "
		if item.Overdue {
			flag = "!"
		}
		name := item.Invoice.CustomerName
		if stType == types.StatementTypePayables {
			name = item.Invoice.VendorName
		}
		fmt.Printf("%s %s  %s  %-30s %4d days  %s\n",
			flag,
			item.Invoice.InvoiceNumber,
			item.Invoice.Date.Format("02/01/2006"),
			name,
			item.DaysOpen,
			money.FormatAED(item.Amount),
		)
	}
	fmt.Printf("\nTotal: %s (%s)\n", money.FormatAED(resp.Total), money.AmountInWords(resp.Total))
	return nil
}
