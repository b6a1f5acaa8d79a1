package service

import (
	"github.com/carryint/carryint/internal/config"
	"github.com/carryint/carryint/internal/domain/company"
	"github.com/carryint/carryint/internal/domain/customer"
	"github.com/carryint/carryint/internal/domain/invoice"
	"github.com/carryint/carryint/internal/domain/vendor"
	"github.com/carryint/carryint/internal/logger"
)

// ServiceParams bundles the dependencies every service draws from
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	CustomerRepo customer.Repository
	VendorRepo   vendor.Repository
	InvoiceRepo  invoice.Repository
	CompanyRepo  company.Repository
}
