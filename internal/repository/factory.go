package repository

import (
	"github.com/carryint/carryint/internal/domain/company"
	"github.com/carryint/carryint/internal/domain/customer"
	"github.com/carryint/carryint/internal/domain/invoice"
	"github.com/carryint/carryint/internal/domain/vendor"
	"github.com/carryint/carryint/internal/kv"
)

// Repositories bundles the entity repositories over one blob store
type Repositories struct {
	Customer customer.Repository
	Vendor   vendor.Repository
	Invoice  invoice.Repository
	Company  company.Repository
}

// NewRepositories wires every repository over the given store
func NewRepositories(store kv.Store) *Repositories {
	return &Repositories{
		Customer: NewCustomerRepository(store),
		Vendor:   NewVendorRepository(store),
		Invoice:  NewInvoiceRepository(store),
		Company:  NewCompanyRepository(store),
	}
}
