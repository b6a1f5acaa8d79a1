package company

import (
	"context"

	"github.com/carryint/carryint/internal/config"
)

// Info is the issuing entity printed on rendered tax invoices: letterhead
// identity, tax registration number and the bank settlement block.
type Info struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
	Website string `json:"website"`

	// TRN is the tax registration number; it is captured onto every
	// invoice at creation time
	TRN string `json:"trn"`

	Bank BankDetails `json:"bank"`

	// LogoURL is an optional reference to the company logo asset
	LogoURL string `json:"logo_url,omitempty"`
}

// BankDetails is the settlement account block on the invoice footer
type BankDetails struct {
	BeneficiaryName string `json:"name"`
	CIF             string `json:"cif"`
	AccountNumber   string `json:"acc_no"`
	IBAN            string `json:"iban"`
}

// Repository provides access to the stored company profile
type Repository interface {
	Get(ctx context.Context) (*Info, error)
	Set(ctx context.Context, info *Info) error
}

// FromConfig builds the default company profile from configuration
func FromConfig(cfg config.CompanyConfig) *Info {
	return &Info{
		Name:    cfg.Name,
		Address: cfg.Address,
		Contact: cfg.Contact,
		Email:   cfg.Email,
		Website: cfg.Website,
		TRN:     cfg.TRN,
		Bank: BankDetails{
			BeneficiaryName: cfg.Bank.BeneficiaryName,
			CIF:             cfg.Bank.CIF,
			AccountNumber:   cfg.Bank.AccountNumber,
			IBAN:            cfg.Bank.IBAN,
		},
		LogoURL: cfg.LogoURL,
	}
}
