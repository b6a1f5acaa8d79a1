package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/carryint/carryint/internal/types"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Store      StoreConfig      `validate:"required"`
	Export     ExportConfig     `validate:"required"`
	Company    CompanyConfig    `validate:"required"`
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// StoreConfig configures the key-value blob store backing the repositories
type StoreConfig struct {
	// DataDir is where the JSON blobs are persisted; empty keeps the store
	// purely in memory
	DataDir string
}

// ExportConfig configures where generated artifacts are written
type ExportConfig struct {
	OutputDir string `validate:"required"`
}

// CompanyConfig carries the issuing entity printed on tax invoices.
// Defaults match the Carryint company profile; a config file or
// CARRYINT_* env vars override them.
type CompanyConfig struct {
	Name    string `validate:"required"`
	Address string
	Contact string
	Email   string
	Website string
	TRN     string
	Bank    BankConfig
	LogoURL string
}

// BankConfig is the settlement account block on the invoice footer
type BankConfig struct {
	BeneficiaryName string
	CIF             string
	AccountNumber   string
	IBAN            string
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/carryint")

	v.SetEnvPrefix("CARRYINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", string(types.ModeLocal))
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("store.datadir", "./data")
	v.SetDefault("export.outputdir", ".")

	v.SetDefault("company.name", "Carryint Shipping Services L.L.C")
	v.SetDefault("company.address", "Mo2, Al Khabeesi Building, 20th St, Al Khabaisi, Deira, Dubai, UAE")
	v.SetDefault("company.contact", "+971 563034626")
	v.SetDefault("company.email", "info@carryint.com")
	v.SetDefault("company.website", "www.carryint.com")
	v.SetDefault("company.trn", "100456209800003")
	v.SetDefault("company.bank.beneficiaryname", "Carryint Shipping Services LLC")
	v.SetDefault("company.bank.cif", "016098528")
	v.SetDefault("company.bank.accountnumber", "019102017222")
	v.SetDefault("company.bank.iban", "AE970330000019102017222")
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// and tests; no config file is consulted.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Store:      StoreConfig{DataDir: ""},
		Export:     ExportConfig{OutputDir: "."},
		Company: CompanyConfig{
			Name:    "Carryint Shipping Services L.L.C",
			Address: "Mo2, Al Khabeesi Building, 20th St, Al Khabaisi, Deira, Dubai, UAE",
			Contact: "+971 563034626",
			Email:   "info@carryint.com",
			Website: "www.carryint.com",
			TRN:     "100456209800003",
			Bank: BankConfig{
				BeneficiaryName: "Carryint Shipping Services LLC",
				CIF:             "016098528",
				AccountNumber:   "019102017222",
				IBAN:            "AE970330000019102017222",
			},
		},
	}
}
