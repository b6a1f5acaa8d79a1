package export

import (
	"strings"
	"time"

	"github.com/carryint/carryint/internal/domain/company"
	"github.com/carryint/carryint/internal/domain/customer"
	"github.com/carryint/carryint/internal/domain/invoice"
	"github.com/carryint/carryint/internal/domain/vendor"
)

// Dataset is the full entity snapshot handed to the packager. The JSON
// form of this struct is the backup format: unpacking an archive and
// decoding its snapshot entry yields the exact original collections.
type Dataset struct {
	Invoices  []*invoice.Invoice   `json:"invoices"`
	Customers []*customer.Customer `json:"customers"`
	Vendors   []*vendor.Vendor     `json:"vendors"`
	Company   *company.Info        `json:"company_info,omitempty"`
}

// Timestamp renders an instant as a filesystem-safe ISO-8601 string:
// ":" and "." are replaced with "-", e.g. 2026-08-30T10-15-04-000Z.
func Timestamp(t time.Time) string {
	iso := t.UTC().Format("2006-01-02T15:04:05.000Z")
	return strings.NewReplacer(":", "-", ".", "-").Replace(iso)
}

// WorkbookFilename is the download name of a standalone workbook export
func WorkbookFilename(t time.Time) string {
	return "Carryint_Financial_Report_" + t.UTC().Format("02-01-2006") + ".xlsx"
}

// ArchiveFilename is the download name of a full backup archive
func ArchiveFilename(t time.Time) string {
	return "Carryint_Full_Backup_" + Timestamp(t) + ".zip"
}

// snapshot and workbook entry names inside the archive
func snapshotEntryName(t time.Time) string {
	return "carryint_backup_" + Timestamp(t) + ".json"
}

func workbookEntryName(t time.Time) string {
	return "carryint_financial_report_" + Timestamp(t) + ".xlsx"
}
