package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/carryint/carryint/internal/domain/invoice"
	ierr "github.com/carryint/carryint/internal/errors"
)

// Sheet names and column labels are consumed by office-suite tooling
// downstream; both the labels and their order are a stable contract.
const (
	SheetInvoices  = "Invoices"
	SheetCustomers = "Customers"
	SheetVendors   = "Vendors"
)

var (
	InvoiceColumns  = []string{"Invoice No", "Date", "Customer", "Destination", "Net Amount", "VAT", "Total Amount", "Status", "Profit", "Vendor"}
	CustomerColumns = []string{"Name", "Type", "Contact", "VAT Number", "Address"}
	VendorColumns   = []string{"Name", "Contact", "Address"}
)

// BuildWorkbook serializes the dataset into a three-sheet XLSX workbook
// and returns the finished file bytes. Nothing is emitted on error.
func BuildWorkbook(ds Dataset) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", SheetInvoices)
	if _, err := f.NewSheet(SheetCustomers); err != nil {
		return nil, workbookErr(err)
	}
	if _, err := f.NewSheet(SheetVendors); err != nil {
		return nil, workbookErr(err)
	}

	if err := writeRows(f, SheetInvoices, InvoiceColumns, invoiceRows(ds.Invoices)); err != nil {
		return nil, err
	}
	if err := writeRows(f, SheetCustomers, CustomerColumns, customerRows(ds)); err != nil {
		return nil, err
	}
	if err := writeRows(f, SheetVendors, VendorColumns, vendorRows(ds)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, workbookErr(err)
	}
	return buf.Bytes(), nil
}

func invoiceRows(invoices []*invoice.Invoice) [][]interface{} {
	rows := make([][]interface{}, 0, len(invoices))
	for _, inv := range invoices {
		vendorName := inv.VendorName
		if vendorName == "" {
			vendorName = "N/A"
		}
		rows = append(rows, []interface{}{
			inv.InvoiceNumber,
			inv.Date.UTC().Format("02/01/2006"),
			inv.CustomerName,
			inv.DestinationCountry,
			inv.NetAmount.InexactFloat64(),
			inv.TotalVAT.InexactFloat64(),
			inv.TotalAmount.InexactFloat64(),
			inv.PaymentStatus.String(),
			inv.Profit.InexactFloat64(),
			vendorName,
		})
	}
	return rows
}

func customerRows(ds Dataset) [][]interface{} {
	rows := make([][]interface{}, 0, len(ds.Customers))
	for _, c := range ds.Customers {
		vatNumber := c.VATNumber
		if vatNumber == "" {
			vatNumber = "N/A"
		}
		rows = append(rows, []interface{}{
			c.Name,
			c.Type.String(),
			c.Contact,
			vatNumber,
			c.Address,
		})
	}
	return rows
}

func vendorRows(ds Dataset) [][]interface{} {
	rows := make([][]interface{}, 0, len(ds.Vendors))
	for _, v := range ds.Vendors {
		rows = append(rows, []interface{}{
			v.Name,
			v.Contact,
			v.Address,
		})
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	headerRow := make([]interface{}, len(header))
	for i, label := range header {
		headerRow[i] = label
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return workbookErr(err)
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return workbookErr(err)
		}
	}
	return nil
}

func workbookErr(err error) error {
	return ierr.WithError(err).
		WithHint("Failed to generate the financial report workbook").
		Mark(ierr.ErrExport)
}
