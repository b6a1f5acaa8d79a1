package repository

// Blob store keys. These match the keys the dataset has always been
// persisted under, so existing backups restore without translation.
const (
	KeyCustomers   = "carryint_customers"
	KeyVendors     = "carryint_vendors"
	KeyInvoices    = "carryint_invoices"
	KeyCompanyInfo = "carryint_company_info"
)
