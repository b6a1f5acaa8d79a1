package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/carryint/carryint/internal/api/dto"
	"github.com/carryint/carryint/internal/testutil"
	"github.com/carryint/carryint/internal/types"
)

type VendorServiceSuite struct {
	testutil.BaseServiceSuite
	service  VendorService
	customer CustomerService
	invoice  InvoiceService
}

func TestVendorService(t *testing.T) {
	suite.Run(t, new(VendorServiceSuite))
}

func (s *VendorServiceSuite) SetupTest() {
	s.BaseServiceSuite.SetupTest()
	repos := s.GetRepositories()
	params := ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		CustomerRepo: repos.Customer,
		VendorRepo:   repos.Vendor,
		InvoiceRepo:  repos.Invoice,
		CompanyRepo:  repos.Company,
	}
	s.service = NewVendorService(params)
	s.customer = NewCustomerService(params)
	s.invoice = NewInvoiceService(params)
}

func (s *VendorServiceSuite) TestCreateVendor() {
	resp, err := s.service.CreateVendor(s.GetContext(), dto.CreateVendorRequest{
		Name:    "Emirates Cargo",
		Contact: "+971 500000002",
	})
	s.Require().NoError(err)

	s.NotEmpty(resp.ID)
	s.True(resp.OutstandingPayable.IsZero())
}

func (s *VendorServiceSuite) TestListVendorsWithPayables() {
	cust, err := s.customer.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Name: "Gulf Traders LLC",
		Type: types.CustomerTypeCredit,
	})
	s.Require().NoError(err)

	owed, err := s.service.CreateVendor(s.GetContext(), dto.CreateVendorRequest{Name: "Emirates Cargo"})
	s.Require().NoError(err)
	settled, err := s.service.CreateVendor(s.GetContext(), dto.CreateVendorRequest{Name: "Falcon Freight"})
	s.Require().NoError(err)

	// two open shipments with the first vendor
	for i := 0; i < 2; i++ {
		_, err := s.invoice.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
			CustomerID:         cust.ID,
			DestinationCountry: "India",
			Items: []dto.CreateInvoiceLineItemRequest{
				{CommodityType: "Electronics", Quantity: 1, Price: decimal.NewFromInt(500)},
			},
			VendorID:   owed.ID,
			VendorCost: decimal.NewFromInt(150),
		})
		s.Require().NoError(err)
	}

	// one shipment with the second vendor, then settle it
	inv, err := s.invoice.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID:         cust.ID,
		DestinationCountry: "Kenya",
		Items: []dto.CreateInvoiceLineItemRequest{
			{CommodityType: "Textiles", Quantity: 1, Price: decimal.NewFromInt(400)},
		},
		VendorID:   settled.ID,
		VendorCost: decimal.NewFromInt(90),
	})
	s.Require().NoError(err)

	paid := types.PaymentStatusPaid
	s.Require().NoError(s.invoice.UpdatePaymentStatus(s.GetContext(), inv.ID, nil, &paid))

	list, err := s.service.ListVendors(s.GetContext())
	s.Require().NoError(err)
	s.Require().Len(list, 2)

	byID := map[string]*dto.VendorResponse{}
	for _, item := range list {
		byID[item.ID] = item
	}

	s.True(byID[owed.ID].OutstandingPayable.Equal(decimal.NewFromInt(300)))
	s.True(byID[settled.ID].OutstandingPayable.IsZero())
}
