package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/carryint/carryint/internal/api/dto"
	ierr "github.com/carryint/carryint/internal/errors"
	"github.com/carryint/carryint/internal/testutil"
	"github.com/carryint/carryint/internal/types"
)

type InvoiceServiceSuite struct {
	testutil.BaseServiceSuite
	service  InvoiceService
	customer CustomerService
	vendor   VendorService
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.BaseServiceSuite.SetupTest()
	params := s.serviceParams()
	s.service = NewInvoiceService(params)
	s.customer = NewCustomerService(params)
	s.vendor = NewVendorService(params)
}

func (s *InvoiceServiceSuite) serviceParams() ServiceParams {
	repos := s.GetRepositories()
	return ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		CustomerRepo: repos.Customer,
		VendorRepo:   repos.Vendor,
		InvoiceRepo:  repos.Invoice,
		CompanyRepo:  repos.Company,
	}
}

func (s *InvoiceServiceSuite) createCustomer(custType types.CustomerType) *dto.CustomerResponse {
	resp, err := s.customer.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Name:      "Gulf Traders LLC",
		Address:   "Deira, Dubai",
		Contact:   "+971 500000001",
		VATNumber: "100000000000001",
		Type:      custType,
	})
	s.Require().NoError(err)
	return resp
}

func (s *InvoiceServiceSuite) createVendor() *dto.VendorResponse {
	resp, err := s.vendor.CreateVendor(s.GetContext(), dto.CreateVendorRequest{
		Name:    "Emirates Cargo",
		Contact: "+971 500000002",
	})
	s.Require().NoError(err)
	return resp
}

func (s *InvoiceServiceSuite) TestCreateInvoiceComputesTotals() {
	cust := s.createCustomer(types.CustomerTypeCredit)

	resp, err := s.service.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID:         cust.ID,
		DestinationCountry: "India",
		Items: []dto.CreateInvoiceLineItemRequest{
			{CommodityType: "Electronics", Quantity: 2, Price: decimal.NewFromInt(100)},
		},
		VendorCost: decimal.NewFromInt(150),
	})
	s.Require().NoError(err)

	s.True(resp.NetAmount.Equal(decimal.NewFromInt(200)))
	s.True(resp.TotalVAT.Equal(decimal.NewFromInt(10)))
	s.True(resp.TotalAmount.Equal(decimal.NewFromInt(210)))
	s.True(resp.Profit.Equal(decimal.NewFromInt(60)))
	s.NotEmpty(resp.ID)
	s.Regexp(`^INV-`, resp.InvoiceNumber)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceSnapshotsCustomer() {
	cust := s.createCustomer(types.CustomerTypeCredit)

	resp, err := s.service.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID:         cust.ID,
		DestinationCountry: "Kenya",
		Items: []dto.CreateInvoiceLineItemRequest{
			{CommodityType: "Textiles", Quantity: 1, Price: decimal.NewFromInt(500)},
		},
	})
	s.Require().NoError(err)

	s.Equal(cust.Name, resp.CustomerName)
	s.Equal(cust.Address, resp.CustomerAddress)
	s.Equal(cust.VATNumber, resp.CustomerVAT)
	s.Equal(s.GetConfig().Company.TRN, resp.CompanyTRN)
}

func (s *InvoiceServiceSuite) TestCreateInvoicePaymentStatusDefaults() {
	oneTime := s.createCustomer(types.CustomerTypeOneTime)
	credit := s.createCustomer(types.CustomerTypeCredit)

	req := dto.CreateInvoiceRequest{
		DestinationCountry: "Oman",
		Items: []dto.CreateInvoiceLineItemRequest{
			{CommodityType: "Documents", Quantity: 1, Price: decimal.NewFromInt(50)},
		},
	}

	req.CustomerID = oneTime.ID
	paid, err := s.service.CreateInvoice(s.GetContext(), req)
	s.Require().NoError(err)
	s.Equal(types.PaymentStatusPaid, paid.PaymentStatus)

	req.CustomerID = credit.ID
	unpaid, err := s.service.CreateInvoice(s.GetContext(), req)
	s.Require().NoError(err)
	s.Equal(types.PaymentStatusUnpaid, unpaid.PaymentStatus)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceWithVendor() {
	cust := s.createCustomer(types.CustomerTypeCredit)
	vend := s.createVendor()

	resp, err := s.service.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID:         cust.ID,
		DestinationCountry: "India",
		Items: []dto.CreateInvoiceLineItemRequest{
			{CommodityType: "Spare Parts", Quantity: 1, Price: decimal.NewFromInt(300)},
		},
		VendorID:   vend.ID,
		VendorCost: decimal.NewFromInt(120),
	})
	s.Require().NoError(err)

	s.Equal(vend.ID, resp.VendorID)
	s.Equal(vend.Name, resp.VendorName)
	s.Equal(types.PaymentStatusUnpaid, resp.VendorPaymentStatus)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceUnknownCustomer() {
	_, err := s.service.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID:         "cust_missing",
		DestinationCountry: "India",
		Items: []dto.CreateInvoiceLineItemRequest{
			{CommodityType: "Electronics", Quantity: 1, Price: decimal.NewFromInt(10)},
		},
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *InvoiceServiceSuite) TestCreateInvoiceRequiresItems() {
	cust := s.createCustomer(types.CustomerTypeCredit)

	_, err := s.service.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID:         cust.ID,
		DestinationCountry: "India",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InvoiceServiceSuite) TestUpdatePaymentStatus() {
	cust := s.createCustomer(types.CustomerTypeCredit)

	created, err := s.service.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID:         cust.ID,
		DestinationCountry: "India",
		Items: []dto.CreateInvoiceLineItemRequest{
			{CommodityType: "Electronics", Quantity: 1, Price: decimal.NewFromInt(100)},
		},
	})
	s.Require().NoError(err)

	paid := types.PaymentStatusPaid
	err = s.service.UpdatePaymentStatus(s.GetContext(), created.ID, &paid, nil)
	s.Require().NoError(err)

	got, err := s.service.GetInvoice(s.GetContext(), created.ID)
	s.Require().NoError(err)
	s.Equal(types.PaymentStatusPaid, got.PaymentStatus)

	// the untouched vendor side keeps its value
	s.Equal(created.VendorPaymentStatus, got.VendorPaymentStatus)
}

func (s *InvoiceServiceSuite) TestUpdatePaymentStatusRequiresAStatus() {
	err := s.service.UpdatePaymentStatus(s.GetContext(), "inv_x", nil, nil)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InvoiceServiceSuite) TestListInvoicesNewestFirst() {
	cust := s.createCustomer(types.CustomerTypeCredit)

	req := dto.CreateInvoiceRequest{
		CustomerID:         cust.ID,
		DestinationCountry: "India",
		Items: []dto.CreateInvoiceLineItemRequest{
			{CommodityType: "Electronics", Quantity: 1, Price: decimal.NewFromInt(10)},
		},
	}
	first, err := s.service.CreateInvoice(s.GetContext(), req)
	s.Require().NoError(err)
	second, err := s.service.CreateInvoice(s.GetContext(), req)
	s.Require().NoError(err)

	list, err := s.service.ListInvoices(s.GetContext())
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.False(list[0].Date.Before(list[1].Date))

	ids := []string{list[0].ID, list[1].ID}
	s.ElementsMatch(ids, []string{first.ID, second.ID})
}
