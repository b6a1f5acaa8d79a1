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

type CustomerServiceSuite struct {
	testutil.BaseServiceSuite
	service CustomerService
	invoice InvoiceService
}

func TestCustomerService(t *testing.T) {
	suite.Run(t, new(CustomerServiceSuite))
}

func (s *CustomerServiceSuite) SetupTest() {
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
	s.service = NewCustomerService(params)
	s.invoice = NewInvoiceService(params)
}

func (s *CustomerServiceSuite) TestCreateCustomer() {
	resp, err := s.service.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Name: "Gulf Traders LLC",
		Type: types.CustomerTypeCredit,
	})
	s.Require().NoError(err)

	s.NotEmpty(resp.ID)
	s.Equal(types.CustomerTypeCredit, resp.Type)
	s.Zero(resp.InvoiceCount)
	s.True(resp.TotalBilled.IsZero())
}

func (s *CustomerServiceSuite) TestCreateCustomerInvalidType() {
	_, err := s.service.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Name: "Gulf Traders LLC",
		Type: types.CustomerType("WALK_IN"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *CustomerServiceSuite) TestGetCustomerNotFound() {
	_, err := s.service.GetCustomer(s.GetContext(), "cust_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *CustomerServiceSuite) TestListCustomersWithActivity() {
	billed, err := s.service.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Name: "Gulf Traders LLC",
		Type: types.CustomerTypeCredit,
	})
	s.Require().NoError(err)
	idle, err := s.service.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Name: "Red Sea Imports",
		Type: types.CustomerTypeOneTime,
	})
	s.Require().NoError(err)

	req := dto.CreateInvoiceRequest{
		CustomerID:         billed.ID,
		DestinationCountry: "India",
		Items: []dto.CreateInvoiceLineItemRequest{
			{CommodityType: "Electronics", Quantity: 1, Price: decimal.NewFromInt(100)},
		},
	}
	first, err := s.invoice.CreateInvoice(s.GetContext(), req)
	s.Require().NoError(err)
	second, err := s.invoice.CreateInvoice(s.GetContext(), req)
	s.Require().NoError(err)

	list, err := s.service.ListCustomers(s.GetContext())
	s.Require().NoError(err)
	s.Require().Len(list, 2)

	byID := map[string]*dto.CustomerResponse{}
	for _, item := range list {
		byID[item.ID] = item
	}

	s.Equal(2, byID[billed.ID].InvoiceCount)
	s.True(byID[billed.ID].TotalBilled.Equal(first.TotalAmount.Add(second.TotalAmount)))
	s.Zero(byID[idle.ID].InvoiceCount)
	s.True(byID[idle.ID].TotalBilled.IsZero())
}
