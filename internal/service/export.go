package service

import (
	"context"
	"time"

	"github.com/carryint/carryint/internal/api/dto"
	"github.com/carryint/carryint/internal/export"
)

type ExportService interface {
	// ExportWorkbook renders the financial report workbook on its own
	ExportWorkbook(ctx context.Context) (*dto.ExportResponse, error)

	// ExportArchive packages the JSON snapshot and the workbook into a
	// full backup archive
	ExportArchive(ctx context.Context) (*dto.ExportResponse, error)
}

type exportService struct {
	ServiceParams
}

// NewExportService creates a new instance of ExportService
func NewExportService(params ServiceParams) ExportService {
	return &exportService{ServiceParams: params}
}

func (s *exportService) ExportWorkbook(ctx context.Context) (*dto.ExportResponse, error) {
	ds, err := s.buildDataset(ctx)
	if err != nil {
		return nil, err
	}

	data, err := export.BuildWorkbook(ds)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	resp := &dto.ExportResponse{
		Filename: export.WorkbookFilename(now),
		Data:     data,
	}

	s.Logger.Infow("exported workbook",
		"filename", resp.Filename,
		"invoices", len(ds.Invoices),
		"bytes", len(data),
	)
	return resp, nil
}

func (s *exportService) ExportArchive(ctx context.Context) (*dto.ExportResponse, error) {
	ds, err := s.buildDataset(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	data, err := export.BuildArchive(ctx, ds, now)
	if err != nil {
		return nil, err
	}

	resp := &dto.ExportResponse{
		Filename: export.ArchiveFilename(now),
		Data:     data,
	}

	s.Logger.Infow("exported backup archive",
		"filename", resp.Filename,
		"invoices", len(ds.Invoices),
		"bytes", len(data),
	)
	return resp, nil
}

// buildDataset snapshots every collection for the packager. The company
// profile is optional; a missing profile falls back to the configured
// defaults so the backup is always self-contained.
func (s *exportService) buildDataset(ctx context.Context) (export.Dataset, error) {
	var ds export.Dataset

	invoices, err := s.InvoiceRepo.List(ctx)
	if err != nil {
		return ds, err
	}
	customers, err := s.CustomerRepo.List(ctx)
	if err != nil {
		return ds, err
	}
	vendors, err := s.VendorRepo.List(ctx)
	if err != nil {
		return ds, err
	}

	companySvc := NewCompanyService(s.ServiceParams)
	info, err := companySvc.GetCompanyInfo(ctx)
	if err != nil {
		return ds, err
	}

	ds = export.Dataset{
		Invoices:  invoices,
		Customers: customers,
		Vendors:   vendors,
		Company:   info,
	}
	return ds, nil
}
