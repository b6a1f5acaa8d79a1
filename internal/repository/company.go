package repository

import (
	"context"
	"sync"

	"github.com/carryint/carryint/internal/domain/company"
	ierr "github.com/carryint/carryint/internal/errors"
	"github.com/carryint/carryint/internal/kv"
)

type companyRepository struct {
	store kv.Store
	mu    sync.Mutex
}

// NewCompanyRepository creates a company profile repository over the blob store
func NewCompanyRepository(store kv.Store) company.Repository {
	return &companyRepository{store: store}
}

func (r *companyRepository) Get(ctx context.Context) (*company.Info, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var info company.Info
	if err := r.store.Get(ctx, KeyCompanyInfo, &info); err != nil {
		if ierr.IsNotFound(err) {
			return nil, ierr.NewError("company profile not set").
				WithHint("Seed the dataset or save the company profile first").
				Mark(ierr.ErrNotFound)
		}
		return nil, err
	}
	return &info, nil
}

func (r *companyRepository) Set(ctx context.Context, info *company.Info) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Set(ctx, KeyCompanyInfo, info)
}
