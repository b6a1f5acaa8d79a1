package repository

import (
	"context"
	"sync"

	"github.com/carryint/carryint/internal/domain/vendor"
	ierr "github.com/carryint/carryint/internal/errors"
	"github.com/carryint/carryint/internal/kv"
)

type vendorRepository struct {
	store kv.Store
	mu    sync.Mutex
}

// NewVendorRepository creates a vendor repository over the blob store
func NewVendorRepository(store kv.Store) vendor.Repository {
	return &vendorRepository{store: store}
}

func (r *vendorRepository) Create(ctx context.Context, v *vendor.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, existing := range items {
		if existing.ID == v.ID {
			return ierr.NewError("vendor already exists").
				WithHintf("Vendor %s already exists", v.ID).
				Mark(ierr.ErrAlreadyExists)
		}
	}

	items = append(items, v)
	return r.store.Set(ctx, KeyVendors, items)
}

func (r *vendorRepository) Get(ctx context.Context, id string) (*vendor.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range items {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, ierr.NewError("vendor not found").
		WithHintf("Vendor %s does not exist", id).
		Mark(ierr.ErrNotFound)
}

func (r *vendorRepository) List(ctx context.Context) ([]*vendor.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *vendorRepository) Update(ctx context.Context, v *vendor.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, existing := range items {
		if existing.ID == v.ID {
			items[i] = v
			return r.store.Set(ctx, KeyVendors, items)
		}
	}
	return ierr.NewError("vendor not found").
		WithHintf("Vendor %s does not exist", v.ID).
		Mark(ierr.ErrNotFound)
}

func (r *vendorRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, existing := range items {
		if existing.ID == id {
			items = append(items[:i], items[i+1:]...)
			return r.store.Set(ctx, KeyVendors, items)
		}
	}
	return ierr.NewError("vendor not found").
		WithHintf("Vendor %s does not exist", id).
		Mark(ierr.ErrNotFound)
}

func (r *vendorRepository) load(ctx context.Context) ([]*vendor.Vendor, error) {
	var items []*vendor.Vendor
	if err := r.store.Get(ctx, KeyVendors, &items); err != nil {
		if ierr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return items, nil
}
