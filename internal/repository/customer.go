package repository

import (
	"context"
	"sync"

	"github.com/carryint/carryint/internal/domain/customer"
	ierr "github.com/carryint/carryint/internal/errors"
	"github.com/carryint/carryint/internal/kv"
)

type customerRepository struct {
	store kv.Store
	mu    sync.Mutex
}

// NewCustomerRepository creates a customer repository over the blob store
func NewCustomerRepository(store kv.Store) customer.Repository {
	return &customerRepository{store: store}
}

func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, existing := range items {
		if existing.ID == c.ID {
			return ierr.NewError("customer already exists").
				WithHintf("Customer %s already exists", c.ID).
				Mark(ierr.ErrAlreadyExists)
		}
	}

	items = append(items, c)
	return r.store.Set(ctx, KeyCustomers, items)
}

func (r *customerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ierr.NewError("customer not found").
		WithHintf("Customer %s does not exist", id).
		Mark(ierr.ErrNotFound)
}

func (r *customerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *customerRepository) Update(ctx context.Context, c *customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, existing := range items {
		if existing.ID == c.ID {
			items[i] = c
			return r.store.Set(ctx, KeyCustomers, items)
		}
	}
	return ierr.NewError("customer not found").
		WithHintf("Customer %s does not exist", c.ID).
		Mark(ierr.ErrNotFound)
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, existing := range items {
		if existing.ID == id {
			items = append(items[:i], items[i+1:]...)
			return r.store.Set(ctx, KeyCustomers, items)
		}
	}
	return ierr.NewError("customer not found").
		WithHintf("Customer %s does not exist", id).
		Mark(ierr.ErrNotFound)
}

func (r *customerRepository) load(ctx context.Context) ([]*customer.Customer, error) {
	var items []*customer.Customer
	if err := r.store.Get(ctx, KeyCustomers, &items); err != nil {
		if ierr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return items, nil
}
