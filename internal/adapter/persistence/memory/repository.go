// Package memory holds the process-local entity stores used for tests, local
// runs and the default deployment. Nothing survives a restart.
package memory

import (
	"context"
	"fmt"
	"sync"

	"shiv_accounts/internal/domain/entities"
	"shiv_accounts/internal/usecase/interfaces"
)

// Repository is an ordered in-memory store. New records are prepended so
// List returns the newest first.
type Repository[T entities.Identifiable] struct {
	mu      sync.RWMutex
	records []T
}

var _ interfaces.IContactRepository = (*Repository[entities.Contact])(nil)
var _ interfaces.IPurchaseOrderRepository = (*Repository[entities.PurchaseOrder])(nil)

func NewRepository[T entities.Identifiable]() *Repository[T] {
	return &Repository[T]{}
}

func (r *Repository[T]) Create(_ context.Context, e T) (T, error) {
	var zero T
	id := e.Meta().ID
	if id == "" {
		return zero, fmt.Errorf("memory: create requires an id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(id) >= 0 {
		return zero, fmt.Errorf("memory: duplicate id %q", id)
	}
	r.records = append([]T{clone(e)}, r.records...)
	return clone(e), nil
}

func (r *Repository[T]) Update(_ context.Context, e T) (T, error) {
	var zero T
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(e.Meta().ID)
	if i < 0 {
		return zero, nil
	}
	r.records[i] = clone(e)
	return clone(e), nil
}

func (r *Repository[T]) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.records = append(r.records[:i:i], r.records[i+1:]...)
	return true, nil
}

func (r *Repository[T]) GetByID(_ context.Context, id string) (T, error) {
	var zero T
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return zero, nil
	}
	return clone(r.records[i]), nil
}

func (r *Repository[T]) List(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, len(r.records))
	for i, rec := range r.records {
		out[i] = clone(rec)
	}
	return out, nil
}

// Len reports the number of stored records.
func (r *Repository[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

func (r *Repository[T]) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, rec := range r.records {
		if rec.Meta().ID == id {
			return i
		}
	}
	return -1
}

func clone[T any](v T) T {
	if c, ok := any(v).(entities.Cloner[T]); ok {
		return c.Clone()
	}
	return v
}
