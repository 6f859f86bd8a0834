package api

import (
	"context"
	"fmt"
)

// Resource is the generic CRUD service: five operations against one base
// path, each a single round trip whose unwrapped body (or error) goes
// straight back to the caller. T is the read shape, P the partial write
// shape. No caching, no retries, no client-side ordering.
type Resource[T any, P any] struct {
	rt       *Transport
	basePath string
}

func NewResource[T any, P any](rt *Transport, basePath string) *Resource[T, P] {
	return &Resource[T, P]{rt: rt, basePath: basePath}
}

// List returns all records in server-defined order.
func (r *Resource[T, P]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.rt.getJSON(ctx, r.basePath, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches one record by numeric id; a missing record surfaces as
// ErrNotFound from the server.
func (r *Resource[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	var item T
	if err := r.rt.getJSON(ctx, fmt.Sprintf("%s/%d", r.basePath, id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create submits a partial record; the server assigns id and timestamps.
func (r *Resource[T, P]) Create(ctx context.Context, patch P) (*T, error) {
	var item T
	if err := r.rt.postJSON(ctx, r.basePath, patch, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies a partial record: only fields present in the payload
// change, which is enforced server-side.
func (r *Resource[T, P]) Update(ctx context.Context, id int64, patch P) (*T, error) {
	var item T
	if err := r.rt.putJSON(ctx, fmt.Sprintf("%s/%d", r.basePath, id), patch, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a record. Repeating a delete is server policy, not a
// client guarantee.
func (r *Resource[T, P]) Delete(ctx context.Context, id int64) error {
	return r.rt.deleteReq(ctx, fmt.Sprintf("%s/%d", r.basePath, id))
}
