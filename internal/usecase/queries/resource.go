package queries

import (
	"context"
	"strings"

	"github.com/jinzhu/copier"
)

type ResourceQueries interface {
	ListRooms(ctx context.Context) ([]*RoomView, error)
	ListVehicles(ctx context.Context) ([]*VehicleView, error)
}

type ResourceReadStore interface {
	ListRooms(ctx context.Context) ([]*RoomRow, error)
	ListVehicles(ctx context.Context) ([]*VehicleRow, error)
}

// PhotoResolver turns a stored blob key into a public URL.
type PhotoResolver interface {
	PublicURL(key string) string
}

type resourceQueriesImpl struct {
	store    ResourceReadStore
	resolver PhotoResolver
}

func NewResourceQueries(store ResourceReadStore, resolver PhotoResolver) ResourceQueries {
	return &resourceQueriesImpl{store: store, resolver: resolver}
}

func (q *resourceQueriesImpl) ListRooms(ctx context.Context) ([]*RoomView, error) {
	rows, err := q.store.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*RoomView, len(rows))
	for i, row := range rows {
		view := &RoomView{}
		if err := copier.Copy(view, row); err != nil {
			return nil, err
		}
		view.PhotoURL = q.resolvePhoto(row.PhotoRef)
		result[i] = view
	}
	return result, nil
}

func (q *resourceQueriesImpl) ListVehicles(ctx context.Context) ([]*VehicleView, error) {
	rows, err := q.store.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*VehicleView, len(rows))
	for i, row := range rows {
		view := &VehicleView{}
		if err := copier.Copy(view, row); err != nil {
			return nil, err
		}
		view.PhotoURL = q.resolvePhoto(row.PhotoRef)
		result[i] = view
	}
	return result, nil
}

// Absolute URLs pass through untouched; stored keys resolve against the blob
// store's public base.
func (q *resourceQueriesImpl) resolvePhoto(ref string) *string {
	if ref == "" {
		return nil
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return &ref
	}
	url := q.resolver.PublicURL(ref)
	return &url
}
