package queries

import (
	"context"

	"facility-booking/internal/domain/booking"
)

type BookingQueries interface {
	ListByKind(ctx context.Context, kind booking.Kind) ([]*BookingListItem, error)
}

type BookingReadStore interface {
	ListByKind(ctx context.Context, kind booking.Kind) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) ListByKind(ctx context.Context, kind booking.Kind) ([]*BookingListItem, error) {
	return q.store.ListByKind(ctx, kind)
}
