package readstore

import (
	"context"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/db"
	"facility-booking/internal/pkg/pgconv"
	"facility-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const roomBookingsSQL = `
	SELECT b.booking_id, b.resource_id, r.room_name, u.full_name, b.department,
	       b.booking_date, b.start_sec, b.end_sec, b.status, b.destination
	FROM bookings b
	JOIN rooms r ON r.room_id = b.resource_id
	JOIN users u ON u.user_id = b.user_id
	WHERE b.resource_kind = 'room'
	ORDER BY b.booking_date DESC, b.start_sec`

const vehicleBookingsSQL = `
	SELECT b.booking_id, b.resource_id, v.vehicle_name, u.full_name, b.department,
	       b.booking_date, b.start_sec, b.end_sec, b.status, b.destination
	FROM bookings b
	JOIN vehicles v ON v.vehicle_id = b.resource_id
	JOIN users u ON u.user_id = b.user_id
	WHERE b.resource_kind = 'vehicle'
	ORDER BY b.booking_date DESC, b.start_sec`

func (s *BookingReadStore) ListByKind(ctx context.Context, kind booking.Kind) ([]*queries.BookingListItem, error) {
	query := roomBookingsSQL
	if kind == booking.KindVehicle {
		query = vehicleBookingsSQL
	}

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var (
			item             queries.BookingListItem
			date             pgtype.Date
			startSec, endSec int
			destination      pgtype.Text
		)
		if err := rows.Scan(
			&item.BookingID, &item.ResourceID, &item.ResourceName, &item.UserName,
			&item.Department, &date, &startSec, &endSec, &item.Status, &destination,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.BookingDate = booking.FormatDate(pgconv.DateFromPgtype(date))
		item.StartTime = booking.FormatClock(startSec)
		item.EndTime = booking.FormatClock(endSec)
		item.Destination = pgconv.StringPtrFromPgtype(destination)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}
