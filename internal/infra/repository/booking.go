package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/db"
	"facility-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeForeignKeyViolated = "23503"
	pgErrCodeExclusionViolation = "23P01"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

// AcquireSlotLock serializes admissions for one (kind, resource, date) key for
// the remainder of the surrounding transaction. Without it two concurrent
// requests can both pass the overlap scan before either inserts.
func (r *BookingRepository) AcquireSlotLock(ctx context.Context, kind booking.Kind, resourceID int64, date time.Time) error {
	key := fmt.Sprintf("%s:%d:%s", kind, resourceID, booking.FormatDate(date))
	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key); err != nil {
		return infra.WrapRepoErr("failed to acquire slot lock", err)
	}
	return nil
}

// FindForSlot returns the active bookings for a resource on a date. Cancelled
// bookings free their slot and are excluded. The linear scan is fine at this
// scale; callers only see the interface, so an indexed lookup can replace it.
func (r *BookingRepository) FindForSlot(ctx context.Context, kind booking.Kind, resourceID int64, date time.Time) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT booking_id, user_id, department, booking_date, start_sec, end_sec, destination, status, created_at, updated_at
		FROM bookings
		WHERE resource_kind = $1 AND resource_id = $2 AND booking_date = $3 AND status <> $4`,
		kind.String(), resourceID, pgconv.DateToPgtype(date), booking.StatusCancelled.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings for slot", err)
	}
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		var (
			id                 int64
			userID             int64
			department         string
			bookingDate        pgtype.Date
			startSec, endSec   int
			destination        pgtype.Text
			status             string
			createdAt, updated pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &userID, &department, &bookingDate, &startSec, &endSec, &destination, &status, &createdAt, &updated); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, booking.ReconstructBooking(
			id, kind, resourceID, userID, department,
			pgconv.DateFromPgtype(bookingDate),
			booking.Interval{StartSec: startSec, EndSec: endSec},
			pgconv.StringPtrFromPgtype(destination),
			booking.Status(status),
			pgconv.TimeFromPgtype(createdAt),
			pgconv.TimeFromPgtype(updated),
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}

// Create inserts the booking. The bookings_no_overlap exclusion constraint is
// the store-level backstop for the conflict check and surfaces as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking, now time.Time) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO bookings (resource_kind, resource_id, user_id, department, booking_date, start_sec, end_sec, destination, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING booking_id`,
		b.Kind().String(), b.ResourceID(), b.UserID(), b.Department(),
		pgconv.DateToPgtype(b.Date()), b.Interval().StartSec, b.Interval().EndSec,
		pgconv.StringPtrToPgtype(b.Destination()), b.Status().String(),
		pgconv.TimeToPgtype(now),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeExclusionViolation:
				return 0, infra.WrapRepoErr("booking overlaps an existing reservation", err, infra.KindConflict)
			case pgErrCodeForeignKeyViolated:
				return 0, infra.WrapRepoErr("booking references a missing row", err, infra.KindForeignKeyViolated)
			}
		}
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

// UpdateStatus overwrites the lifecycle status. Kind is part of the predicate
// so a room status endpoint cannot touch vehicle bookings. Reviving a
// Cancelled booking re-enters the exclusion constraint; if the slot has been
// rebooked in the meantime the update trips 23P01 and surfaces as KindConflict.
func (r *BookingRepository) UpdateStatus(ctx context.Context, kind booking.Kind, bookingID int64, status booking.Status, now time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings SET status = $1, updated_at = $2
		WHERE booking_id = $3 AND resource_kind = $4`,
		status.String(), pgconv.TimeToPgtype(now), bookingID, kind.String(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeExclusionViolation {
			return infra.WrapRepoErr("booking status change overlaps an existing reservation", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
