package commands

import (
	"context"
	"strings"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
)

type ReserveInput struct {
	UserID      int64
	ResourceID  int64
	Department  string
	BookingDate string
	StartTime   string
	Hours       float64
	Destination *string
}

type ReserveResult struct {
	BookingID int64
	StartTime string // normalized to second precision
	Status    booking.Status
}

// BookingCommands is the reservation engine, generic over the resource kind.
// Rooms and vehicles share one admission and one lifecycle path.
type BookingCommands interface {
	Reserve(ctx context.Context, kind booking.Kind, input ReserveInput) (*ReserveResult, error)
	SetStatus(ctx context.Context, kind booking.Kind, bookingID int64, status string) error
}

type bookingCommandsImpl struct {
	uow   UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow UnitOfWork, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

// Reserve admits a booking or fails with no side effects. Checks run in a
// fixed order: field presence, hours, date/time syntax, requester existence,
// resource existence, overlap. The existence and overlap checks share one
// transaction with the insert, serialized per (kind, resource, date) by an
// advisory lock so concurrent admissions cannot both pass the overlap scan.
func (c *bookingCommandsImpl) Reserve(ctx context.Context, kind booking.Kind, input ReserveInput) (*ReserveResult, error) {
	candidate, err := c.buildCandidate(kind, input)
	if err != nil {
		return nil, err
	}

	var bookingID int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		if lockErr := tx.Bookings().AcquireSlotLock(ctx, kind, candidate.ResourceID(), candidate.Date()); lockErr != nil {
			return errs.Mark(lockErr, errs.ErrDatabaseOperationFailed)
		}

		userExists, existsErr := tx.Users().Exists(ctx, candidate.UserID())
		if existsErr != nil {
			return errs.Mark(existsErr, errs.ErrDatabaseOperationFailed)
		}
		if !userExists {
			return errs.ErrUserNotFound
		}

		resourceExists, existsErr := tx.Resources().Exists(ctx, kind, candidate.ResourceID())
		if existsErr != nil {
			return errs.Mark(existsErr, errs.ErrDatabaseOperationFailed)
		}
		if !resourceExists {
			return errs.ErrResourceNotFound
		}

		existing, findErr := tx.Bookings().FindForSlot(ctx, kind, candidate.ResourceID(), candidate.Date())
		if findErr != nil {
			return errs.Mark(findErr, errs.ErrDatabaseOperationFailed)
		}
		for _, other := range existing {
			if candidate.ConflictsWith(other) {
				return errs.ErrBookingConflict
			}
		}

		id, createErr := tx.Bookings().Create(ctx, candidate, c.clock.Now())
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindConflict) {
				return errs.ErrBookingConflict
			}
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ReserveResult{
		BookingID: bookingID,
		StartTime: candidate.Interval().StartClock(),
		Status:    candidate.Status(),
	}, nil
}

// SetStatus overwrites the lifecycle status. Unknown statuses and missing
// bookings are caller errors; no transition graph is enforced, any status may
// overwrite any other.
func (c *bookingCommandsImpl) SetStatus(ctx context.Context, kind booking.Kind, bookingID int64, status string) error {
	if bookingID <= 0 {
		return errs.Mark(errs.New("booking_id is required"), errs.ErrValidation)
	}
	parsed, err := booking.NewStatus(status)
	if err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		updateErr := tx.Bookings().UpdateStatus(ctx, kind, bookingID, parsed, c.clock.Now())
		if updateErr != nil {
			if infra.IsKind(updateErr, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			if infra.IsKind(updateErr, infra.KindConflict) {
				return errs.ErrBookingConflict
			}
			return errs.Mark(updateErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// buildCandidate runs the pure validation steps in a fixed order so each failure
// reports its own distinct error.
func (c *bookingCommandsImpl) buildCandidate(kind booking.Kind, input ReserveInput) (*booking.Booking, error) {
	if input.UserID <= 0 {
		return nil, errs.Mark(booking.ErrMissingRequester, errs.ErrValidation)
	}
	if input.ResourceID <= 0 {
		return nil, errs.Mark(booking.ErrMissingResource, errs.ErrValidation)
	}
	if strings.TrimSpace(input.Department) == "" {
		return nil, errs.Mark(booking.ErrMissingDepartment, errs.ErrValidation)
	}
	if input.BookingDate == "" {
		return nil, errs.Mark(booking.ErrInvalidDate, errs.ErrValidation)
	}
	if input.StartTime == "" {
		return nil, errs.Mark(booking.ErrInvalidClock, errs.ErrValidation)
	}
	if kind.RequiresDestination() && (input.Destination == nil || strings.TrimSpace(*input.Destination) == "") {
		return nil, errs.Mark(booking.ErrMissingDestination, errs.ErrValidation)
	}

	hours, err := booking.NewHours(input.Hours)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	date, err := booking.ParseDate(input.BookingDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	_, startSec, err := booking.ParseClock(input.StartTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	candidate, err := booking.NewBooking(
		kind, input.ResourceID, input.UserID, input.Department,
		date, booking.NewInterval(startSec, hours), input.Destination,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	return candidate, nil
}
