package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingDepartment  = errors.New("department name is required")
	ErrMissingDestination = errors.New("destination is required for vehicle bookings")
	ErrMissingRequester   = errors.New("requester is required")
	ErrMissingResource    = errors.New("resource is required")
)

type Booking struct {
	id          int64
	kind        Kind
	resourceID  int64
	userID      int64
	department  string
	date        time.Time
	interval    Interval
	destination *string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking builds a candidate booking with status Pending. The interval and
// its components are assumed to be parsed already; cross-field rules live here.
func NewBooking(
	kind Kind,
	resourceID int64,
	userID int64,
	department string,
	date time.Time,
	interval Interval,
	destination *string,
) (*Booking, error) {
	if userID <= 0 {
		return nil, ErrMissingRequester
	}
	if resourceID <= 0 {
		return nil, ErrMissingResource
	}
	department = strings.TrimSpace(department)
	if department == "" {
		return nil, ErrMissingDepartment
	}

	var dest *string
	if kind.RequiresDestination() {
		if destination == nil || strings.TrimSpace(*destination) == "" {
			return nil, ErrMissingDestination
		}
		trimmed := strings.TrimSpace(*destination)
		dest = &trimmed
	}

	return &Booking{
		kind:        kind,
		resourceID:  resourceID,
		userID:      userID,
		department:  department,
		date:        date,
		interval:    interval,
		destination: dest,
		status:      StatusPending,
	}, nil
}

func ReconstructBooking(
	id int64,
	kind Kind,
	resourceID, userID int64,
	department string,
	date time.Time,
	interval Interval,
	destination *string,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		kind:        kind,
		resourceID:  resourceID,
		userID:      userID,
		department:  department,
		date:        date,
		interval:    interval,
		destination: destination,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ConflictsWith reports whether the other booking claims the same slot key
// with an overlapping interval. Cancelled bookings free their slot.
func (b *Booking) ConflictsWith(other *Booking) bool {
	if other.status == StatusCancelled {
		return false
	}
	if b.kind != other.kind || b.resourceID != other.resourceID || !b.date.Equal(other.date) {
		return false
	}
	return b.interval.Overlaps(other.interval)
}

func (b *Booking) ID() int64            { return b.id }
func (b *Booking) Kind() Kind           { return b.kind }
func (b *Booking) ResourceID() int64    { return b.resourceID }
func (b *Booking) UserID() int64        { return b.userID }
func (b *Booking) Department() string   { return b.department }
func (b *Booking) Date() time.Time      { return b.date }
func (b *Booking) Interval() Interval   { return b.interval }
func (b *Booking) Destination() *string { return b.destination }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
