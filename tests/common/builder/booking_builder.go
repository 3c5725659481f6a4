//go:build unit || e2e

package builder

import (
	"time"

	dombooking "facility-booking/internal/domain/booking"
	reqdto "facility-booking/internal/handler/dto/request"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"
)

type BookingBuilder struct {
	ID          int64
	Kind        dombooking.Kind
	ResourceID  int64
	UserID      int64
	Department  string
	BookingDate string
	StartTime   string
	Hours       float64
	Destination *string
	Status      dombooking.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:          1,
		Kind:        dombooking.KindRoom,
		ResourceID:  1,
		UserID:      1,
		Department:  "Operations",
		BookingDate: "2026-09-15",
		StartTime:   "09:00",
		Hours:       2,
		Status:      dombooking.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	date, err := dombooking.ParseDate(b.BookingDate)
	if err != nil {
		return nil, err
	}
	_, startSec, err := dombooking.ParseClock(b.StartTime)
	if err != nil {
		return nil, err
	}
	hours, err := dombooking.NewHours(b.Hours)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(
		b.Kind, b.ResourceID, b.UserID, b.Department,
		date, dombooking.NewInterval(startSec, hours), b.Destination,
	)
}

// BuildExisting reconstructs a persisted booking for conflict scans; parse
// failures panic because builder defaults are always well formed.
func (b *BookingBuilder) BuildExisting() *dombooking.Booking {
	date, err := dombooking.ParseDate(b.BookingDate)
	if err != nil {
		panic(err)
	}
	_, startSec, err := dombooking.ParseClock(b.StartTime)
	if err != nil {
		panic(err)
	}
	hours, err := dombooking.NewHours(b.Hours)
	if err != nil {
		panic(err)
	}
	return dombooking.ReconstructBooking(
		b.ID, b.Kind, b.ResourceID, b.UserID, b.Department,
		date, dombooking.NewInterval(startSec, hours), b.Destination,
		b.Status, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildReserveInput() commands.ReserveInput {
	return commands.ReserveInput{
		UserID:      b.UserID,
		ResourceID:  b.ResourceID,
		Department:  b.Department,
		BookingDate: b.BookingDate,
		StartTime:   b.StartTime,
		Hours:       b.Hours,
		Destination: b.Destination,
	}
}

func (b *BookingBuilder) BuildReserveRoomDTO() reqdto.ReserveRoomRequest {
	return reqdto.ReserveRoomRequest{
		UserID:         b.UserID,
		RoomID:         b.ResourceID,
		DepartmentName: b.Department,
		BookingDate:    b.BookingDate,
		StartTime:      b.StartTime,
		Hours:          b.Hours,
	}
}

func (b *BookingBuilder) BuildReserveVehicleDTO() reqdto.ReserveVehicleRequest {
	return reqdto.ReserveVehicleRequest{
		UserID:         b.UserID,
		VehicleID:      b.ResourceID,
		DepartmentName: b.Department,
		BookingDate:    b.BookingDate,
		StartTime:      b.StartTime,
		Hours:          b.Hours,
		Destination:    b.Destination,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	_, startSec, _ := dombooking.ParseClock(b.StartTime)
	iv := dombooking.NewInterval(startSec, int(b.Hours))
	return &queries.BookingListItem{
		BookingID:    b.ID,
		ResourceID:   b.ResourceID,
		ResourceName: "Conference Room A",
		UserName:     "Test User",
		Department:   b.Department,
		BookingDate:  b.BookingDate,
		StartTime:    dombooking.FormatClock(iv.StartSec),
		EndTime:      dombooking.FormatClock(iv.EndSec),
		Status:       string(b.Status),
		Destination:  b.Destination,
	}
}

// Fluent builder methods

func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithKind(kind dombooking.Kind) *BookingBuilder {
	b.Kind = kind
	return b
}

func (b *BookingBuilder) WithResourceID(id int64) *BookingBuilder {
	b.ResourceID = id
	return b
}

func (b *BookingBuilder) WithUserID(id int64) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithDepartment(department string) *BookingBuilder {
	b.Department = department
	return b
}

func (b *BookingBuilder) WithBookingDate(date string) *BookingBuilder {
	b.BookingDate = date
	return b
}

func (b *BookingBuilder) WithStartTime(startTime string) *BookingBuilder {
	b.StartTime = startTime
	return b
}

func (b *BookingBuilder) WithHours(hours float64) *BookingBuilder {
	b.Hours = hours
	return b
}

func (b *BookingBuilder) WithDestination(destination string) *BookingBuilder {
	b.Destination = &destination
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) AsVehicle() *BookingBuilder {
	destination := "Field office"
	b.Kind = dombooking.KindVehicle
	b.Destination = &destination
	return b
}
