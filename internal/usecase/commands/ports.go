package commands

import (
	"context"
	"io"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/domain/user"
)

// Write-side ports. Implementations live under internal/infra; the interfaces
// stay here so the command layer owns its contracts.

type BookingRepository interface {
	// AcquireSlotLock must serialize concurrent admissions for the same
	// (kind, resource, date) key until the enclosing transaction ends.
	AcquireSlotLock(ctx context.Context, kind booking.Kind, resourceID int64, date time.Time) error
	FindForSlot(ctx context.Context, kind booking.Kind, resourceID int64, date time.Time) ([]*booking.Booking, error)
	Create(ctx context.Context, b *booking.Booking, now time.Time) (int64, error)
	UpdateStatus(ctx context.Context, kind booking.Kind, bookingID int64, status booking.Status, now time.Time) error
}

type ResourceRepository interface {
	Exists(ctx context.Context, kind booking.Kind, id int64) (bool, error)
	CreateRoom(ctx context.Context, room *resource.Room) (int64, error)
	CreateVehicle(ctx context.Context, vehicle *resource.Vehicle) (int64, error)
	DeleteRoom(ctx context.Context, id int64) (resource.PhotoRef, error)
	DeleteVehicle(ctx context.Context, id int64) (resource.PhotoRef, error)
}

type UserRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, fullName, email, passwordHash string, role user.Role) (int64, error)
	FindByEmail(ctx context.Context, email string) (*UserAccount, error)
}

type UserAccount struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string
	Role         user.Role
}

// BlobStore holds resource photos. Delete is best-effort cleanup; callers log
// failures and move on.
type BlobStore interface {
	Store(ctx context.Context, key, contentType string, body io.Reader) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// UnitOfWork runs fn inside one transaction; repositories obtained from Tx are
// bound to it.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Resources() ResourceRepository
	Users() UserRepository
}
