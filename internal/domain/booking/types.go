package booking

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid status")
	ErrInvalidKind   = errors.New("invalid resource kind")
)

// Status lifecycle: created as Pending, moved to Approved or Cancelled by an
// explicit lifecycle action. No transition graph is enforced; any state may be
// overwritten by any other.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusCancelled Status = "Cancelled"
)

func NewStatus(value string) (Status, error) {
	s := Status(value)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCancelled:
		return true
	default:
		return false
	}
}

// Kind identifies the bookable resource pool.
type Kind string

const (
	KindRoom    Kind = "room"
	KindVehicle Kind = "vehicle"
)

func NewKind(value string) (Kind, error) {
	k := Kind(value)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindRoom, KindVehicle:
		return true
	default:
		return false
	}
}

// RequiresDestination reports whether bookings of this kind must carry a destination.
func (k Kind) RequiresDestination() bool {
	return k == KindVehicle
}
