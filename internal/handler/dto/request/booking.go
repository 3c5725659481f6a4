package request

import (
	"strings"

	"facility-booking/internal/usecase/commands"
)

type ReserveRoomRequest struct {
	UserID         int64   `json:"user_id"`
	RoomID         int64   `json:"room_id"`
	DepartmentName string  `json:"department_name"`
	BookingDate    string  `json:"booking_date"`
	StartTime      string  `json:"start_time"`
	Hours          float64 `json:"hours"`
}

func (r ReserveRoomRequest) ToInput() commands.ReserveInput {
	return commands.ReserveInput{
		UserID:      r.UserID,
		ResourceID:  r.RoomID,
		Department:  strings.TrimSpace(r.DepartmentName),
		BookingDate: strings.TrimSpace(r.BookingDate),
		StartTime:   strings.TrimSpace(r.StartTime),
		Hours:       r.Hours,
	}
}

type ReserveVehicleRequest struct {
	UserID         int64   `json:"user_id"`
	VehicleID      int64   `json:"vehicle_id"`
	DepartmentName string  `json:"department_name"`
	BookingDate    string  `json:"booking_date"`
	StartTime      string  `json:"start_time"`
	Hours          float64 `json:"hours"`
	Destination    *string `json:"destination,omitempty"`
}

func (r ReserveVehicleRequest) ToInput() commands.ReserveInput {
	var destination *string
	if r.Destination != nil {
		trimmed := strings.TrimSpace(*r.Destination)
		if trimmed != "" {
			destination = &trimmed
		}
	}
	return commands.ReserveInput{
		UserID:      r.UserID,
		ResourceID:  r.VehicleID,
		Department:  strings.TrimSpace(r.DepartmentName),
		BookingDate: strings.TrimSpace(r.BookingDate),
		StartTime:   strings.TrimSpace(r.StartTime),
		Hours:       r.Hours,
		Destination: destination,
	}
}

type UpdateStatusRequest struct {
	BookingID int64  `json:"booking_id" binding:"required"`
	Status    string `json:"status" binding:"required"`
}
