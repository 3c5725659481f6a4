package response

import (
	"facility-booking/internal/usecase/commands"
)

type ReserveResponse struct {
	Message   string `json:"message"`
	BookingID int64  `json:"booking_id"`
	StartTime string `json:"start_time"`
	Status    string `json:"status"`
}

func FromReserveResult(message string, r *commands.ReserveResult) ReserveResponse {
	return ReserveResponse{
		Message:   message,
		BookingID: r.BookingID,
		StartTime: r.StartTime,
		Status:    string(r.Status),
	}
}

type UpdateStatusResponse struct {
	Message   string `json:"message"`
	BookingID int64  `json:"booking_id"`
	Status    string `json:"status"`
}
