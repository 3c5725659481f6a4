package response

import "facility-booking/internal/usecase/queries"

type CreateRoomResponse struct {
	Message string            `json:"message"`
	Room    *queries.RoomView `json:"room"`
}

type CreateVehicleResponse struct {
	Message string               `json:"message"`
	Vehicle *queries.VehicleView `json:"vehicle"`
}

type DeleteResourceResponse struct {
	Message string `json:"message"`
}
