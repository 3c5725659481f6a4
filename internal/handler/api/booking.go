package api

import (
	"errors"
	"log/slog"
	"net/http"

	"facility-booking/internal/domain/booking"
	reqdto "facility-booking/internal/handler/dto/request"
	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/handler/httperr"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Reserve a meeting room
// @Description Admit a room booking if the slot does not overlap an existing one
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.ReserveRoomRequest true "Room reservation request"
// @Success 201 {object} resdto.ReserveResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reserve_room [post]
func (h *BookingHandler) ReserveRoom(c *gin.Context) {
	var req reqdto.ReserveRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}
	h.reserve(c, booking.KindRoom, req.ToInput(), "room booked successfully")
}

// @Summary Reserve a vehicle
// @Description Admit a vehicle booking if the slot does not overlap an existing one
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.ReserveVehicleRequest true "Vehicle reservation request"
// @Success 201 {object} resdto.ReserveResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reserve_vehicle [post]
func (h *BookingHandler) ReserveVehicle(c *gin.Context) {
	var req reqdto.ReserveVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}
	h.reserve(c, booking.KindVehicle, req.ToInput(), "vehicle booked successfully")
}

func (h *BookingHandler) reserve(c *gin.Context, kind booking.Kind, input commands.ReserveInput, successMsg string) {
	result, err := h.bookingCommands.Reserve(c.Request.Context(), kind, input)
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReserveResult(successMsg, result))
}

// @Summary List room bookings
// @Tags bookings
// @Produce json
// @Success 200 {array} queries.BookingListItem
// @Failure 500 {object} httperr.Response
// @Router /reservations_room [get]
func (h *BookingHandler) ListRoomBookings(c *gin.Context) {
	h.list(c, booking.KindRoom)
}

// @Summary List vehicle bookings
// @Tags bookings
// @Produce json
// @Success 200 {array} queries.BookingListItem
// @Failure 500 {object} httperr.Response
// @Router /reservations_vehicle [get]
func (h *BookingHandler) ListVehicleBookings(c *gin.Context) {
	h.list(c, booking.KindVehicle)
}

func (h *BookingHandler) list(c *gin.Context, kind booking.Kind) {
	items, err := h.bookingQueries.ListByKind(c.Request.Context(), kind)
	if err != nil {
		slog.Error("Failed to list bookings", "kind", string(kind), "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	if items == nil {
		items = []*queries.BookingListItem{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Update room booking status
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateStatusRequest true "Status update"
// @Success 200 {object} resdto.UpdateStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /update_room_status [patch]
func (h *BookingHandler) UpdateRoomStatus(c *gin.Context) {
	h.updateStatus(c, booking.KindRoom)
}

// @Summary Update vehicle booking status
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateStatusRequest true "Status update"
// @Success 200 {object} resdto.UpdateStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /update_vehicle_status [patch]
func (h *BookingHandler) UpdateVehicleStatus(c *gin.Context) {
	h.updateStatus(c, booking.KindVehicle)
}

func (h *BookingHandler) updateStatus(c *gin.Context, kind booking.Kind) {
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	if err := h.bookingCommands.SetStatus(c.Request.Context(), kind, req.BookingID, req.Status); err != nil {
		abortBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.UpdateStatusResponse{
		Message:   "status updated successfully",
		BookingID: req.BookingID,
		Status:    req.Status,
	})
}

// Validation and referenced-entity failures surface their own message; infra
// failures are logged and replaced with a generic one.
func abortBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrResourceNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
	case errors.Is(err, errs.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "the requested time slot is already booked")
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "booking not found")
	default:
		slog.Error("Booking operation failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
