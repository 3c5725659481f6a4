package api

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/handler/httperr"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	resourceCommands commands.ResourceCommands
	resourceQueries  queries.ResourceQueries
}

func NewResourceHandler(resourceCommands commands.ResourceCommands, resourceQueries queries.ResourceQueries) *ResourceHandler {
	return &ResourceHandler{
		resourceCommands: resourceCommands,
		resourceQueries:  resourceQueries,
	}
}

// @Summary List meeting rooms
// @Tags resources
// @Produce json
// @Success 200 {array} queries.RoomView
// @Failure 500 {object} httperr.Response
// @Router /rooms [get]
func (h *ResourceHandler) ListRooms(c *gin.Context) {
	rooms, err := h.resourceQueries.ListRooms(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list rooms", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	if rooms == nil {
		rooms = []*queries.RoomView{}
	}
	c.JSON(http.StatusOK, rooms)
}

// @Summary List vehicles
// @Tags resources
// @Produce json
// @Success 200 {array} queries.VehicleView
// @Failure 500 {object} httperr.Response
// @Router /vehicles [get]
func (h *ResourceHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.resourceQueries.ListVehicles(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list vehicles", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	if vehicles == nil {
		vehicles = []*queries.VehicleView{}
	}
	c.JSON(http.StatusOK, vehicles)
}

// @Summary Create a meeting room
// @Description Multipart form: room_name, capacity, optional photo file or photo_url
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.CreateRoomResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms [post]
func (h *ResourceHandler) CreateRoom(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("room_name"))
	if name == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("room_name is required"), "room_name is required")
		return
	}
	capacity, err := strconv.Atoi(strings.TrimSpace(c.PostForm("capacity")))
	if err != nil || capacity <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("capacity must be a positive integer"), "capacity must be a positive integer")
		return
	}

	photo, file, pErr := formPhoto(c)
	if pErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, pErr, "invalid photo upload")
		return
	}
	if file != nil {
		defer file.Close()
	}

	view, err := h.resourceCommands.CreateRoom(c.Request.Context(), commands.CreateRoomInput{
		RoomName: name,
		Capacity: capacity,
		Photo:    photo,
		PhotoURL: strings.TrimSpace(c.PostForm("photo_url")),
	})
	if err != nil {
		abortResourceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateRoomResponse{Message: "room created successfully", Room: view})
}

// @Summary Create a vehicle
// @Description Multipart form: vehicle_name, plate_no, seats, optional photo file or photo_url
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.CreateVehicleResponse
// @Failure 400 {object} httperr.Response
// @Router /vehicles [post]
func (h *ResourceHandler) CreateVehicle(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("vehicle_name"))
	if name == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("vehicle_name is required"), "vehicle_name is required")
		return
	}
	plateNo := strings.TrimSpace(c.PostForm("plate_no"))
	if plateNo == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("plate_no is required"), "plate_no is required")
		return
	}
	seats, err := strconv.Atoi(strings.TrimSpace(c.PostForm("seats")))
	if err != nil || seats <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("seats must be a positive integer"), "seats must be a positive integer")
		return
	}

	photo, file, pErr := formPhoto(c)
	if pErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, pErr, "invalid photo upload")
		return
	}
	if file != nil {
		defer file.Close()
	}

	view, err := h.resourceCommands.CreateVehicle(c.Request.Context(), commands.CreateVehicleInput{
		VehicleName: name,
		PlateNo:     plateNo,
		Seats:       seats,
		Photo:       photo,
		PhotoURL:    strings.TrimSpace(c.PostForm("photo_url")),
	})
	if err != nil {
		abortResourceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateVehicleResponse{Message: "vehicle created successfully", Vehicle: view})
}

// @Summary Delete a meeting room and its bookings
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DeleteResourceResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [delete]
func (h *ResourceHandler) DeleteRoom(c *gin.Context) {
	id, err := resourceID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid resource id")
		return
	}
	if err := h.resourceCommands.DeleteRoom(c.Request.Context(), id); err != nil {
		abortResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DeleteResourceResponse{Message: "room deleted successfully"})
}

// @Summary Delete a vehicle and its bookings
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DeleteResourceResponse
// @Failure 404 {object} httperr.Response
// @Router /vehicles/{id} [delete]
func (h *ResourceHandler) DeleteVehicle(c *gin.Context) {
	id, err := resourceID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid resource id")
		return
	}
	if err := h.resourceCommands.DeleteVehicle(c.Request.Context(), id); err != nil {
		abortResourceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DeleteResourceResponse{Message: "vehicle deleted successfully"})
}

func resourceID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.New("id must be a positive integer")
	}
	return id, nil
}

// formPhoto returns the uploaded photo, if any. A missing file is not an
// error; the caller may supply photo_url instead.
func formPhoto(c *gin.Context) (*commands.PhotoUpload, multipart.File, error) {
	header, err := c.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}

	return &commands.PhotoUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	}, file, nil
}

func abortResourceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
	case errors.Is(err, errs.ErrResourceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "resource not found")
	default:
		slog.Error("Resource operation failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
