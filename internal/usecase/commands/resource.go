package commands

import (
	"context"
	"io"
	"log/slog"
	"path"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type PhotoUpload struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

type CreateRoomInput struct {
	RoomName string
	Capacity int
	Photo    *PhotoUpload
	PhotoURL string
}

type CreateVehicleInput struct {
	VehicleName string
	PlateNo     string
	Seats       int
	Photo       *PhotoUpload
	PhotoURL    string
}

type ResourceCommands interface {
	CreateRoom(ctx context.Context, input CreateRoomInput) (*queries.RoomView, error)
	CreateVehicle(ctx context.Context, input CreateVehicleInput) (*queries.VehicleView, error)
	DeleteRoom(ctx context.Context, id int64) error
	DeleteVehicle(ctx context.Context, id int64) error
}

type resourceCommandsImpl struct {
	uow  UnitOfWork
	blob BlobStore
}

func NewResourceCommands(uow UnitOfWork, blob BlobStore) ResourceCommands {
	return &resourceCommandsImpl{
		uow:  uow,
		blob: blob,
	}
}

func (c *resourceCommandsImpl) CreateRoom(ctx context.Context, input CreateRoomInput) (*queries.RoomView, error) {
	room, err := resource.NewRoom(input.RoomName, input.Capacity, resource.NewPhotoRef(input.PhotoURL))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	photo, err := c.storePhoto(ctx, input.Photo, room.Photo())
	if err != nil {
		return nil, err
	}
	room = resource.ReconstructRoom(0, room.Name(), room.Capacity(), photo)

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		createdID, createErr := tx.Resources().CreateRoom(ctx, room)
		if createErr != nil {
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		id = createdID
		return nil
	})
	if err != nil {
		c.cleanupPhoto(ctx, input.Photo, photo)
		return nil, err
	}

	return &queries.RoomView{
		RoomID:   id,
		RoomName: room.Name(),
		Capacity: room.Capacity(),
		PhotoURL: c.photoURL(photo),
	}, nil
}

func (c *resourceCommandsImpl) CreateVehicle(ctx context.Context, input CreateVehicleInput) (*queries.VehicleView, error) {
	vehicle, err := resource.NewVehicle(input.VehicleName, input.PlateNo, input.Seats, resource.NewPhotoRef(input.PhotoURL))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	photo, err := c.storePhoto(ctx, input.Photo, vehicle.Photo())
	if err != nil {
		return nil, err
	}
	vehicle = resource.ReconstructVehicle(0, vehicle.Name(), vehicle.PlateNo(), vehicle.Seats(), photo)

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		createdID, createErr := tx.Resources().CreateVehicle(ctx, vehicle)
		if createErr != nil {
			return errs.Mark(createErr, errs.ErrDatabaseOperationFailed)
		}
		id = createdID
		return nil
	})
	if err != nil {
		c.cleanupPhoto(ctx, input.Photo, photo)
		return nil, err
	}

	return &queries.VehicleView{
		VehicleID:   id,
		VehicleName: vehicle.Name(),
		PlateNo:     vehicle.PlateNo(),
		Seats:       vehicle.Seats(),
		PhotoURL:    c.photoURL(photo),
	}, nil
}

func (c *resourceCommandsImpl) DeleteRoom(ctx context.Context, id int64) error {
	return c.deleteResource(ctx, booking.KindRoom, id)
}

func (c *resourceCommandsImpl) DeleteVehicle(ctx context.Context, id int64) error {
	return c.deleteResource(ctx, booking.KindVehicle, id)
}

// deleteResource removes the row and its bookings, then cleans up the photo
// blob when the reference is a stored key. External URLs are left alone, and
// a failed blob delete is logged, never fatal.
func (c *resourceCommandsImpl) deleteResource(ctx context.Context, kind booking.Kind, id int64) error {
	var photo resource.PhotoRef
	err := c.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		var deleteErr error
		switch kind {
		case booking.KindRoom:
			photo, deleteErr = tx.Resources().DeleteRoom(ctx, id)
		case booking.KindVehicle:
			photo, deleteErr = tx.Resources().DeleteVehicle(ctx, id)
		}
		if deleteErr != nil {
			if infra.IsKind(deleteErr, infra.KindNotFound) {
				return errs.ErrResourceNotFound
			}
			return errs.Mark(deleteErr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if photo.IsStoredKey() {
		if blobErr := c.blob.Delete(ctx, photo.Value()); blobErr != nil {
			slog.Warn("failed to delete resource photo blob",
				"kind", kind.String(), "resource_id", id, "key", photo.Value(), "error", blobErr.Error())
		}
	}
	return nil
}

// storePhoto uploads a new photo under a generated key. When no upload is
// present the provided reference (possibly an external URL) is kept as-is.
func (c *resourceCommandsImpl) storePhoto(ctx context.Context, upload *PhotoUpload, fallback resource.PhotoRef) (resource.PhotoRef, error) {
	if upload == nil {
		return fallback, nil
	}

	key := uuid.New().String() + path.Ext(upload.FileName)
	if err := c.blob.Store(ctx, key, upload.ContentType, upload.Body); err != nil {
		return resource.PhotoRef{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return resource.NewPhotoRef(key), nil
}

// cleanupPhoto undoes a fresh upload after a failed insert.
func (c *resourceCommandsImpl) cleanupPhoto(ctx context.Context, upload *PhotoUpload, photo resource.PhotoRef) {
	if upload == nil || !photo.IsStoredKey() {
		return
	}
	if err := c.blob.Delete(ctx, photo.Value()); err != nil {
		slog.Warn("failed to clean up photo blob after insert failure",
			"key", photo.Value(), "error", err.Error())
	}
}

func (c *resourceCommandsImpl) photoURL(photo resource.PhotoRef) *string {
	if photo.IsZero() {
		return nil
	}
	if !photo.IsStoredKey() {
		value := photo.Value()
		return &value
	}
	url := c.blob.PublicURL(photo.Value())
	return &url
}
