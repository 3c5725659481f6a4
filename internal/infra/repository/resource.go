package repository

import (
	"context"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/infra"
	"facility-booking/internal/infra/db"
	"facility-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type ResourceRepository struct {
	db db.DBTX
}

func NewResourceRepository(dbtx db.DBTX) *ResourceRepository {
	return &ResourceRepository{db: dbtx}
}

func (r *ResourceRepository) Exists(ctx context.Context, kind booking.Kind, id int64) (bool, error) {
	var query string
	switch kind {
	case booking.KindRoom:
		query = `SELECT EXISTS (SELECT 1 FROM rooms WHERE room_id = $1)`
	case booking.KindVehicle:
		query = `SELECT EXISTS (SELECT 1 FROM vehicles WHERE vehicle_id = $1)`
	default:
		return false, infra.WrapRepoErr("unknown resource kind", nil)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check resource existence", err)
	}
	return exists, nil
}

func (r *ResourceRepository) CreateRoom(ctx context.Context, room *resource.Room) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO rooms (room_name, capacity, photo_url)
		VALUES ($1, $2, $3)
		RETURNING room_id`,
		room.Name(), room.Capacity(), photoToPgtype(room.Photo()),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create room", err)
	}
	return id, nil
}

func (r *ResourceRepository) CreateVehicle(ctx context.Context, vehicle *resource.Vehicle) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO vehicles (vehicle_name, plate_no, seats, photo_url)
		VALUES ($1, $2, $3, $4)
		RETURNING vehicle_id`,
		vehicle.Name(), vehicle.PlateNo(), vehicle.Seats(), photoToPgtype(vehicle.Photo()),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create vehicle", err)
	}
	return id, nil
}

// DeleteRoom removes the room and its bookings, returning the photo reference
// so the caller can clean up the blob after commit.
func (r *ResourceRepository) DeleteRoom(ctx context.Context, id int64) (resource.PhotoRef, error) {
	return r.deleteResource(ctx, booking.KindRoom, id,
		`SELECT photo_url FROM rooms WHERE room_id = $1`,
		`DELETE FROM rooms WHERE room_id = $1`)
}

func (r *ResourceRepository) DeleteVehicle(ctx context.Context, id int64) (resource.PhotoRef, error) {
	return r.deleteResource(ctx, booking.KindVehicle, id,
		`SELECT photo_url FROM vehicles WHERE vehicle_id = $1`,
		`DELETE FROM vehicles WHERE vehicle_id = $1`)
}

func (r *ResourceRepository) deleteResource(ctx context.Context, kind booking.Kind, id int64, selectSQL, deleteSQL string) (resource.PhotoRef, error) {
	var photo pgtype.Text
	if err := r.db.QueryRow(ctx, selectSQL, id).Scan(&photo); err != nil {
		if pgconv.IsNoRows(err) {
			return resource.PhotoRef{}, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return resource.PhotoRef{}, infra.WrapRepoErr("failed to load resource photo", err)
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE resource_kind = $1 AND resource_id = $2`, kind.String(), id); err != nil {
		return resource.PhotoRef{}, infra.WrapRepoErr("failed to delete resource bookings", err)
	}
	if _, err := r.db.Exec(ctx, deleteSQL, id); err != nil {
		return resource.PhotoRef{}, infra.WrapRepoErr("failed to delete resource", err)
	}

	var ref resource.PhotoRef
	if photo.Valid {
		ref = resource.NewPhotoRef(photo.String)
	}
	return ref, nil
}

// photo_url is NOT NULL DEFAULT ''; an absent photo is stored as the empty
// string, never as SQL NULL.
func photoToPgtype(p resource.PhotoRef) pgtype.Text {
	if p.IsZero() {
		return pgconv.StringToPgtype("")
	}
	return pgconv.StringToPgtype(p.Value())
}
