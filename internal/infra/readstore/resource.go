package readstore

import (
	"context"

	"facility-booking/internal/infra"
	"facility-booking/internal/infra/db"
	"facility-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ResourceReadStore struct {
	db db.DBTX
}

func NewResourceReadStore(dbtx db.DBTX) *ResourceReadStore {
	return &ResourceReadStore{db: dbtx}
}

func (s *ResourceReadStore) ListRooms(ctx context.Context) ([]*queries.RoomRow, error) {
	rows, err := s.db.Query(ctx, `
		SELECT room_id, room_name, capacity, photo_url
		FROM rooms ORDER BY room_id DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomRow
	for rows.Next() {
		var row queries.RoomRow
		var photo pgtype.Text
		if err := rows.Scan(&row.RoomID, &row.RoomName, &row.Capacity, &photo); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		row.PhotoRef = photo.String
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}

	return result, nil
}

func (s *ResourceReadStore) ListVehicles(ctx context.Context) ([]*queries.VehicleRow, error) {
	rows, err := s.db.Query(ctx, `
		SELECT vehicle_id, vehicle_name, plate_no, seats, photo_url
		FROM vehicles ORDER BY vehicle_id DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	defer rows.Close()

	var result []*queries.VehicleRow
	for rows.Next() {
		var row queries.VehicleRow
		var photo pgtype.Text
		if err := rows.Scan(&row.VehicleID, &row.VehicleName, &row.PlateNo, &row.Seats, &photo); err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle row", err)
		}
		row.PhotoRef = photo.String
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate vehicle rows", err)
	}

	return result, nil
}
