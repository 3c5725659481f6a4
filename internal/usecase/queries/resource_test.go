//go:build unit

package queries_test

import (
	"context"
	"testing"

	"facility-booking/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type stubResourceReadStore struct {
	rooms    []*queries.RoomRow
	vehicles []*queries.VehicleRow
	err      error
}

func (s *stubResourceReadStore) ListRooms(context.Context) ([]*queries.RoomRow, error) {
	return s.rooms, s.err
}

func (s *stubResourceReadStore) ListVehicles(context.Context) ([]*queries.VehicleRow, error) {
	return s.vehicles, s.err
}

type stubResolver struct{}

func (stubResolver) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func strPtr(s string) *string { return &s }

func TestListRoomsPhotoResolution(t *testing.T) {
	store := &stubResourceReadStore{
		rooms: []*queries.RoomRow{
			{RoomID: 1, RoomName: "Conference Room A", Capacity: 12, PhotoRef: "abc123.png"},
			{RoomID: 2, RoomName: "Board Room", Capacity: 8, PhotoRef: "https://example.com/board.jpg"},
			{RoomID: 3, RoomName: "Annex", Capacity: 4, PhotoRef: ""},
		},
	}
	q := queries.NewResourceQueries(store, stubResolver{})

	got, err := q.ListRooms(context.Background())
	require.NoError(t, err)

	want := []*queries.RoomView{
		{RoomID: 1, RoomName: "Conference Room A", Capacity: 12, PhotoURL: strPtr("https://cdn.example.com/abc123.png")},
		{RoomID: 2, RoomName: "Board Room", Capacity: 8, PhotoURL: strPtr("https://example.com/board.jpg")},
		{RoomID: 3, RoomName: "Annex", Capacity: 4, PhotoURL: nil},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("room views mismatch (-want +got):\n%s", diff)
	}
}

func TestListVehiclesPhotoResolution(t *testing.T) {
	store := &stubResourceReadStore{
		vehicles: []*queries.VehicleRow{
			{VehicleID: 1, VehicleName: "Hiace Van", PlateNo: "LEA-1234", Seats: 12, PhotoRef: "van.jpg"},
			{VehicleID: 2, VehicleName: "Corolla", PlateNo: "LEB-5678", Seats: 4, PhotoRef: ""},
		},
	}
	q := queries.NewResourceQueries(store, stubResolver{})

	got, err := q.ListVehicles(context.Background())
	require.NoError(t, err)

	want := []*queries.VehicleView{
		{VehicleID: 1, VehicleName: "Hiace Van", PlateNo: "LEA-1234", Seats: 12, PhotoURL: strPtr("https://cdn.example.com/van.jpg")},
		{VehicleID: 2, VehicleName: "Corolla", PlateNo: "LEB-5678", Seats: 4, PhotoURL: nil},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("vehicle views mismatch (-want +got):\n%s", diff)
	}
}

func TestListRoomsPropagatesStoreError(t *testing.T) {
	store := &stubResourceReadStore{err: context.DeadlineExceeded}
	q := queries.NewResourceQueries(store, stubResolver{})

	_, err := q.ListRooms(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
