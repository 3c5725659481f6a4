package queries

// Read models (DTO for read side)

type BookingListItem struct {
	BookingID    int64   `json:"booking_id"`
	ResourceID   int64   `json:"resource_id"`
	ResourceName string  `json:"resource_name"`
	UserName     string  `json:"user_name"`
	Department   string  `json:"department_name"`
	BookingDate  string  `json:"booking_date"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Status       string  `json:"status"`
	Destination  *string `json:"destination,omitempty"`
}

// RoomRow and VehicleRow carry the raw photo reference; the query layer
// resolves stored keys into public URLs.
type RoomRow struct {
	RoomID   int64
	RoomName string
	Capacity int
	PhotoRef string
}

type VehicleRow struct {
	VehicleID   int64
	VehicleName string
	PlateNo     string
	Seats       int
	PhotoRef    string
}

type RoomView struct {
	RoomID   int64   `json:"room_id"`
	RoomName string  `json:"room_name"`
	Capacity int     `json:"capacity"`
	PhotoURL *string `json:"photo_url"`
}

type VehicleView struct {
	VehicleID   int64   `json:"vehicle_id"`
	VehicleName string  `json:"vehicle_name"`
	PlateNo     string  `json:"plate_no"`
	Seats       int     `json:"seats"`
	PhotoURL    *string `json:"photo_url"`
}
