package resource

import (
	"errors"
	"strings"
)

var (
	ErrInvalidName     = errors.New("resource name is required")
	ErrInvalidCapacity = errors.New("capacity must be positive")
)

// PhotoRef is either an object key in the blob store or an absolute http(s)
// URL supplied by the caller. Only stored keys are subject to blob cleanup.
type PhotoRef struct {
	value string
}

func NewPhotoRef(value string) PhotoRef {
	return PhotoRef{value: strings.TrimSpace(value)}
}

func (p PhotoRef) Value() string {
	return p.value
}

func (p PhotoRef) IsZero() bool {
	return p.value == ""
}

// IsStoredKey reports whether the reference points into our blob store rather
// than an external URL.
func (p PhotoRef) IsStoredKey() bool {
	if p.value == "" {
		return false
	}
	return !strings.HasPrefix(p.value, "http://") && !strings.HasPrefix(p.value, "https://")
}

type Room struct {
	id       int64
	name     string
	capacity int
	photo    PhotoRef
}

func NewRoom(name string, capacity int, photo PhotoRef) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Room{name: name, capacity: capacity, photo: photo}, nil
}

func ReconstructRoom(id int64, name string, capacity int, photo PhotoRef) *Room {
	return &Room{id: id, name: name, capacity: capacity, photo: photo}
}

func (r *Room) ID() int64       { return r.id }
func (r *Room) Name() string    { return r.name }
func (r *Room) Capacity() int   { return r.capacity }
func (r *Room) Photo() PhotoRef { return r.photo }

type Vehicle struct {
	id      int64
	name    string
	plateNo string
	seats   int
	photo   PhotoRef
}

func NewVehicle(name, plateNo string, seats int, photo PhotoRef) (*Vehicle, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if seats <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Vehicle{name: name, plateNo: strings.TrimSpace(plateNo), seats: seats, photo: photo}, nil
}

func ReconstructVehicle(id int64, name, plateNo string, seats int, photo PhotoRef) *Vehicle {
	return &Vehicle{id: id, name: name, plateNo: plateNo, seats: seats, photo: photo}
}

func (v *Vehicle) ID() int64       { return v.id }
func (v *Vehicle) Name() string    { return v.name }
func (v *Vehicle) PlateNo() string { return v.plateNo }
func (v *Vehicle) Seats() int      { return v.seats }
func (v *Vehicle) Photo() PhotoRef { return v.photo }
