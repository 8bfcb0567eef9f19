package model

import (
	"borrowdung/shared/constant"
	"borrowdung/shared/model"
)

const EntityName = "room"

type Room struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Location    string         `json:"location"`
	Capacity    int            `json:"capacity"`
	Description *string        `json:"description"`
	Status      string         `json:"status"`
	Bookings    []BookingEntry `json:"bookings,omitempty"`
	model.Metadata
}

// BookingEntry is the booking summary the API may embed in a room.
type BookingEntry struct {
	ID         int64  `json:"id"`
	BookerName string `json:"bookerName"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Status     int    `json:"status"`
}

// Available reports whether the room can be offered for new bookings.
func (r Room) Available() bool {
	return r.Status == constant.RoomStatusAvailable
}

// FilterAvailable keeps the rooms that can be booked, preserving order.
func FilterAvailable(rooms []Room) []Room {
	available := make([]Room, 0, len(rooms))

	for _, room := range rooms {
		if room.Available() {
			available = append(available, room)
		}
	}

	return available
}
