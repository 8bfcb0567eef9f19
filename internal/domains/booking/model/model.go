package model

import (
	"fmt"
	"strconv"
	"strings"

	roomModel "borrowdung/internal/domains/room/model"
	"borrowdung/shared/model"
)

const EntityName = "booking"

// Status is the booking lifecycle state, sent over the wire as its number.
// Pending is the initial state; Approved and Rejected are terminal.
type Status int

const (
	StatusPending Status = iota
	StatusApproved
	StatusRejected
)

var statuses = []Status{StatusPending, StatusApproved, StatusRejected}

// Statuses lists every status in display order.
func Statuses() []Status {
	return statuses
}

func (s Status) Valid() bool {
	return s >= StatusPending && s <= StatusRejected
}

func (s Status) String() string {
	return strconv.Itoa(int(s))
}

// ParseStatus reads a status from its numeric form.
func ParseStatus(value string) (Status, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || !Status(n).Valid() {
		return 0, fmt.Errorf("unknown booking status %q", value)
	}

	return Status(n), nil
}

// Booking is a reservation of one room. StartTime and EndTime are kept exactly
// as the API and the form supplied them.
type Booking struct {
	ID              int64           `json:"id"`
	RoomID          int64           `json:"roomId"`
	BookerName      string          `json:"bookerName"`
	BookerEmail     string          `json:"bookerEmail"`
	BookerPhone     *string         `json:"bookerPhone"`
	Purpose         string          `json:"purpose"`
	StartTime       string          `json:"startTime"`
	EndTime         string          `json:"endTime"`
	Status          Status          `json:"status"`
	RejectionReason *string         `json:"rejectionReason"`
	Room            *roomModel.Room `json:"room,omitempty"`
	model.Metadata
}

// Pending reports whether the booking still awaits a decision.
func (b Booking) Pending() bool {
	return b.Status == StatusPending
}

// RoomName is the embedded room's name, or a reference by id when the API
// did not embed it.
func (b Booking) RoomName() string {
	if b.Room != nil && b.Room.Name != "" {
		return b.Room.Name
	}

	return fmt.Sprintf("Room ID: %d", b.RoomID)
}

// CountByStatus counts the bookings in status s.
func CountByStatus(bookings []Booking, s Status) int {
	count := 0

	for _, booking := range bookings {
		if booking.Status == s {
			count++
		}
	}

	return count
}
