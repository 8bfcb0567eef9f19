package model

import (
	bookingModel "borrowdung/internal/domains/booking/model"
)

// Summary is what the dashboard shows. Counts are taken over the fetched page.
type Summary struct {
	TotalRooms       int
	AvailableRooms   int
	PendingBookings  int
	ApprovedBookings int
	RecentBookings   []bookingModel.Booking
}
