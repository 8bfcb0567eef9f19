// Package format maps booking statuses and API timestamps to the strings and
// CSS classes shown on the pages.
package format

import (
	"fmt"
	"strings"
	"time"

	"borrowdung/internal/domains/booking/model"
	"borrowdung/shared/timezone"
)

const (
	ClassPending     = "bg-yellow-100 text-yellow-800"
	ClassApproved    = "bg-green-100 text-green-800"
	ClassRejected    = "bg-red-100 text-red-800"
	ClassUnknown     = "bg-gray-100 text-gray-800"
	ClassAvailable   = ClassApproved
	ClassUnavailable = ClassRejected
)

var months = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Date renders "02 Maret 2025". Unparsable input is returned as is.
func Date(value string) string {
	t, ok := parse(value)
	if !ok {
		return value
	}

	return fmt.Sprintf("%02d %s %d", t.Day(), months[t.Month()-1], t.Year())
}

// DateTime renders "02 Maret 2025 09.30".
func DateTime(value string) string {
	t, ok := parse(value)
	if !ok {
		return value
	}

	return fmt.Sprintf("%02d %s %d %02d.%02d", t.Day(), months[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// Time renders "09.30".
func Time(value string) string {
	t, ok := parse(value)
	if !ok {
		return value
	}

	return fmt.Sprintf("%02d.%02d", t.Hour(), t.Minute())
}

// DateTimeInput renders a value for an <input type="datetime-local">.
func DateTimeInput(value string) string {
	t, ok := parse(value)
	if !ok {
		return value
	}

	return t.Format("2006-01-02T15:04")
}

func BookingStatusText(status model.Status) string {
	switch status {
	case model.StatusPending:
		return "Pending"
	case model.StatusApproved:
		return "Disetujui"
	case model.StatusRejected:
		return "Ditolak"
	default:
		return "Unknown"
	}
}

func BookingStatusColor(status model.Status) string {
	switch status {
	case model.StatusPending:
		return ClassPending
	case model.StatusApproved:
		return ClassApproved
	case model.StatusRejected:
		return ClassRejected
	default:
		return ClassUnknown
	}
}

func RoomStatusColor(status string) string {
	switch strings.ToLower(status) {
	case "tersedia":
		return ClassAvailable
	case "tidak tersedia":
		return ClassUnavailable
	default:
		return ClassUnknown
	}
}

func parse(value string) (time.Time, bool) {
	t, err := timezone.ParseAPI(value)
	if err != nil {
		return time.Time{}, false
	}

	return timezone.ToAppTime(t), true
}
