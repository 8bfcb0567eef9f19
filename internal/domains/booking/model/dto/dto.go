package dto

import (
	"net/http"
	"net/url"
	"strconv"

	"borrowdung/internal/domains/booking/model"
	"borrowdung/shared"
	"borrowdung/shared/constant"
	gDto "borrowdung/shared/dto"
)

// Filter narrows the booking list and history. A nil Status means any status;
// Pending is a real value and is sent as 0.
type Filter struct {
	gDto.QueryParams
	Status *model.Status
	RoomID int64
}

func (f *Filter) FromRequest(r *http.Request) {
	f.QueryParams.FromRequest(r, true)

	query := r.URL.Query()

	if status, err := model.ParseStatus(query.Get(constant.RequestParamStatus)); err == nil {
		f.Status = &status
	}

	if roomID, err := strconv.ParseInt(query.Get(constant.RequestParamRoomID), 10, 64); err == nil && roomID > 0 {
		f.RoomID = roomID
	}
}

// Encode returns the query string for the API. Unset filters are omitted.
func (f Filter) Encode() url.Values {
	values := url.Values{}
	f.QueryParams.Encode(values)

	if f.Status != nil {
		values.Set(constant.RequestParamStatus, f.Status.String())
	}

	if f.RoomID > 0 {
		values.Set(constant.RequestParamRoomID, strconv.FormatInt(f.RoomID, 10))
	}

	return values
}

// StatusValue is the selected status as shown in the filter control.
func (f Filter) StatusValue() string {
	if f.Status == nil {
		return constant.Empty
	}

	return f.Status.String()
}

// BookingRequest is the create/edit form. Times are submitted unchanged.
type BookingRequest struct {
	RoomID      int64  `form:"roomId"      label:"Ruangan"        validate:"gt=0"`
	BookerName  string `form:"bookerName"  label:"Nama Peminjam"  validate:"notblank"`
	BookerEmail string `form:"bookerEmail" label:"Email"          validate:"required,email"`
	BookerPhone string `form:"bookerPhone"`
	Purpose     string `form:"purpose"     label:"Keperluan"      validate:"notblank"`
	StartTime   string `form:"startTime"   label:"Waktu Mulai"    validate:"required"`
	EndTime     string `form:"endTime"     label:"Waktu Selesai"  validate:"required"`
}

// FromModel fills the edit form with a stored booking.
func (r *BookingRequest) FromModel(booking model.Booking) {
	r.RoomID = booking.RoomID
	r.BookerName = booking.BookerName
	r.BookerEmail = booking.BookerEmail
	r.BookerPhone = shared.Deref(booking.BookerPhone)
	r.Purpose = booking.Purpose
	r.StartTime = booking.StartTime
	r.EndTime = booking.EndTime
}

// Payload is the JSON body of POST /Bookings and PUT /Bookings/{id}.
type Payload struct {
	RoomID      int64   `json:"roomId"`
	BookerName  string  `json:"bookerName"`
	BookerEmail string  `json:"bookerEmail"`
	BookerPhone *string `json:"bookerPhone,omitempty"`
	Purpose     string  `json:"purpose"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
}

func (r BookingRequest) ToPayload() Payload {
	return Payload{
		RoomID:      r.RoomID,
		BookerName:  r.BookerName,
		BookerEmail: r.BookerEmail,
		BookerPhone: shared.OptionalString(r.BookerPhone),
		Purpose:     r.Purpose,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
	}
}

// StatusRequest is the body of the status update endpoint.
type StatusRequest struct {
	Status          model.Status `json:"status"`
	RejectionReason *string      `json:"rejectionReason,omitempty"`
}

// ProcessRequest is the approve/reject form of the process modal.
type ProcessRequest struct {
	RejectionReason string `form:"rejectionReason"`
}
