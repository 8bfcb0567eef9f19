package dto

import (
	"net/http"
	"net/url"
	"strings"

	"borrowdung/internal/domains/room/model"
	"borrowdung/shared"
	"borrowdung/shared/constant"
	gDto "borrowdung/shared/dto"
)

// Filter narrows the room list. StartTime and EndTime together ask the API for
// rooms free in that window.
type Filter struct {
	gDto.QueryParams
	Status    string
	StartTime string
	EndTime   string
}

func (f *Filter) FromRequest(r *http.Request) {
	f.QueryParams.FromRequest(r, true)

	query := r.URL.Query()
	f.Status = strings.TrimSpace(query.Get(constant.RequestParamStatus))
	f.StartTime = query.Get(constant.RequestParamStartTime)
	f.EndTime = query.Get(constant.RequestParamEndTime)
}

// Encode returns the query string for the API. Unset filters are omitted.
func (f Filter) Encode() url.Values {
	values := url.Values{}
	f.QueryParams.Encode(values)

	if f.Status != constant.Empty {
		values.Set(constant.RequestParamStatus, f.Status)
	}

	if f.StartTime != constant.Empty {
		values.Set(constant.RequestParamStartTime, f.StartTime)
	}

	if f.EndTime != constant.Empty {
		values.Set(constant.RequestParamEndTime, f.EndTime)
	}

	return values
}

// RoomRequest is the create/edit form. Status is free text on the API side, so
// any value the form carries back is accepted.
type RoomRequest struct {
	Name        string `form:"name"        label:"Nama Ruangan" validate:"notblank"`
	Location    string `form:"location"    label:"Lokasi"       validate:"notblank"`
	Capacity    int    `form:"capacity"    label:"Kapasitas"    validate:"gt=0"`
	Description string `form:"description"`
	Status      string `form:"status"      label:"Status"       validate:"max=50"`
}

// FromModel fills the edit form with a stored room.
func (r *RoomRequest) FromModel(room model.Room) {
	r.Name = room.Name
	r.Location = room.Location
	r.Capacity = room.Capacity
	r.Description = shared.Deref(room.Description)
	r.Status = room.Status
}

// Payload is the JSON body of POST /Rooms and PUT /Rooms/{id}.
type Payload struct {
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Capacity    int     `json:"capacity"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status,omitempty"`
}

// ToPayload builds the API body. A new room without a status is available.
func (r RoomRequest) ToPayload() Payload {
	status := strings.TrimSpace(r.Status)
	if status == constant.Empty {
		status = constant.RoomStatusAvailable
	}

	return Payload{
		Name:        strings.TrimSpace(r.Name),
		Location:    strings.TrimSpace(r.Location),
		Capacity:    r.Capacity,
		Description: shared.OptionalString(r.Description),
		Status:      status,
	}
}
