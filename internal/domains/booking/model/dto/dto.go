package dto

import (
	"encoding/json"
	"errors"
	"net/url"

	"halachi/internal/domains/booking/model"
	"halachi/shared/constant"
)

var errNotObject = errors.New("booking must be a JSON object")

// SubmitBookingRequest carries whatever fields the booking form sends.
type SubmitBookingRequest struct {
	Fields map[string]any
}

func (r *SubmitBookingRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return errNotObject
	}

	if fields == nil {
		return errNotObject
	}

	r.Fields = fields

	return nil
}

// FromForm keeps single values as strings and repeated keys as string lists.
func (r *SubmitBookingRequest) FromForm(form url.Values) {
	r.Fields = make(map[string]any, len(form))

	for key, values := range form {
		if len(values) == 1 {
			r.Fields[key] = values[0]

			continue
		}

		r.Fields[key] = values
	}
}

// ToModel drops the server-owned fields the caller may have sent and stamps the rest.
func (r *SubmitBookingRequest) ToModel(id, createdAt string) model.Booking {
	booking := make(model.Booking, len(r.Fields)+3)

	for key, value := range r.Fields {
		switch key {
		case model.FieldID, model.FieldCreatedAt, model.FieldStatus:
			continue
		default:
			booking[key] = value
		}
	}

	booking[model.FieldID] = id
	booking[model.FieldCreatedAt] = createdAt
	booking[model.FieldStatus] = constant.BookingStatusNew

	return booking
}

type SubmitBookingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID string `json:"booking_id"`
}
