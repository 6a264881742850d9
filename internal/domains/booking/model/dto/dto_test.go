package dto_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"halachi/internal/domains/booking/model"
	"halachi/internal/domains/booking/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitBookingRequest_ToModel(t *testing.T) {
	req := dto.SubmitBookingRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "Анна",
		"phone": "+7 900 000-00-00",
		"guests": 2,
		"id": "../../etc/passwd",
		"status": "confirmed",
		"created_at": "1999-01-01"
	}`), &req))

	booking := req.ToModel("lvnnbr40", "2024-05-01T10:00:00.000Z")

	assert.Equal(t, "lvnnbr40", booking.ID())
	assert.Equal(t, "2024-05-01T10:00:00.000Z", booking.CreatedAt())
	assert.Equal(t, "new", booking.Status())
	assert.Equal(t, "Анна", booking["name"])
	assert.Equal(t, float64(2), booking["guests"])
}

func TestSubmitBookingRequest_RejectsNonObjects(t *testing.T) {
	for _, body := range []string{`[]`, `"text"`, `null`, `42`} {
		req := dto.SubmitBookingRequest{}
		assert.Error(t, json.Unmarshal([]byte(body), &req), body)
	}
}

func TestSubmitBookingRequest_FromForm(t *testing.T) {
	req := dto.SubmitBookingRequest{}
	req.FromForm(url.Values{
		"name":  {"Анна"},
		"tours": {"tour_1", "tour_2"},
		"id":    {"custom"},
	})

	booking := req.ToModel("lvnnbr40", "2024-05-01T10:00:00.000Z")

	assert.Equal(t, model.Booking{
		"name":       "Анна",
		"tours":      []string{"tour_1", "tour_2"},
		"id":         "lvnnbr40",
		"created_at": "2024-05-01T10:00:00.000Z",
		"status":     "new",
	}, booking)
}
