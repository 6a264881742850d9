package model

import (
	"encoding/json"

	"halachi/shared/jsonx"
)

const (
	EntityName     = "hotel"
	RoomEntityName = "room"

	FieldRooms        = "rooms"
	FieldVisitorCount = "visitor_count"
)

type Hotel struct {
	Name         string          `json:"name,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	Email        string          `json:"email,omitempty"`
	Address      string          `json:"address,omitempty"`
	Description  string          `json:"description,omitempty"`
	About        string          `json:"about,omitempty"`
	VisitorCount *int            `json:"visitor_count,omitempty"`
	Rooms        []Room          `json:"rooms,omitzero"`
	Amenities    json.RawMessage `json:"amenities,omitempty"`
	NearbyPlaces json.RawMessage `json:"nearby_places,omitempty"`
	Testimonials json.RawMessage `json:"testimonials,omitempty"`
	Extra        jsonx.Extra     `json:"-"`
}

type hotelFields Hotel

func (h Hotel) MarshalJSON() ([]byte, error) {
	return jsonx.MarshalWithExtra(hotelFields(h), h.Extra)
}

func (h *Hotel) UnmarshalJSON(data []byte) error {
	var fields hotelFields

	extra, _, err := jsonx.Unmarshal(data, &fields)
	if err != nil {
		return err
	}

	*h = Hotel(fields)
	h.Extra = extra

	return nil
}

// Visitors returns the visitor counter, 0 when it was never set.
func (h *Hotel) Visitors() int {
	if h.VisitorCount == nil {
		return 0
	}

	return *h.VisitorCount
}

func (h *Hotel) SetVisitors(count int) {
	h.VisitorCount = &count
}

// RoomIndex returns the position of the room with id, or -1.
func (h *Hotel) RoomIndex(id string) int {
	for i := range h.Rooms {
		if h.Rooms[i].ID == id {
			return i
		}
	}

	return -1
}

type Room struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	PriceFrom   int         `json:"price_from"`
	Description string      `json:"description"`
	Features    []string    `json:"features"`
	Images      []string    `json:"images"`
	Extra       jsonx.Extra `json:"-"`
}

type roomFields Room

func (r Room) MarshalJSON() ([]byte, error) {
	return jsonx.MarshalWithExtra(roomFields(r), r.Extra)
}

func (r *Room) UnmarshalJSON(data []byte) error {
	var fields roomFields

	extra, _, err := jsonx.Unmarshal(data, &fields)
	if err != nil {
		return err
	}

	*r = Room(fields)
	r.Extra = extra

	return nil
}
