package dto

import (
	"encoding/json"

	"halachi/internal/domains/hotel/model"
	"halachi/shared"
	"halachi/shared/coerce"
	"halachi/shared/constant"
)

// UpdateHotelRequest merges field by field. A rooms array replaces the stored rooms.
type UpdateHotelRequest struct {
	Name         *string            `json:"name"`
	Phone        *string            `json:"phone"`
	Email        *string            `json:"email"`
	Address      *string            `json:"address"`
	Description  *string            `json:"description"`
	About        *string            `json:"about"`
	VisitorCount *coerce.Int        `json:"visitor_count"           validate:"omitempty,gte=0"`
	Rooms        *[]SaveRoomRequest `json:"rooms"                   validate:"omitempty,dive"`
	Amenities    json.RawMessage    `json:"amenities,omitempty"     swaggertype:"array,object"`
	NearbyPlaces json.RawMessage    `json:"nearby_places,omitempty" swaggertype:"array,object"`
	Testimonials json.RawMessage    `json:"testimonials,omitempty"  swaggertype:"array,object"`
}

func (r *UpdateHotelRequest) Apply(hotel *model.Hotel) {
	setString(&hotel.Name, r.Name)
	setString(&hotel.Phone, r.Phone)
	setString(&hotel.Email, r.Email)
	setString(&hotel.Address, r.Address)
	setString(&hotel.Description, r.Description)
	setString(&hotel.About, r.About)

	if v := coerce.IntPtr(r.VisitorCount); v != nil {
		hotel.SetVisitors(*v)
	}

	if r.Rooms != nil {
		rooms := make([]model.Room, 0, len(*r.Rooms))

		for _, req := range *r.Rooms {
			room := req.ToModel()

			// Members the site does not model survive a wholesale replace of a known room.
			if idx := hotel.RoomIndex(room.ID); idx >= 0 {
				room.Extra = hotel.Rooms[idx].Extra
			}

			rooms = append(rooms, room)
		}

		hotel.Rooms = rooms
	}

	if len(r.Amenities) > 0 {
		hotel.Amenities = r.Amenities
	}

	if len(r.NearbyPlaces) > 0 {
		hotel.NearbyPlaces = r.NearbyPlaces
	}

	if len(r.Testimonials) > 0 {
		hotel.Testimonials = r.Testimonials
	}
}

type SaveRoomRequest struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"        validate:"required"`
	PriceFrom   coerce.Int `json:"price_from"  validate:"gte=0"`
	Description string     `json:"description"`
	Features    []string   `json:"features"`
	Images      []string   `json:"images"`
}

func (r *SaveRoomRequest) ToModel() model.Room {
	id := r.ID
	if id == constant.Empty {
		id = shared.NewTimeID(constant.IDPrefixRoom)
	}

	return model.Room{
		ID:          id,
		Name:        r.Name,
		PriceFrom:   int(r.PriceFrom),
		Description: r.Description,
		Features:    emptyIfNil(r.Features),
		Images:      emptyIfNil(r.Images),
	}
}

type UpdateRoomRequest struct {
	Name        *string     `json:"name"        validate:"omitempty,min=1"`
	PriceFrom   *coerce.Int `json:"price_from"  validate:"omitempty,gte=0"`
	Description *string     `json:"description"`
	Features    *[]string   `json:"features"`
	Images      *[]string   `json:"images"`
}

func (r *UpdateRoomRequest) Apply(room *model.Room) {
	setString(&room.Name, r.Name)
	setString(&room.Description, r.Description)

	if v := coerce.IntPtr(r.PriceFrom); v != nil {
		room.PriceFrom = *v
	}

	if r.Features != nil {
		room.Features = *r.Features
	}

	if r.Images != nil {
		room.Images = *r.Images
	}
}

type SaveRoomResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Room    model.Room `json:"room"`
}

type VisitorCountRequest struct {
	Count *coerce.Int `json:"count" validate:"required,gte=0" swaggertype:"integer"`
}

type SiteConfigResponse struct {
	VisitorCount int    `json:"visitor_count"`
	SiteName     string `json:"site_name"`
}

func (r *SiteConfigResponse) FromModel(hotel *model.Hotel) {
	r.SiteName = constant.DefaultSiteName

	if hotel == nil {
		return
	}

	r.VisitorCount = hotel.Visitors()

	if hotel.Name != constant.Empty {
		r.SiteName = hotel.Name
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
