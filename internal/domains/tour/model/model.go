package model

import (
	"halachi/shared/jsonx"
)

const (
	EntityName = "tour"

	FieldCategory  = "category"
	FieldFeatured  = "featured"
	FieldAvailable = "available"
)

type Tour struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Category     string      `json:"category"`
	Price        int         `json:"price"`
	Duration     string      `json:"duration"`
	ShortDesc    string      `json:"short_desc"`
	Description  string      `json:"description"`
	Rating       float64     `json:"rating"`
	ReviewsCount int         `json:"reviews_count"`
	Featured     bool        `json:"featured"`
	Available    bool        `json:"available"`
	Images       []string    `json:"images"`
	Schedule     []string    `json:"schedule,omitempty"`
	Highlights   []string    `json:"highlights,omitempty"`
	MeetingPoint string      `json:"meeting_point,omitempty"`
	GroupSize    string      `json:"group_size,omitempty"`
	Location     string      `json:"location,omitempty"`
	CreatedAt    string      `json:"created_at,omitempty"`
	Extra        jsonx.Extra `json:"-"`
}

type tourFields Tour

func (t Tour) MarshalJSON() ([]byte, error) {
	return jsonx.MarshalWithExtra(tourFields(t), t.Extra)
}

func (t *Tour) UnmarshalJSON(data []byte) error {
	var fields tourFields

	extra, _, err := jsonx.Unmarshal(data, &fields)
	if err != nil {
		return err
	}

	*t = Tour(fields)
	t.Extra = extra

	return nil
}

// Filter narrows the public tour listing.
type Filter struct {
	Category      string
	FeaturedOnly  bool
	IncludeHidden bool
}

func (f Filter) Match(t Tour) bool {
	if f.Category != "" && t.Category != f.Category {
		return false
	}

	if f.FeaturedOnly && !t.Featured {
		return false
	}

	if !f.IncludeHidden && !t.Available {
		return false
	}

	return true
}
