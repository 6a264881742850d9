package model

import (
	"halachi/shared/jsonx"
)

const (
	EntityName = "review"

	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Review struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Rating    int         `json:"rating"`
	Text      string      `json:"text"`
	Type      string      `json:"type,omitempty"`
	Status    string      `json:"status"`
	CreatedAt string      `json:"created_at"`
	Extra     jsonx.Extra `json:"-"`
}

type reviewFields Review

func (r Review) MarshalJSON() ([]byte, error) {
	return jsonx.MarshalWithExtra(reviewFields(r), r.Extra)
}

func (r *Review) UnmarshalJSON(data []byte) error {
	var fields reviewFields

	extra, _, err := jsonx.Unmarshal(data, &fields)
	if err != nil {
		return err
	}

	*r = Review(fields)
	r.Extra = extra

	return nil
}

// ValidStatus reports whether status is one of the three review states.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}
