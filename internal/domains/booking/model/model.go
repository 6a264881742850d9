package model

import (
	"halachi/shared/constant"
)

const (
	EntityName = "booking"

	FieldID        = constant.FieldID
	FieldCreatedAt = constant.FieldCreatedAt
	FieldStatus    = constant.FieldStatus
)

// Booking is a submitted form: whatever the guest sent plus id, created_at and status.
type Booking map[string]any

func (b Booking) ID() string {
	return b.str(FieldID)
}

func (b Booking) CreatedAt() string {
	return b.str(FieldCreatedAt)
}

func (b Booking) Status() string {
	return b.str(FieldStatus)
}

func (b Booking) str(key string) string {
	v, _ := b[key].(string)

	return v
}
