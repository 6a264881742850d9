package dto

import (
	"halachi/internal/domains/review/model"
	"halachi/shared"
	"halachi/shared/coerce"
	"halachi/shared/constant"
	"halachi/shared/timezone"
)

// SubmitReviewRequest is what guests post. Id, status and created_at are always server-side.
type SubmitReviewRequest struct {
	Name   string      `json:"name"   validate:"required,max=100"`
	Rating *coerce.Int `json:"rating" validate:"required,gte=1,lte=5" swaggertype:"integer"`
	Text   string      `json:"text"   validate:"required,max=2000"`
	Type   string      `json:"type"`
}

func (r *SubmitReviewRequest) ToModel() model.Review {
	review := model.Review{
		ID:        shared.NewTimeID(constant.IDPrefixRev),
		Name:      r.Name,
		Text:      r.Text,
		Type:      r.Type,
		Status:    model.StatusPending,
		CreatedAt: timezone.Stamp(),
	}

	if v := coerce.IntPtr(r.Rating); v != nil {
		review.Rating = *v
	}

	return review
}

// CreateReviewRequest lets an admin add a review with any initial status.
type CreateReviewRequest struct {
	SubmitReviewRequest
	Status string `json:"status" validate:"omitempty,oneof=pending approved rejected"`
}

func (r *CreateReviewRequest) ToModel() model.Review {
	review := r.SubmitReviewRequest.ToModel()

	if r.Status != constant.Empty {
		review.Status = r.Status
	}

	return review
}

type GetReviewsRequest struct {
	Status string `validate:"omitempty,oneof=pending approved rejected"`
}

type SaveReviewResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Review  model.Review `json:"review"`
}
