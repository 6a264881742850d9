package dto

import (
	"encoding/json"

	"halachi/internal/domains/seo/model"
)

// UpdateSEORequest is keyed by page on the wire. Only the fields present for a page change.
type UpdateSEORequest struct {
	Pages map[string]UpdatePageRequest `validate:"dive"`
}

type UpdatePageRequest struct {
	Title       *string `json:"title"       validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Keywords    *string `json:"keywords"    validate:"omitempty,max=500"`
}

func (r UpdateSEORequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Pages)
}

func (r *UpdateSEORequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Pages)
}

// Apply merges the request into seo, creating pages that do not exist yet.
func (r *UpdateSEORequest) Apply(seo model.SEO) model.SEO {
	if seo == nil {
		seo = model.SEO{}
	}

	for key, req := range r.Pages {
		page := seo[key]

		if req.Title != nil {
			page.Title = *req.Title
		}

		if req.Description != nil {
			page.Description = *req.Description
		}

		if req.Keywords != nil {
			page.Keywords = *req.Keywords
		}

		seo[key] = page
	}

	return seo
}
