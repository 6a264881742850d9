package model

import (
	"halachi/shared/jsonx"
)

const (
	EntityName = "seo"
)

// SEO maps a page key ("home", "tours", ...) to its meta tags.
type SEO map[string]Page

type Page struct {
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	Keywords    string      `json:"keywords,omitempty"`
	Extra       jsonx.Extra `json:"-"`
}

type pageFields Page

func (p Page) MarshalJSON() ([]byte, error) {
	return jsonx.MarshalWithExtra(pageFields(p), p.Extra)
}

func (p *Page) UnmarshalJSON(data []byte) error {
	var fields pageFields

	extra, _, err := jsonx.Unmarshal(data, &fields)
	if err != nil {
		return err
	}

	*p = Page(fields)
	p.Extra = extra

	return nil
}
