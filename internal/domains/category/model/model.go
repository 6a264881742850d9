package model

import (
	"halachi/shared/jsonx"
)

const (
	EntityName = "category"
)

type Category struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Icon  string      `json:"icon"`
	Color string      `json:"color"`
	Order int         `json:"order"`
	Extra jsonx.Extra `json:"-"`
}

type categoryFields Category

func (c Category) MarshalJSON() ([]byte, error) {
	return jsonx.MarshalWithExtra(categoryFields(c), c.Extra)
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var fields categoryFields

	extra, _, err := jsonx.Unmarshal(data, &fields)
	if err != nil {
		return err
	}

	*c = Category(fields)
	c.Extra = extra

	return nil
}
