package filestore

import (
	categoryModel "halachi/internal/domains/category/model"
	hotelModel "halachi/internal/domains/hotel/model"
	reviewModel "halachi/internal/domains/review/model"
	seoModel "halachi/internal/domains/seo/model"
	tourModel "halachi/internal/domains/tour/model"
	"halachi/shared/jsonx"
)

// Document is the whole site state as kept in the data file.
type Document struct {
	Hotel      *hotelModel.Hotel        `json:"hotel"`
	Tours      []tourModel.Tour         `json:"tours"`
	Categories []categoryModel.Category `json:"categories"`
	Reviews    []reviewModel.Review     `json:"reviews,omitempty"`
	SEO        seoModel.SEO             `json:"seo,omitempty"`
	Extra      jsonx.Extra              `json:"-"`

	// Degraded marks a document that does not reflect the data file in full: the file
	// could not be read or parsed, or a top-level section had an unexpected shape.
	// Such a document is safe to serve but must not be saved back.
	Degraded bool `json:"-"`

	mismatched []string
}

// DefaultDocument is the document of a site without a data file yet.
func DefaultDocument() Document {
	return Document{
		Hotel:      &hotelModel.Hotel{},
		Tours:      []tourModel.Tour{},
		Categories: []categoryModel.Category{},
	}
}

type documentFields Document

func (d Document) MarshalJSON() ([]byte, error) {
	return jsonx.MarshalWithExtra(documentFields(d), d.Extra)
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var fields documentFields

	extra, mismatched, err := jsonx.Unmarshal(data, &fields)
	if err != nil {
		return err
	}

	*d = Document(fields)
	d.Extra = extra
	d.mismatched = mismatched
	d.Degraded = len(mismatched) > 0

	return nil
}

func (d *Document) normalize() {
	if d.Tours == nil {
		d.Tours = []tourModel.Tour{}
	}

	if d.Categories == nil {
		d.Categories = []categoryModel.Category{}
	}
}

func (d *Document) TourIndex(id string) int {
	for i := range d.Tours {
		if d.Tours[i].ID == id {
			return i
		}
	}

	return -1
}

func (d *Document) CategoryIndex(id string) int {
	for i := range d.Categories {
		if d.Categories[i].ID == id {
			return i
		}
	}

	return -1
}

func (d *Document) ReviewIndex(id string) int {
	for i := range d.Reviews {
		if d.Reviews[i].ID == id {
			return i
		}
	}

	return -1
}

// CategoryInUse reports whether any tour points at the category.
func (d *Document) CategoryInUse(id string) bool {
	for i := range d.Tours {
		if d.Tours[i].Category == id {
			return true
		}
	}

	return false
}
