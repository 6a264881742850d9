package dto

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strings"

	"halachi/internal/domains/tour/model"
	"halachi/shared"
	"halachi/shared/coerce"
	"halachi/shared/constant"
	"halachi/shared/failure"
	"halachi/shared/timezone"
)

const (
	fieldID           = "id"
	fieldTitle        = "title"
	fieldCategory     = "category"
	fieldPrice        = "price"
	fieldDuration     = "duration"
	fieldShortDesc    = "short_desc"
	fieldDescription  = "description"
	fieldRating       = "rating"
	fieldReviewsCount = "reviews_count"
	fieldFeatured     = "featured"
	fieldAvailable    = "available"
	fieldImages       = "images"
	fieldSchedule     = "schedule"
	fieldHighlights   = "highlights"
	fieldMeetingPoint = "meeting_point"
	fieldGroupSize    = "group_size"
	fieldLocation     = "location"
)

// SaveTourRequest is the payload of a tour upsert, posted as JSON or as a multipart form.
type SaveTourRequest struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"         validate:"required"`
	Category     string       `json:"category"`
	Price        coerce.Int   `json:"price"         validate:"gte=0"`
	Duration     string       `json:"duration"`
	ShortDesc    string       `json:"short_desc"`
	Description  string       `json:"description"`
	Rating       coerce.Float `json:"rating"        validate:"gte=0,lte=5"`
	ReviewsCount coerce.Int   `json:"reviews_count" validate:"gte=0"`
	Featured     coerce.Bool  `json:"featured"      swaggertype:"boolean"`
	Available    *coerce.Bool `json:"available"     swaggertype:"boolean"`
	Images       []string     `json:"images"`
	Schedule     []string     `json:"schedule"`
	Highlights   []string     `json:"highlights"`
	MeetingPoint string       `json:"meeting_point"`
	GroupSize    string       `json:"group_size"`
	Location     string       `json:"location"`
}

// invalidField keeps the parse error for logs; clients only see the failure message.
func invalidField(key string, err error) error {
	return fmt.Errorf("%w: %s: %w", failure.InvalidRequestError, key, err)
}

// FromForm fills the request from multipart values. Numbers and booleans arrive as text;
// list fields accept either repeated values or a single JSON array.
func (r *SaveTourRequest) FromForm(form *multipart.Form) error {
	value := func(key string) string {
		if values := form.Value[key]; len(values) > 0 {
			return values[0]
		}

		return constant.Empty
	}

	r.ID = value(fieldID)
	r.Title = value(fieldTitle)
	r.Category = value(fieldCategory)
	r.Duration = value(fieldDuration)
	r.ShortDesc = value(fieldShortDesc)
	r.Description = value(fieldDescription)
	r.MeetingPoint = value(fieldMeetingPoint)
	r.GroupSize = value(fieldGroupSize)
	r.Location = value(fieldLocation)
	r.Featured = coerce.Bool(coerce.ParseBool(value(fieldFeatured)))

	if raw := value(fieldAvailable); raw != constant.Empty {
		available := coerce.Bool(coerce.ParseBool(raw))
		r.Available = &available
	}

	if raw := value(fieldPrice); raw != constant.Empty {
		price, err := coerce.ParseInt(raw)
		if err != nil {
			return invalidField(fieldPrice, err)
		}

		r.Price = coerce.Int(price)
	}

	if raw := value(fieldRating); raw != constant.Empty {
		rating, err := coerce.ParseFloat(raw)
		if err != nil {
			return invalidField(fieldRating, err)
		}

		r.Rating = coerce.Float(rating)
	}

	if raw := value(fieldReviewsCount); raw != constant.Empty {
		count, err := coerce.ParseInt(raw)
		if err != nil {
			return invalidField(fieldReviewsCount, err)
		}

		r.ReviewsCount = coerce.Int(count)
	}

	var err error

	for key, target := range map[string]*[]string{
		fieldImages:     &r.Images,
		fieldSchedule:   &r.Schedule,
		fieldHighlights: &r.Highlights,
	} {
		if *target, err = formList(form.Value[key]); err != nil {
			return invalidField(key, err)
		}
	}

	return nil
}

func formList(values []string) ([]string, error) {
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		var list []string
		if err := json.Unmarshal([]byte(values[0]), &list); err != nil {
			return nil, err
		}

		return list, nil
	}

	return values, nil
}

// ToModel builds the stored tour. Uploaded image paths win over images named in the payload.
// A tour is available unless the payload says otherwise.
func (r *SaveTourRequest) ToModel(uploaded []string) model.Tour {
	id := r.ID
	if id == constant.Empty {
		id = shared.NewTimeID(constant.IDPrefixTour)
	}

	images := r.Images
	if len(uploaded) > 0 {
		images = uploaded
	}

	if images == nil {
		images = []string{}
	}

	available := true
	if r.Available != nil {
		available = bool(*r.Available)
	}

	return model.Tour{
		ID:           id,
		Title:        r.Title,
		Category:     r.Category,
		Price:        int(r.Price),
		Duration:     r.Duration,
		ShortDesc:    r.ShortDesc,
		Description:  r.Description,
		Rating:       float64(r.Rating),
		ReviewsCount: int(r.ReviewsCount),
		Featured:     bool(r.Featured),
		Available:    available,
		Images:       images,
		Schedule:     r.Schedule,
		Highlights:   r.Highlights,
		MeetingPoint: r.MeetingPoint,
		GroupSize:    r.GroupSize,
		Location:     r.Location,
		CreatedAt:    timezone.Stamp(),
	}
}

// UpdateTourRequest carries a partial tour. Absent fields keep their stored value.
type UpdateTourRequest struct {
	Title        *string       `json:"title"         validate:"omitempty,min=1"`
	Category     *string       `json:"category"`
	Price        *coerce.Int   `json:"price"         validate:"omitempty,gte=0"`
	Duration     *string       `json:"duration"`
	ShortDesc    *string       `json:"short_desc"`
	Description  *string       `json:"description"`
	Rating       *coerce.Float `json:"rating"        validate:"omitempty,gte=0,lte=5"`
	ReviewsCount *coerce.Int   `json:"reviews_count" validate:"omitempty,gte=0"`
	Featured     *coerce.Bool  `json:"featured"      swaggertype:"boolean"`
	Available    *coerce.Bool  `json:"available"     swaggertype:"boolean"`
	Images       *[]string     `json:"images"`
	Schedule     *[]string     `json:"schedule"`
	Highlights   *[]string     `json:"highlights"`
	MeetingPoint *string       `json:"meeting_point"`
	GroupSize    *string       `json:"group_size"`
	Location     *string       `json:"location"`
}

func (r *UpdateTourRequest) Apply(tour *model.Tour) {
	setString(&tour.Title, r.Title)
	setString(&tour.Category, r.Category)
	setString(&tour.Duration, r.Duration)
	setString(&tour.ShortDesc, r.ShortDesc)
	setString(&tour.Description, r.Description)
	setString(&tour.MeetingPoint, r.MeetingPoint)
	setString(&tour.GroupSize, r.GroupSize)
	setString(&tour.Location, r.Location)

	if v := coerce.IntPtr(r.Price); v != nil {
		tour.Price = *v
	}

	if v := coerce.FloatPtr(r.Rating); v != nil {
		tour.Rating = *v
	}

	if v := coerce.IntPtr(r.ReviewsCount); v != nil {
		tour.ReviewsCount = *v
	}

	if v := coerce.BoolPtr(r.Featured); v != nil {
		tour.Featured = *v
	}

	if v := coerce.BoolPtr(r.Available); v != nil {
		tour.Available = *v
	}

	if r.Images != nil {
		tour.Images = *r.Images
	}

	if r.Schedule != nil {
		tour.Schedule = *r.Schedule
	}

	if r.Highlights != nil {
		tour.Highlights = *r.Highlights
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

type SaveTourResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Tour    model.Tour `json:"tour"`
}

type GetToursRequest struct {
	Category  string
	Featured  string
	Available string
}

func (r *GetToursRequest) ToFilter() model.Filter {
	return model.Filter{
		Category:      r.Category,
		FeaturedOnly:  r.Featured == constant.TrueString,
		IncludeHidden: r.Available == constant.FalseString,
	}
}
