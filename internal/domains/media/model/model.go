package model

const (
	EntityName = "media"

	// AllowedExtensions and AllowedMimeTypes are space separated for the validator tags.
	AllowedExtensions = ".jpg .jpeg .png .gif .webp"
	AllowedMimeTypes  = "image/jpeg image/png image/gif image/webp"
)

// Image is an accepted upload waiting to be written.
type Image struct {
	Name        string
	ContentType string
	Data        []byte
}
