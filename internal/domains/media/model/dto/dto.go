package dto

import (
	"mime/multipart"
	"path/filepath"
	"strings"
)

// UploadImageRequest describes one uploaded file after its content has been sniffed.
type UploadImageRequest struct {
	Header      *multipart.FileHeader `json:"-"            swaggerignore:"true"`
	Extension   string                `json:"extension"    validate:"extensions=.jpg .jpeg .png .gif .webp"`
	ContentType string                `json:"content_type" validate:"mimetypes=image/jpeg image/png image/gif image/webp"`
	Size        int64                 `json:"size"         validate:"gt=0"`
}

func (r *UploadImageRequest) FromHeader(header *multipart.FileHeader, contentType string, size int64) {
	r.Header = header
	r.Extension = strings.ToLower(filepath.Ext(header.Filename))
	r.ContentType = contentType
	r.Size = size
}

type UploadImageResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}
