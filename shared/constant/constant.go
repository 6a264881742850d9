package constant

import (
	"time"
)

const (
	RequestParamID       = "id"
	RequestParamCategory = "category"
	RequestParamFeatured = "featured"
	RequestParamAvail    = "available"
	RequestParamStatus   = "status"
	RequestMaxMemory     = 10 << 20 // 10 MB
)

const (
	FormFieldImage  = "image"
	FormFieldImages = "images"
)

const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldStatus    = "status"
)

const (
	// DateFormat matches the ISO-8601 form with milliseconds stored in the data files.
	DateFormat = "2006-01-02T15:04:05.000Z07:00"
)

const (
	TrueString  = "true"
	FalseString = "false"
)

const (
	DefaultSiteName      = "Халачи"
	DefaultCategoryIcon  = "🗺️"
	DefaultCategoryColor = "#0EA5E9"
	BookingStatusNew     = "new"
)

const (
	IDPrefixTour = "tour_"
	IDPrefixRoom = "room_"
	IDPrefixRev  = "rev_"
)

const (
	FilePermission = 0o644
	DirPermission  = 0o755
	JSONExtension  = ".json"
	JSONIndent     = "  "
)

const (
	ShutdownTimeout = 10 * time.Second
	KafkaTimeout    = 3 * time.Second
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelStoreScopeName      = "store"

	OtelS3ScopeName    = "s3"
	OtelKafkaScopeName = "kafka"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeMultipartFormData = "multipart/form-data"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorUnauthorized         = "Unauthorized"
	ResponseErrorSave                 = "Ошибка сохранения"
)

const (
	ServerEnvDevelopment = "development"
)

const (
	StorageDriverS3 = "s3"
)

const (
	Empty = ""
)
