package http_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"halachi/config"
	"halachi/infras/filestore"
	"halachi/infras/kafka"
	"halachi/infras/otel/mocks"
	bookingRepository "halachi/internal/domains/booking/repository"
	bookingService "halachi/internal/domains/booking/service"
	categoryRepository "halachi/internal/domains/category/repository"
	categoryService "halachi/internal/domains/category/service"
	hotelRepository "halachi/internal/domains/hotel/repository"
	hotelService "halachi/internal/domains/hotel/service"
	mediaService "halachi/internal/domains/media/service"
	mediaStorage "halachi/internal/domains/media/storage"
	reviewRepository "halachi/internal/domains/review/repository"
	reviewService "halachi/internal/domains/review/service"
	seoRepository "halachi/internal/domains/seo/repository"
	seoService "halachi/internal/domains/seo/service"
	siteService "halachi/internal/domains/site/service"
	tourRepository "halachi/internal/domains/tour/repository"
	tourService "halachi/internal/domains/tour/service"
	bookingHandler "halachi/internal/handlers/booking"
	categoryHandler "halachi/internal/handlers/category"
	hotelHandler "halachi/internal/handlers/hotel"
	mediaHandler "halachi/internal/handlers/media"
	reviewHandler "halachi/internal/handlers/review"
	seoHandler "halachi/internal/handlers/seo"
	siteHandler "halachi/internal/handlers/site"
	tourHandler "halachi/internal/handlers/tour"
	cacheMocks "halachi/shared/cache/mocks"
	"halachi/shared/timezone"
	transportHTTP "halachi/transport/http"
	"halachi/transport/http/middleware"
	"halachi/transport/http/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const adminSecret = "halachi2024"

type app struct {
	handler   http.Handler
	cfg       *config.Config
	uploadDir string
}

func newApp(t *testing.T) *app {
	t.Helper()

	root := t.TempDir()

	cfg := &config.Config{}
	cfg.App.Name = "halachi"
	cfg.App.Admin.Secrets = []string{adminSecret, "admin123"}
	cfg.App.Admin.Header = "X-Admin-Password"
	cfg.App.Admin.QueryParam = "admin_password"
	cfg.Storage.DataFile = filepath.Join(root, "data", "database.json")
	cfg.Storage.BookingsDir = filepath.Join(root, "data", "bookings")
	cfg.Storage.PublicDir = filepath.Join(root, "public")
	cfg.Storage.UploadDir = filepath.Join(root, "public", "images", "uploads")
	cfg.Storage.PublicPath = "/images/uploads"
	cfg.Storage.Driver = "local"
	cfg.Storage.MaxUploadMB = 5
	cfg.Storage.MaxUploadFiles = 5

	ot := mocks.NewOtel()
	ctrl := gomock.NewController(t)

	appMiddleware := middleware.NewAppMiddleware(ot, cfg, cacheMocks.NewMockRedisCache(ctrl))
	store := filestore.New(cfg, ot)
	bookings := bookingRepository.New(cfg, ot)
	publisher := kafka.New(cfg, ot)
	media := mediaService.New(mediaStorage.New(cfg, ot), cfg, ot)

	handlers := router.DomainHandlers{
		Site:     siteHandler.New(siteService.New(store, bookings, ot), ot),
		Hotel:    hotelHandler.New(hotelService.New(hotelRepository.New(store, ot), ot), ot),
		Tour:     tourHandler.New(tourService.New(tourRepository.New(store, ot), ot), media, ot),
		Category: categoryHandler.New(categoryService.New(categoryRepository.New(store, ot), ot), ot),
		Review:   reviewHandler.New(reviewService.New(reviewRepository.New(store, ot), ot), appMiddleware, ot),
		SEO:      seoHandler.New(seoService.New(seoRepository.New(store, ot), ot), ot),
		Booking:  bookingHandler.New(bookingService.New(bookings, publisher, ot), appMiddleware, ot),
		Media:    mediaHandler.New(media, ot),
	}

	admin := middleware.NewAdminMiddleware(middleware.NewStaticAuthorizer(cfg), cfg)
	server := transportHTTP.New(cfg, router.New(handlers, admin, cfg), appMiddleware, ot, publisher)

	return &app{
		handler:   server.Handler(),
		cfg:       cfg,
		uploadDir: cfg.Storage.UploadDir,
	}
}

func (a *app) do(t *testing.T, method, target, body string, admin bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if admin {
		req.Header.Set("X-Admin-Password", adminSecret)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func TestTourWithCategory(t *testing.T) {
	a := newApp(t)

	rec := a.do(t, http.MethodPost, "/api/admin/categories", `{"id":"sea","name":"Морские"}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = a.do(t, http.MethodPost, "/api/admin/tours", `{"title":"Тур 1","category":"sea","price":"1500"}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	saved := decode[map[string]any](t, rec)
	assert.Equal(t, true, saved["success"])

	rec = a.do(t, http.MethodGet, "/api/tours?category=sea", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	tours := decode[[]map[string]any](t, rec)
	require.Len(t, tours, 1)
	assert.Equal(t, float64(1500), tours[0]["price"])
	assert.Equal(t, "sea", tours[0]["category"])

	rec = a.do(t, http.MethodGet, "/api/tours?category=city", "", false)
	assert.Empty(t, decode[[]map[string]any](t, rec))

	id := tours[0]["id"].(string)
	require.Equal(t, http.StatusOK, a.do(t, http.MethodPut, "/api/admin/tours/"+id, `{"available":false}`, true).Code)
	assert.Empty(t, decode[[]map[string]any](t, a.do(t, http.MethodGet, "/api/tours", "", false)))
	assert.Len(t, decode[[]map[string]any](t, a.do(t, http.MethodGet, "/api/tours?available=false", "", false)), 1)

	rec = a.do(t, http.MethodPost, "/api/admin/tours", `{"title":"Плохая цена","price":"abc"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnauthorizedChangesNothing(t *testing.T) {
	a := newApp(t)

	require.Equal(t, http.StatusOK, a.do(t, http.MethodPost, "/api/admin/categories", `{"id":"sea","name":"Морские"}`, true).Code)

	before := a.do(t, http.MethodGet, "/api/data", "", false).Body.String()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/categories", strings.NewReader(`{"id":"city","name":"Город"}`))
	req.Header.Set("X-Admin-Password", "guess")
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())

	rec = a.do(t, http.MethodDelete, "/api/admin/categories/sea", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	after := a.do(t, http.MethodGet, "/api/data", "", false).Body.String()
	assert.Equal(t, before, after)
}

func TestAdminSecretFromQuery(t *testing.T) {
	a := newApp(t)

	rec := a.do(t, http.MethodGet, "/api/admin/stats?admin_password=admin123", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decode[map[string]any](t, rec)
	assert.Equal(t, float64(0), stats["total_tours"])
	assert.Equal(t, float64(0), stats["avg_rating"])
}

func TestCategoryLifecycle(t *testing.T) {
	a := newApp(t)

	for range 2 {
		rec := a.do(t, http.MethodPost, "/api/admin/categories", `{"id":"sea","name":"Морские"}`, true)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	categories := decode[[]map[string]any](t, a.do(t, http.MethodGet, "/api/categories", "", false))
	require.Len(t, categories, 1)
	assert.Equal(t, float64(1), categories[0]["order"])

	rec := a.do(t, http.MethodPost, "/api/admin/tours", `{"id":"t1","title":"Тур","category":"sea"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(t, http.MethodDelete, "/api/admin/categories/sea", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, categoryService.MessageCategoryInUse, decode[map[string]string](t, rec)["error"])

	require.Equal(t, http.StatusOK, a.do(t, http.MethodDelete, "/api/admin/tours/t1", "", true).Code)
	require.Equal(t, http.StatusOK, a.do(t, http.MethodDelete, "/api/admin/categories/sea", "", true).Code)
	assert.Equal(t, http.StatusNotFound, a.do(t, http.MethodDelete, "/api/admin/categories/sea", "", true).Code)
}

func TestUploadRejectsDisguisedText(t *testing.T) {
	a := newApp(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("just some text"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Admin-Password", adminSecret)

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	entries, _ := os.ReadDir(a.uploadDir)
	assert.Empty(t, entries)

	rec = a.do(t, http.MethodPost, "/api/admin/upload", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 32)...)

type formFile struct {
	name string
	data []byte
}

func (a *app) postTourForm(t *testing.T, values map[string]string, files ...formFile) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range values {
		require.NoError(t, writer.WriteField(key, value))
	}

	for _, file := range files {
		part, err := writer.CreateFormFile("images", file.name)
		require.NoError(t, err)

		_, err = part.Write(file.data)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/tours", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Admin-Password", adminSecret)

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	return rec
}

func (a *app) uploads(t *testing.T) []string {
	t.Helper()

	entries, _ := os.ReadDir(a.uploadDir)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names
}

func TestSaveTourWithImages(t *testing.T) {
	a := newApp(t)

	rec := a.postTourForm(t, map[string]string{"title": "Сулакский каньон", "price": "1500"},
		formFile{name: "canyon.png", data: pngBytes})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	saved := decode[struct {
		Success bool `json:"success"`
		Tour    struct {
			ID     string   `json:"id"`
			Price  int      `json:"price"`
			Images []string `json:"images"`
		} `json:"tour"`
	}](t, rec)

	assert.True(t, saved.Success)
	assert.Equal(t, 1500, saved.Tour.Price)
	require.Len(t, saved.Tour.Images, 1)
	assert.True(t, strings.HasPrefix(saved.Tour.Images[0], "/images/uploads/"), saved.Tour.Images[0])
	assert.True(t, strings.HasSuffix(saved.Tour.Images[0], ".png"), saved.Tour.Images[0])

	files := a.uploads(t)
	require.Len(t, files, 1)
	assert.Equal(t, "/images/uploads/"+files[0], saved.Tour.Images[0])

	tour := decode[map[string]any](t, a.do(t, http.MethodGet, "/api/tours/"+saved.Tour.ID, "", false))
	assert.Equal(t, []any{saved.Tour.Images[0]}, tour["images"])
}

func TestSaveTourRejectsImagesWithoutWriting(t *testing.T) {
	sixImages := make([]formFile, 0, 6)
	for i := range 6 {
		sixImages = append(sixImages, formFile{name: "photo" + string(rune('a'+i)) + ".png", data: pngBytes})
	}

	tests := []struct {
		name    string
		files   []formFile
		message string
	}{
		{
			name:    "more than five images",
			files:   sixImages,
			message: "Можно загрузить не более 5 файлов",
		},
		{
			name: "text file among images",
			files: []formFile{
				{name: "canyon.png", data: pngBytes},
				{name: "notes.txt", data: []byte("just some text")},
			},
			message: "Только изображения разрешены!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newApp(t)

			rec := a.postTourForm(t, map[string]string{"title": "Сулакский каньон", "price": "1500"}, tt.files...)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, tt.message, decode[map[string]string](t, rec)["error"])

			assert.Empty(t, a.uploads(t))
			assert.Empty(t, decode[[]map[string]any](t, a.do(t, http.MethodGet, "/api/tours", "", false)))
		})
	}
}

func TestSaveTourRemovesImagesWhenNotSaved(t *testing.T) {
	a := newApp(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(a.cfg.Storage.DataFile), 0o755))
	require.NoError(t, os.WriteFile(a.cfg.Storage.DataFile, []byte(`{"tours": {"broken": true}}`), 0o644))

	rec := a.postTourForm(t, map[string]string{"title": "Сулакский каньон", "price": "1500"},
		formFile{name: "canyon.png", data: pngBytes})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Ошибка сохранения", decode[map[string]string](t, rec)["error"])

	assert.Empty(t, a.uploads(t))
}

func TestMalformedRequestsGetAShortMessage(t *testing.T) {
	a := newApp(t)

	rec := a.do(t, http.MethodPost, "/api/admin/categories", `{"id":`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Некорректные данные запроса"}`, rec.Body.String())

	rec = a.postTourForm(t, map[string]string{"title": "Сулакский каньон", "price": "abc"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Некорректные данные запроса"}`, rec.Body.String())
}

func TestBookingsNewestFirst(t *testing.T) {
	a := newApp(t)

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	restore := timezone.SetClock(func() time.Time { return now })
	defer restore()

	rec := a.do(t, http.MethodPost, "/api/booking", `{"name":"Анна","id":"../../escape"}`, false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	first := decode[map[string]any](t, rec)
	assert.Equal(t, "Заявка принята!", first["message"])
	assert.Equal(t, "lvnnbr40", first["booking_id"])

	now = now.Add(time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/api/booking", strings.NewReader("name=%D0%91%D0%BE%D1%80%D0%B8%D1%81&phone=123"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = a.do(t, http.MethodGet, "/api/admin/bookings", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	bookings := decode[[]map[string]any](t, rec)
	require.Len(t, bookings, 2)
	assert.Equal(t, "Борис", bookings[0]["name"])
	assert.Equal(t, "Анна", bookings[1]["name"])
	assert.Equal(t, "new", bookings[1]["status"])

	_, err := os.Stat(filepath.Join(a.cfg.Storage.BookingsDir, "lvnnbr40.json"))
	assert.NoError(t, err)
}

func TestReviewModeration(t *testing.T) {
	a := newApp(t)

	rec := a.do(t, http.MethodPost, "/api/reviews", `{"name":"Анна","rating":"5","text":"Отлично"}`, false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	submitted := decode[struct {
		Review struct {
			ID string `json:"id"`
		} `json:"review"`
	}](t, rec)
	id := submitted.Review.ID
	require.NotEmpty(t, id)

	assert.Empty(t, decode[[]map[string]any](t, a.do(t, http.MethodGet, "/api/reviews", "", false)))

	require.Equal(t, http.StatusOK, a.do(t, http.MethodPut, "/api/admin/reviews/"+id+"/approve", "", true).Code)
	require.Equal(t, http.StatusOK, a.do(t, http.MethodPut, "/api/admin/reviews/"+id+"/approve", "", true).Code)

	assert.Len(t, decode[[]map[string]any](t, a.do(t, http.MethodGet, "/api/reviews", "", false)), 1)

	pending := decode[[]map[string]any](t, a.do(t, http.MethodGet, "/api/admin/reviews?status=pending", "", true))
	assert.Empty(t, pending)

	assert.Equal(t, http.StatusBadRequest, a.do(t, http.MethodGet, "/api/admin/reviews?status=lost", "", true).Code)
	assert.Equal(t, http.StatusNotFound, a.do(t, http.MethodPut, "/api/admin/reviews/missing/reject", "", true).Code)
}

func TestHealth(t *testing.T) {
	a := newApp(t)

	rec := a.do(t, http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())
}

func TestStaticFallback(t *testing.T) {
	a := newApp(t)

	require.NoError(t, os.MkdirAll(a.cfg.Storage.PublicDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(a.cfg.Storage.PublicDir, "index.html"), []byte("<h1>site</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(a.cfg.Storage.PublicDir, "admin.html"), []byte("<h1>admin</h1>"), 0o644))

	rec := a.do(t, http.MethodGet, "/tours/sea", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "site")

	rec = a.do(t, http.MethodGet, "/admin", "", false)
	assert.Contains(t, rec.Body.String(), "admin")
}
