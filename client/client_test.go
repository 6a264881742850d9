package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"halachi/client"
	categoryDto "halachi/internal/domains/category/model/dto"
	hotelDto "halachi/internal/domains/hotel/model/dto"
	reviewDto "halachi/internal/domains/review/model/dto"
	seoDto "halachi/internal/domains/seo/model/dto"
	"halachi/shared/coerce"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	body   map[string]any
}

type fakeServer struct {
	dataHits atomic.Int32
	name     atomic.Value
	last     atomic.Value
}

func newFakeServer(t *testing.T) (*fakeServer, *httptest.Server) {
	t.Helper()

	fake := &fakeServer{}
	fake.name.Store("Халачи")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/data", func(w http.ResponseWriter, _ *http.Request) {
		fake.dataHits.Add(1)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"hotel": map[string]any{"name": fake.name.Load()},
			"tours": []any{
				map[string]any{"id": "t1", "title": "Дербент", "images": []string{"/images/derbent.jpg"}},
			},
			"categories": []any{map[string]any{"id": "sea", "name": "Морские"}},
		})
	})
	mux.HandleFunc("POST /api/admin/categories", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Admin-Password") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))

			return
		}

		fake.name.Store("Халачи 2")
		_, _ = w.Write([]byte(`{"success":true,"message":"Категория сохранена"}`))
	})
	mux.HandleFunc("/api/admin/", func(w http.ResponseWriter, r *http.Request) {
		req := recorded{method: r.Method, path: r.URL.Path}
		_ = json.NewDecoder(r.Body).Decode(&req.body)
		fake.last.Store(req)

		_, _ = w.Write([]byte(`{"success":true}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return fake, server
}

func TestAdmin_DataIsCachedUntilChange(t *testing.T) {
	fake, server := newFakeServer(t)
	admin := client.NewAdmin(server.URL, "secret", server.Client())
	ctx := context.Background()

	doc, err := admin.Data(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Халачи", doc.Hotel.Name)

	_, err = admin.Data(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), fake.dataHits.Load())

	require.NoError(t, admin.SaveCategory(ctx, categoryDto.SaveCategoryRequest{ID: "sea", Name: "Морские"}))

	doc, err = admin.Data(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Халачи 2", doc.Hotel.Name)
	assert.Equal(t, int32(2), fake.dataHits.Load())
}

func TestAdmin_FailedChangeKeepsCache(t *testing.T) {
	fake, server := newFakeServer(t)
	admin := client.NewAdmin(server.URL, "wrong", server.Client())
	ctx := context.Background()

	_, err := admin.Data(ctx)
	require.NoError(t, err)

	err = admin.SaveCategory(ctx, categoryDto.SaveCategoryRequest{ID: "sea", Name: "Морские"})

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Unauthorized", apiErr.Message)

	_, err = admin.Data(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), fake.dataHits.Load())
}

func TestAdmin_DataReturnsIndependentCopies(t *testing.T) {
	fake, server := newFakeServer(t)
	admin := client.NewAdmin(server.URL, "secret", server.Client())
	ctx := context.Background()

	doc, err := admin.Data(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Tours, 1)
	require.Len(t, doc.Categories, 1)

	doc.Hotel.Name = "changed"
	doc.Tours[0].Title = "changed"
	doc.Tours[0].Images[0] = "changed"
	doc.Categories[0].Name = "changed"
	doc.Tours = append(doc.Tours, doc.Tours[0])

	again, err := admin.Data(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Халачи", again.Hotel.Name)
	require.Len(t, again.Tours, 1)
	assert.Equal(t, "Дербент", again.Tours[0].Title)
	assert.Equal(t, []string{"/images/derbent.jpg"}, again.Tours[0].Images)
	assert.Equal(t, "Морские", again.Categories[0].Name)
	assert.Equal(t, int32(1), fake.dataHits.Load())
}

func TestAdmin_ChangesDropTheCache(t *testing.T) {
	name := "Халачи 2"
	title := "Халачи: главная"
	rating := coerce.Int(5)

	tests := []struct {
		name   string
		change func(ctx context.Context, admin *client.Admin) error
		method string
		path   string
		check  func(t *testing.T, body map[string]any)
	}{
		{
			name: "update hotel",
			change: func(ctx context.Context, admin *client.Admin) error {
				return admin.UpdateHotel(ctx, hotelDto.UpdateHotelRequest{Name: &name})
			},
			method: http.MethodPost,
			path:   "/api/admin/hotel",
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, name, body["name"])
				assert.NotContains(t, body, "amenities")
				assert.NotContains(t, body, "testimonials")
			},
		},
		{
			name: "set visitor count",
			change: func(ctx context.Context, admin *client.Admin) error {
				return admin.SetVisitorCount(ctx, 1520)
			},
			method: http.MethodPost,
			path:   "/api/admin/visitor-count",
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, map[string]any{"count": float64(1520)}, body)
			},
		},
		{
			name: "create room",
			change: func(ctx context.Context, admin *client.Admin) error {
				res, err := admin.CreateRoom(ctx, hotelDto.SaveRoomRequest{Name: "Люкс", PriceFrom: 4500})
				assert.True(t, res.Success)

				return err
			},
			method: http.MethodPost,
			path:   "/api/admin/rooms",
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Люкс", body["name"])
				assert.Equal(t, float64(4500), body["price_from"])
			},
		},
		{
			name: "update room",
			change: func(ctx context.Context, admin *client.Admin) error {
				return admin.UpdateRoom(ctx, "r1", hotelDto.UpdateRoomRequest{Name: &name})
			},
			method: http.MethodPut,
			path:   "/api/admin/rooms/r1",
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, name, body["name"])
			},
		},
		{
			name: "delete room",
			change: func(ctx context.Context, admin *client.Admin) error {
				return admin.DeleteRoom(ctx, "r1")
			},
			method: http.MethodDelete,
			path:   "/api/admin/rooms/r1",
		},
		{
			name: "create review",
			change: func(ctx context.Context, admin *client.Admin) error {
				res, err := admin.CreateReview(ctx, reviewDto.CreateReviewRequest{
					SubmitReviewRequest: reviewDto.SubmitReviewRequest{Name: "Анна", Rating: &rating, Text: "Отлично"},
					Status:              "approved",
				})
				assert.True(t, res.Success)

				return err
			},
			method: http.MethodPost,
			path:   "/api/admin/reviews",
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, float64(5), body["rating"])
				assert.Equal(t, "approved", body["status"])
			},
		},
		{
			name: "approve review",
			change: func(ctx context.Context, admin *client.Admin) error {
				return admin.ApproveReview(ctx, "rev1")
			},
			method: http.MethodPut,
			path:   "/api/admin/reviews/rev1/approve",
		},
		{
			name: "reject review",
			change: func(ctx context.Context, admin *client.Admin) error {
				return admin.RejectReview(ctx, "rev1")
			},
			method: http.MethodPut,
			path:   "/api/admin/reviews/rev1/reject",
		},
		{
			name: "delete review",
			change: func(ctx context.Context, admin *client.Admin) error {
				return admin.DeleteReview(ctx, "rev1")
			},
			method: http.MethodDelete,
			path:   "/api/admin/reviews/rev1",
		},
		{
			name: "update seo",
			change: func(ctx context.Context, admin *client.Admin) error {
				return admin.UpdateSEO(ctx, seoDto.UpdateSEORequest{
					Pages: map[string]seoDto.UpdatePageRequest{"home": {Title: &title}},
				})
			},
			method: http.MethodPost,
			path:   "/api/admin/seo",
			check: func(t *testing.T, body map[string]any) {
				require.Contains(t, body, "home")
				assert.Equal(t, title, body["home"].(map[string]any)["title"])
			},
		},
		{
			name: "delete tour",
			change: func(ctx context.Context, admin *client.Admin) error {
				return admin.DeleteTour(ctx, "t1")
			},
			method: http.MethodDelete,
			path:   "/api/admin/tours/t1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake, server := newFakeServer(t)
			admin := client.NewAdmin(server.URL, "secret", server.Client())
			ctx := context.Background()

			_, err := admin.Data(ctx)
			require.NoError(t, err)

			require.NoError(t, tt.change(ctx, admin))

			req, ok := fake.last.Load().(recorded)
			require.True(t, ok)
			assert.Equal(t, tt.method, req.method)
			assert.Equal(t, tt.path, req.path)

			if tt.check != nil {
				tt.check(t, req.body)
			} else {
				assert.Nil(t, req.body)
			}

			_, err = admin.Data(ctx)
			require.NoError(t, err)
			assert.Equal(t, int32(2), fake.dataHits.Load())
		})
	}
}
