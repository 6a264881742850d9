// Package client talks to the admin API. It keeps the last /api/data snapshot and drops it
// after every successful change so the next read sees the new state. Data decodes a fresh
// document from the snapshot on every call, so callers own what they get back.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"halachi/infras/filestore"
	bookingModel "halachi/internal/domains/booking/model"
	categoryDto "halachi/internal/domains/category/model/dto"
	hotelDto "halachi/internal/domains/hotel/model/dto"
	reviewDto "halachi/internal/domains/review/model/dto"
	seoDto "halachi/internal/domains/seo/model/dto"
	siteModel "halachi/internal/domains/site/model"
	tourDto "halachi/internal/domains/tour/model/dto"
	"halachi/shared/coerce"
	"halachi/shared/constant"
	"halachi/transport/http/response"
)

const (
	pathData       = "/api/data"
	pathAdmin      = "/api/admin"
	pathHotel      = pathAdmin + "/hotel"
	pathVisitors   = pathAdmin + "/visitor-count"
	pathRooms      = pathAdmin + "/rooms"
	pathCategories = pathAdmin + "/categories"
	pathTours      = pathAdmin + "/tours"
	pathReviews    = pathAdmin + "/reviews"
	pathSEO        = pathAdmin + "/seo"
	pathBookings   = pathAdmin + "/bookings"
	pathStats      = pathAdmin + "/stats"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Admin struct {
	baseURL string
	secret  string
	header  string
	http    *http.Client

	mu     sync.Mutex
	cached json.RawMessage
}

// NewAdmin uses http.DefaultClient when httpClient is nil.
func NewAdmin(baseURL, secret string, httpClient *http.Client) *Admin {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Admin{
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		header:  "X-Admin-Password",
		http:    httpClient,
	}
}

// Data returns the site document, fetching it on first use or after a change.
func (a *Admin) Data(ctx context.Context) (filestore.Document, error) {
	raw, err := a.snapshot(ctx)
	if err != nil {
		return filestore.Document{}, err
	}

	var doc filestore.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return filestore.Document{}, fmt.Errorf("failed to decode data: %w", err)
	}

	return doc, nil
}

func (a *Admin) snapshot(ctx context.Context) (json.RawMessage, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cached != nil {
		return a.cached, nil
	}

	var raw json.RawMessage
	if err := a.do(ctx, http.MethodGet, pathData, nil, &raw); err != nil {
		return nil, err
	}

	a.cached = raw

	return raw, nil
}

func (a *Admin) Invalidate() {
	a.mu.Lock()
	a.cached = nil
	a.mu.Unlock()
}

func (a *Admin) UpdateHotel(ctx context.Context, req hotelDto.UpdateHotelRequest) error {
	return a.mutate(ctx, http.MethodPost, pathHotel, req, nil)
}

func (a *Admin) SetVisitorCount(ctx context.Context, count int) error {
	value := coerce.Int(count)

	return a.mutate(ctx, http.MethodPost, pathVisitors, hotelDto.VisitorCountRequest{Count: &value}, nil)
}

func (a *Admin) CreateRoom(ctx context.Context, req hotelDto.SaveRoomRequest) (hotelDto.SaveRoomResponse, error) {
	var res hotelDto.SaveRoomResponse

	err := a.mutate(ctx, http.MethodPost, pathRooms, req, &res)

	return res, err
}

func (a *Admin) UpdateRoom(ctx context.Context, id string, req hotelDto.UpdateRoomRequest) error {
	return a.mutate(ctx, http.MethodPut, pathRooms+"/"+id, req, nil)
}

func (a *Admin) DeleteRoom(ctx context.Context, id string) error {
	return a.mutate(ctx, http.MethodDelete, pathRooms+"/"+id, nil, nil)
}

func (a *Admin) SaveCategory(ctx context.Context, req categoryDto.SaveCategoryRequest) error {
	return a.mutate(ctx, http.MethodPost, pathCategories, req, nil)
}

func (a *Admin) DeleteCategory(ctx context.Context, id string) error {
	return a.mutate(ctx, http.MethodDelete, pathCategories+"/"+id, nil, nil)
}

func (a *Admin) SaveTour(ctx context.Context, req tourDto.SaveTourRequest) (tourDto.SaveTourResponse, error) {
	var res tourDto.SaveTourResponse

	err := a.mutate(ctx, http.MethodPost, pathTours, req, &res)

	return res, err
}

func (a *Admin) DeleteTour(ctx context.Context, id string) error {
	return a.mutate(ctx, http.MethodDelete, pathTours+"/"+id, nil, nil)
}

func (a *Admin) CreateReview(ctx context.Context, req reviewDto.CreateReviewRequest) (reviewDto.SaveReviewResponse, error) {
	var res reviewDto.SaveReviewResponse

	err := a.mutate(ctx, http.MethodPost, pathReviews, req, &res)

	return res, err
}

func (a *Admin) ApproveReview(ctx context.Context, id string) error {
	return a.mutate(ctx, http.MethodPut, pathReviews+"/"+id+"/approve", nil, nil)
}

func (a *Admin) RejectReview(ctx context.Context, id string) error {
	return a.mutate(ctx, http.MethodPut, pathReviews+"/"+id+"/reject", nil, nil)
}

func (a *Admin) DeleteReview(ctx context.Context, id string) error {
	return a.mutate(ctx, http.MethodDelete, pathReviews+"/"+id, nil, nil)
}

// UpdateSEO merges the given pages into the stored SEO settings.
func (a *Admin) UpdateSEO(ctx context.Context, req seoDto.UpdateSEORequest) error {
	return a.mutate(ctx, http.MethodPost, pathSEO, req, nil)
}

func (a *Admin) Bookings(ctx context.Context) ([]bookingModel.Booking, error) {
	var bookings []bookingModel.Booking

	err := a.do(ctx, http.MethodGet, pathBookings, nil, &bookings)

	return bookings, err
}

func (a *Admin) Stats(ctx context.Context) (siteModel.Stats, error) {
	var stats siteModel.Stats

	err := a.do(ctx, http.MethodGet, pathStats, nil, &stats)

	return stats, err
}

// mutate drops the cached document only when the server accepted the change.
func (a *Admin) mutate(ctx context.Context, method, path string, body, out any) error {
	if err := a.do(ctx, method, path, body, out); err != nil {
		return err
	}

	a.Invalidate()

	return nil
}

func (a *Admin) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set(a.header, a.secret)

	if body != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	res, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer res.Body.Close() //nolint:errcheck

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{Status: res.StatusCode}

		var errBody response.Error
		if json.NewDecoder(res.Body).Decode(&errBody) == nil {
			apiErr.Message = errBody.Error
		}

		return apiErr
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
