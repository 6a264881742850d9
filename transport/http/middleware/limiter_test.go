package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"halachi/config"
	otelMocks "halachi/infras/otel/mocks"
	cacheMocks "halachi/shared/cache/mocks"
	"halachi/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	tests := []struct {
		name      string
		enable    bool
		setupMock func()
		wantCode  int
	}{
		{
			name:      "disabled",
			enable:    false,
			setupMock: func() {},
			wantCode:  http.StatusOK,
		},
		{
			name:   "under limit",
			enable: true,
			setupMock: func() {
				mockCache.EXPECT().
					Increment(gomock.Any(), "limiter:/api/booking:203.0.113.9:test-agent", time.Minute).
					Return(int64(2), nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "over limit",
			enable: true,
			setupMock: func() {
				mockCache.EXPECT().
					Increment(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(3), nil)
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name:   "redis down lets the request through",
			enable: true,
			setupMock: func() {
				mockCache.EXPECT().
					Increment(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("connection refused"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			app := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(tt.enable), mockCache)
			handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/booking", nil)
			req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
			req.Header.Set("User-Agent", "test-agent")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
