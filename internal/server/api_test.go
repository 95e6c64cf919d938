package server

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-bikram-sambat/internal/config"
)

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestAPI_ToBS(t *testing.T) {
	resp := serve(newTestServer(), http.MethodGet, "/api/v1/convert/ad/2024-04-13?lang=en&format=DD+MMMM+YYYY", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeJSON, resp.Header.Get(config.HeaderContentType))

	got := decode[DateResponse](t, resp)
	assert.Equal(t, "2081-01-01", got.BS.String())
	assert.Equal(t, "2024-04-13", got.AD)
	assert.Equal(t, 2081, got.Year)
	assert.Equal(t, 1, got.Month)
	assert.Equal(t, 1, got.Day)
	assert.Equal(t, "Baisakh", got.MonthName)
	assert.Equal(t, "Saturday", got.Weekday)
	assert.Equal(t, 1, got.DayOfYear)
	assert.Equal(t, "01 Baisakh 2081", got.Formatted)
}

func TestAPI_ToBS_DefaultsToNepali(t *testing.T) {
	got := decode[DateResponse](t, serve(newTestServer(), http.MethodGet, "/api/v1/convert/ad/2024-04-13", nil))
	assert.Equal(t, "बैशाख", got.MonthName)
	assert.Equal(t, "शनिबार", got.Weekday)
	assert.Empty(t, got.Formatted)
}

func TestAPI_ToAD(t *testing.T) {
	got := decode[DateResponse](t, serve(newTestServer(), http.MethodGet, "/api/v1/convert/bs/2077-01-01?lang=en-US", nil))
	assert.Equal(t, "2020-04-13", got.AD)
	assert.Equal(t, "Monday", got.Weekday)
}

func TestAPI_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
	}{
		{"gregorian garbage", "/api/v1/convert/ad/not-a-date", http.StatusBadRequest},
		{"gregorian before table", "/api/v1/convert/ad/1900-01-01", http.StatusUnprocessableEntity},
		{"bs garbage", "/api/v1/convert/bs/hello", http.StatusBadRequest},
		{"bs day past month end", "/api/v1/convert/bs/2075-04-32", http.StatusBadRequest},
		{"bs year after table", "/api/v1/convert/bs/2095-01-01", http.StatusUnprocessableEntity},
		{"month not a number", "/api/v1/month/abc/1", http.StatusBadRequest},
		{"month out of range", "/api/v1/month/2077/13", http.StatusUnprocessableEntity},
		{"month year out of range", "/api/v1/month/1999/1", http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := serve(newTestServer(), http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.status, resp.StatusCode)
			body := decode[ErrorResponse](t, resp)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestAPI_Month(t *testing.T) {
	resp := serve(newTestServer(), http.MethodGet, "/api/v1/month/2075/3?lang=en", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decode[MonthResponse](t, resp)
	assert.Equal(t, 2075, got.Year)
	assert.Equal(t, 3, got.Month)
	assert.Equal(t, "Ashad", got.Name)
	assert.Equal(t, "Jestha", got.Previous)
	assert.Equal(t, "Shrawan", got.Next)
	require.Len(t, got.Days, 32)
	assert.Equal(t, "2075-03-32", got.Days[31].BS.String())

	// Consecutive days are consecutive Gregorian days.
	for i := 1; i < len(got.Days); i++ {
		prev, err := time.Parse(config.DateFormatFullDash, got.Days[i-1].AD)
		require.NoError(t, err)
		cur, err := time.Parse(config.DateFormatFullDash, got.Days[i].AD)
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, cur.Sub(prev))
	}
}

func TestAPI_Today(t *testing.T) {
	srv := newTestServer()
	srv.now = func() time.Time { return time.Date(2025, time.April, 14, 12, 0, 0, 0, time.UTC) }

	got := decode[DateResponse](t, serve(srv, http.MethodGet, "/api/v1/today", nil))
	assert.Equal(t, "2082-01-01", got.BS.String())
}

func TestAPI_RateLimited(t *testing.T) {
	srv := NewCalendarServer(Options{Port: 1, RateLimit: 0.001, RateBurst: 1})

	first := serve(srv, http.MethodGet, "/api/v1/convert/bs/2077-01-01", nil)
	_ = first.Body.Close()
	assert.Equal(t, http.StatusOK, first.StatusCode)

	second := serve(srv, http.MethodGet, "/api/v1/convert/bs/2077-01-01", nil)
	defer func() { _ = second.Body.Close() }()
	assert.Equal(t, http.StatusTooManyRequests, second.StatusCode)
	assert.NotEmpty(t, second.Header.Get(config.HeaderRetryAfter))

	feed := serve(srv, http.MethodGet, config.RouteCalendar, nil)
	_ = feed.Body.Close()
	assert.NotEqual(t, http.StatusTooManyRequests, feed.StatusCode, "The feed is not rate limited")
}

func TestMetrics_Exposed(t *testing.T) {
	srv := newTestServer()
	_ = serve(srv, http.MethodGet, "/api/v1/convert/bs/2077-01-01", nil).Body.Close()
	_ = serve(srv, http.MethodGet, "/api/v1/convert/bs/2095-01-01", nil).Body.Close()

	resp := serve(srv, http.MethodGet, config.RouteMetrics, nil)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(raw)
	assert.Contains(t, body, `bsdate_conversions_total{direction="bs_to_ad",result="ok"} 1`)
	assert.Contains(t, body, `bsdate_conversions_total{direction="bs_to_ad",result="out_of_range"} 1`)
	assert.Contains(t, body, `bsdate_http_requests_total{code="200",route="/api/v1/convert/bs/{date}"} 1`)
}

func TestCORS_Preflight(t *testing.T) {
	resp := serve(newTestServer(), http.MethodOptions, "/api/v1/today", http.Header{
		"Origin":                        {"http://example.com"},
		"Access-Control-Request-Method": {http.MethodGet},
	})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
