package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenit/huella-digital/internal/domain"
	"github.com/greenit/huella-digital/internal/service"
	"github.com/greenit/huella-digital/internal/storage/memory"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	Register(app, service.New(memory.New(), 0))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return out
}

func TestHealth(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	assert.Equal(t, true, body["ok"])
}

func TestSaveCalculation(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/calculations", `{
		"stream_video_hours_week": 10,
		"gaming_hours_week": 5,
		"videocalls_hours_week": 2,
		"social_hours_week": 3,
		"cloud_hours_week": 1
	}`)
	require.Equal(t, 201, resp.StatusCode)

	row := decode[domain.Calculation](t, resp)
	assert.Equal(t, int64(1), row.ID)
	assert.False(t, row.CreatedAt.IsZero())
	assert.InDelta(t, 7.7341, row.TotalKWhMonth, 1e-9)
	assert.InDelta(t, 3.480345, row.TotalCO2Month, 1e-9)
	assert.Equal(t, "Low", row.Level)
	assert.Equal(t, "Streaming", row.TopContribution)
}

func TestSaveIgnoresClientTotals(t *testing.T) {
	app := newTestApp()

	// a tampered client claims absurd precomputed totals
	resp := postJSON(t, app, "/api/calculations", `{
		"stream_video_hours_week": 10,
		"total_kwh_month": 9999,
		"total_co2_month": 9999,
		"level": "High",
		"top_contribution": "Cloud"
	}`)
	require.Equal(t, 201, resp.StatusCode)

	row := decode[domain.Calculation](t, resp)
	assert.InDelta(t, 10*0.08*4.345, row.TotalKWhMonth, 1e-9)
	assert.Equal(t, "Low", row.Level)
	assert.Equal(t, "Streaming", row.TopContribution)
	assert.InDelta(t, row.TotalKWhMonth*row.CO2PerKWh, row.TotalCO2Month, 1e-9)
}

func TestSaveCoercesMalformedFields(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/calculations", `{
		"stream_video_hours_week": "abc",
		"gaming_hours_week": "5",
		"social_hours_week": null
	}`)
	require.Equal(t, 201, resp.StatusCode)

	row := decode[domain.Calculation](t, resp)
	assert.Zero(t, row.StreamHoursWeek, `"abc" behaves as 0`)
	assert.Equal(t, 5.0, row.GamingHoursWeek, "numeric strings are accepted")
	assert.Zero(t, row.SocialHoursWeek)
}

func TestSaveRejectsInvalidJSON(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/calculations", `{not json`)
	assert.Equal(t, 400, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	assert.Equal(t, false, body["ok"])
}

func TestListNewestFirst(t *testing.T) {
	app := newTestApp()

	for _, hours := range []string{"1", "2", "3"} {
		resp := postJSON(t, app, "/api/calculations", `{"stream_video_hours_week": `+hours+`}`)
		require.Equal(t, 201, resp.StatusCode)
		resp.Body.Close()
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/calculations", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	rows := decode[[]domain.Calculation](t, resp)
	require.Len(t, rows, 3)
	assert.Equal(t, 3.0, rows[0].StreamHoursWeek)
	assert.Equal(t, 1.0, rows[2].StreamHoursWeek)
}

func TestListLimitParam(t *testing.T) {
	app := newTestApp()

	for i := 0; i < 4; i++ {
		resp := postJSON(t, app, "/api/calculations", `{}`)
		require.Equal(t, 201, resp.StatusCode)
		resp.Body.Close()
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/calculations?limit=2", nil))
	require.NoError(t, err)
	rows := decode[[]domain.Calculation](t, resp)
	assert.Len(t, rows, 2)
}

func TestListEmptyIsArray(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/calculations", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(raw)))
}
