package openweather

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const currentBody = `{
  "coord": {"lon": 72.8777, "lat": 19.076},
  "weather": [{"id": 501, "main": "Rain", "description": "moderate rain", "icon": "10d"}],
  "main": {"temp": 29.4, "feels_like": 35.1, "temp_min": 29, "temp_max": 30, "pressure": 1002, "humidity": 84},
  "wind": {"speed": 7.7, "deg": 250},
  "rain": {"1h": 3.2},
  "clouds": {"all": 90},
  "visibility": 4000,
  "dt": 1720000000,
  "timezone": 19800,
  "name": "Mumbai"
}`

const forecastBody = `{
  "cnt": 1,
  "list": [{"dt": 1720008000, "dt_txt": "2024-07-03 12:00:00",
            "main": {"temp": 28.9, "pressure": 1003, "humidity": 88},
            "weather": [{"id": 500, "main": "Rain", "description": "light rain"}],
            "wind": {"speed": 8.1, "deg": 255}, "pop": 0.9}],
  "city": {"name": "Mumbai", "country": "IN", "timezone": 19800}
}`

func testClient(t *testing.T, apiKey string) (*Client, *httptest.Server) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "metric", q.Get("units"))
		assert.Equal(t, apiKey, q.Get("appid"))
		assert.Equal(t, "19.076000", q.Get("lat"))
		assert.Equal(t, "72.877700", q.Get("lon"))
		_, _ = w.Write([]byte(currentBody))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(forecastBody))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return NewClientWithURLs(apiKey, srv.URL+"/weather", srv.URL+"/forecast", slog.New(slog.DiscardHandler)), srv
}

func TestClient_GetCurrent(t *testing.T) {
	client, _ := testClient(t, "test-key")

	resp, err := client.GetCurrent(context.Background(), 19.076, 72.8777)
	require.NoError(t, err)

	assert.Equal(t, 29.4, resp.Main.Temp)
	assert.Equal(t, 84.0, resp.Main.Humidity)
	assert.Equal(t, 1002.0, resp.Main.Pressure)
	assert.Equal(t, 7.7, resp.Wind.Speed)
	require.NotNil(t, resp.Rain)
	assert.Equal(t, 3.2, resp.Rain.OneHour)
	require.Len(t, resp.Weather, 1)
	assert.Equal(t, "moderate rain", resp.Weather[0].Description)
}

func TestClient_GetForecast(t *testing.T) {
	client, _ := testClient(t, "test-key")

	resp, err := client.GetForecast(context.Background(), 19.076, 72.8777)
	require.NoError(t, err)

	require.Len(t, resp.List, 1)
	assert.Equal(t, "2024-07-03 12:00:00", resp.List[0].DtTxt)
	assert.Equal(t, "Mumbai", resp.City.Name)
}

func TestClient_MissingAPIKey(t *testing.T) {
	client := NewClient("", slog.New(slog.DiscardHandler))
	assert.False(t, client.HasAPIKey())

	_, err := client.GetCurrent(context.Background(), 19.076, 72.8777)
	assert.True(t, errors.Is(err, ErrMissingAPIKey))
}
