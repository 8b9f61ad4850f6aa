package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func avServer(t *testing.T, body string) *AlphaVantage {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "TIME_SERIES_DAILY", r.URL.Query().Get("function"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	f := NewAlphaVantage("demo", "")
	f.BaseURL = srv.URL
	return f
}

func TestAlphaVantage_FetchDailyBars(t *testing.T) {
	// Dates deliberately out of order: the fetcher must sort ascending.
	f := avServer(t, `{
		"Time Series (Daily)": {
			"2024-01-03": {"1. open": "102.0", "2. high": "104.0", "3. low": "101.0", "4. close": "103.5", "5. volume": "1200"},
			"2024-01-01": {"1. open": "100.0", "2. high": "101.0", "3. low": "99.0", "4. close": "100.5", "5. volume": "1000"},
			"2024-01-02": {"1. open": "100.5", "2. high": "102.0", "3. low": "100.0", "4. close": "101.5", "5. volume": "1100"}
		}
	}`)

	bars, err := f.FetchDailyBars(context.Background(), "AAPL", 10)
	require.NoError(t, err)
	require.Len(t, bars, 3)

	assert.Equal(t, 100.0, bars[0].Open)
	assert.Equal(t, 100.5, bars[0].Close)
	assert.Equal(t, 103.5, bars[2].Close)
	assert.True(t, bars[0].Time.Before(bars[1].Time))
	assert.True(t, bars[1].Time.Before(bars[2].Time))
}

func TestAlphaVantage_TrimsToRequestedDays(t *testing.T) {
	f := avServer(t, `{
		"Time Series (Daily)": {
			"2024-01-01": {"1. open": "1", "2. high": "2", "3. low": "1", "4. close": "1.5", "5. volume": "10"},
			"2024-01-02": {"1. open": "2", "2. high": "3", "3. low": "2", "4. close": "2.5", "5. volume": "10"},
			"2024-01-03": {"1. open": "3", "2. high": "4", "3. low": "3", "4. close": "3.5", "5. volume": "10"}
		}
	}`)

	bars, err := f.FetchDailyBars(context.Background(), "AAPL", 2)
	require.NoError(t, err)
	require.Len(t, bars, 2)
	// Keeps the most recent days.
	assert.Equal(t, 2.5, bars[0].Close)
	assert.Equal(t, 3.5, bars[1].Close)
}

func TestAlphaVantage_APIError(t *testing.T) {
	f := avServer(t, `{"Error Message": "Invalid API call."}`)
	_, err := f.FetchDailyBars(context.Background(), "NOPE", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API call")
}

func TestAlphaVantage_RateLimited(t *testing.T) {
	f := avServer(t, `{"Note": "Thank you for using Alpha Vantage! Please slow down."}`)
	_, err := f.FetchDailyBars(context.Background(), "AAPL", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestAlphaVantage_EmptyPayload(t *testing.T) {
	f := avServer(t, `{}`)
	_, err := f.FetchDailyBars(context.Background(), "AAPL", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data")
}

func TestAlphaVantage_MalformedBar(t *testing.T) {
	f := avServer(t, `{
		"Time Series (Daily)": {
			"2024-01-01": {"1. open": "abc", "2. high": "2", "3. low": "1", "4. close": "1.5"}
		}
	}`)
	_, err := f.FetchDailyBars(context.Background(), "AAPL", 10)
	require.Error(t, err)
}

func TestGenerateBars(t *testing.T) {
	bars := GenerateBars(100, 50)
	require.Len(t, bars, 50)
	for i := 1; i < len(bars); i++ {
		assert.True(t, bars[i-1].Time.Before(bars[i].Time))
		assert.GreaterOrEqual(t, bars[i].High, bars[i].Low)
	}
}
