package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"QuantSentinel/internal/model"
)

// AlphaVantage fetches daily bars from the Alpha Vantage TIME_SERIES_DAILY API.
type AlphaVantage struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewAlphaVantage creates a fetcher with optional proxy support.
func NewAlphaVantage(apiKey, proxyURL string) *AlphaVantage {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &AlphaVantage{
		BaseURL: "https://www.alphavantage.co",
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *AlphaVantage) Name() string { return "alphavantage" }

// avDailyResponse is the relevant slice of the TIME_SERIES_DAILY payload:
// a date-keyed map of stringified OHLCV fields.
type avDailyResponse struct {
	ErrorMessage string                       `json:"Error Message"`
	Note         string                       `json:"Note"`
	TimeSeries   map[string]map[string]string `json:"Time Series (Daily)"`
}

func (f *AlphaVantage) FetchDailyBars(ctx context.Context, ticker string, days int) ([]model.Bar, error) {
	outputSize := "compact"
	if days > 100 {
		outputSize = "full"
	}
	endpoint := fmt.Sprintf("%s/query?function=TIME_SERIES_DAILY&symbol=%s&outputsize=%s&apikey=%s",
		f.BaseURL, url.QueryEscape(ticker), outputSize, url.QueryEscape(f.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("alphavantage: status %d, body: %s", resp.StatusCode, string(body))
	}

	var payload avDailyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}
	if payload.ErrorMessage != "" {
		return nil, fmt.Errorf("alphavantage api error: %s", payload.ErrorMessage)
	}
	if payload.Note != "" {
		return nil, fmt.Errorf("alphavantage rate limited: %s", payload.Note)
	}
	if len(payload.TimeSeries) == 0 {
		return nil, fmt.Errorf("alphavantage: no data for %q", ticker)
	}

	bars := make([]model.Bar, 0, len(payload.TimeSeries))
	for date, fields := range payload.TimeSeries {
		t, err := time.Parse("2006-01-02", date)
		if err != nil {
			continue
		}
		bar, err := parseAVBar(t, fields)
		if err != nil {
			return nil, fmt.Errorf("alphavantage parse %s: %w", date, err)
		}
		bars = append(bars, bar)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })

	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}

func parseAVBar(t time.Time, fields map[string]string) (model.Bar, error) {
	get := func(key string) (float64, error) {
		raw, ok := fields[key]
		if !ok {
			return 0, fmt.Errorf("missing field %q", key)
		}
		return strconv.ParseFloat(raw, 64)
	}

	open, err := get("1. open")
	if err != nil {
		return model.Bar{}, err
	}
	high, err := get("2. high")
	if err != nil {
		return model.Bar{}, err
	}
	low, err := get("3. low")
	if err != nil {
		return model.Bar{}, err
	}
	closePrice, err := get("4. close")
	if err != nil {
		return model.Bar{}, err
	}
	volume, _ := get("5. volume") // optional

	return model.Bar{Time: t, Open: open, High: high, Low: low, Close: closePrice, Volume: volume}, nil
}
