package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Observation is what a provider reports for one city and day.
type Observation struct {
	TempC     float64
	Condition string
}

// Provider fetches live conditions. daysAhead <= 0 asks for current
// weather, 1..5 for a forecast of the given date.
type Provider interface {
	Fetch(ctx context.Context, city string, daysAhead int, date string) (*Observation, error)
}

var ErrMalformedPayload = errors.New("malformed weather payload")

// WeatherAPIClient talks to a weatherapi.com compatible endpoint.
type WeatherAPIClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewWeatherAPIClient(baseURL, apiKey string, timeout time.Duration) *WeatherAPIClient {
	return &WeatherAPIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type condition struct {
	Text string `json:"text"`
}

type currentResponse struct {
	Current *struct {
		TempC     *float64  `json:"temp_c"`
		Condition condition `json:"condition"`
	} `json:"current"`
}

type forecastResponse struct {
	Forecast *struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				AvgTempC  *float64  `json:"avgtemp_c"`
				Condition condition `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

func (c *WeatherAPIClient) Fetch(ctx context.Context, city string, daysAhead int, date string) (*Observation, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("q", city)
	q.Set("lang", "fr")

	endpoint := "/current.json"
	if daysAhead > 0 {
		endpoint = "/forecast.json"
		// days counts today, so the target is entry daysAhead
		q.Set("days", strconv.Itoa(daysAhead+1))
	}

	body, err := c.get(ctx, c.baseURL+endpoint+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	if daysAhead <= 0 {
		var resp currentResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		if resp.Current == nil || resp.Current.TempC == nil || resp.Current.Condition.Text == "" {
			return nil, ErrMalformedPayload
		}
		return &Observation{TempC: *resp.Current.TempC, Condition: resp.Current.Condition.Text}, nil
	}

	var resp forecastResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if resp.Forecast == nil || len(resp.Forecast.ForecastDay) == 0 {
		return nil, ErrMalformedPayload
	}

	days := resp.Forecast.ForecastDay
	day := days[len(days)-1]
	for _, d := range days {
		if d.Date == date {
			day = d
			break
		}
	}
	if day.Day.AvgTempC == nil || day.Day.Condition.Text == "" {
		return nil, ErrMalformedPayload
	}
	return &Observation{TempC: *day.Day.AvgTempC, Condition: day.Day.Condition.Text}, nil
}

func (c *WeatherAPIClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather api error: status %d", resp.StatusCode)
	}
	return body, nil
}
