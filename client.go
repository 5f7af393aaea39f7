package countryatlas

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const maxResponseBytes = 8 << 20

// Client fetches the country directory and indicator series from the data
// provider.
type Client struct {
	baseURL    string
	perPage    int
	date       string
	httpClient *http.Client
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		perPage:    DefaultPerPage,
		date:       DefaultDate,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Countries(ctx context.Context) ([]Country, error) {
	endpoint := fmt.Sprintf("%s/country?format=json&per_page=%d", c.baseURL, c.perPage)
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return decodeDirectory(endpoint, body)
}

func (c *Client) Indicator(ctx context.Context, indicator string) ([]IndicatorRecord, error) {
	endpoint := fmt.Sprintf("%s/country/all/indicator/%s?format=json&per_page=%d&date=%s",
		c.baseURL, indicator, c.perPage, c.date)
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return decodeIndicator(endpoint, body)
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, NewTransportError(endpoint, 0, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, NewTransportError(endpoint, 0, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		io.Copy(io.Discard, resp.Body)
		return nil, NewTransportError(endpoint, resp.StatusCode, nil)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, NewTransportError(endpoint, 0, err)
	}
	return body, nil
}
