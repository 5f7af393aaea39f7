package countryatlas

import (
	"net/http"
	"time"
)

type ClientOption func(*Client)

func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

func WithPerPage(n int) ClientOption {
	return func(c *Client) {
		c.perPage = n
	}
}

func WithDate(date string) ClientOption {
	return func(c *Client) {
		c.date = date
	}
}

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func WithRequestLogging(logger Logger) ClientOption {
	return func(c *Client) {
		c.httpClient.Transport = LoggingTransport(logger, c.httpClient.Transport)
	}
}

func WithClientConfig(cfg Config) ClientOption {
	return func(c *Client) {
		c.baseURL = cfg.BaseURL
		c.perPage = cfg.PerPage
		c.date = cfg.Date
		c.httpClient.Timeout = cfg.Timeout()
	}
}

type AggregatorOption func(*Aggregator)

func WithLogger(logger Logger) AggregatorOption {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

func WithMetrics(m Metrics) AggregatorOption {
	return func(a *Aggregator) {
		a.metrics = m
	}
}

func WithIndicators(population, gdp string) AggregatorOption {
	return func(a *Aggregator) {
		a.populationIndicator = population
		a.gdpIndicator = gdp
	}
}

func WithDirectorySource(src DirectorySource) AggregatorOption {
	return func(a *Aggregator) {
		a.directory = src
	}
}

func WithIndicatorSource(src IndicatorSource) AggregatorOption {
	return func(a *Aggregator) {
		a.indicators = src
	}
}

type SessionOption func(*Session)

func WithSessionLogger(logger Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}
