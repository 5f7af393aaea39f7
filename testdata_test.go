package countryatlas_test

import (
	"context"
	"sync"
	"time"

	"github.com/nulllvoid/countryatlas"
)

const directoryBody = `[
  { "page": 1, "pages": 1, "per_page": "400", "total": 4 },
  [
    { "id": "FRA", "iso2Code": "FR", "name": "France", "capitalCity": "Paris",
      "region": { "id": "ECS", "value": "Europe & Central Asia" } },
    { "id": "JPN", "iso2Code": "JP", "name": "Japan", "capitalCity": "Tokyo",
      "region": { "id": "EAS", "value": "East Asia & Pacific" } },
    { "id": "EUU", "iso2Code": "EU", "name": "European Union", "capitalCity": "",
      "region": { "id": "NA", "value": "Aggregates" } },
    { "id": "BRA", "iso2Code": "BR", "name": "Brazil", "capitalCity": "Brasilia",
      "region": { "id": "LCN", "value": "Latin America & Caribbean " } }
  ]
]`

const indicatorBody = `[
  { "page": 1, "pages": 1, "per_page": 400, "total": 3, "lastupdated": "2024-05-01" },
  [
    { "country": { "id": "FR" }, "countryiso3code": "FRA", "date": "2023", "value": 67000000 },
    { "country": { "id": "JP" }, "countryiso3code": "JPN", "date": "2023", "value": 124000000 },
    { "country": { "id": "BR" }, "countryiso3code": "BRA", "date": "2023", "value": null }
  ]
]`

func floatPtr(v float64) *float64 { return &v }

func record(code, date string, value *float64) countryatlas.IndicatorRecord {
	var r countryatlas.IndicatorRecord
	r.Country.ID = code
	r.Date = date
	r.Value = value
	return r
}

func country(id, code, name, capital, regionID, regionValue string) countryatlas.Country {
	return countryatlas.Country{
		ID:      id,
		Code:    code,
		Name:    name,
		Capital: capital,
		Region:  countryatlas.Region{ID: regionID, Value: regionValue},
	}
}

type stubDirectory struct {
	countries []countryatlas.Country
	err       error
	delay     time.Duration

	mu    sync.Mutex
	calls int
}

func (s *stubDirectory) Countries(ctx context.Context) ([]countryatlas.Country, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.countries, nil
}

func (s *stubDirectory) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type stubIndicators struct {
	mu      sync.Mutex
	records map[string][]countryatlas.IndicatorRecord
	errs    map[string]error
	calls   []string
}

func (s *stubIndicators) Indicator(ctx context.Context, indicator string) ([]countryatlas.IndicatorRecord, error) {
	s.mu.Lock()
	s.calls = append(s.calls, indicator)
	s.mu.Unlock()

	if err := s.errs[indicator]; err != nil {
		return nil, err
	}
	return s.records[indicator], nil
}

func (s *stubIndicators) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type captureMetrics struct {
	mu        sync.Mutex
	durations map[string]int
	errors    map[string]string
	coverage  map[string][2]int
	countries int
	regions   int
}

func newCaptureMetrics() *captureMetrics {
	return &captureMetrics{
		durations: make(map[string]int),
		errors:    make(map[string]string),
		coverage:  make(map[string][2]int),
	}
}

func (m *captureMetrics) RecordFetchDuration(source string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.durations[source]++
}

func (m *captureMetrics) RecordFetchError(source, errorType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[source] = errorType
}

func (m *captureMetrics) RecordIndicatorCoverage(indicator string, matched, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.coverage[indicator] = [2]int{matched, total}
}

func (m *captureMetrics) RecordResultCounts(countries, regions int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.countries = countries
	m.regions = regions
}

type captureLogger struct {
	mu     sync.Mutex
	infos  []string
	errMsg []string
}

func (l *captureLogger) Info(msg string, _ ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *captureLogger) Error(msg string, _ ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errMsg = append(l.errMsg, msg)
}

func (l *captureLogger) hasError(msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.errMsg {
		if m == msg {
			return true
		}
	}
	return false
}
