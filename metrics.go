package countryatlas

import "time"

type Metrics interface {
	RecordFetchDuration(source string, duration time.Duration)
	RecordFetchError(source, errorType string)
	RecordIndicatorCoverage(indicator string, matched, total int)
	RecordResultCounts(countries, regions int)
}

type NoopMetrics struct{}

func (NoopMetrics) RecordFetchDuration(string, time.Duration) {}
func (NoopMetrics) RecordFetchError(string, string)           {}
func (NoopMetrics) RecordIndicatorCoverage(string, int, int)  {}
func (NoopMetrics) RecordResultCounts(int, int)               {}
