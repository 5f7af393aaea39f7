package countryatlas

import (
	"net/http"
	"time"
)

// Logger receives structured key/value pairs from the pipeline. Fetch
// branches log from their own goroutines, so implementations must be safe
// for concurrent use.
type Logger interface {
	Info(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})
}

type NopLogger struct{}

func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}

type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// LoggingTransport logs every outbound request with its method, URL, status,
// and duration. A nil next uses http.DefaultTransport.
func LoggingTransport(logger Logger, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		start := time.Now()
		resp, err := next.RoundTrip(req)
		if err != nil {
			logger.Error("request failed",
				"method", req.Method,
				"url", req.URL.String(),
				"duration", time.Since(start),
				"error", err,
			)
			return nil, err
		}
		logger.Info("request completed",
			"method", req.Method,
			"url", req.URL.String(),
			"status", resp.StatusCode,
			"duration", time.Since(start),
		)
		return resp, nil
	})
}
