package countryatlas

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// The two endpoint families encode their page metadata differently: the
// directory reports per_page as a string, the indicator feeds as an integer.
// Each family gets its own schema, never a shared one.
type directoryPage struct {
	Page    int    `json:"page"`
	Pages   int    `json:"pages"`
	PerPage string `json:"per_page"`
	Total   int    `json:"total"`
}

type indicatorPage struct {
	Page        int    `json:"page"`
	Pages       int    `json:"pages"`
	PerPage     int    `json:"per_page"`
	Total       int    `json:"total"`
	LastUpdated string `json:"lastupdated"`
}

func splitEnvelope(endpoint string, body []byte) (meta, rows jsoniter.RawMessage, err error) {
	var envelope []jsoniter.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, nil, NewDecodeError(endpoint, "response is not a JSON array", err)
	}
	if len(envelope) != 2 {
		return nil, nil, NewDecodeError(endpoint, fmt.Sprintf("expected 2 envelope elements, got %d", len(envelope)), ErrEnvelopeShape)
	}
	return envelope[0], envelope[1], nil
}

func decodeDirectory(endpoint string, body []byte) ([]Country, error) {
	meta, rows, err := splitEnvelope(endpoint, body)
	if err != nil {
		return nil, err
	}
	var page directoryPage
	if err := json.Unmarshal(meta, &page); err != nil {
		return nil, NewDecodeError(endpoint, "malformed directory page metadata", err)
	}
	var countries []Country
	if err := json.Unmarshal(rows, &countries); err != nil {
		return nil, NewDecodeError(endpoint, "malformed country rows", err)
	}
	seen := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		if c.Code == "" {
			return nil, NewDecodeError(endpoint, fmt.Sprintf("country %q has no code", c.Name), nil)
		}
		if _, dup := seen[c.Code]; dup {
			return nil, NewDecodeError(endpoint, fmt.Sprintf("duplicate country code %s", c.Code), nil)
		}
		seen[c.Code] = struct{}{}
	}
	return countries, nil
}

func decodeIndicator(endpoint string, body []byte) ([]IndicatorRecord, error) {
	meta, rows, err := splitEnvelope(endpoint, body)
	if err != nil {
		return nil, err
	}
	var page indicatorPage
	if err := json.Unmarshal(meta, &page); err != nil {
		return nil, NewDecodeError(endpoint, "malformed indicator page metadata", err)
	}
	var records []IndicatorRecord
	if err := json.Unmarshal(rows, &records); err != nil {
		return nil, NewDecodeError(endpoint, "malformed indicator rows", err)
	}
	return records, nil
}
