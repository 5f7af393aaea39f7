package countryatlas

import (
	"context"
	"sort"
)

type Region struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// Country is one row of the country directory. Population and GDP stay nil
// until the aggregator merges indicator values onto the entry, and remain nil
// when no observation exists for the country's code.
type Country struct {
	ID         string   `json:"id"`
	Code       string   `json:"iso2Code"`
	Name       string   `json:"name"`
	Capital    string   `json:"capitalCity"`
	Region     Region   `json:"region"`
	Population *int64   `json:"population,omitempty"`
	GDP        *float64 `json:"gdp,omitempty"`
}

// GroupedResult maps a trimmed region label to the countries that belong to
// it, in the order they survived filtering. Published results are read-only.
type GroupedResult map[string][]Country

func (g GroupedResult) Regions() []string {
	labels := make([]string, 0, len(g))
	for label := range g {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func (g GroupedResult) Total() int {
	n := 0
	for _, countries := range g {
		n += len(countries)
	}
	return n
}

type Placemark struct {
	Latitude  float64
	Longitude float64
	Region    string
}

// Geocoder resolves a capital-city name to map coordinates. Implementations
// run outside the aggregation pipeline, one entry at a time, and have no
// effect on GroupedResult contents.
type Geocoder interface {
	Geocode(ctx context.Context, capital string) (Placemark, error)
}
