package countryatlas

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	sourceDirectory  = "directory"
	sourcePopulation = "population"
	sourceGDP        = "gdp"
)

// regionNotApplicable marks directory rows that are groupings rather than
// countries, such as income bands and lending categories.
const regionNotApplicable = "NA"

type DirectorySource interface {
	Countries(ctx context.Context) ([]Country, error)
}

type IndicatorSource interface {
	Indicator(ctx context.Context, indicator string) ([]IndicatorRecord, error)
}

// Aggregator fetches the directory and both indicator series concurrently,
// enriches countries with the indicator values, drops non-country rows and
// groups the remainder by region. The directory is required; a failed
// indicator fetch degrades to missing enrichment rather than failing the run.
type Aggregator struct {
	directory           DirectorySource
	indicators          IndicatorSource
	populationIndicator string
	gdpIndicator        string
	logger              Logger
	metrics             Metrics
}

func NewAggregator(client *Client, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		directory:           client,
		indicators:          client,
		populationIndicator: PopulationIndicator,
		gdpIndicator:        GDPIndicator,
		logger:              NopLogger{},
		metrics:             NoopMetrics{},
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (a *Aggregator) Aggregate(ctx context.Context) (GroupedResult, error) {
	type directoryResult struct {
		countries []Country
		err       error
	}

	run := uuid.NewString()
	a.logger.Info("aggregation started", "run_id", run)

	dirCh := make(chan directoryResult, 1)
	popCh := make(chan IndicatorTable, 1)
	gdpCh := make(chan IndicatorTable, 1)

	go func() {
		countries, err := a.fetchDirectory(ctx, run)
		dirCh <- directoryResult{countries: countries, err: err}
	}()
	go func() {
		popCh <- a.fetchIndicator(ctx, run, sourcePopulation, a.populationIndicator)
	}()
	go func() {
		gdpCh <- a.fetchIndicator(ctx, run, sourceGDP, a.gdpIndicator)
	}()

	dir := <-dirCh
	if dir.err != nil {
		a.logger.Error("aggregation aborted", "run_id", run, "error", dir.err)
		return nil, NewAggregationError(sourceDirectory, dir.err)
	}

	population := <-popCh
	gdp := <-gdpCh

	enriched := merge(dir.countries, population, gdp)
	popCovered := coverage(enriched, func(c Country) bool { return c.Population != nil })
	gdpCovered := coverage(enriched, func(c Country) bool { return c.GDP != nil })
	a.metrics.RecordIndicatorCoverage(a.populationIndicator, popCovered, len(enriched))
	a.metrics.RecordIndicatorCoverage(a.gdpIndicator, gdpCovered, len(enriched))

	grouped := groupByRegion(filterCountries(enriched))
	a.metrics.RecordResultCounts(grouped.Total(), len(grouped))
	a.logger.Info("aggregation finished",
		"run_id", run,
		"countries", grouped.Total(),
		"regions", len(grouped),
	)

	return grouped, nil
}

func (a *Aggregator) fetchDirectory(ctx context.Context, run string) ([]Country, error) {
	start := time.Now()
	countries, err := a.directory.Countries(ctx)
	a.metrics.RecordFetchDuration(sourceDirectory, time.Since(start))
	if err != nil {
		a.metrics.RecordFetchError(sourceDirectory, errorKind(err))
		return nil, err
	}
	a.logger.Info("directory fetched", "run_id", run, "rows", len(countries))
	return countries, nil
}

func (a *Aggregator) fetchIndicator(ctx context.Context, run, source, indicator string) IndicatorTable {
	start := time.Now()
	records, err := a.indicators.Indicator(ctx, indicator)
	a.metrics.RecordFetchDuration(source, time.Since(start))
	if err != nil {
		a.metrics.RecordFetchError(source, errorKind(err))
		a.logger.Error("indicator fetch failed, continuing without enrichment",
			"run_id", run,
			"indicator", indicator,
			"error", err,
		)
		return IndicatorTable{}
	}
	table := NewIndicatorTable(records)
	a.logger.Info("indicator fetched", "run_id", run, "indicator", indicator, "values", len(table))
	return table
}

func merge(countries []Country, population, gdp IndicatorTable) []Country {
	merged := make([]Country, len(countries))
	copy(merged, countries)
	for i := range merged {
		if v, ok := population[merged[i].Code]; ok {
			p := int64(v)
			merged[i].Population = &p
		}
		if v, ok := gdp[merged[i].Code]; ok {
			g := v
			merged[i].GDP = &g
		}
	}
	return merged
}

func filterCountries(countries []Country) []Country {
	kept := make([]Country, 0, len(countries))
	for _, c := range countries {
		if c.Region.ID == regionNotApplicable {
			continue
		}
		if strings.Contains(strings.ToLower(c.Region.Value), "aggregate") {
			continue
		}
		if c.Capital == "" {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

func groupByRegion(countries []Country) GroupedResult {
	grouped := make(GroupedResult)
	for _, c := range countries {
		region := strings.TrimSpace(c.Region.Value)
		grouped[region] = append(grouped[region], c)
	}
	return grouped
}

func coverage(countries []Country, matched func(Country) bool) int {
	n := 0
	for _, c := range countries {
		if matched(c) {
			n++
		}
	}
	return n
}
