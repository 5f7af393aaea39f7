package countryatlas_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nulllvoid/countryatlas"
)

const gdpBody = `[
  { "page": 1, "pages": 1, "per_page": 400, "total": 2, "lastupdated": "2024-05-01" },
  [
    { "country": { "id": "FR" }, "countryiso3code": "FRA", "date": "2023", "value": 3.03e12 },
    { "country": { "id": "JP" }, "countryiso3code": "JPN", "date": "2023", "value": null }
  ]
]`

func newAPIServer(t *testing.T, directoryStatus, populationStatus int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/country":
			if directoryStatus != http.StatusOK {
				http.Error(w, "unavailable", directoryStatus)
				return
			}
			w.Write([]byte(directoryBody))
		case "/country/all/indicator/" + countryatlas.PopulationIndicator:
			if populationStatus != http.StatusOK {
				http.Error(w, "unavailable", populationStatus)
				return
			}
			w.Write([]byte(indicatorBody))
		case "/country/all/indicator/" + countryatlas.GDPIndicator:
			w.Write([]byte(gdpBody))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestIntegration_SessionLoadsGroupedCountries(t *testing.T) {
	t.Parallel()

	srv := newAPIServer(t, http.StatusOK, http.StatusOK)

	client := countryatlas.NewClient(countryatlas.WithBaseURL(srv.URL))
	session := countryatlas.NewSession(countryatlas.NewAggregator(client))
	updates := session.Updates()

	require.NoError(t, session.Run(context.Background()))

	state := session.State()
	require.Equal(t, countryatlas.PhaseLoaded, state.Phase)
	require.NotNil(t, state.Result)

	assert.Equal(t, []string{"East Asia & Pacific", "Europe & Central Asia", "Latin America & Caribbean"}, state.Result.Regions())
	assert.Equal(t, 3, state.Result.Total())

	europe := state.Result["Europe & Central Asia"]
	require.Len(t, europe, 1)
	require.NotNil(t, europe[0].Population)
	assert.Equal(t, int64(67000000), *europe[0].Population)
	require.NotNil(t, europe[0].GDP)
	assert.Equal(t, 3.03e12, *europe[0].GDP)

	japan := state.Result["East Asia & Pacific"][0]
	require.NotNil(t, japan.Population)
	assert.Equal(t, int64(124000000), *japan.Population)
	assert.Nil(t, japan.GDP)

	brazil := state.Result["Latin America & Caribbean"][0]
	assert.Nil(t, brazil.Population)
	assert.Nil(t, brazil.GDP)

	published := <-updates
	assert.Equal(t, countryatlas.PhaseLoaded, published.Phase)
}

func TestIntegration_DirectoryOutageFailsSession(t *testing.T) {
	t.Parallel()

	srv := newAPIServer(t, http.StatusInternalServerError, http.StatusOK)

	client := countryatlas.NewClient(countryatlas.WithBaseURL(srv.URL))
	session := countryatlas.NewSession(countryatlas.NewAggregator(client))

	err := session.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, countryatlas.ErrDirectoryUnavailable)

	state := session.State()
	assert.Equal(t, countryatlas.PhaseFailed, state.Phase)
	assert.Contains(t, state.Message, "status 500")
	assert.Nil(t, state.Result)
}

func TestIntegration_IndicatorOutageDegrades(t *testing.T) {
	t.Parallel()

	srv := newAPIServer(t, http.StatusOK, http.StatusBadGateway)

	client := countryatlas.NewClient(countryatlas.WithBaseURL(srv.URL))
	session := countryatlas.NewSession(countryatlas.NewAggregator(client))

	require.NoError(t, session.Run(context.Background()))

	state := session.State()
	require.Equal(t, countryatlas.PhaseLoaded, state.Phase)

	europe := state.Result["Europe & Central Asia"]
	require.Len(t, europe, 1)
	assert.Nil(t, europe[0].Population)
	require.NotNil(t, europe[0].GDP)
	assert.Equal(t, 3.03e12, *europe[0].GDP)
}
