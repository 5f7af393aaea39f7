// Package countryatlas aggregates the World Bank country directory and
// indicator feeds into a single region-grouped collection, with built-in
// support for:
//
//   - Concurrent fetching: Directory and indicator series are fetched in parallel
//   - Graceful degradation: A failed indicator fetch never fails the whole run
//   - Filtering: Aggregate rows and capital-less entries are dropped before grouping
//   - Session lifecycle: One-shot Loading/Loaded/Failed state with subscriptions
//   - Observability: Built-in hooks for metrics and logging
//
// For more information, see https://github.com/nulllvoid/countryatlas
package countryatlas
