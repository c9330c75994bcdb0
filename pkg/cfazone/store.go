// Package cfazone defines interfaces of the components that move indicator
// data between the data source, the local store and reports.
package cfazone

import (
	"context"
	"slices"
	"time"

	"github.com/gnames/cfazone/pkg/obs"
)

// Store keeps indicator records and metadata, so reports can be created
// without network access.
type Store interface {
	// Open connects to the store and creates its schema if needed.
	Open(ctx context.Context) error

	// Close releases resources of the store.
	Close() error

	// Save replaces all records of the given indicators with new records
	// and saves metadata of the indicators. The replacement is atomic.
	Save(ctx context.Context, inds []obs.Indicator, recs []obs.Record) error

	// Load returns a table with values of the given indicators. Empty
	// codes mean all stored indicators.
	Load(ctx context.Context, codes []string) (*obs.Table, error)

	// Indicators returns metadata of stored indicators sorted by code.
	Indicators(ctx context.Context) ([]obs.Indicator, error)

	// Stats returns a summary for every stored indicator sorted by code.
	Stats(ctx context.Context) ([]Stat, error)
}

// Stat summarizes stored data of one indicator.
type Stat struct {
	Indicator obs.Indicator
	Records   int
	Countries int
	FirstYear int
	LastYear  int
	FetchedAt time.Time
}

// StatsQuery summarizes stored observations per indicator. It uses only
// SQL that SQLite and PostgreSQL share.
const StatsQuery = `SELECT i.code, i.label, i.description, i.unit,
		i.source, i.fetched_at,
		COUNT(o.id), COUNT(DISTINCT o.country_code),
		COALESCE(MIN(o.year), 0), COALESCE(MAX(o.year), 0)
	FROM indicators i
	LEFT JOIN observations o ON o.indicator = i.code
	GROUP BY i.code, i.label, i.description, i.unit, i.source, i.fetched_at
	ORDER BY i.code`

// IndicatorCodes returns sorted unique codes of indicators mentioned in
// metadata or in records.
func IndicatorCodes(inds []obs.Indicator, recs []obs.Record) []string {
	set := make(map[string]struct{})
	for _, v := range inds {
		set[v.Code] = struct{}{}
	}
	for _, v := range recs {
		set[v.Indicator] = struct{}{}
	}
	res := make([]string, 0, len(set))
	for k := range set {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}
