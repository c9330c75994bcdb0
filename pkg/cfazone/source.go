package cfazone

import (
	"context"

	"github.com/gnames/cfazone/pkg/obs"
)

// Source downloads indicator data for configured countries.
type Source interface {
	// Indicators returns metadata of all indicators of the source.
	Indicators(ctx context.Context) ([]obs.Indicator, error)

	// Series returns one indicator time series of one country.
	Series(ctx context.Context, indicator, code string) ([]obs.Record, error)

	// Records returns values of the given indicators for all configured
	// countries.
	Records(ctx context.Context, indicators []string) ([]obs.Record, error)

	// Observations returns the same data as Records in tabular form.
	Observations(ctx context.Context, indicators []string) (*obs.Table, error)
}
