package iosqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gnames/cfazone/internal/iostore/iosqlite"
	"github.com/gnames/cfazone/pkg/cfazone"
	"github.com/gnames/cfazone/pkg/errcode"
	"github.com/gnames/cfazone/pkg/obs"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inds = []obs.Indicator{
	{Code: "NGDP_RPCH", Label: "Real GDP growth", Unit: "Annual percent change"},
	{Code: "PCPIPCH", Label: "Inflation rate", Unit: "Annual percent change"},
}

var recs = []obs.Record{
	{Code: "SEN", Country: "Senegal", Indicator: "NGDP_RPCH", Year: 2000, Value: 3.2},
	{Code: "SEN", Country: "Senegal", Indicator: "NGDP_RPCH", Year: 2001, Value: 4.6},
	{Code: "GHA", Country: "Ghana", Indicator: "NGDP_RPCH", Year: 2000, Value: 3.7},
	{Code: "SEN", Country: "Senegal", Indicator: "PCPIPCH", Year: 2000, Value: 0.7},
}

func openStore(t *testing.T) cfazone.Store {
	s := iosqlite.New(":memory:")
	require.NoError(t, s.Open(context.Background()))
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	require.NoError(t, s.Save(ctx, inds, recs))

	tbl, err := s.Load(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"NGDP_RPCH", "PCPIPCH"}, tbl.Indicators)
	assert.Equal(t, 3, tbl.Len())
	assert.Len(t, tbl.Records(), 4)

	tbl, err = s.Load(ctx, []string{"PCPIPCH"})
	require.NoError(t, err)
	assert.Equal(t, []string{"PCPIPCH"}, tbl.Indicators)
	require.Equal(t, 1, tbl.Len())
	v, ok := tbl.Rows[0].Value("PCPIPCH")
	assert.True(t, ok)
	assert.Equal(t, 0.7, v)

	tbl, err = s.Load(ctx, []string{"UNKNOWN"})
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
}

func TestSaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	require.NoError(t, s.Save(ctx, inds, recs))

	update := []obs.Record{
		{Code: "SEN", Country: "Senegal", Indicator: "NGDP_RPCH", Year: 2002, Value: 0.7},
	}
	require.NoError(t, s.Save(ctx, inds[:1], update))

	tbl, err := s.Load(ctx, []string{"NGDP_RPCH"})
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, 2002, tbl.Rows[0].Year)

	tbl, err = s.Load(ctx, []string{"PCPIPCH"})
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len(), "other indicators are kept")
}

func TestIndicatorsStats(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	res, err := s.Indicators(ctx)
	require.NoError(t, err)
	assert.Empty(t, res)

	require.NoError(t, s.Save(ctx, inds, recs))
	res, err = s.Indicators(ctx)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, inds[0], res[0])

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "NGDP_RPCH", stats[0].Indicator.Code)
	assert.Equal(t, 3, stats[0].Records)
	assert.Equal(t, 2, stats[0].Countries)
	assert.Equal(t, 2000, stats[0].FirstYear)
	assert.Equal(t, 2001, stats[0].LastYear)
	assert.False(t, stats[0].FetchedAt.IsZero())
	assert.Equal(t, 1, stats[1].Records)
}

func TestFileStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache", "observations.sqlite")

	s := iosqlite.New(path)
	require.NoError(t, s.Open(ctx))
	require.NoError(t, s.Save(ctx, inds, recs))
	require.NoError(t, s.Close())

	s = iosqlite.New(path)
	require.NoError(t, s.Open(ctx))
	defer s.Close()
	tbl, err := s.Load(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())
}

func TestNotConnected(t *testing.T) {
	s := iosqlite.New(":memory:")
	_, err := s.Load(context.Background(), nil)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}
