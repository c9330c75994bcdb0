package ioreport_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/cfazone/internal/ioreport"
	"github.com/gnames/cfazone/internal/iostore/iosqlite"
	"github.com/gnames/cfazone/internal/iotesting"
	"github.com/gnames/cfazone/pkg/cfazone"
	"github.com/gnames/cfazone/pkg/cohort"
	"github.com/gnames/cfazone/pkg/config"
	"github.com/gnames/cfazone/pkg/errcode"
	"github.com/gnames/cfazone/pkg/median"
	"github.com/gnames/cfazone/pkg/narrative"
	"github.com/gnames/cfazone/pkg/obs"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gdp = "NGDP_RPCH"

// fakeSource returns the same values for every call and counts calls
// of Records.
type fakeSource struct {
	calls int
}

func (s *fakeSource) Indicators(context.Context) ([]obs.Indicator, error) {
	return []obs.Indicator{
		{Code: gdp, Label: "Real GDP growth", Unit: "Annual percent change"},
		{Code: "EMPTY", Label: "Only CFA data"},
	}, nil
}

func (s *fakeSource) Series(
	ctx context.Context,
	ind, code string,
) ([]obs.Record, error) {
	recs, err := s.Records(ctx, []string{ind})
	var res []obs.Record
	for _, v := range recs {
		if v.Code == code {
			res = append(res, v)
		}
	}
	return res, err
}

func (s *fakeSource) Records(
	_ context.Context,
	inds []string,
) ([]obs.Record, error) {
	s.calls++
	var res []obs.Record
	for _, ind := range inds {
		for year := 2000; year < 2010; year++ {
			res = append(res,
				obs.Record{Code: "SEN", Country: "Senegal", Indicator: ind,
					Year: year, Value: 5},
				obs.Record{Code: "CIV", Country: "Côte d'Ivoire", Indicator: ind,
					Year: year, Value: 3},
			)
			if ind == "EMPTY" {
				continue
			}
			res = append(res,
				obs.Record{Code: "GHA", Country: "Ghana", Indicator: ind,
					Year: year, Value: 1},
			)
		}
	}
	return res, nil
}

func (s *fakeSource) Observations(
	ctx context.Context,
	inds []string,
) (*obs.Table, error) {
	recs, err := s.Records(ctx, inds)
	if err != nil {
		return nil, err
	}
	return obs.NewTable(recs), nil
}

type fakeNarrator struct {
	reqs []narrative.Request
	err  error
}

func (n *fakeNarrator) Summarize(
	_ context.Context,
	req narrative.Request,
) (string, error) {
	n.reqs = append(n.reqs, req)
	return "Summary of " + req.Indicator, n.err
}

func setup(
	t *testing.T,
	opts ...config.Option,
) (*ioreport.Reporter, *fakeSource, *fakeNarrator, cfazone.Store) {
	opts = append([]config.Option{config.OptReportIndicators([]string{gdp})},
		opts...)
	cfg := iotesting.GetTestConfig(t, opts...)

	store := iosqlite.New(":memory:")
	require.NoError(t, store.Open(context.Background()))
	t.Cleanup(func() { store.Close() })

	src := &fakeSource{}
	nar := &fakeNarrator{}
	var buf bytes.Buffer
	r := ioreport.New(cfg, store, src, nar, cohort.Default(),
		ioreport.OptWriter(&buf))
	return r, src, nar, store
}

func TestRun(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	ctx := context.Background()
	r, src, nar, _ := setup(t)

	rep, err := r.Run(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, 1, src.calls, "missing indicator is fetched")
	require.Len(t, rep.Sections, 1)

	sec := rep.Sections[0]
	assert.False(t, sec.Empty())
	assert.Len(t, sec.Rows, 10)
	assert.Equal(t, median.CFADominant, sec.Verdict.Dominance)
	assert.Equal(t, "Summary of Real GDP growth", sec.Narrative)
	assert.FileExists(t, sec.Chart)

	require.Len(t, nar.reqs, 1)
	assert.Equal(t, "Annual percent change", nar.reqs[0].Unit)
	assert.Len(t, nar.reqs[0].Years, 10)

	// second run uses stored data
	_, err = r.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)
}

func TestRunRefresh(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	ctx := context.Background()
	r, src, _, _ := setup(t, config.OptReportRefresh(true))

	_, err := r.Run(ctx)
	require.NoError(t, err)
	_, err = r.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestRunEmptySection(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	r, _, nar, _ := setup(t, config.OptReportIndicators([]string{"EMPTY"}))

	rep, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, rep.Sections, 1)
	sec := rep.Sections[0]
	assert.True(t, sec.Empty())
	assert.Empty(t, sec.Chart)
	assert.Empty(t, sec.Narrative)
	assert.Equal(t, median.RoughlyEqual, sec.Verdict.Dominance)
	assert.Empty(t, nar.reqs)
	assert.Contains(t, sec.Markdown(), "No years with data")
}

func TestFetchUnknown(t *testing.T) {
	r, _, _, _ := setup(t)
	err := r.Fetch(context.Background(), []string{"UNKNOWN"})
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.IndicatorNotFoundError, gnErr.Code)
	assert.True(t, errors.Is(gnErr.Err, ioreport.ErrIndicatorNotFound))
}

func TestNarratorError(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	r, _, nar, _ := setup(t)
	nar.err = errors.New("service is down")
	_, err := r.Run(context.Background())
	assert.ErrorIs(t, err, nar.err)
}

func TestMissingColumn(t *testing.T) {
	r, _, _, _ := setup(t)
	tbl := obs.NewTable(nil)
	_, err := r.ProcessIndicator(context.Background(), tbl,
		obs.Indicator{Code: gdp})
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.MissingColumnError, gnErr.Code)
}

func TestExport(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tests := []struct {
		format string
		file   string
	}{
		{"csv", "ngdp_rpch_medians.csv"},
		{"tsv", "ngdp_rpch_medians.tsv"},
		{"json", "medians.json"},
		{"xlsx", "medians.xlsx"},
	}

	for _, v := range tests {
		r, _, _, _ := setup(t, config.OptReportExport(v.format))
		rep, err := r.Run(context.Background())
		require.NoError(t, err, v.format)
		require.Len(t, rep.Exports, 1, v.format)
		assert.Equal(t, v.file, filepath.Base(rep.Exports[0]), v.format)
		info, err := os.Stat(rep.Exports[0])
		require.NoError(t, err, v.format)
		assert.Positive(t, info.Size(), v.format)
	}
}

func TestWrite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	out := filepath.Join(t.TempDir(), "report.md")
	r, _, _, _ := setup(t, config.OptReportOutput(out))

	rep, err := r.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, r.Write(rep))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	md := string(data)
	assert.Contains(t, md, "# "+ioreport.Title)
	assert.Contains(t, md, ioreport.Heading("Real GDP growth"))
	assert.Contains(t, md, "Summary of Real GDP growth")
	assert.Contains(t, md, "in 10 years")
}

func TestRender(t *testing.T) {
	res, err := ioreport.Render("# Title\n\nSome *text*.")
	require.NoError(t, err)
	assert.Contains(t, res, "Title")
}

func TestHeading(t *testing.T) {
	assert.Equal(t,
		"## Real GDP growth comparison between African CFA Zone Countries "+
			"to Non-CFA Middle Africa and Western Africa Countries",
		ioreport.Heading("Real GDP growth"),
	)
}

func TestTable(t *testing.T) {
	res := ioreport.Table([]median.Row{
		{Year: 2000, CFAMedian: 4, NonCFAMedian: 1.5,
			AbsCFAMedian: 4, AbsNonCFAMedian: 1.5},
	})
	assert.Contains(t, res, "Non-CFA median")
	assert.Contains(t, res, "2000")
	assert.Contains(t, res, "1.50")
}
