// Package ioreport creates the comparison report: for every indicator it
// computes cohort medians, draws a chart, classifies the comparison and
// asks a narrator for a summary.
package ioreport

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/cfazone/internal/iochart"
	"github.com/gnames/cfazone/pkg/cfazone"
	"github.com/gnames/cfazone/pkg/config"
	"github.com/gnames/cfazone/pkg/median"
	"github.com/gnames/cfazone/pkg/narrative"
	"github.com/gnames/cfazone/pkg/obs"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
	"github.com/google/uuid"
)

// Reporter creates reports from stored indicator data.
type Reporter struct {
	cfg      *config.Config
	store    cfazone.Store
	source   cfazone.Source
	narrator narrative.Narrator
	members  median.Membership
	out      io.Writer
}

// Option changes settings of the Reporter.
type Option func(*Reporter)

// OptWriter sets where rendered reports are written. Default is STDOUT.
func OptWriter(w io.Writer) Option {
	return func(r *Reporter) {
		r.out = w
	}
}

// New creates a Reporter. The store must be open.
func New(
	cfg *config.Config,
	store cfazone.Store,
	source cfazone.Source,
	narrator narrative.Narrator,
	members median.Membership,
	opts ...Option,
) *Reporter {
	res := Reporter{
		cfg:      cfg,
		store:    store,
		source:   source,
		narrator: narrator,
		members:  members,
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(&res)
	}
	return &res
}

// Report is the result of one run of the Reporter.
type Report struct {
	// RunID identifies the run in logs and file names.
	RunID string

	Created time.Time

	Sections []Section

	// Exports are paths of files with exported median tables.
	Exports []string
}

// Section is the part of a report about one indicator.
type Section struct {
	Indicator obs.Indicator

	// Rows are medians of both cohorts by year.
	Rows []median.Row

	Verdict median.Verdict

	// Chart is the path to the chart file. It is empty if there was
	// nothing to draw.
	Chart string

	// Narrative is a text summary of the comparison.
	Narrative string
}

// Empty is true if cohorts have no common years for the indicator.
func (s Section) Empty() bool {
	return len(s.Rows) == 0
}

// Fetch downloads indicators from the data source and replaces their
// records in the store.
func (r *Reporter) Fetch(ctx context.Context, codes []string) error {
	start := time.Now()

	all, err := r.source.Indicators(ctx)
	if err != nil {
		return err
	}

	var inds []obs.Indicator
	for _, code := range codes {
		idx := slices.IndexFunc(all, func(i obs.Indicator) bool {
			return i.Code == code
		})
		if idx == -1 {
			return IndicatorNotFoundError(code)
		}
		inds = append(inds, all[idx])
	}

	recs, err := r.source.Records(ctx, codes)
	if err != nil {
		return err
	}

	if err = r.store.Save(ctx, inds, recs); err != nil {
		return err
	}

	gn.Info("Fetched <em>%s</em> records of %d indicators in %s",
		humanize.Comma(int64(len(recs))), len(inds),
		gnfmt.TimeString(time.Since(start).Seconds()))
	return nil
}

// Run creates a report for the configured indicators. Indicators that
// are not in the store yet are fetched first. With the Refresh setting
// all indicators are fetched again.
func (r *Reporter) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	res := Report{
		RunID:   uuid.NewString(),
		Created: time.Now(),
	}
	codes := r.cfg.Report.Indicators
	slog.Info("Creating report", "run", res.RunID, "indicators", codes)

	metas, err := r.prepare(ctx, codes)
	if err != nil {
		return nil, err
	}

	tbl, err := r.store.Load(ctx, codes)
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded observations",
		"rows", humanize.Comma(int64(tbl.Len())),
		"indicators", len(tbl.Indicators))

	for _, code := range codes {
		meta, ok := metas[code]
		if !ok {
			meta = obs.Indicator{Code: code}
		}
		sec, err := r.ProcessIndicator(ctx, tbl, meta)
		if err != nil {
			return nil, err
		}
		res.Sections = append(res.Sections, sec)
	}

	if err = r.Export(&res); err != nil {
		return nil, err
	}

	slog.Info("Report is ready", "run", res.RunID,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()))
	return &res, nil
}

// prepare makes sure all indicators are in the store and returns their
// metadata.
func (r *Reporter) prepare(
	ctx context.Context,
	codes []string,
) (map[string]obs.Indicator, error) {
	stored, err := r.store.Indicators(ctx)
	if err != nil {
		return nil, err
	}

	res := make(map[string]obs.Indicator)
	for _, v := range stored {
		res[v.Code] = v
	}

	var missing []string
	for _, code := range codes {
		if _, ok := res[code]; !ok || r.cfg.Report.Refresh {
			missing = append(missing, code)
		}
	}
	if len(missing) == 0 {
		return res, nil
	}

	slog.Info("Fetching indicators", "codes", missing)
	if err = r.Fetch(ctx, missing); err != nil {
		return nil, err
	}

	stored, err = r.store.Indicators(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range stored {
		res[v.Code] = v
	}
	return res, nil
}

// ProcessIndicator creates the report section of one indicator. When
// cohorts have no common years it warns and returns a section without
// chart and narrative.
func (r *Reporter) ProcessIndicator(
	ctx context.Context,
	tbl *obs.Table,
	ind obs.Indicator,
) (Section, error) {
	res := Section{Indicator: ind}

	rows, err := median.Medians(tbl, ind.Code, r.members)
	if err != nil {
		return res, err
	}
	res.Rows = rows
	res.Verdict = median.Classify(rows)

	if len(rows) == 0 {
		gn.Warn("No common years for <em>%s</em>, skipping chart and summary",
			ind.Title())
		return res, nil
	}

	res.Chart, err = r.chart(rows, ind)
	if err != nil {
		return res, err
	}

	req := narrative.Request{
		Indicator:   ind.Title(),
		Years:       res.Verdict.Years,
		Verdict:     res.Verdict.Dominance,
		Description: ind.Description,
		Unit:        ind.Unit,
	}
	res.Narrative, err = r.narrator.Summarize(ctx, req)
	if err != nil {
		return res, err
	}

	slog.Info("Processed indicator", "indicator", ind.Code,
		"years", len(rows), "verdict", res.Verdict.Dominance)
	return res, nil
}

func (r *Reporter) chart(rows []median.Row, ind obs.Indicator) (string, error) {
	p, err := iochart.Build(median.Columns(rows), ind.Title(), ind.Unit)
	if err != nil {
		return "", err
	}

	dir := r.cfg.ReportDir()
	if err = gnsys.MakeDir(dir); err != nil {
		return "", ExportError(dir, err)
	}

	path := filepath.Join(dir, iochart.FileName(ind.Code, r.cfg.Report.ChartFormat))
	err = iochart.Save(p, path, r.cfg.Report.ChartWidthCM, r.cfg.Report.ChartHeightCM)
	if err != nil {
		return "", err
	}
	return path, nil
}
