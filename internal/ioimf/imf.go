// Package ioimf downloads indicator data from the IMF DataMapper API.
package ioimf

import (
	"cmp"
	"context"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/cfazone/internal/iocache"
	app "github.com/gnames/cfazone/pkg"
	"github.com/gnames/cfazone/pkg/cfazone"
	"github.com/gnames/cfazone/pkg/cohort"
	"github.com/gnames/cfazone/pkg/config"
	"github.com/gnames/cfazone/pkg/obs"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlib"
	"golang.org/x/sync/errgroup"
)

type imf struct {
	cfg     *config.Config
	members *cohort.Membership
	client  *http.Client
	cache   *iocache.Cache
	// progress enables a progress bar for Records.
	progress bool
}

// Option changes settings of the client.
type Option func(*imf)

// OptCache sets a cache for API responses. The cache must be open.
func OptCache(c *iocache.Cache) Option {
	return func(i *imf) {
		i.cache = c
	}
}

// OptProgress enables or disables the progress bar.
func OptProgress(b bool) Option {
	return func(i *imf) {
		i.progress = b
	}
}

// OptHTTPClient replaces the default HTTP client.
func OptHTTPClient(c *http.Client) Option {
	return func(i *imf) {
		i.client = c
	}
}

// New creates a client of the IMF DataMapper API for countries
// of the given cohorts.
func New(
	cfg *config.Config,
	members *cohort.Membership,
	opts ...Option,
) cfazone.Source {
	res := imf{
		cfg:     cfg,
		members: members,
		client: &http.Client{
			Timeout: time.Duration(cfg.Source.TimeoutSec) * time.Second,
		},
		progress: true,
	}
	for _, opt := range opts {
		opt(&res)
	}
	return &res
}

// indicatorsResponse is the body of the /indicators endpoint.
type indicatorsResponse struct {
	Indicators map[string]struct {
		Label       string `json:"label"`
		Description string `json:"description"`
		Source      string `json:"source"`
		Unit        string `json:"unit"`
	} `json:"indicators"`
}

// valuesResponse is the body of the /{indicator}/{countries} endpoint.
// Values are keyed by indicator, country code and year.
type valuesResponse struct {
	Values map[string]map[string]map[string]*float64 `json:"values"`
}

func (i *imf) Indicators(ctx context.Context) ([]obs.Indicator, error) {
	var resp indicatorsResponse
	if err := i.getJSON(ctx, "indicators", &resp); err != nil {
		return nil, err
	}

	res := make([]obs.Indicator, 0, len(resp.Indicators))
	for code, v := range resp.Indicators {
		if code == "" {
			continue
		}
		res = append(res, obs.Indicator{
			Code:        code,
			Label:       clean(v.Label),
			Description: clean(v.Description),
			Unit:        clean(v.Unit),
			Source:      clean(v.Source),
		})
	}
	slices.SortFunc(res, func(a, b obs.Indicator) int {
		return cmp.Compare(a.Code, b.Code)
	})
	slog.Info("Received indicators", "count", len(res))
	return res, nil
}

func (i *imf) Series(
	ctx context.Context,
	indicator, code string,
) ([]obs.Record, error) {
	return i.fetch(ctx, indicator, []string{code})
}

func (i *imf) Records(
	ctx context.Context,
	indicators []string,
) ([]obs.Record, error) {
	start := time.Now()
	codes := i.members.Codes()

	var bar *pb.ProgressBar
	if i.progress {
		bar = pb.Full.Start(len(indicators))
		bar.Set("prefix", "Fetching indicators: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	var mu sync.Mutex
	var res []obs.Record

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(i.cfg.JobsNumber, 1))

	for _, ind := range indicators {
		g.Go(func() error {
			recs, err := i.fetch(gCtx, ind, codes)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				return NoDataError(ind)
			}

			mu.Lock()
			res = append(res, recs...)
			mu.Unlock()
			if bar != nil {
				bar.Increment()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(res, func(a, b obs.Record) int {
		return cmp.Or(
			cmp.Compare(a.Indicator, b.Indicator),
			cmp.Compare(a.Code, b.Code),
			cmp.Compare(a.Year, b.Year),
		)
	})

	slog.Info("Fetched records",
		"indicators", len(indicators),
		"records", len(res),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return res, nil
}

func (i *imf) Observations(
	ctx context.Context,
	indicators []string,
) (*obs.Table, error) {
	recs, err := i.Records(ctx, indicators)
	if err != nil {
		return nil, err
	}
	res := obs.NewTable(recs)
	slog.Info("Created observations table",
		"rows", humanize.Comma(int64(res.Len())))
	return res, nil
}

// fetch downloads values of one indicator for the given countries.
func (i *imf) fetch(
	ctx context.Context,
	indicator string,
	codes []string,
) ([]obs.Record, error) {
	path := indicator + "/" + strings.Join(codes, "/")
	var resp valuesResponse
	if err := i.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}

	var res []obs.Record
	for code, years := range resp.Values[indicator] {
		country := code
		if c, _, ok := i.members.Lookup(code); ok {
			country = c.Name
		}
		for yearStr, val := range years {
			if val == nil {
				continue
			}
			year, err := strconv.Atoi(yearStr)
			if err != nil {
				slog.Warn("Skipping value with unknown year",
					"indicator", indicator, "country", code, "year", yearStr)
				continue
			}
			res = append(res, obs.Record{
				Code:      code,
				Country:   country,
				Indicator: indicator,
				Year:      year,
				Value:     *val,
			})
		}
	}

	slices.SortFunc(res, func(a, b obs.Record) int {
		return cmp.Or(
			cmp.Compare(a.Code, b.Code),
			cmp.Compare(a.Year, b.Year),
		)
	})
	slog.Debug("Fetched indicator", "indicator", indicator,
		"countries", len(codes), "records", len(res))
	return res, nil
}

// getJSON downloads a resource of the API and decodes its JSON body.
// Cached responses are used unless the refresh option is set.
func (i *imf) getJSON(ctx context.Context, path string, v any) error {
	url := i.cfg.Source.URL + "/" + path

	body, err := i.get(ctx, url)
	if err != nil {
		return err
	}

	enc := gnfmt.GNjson{}
	if err = enc.Decode(body, v); err != nil {
		return DecodeError(url, err)
	}
	return nil
}

func (i *imf) get(ctx context.Context, url string) ([]byte, error) {
	if i.cache != nil && !i.cfg.Report.Refresh {
		body, ok, err := i.cache.Get(url)
		if err != nil {
			slog.Warn("Cannot read response cache", "error", err)
		}
		if ok {
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, RequestError(url, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "cfazone/"+app.Version)

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, RequestError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, StatusError(url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, RequestError(url, err)
	}

	if i.cache != nil {
		if err = i.cache.Set(url, body); err != nil {
			slog.Warn("Cannot save response to cache", "url", url, "error", err)
		}
	}
	return body, nil
}

func clean(s string) string {
	s = gnlib.FixUtf8(s)
	return strings.Join(strings.Fields(s), " ")
}
