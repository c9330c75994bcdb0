package cmd

import (
	"context"
	"time"

	"github.com/gnames/cfazone/internal/iocache"
	"github.com/gnames/cfazone/internal/iocohort"
	"github.com/gnames/cfazone/internal/ioimf"
	"github.com/gnames/cfazone/internal/ionarrative"
	"github.com/gnames/cfazone/internal/ioreport"
	"github.com/gnames/cfazone/internal/iostore/iopg"
	"github.com/gnames/cfazone/internal/iostore/iosqlite"
	"github.com/gnames/cfazone/pkg/cfazone"
	"github.com/gnames/cfazone/pkg/cohort"
	"github.com/gnames/cfazone/pkg/config"
	"github.com/gnames/gn"
)

// components keeps everything commands need, so it can be closed at once.
type components struct {
	members *cohort.Membership
	cache   *iocache.Cache
	source  cfazone.Source
	store   cfazone.Store
}

// newStore creates the configured store.
func newStore(cfg *config.Config) cfazone.Store {
	if cfg.Store.Backend == "postgres" {
		return iopg.New(cfg.Database)
	}
	return iosqlite.New(config.StoreFilePath(cfg.HomeDir))
}

// newComponents loads cohorts, opens the response cache and the store,
// and creates the IMF client.
func newComponents(ctx context.Context, cfg *config.Config) (*components, error) {
	var res components
	var err error

	res.members, err = iocohort.Load(cfg)
	if err != nil {
		return nil, err
	}

	var srcOpts []ioimf.Option
	if res.cache = openCache(cfg); res.cache != nil {
		srcOpts = append(srcOpts, ioimf.OptCache(res.cache))
	}
	res.source = ioimf.New(cfg, res.members, srcOpts...)

	res.store = newStore(cfg)
	if err = res.store.Open(ctx); err != nil {
		res.close()
		return nil, err
	}
	return &res, nil
}

// openCache opens the response cache. It returns nil if the cache is
// disabled or cannot be opened, requests then go to the network.
func openCache(cfg *config.Config) *iocache.Cache {
	if cfg.Source.CacheHours <= 0 {
		return nil
	}
	ttl := time.Duration(cfg.Source.CacheHours) * time.Hour
	res := iocache.New(config.HTTPCacheDir(cfg.HomeDir), ttl)
	if err := res.Open(); err != nil {
		gn.Warn("Response cache is not available: %s", err.Error())
		return nil
	}
	return res
}

// fetcher returns a reporter for downloads. Downloads do not create
// summaries, so narrative settings are not used.
func (c *components) fetcher(cfg *config.Config) *ioreport.Reporter {
	return ioreport.New(
		cfg, c.store, c.source, ionarrative.NewTemplate(), c.members,
	)
}

func (c *components) reporter(ctx context.Context, cfg *config.Config) (*ioreport.Reporter, error) {
	nar, err := ionarrative.New(ctx, cfg.Narrative)
	if err != nil {
		return nil, err
	}
	return ioreport.New(cfg, c.store, c.source, nar, c.members), nil
}

func (c *components) close() {
	if c.store != nil {
		c.store.Close()
	}
	if c.cache != nil {
		c.cache.Close()
	}
}
