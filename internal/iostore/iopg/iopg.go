// Package iopg implements the observations store in PostgreSQL using
// pgxpool. The schema is created by GORM AutoMigrate from pkg/schema
// models.
package iopg

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gnames/cfazone/pkg/cfazone"
	"github.com/gnames/cfazone/pkg/config"
	"github.com/gnames/cfazone/pkg/obs"
	"github.com/gnames/cfazone/pkg/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type pgStore struct {
	cfg  config.DatabaseConfig
	pool *pgxpool.Pool
}

// New creates a PostgreSQL store (without connecting).
func New(cfg config.DatabaseConfig) cfazone.Store {
	return &pgStore{cfg: cfg}
}

// DSN returns the connection string for the database settings.
func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)
}

// Open establishes a connection pool and creates the schema.
func (p *pgStore) Open(ctx context.Context) error {
	if p.pool != nil {
		return nil
	}
	cfg := p.cfg

	poolConfig, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port, cfg.Database, cfg.User, err)
	}
	poolConfig.MaxConns = 4
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port, cfg.Database, cfg.User, err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg.Host, cfg.Port, cfg.Database, cfg.User, err)
	}
	p.pool = pool

	if err = p.migrate(ctx); err != nil {
		p.Close()
		return err
	}
	slog.Debug("PostgreSQL store opened", "host", cfg.Host, "db", cfg.Database)
	return nil
}

func (p *pgStore) migrate(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(p.pool)
	defer db.Close()

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: db}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err = schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}

	q := `INSERT INTO schema_versions (version, description, applied_at)
		VALUES ($1, $2, $3) ON CONFLICT (version) DO NOTHING`
	_, err = p.pool.Exec(ctx, q,
		schema.Version, "observations store", time.Now().Unix())
	if err != nil {
		return CreateSchemaError(err)
	}
	return nil
}

// Close releases all database connections.
func (p *pgStore) Close() error {
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return nil
}

// Save replaces records of indicators in one transaction. Records are
// inserted with CopyFrom in batches.
func (p *pgStore) Save(
	ctx context.Context,
	inds []obs.Indicator,
	recs []obs.Record,
) error {
	if p.pool == nil {
		return NotConnectedError()
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return SaveError(err)
	}
	defer tx.Rollback(ctx)

	now := time.Now().Unix()
	qInd := `INSERT INTO indicators
		(code, label, description, unit, source, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (code) DO UPDATE SET
			label = EXCLUDED.label,
			description = EXCLUDED.description,
			unit = EXCLUDED.unit,
			source = EXCLUDED.source,
			fetched_at = EXCLUDED.fetched_at`
	for _, v := range inds {
		m := schema.NewIndicator(v, now)
		_, err = tx.Exec(ctx, qInd,
			m.Code, m.Label, m.Description, m.Unit, m.Source, m.FetchedAt)
		if err != nil {
			return SaveError(err)
		}
	}

	codes := cfazone.IndicatorCodes(inds, recs)
	if len(codes) > 0 {
		q := "DELETE FROM observations WHERE indicator = ANY($1)"
		if _, err = tx.Exec(ctx, q, codes); err != nil {
			return SaveError(err)
		}
	}

	batchSize := p.cfg.BatchSize
	if batchSize == 0 {
		batchSize = 10_000
	}
	columns := schema.Columns(schema.Observation{})

	var total int64
	for i := 0; i < len(recs); i += batchSize {
		end := min(i+batchSize, len(recs))
		batch := recs[i:end]

		rows := make([][]any, len(batch))
		for j, r := range batch {
			o := schema.NewObservation(r)
			rows[j] = []any{
				o.ID,
				o.CountryCode,
				o.Country,
				o.Indicator,
				o.Year,
				o.Value,
			}
		}

		count, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"observations"},
			columns,
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return SaveError(err)
		}
		total += count
	}

	if err = tx.Commit(ctx); err != nil {
		return SaveError(err)
	}
	slog.Info("Saved records to PostgreSQL store",
		"indicators", len(codes), "records", total)
	return nil
}

func (p *pgStore) Load(
	ctx context.Context,
	codes []string,
) (*obs.Table, error) {
	if p.pool == nil {
		return nil, NotConnectedError()
	}

	q := `SELECT country_code, country, indicator, year, value
		FROM observations`
	var args []any
	if len(codes) > 0 {
		q += " WHERE indicator = ANY($1)"
		args = append(args, codes)
	}
	q += " ORDER BY indicator, country_code, year"

	rows, err := p.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, QueryError(err)
	}
	defer rows.Close()

	var recs []obs.Record
	for rows.Next() {
		var o schema.Observation
		err = rows.Scan(&o.CountryCode, &o.Country, &o.Indicator,
			&o.Year, &o.Value)
		if err != nil {
			return nil, QueryError(err)
		}
		recs = append(recs, o.Record())
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError(err)
	}
	return obs.NewTable(recs), nil
}

func (p *pgStore) Indicators(ctx context.Context) ([]obs.Indicator, error) {
	if p.pool == nil {
		return nil, NotConnectedError()
	}

	q := `SELECT code, label, description, unit, source, fetched_at
		FROM indicators ORDER BY code`
	rows, err := p.pool.Query(ctx, q)
	if err != nil {
		return nil, QueryError(err)
	}
	defer rows.Close()

	var res []obs.Indicator
	for rows.Next() {
		var m schema.Indicator
		err = rows.Scan(&m.Code, &m.Label, &m.Description, &m.Unit,
			&m.Source, &m.FetchedAt)
		if err != nil {
			return nil, QueryError(err)
		}
		res = append(res, m.Meta())
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError(err)
	}
	return res, nil
}

func (p *pgStore) Stats(ctx context.Context) ([]cfazone.Stat, error) {
	if p.pool == nil {
		return nil, NotConnectedError()
	}

	rows, err := p.pool.Query(ctx, cfazone.StatsQuery)
	if err != nil {
		return nil, QueryError(err)
	}
	defer rows.Close()

	var res []cfazone.Stat
	for rows.Next() {
		var m schema.Indicator
		var st cfazone.Stat
		err = rows.Scan(&m.Code, &m.Label, &m.Description, &m.Unit,
			&m.Source, &m.FetchedAt,
			&st.Records, &st.Countries, &st.FirstYear, &st.LastYear)
		if err != nil {
			return nil, QueryError(err)
		}
		st.Indicator = m.Meta()
		st.FetchedAt = time.Unix(m.FetchedAt, 0)
		res = append(res, st)
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError(err)
	}
	return res, nil
}
