// Package iosqlite implements the observations store as a local SQLite
// file. It uses a pure Go driver, so the store works without CGo.
package iosqlite

import (
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/gnames/cfazone/pkg/cfazone"
	"github.com/gnames/cfazone/pkg/obs"
	"github.com/gnames/cfazone/pkg/schema"
	"github.com/gnames/gnsys"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

type sqliteStore struct {
	path string
	db   *sql.DB
}

// New creates a store at the path of a SQLite file. Use ':memory:' for
// a temporary in-memory store.
func New(path string) cfazone.Store {
	return &sqliteStore{path: path}
}

func (s *sqliteStore) Open(ctx context.Context) error {
	if s.db != nil {
		return nil
	}

	if s.path != ":memory:" {
		if err := gnsys.MakeDir(filepath.Dir(s.path)); err != nil {
			return ConnectionError(s.path, err)
		}
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return ConnectionError(s.path, err)
	}
	// every connection to ':memory:' gets its own database
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return ConnectionError(s.path, err)
	}

	for _, q := range schema.DDL() {
		if _, err = db.ExecContext(ctx, q); err != nil {
			db.Close()
			return CreateSchemaError(err)
		}
	}

	q := `INSERT OR IGNORE INTO schema_versions
		(version, description, applied_at) VALUES (?, ?, ?)`
	_, err = db.ExecContext(ctx, q,
		schema.Version, "observations store", time.Now().Unix())
	if err != nil {
		db.Close()
		return CreateSchemaError(err)
	}

	s.db = db
	slog.Debug("SQLite store opened", "path", s.path)
	return nil
}

func (s *sqliteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *sqliteStore) Save(
	ctx context.Context,
	inds []obs.Indicator,
	recs []obs.Record,
) error {
	if s.db == nil {
		return NotConnectedError()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SaveError(err)
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	qInd := `INSERT INTO indicators
		(code, label, description, unit, source, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			label = excluded.label,
			description = excluded.description,
			unit = excluded.unit,
			source = excluded.source,
			fetched_at = excluded.fetched_at`
	for _, v := range inds {
		m := schema.NewIndicator(v, now)
		_, err = tx.ExecContext(ctx, qInd,
			m.Code, m.Label, m.Description, m.Unit, m.Source, m.FetchedAt)
		if err != nil {
			return SaveError(err)
		}
	}

	codes := cfazone.IndicatorCodes(inds, recs)
	if len(codes) > 0 {
		q := "DELETE FROM observations WHERE indicator IN (" +
			placeholders(len(codes)) + ")"
		if _, err = tx.ExecContext(ctx, q, toAny(codes)...); err != nil {
			return SaveError(err)
		}
	}

	cols := schema.Columns(schema.Observation{})
	qObs := "INSERT INTO observations (" + strings.Join(cols, ", ") +
		") VALUES (" + placeholders(len(cols)) + ")"
	stmt, err := tx.PrepareContext(ctx, qObs)
	if err != nil {
		return SaveError(err)
	}
	defer stmt.Close()

	for _, r := range recs {
		o := schema.NewObservation(r)
		_, err = stmt.ExecContext(ctx,
			o.ID, o.CountryCode, o.Country, o.Indicator, o.Year, o.Value)
		if err != nil {
			return SaveError(err)
		}
	}

	if err = tx.Commit(); err != nil {
		return SaveError(err)
	}
	slog.Info("Saved records to SQLite store",
		"indicators", len(codes), "records", len(recs))
	return nil
}

func (s *sqliteStore) Load(
	ctx context.Context,
	codes []string,
) (*obs.Table, error) {
	if s.db == nil {
		return nil, NotConnectedError()
	}

	q := `SELECT country_code, country, indicator, year, value
		FROM observations`
	if len(codes) > 0 {
		q += " WHERE indicator IN (" + placeholders(len(codes)) + ")"
	}
	q += " ORDER BY indicator, country_code, year"

	rows, err := s.db.QueryContext(ctx, q, toAny(codes)...)
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

func (s *sqliteStore) Indicators(ctx context.Context) ([]obs.Indicator, error) {
	if s.db == nil {
		return nil, NotConnectedError()
	}

	q := `SELECT code, label, description, unit, source, fetched_at
		FROM indicators ORDER BY code`
	rows, err := s.db.QueryContext(ctx, q)
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

func (s *sqliteStore) Stats(ctx context.Context) ([]cfazone.Stat, error) {
	if s.db == nil {
		return nil, NotConnectedError()
	}

	rows, err := s.db.QueryContext(ctx, cfazone.StatsQuery)
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

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func toAny(ss []string) []any {
	res := make([]any, len(ss))
	for i := range ss {
		res[i] = ss[i]
	}
	return res
}
