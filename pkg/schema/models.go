// Package schema provides database models for the observations store.
// The same models create tables in SQLite (DDL from struct tags) and in
// PostgreSQL (GORM AutoMigrate).
package schema

import (
	"strconv"

	"github.com/gnames/cfazone/pkg/obs"
	"github.com/gnames/gnuuid"
)

// Version of the schema, saved in schema_versions table.
const Version = "1"

// DDLGenerator defines how Go models generate SQL DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Indicator stores metadata of a fetched indicator.
type Indicator struct {
	// Code is the data source identifier of the indicator.
	Code string `db:"code" ddl:"TEXT PRIMARY KEY" gorm:"primaryKey"`

	// Label is a short name of the indicator.
	Label string `db:"label" ddl:"TEXT NOT NULL DEFAULT ''"`

	// Description explains what the indicator measures.
	Description string `db:"description" ddl:"TEXT NOT NULL DEFAULT ''"`

	// Unit of measurement.
	Unit string `db:"unit" ddl:"TEXT NOT NULL DEFAULT ''"`

	// Source is the dataset of the indicator.
	Source string `db:"source" ddl:"TEXT NOT NULL DEFAULT ''"`

	// FetchedAt is Unix time of the last download.
	FetchedAt int64 `db:"fetched_at" ddl:"BIGINT NOT NULL DEFAULT 0"`
}

// Observation is one value of an indicator for a country and year.
type Observation struct {
	// ID is UUID v5 generated from 'code|indicator|year'.
	ID string `db:"id" ddl:"TEXT PRIMARY KEY" gorm:"primaryKey"`

	// CountryCode is ISO 3166-1 alpha-3 code.
	CountryCode string `db:"country_code" ddl:"TEXT NOT NULL"`

	// Country is the name of the country.
	Country string `db:"country" ddl:"TEXT NOT NULL"`

	// Indicator is the code of the indicator.
	Indicator string `db:"indicator" ddl:"TEXT NOT NULL"`

	Year int `db:"year" ddl:"INTEGER NOT NULL"`

	Value float64 `db:"value" ddl:"DOUBLE PRECISION NOT NULL" gorm:"type:double precision"`
}

// SchemaVersion tracks schema of the store.
type SchemaVersion struct {
	Version     string `db:"version" ddl:"TEXT PRIMARY KEY" gorm:"primaryKey"`
	Description string `db:"description" ddl:"TEXT"`
	// AppliedAt is Unix time when the schema was created.
	AppliedAt int64 `db:"applied_at" ddl:"BIGINT NOT NULL DEFAULT 0"`
}

// ObservationID returns a stable identifier of a record.
func ObservationID(code, indicator string, year int) string {
	key := code + "|" + indicator + "|" + strconv.Itoa(year)
	return gnuuid.New(key).String()
}

// NewObservation converts a record to its database model.
func NewObservation(r obs.Record) Observation {
	return Observation{
		ID:          ObservationID(r.Code, r.Indicator, r.Year),
		CountryCode: r.Code,
		Country:     r.Country,
		Indicator:   r.Indicator,
		Year:        r.Year,
		Value:       r.Value,
	}
}

// Record converts the model back to a record.
func (o Observation) Record() obs.Record {
	return obs.Record{
		Code:      o.CountryCode,
		Country:   o.Country,
		Indicator: o.Indicator,
		Year:      o.Year,
		Value:     o.Value,
	}
}

// NewIndicator converts indicator metadata to its database model.
func NewIndicator(ind obs.Indicator, fetchedAt int64) Indicator {
	return Indicator{
		Code:        ind.Code,
		Label:       ind.Label,
		Description: ind.Description,
		Unit:        ind.Unit,
		Source:      ind.Source,
		FetchedAt:   fetchedAt,
	}
}

// Meta converts the model to indicator metadata.
func (i Indicator) Meta() obs.Indicator {
	return obs.Indicator{
		Code:        i.Code,
		Label:       i.Label,
		Description: i.Description,
		Unit:        i.Unit,
		Source:      i.Source,
	}
}
