package iopg

import (
	"fmt"

	"github.com/gnames/cfazone/pkg/errcode"
	"github.com/gnames/gn"
)

// ConnectionError creates an error for failed connection to
// PostgreSQL.
func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Cannot connect to PostgreSQL store

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>

  2. Verify database <em>%s</em> exists and user <em>%s</em> can use it.

  3. Or switch to the local store:
     <em>store.backend: sqlite</em>`

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: []any{host, port, database, user},
		Err: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, err),
	}
}

// NotConnectedError creates an error for operations attempted
// before Open.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Store operation attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for GORM
// connection failures.
func GORMConnectionError(err error) error {
	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  "Cannot connect to database with GORM",
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// CreateSchemaError creates an error for schema
// creation failures.
func CreateSchemaError(err error) error {
	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  "Cannot create tables of the store",
		Err:  fmt.Errorf("failed to create schema: %w", err),
	}
}

func SaveError(err error) error {
	return &gn.Error{
		Code: errcode.DBSaveError,
		Msg:  "Cannot save records to the store",
		Err:  fmt.Errorf("failed to save records: %w", err),
	}
}

func QueryError(err error) error {
	return &gn.Error{
		Code: errcode.DBQueryError,
		Msg:  "Cannot read data from the store",
		Err:  fmt.Errorf("failed to query store: %w", err),
	}
}
