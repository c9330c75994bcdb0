package iosqlite

import (
	"fmt"
	"runtime"

	"github.com/gnames/cfazone/pkg/errcode"
	"github.com/gnames/gn"
)

func ConnectionError(path string, err error) error {
	msg := "Cannot open SQLite store <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}

func NotConnectedError() error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Store is not open",
		Err:  fmt.Errorf("from %s: store is not open", fn.Name()),
	}
}

func CreateSchemaError(err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  "Cannot create tables of the store",
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}

func SaveError(err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBSaveError,
		Msg:  "Cannot save records to the store",
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}

func QueryError(err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBQueryError,
		Msg:  "Cannot read data from the store",
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}
