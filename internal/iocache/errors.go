package iocache

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/cfazone/pkg/errcode"
	"github.com/gnames/gn"
)

// ErrNotOpen means the cache database was not opened.
var ErrNotOpen = errors.New("cache is not open")

func CacheOpenError(dir string, err error) error {
	msg := "Cannot open response cache at <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CacheError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open cache: %w", fn.Name(), err),
	}
}

func CacheNotOpenError() error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CacheError,
		Msg:  "Response cache is not open",
		Err:  fmt.Errorf("from %s: %w", fn.Name(), ErrNotOpen),
	}
}

func CacheClearError(dir string, err error) error {
	msg := "Cannot remove cached responses from <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CacheError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot clear cache: %w", fn.Name(), err),
	}
}
