package ioimf

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/cfazone/pkg/errcode"
	"github.com/gnames/gn"
)

// ErrNoData means the data source returned no values for an indicator.
var ErrNoData = errors.New("no data")

// ErrStatus means the data source answered with a status other than 200.
var ErrStatus = errors.New("unexpected HTTP status")

func RequestError(url string, err error) error {
	msg := "Cannot get data from <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SourceRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: request failed: %w", fn.Name(), err),
	}
}

func StatusError(url string, status int) error {
	msg := "Data source returned status %d for <em>%s</em>"
	vars := []any{status, url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SourceStatusError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: status %d: %w", fn.Name(), status, ErrStatus),
	}
}

func DecodeError(url string, err error) error {
	msg := "Cannot decode response from <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SourceDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}

func NoDataError(indicator string) error {
	msg := "No data for indicator <em>%s</em>"
	vars := []any{indicator}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SourceNoDataError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: indicator %s: %w", fn.Name(), indicator, ErrNoData),
	}
}
