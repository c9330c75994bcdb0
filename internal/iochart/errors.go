package iochart

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/cfazone/pkg/errcode"
	"github.com/gnames/gn"
)

var (
	// ErrBadColumns means the chart data is empty or columns have
	// different lengths.
	ErrBadColumns = errors.New("empty or uneven columns")

	// ErrFormat means the chart file has an unsupported extension.
	ErrFormat = errors.New("unsupported chart format")
)

func BuildError(label string, err error) error {
	msg := "Cannot build chart <em>%s</em>"
	vars := []any{label}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ChartBuildError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}

func SaveError(path string, err error) error {
	msg := "Cannot save chart to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ChartSaveError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}
