package ioreport

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/cfazone/pkg/errcode"
	"github.com/gnames/gn"
)

var (
	// ErrIndicatorNotFound means the data source does not know the
	// indicator code.
	ErrIndicatorNotFound = errors.New("indicator not found")

	// ErrExportFormat means the export format is not supported.
	ErrExportFormat = errors.New("unknown export format")
)

func IndicatorNotFoundError(code string) error {
	msg := `Indicator <em>%s</em> is not provided by IMF DataMapper

Run <em>cfazone indicators</em> to see available codes.`
	vars := []any{code}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IndicatorNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s: %w",
			fn.Name(), code, ErrIndicatorNotFound),
	}
}

func ExportError(path string, err error) error {
	msg := "Cannot export data to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportExportError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}

func RenderError(err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportRenderError,
		Msg:  "Cannot render the report",
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}
