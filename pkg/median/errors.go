package median

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/cfazone/pkg/errcode"
	"github.com/gnames/gn"
)

// ErrMissingColumn means that an indicator is absent in the table.
var ErrMissingColumn = errors.New("missing column")

func MissingColumnError(indicator string) error {
	msg := "Indicator <em>%s</em> is not in the data table"
	vars := []any{indicator}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MissingColumnError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: column %s: %w",
			fn.Name(), indicator, ErrMissingColumn),
	}
}
