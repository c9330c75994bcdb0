package iocohort

import (
	"fmt"

	"github.com/gnames/cfazone/pkg/errcode"
	"github.com/gnames/gn"
)

// CohortsConfigError creates an error for when cohorts.yaml
// cannot be loaded.
func CohortsConfigError(path string, err error) error {
	msg := `Cannot load country lists

<em>Configuration file:</em> %s

<em>Possible causes:</em>
  - Invalid YAML format
  - Permission denied

<em>How to fix:</em>
  1. Validate YAML syntax
  2. Delete the file to restore built-in lists: <em>rm %s</em>`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.CohortConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load cohorts config: %w", err),
	}
}
