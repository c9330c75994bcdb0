package cohort

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/cfazone/pkg/errcode"
	"github.com/gnames/gn"
)

// ErrInvalidLists is wrapped by all errors of country lists validation.
var ErrInvalidLists = errors.New("invalid country lists")

func EmptyListError(region Region) error {
	msg := "Country list <em>%s</em> cannot be empty"
	vars := []any{region}
	return listsError(msg, vars,
		fmt.Errorf("list %s is empty: %w", region, ErrInvalidLists))
}

func IncompleteCountryError(region Region, c Country) error {
	msg := "Country in <em>%s</em> list needs both code and name " +
		"(code: '%s', name: '%s')"
	vars := []any{region, c.Code, c.Name}
	return listsError(msg, vars,
		fmt.Errorf("incomplete country %#v: %w", c, ErrInvalidLists))
}

func JoinYearError(c Country) error {
	msg := "Join year <em>%d</em> of <em>%s</em> is not allowed, " +
		"only CFA franc zone countries can have a positive join year"
	vars := []any{c.Joined, c.Name}
	return listsError(msg, vars,
		fmt.Errorf("bad join year %d for %s: %w", c.Joined, c.Code,
			ErrInvalidLists))
}

func DuplicateCountryError(country string, prev, cur Region) error {
	msg := "Country <em>%s</em> is listed twice (in %s and in %s)"
	vars := []any{country, prev, cur}
	return listsError(msg, vars,
		fmt.Errorf("duplicate country %s: %w", country, ErrInvalidLists))
}

func listsError(msg string, vars []any, err error) error {
	pc, _, _, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CohortConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %w", fn.Name(), err),
	}
}
