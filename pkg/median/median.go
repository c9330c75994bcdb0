// Package median computes per-year medians of an indicator for CFA and
// NonCFA cohorts and decides which cohort had the higher median more often.
//
// All functions are pure: results depend only on their arguments.
package median

import (
	"math"
	"slices"

	"github.com/gnames/cfazone/pkg/cohort"
	"github.com/gnames/cfazone/pkg/obs"
)

// Membership assigns a country to a cohort for a given year.
// The country is given by its code, or by its name when the code is
// unknown.
type Membership interface {
	Of(country string, year int) cohort.Cohort
}

// Row holds cohort medians of one year.
type Row struct {
	Year            int     `json:"year"`
	CFAMedian       float64 `json:"cfa_median"`
	NonCFAMedian    float64 `json:"noncfa_median"`
	AbsCFAMedian    float64 `json:"abs_cfa_median"`
	AbsNonCFAMedian float64 `json:"abs_noncfa_median"`
}

// Medians computes CFA and NonCFA medians of an indicator for every year.
// Missing values are skipped. Only years where both cohorts have at least
// one value are returned, sorted by year. If no year qualifies, the result
// is empty and error is nil.
//
// It returns MissingColumnError if the table has no such indicator.
func Medians(
	tbl *obs.Table,
	indicator string,
	m Membership,
) ([]Row, error) {
	if tbl == nil || !tbl.HasIndicator(indicator) {
		return nil, MissingColumnError(indicator)
	}

	type acc struct {
		cfa, noncfa []float64
	}
	years := make(map[int]*acc)

	for _, o := range tbl.Rows {
		v, ok := o.Value(indicator)
		if !ok {
			continue
		}

		country := o.Code
		if country == "" {
			country = o.Country
		}

		a, ok := years[o.Year]
		if !ok {
			a = &acc{}
			years[o.Year] = a
		}

		switch m.Of(country, o.Year) {
		case cohort.CFA:
			a.cfa = append(a.cfa, v)
		case cohort.NonCFA:
			a.noncfa = append(a.noncfa, v)
		}
	}

	res := make([]Row, 0, len(years))
	for year, a := range years {
		if len(a.cfa) == 0 || len(a.noncfa) == 0 {
			continue
		}
		cfa := Median(a.cfa)
		noncfa := Median(a.noncfa)
		res = append(res, Row{
			Year:            year,
			CFAMedian:       cfa,
			NonCFAMedian:    noncfa,
			AbsCFAMedian:    math.Abs(cfa),
			AbsNonCFAMedian: math.Abs(noncfa),
		})
	}

	slices.SortFunc(res, func(a, b Row) int {
		return a.Year - b.Year
	})
	return res, nil
}

// Median returns the median of values. For an even number of values it is
// the mean of the two middle ones. It returns NaN for empty input.
// The argument is not modified.
func Median(vals []float64) float64 {
	l := len(vals)
	if l == 0 {
		return math.NaN()
	}
	s := slices.Clone(vals)
	slices.Sort(s)
	if l%2 == 1 {
		return s[l/2]
	}
	return (s[l/2-1] + s[l/2]) / 2
}
