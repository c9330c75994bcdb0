// Package obs contains the tabular representation of indicator data:
// one Observation per country and year, with one value per indicator.
package obs

import (
	"cmp"
	"math"
	"slices"
)

// Indicator describes an economic time series of the data source.
type Indicator struct {
	// Code is the data source identifier, for example 'NGDP_RPCH'.
	Code string `json:"code"`

	// Label is a short human-readable name, for example
	// 'Real GDP growth'.
	Label string `json:"label"`

	// Description explains what the indicator measures.
	Description string `json:"description,omitempty"`

	// Unit of measurement, for example 'Annual percent change'.
	Unit string `json:"unit,omitempty"`

	// Source is the dataset the indicator comes from.
	Source string `json:"source,omitempty"`
}

// Title returns the label of the indicator or its code if label is empty.
func (i Indicator) Title() string {
	if i.Label != "" {
		return i.Label
	}
	return i.Code
}

// Record is one value of one indicator for one country and year.
type Record struct {
	Code      string  `json:"code"`
	Country   string  `json:"country"`
	Indicator string  `json:"indicator"`
	Year      int     `json:"year"`
	Value     float64 `json:"value"`
}

// Observation contains values of all indicators for a country in a year.
type Observation struct {
	// Country is the name of the country.
	Country string

	// Code is ISO 3166-1 alpha-3 code of the country.
	Code string

	Year int

	// Values maps indicator codes to values. Absent key means the value
	// is missing.
	Values map[string]float64
}

// Value returns the value of an indicator. It returns false if the value
// is missing or is not a number.
func (o Observation) Value(indicator string) (float64, bool) {
	v, ok := o.Values[indicator]
	if !ok || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Table is a collection of observations with indicator columns.
type Table struct {
	// Indicators are the names of value columns.
	Indicators []string

	// Rows are sorted by country code, country name and year.
	Rows []Observation
}

// NewTable pivots records into observations. Indicators are sorted
// alphabetically. If several records share country, year and indicator,
// the last one wins.
func NewTable(recs []Record) *Table {
	type key struct {
		code, country string
		year          int
	}

	inds := make(map[string]struct{})
	idx := make(map[key]int)
	var rows []Observation

	for _, r := range recs {
		inds[r.Indicator] = struct{}{}
		k := key{code: r.Code, country: r.Country, year: r.Year}
		i, ok := idx[k]
		if !ok {
			i = len(rows)
			idx[k] = i
			rows = append(rows, Observation{
				Country: r.Country,
				Code:    r.Code,
				Year:    r.Year,
				Values:  make(map[string]float64),
			})
		}
		rows[i].Values[r.Indicator] = r.Value
	}

	slices.SortFunc(rows, func(a, b Observation) int {
		return cmp.Or(
			cmp.Compare(a.Code, b.Code),
			cmp.Compare(a.Country, b.Country),
			cmp.Compare(a.Year, b.Year),
		)
	})

	res := Table{Rows: rows}
	for k := range inds {
		res.Indicators = append(res.Indicators, k)
	}
	slices.Sort(res.Indicators)
	return &res
}

// HasIndicator checks if a table has a column for the indicator.
func (t *Table) HasIndicator(indicator string) bool {
	return slices.Contains(t.Indicators, indicator)
}

// Len returns the number of observations.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Years returns the first and the last year of the table. It returns zeroes
// for an empty table.
func (t *Table) Years() (int, int) {
	if len(t.Rows) == 0 {
		return 0, 0
	}
	first, last := t.Rows[0].Year, t.Rows[0].Year
	for _, v := range t.Rows[1:] {
		first = min(first, v.Year)
		last = max(last, v.Year)
	}
	return first, last
}

// Records converts the table back to records, ordered by country code, year
// and indicator.
func (t *Table) Records() []Record {
	var res []Record
	for _, o := range t.Rows {
		for _, ind := range t.Indicators {
			v, ok := o.Values[ind]
			if !ok {
				continue
			}
			res = append(res, Record{
				Code:      o.Code,
				Country:   o.Country,
				Indicator: ind,
				Year:      o.Year,
				Value:     v,
			})
		}
	}
	return res
}
