// Package cohort assigns countries to the compared country groups.
//
// Assignment is a pure function of a country and a year. Countries of the
// CFA franc zone belong to the CFA cohort, countries of West and Middle
// Africa outside of the zone belong to the NonCFA cohort. A CFA country with
// a join year belongs to the NonCFA cohort before that year and to the CFA
// cohort from that year on. All other countries are Excluded.
package cohort

import (
	"strings"
)

// Cohort is a group of countries compared in a report.
type Cohort int

const (
	// Excluded countries do not participate in any median.
	Excluded Cohort = iota
	// CFA is the group of countries using CFA franc.
	CFA
	// NonCFA is the group of West and Middle African countries outside of
	// the CFA franc zone.
	NonCFA
)

// String returns a short name of the cohort.
func (c Cohort) String() string {
	switch c {
	case CFA:
		return "cfa"
	case NonCFA:
		return "noncfa"
	default:
		return "excluded"
	}
}

// Region tells which list a country was configured in.
type Region string

const (
	CFAZone      Region = "cfa_franc_zone"
	WestAfrica   Region = "west_africa"
	MiddleAfrica Region = "middle_africa"
)

// Country is an entry of a country list.
type Country struct {
	// Code is ISO 3166-1 alpha-3 code used by the data source.
	Code string `yaml:"code"`

	// Name is a human-readable country name.
	Name string `yaml:"name"`

	// Joined is the year a country adopted CFA franc. Zero means the country
	// was a member for the whole observed period. Only meaningful for the
	// CFA franc zone list.
	Joined int `yaml:"joined,omitempty"`
}

// Lists contains country lists that define cohorts.
type Lists struct {
	CFAZone      []Country `yaml:"cfa_franc_zone"`
	WestAfrica   []Country `yaml:"west_africa"`
	MiddleAfrica []Country `yaml:"middle_africa"`
}

type entry struct {
	Country
	region Region
}

// Membership answers cohort questions for configured country lists.
// It is immutable after creation and safe for concurrent use.
type Membership struct {
	lists Lists
	index map[string]entry
}

// New validates country lists and creates a Membership from them.
// A country can appear only once across all lists, its code and name
// cannot be empty, and none of the lists can be empty.
func New(lists Lists) (*Membership, error) {
	res := Membership{
		lists: lists,
		index: make(map[string]entry),
	}

	regions := []struct {
		region    Region
		countries []Country
	}{
		{CFAZone, lists.CFAZone},
		{WestAfrica, lists.WestAfrica},
		{MiddleAfrica, lists.MiddleAfrica},
	}

	for _, r := range regions {
		if len(r.countries) == 0 {
			return nil, EmptyListError(r.region)
		}
		for _, c := range r.countries {
			if strings.TrimSpace(c.Code) == "" ||
				strings.TrimSpace(c.Name) == "" {
				return nil, IncompleteCountryError(r.region, c)
			}
			if c.Joined < 0 {
				return nil, JoinYearError(c)
			}
			if c.Joined > 0 && r.region != CFAZone {
				return nil, JoinYearError(c)
			}
			e := entry{Country: c, region: r.region}
			for _, k := range []string{c.Code, c.Name} {
				key := normalize(k)
				if prev, ok := res.index[key]; ok {
					return nil, DuplicateCountryError(k, prev.region, r.region)
				}
				res.index[key] = e
			}
		}
	}
	return &res, nil
}

// Of returns the cohort of a country in a given year. The country can be
// given by its code or by its name, case does not matter.
func (m *Membership) Of(country string, year int) Cohort {
	e, ok := m.index[normalize(country)]
	if !ok {
		return Excluded
	}
	if e.region != CFAZone {
		return NonCFA
	}
	if e.Joined > 0 && year < e.Joined {
		return NonCFA
	}
	return CFA
}

// Lookup returns a configured country by its code or name.
func (m *Membership) Lookup(country string) (Country, Region, bool) {
	e, ok := m.index[normalize(country)]
	if !ok {
		return Country{}, "", false
	}
	return e.Country, e.region, true
}

// Countries returns all configured countries in the order of CFA franc
// zone, West Africa and Middle Africa lists.
func (m *Membership) Countries() []Country {
	l := m.lists
	res := make(
		[]Country, 0,
		len(l.CFAZone)+len(l.WestAfrica)+len(l.MiddleAfrica),
	)
	res = append(res, l.CFAZone...)
	res = append(res, l.WestAfrica...)
	res = append(res, l.MiddleAfrica...)
	return res
}

// Codes returns codes of all configured countries.
func (m *Membership) Codes() []string {
	countries := m.Countries()
	res := make([]string, len(countries))
	for i := range countries {
		res[i] = countries[i].Code
	}
	return res
}

// Joiners returns countries that adopted CFA franc during the observed
// period.
func (m *Membership) Joiners() []Country {
	var res []Country
	for _, c := range m.lists.CFAZone {
		if c.Joined > 0 {
			res = append(res, c)
		}
	}
	return res
}

// Lists returns a copy of the country lists.
func (m *Membership) Lists() Lists {
	return Lists{
		CFAZone:      append([]Country(nil), m.lists.CFAZone...),
		WestAfrica:   append([]Country(nil), m.lists.WestAfrica...),
		MiddleAfrica: append([]Country(nil), m.lists.MiddleAfrica...),
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
