// Package cfazone compares economic indicators of CFA franc zone countries
// with non-CFA West and Middle African countries.
package cfazone

var (
	// Version of cfazone, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)
