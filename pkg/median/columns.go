package median

// Column names of the column-oriented form of median rows.
const (
	ColYear            = "Year"
	ColCFAMedian       = "cfa_median"
	ColNonCFAMedian    = "noncfa_median"
	ColAbsCFAMedian    = "abs_cfa_median"
	ColAbsNonCFAMedian = "abs_noncfa_median"
)

// ColumnNames lists columns in the order used by tables and exports.
var ColumnNames = []string{
	ColYear,
	ColCFAMedian,
	ColNonCFAMedian,
	ColAbsCFAMedian,
	ColAbsNonCFAMedian,
}

// Columns converts rows to a mapping from column name to values.
// Every column has the same length as rows. Years are stored as floats,
// so all columns can be plotted directly.
func Columns(rows []Row) map[string][]float64 {
	res := make(map[string][]float64, len(ColumnNames))
	for _, c := range ColumnNames {
		res[c] = make([]float64, len(rows))
	}
	for i, r := range rows {
		res[ColYear][i] = float64(r.Year)
		res[ColCFAMedian][i] = r.CFAMedian
		res[ColNonCFAMedian][i] = r.NonCFAMedian
		res[ColAbsCFAMedian][i] = r.AbsCFAMedian
		res[ColAbsNonCFAMedian][i] = r.AbsNonCFAMedian
	}
	return res
}

// Values returns row values in the order of ColumnNames.
func (r Row) Values() []float64 {
	return []float64{
		float64(r.Year),
		r.CFAMedian,
		r.NonCFAMedian,
		r.AbsCFAMedian,
		r.AbsNonCFAMedian,
	}
}
