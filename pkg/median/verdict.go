package median

// Tolerance is the largest difference between counts of years where one
// cohort median was higher than the other that still counts as a tie.
const Tolerance = 2

// Dominance tells which cohort had the higher median more often.
type Dominance string

const (
	CFADominant    Dominance = "cfa-dominant"
	NonCFADominant Dominance = "noncfa-dominant"
	RoughlyEqual   Dominance = "roughly-equal"
)

// Phrase returns a description of dominance used in report narratives.
func (d Dominance) Phrase() string {
	switch d {
	case CFADominant:
		return "African CFA Countries"
	case NonCFADominant:
		return "Non-CFA Middle Africa and Western Africa Countries"
	default:
		return "CFA and Non CFA countries had roughly an equal amount of " +
			"intervals where their respective medians was higher"
	}
}

// Verdict is the result of medians comparison.
type Verdict struct {
	Dominance Dominance `json:"dominance"`

	// Years are the years of compared rows, in the order of rows.
	Years []int `json:"years"`

	// CFAGreater is the number of years where CFA median was higher.
	CFAGreater int `json:"cfa_greater"`

	// NonCFAGreater is the number of years where NonCFA median was higher.
	NonCFAGreater int `json:"noncfa_greater"`

	// Description is a human-readable form of Dominance.
	Description string `json:"description"`
}

// Classify counts years where CFA median was higher (C) and years where
// NonCFA median was higher (N). Equal medians count toward neither.
// If |C-N| <= Tolerance the verdict is RoughlyEqual, otherwise the cohort
// with the larger count dominates. Empty rows give RoughlyEqual.
func Classify(rows []Row) Verdict {
	res := Verdict{Years: make([]int, 0, len(rows))}
	for _, r := range rows {
		res.Years = append(res.Years, r.Year)
		switch {
		case r.CFAMedian > r.NonCFAMedian:
			res.CFAGreater++
		case r.NonCFAMedian > r.CFAMedian:
			res.NonCFAGreater++
		}
	}

	diff := res.CFAGreater - res.NonCFAGreater
	switch {
	case diff <= Tolerance && diff >= -Tolerance:
		res.Dominance = RoughlyEqual
	case diff > 0:
		res.Dominance = CFADominant
	default:
		res.Dominance = NonCFADominant
	}
	res.Description = res.Dominance.Phrase()
	return res
}
