package verdict

// Category labels one row of the outcome frequency table
type Category string

const (
	CategoryTwilight     Category = "twilight"
	CategoryNoDifference Category = "no_difference"
	CategoryABetter      Category = "a_better"
	CategoryBBetter      Category = "b_better"
	CategoryAbsent       Category = "absent"
)

// Categories returns the fixed reporting order of the five categories
func Categories() []Category {
	return []Category{
		CategoryTwilight,
		CategoryNoDifference,
		CategoryABetter,
		CategoryBBetter,
		CategoryAbsent,
	}
}

// Category maps an outcome onto its frequency-table row
func (o Outcome) Category() Category {
	if !o.Decided {
		return CategoryAbsent
	}
	switch o.Code {
	case CodeNoDifference:
		return CategoryNoDifference
	case CodeABetter:
		return CategoryABetter
	case CodeBBetter:
		return CategoryBBetter
	default:
		return CategoryTwilight
	}
}

// CategoryRow holds the count, proportion and exact binomial confidence
// interval for one outcome category
type CategoryRow struct {
	Category   Category `json:"category" db:"category"`
	Count      int      `json:"count" db:"count"`
	Proportion float64  `json:"proportion" db:"proportion"`
	Lower      float64  `json:"ci_lower" db:"ci_lower"`
	Upper      float64  `json:"ci_upper" db:"ci_upper"`
}

// FrequencyTable summarizes a full Monte Carlo run. Built once at the end of
// the run, never mutated afterward. Counts over the five categories always sum
// to Total.
type FrequencyTable struct {
	Total int           `json:"total"`
	Alpha float64       `json:"alpha"`
	Rows  []CategoryRow `json:"rows"`
}

// Row returns the row for a category, or nil if the table lacks it
func (t *FrequencyTable) Row(c Category) *CategoryRow {
	for i := range t.Rows {
		if t.Rows[i].Category == c {
			return &t.Rows[i]
		}
	}
	return nil
}
