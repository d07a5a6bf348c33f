package verdict

import "testing"

func TestOutcome_Category(t *testing.T) {
	cases := []struct {
		outcome Outcome
		want    Category
	}{
		{Absent(), CategoryAbsent},
		{Decided(CodeTwilight), CategoryTwilight},
		{Decided(CodeNoDifference), CategoryNoDifference},
		{Decided(CodeABetter), CategoryABetter},
		{Decided(CodeBBetter), CategoryBBetter},
	}
	for _, c := range cases {
		if got := c.outcome.Category(); got != c.want {
			t.Errorf("%v: expected %s, got %s", c.outcome, c.want, got)
		}
	}
}

func TestCategories_FixedOrder(t *testing.T) {
	got := Categories()
	want := []Category{CategoryTwilight, CategoryNoDifference, CategoryABetter, CategoryBBetter, CategoryAbsent}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestFrequencyTable_Row(t *testing.T) {
	table := FrequencyTable{Rows: []CategoryRow{{Category: CategoryABetter, Count: 7}}}
	if row := table.Row(CategoryABetter); row == nil || row.Count != 7 {
		t.Fatalf("expected a_better row with count 7, got %+v", row)
	}
	if row := table.Row(CategoryBBetter); row != nil {
		t.Fatalf("expected nil for missing category, got %+v", row)
	}
}
