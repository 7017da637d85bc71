package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestSeniorityRate_Tiers(t *testing.T) {
	ref := date(2024, time.June, 15)

	cases := []struct {
		name string
		hire time.Time
		want string
	}{
		{"under two years", date(2023, time.January, 1), "0"},
		{"two years", date(2022, time.June, 15), "0.05"},
		{"four years", date(2020, time.March, 1), "0.05"},
		{"five years", date(2019, time.June, 15), "0.10"},
		{"eleven years", date(2013, time.June, 16), "0.10"},
		{"twelve years", date(2012, time.June, 15), "0.15"},
		{"twenty years", date(2004, time.June, 15), "0.20"},
		{"twenty-five years", date(1999, time.June, 15), "0.25"},
		{"forty years", date(1984, time.January, 1), "0.25"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := SeniorityRate(c.hire, ref)
			assert.True(t, d(c.want).Equal(got), "rate = %s, want %s", got, c.want)
		})
	}
}

// Anniversary boundaries: the tier flips on the exact anniversary day, one
// day earlier still resolves to the lower tier.
func TestSeniorityRate_AnniversaryBoundaries(t *testing.T) {
	hire := date(2000, time.June, 15)

	boundaries := []struct {
		years int
		want  string
		below string
	}{
		{2, "0.05", "0"},
		{5, "0.10", "0.05"},
		{12, "0.15", "0.10"},
		{20, "0.20", "0.15"},
		{25, "0.25", "0.20"},
	}

	for _, b := range boundaries {
		anniversary := date(2000+b.years, time.June, 15)
		got := SeniorityRate(hire, anniversary)
		assert.True(t, d(b.want).Equal(got), "%d years exactly: rate = %s, want %s", b.years, got, b.want)

		dayBefore := anniversary.AddDate(0, 0, -1)
		got = SeniorityRate(hire, dayBefore)
		assert.True(t, d(b.below).Equal(got), "%d years minus a day: rate = %s, want %s", b.years, got, b.below)
	}
}

func TestSeniorityRate_ReferenceBeforeHire(t *testing.T) {
	got := SeniorityRate(date(2024, time.June, 1), date(2023, time.June, 1))
	assert.True(t, got.IsZero())
}
