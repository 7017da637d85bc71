package monthkey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		month time.Month
		year  int
	}{
		{"JANVIER_2024", time.January, 2024},
		{"MARS_2024", time.March, 2024},
		{"JUILLET_2024", time.July, 2024},
		{"AOUT_2025", time.August, 2025},
		{"DECEMBRE_1999", time.December, 1999},
		{"fevrier_2023", time.February, 2023},
		{" MAI_2024 ", time.May, 2024},
	}
	for _, c := range cases {
		key, err := Parse(c.input)
		require.NoError(t, err, c.input)
		assert.Equal(t, c.month, key.Month, c.input)
		assert.Equal(t, c.year, key.Year, c.input)
	}
}

func TestParse_Invalid(t *testing.T) {
	invalid := []string{"", "MARS", "MARS-2024", "MARCH_2024", "MARS_abc", "MARS_0", "_2024"}
	for _, s := range invalid {
		_, err := Parse(s)
		assert.Error(t, err, s)
	}
}

func TestString_RoundTrip(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		key := Key{Month: m, Year: 2024}
		parsed, err := Parse(key.String())
		require.NoError(t, err)
		assert.Equal(t, key, parsed)
	}
}

func TestFirstOfMonth(t *testing.T) {
	key := Key{Month: time.March, Year: 2024}
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), key.FirstOfMonth())
}

func TestNext(t *testing.T) {
	assert.Equal(t, Key{Month: time.April, Year: 2024}, Key{Month: time.March, Year: 2024}.Next())
	assert.Equal(t, Key{Month: time.January, Year: 2025}, Key{Month: time.December, Year: 2024}.Next())
}

func TestFromTime(t *testing.T) {
	key := FromTime(time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, "JUIN_2024", key.String())
}
