package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestDistributionPeriod covers the age-70½ start rule and the table bounds.
func TestDistributionPeriod(t *testing.T) {
	tests := []struct {
		name           string
		birthYear      int
		birthMonth     int
		year           int
		expectedPeriod string
		expectedOK     bool
		description    string
	}{
		{
			name:           "Turns 70 by June 30",
			birthYear:      1949,
			birthMonth:     6,
			year:           2019,
			expectedPeriod: "27.4",
			expectedOK:     true,
			description:    "Born in the first half of the year, distributions start at 70",
		},
		{
			name:        "Turns 70 on July 1 or later",
			birthYear:   1949,
			birthMonth:  7,
			year:        2019,
			expectedOK:  false,
			description: "Born in the second half of the year, no distribution until 71",
		},
		{
			name:           "Turns 71, born June",
			birthYear:      1948,
			birthMonth:     6,
			year:           2019,
			expectedPeriod: "26.5",
			expectedOK:     true,
			description:    "Second distribution year",
		},
		{
			name:           "Turns 71, born July",
			birthYear:      1948,
			birthMonth:     7,
			year:           2019,
			expectedPeriod: "26.5",
			expectedOK:     true,
			description:    "First distribution year for a second-half birthday",
		},
		{
			name:           "Age between 70 and 115",
			birthYear:      2019 - 90,
			birthMonth:     3,
			year:           2019,
			expectedPeriod: "11.4",
			expectedOK:     true,
			description:    "Age 90 reads the table directly",
		},
		{
			name:           "Age 115 uses the last table entry",
			birthYear:      2019 - 115,
			birthMonth:     3,
			year:           2019,
			expectedPeriod: "1.9",
			expectedOK:     true,
			description:    "Last row of the Uniform Lifetime Table",
		},
		{
			name:           "Age beyond the table clamps",
			birthYear:      2019 - 116,
			birthMonth:     3,
			year:           2019,
			expectedPeriod: "1.9",
			expectedOK:     true,
			description:    "Ages past 115 keep the age-115 divisor",
		},
		{
			name:        "Under 70",
			birthYear:   2019 - 69,
			birthMonth:  3,
			year:        2019,
			expectedOK:  false,
			description: "No distribution before age 70",
		},
		{
			name:        "Not yet born",
			birthYear:   2020,
			birthMonth:  3,
			year:        2019,
			expectedOK:  false,
			description: "Negative ages are treated as not yet eligible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := NewRMDCalculator(tt.birthYear, tt.birthMonth)
			period, ok := calc.DistributionPeriod(tt.year)
			assert.Equal(t, tt.expectedOK, ok, tt.description)
			if tt.expectedOK {
				expected, err := decimal.NewFromString(tt.expectedPeriod)
				assert.NoError(t, err)
				assert.True(t, expected.Equal(period),
					"expected %s, got %s (%s)", expected, period, tt.description)
			}
		})
	}
}

// TestDistributionPeriodTableLookup verifies every in-table age reads the
// entry at age-70.
func TestDistributionPeriodTableLookup(t *testing.T) {
	year := 2019
	for age := 71; age <= 115; age++ {
		calc := NewRMDCalculator(year-age, 3)
		period, ok := calc.DistributionPeriod(year)
		assert.True(t, ok, "age %d should have a distribution period", age)
		assert.True(t, distributionPeriods[age-70].Equal(period), "age %d", age)
	}
}

func TestRequiredDistribution(t *testing.T) {
	calc := NewRMDCalculator(1949, 6)

	t.Run("Exact division", func(t *testing.T) {
		rmd := calc.RequiredDistribution(2019, decimal.NewFromInt(27400))
		assert.True(t, decimal.NewFromInt(1000).Equal(rmd), "27400 / 27.4 = 1000, got %s", rmd)
	})

	t.Run("Fractional dollars are discarded", func(t *testing.T) {
		rmd := calc.RequiredDistribution(2019, decimal.NewFromInt(10000))
		// 10000 / 27.4 = 364.96...
		assert.True(t, decimal.NewFromInt(364).Equal(rmd), "got %s", rmd)
	})

	t.Run("Zero when not yet eligible", func(t *testing.T) {
		young := NewRMDCalculator(1980, 6)
		rmd := young.RequiredDistribution(2019, decimal.NewFromInt(100000))
		assert.True(t, rmd.IsZero())
	})
}
