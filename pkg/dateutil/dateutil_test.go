package dateutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgeInYear(t *testing.T) {
	assert.Equal(t, 70, AgeInYear(1949, 2019))
	assert.Equal(t, 0, AgeInYear(2019, 2019))
	assert.Equal(t, 0, AgeInYear(2020, 2019), "future birth years floor at zero")
}

func TestFirstDistributionYear(t *testing.T) {
	tests := []struct {
		name       string
		birthYear  int
		birthMonth int
		expected   int
	}{
		{"January birthday", 1949, 1, 2019},
		{"June birthday starts at 70", 1949, 6, 2019},
		{"July birthday waits until 71", 1949, 7, 2020},
		{"December birthday waits until 71", 1949, 12, 2020},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FirstDistributionYear(tt.birthYear, tt.birthMonth))
		})
	}
}
