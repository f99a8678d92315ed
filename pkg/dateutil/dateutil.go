// Package dateutil provides calendar helpers for retirement planning.
package dateutil

// AgeInYear returns the age a person reaches during the given calendar year,
// floored at zero for years before birth.
func AgeInYear(birthYear, year int) int {
	if year < birthYear {
		return 0
	}
	return year - birthYear
}

// FirstDistributionYear returns the first calendar year in which required
// minimum distributions apply under the age-70½ rule: people born in the
// first half of the year take their first distribution in the year they turn
// 70, everyone else the year after.
func FirstDistributionYear(birthYear, birthMonth int) int {
	if birthMonth < 7 {
		return birthYear + 70
	}
	return birthYear + 71
}
