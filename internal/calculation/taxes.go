package calculation

import (
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal tax brackets: 2019 single-filer rate schedule for all projection
//    years, no inflation indexing.
//    Source: https://www.irs.gov/pub/irs-prior/f1040es--2019.pdf#page=7
// 2. Taxable income arrives already net of deductions; no standard deduction
//    is applied here.
// 3. Tax amounts are floored to whole dollars.

// TaxBracket is one segment of a progressive rate schedule. Base is the tax
// owed on all income up to Threshold, so that
// tax = Base + Rate * (income - Threshold) within the segment.
type TaxBracket struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
	Base      decimal.Decimal
}

// FederalTaxCalculator computes federal income tax over a progressive
// bracket schedule. Brackets are ordered by ascending threshold.
type FederalTaxCalculator struct {
	Year     int
	Brackets []TaxBracket
}

// NewFederalTaxCalculator2019 creates a federal tax calculator using the
// 2019 single-filer schedule.
func NewFederalTaxCalculator2019() *FederalTaxCalculator {
	return &FederalTaxCalculator{
		Year: 2019,
		Brackets: []TaxBracket{
			{decimal.Zero, decimal.NewFromFloat(0.10), decimal.Zero},
			{decimal.NewFromInt(9700), decimal.NewFromFloat(0.12), decimal.NewFromInt(970)},
			{decimal.NewFromInt(39475), decimal.NewFromFloat(0.22), decimal.NewFromInt(4543)},
			{decimal.NewFromInt(84200), decimal.NewFromFloat(0.24), decimal.NewFromFloat(14382.50)},
			{decimal.NewFromInt(160725), decimal.NewFromFloat(0.32), decimal.NewFromFloat(32748.50)},
			{decimal.NewFromInt(204100), decimal.NewFromFloat(0.35), decimal.NewFromFloat(46628.50)},
			{decimal.NewFromInt(510300), decimal.NewFromFloat(0.37), decimal.NewFromFloat(153798.50)},
		},
	}
}

// CalculateTax returns the tax owed on the given taxable income, floored to
// whole dollars. Non-positive income owes nothing. The schedule is
// continuous, so the result is non-decreasing in income.
func (ftc *FederalTaxCalculator) CalculateTax(taxableIncome decimal.Decimal) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	for i := len(ftc.Brackets) - 1; i >= 0; i-- {
		b := ftc.Brackets[i]
		if taxableIncome.GreaterThan(b.Threshold) {
			return b.Base.Add(b.Rate.Mul(taxableIncome.Sub(b.Threshold))).Floor()
		}
	}
	return decimal.Zero
}
