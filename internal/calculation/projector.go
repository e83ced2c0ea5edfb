package calculation

import (
	"math"

	"github.com/firecalc/compound-calculator/internal/domain"
)

const (
	// FireMultiplier converts annual expenses into the independence target
	// (the reciprocal of a 4% withdrawal rate).
	FireMultiplier = 25.0

	// SafeWithdrawalRate is the annual withdrawal rate applied to each
	// year's discounted ending balance.
	SafeWithdrawalRate = 0.04

	// growthFactorFloor keeps the periodic-rate root defined when fee drag
	// and losses would push the annual growth factor to zero or below.
	growthFactorFloor = 0.0001
)

// Options carries caller-resolved context for a projection run.
type Options struct {
	// RemainingContributionMonths is the number of months of the first
	// compounding year during which contributions apply, normally resolved
	// from the purchase date via dateutil.MonthsRemainingInYear. Clamped to
	// [0,12]. A nil Options means a full first year (12).
	RemainingContributionMonths float64
}

// Project runs the period-stepped compounding algorithm over s and returns
// a fresh ProjectionResult. It is a pure function: no I/O, no shared state,
// and identical inputs produce bit-identical results. Out-of-domain numeric
// settings are clamped rather than rejected; Project never fails.
func Project(s domain.Settings, opts *Options) domain.ProjectionResult {
	remainingMonths := 12.0
	if opts != nil {
		remainingMonths = opts.RemainingContributionMonths
	}

	compounding := s.CompoundingFrequency
	if compounding < 1 {
		compounding = 1
	}
	years := s.Years
	if math.IsNaN(years) || math.IsInf(years, 0) || years < 1 {
		years = 1
	}

	// Convert the nominal annual cadence into an equivalent amount per
	// compounding period; the result may be fractional.
	contributionPerPeriod := s.Contribution * float64(s.ContributionFrequency) / float64(compounding)
	firstYearFactor := clamp(remainingMonths, 0, 12) / 12

	// Fees drag gross growth multiplicatively, they are not subtracted from
	// the rate itself.
	netAnnualRate := (1+s.AnnualReturn/100)*(1-(s.FundExpenseRatio+s.PlatformFee)/100) - 1
	growthFactor := 1 + netAnnualRate
	if math.IsNaN(growthFactor) || growthFactor < growthFactorFloor {
		growthFactor = growthFactorFloor
	}
	periodicRate := math.Pow(growthFactor, 1/float64(compounding)) - 1

	totalPeriods := int(math.Ceil(years * float64(compounding)))

	fireNumber := s.AnnualExpenses * FireMultiplier
	var fireYear *float64
	if fireNumber > 0 && s.Principal >= fireNumber {
		// Already independent at t=0.
		fireYear = ptr(0)
	}

	yearCount := totalPeriods/compounding + 1
	result := domain.ProjectionResult{
		ChartPoints: make([]domain.ChartPoint, 0, yearCount+1),
		Table:       make([]domain.YearlyBreakdown, 0, yearCount),
	}
	result.ChartPoints = append(result.ChartPoints, domain.ChartPoint{Year: 0, Balance: s.Principal})

	balance := s.Principal
	totalContributions := s.Principal
	previousGrowth := 0.0
	inflationBase := 1 + s.InflationRate/100

	for period := 1; period <= totalPeriods; period++ {
		balance *= 1 + periodicRate

		contributionFactor := 1.0
		if period <= compounding {
			// Still inside the first compounding year.
			contributionFactor = firstYearFactor
		}
		if adjusted := contributionPerPeriod * contributionFactor; adjusted > 0 {
			balance += adjusted
			totalContributions += adjusted
		}

		// A year boundary falls on every compounding multiple, plus the
		// final period when the horizon ends on a fractional year.
		if period%compounding != 0 && period != totalPeriods {
			continue
		}

		yearExact := float64(period) / float64(compounding)
		yearLabel := math.Round(yearExact*100) / 100
		realBalance := balance / math.Pow(inflationBase, yearExact)

		if fireNumber > 0 && fireYear == nil && realBalance >= fireNumber {
			fireYear = ptr(yearLabel)
		}

		growth := realBalance - totalContributions
		if growth < 0 {
			growth = 0
		}
		annualInterest := growth - previousGrowth
		previousGrowth = growth

		result.ChartPoints = append(result.ChartPoints, domain.ChartPoint{Year: yearLabel, Balance: realBalance})
		result.Table = append(result.Table, domain.YearlyBreakdown{
			Year:              yearLabel,
			EndingBalance:     realBalance,
			Contributions:     totalContributions,
			Growth:            growth,
			AnnualInterest:    annualInterest,
			AllowedWithdrawal: realBalance * SafeWithdrawalRate,
		})
	}

	realEndingBalance := balance / math.Pow(inflationBase, years)
	totalGrowth := realEndingBalance - totalContributions
	if totalGrowth < 0 {
		totalGrowth = 0
	}
	result.Totals = domain.Totals{
		Contributions: totalContributions,
		Growth:        totalGrowth,
		EndingBalance: realEndingBalance,
	}

	result.FireMetrics = domain.FireMetrics{
		FireNumber: fireNumber,
		FireYear:   fireYear,
	}
	if fireYear != nil {
		result.FireMetrics.YearsToFire = ptr(*fireYear)
	}

	return result
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ptr(v float64) *float64 { return &v }
