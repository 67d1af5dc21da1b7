package entity

import (
	"math"
	"time"
)

// Period is a reporting time window selector.
type Period string

const (
	PeriodToday  Period = "today"
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodYear   Period = "year"
	PeriodAll    Period = "all"
	PeriodCustom Period = "custom"
)

// IsValid checks if the Period is a valid value.
func (p Period) IsValid() bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear, PeriodAll, PeriodCustom:
		return true
	default:
		return false
	}
}

// ChartType selects a bucketing of the donation stream.
type ChartType string

const (
	ChartDaily        ChartType = "daily"
	ChartHourly       ChartType = "hourly"
	ChartWeekday      ChartType = "weekday"
	ChartAmountRanges ChartType = "amount_ranges"
	ChartRecurring    ChartType = "recurring"
	ChartTopDonors    ChartType = "top_donors"
	ChartMonthly      ChartType = "monthly"
)

// IsValid checks if the ChartType is a valid value.
func (c ChartType) IsValid() bool {
	switch c {
	case ChartDaily, ChartHourly, ChartWeekday, ChartAmountRanges, ChartRecurring, ChartTopDonors, ChartMonthly:
		return true
	default:
		return false
	}
}

// AmountBucketThresholds are the upper bounds of the amount range chart buckets.
var AmountBucketThresholds = []float64{25, 50, 100, 250, 500, 1000}

// TimeRange is a half-open [Start, End) window. A nil Start means unbounded.
type TimeRange struct {
	Start *time.Time
	End   time.Time
}

// Duration returns the window length, or zero when unbounded.
func (r TimeRange) Duration() time.Duration {
	if r.Start == nil {
		return 0
	}

	return r.End.Sub(*r.Start)
}

// Contains reports whether t falls inside the window.
func (r TimeRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}

	return t.Before(r.End)
}

// DonationStatistics aggregates a filtered, unioned donation set.
type DonationStatistics struct {
	TotalCount          int     `json:"total_count"`
	TotalAmount         float64 `json:"total_amount"`
	AverageAmount       float64 `json:"average_amount"`
	UniqueDonors        int     `json:"unique_donors"`
	UniqueOrganizations int     `json:"unique_organizations"`
}

// Rounded formats monetary values to two decimals for the response boundary.
func (s DonationStatistics) Rounded() DonationStatistics {
	s.TotalAmount = RoundMoney(s.TotalAmount)
	s.AverageAmount = RoundMoney(s.AverageAmount)

	return s
}

// DashboardStatistics is the headline card set for a period.
type DashboardStatistics struct {
	Period         Period     `json:"period"`
	Start          *time.Time `json:"start"`
	End            time.Time  `json:"end"`
	DonationCount  int        `json:"donation_count"`
	TotalAmount    float64    `json:"total_amount"`
	AverageAmount  float64    `json:"average_amount"`
	UniqueDonors   int        `json:"unique_donors"`
	RecurringCount int        `json:"recurring_count"`
	ReceiptsSent   int        `json:"receipts_sent"`
	PreviousTotal  float64    `json:"previous_period_total"`
	GrowthRate     float64    `json:"growth_rate"`
}

// ChartPoint is one bucket of a chart.
type ChartPoint struct {
	Label  string  `json:"label"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// Chart is a bucketed aggregate for one chart type.
type Chart struct {
	Type   ChartType    `json:"type"`
	Period Period       `json:"period"`
	Points []ChartPoint `json:"points"`
}

// RoundMoney rounds to two decimal places.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// GrowthRate compares the current window total against the previous one, in percent.
// A zero previous window yields 100 when the current window is positive and 0 otherwise.
func GrowthRate(previous, current float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}

		return 0
	}

	return (current - previous) / previous * 100
}
