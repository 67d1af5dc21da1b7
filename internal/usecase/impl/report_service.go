package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"kioskdash/config"
	deliverycontext "kioskdash/internal/delivery/context"
	"kioskdash/internal/domain/entity"
	domainerrors "kioskdash/internal/domain/errors"
	"kioskdash/internal/usecase"

	"github.com/pkg/errors"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
	day         = 24 * time.Hour

	// Daily charts are zero-filled only up to this span.
	maxFilledDays = 366
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	donations      usecase.DonationUsecase
	location       *time.Location
	topDonorsLimit int
	logger         *slog.Logger
	now            func() time.Time
}

// NewReportService is the constructor for reportService.
func NewReportService(
	cfg *config.Config,
	donations usecase.DonationUsecase,
	logger *slog.Logger,
) (usecase.ReportUsecase, error) {
	loc, err := time.LoadLocation(cfg.Reporting.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid reporting timezone %q", cfg.Reporting.Timezone)
	}

	return &reportService{
		donations:      donations,
		location:       loc,
		topDonorsLimit: cfg.Reporting.TopDonorsLimit,
		logger:         logger,
		now:            time.Now,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetStatistics computes the headline numbers for the period and compares them with the preceding window.
func (srv *reportService) GetStatistics(ctx context.Context, scope *entity.Scope, query usecase.ReportQuery) (*entity.DashboardStatistics, error) {
	period, window, err := srv.resolveWindow(query)
	if err != nil {
		return nil, err
	}

	current, err := srv.donationsIn(ctx, scope, window, query.OrganizationID)
	if err != nil {
		return nil, err
	}

	stats := &entity.DashboardStatistics{
		Period:        period,
		Start:         window.Start,
		End:           window.End,
		DonationCount: len(current),
	}

	donors := map[string]struct{}{}
	for _, d := range current {
		stats.TotalAmount += d.Amount
		if d.IsRecurring {
			stats.RecurringCount++
		}
		if d.ReceiptSent {
			stats.ReceiptsSent++
		}
		if d.Email() != "" || d.Name() != "" {
			donors[donorIdentityKey(d)] = struct{}{}
		}
	}
	stats.UniqueDonors = len(donors)
	if stats.DonationCount > 0 {
		stats.AverageAmount = stats.TotalAmount / float64(stats.DonationCount)
	}

	// An unbounded window has nothing before it to compare against.
	if window.Start != nil {
		previousStart := window.Start.Add(-window.Duration())
		previous, err := srv.donationsIn(ctx, scope, entity.TimeRange{Start: &previousStart, End: *window.Start}, query.OrganizationID)
		if err != nil {
			return nil, err
		}
		for _, d := range previous {
			stats.PreviousTotal += d.Amount
		}
		stats.GrowthRate = entity.RoundMoney(entity.GrowthRate(stats.PreviousTotal, stats.TotalAmount))
	}

	stats.TotalAmount = entity.RoundMoney(stats.TotalAmount)
	stats.AverageAmount = entity.RoundMoney(stats.AverageAmount)
	stats.PreviousTotal = entity.RoundMoney(stats.PreviousTotal)

	srv.log(ctx).Debug("Statistics computed",
		slog.String("period", string(period)),
		slog.Int("donations", stats.DonationCount),
	)

	return stats, nil
}

// GetChart buckets the donations of the period. Monthly charts always cover the trailing 12 months.
func (srv *reportService) GetChart(ctx context.Context, scope *entity.Scope, chartType entity.ChartType, query usecase.ReportQuery) (*entity.Chart, error) {
	if !chartType.IsValid() {
		return nil, domainerrors.ErrInvalidChartType
	}

	period, window, err := srv.resolveWindow(query)
	if err != nil {
		return nil, err
	}
	if chartType == entity.ChartMonthly {
		window = srv.trailingMonths(12)
	}

	donations, err := srv.donationsIn(ctx, scope, window, query.OrganizationID)
	if err != nil {
		return nil, err
	}

	var points []entity.ChartPoint
	switch chartType {
	case entity.ChartDaily:
		points = srv.dailyPoints(donations, window)
	case entity.ChartHourly:
		points = srv.hourlyPoints(donations)
	case entity.ChartWeekday:
		points = srv.weekdayPoints(donations)
	case entity.ChartAmountRanges:
		points = amountRangePoints(donations)
	case entity.ChartRecurring:
		points = recurringPoints(donations)
	case entity.ChartTopDonors:
		points = topDonorPoints(donations, srv.topDonorsLimit)
	case entity.ChartMonthly:
		points = srv.monthlyPoints(donations, window)
	}

	for i := range points {
		points[i].Amount = entity.RoundMoney(points[i].Amount)
	}

	return &entity.Chart{Type: chartType, Period: period, Points: points}, nil
}

func (srv *reportService) donationsIn(ctx context.Context, scope *entity.Scope, window entity.TimeRange, organizationID string) ([]*entity.Donation, error) {
	end := window.End
	filter := entity.DonationFilter{
		StartDate:      window.Start,
		EndDate:        &end,
		OrganizationID: organizationID,
	}

	return srv.donations.CanonicalDonations(ctx, scope, filter)
}

// resolveWindow turns a period selector into a half-open window. An empty period means month.
func (srv *reportService) resolveWindow(query usecase.ReportQuery) (entity.Period, entity.TimeRange, error) {
	period := query.Period
	if period == "" {
		period = entity.PeriodMonth
	}
	if !period.IsValid() {
		return "", entity.TimeRange{}, domainerrors.ErrInvalidPeriod
	}

	now := srv.now().In(srv.location)
	since := func(d time.Duration) *time.Time {
		start := now.Add(-d)

		return &start
	}

	switch period {
	case entity.PeriodToday:
		start := startOfDay(now)

		return period, entity.TimeRange{Start: &start, End: start.Add(day)}, nil
	case entity.PeriodWeek:
		return period, entity.TimeRange{Start: since(7 * day), End: now}, nil
	case entity.PeriodMonth:
		return period, entity.TimeRange{Start: since(30 * day), End: now}, nil
	case entity.PeriodYear:
		return period, entity.TimeRange{Start: since(365 * day), End: now}, nil
	case entity.PeriodAll:
		return period, entity.TimeRange{End: now}, nil
	default:
		if query.Start == nil || query.End == nil || !query.Start.Before(*query.End) {
			return "", entity.TimeRange{}, domainerrors.ErrInvalidDateRange
		}
		start := *query.Start

		return period, entity.TimeRange{Start: &start, End: *query.End}, nil
	}
}

func (srv *reportService) trailingMonths(n int) entity.TimeRange {
	now := srv.now().In(srv.location)
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, srv.location)
	start := thisMonth.AddDate(0, -(n - 1), 0)

	return entity.TimeRange{Start: &start, End: thisMonth.AddDate(0, 1, 0)}
}

func (srv *reportService) dailyPoints(donations []*entity.Donation, window entity.TimeRange) []entity.ChartPoint {
	buckets := map[string]*entity.ChartPoint{}
	var labels []string

	if window.Start != nil && window.Duration() <= maxFilledDays*day {
		for d := startOfDay(window.Start.In(srv.location)); d.Before(window.End); d = d.AddDate(0, 0, 1) {
			label := d.Format(dayLayout)
			buckets[label] = &entity.ChartPoint{Label: label}
			labels = append(labels, label)
		}
	}

	for _, d := range donations {
		label := d.CreatedAt.In(srv.location).Format(dayLayout)
		point, ok := buckets[label]
		if !ok {
			point = &entity.ChartPoint{Label: label}
			buckets[label] = point
			labels = append(labels, label)
		}
		point.Count++
		point.Amount += d.Amount
	}

	sort.Strings(labels)

	return collect(labels, buckets)
}

func (srv *reportService) monthlyPoints(donations []*entity.Donation, window entity.TimeRange) []entity.ChartPoint {
	buckets := map[string]*entity.ChartPoint{}
	var labels []string
	for m := *window.Start; m.Before(window.End); m = m.AddDate(0, 1, 0) {
		label := m.Format(monthLayout)
		buckets[label] = &entity.ChartPoint{Label: label}
		labels = append(labels, label)
	}

	for _, d := range donations {
		if point, ok := buckets[d.CreatedAt.In(srv.location).Format(monthLayout)]; ok {
			point.Count++
			point.Amount += d.Amount
		}
	}

	return collect(labels, buckets)
}

func (srv *reportService) hourlyPoints(donations []*entity.Donation) []entity.ChartPoint {
	points := make([]entity.ChartPoint, 24)
	for h := range points {
		points[h].Label = fmt.Sprintf("%02d:00", h)
	}
	for _, d := range donations {
		h := d.CreatedAt.In(srv.location).Hour()
		points[h].Count++
		points[h].Amount += d.Amount
	}

	return points
}

func (srv *reportService) weekdayPoints(donations []*entity.Donation) []entity.ChartPoint {
	points := make([]entity.ChartPoint, 7)
	for wd := range points {
		points[wd].Label = time.Weekday(wd).String()
	}
	for _, d := range donations {
		wd := d.CreatedAt.In(srv.location).Weekday()
		points[wd].Count++
		points[wd].Amount += d.Amount
	}

	return points
}

// amountRangePoints buckets by upper-exclusive thresholds; the last bucket is open-ended.
func amountRangePoints(donations []*entity.Donation) []entity.ChartPoint {
	thresholds := entity.AmountBucketThresholds
	points := make([]entity.ChartPoint, len(thresholds)+1)

	lower := 0.0
	for i, upper := range thresholds {
		points[i].Label = fmt.Sprintf("$%.0f-$%.0f", lower, upper)
		lower = upper
	}
	points[len(thresholds)].Label = fmt.Sprintf("$%.0f+", lower)

	for _, d := range donations {
		i := sort.SearchFloat64s(thresholds, d.Amount)
		if i < len(thresholds) && thresholds[i] == d.Amount {
			i++
		}
		points[i].Count++
		points[i].Amount += d.Amount
	}

	return points
}

func recurringPoints(donations []*entity.Donation) []entity.ChartPoint {
	points := []entity.ChartPoint{{Label: "recurring"}, {Label: "one_time"}}
	for _, d := range donations {
		i := 1
		if d.IsRecurring {
			i = 0
		}
		points[i].Count++
		points[i].Amount += d.Amount
	}

	return points
}

func topDonorPoints(donations []*entity.Donation, limit int) []entity.ChartPoint {
	donors := aggregateDonors(donations)
	sortDonors(donors, "total_amount", entity.SortDesc)
	if len(donors) > limit {
		donors = donors[:limit]
	}

	points := make([]entity.ChartPoint, 0, len(donors))
	for _, donor := range donors {
		label := donor.Name
		if !donor.HasName() {
			label = donor.Email
		}
		points = append(points, entity.ChartPoint{Label: label, Count: donor.DonationCount, Amount: donor.TotalAmount})
	}

	return points
}

func collect(labels []string, buckets map[string]*entity.ChartPoint) []entity.ChartPoint {
	points := make([]entity.ChartPoint, 0, len(labels))
	for _, label := range labels {
		points = append(points, *buckets[label])
	}

	return points
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
