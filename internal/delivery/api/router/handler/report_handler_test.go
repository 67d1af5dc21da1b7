package handler

import (
	"net/http"
	"testing"
	"time"

	"kioskdash/internal/domain/entity"
	domainerrors "kioskdash/internal/domain/errors"
	mockUsecase "kioskdash/internal/mocks/usecase"
	"kioskdash/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReportHandlerTest(t *testing.T) (*handlerTest, *mockUsecase.MockReportUsecase) {
	ht := newHandlerTest(t)
	reports := mockUsecase.NewMockReportUsecase(t)

	h := NewReportHandler(reports)
	ht.e.GET("/reports/statistics", h.GetStatistics, ht.identity)
	ht.e.GET("/reports/charts/:type", h.GetChart, ht.identity)

	return ht, reports
}

func TestReportHandler_GetStatistics(t *testing.T) {
	ht, reports := newReportHandlerTest(t)

	reports.EXPECT().
		GetStatistics(mock.Anything, ht.scope, usecase.ReportQuery{Period: entity.PeriodWeek, OrganizationID: "org-2"}).
		Return(&entity.DashboardStatistics{Period: entity.PeriodWeek, DonationCount: 4, TotalAmount: 120, GrowthRate: 50}, nil)

	rec := ht.do(http.MethodGet, "/reports/statistics?period=week&organization_id=org-2", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var stats entity.DashboardStatistics
	decodeData(t, rec, &stats)
	assert.Equal(t, 4, stats.DonationCount)
	assert.Equal(t, 50.0, stats.GrowthRate)
}

func TestReportHandler_GetStatistics_CustomPeriod(t *testing.T) {
	ht, reports := newReportHandlerTest(t)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	reports.EXPECT().
		GetStatistics(mock.Anything, ht.scope, usecase.ReportQuery{Period: entity.PeriodCustom, Start: &start, End: &end}).
		Return(&entity.DashboardStatistics{Period: entity.PeriodCustom}, nil)

	rec := ht.do(http.MethodGet, "/reports/statistics?period=custom&start_date=2024-01-01&end_date=2024-01-31", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestReportHandler_GetStatistics_InvalidPeriod(t *testing.T) {
	ht, reports := newReportHandlerTest(t)

	reports.EXPECT().
		GetStatistics(mock.Anything, ht.scope, mock.Anything).
		Return(nil, domainerrors.ErrInvalidPeriod)

	rec := ht.do(http.MethodGet, "/reports/statistics?period=fortnight", "")

	requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_PERIOD")
}

func TestReportHandler_GetChart(t *testing.T) {
	ht, reports := newReportHandlerTest(t)

	reports.EXPECT().
		GetChart(mock.Anything, ht.scope, entity.ChartAmountRanges, usecase.ReportQuery{Period: entity.PeriodAll}).
		Return(&entity.Chart{
			Type:   entity.ChartAmountRanges,
			Period: entity.PeriodAll,
			Points: []entity.ChartPoint{{Label: "$0-$25", Count: 1, Amount: 10}},
		}, nil)
	reports.EXPECT().
		GetChart(mock.Anything, ht.scope, entity.ChartType("pie"), mock.Anything).
		Return(nil, domainerrors.ErrInvalidChartType)

	rec := ht.do(http.MethodGet, "/reports/charts/amount_ranges?period=all", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var chart entity.Chart
	decodeData(t, rec, &chart)
	require.Len(t, chart.Points, 1)
	assert.Equal(t, "$0-$25", chart.Points[0].Label)

	rec = ht.do(http.MethodGet, "/reports/charts/pie", "")
	requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_CHART_TYPE")
}

func TestReportHandler_BadDate(t *testing.T) {
	ht, _ := newReportHandlerTest(t)

	rec := ht.do(http.MethodGet, "/reports/statistics?period=custom&start_date=01/02/2024", "")

	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}
