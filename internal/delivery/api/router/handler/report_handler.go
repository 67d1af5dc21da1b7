package handler

import (
	"net/http"

	"kioskdash/internal/delivery/api/response"
	"kioskdash/internal/domain/entity"
	"kioskdash/internal/errors"
	"kioskdash/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves the dashboard statistics and charts.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
}

// NewReportHandler is the constructor for ReportHandler.
func NewReportHandler(reportUC usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// reportRequest selects the reporting window.
type reportRequest struct {
	Period         string `query:"period"`
	StartDate      string `query:"start_date"`
	EndDate        string `query:"end_date"`
	OrganizationID string `query:"organization_id"`
}

func bindReportQuery(c echo.Context) (usecase.ReportQuery, error) {
	var req reportRequest
	if err := c.Bind(&req); err != nil {
		return usecase.ReportQuery{}, errors.WithStack(err)
	}

	start, err := parseDate("start_date", req.StartDate, false)
	if err != nil {
		return usecase.ReportQuery{}, errors.WithStack(err)
	}
	end, err := parseDate("end_date", req.EndDate, true)
	if err != nil {
		return usecase.ReportQuery{}, errors.WithStack(err)
	}

	return usecase.ReportQuery{
		Period:         entity.Period(req.Period),
		Start:          start,
		End:            end,
		OrganizationID: req.OrganizationID,
	}, nil
}

// GetStatistics returns the headline cards for a period.
func (h *ReportHandler) GetStatistics(c echo.Context) error {
	_, scope, err := requestScope(c)
	if err != nil {
		return err
	}

	query, err := bindReportQuery(c)
	if err != nil {
		return err
	}

	stats, err := h.reportUC.GetStatistics(c.Request().Context(), scope, query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// GetChart returns one bucketed chart for a period.
func (h *ReportHandler) GetChart(c echo.Context) error {
	_, scope, err := requestScope(c)
	if err != nil {
		return err
	}

	query, err := bindReportQuery(c)
	if err != nil {
		return err
	}

	chart, err := h.reportUC.GetChart(c.Request().Context(), scope, entity.ChartType(c.Param("type")), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, chart)
}
