package usecase

import (
	"context"
	"time"

	"kioskdash/internal/domain/entity"
)

// ReportQuery selects the reporting window.
type ReportQuery struct {
	Period         entity.Period
	Start          *time.Time // Required for custom periods.
	End            *time.Time // Required for custom periods.
	OrganizationID string
}

// ReportUsecase computes dashboard statistics and charts over the canonical donation stream.
type ReportUsecase interface {
	GetStatistics(ctx context.Context, scope *entity.Scope, query ReportQuery) (*entity.DashboardStatistics, error)
	GetChart(ctx context.Context, scope *entity.Scope, chartType entity.ChartType, query ReportQuery) (*entity.Chart, error)
}
