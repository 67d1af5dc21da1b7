package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"kioskdash/internal/delivery/api/response"
	"kioskdash/internal/domain/entity"
	"kioskdash/internal/errors"
	"kioskdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DonationHandlerParams holds dependencies for DonationHandler, injected by Fx.
type DonationHandlerParams struct {
	fx.In

	DonationUC usecase.DonationUsecase
	DonorUC    usecase.DonorUsecase
}

// DonationHandler serves the transaction list, lookup, edit and export endpoints.
type DonationHandler struct {
	donationUC usecase.DonationUsecase
	donorUC    usecase.DonorUsecase
}

// NewDonationHandler is the constructor for DonationHandler
func NewDonationHandler(params DonationHandlerParams) *DonationHandler {
	return &DonationHandler{
		donationUC: params.DonationUC,
		donorUC:    params.DonorUC,
	}
}

// UpdateDonationRequest edits the donor identity on a single transaction.
type UpdateDonationRequest struct {
	DonorEmail *string `json:"donor_email" validate:"omitempty,email"`
	DonorName  *string `json:"donor_name" validate:"omitempty,max=255"`
	Notes      *string `json:"notes" validate:"omitempty,max=1000"`
}

// ListDonations returns a page of the canonical donation stream.
func (h *DonationHandler) ListDonations(c echo.Context) error {
	_, scope, err := requestScope(c)
	if err != nil {
		return err
	}

	q, filter, err := bindListQuery(c)
	if err != nil {
		return errors.WithStack(err)
	}

	list, err := h.donationUC.ListDonations(c.Request().Context(), scope, usecase.DonationQuery{
		Filter:    filter,
		Page:      q.page(),
		SortBy:    q.SortBy,
		SortOrder: entity.ParseSortOrder(q.SortOrder),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, DonationListResponse{
		Donations:      toDonationViews(list.Donations),
		Pagination:     list.Pagination,
		Statistics:     list.Statistics.Rounded(),
		FiltersApplied: list.FiltersApplied,
	})
}

// ExportDonations downloads the filtered, sorted stream as CSV.
func (h *DonationHandler) ExportDonations(c echo.Context) error {
	_, scope, err := requestScope(c)
	if err != nil {
		return err
	}

	q, filter, err := bindListQuery(c)
	if err != nil {
		return errors.WithStack(err)
	}

	// Buffer so a failed export still renders a JSON error.
	var buf bytes.Buffer
	if err := h.donationUC.ExportDonations(c.Request().Context(), scope, usecase.DonationQuery{
		Filter:    filter,
		SortBy:    q.SortBy,
		SortOrder: entity.ParseSortOrder(q.SortOrder),
	}, &buf); err != nil {
		return errors.WithStack(err)
	}

	filename := fmt.Sprintf("donations-%s.csv", time.Now().UTC().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// GetDonation looks up one donation by payment id.
func (h *DonationHandler) GetDonation(c echo.Context) error {
	_, scope, err := requestScope(c)
	if err != nil {
		return err
	}

	donation, err := h.donationUC.GetDonation(c.Request().Context(), scope, pathParam(c, "paymentId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDonationView(donation))
}

// UpdateDonation edits the donor identity of one ledger transaction.
func (h *DonationHandler) UpdateDonation(c echo.Context) error {
	session, scope, err := requestScope(c)
	if err != nil {
		return err
	}

	var req UpdateDonationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donation input")
	}
	req.DonorEmail, req.DonorName = trimPtr(req.DonorEmail), trimPtr(req.DonorName)
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.donorUC.UpdateTransaction(c.Request().Context(), session, scope, pathParam(c, "paymentId"), usecase.DonorEdit{
		NewEmail: req.DonorEmail,
		NewName:  req.DonorName,
		Notes:    req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}
