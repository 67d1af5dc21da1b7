package handler

import (
	"net/http"
	"strconv"

	"kioskdash/internal/delivery/api/response"
	"kioskdash/internal/domain/entity"
	domainerrors "kioskdash/internal/domain/errors"
	"kioskdash/internal/errors"
	"kioskdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DonorHandlerParams holds dependencies for DonorHandler, injected by Fx.
type DonorHandlerParams struct {
	fx.In

	DonorUC usecase.DonorUsecase
}

// DonorHandler serves donor identity listing, editing, merging and history.
type DonorHandler struct {
	donorUC usecase.DonorUsecase
}

// NewDonorHandler is the constructor for DonorHandler
func NewDonorHandler(params DonorHandlerParams) *DonorHandler {
	return &DonorHandler{donorUC: params.DonorUC}
}

// UpdateDonorRequest rewrites the identity on every row of a donor.
type UpdateDonorRequest struct {
	NewEmail *string `json:"new_email" validate:"omitempty,email"`
	NewName  *string `json:"new_name" validate:"omitempty,max=255"`
	Notes    *string `json:"notes" validate:"omitempty,max=1000"`
}

// MergeDonorsRequest folds several donors into the primary identity.
type MergeDonorsRequest struct {
	DonorsToMerge []entity.DonorRef `json:"donors_to_merge"`
	PrimaryDonor  entity.DonorRef   `json:"primary_donor"`
	Notes         *string           `json:"notes" validate:"omitempty,max=1000"`
}

// RevertChangeRequest optionally annotates a revert.
type RevertChangeRequest struct {
	Notes *string `json:"notes" validate:"omitempty,max=1000"`
}

// ListDonors returns a page of donors aggregated from the donation stream.
func (h *DonorHandler) ListDonors(c echo.Context) error {
	_, scope, err := requestScope(c)
	if err != nil {
		return err
	}

	q, filter, err := bindListQuery(c)
	if err != nil {
		return errors.WithStack(err)
	}

	list, err := h.donorUC.ListDonors(c.Request().Context(), scope, usecase.DonorQuery{
		Filter:    filter,
		Page:      q.page(),
		SortBy:    q.SortBy,
		SortOrder: entity.ParseSortOrder(q.SortOrder),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, DonorListResponse{
		Donors:     entity.RoundDonors(list.Donors),
		Pagination: list.Pagination,
		Statistics: list.Statistics.Rounded(),
	})
}

// GetDonor returns one donor and its donations.
func (h *DonorHandler) GetDonor(c echo.Context) error {
	_, scope, err := requestScope(c)
	if err != nil {
		return err
	}

	detail, err := h.donorUC.GetDonor(c.Request().Context(), scope, pathParam(c, "identifier"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, DonorDetailResponse{
		Donor:           detail.Donor.Rounded(),
		DonationHistory: toDonationViews(detail.DonationHistory),
	})
}

// FindDuplicates lists groups of donors that probably describe one person.
func (h *DonorHandler) FindDuplicates(c echo.Context) error {
	_, scope, err := requestScope(c)
	if err != nil {
		return err
	}

	groups, err := h.donorUC.DetectDuplicates(c.Request().Context(), scope)
	if err != nil {
		return errors.WithStack(err)
	}

	rounded := make([]*entity.DuplicateGroup, 0, len(groups))
	for _, g := range groups {
		rounded = append(rounded, g.Rounded())
	}

	return response.Success(c, http.StatusOK, DuplicatesResponse{
		DuplicateGroups: rounded,
		TotalGroups:     len(groups),
	})
}

// UpdateDonor rewrites the identity of every donation of a donor.
func (h *DonorHandler) UpdateDonor(c echo.Context) error {
	session, scope, err := requestScope(c)
	if err != nil {
		return err
	}

	var req UpdateDonorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donor input")
	}
	req.NewEmail, req.NewName = trimPtr(req.NewEmail), trimPtr(req.NewName)
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.donorUC.UpdateDonor(c.Request().Context(), session, scope, pathParam(c, "identifier"), usecase.DonorEdit{
		NewEmail: req.NewEmail,
		NewName:  req.NewName,
		Notes:    req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// MergeDonors folds the listed donors into the primary identity.
func (h *DonorHandler) MergeDonors(c echo.Context) error {
	session, scope, err := requestScope(c)
	if err != nil {
		return err
	}

	var req MergeDonorsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merge input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.donorUC.MergeDonors(c.Request().Context(), session, scope, usecase.MergeDonorsInput{
		DonorsToMerge: req.DonorsToMerge,
		PrimaryDonor:  req.PrimaryDonor,
		Notes:         req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MergeResponse{
		ChangeID:         result.ChangeID,
		MergedDonor:      result.MergedDonor,
		DonationsUpdated: result.DonationsUpdated,
	})
}

// RevertChange undoes a recorded change once.
func (h *DonorHandler) RevertChange(c echo.Context) error {
	session, scope, err := requestScope(c)
	if err != nil {
		return err
	}

	changeID, err := changeIDParam(c)
	if err != nil {
		return err
	}

	var req RevertChangeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid revert input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.donorUC.RevertChange(c.Request().Context(), session, scope, changeID, req.Notes)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result)
}

// DeleteChange removes an audit row without touching donations.
func (h *DonorHandler) DeleteChange(c echo.Context) error {
	_, scope, err := requestScope(c)
	if err != nil {
		return err
	}

	changeID, err := changeIDParam(c)
	if err != nil {
		return err
	}

	if err := h.donorUC.DeleteChange(c.Request().Context(), scope, changeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted_change_id": changeID})
}

// GetDonorHistory returns the audit trail of a donor.
func (h *DonorHandler) GetDonorHistory(c echo.Context) error {
	_, scope, err := requestScope(c)
	if err != nil {
		return err
	}

	history, err := h.donorUC.GetDonorHistory(c.Request().Context(), scope, pathParam(c, "identifier"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, HistoryResponse{
		History: history.History,
		Message: history.Message,
	})
}

func changeIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("change id must be a positive integer"))
	}

	return id, nil
}
