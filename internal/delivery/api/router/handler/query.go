package handler

import (
	"strconv"
	"strings"
	"time"

	"kioskdash/internal/domain/entity"
	domainerrors "kioskdash/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// listQuery is the query string shared by the donation and donor listings.
type listQuery struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order"`

	StartDate      string `query:"start_date"`
	EndDate        string `query:"end_date"`
	MinAmount      string `query:"min_amount"`
	MaxAmount      string `query:"max_amount"`
	Donor          string `query:"donor"`
	IsRecurring    string `query:"is_recurring"`
	ReceiptSent    string `query:"receipt_sent"`
	DonationType   string `query:"donation_type"`
	OrganizationID string `query:"organization_id"`
}

func (q listQuery) page() entity.PageRequest {
	return entity.PageRequest{Page: q.Page, Limit: q.Limit}.Normalize()
}

func (q listQuery) filter() (entity.DonationFilter, error) {
	var (
		f   entity.DonationFilter
		err error
	)

	if f.StartDate, err = parseDate("start_date", q.StartDate, false); err != nil {
		return f, err
	}
	if f.EndDate, err = parseDate("end_date", q.EndDate, true); err != nil {
		return f, err
	}
	if f.MinAmount, err = parseAmount("min_amount", q.MinAmount); err != nil {
		return f, err
	}
	if f.MaxAmount, err = parseAmount("max_amount", q.MaxAmount); err != nil {
		return f, err
	}
	if f.IsRecurring, err = parseBool("is_recurring", q.IsRecurring); err != nil {
		return f, err
	}
	if f.ReceiptSent, err = parseBool("receipt_sent", q.ReceiptSent); err != nil {
		return f, err
	}

	f.Donor = strings.TrimSpace(q.Donor)
	f.DonationType = strings.TrimSpace(q.DonationType)
	f.OrganizationID = strings.TrimSpace(q.OrganizationID)

	return f, nil
}

// bindListQuery decodes the listing query string.
func bindListQuery(c echo.Context) (listQuery, entity.DonationFilter, error) {
	var q listQuery
	if err := c.Bind(&q); err != nil {
		return q, entity.DonationFilter{}, domainerrors.ErrValidationFailed.WithDetails("page and limit must be integers")
	}

	f, err := q.filter()

	return q, f, err
}

// parseDate accepts RFC 3339 timestamps or plain dates. A plain end date
// includes the whole day, since end bounds are exclusive.
func parseDate(field, value string, endOfDay bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}

	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(field + " must be a date (YYYY-MM-DD) or an RFC 3339 timestamp")
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1)
	}

	return &t, nil
}

func parseAmount(field, value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	amount, err := strconv.ParseFloat(value, 64)
	if err != nil || amount < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(field + " must be a non-negative number")
	}

	return &amount, nil
}

func parseBool(field, value string) (*bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(field + " must be true or false")
	}

	return &b, nil
}
