package handler

import (
	"time"

	"kioskdash/internal/domain/entity"
	"kioskdash/internal/usecase"
)

// DonationView is the JSON shape of a canonical donation.
type DonationView struct {
	ID             int64     `json:"id"`
	Source         string    `json:"source"`
	OrganizationID string    `json:"organization_id"`
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency"`
	DonorName      *string   `json:"donor_name"`
	DonorEmail     *string   `json:"donor_email"`
	PaymentID      string    `json:"payment_id"`
	OrderID        string    `json:"order_id,omitempty"`
	PaymentStatus  string    `json:"payment_status"`
	ReceiptSent    bool      `json:"receipt_sent"`
	IsRecurring    bool      `json:"is_recurring"`
	IsCustomAmount bool      `json:"is_custom_amount"`
	DonationType   string    `json:"donation_type,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toDonationView(d *entity.Donation) DonationView {
	return DonationView{
		ID:             d.ID,
		Source:         string(d.Source),
		OrganizationID: d.OrganizationID,
		Amount:         entity.RoundMoney(d.Amount),
		Currency:       d.Currency,
		DonorName:      d.DonorName,
		DonorEmail:     d.DonorEmail,
		PaymentID:      d.PaymentID,
		OrderID:        d.OrderID,
		PaymentStatus:  d.PaymentStatus,
		ReceiptSent:    d.ReceiptSent,
		IsRecurring:    d.IsRecurring,
		IsCustomAmount: d.IsCustomAmount,
		DonationType:   d.DonationType,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func toDonationViews(donations []*entity.Donation) []DonationView {
	views := make([]DonationView, 0, len(donations))
	for _, d := range donations {
		views = append(views, toDonationView(d))
	}

	return views
}

// DonationListResponse is one page of donations.
type DonationListResponse struct {
	Donations      []DonationView            `json:"donations"`
	Pagination     entity.Pagination         `json:"pagination"`
	Statistics     entity.DonationStatistics `json:"statistics"`
	FiltersApplied map[string]any            `json:"filters_applied"`
}

// DonorListResponse is one page of donors.
type DonorListResponse struct {
	Donors     []*entity.Donor        `json:"donors"`
	Pagination entity.Pagination      `json:"pagination"`
	Statistics entity.DonorStatistics `json:"statistics"`
}

// DonorDetailResponse is a donor and its donations.
type DonorDetailResponse struct {
	Donor           *entity.Donor  `json:"donor"`
	DonationHistory []DonationView `json:"donation_history"`
}

// DuplicatesResponse lists probable duplicate donors.
type DuplicatesResponse struct {
	DuplicateGroups []*entity.DuplicateGroup `json:"duplicate_groups"`
	TotalGroups     int                      `json:"total_groups"`
}

// MergeResponse describes a completed merge.
type MergeResponse struct {
	ChangeID         int64           `json:"change_id,omitempty"`
	MergedDonor      entity.DonorRef `json:"merged_donor"`
	DonationsUpdated int             `json:"donations_updated"`
}

// HistoryResponse is the audit trail of one donor.
type HistoryResponse struct {
	History []*entity.DonorChange `json:"history"`
	Message string                `json:"message,omitempty"`
}

// ImpersonatorView identifies the admin behind an impersonation session.
type ImpersonatorView struct {
	Email          string `json:"email"`
	OrganizationID string `json:"organization_id"`
	MerchantID     string `json:"merchant_id"`
	MerchantName   string `json:"merchant_name"`
}

// SessionView is the JSON shape of a session.
type SessionView struct {
	Authenticated         bool              `json:"authenticated"`
	OrganizationID        string            `json:"organization_id"`
	CurrentOrganizationID string            `json:"current_organization_id"`
	MerchantID            string            `json:"merchant_id"`
	MerchantName          string            `json:"merchant_name"`
	Email                 string            `json:"email"`
	IsSuperAdmin          bool              `json:"is_super_admin"`
	Impersonating         string            `json:"impersonating,omitempty"`
	Impersonator          *ImpersonatorView `json:"impersonator,omitempty"`
	ExpiresAt             time.Time         `json:"expires_at"`
}

// AnonymousSessionView answers the session probe of a signed-out caller.
type AnonymousSessionView struct {
	Authenticated bool `json:"authenticated"`
}

func toSessionView(s *entity.Session) SessionView {
	view := SessionView{
		Authenticated:         true,
		OrganizationID:        s.OrganizationID,
		CurrentOrganizationID: s.CurrentOrganizationID(),
		MerchantID:            s.MerchantID,
		MerchantName:          s.MerchantName,
		Email:                 s.Email,
		IsSuperAdmin:          s.IsSuperAdmin,
		Impersonating:         s.Impersonating,
		ExpiresAt:             s.ExpiresAt,
	}
	if s.Impersonator != nil {
		view.Impersonator = &ImpersonatorView{
			Email:          s.Impersonator.Email,
			OrganizationID: s.Impersonator.OrganizationID,
			MerchantID:     s.Impersonator.MerchantID,
			MerchantName:   s.Impersonator.MerchantName,
		}
	}

	return view
}

// SessionTokenResponse returns a new credential alongside the cookie, for Bearer clients.
type SessionTokenResponse struct {
	Token   string      `json:"token"`
	Session SessionView `json:"session"`
}

func toSessionTokenResponse(t *usecase.SessionToken) SessionTokenResponse {
	return SessionTokenResponse{Token: t.Token, Session: toSessionView(t.Session)}
}

// OrganizationView is the JSON shape of an organization.
type OrganizationView struct {
	OrganizationID string    `json:"organization_id"`
	MerchantID     string    `json:"merchant_id"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"created_at"`
}

func toOrganizationViews(orgs []*entity.Organization) []OrganizationView {
	views := make([]OrganizationView, 0, len(orgs))
	for _, o := range orgs {
		views = append(views, OrganizationView{
			OrganizationID: o.ID,
			MerchantID:     o.MerchantID,
			Name:           o.Name,
			CreatedAt:      o.CreatedAt,
		})
	}

	return views
}
