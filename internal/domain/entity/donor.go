package entity

import (
	"strings"
	"time"
)

// SyntheticIdentifierPrefix addresses donors that never gave an email.
// Two different anonymous donors with the same name share an identifier.
const SyntheticIdentifierPrefix = "name_without_email_"

// placeholderNames are never chosen as a donor's display name.
var placeholderNames = map[string]struct{}{
	"anonymous":       {},
	"anonymous donor": {},
	"unknown":         {},
	"n/a":             {},
	"na":              {},
	"none":            {},
	"guest":           {},
}

// DonorIdentity is the parsed form of a donor identifier.
type DonorIdentity struct {
	Email string // Matched case-insensitively when set.
	Name  string // Matched exactly against rows with a NULL email when Email is empty.
}

// IsNameOnly reports whether the identity addresses a donor without an email.
func (d DonorIdentity) IsNameOnly() bool {
	return d.Email == ""
}

// Identifier renders the identity back into its identifier string.
func (d DonorIdentity) Identifier() string {
	if d.Email != "" {
		return d.Email
	}

	return SyntheticIdentifierPrefix + d.Name
}

// ParseDonorIdentifier detects the synthetic name-only form versus a real email.
func ParseDonorIdentifier(identifier string) (DonorIdentity, bool) {
	identifier = strings.TrimSpace(identifier)
	if name, ok := strings.CutPrefix(identifier, SyntheticIdentifierPrefix); ok {
		if name == "" {
			return DonorIdentity{}, false
		}

		return DonorIdentity{Name: name}, true
	}
	if identifier == "" {
		return DonorIdentity{}, false
	}

	return DonorIdentity{Email: identifier}, true
}

// DonorIdentifier returns the identifier of the donor owning a (email, name) pair.
func DonorIdentifier(email, name *string) string {
	if e := StringValue(email); e != "" {
		return e
	}

	return SyntheticIdentifierPrefix + StringValue(name)
}

// IsPlaceholderName reports whether name is a stand-in rather than a real name.
func IsPlaceholderName(name string) bool {
	_, ok := placeholderNames[strings.ToLower(strings.TrimSpace(name))]

	return ok
}

// NormalizeEmail lower-cases and trims an email for comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeName lower-cases, trims and collapses inner whitespace.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Donor is a derived aggregation over canonical donations. It is never stored.
type Donor struct {
	Identifier        string    `json:"identifier"`
	Email             string    `json:"donor_email"`
	Name              string    `json:"donor_name"`
	DonationCount     int       `json:"donation_count"`
	TotalAmount       float64   `json:"total_amount"`
	AverageAmount     float64   `json:"average_amount"`
	FirstDonation     time.Time `json:"first_donation_date"`
	LastDonation      time.Time `json:"last_donation_date"`
	RecurringCount    int       `json:"recurring_donations"`
	ReceiptsSent      int       `json:"receipts_sent"`
	OrganizationCount int       `json:"organizations_donated_to"`
	Organizations     []string  `json:"organization_ids"`
}

// HasName reports whether the donor carries a usable name.
func (d *Donor) HasName() bool {
	return strings.TrimSpace(d.Name) != ""
}

// Rounded returns a copy with monetary values rounded for the response boundary.
func (d *Donor) Rounded() *Donor {
	out := *d
	out.TotalAmount = RoundMoney(d.TotalAmount)
	out.AverageAmount = RoundMoney(d.AverageAmount)

	return &out
}

// RoundDonors rounds every donor of a listing.
func RoundDonors(donors []*Donor) []*Donor {
	out := make([]*Donor, 0, len(donors))
	for _, d := range donors {
		out = append(out, d.Rounded())
	}

	return out
}

// DonorStatistics summarises a donor listing.
type DonorStatistics struct {
	TotalDonors       int     `json:"total_donors"`
	TotalAmount       float64 `json:"total_amount"`
	AverageDonorTotal float64 `json:"average_donor_total"`
	RecurringDonors   int     `json:"recurring_donors"`
	DonorsWithEmail   int     `json:"donors_with_email"`
}

// Rounded formats monetary values to two decimals for the response boundary.
func (s DonorStatistics) Rounded() DonorStatistics {
	s.TotalAmount = RoundMoney(s.TotalAmount)
	s.AverageDonorTotal = RoundMoney(s.AverageDonorTotal)

	return s
}

// DuplicateType names the theory under which donors look like duplicates.
type DuplicateType string

const (
	DuplicateSameEmail   DuplicateType = "same_email"
	DuplicateSimilarName DuplicateType = "similar_name"
)

// DuplicateGroup is a set of donors that probably describe one person.
type DuplicateGroup struct {
	Type          DuplicateType `json:"type"`
	Key           string        `json:"key"`
	Donors        []*Donor      `json:"donors"`
	TotalAmount   float64       `json:"total_amount"`
	DonationCount int           `json:"donation_count"`
}

// Rounded returns a copy of the group with rounded monetary values.
func (g *DuplicateGroup) Rounded() *DuplicateGroup {
	out := *g
	out.TotalAmount = RoundMoney(g.TotalAmount)
	out.Donors = RoundDonors(g.Donors)

	return &out
}

// DonorRef addresses one (email, name) donor in a merge request.
type DonorRef struct {
	Email string `json:"donor_email"`
	Name  string `json:"donor_name"`
}

// Match converts the reference into an exact row predicate.
func (r DonorRef) Match() DonorMatch {
	return DonorMatch{Email: NullableString(r.Email), Name: NullableString(r.Name)}
}

// DonorMatch is an exact, NULL-aware row predicate:
// email and name both equal, email equal with NULL name, or name equal with NULL email.
type DonorMatch struct {
	Email *string
	Name  *string
}

// IsEmpty reports whether the match addresses nothing.
func (m DonorMatch) IsEmpty() bool {
	return m.Email == nil && m.Name == nil
}
