package impl

import (
	"slices"
	"sort"
	"strings"

	"kioskdash/internal/domain/entity"
)

const defaultDonorSort = "total_amount"

type donorLess func(a, b *entity.Donor) bool

var donorSorters = map[string]donorLess{
	"total_amount":        func(a, b *entity.Donor) bool { return a.TotalAmount < b.TotalAmount },
	"donation_count":      func(a, b *entity.Donor) bool { return a.DonationCount < b.DonationCount },
	"average_amount":      func(a, b *entity.Donor) bool { return a.AverageAmount < b.AverageAmount },
	"first_donation_date": func(a, b *entity.Donor) bool { return a.FirstDonation.Before(b.FirstDonation) },
	"last_donation_date":  func(a, b *entity.Donor) bool { return a.LastDonation.Before(b.LastDonation) },
	"donor_name":          func(a, b *entity.Donor) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
	"donor_email":         func(a, b *entity.Donor) bool { return strings.ToLower(a.Email) < strings.ToLower(b.Email) },
}

// donorIdentityKey is the case-insensitive identifier a row belongs to.
func donorIdentityKey(d *entity.Donation) string {
	if email := d.Email(); email != "" {
		return entity.NormalizeEmail(email)
	}

	return entity.SyntheticIdentifierPrefix + d.Name()
}

// donorGroupKey groups rows by (email, name) when an email exists and by name alone otherwise.
func donorGroupKey(d *entity.Donation) string {
	if email := d.Email(); email != "" {
		return "e\x00" + entity.NormalizeEmail(email) + "\x00" + d.Name()
	}

	return "n\x00" + d.Name()
}

// aggregateDonors groups donations into donors in first-seen order.
// Rows with neither an email nor a name belong to nobody.
func aggregateDonors(donations []*entity.Donation) []*entity.Donor {
	index := map[string]*entity.Donor{}
	orgs := map[string]map[string]struct{}{}
	var donors []*entity.Donor

	for _, d := range donations {
		if d.Email() == "" && d.Name() == "" {
			continue
		}

		key := donorGroupKey(d)
		donor, ok := index[key]
		if !ok {
			donor = &entity.Donor{
				Identifier:    entity.DonorIdentifier(d.DonorEmail, d.DonorName),
				Email:         d.Email(),
				Name:          d.Name(),
				FirstDonation: d.CreatedAt,
				LastDonation:  d.CreatedAt,
			}
			index[key] = donor
			orgs[key] = map[string]struct{}{}
			donors = append(donors, donor)
		}

		accumulate(donor, d)
		orgs[key][d.OrganizationID] = struct{}{}
	}

	for key, donor := range index {
		finishDonor(donor, orgs[key])
	}

	return donors
}

// aggregateIdentity folds every donation of one identity into a single donor.
// The display name is the first real name in aggregation order.
func aggregateIdentity(identity entity.DonorIdentity, donations []*entity.Donation) *entity.Donor {
	donor := &entity.Donor{
		Identifier: identity.Identifier(),
		Email:      identity.Email,
		Name:       displayName(donations),
	}
	if identity.IsNameOnly() {
		donor.Name = identity.Name
	}

	orgs := map[string]struct{}{}
	for i, d := range donations {
		if i == 0 {
			donor.FirstDonation = d.CreatedAt
			donor.LastDonation = d.CreatedAt
		}
		accumulate(donor, d)
		orgs[d.OrganizationID] = struct{}{}
	}
	finishDonor(donor, orgs)

	return donor
}

func accumulate(donor *entity.Donor, d *entity.Donation) {
	donor.DonationCount++
	donor.TotalAmount += d.Amount
	if d.CreatedAt.Before(donor.FirstDonation) {
		donor.FirstDonation = d.CreatedAt
	}
	if d.CreatedAt.After(donor.LastDonation) {
		donor.LastDonation = d.CreatedAt
	}
	if d.IsRecurring {
		donor.RecurringCount++
	}
	if d.ReceiptSent {
		donor.ReceiptsSent++
	}
}

func finishDonor(donor *entity.Donor, orgs map[string]struct{}) {
	if donor.DonationCount > 0 {
		donor.AverageAmount = donor.TotalAmount / float64(donor.DonationCount)
	}

	donor.Organizations = make([]string, 0, len(orgs))
	for id := range orgs {
		donor.Organizations = append(donor.Organizations, id)
	}
	sort.Strings(donor.Organizations)
	donor.OrganizationCount = len(donor.Organizations)
}

// displayName picks the first non-empty, non-placeholder name. A placeholder is used only when nothing better exists.
func displayName(donations []*entity.Donation) string {
	fallback := ""
	for _, d := range donations {
		name := strings.TrimSpace(d.Name())
		if name == "" {
			continue
		}
		if !entity.IsPlaceholderName(name) {
			return name
		}
		if fallback == "" {
			fallback = name
		}
	}

	return fallback
}

func sortDonors(donors []*entity.Donor, sortBy string, order entity.SortOrder) {
	less, ok := donorSorters[sortBy]
	if !ok {
		less = donorSorters[defaultDonorSort]
	}

	sort.SliceStable(donors, func(i, j int) bool {
		if order == entity.SortAsc {
			return less(donors[i], donors[j])
		}

		return less(donors[j], donors[i])
	})
}

func donorStatistics(donors []*entity.Donor) entity.DonorStatistics {
	stats := entity.DonorStatistics{TotalDonors: len(donors)}
	for _, donor := range donors {
		stats.TotalAmount += donor.TotalAmount
		if donor.RecurringCount > 0 {
			stats.RecurringDonors++
		}
		if donor.Email != "" {
			stats.DonorsWithEmail++
		}
	}

	if stats.TotalDonors > 0 {
		stats.AverageDonorTotal = stats.TotalAmount / float64(stats.TotalDonors)
	}

	return stats
}

// detectDuplicateGroups runs the email pass first; donors it captures are not
// considered again by the name pass, so no donor is reported under two theories.
func detectDuplicateGroups(donors []*entity.Donor) []*entity.DuplicateGroup {
	byEmail := map[string][]*entity.Donor{}
	for _, donor := range donors {
		if donor.Email == "" {
			continue
		}
		key := entity.NormalizeEmail(donor.Email)
		byEmail[key] = append(byEmail[key], donor)
	}

	var groups []*entity.DuplicateGroup
	captured := map[*entity.Donor]struct{}{}
	for key, members := range byEmail {
		if distinctNames(members) < 2 {
			continue
		}
		for _, donor := range members {
			captured[donor] = struct{}{}
		}
		groups = append(groups, newDuplicateGroup(entity.DuplicateSameEmail, key, members))
	}

	byName := map[string][]*entity.Donor{}
	for _, donor := range donors {
		if _, ok := captured[donor]; ok {
			continue
		}
		if !donor.HasName() || entity.IsPlaceholderName(donor.Name) {
			continue
		}
		key := entity.NormalizeName(donor.Name)
		byName[key] = append(byName[key], donor)
	}

	for key, members := range byName {
		if len(members) < 2 {
			continue
		}
		groups = append(groups, newDuplicateGroup(entity.DuplicateSimilarName, key, members))
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Type != groups[j].Type {
			return groups[i].Type == entity.DuplicateSameEmail
		}

		return groups[i].Key < groups[j].Key
	})

	return groups
}

func distinctNames(donors []*entity.Donor) int {
	names := map[string]struct{}{}
	for _, donor := range donors {
		if donor.HasName() {
			names[entity.NormalizeName(donor.Name)] = struct{}{}
		}
	}

	return len(names)
}

func newDuplicateGroup(kind entity.DuplicateType, key string, members []*entity.Donor) *entity.DuplicateGroup {
	sorted := slices.Clone(members)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Identifier != sorted[j].Identifier {
			return sorted[i].Identifier < sorted[j].Identifier
		}

		return sorted[i].Name < sorted[j].Name
	})

	group := &entity.DuplicateGroup{Type: kind, Key: key, Donors: sorted}
	for _, donor := range sorted {
		group.TotalAmount += donor.TotalAmount
		group.DonationCount += donor.DonationCount
	}

	return group
}

// mergedEmail joins the distinct emails of the primary and merged donors, primary first.
// Composite inputs are split so merging twice does not nest lists.
func mergedEmail(primary entity.DonorRef, donors []entity.DonorRef) string {
	seen := map[string]struct{}{}
	var emails []string

	add := func(raw string) {
		for _, part := range strings.Split(raw, ",") {
			email := strings.TrimSpace(part)
			if email == "" {
				continue
			}
			key := entity.NormalizeEmail(email)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			emails = append(emails, email)
		}
	}

	add(primary.Email)
	for _, donor := range donors {
		add(donor.Email)
	}

	return strings.Join(emails, ",")
}
