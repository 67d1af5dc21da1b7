package impl

import (
	"testing"

	"kioskdash/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonorStatistics_RoundsOnlyAtTheBoundary(t *testing.T) {
	donations := []*entity.Donation{
		{OrganizationID: "org-1", DonorEmail: strPtr("a@x.com"), Amount: 10.004, CreatedAt: baseTime},
		{OrganizationID: "org-1", DonorEmail: strPtr("b@x.com"), Amount: 10.004, CreatedAt: baseTime},
	}

	donors := aggregateDonors(donations)
	require.Len(t, donors, 2)
	assert.InDelta(t, 10.004, donors[0].TotalAmount, 1e-9)

	stats := donorStatistics(donors)
	assert.InDelta(t, 20.008, stats.TotalAmount, 1e-9)

	// Rounding each donor first would report 20.00.
	assert.Equal(t, 20.01, stats.Rounded().TotalAmount)
	assert.Equal(t, 10.0, donors[0].Rounded().TotalAmount)
}

func TestTopDonorPoints_UseUnroundedTotals(t *testing.T) {
	donations := []*entity.Donation{
		{OrganizationID: "org-1", DonorEmail: strPtr("a@x.com"), Amount: 0.004, CreatedAt: baseTime},
		{OrganizationID: "org-1", DonorEmail: strPtr("a@x.com"), Amount: 0.004, CreatedAt: baseTime},
	}

	points := topDonorPoints(donations, 10)

	require.Len(t, points, 1)
	assert.InDelta(t, 0.008, points[0].Amount, 1e-9)
}
