package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDonorIdentifier(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		want       DonorIdentity
		ok         bool
	}{
		{name: "email", identifier: "a@x.com", want: DonorIdentity{Email: "a@x.com"}, ok: true},
		{name: "email with padding", identifier: "  a@x.com ", want: DonorIdentity{Email: "a@x.com"}, ok: true},
		{name: "synthetic", identifier: "name_without_email_Jane Doe", want: DonorIdentity{Name: "Jane Doe"}, ok: true},
		{name: "synthetic without name", identifier: "name_without_email_", ok: false},
		{name: "blank", identifier: "  ", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDonorIdentifier(tt.identifier)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDonorIdentity_Identifier_RoundTrip(t *testing.T) {
	for _, id := range []string{"a@x.com", "name_without_email_Jane Doe"} {
		identity, ok := ParseDonorIdentifier(id)
		assert.True(t, ok)
		assert.Equal(t, id, identity.Identifier())
	}
}

func TestDonorIdentifier(t *testing.T) {
	email, name, blank := "a@x.com", "Jane", ""

	assert.Equal(t, "a@x.com", DonorIdentifier(&email, &name))
	assert.Equal(t, "name_without_email_Jane", DonorIdentifier(nil, &name))
	assert.Equal(t, "name_without_email_Jane", DonorIdentifier(&blank, &name))
}

func TestIsPlaceholderName(t *testing.T) {
	assert.True(t, IsPlaceholderName(" Anonymous "))
	assert.True(t, IsPlaceholderName("N/A"))
	assert.False(t, IsPlaceholderName("Anna"))
	assert.False(t, IsPlaceholderName(""))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "kim park", NormalizeName("  Kim   PARK "))
	assert.Equal(t, "a@x.com", NormalizeEmail(" A@X.com"))
}

func TestDonorRef_Match(t *testing.T) {
	assert.True(t, DonorRef{}.Match().IsEmpty())
	assert.True(t, DonorRef{Email: " ", Name: ""}.Match().IsEmpty())

	m := DonorRef{Name: "Jane"}.Match()
	assert.Nil(t, m.Email)
	assert.Equal(t, "Jane", StringValue(m.Name))
}

func TestDuplicateGroup_Rounded(t *testing.T) {
	donor := &Donor{Identifier: "a@x.com", TotalAmount: 10.004, AverageAmount: 3.33333}
	group := &DuplicateGroup{Type: DuplicateSameEmail, TotalAmount: 20.008, Donors: []*Donor{donor}}

	rounded := group.Rounded()

	assert.Equal(t, 20.01, rounded.TotalAmount)
	assert.Equal(t, 10.0, rounded.Donors[0].TotalAmount)
	assert.Equal(t, 3.33, rounded.Donors[0].AverageAmount)
	// The aggregate stays unrounded for further summing.
	assert.Equal(t, 10.004, donor.TotalAmount)
	assert.Equal(t, 20.008, group.TotalAmount)
}
