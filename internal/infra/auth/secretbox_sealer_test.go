package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretboxSealer_RoundTrip(t *testing.T) {
	sealer, err := newSecretboxSealer("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)

	sealed, err := sealer.Seal("EAAAl-provider-access-token")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "provider-access-token")

	again, err := sealer.Seal("EAAAl-provider-access-token")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "nonces must differ between seals")

	plain, err := sealer.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "EAAAl-provider-access-token", plain)
}

func TestSecretboxSealer_Base64Key(t *testing.T) {
	key := base64.StdEncoding.EncodeToString([]byte("fedcba9876543210fedcba9876543210"))

	sealer, err := newSecretboxSealer(key)
	require.NoError(t, err)

	sealed, err := sealer.Seal("refresh")
	require.NoError(t, err)

	plain, err := sealer.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "refresh", plain)
}

func TestSecretboxSealer_Failures(t *testing.T) {
	_, err := newSecretboxSealer("short")
	assert.Error(t, err)

	sealer, err := newSecretboxSealer("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	other, err := newSecretboxSealer("fedcba9876543210fedcba9876543210")
	require.NoError(t, err)

	sealed, err := sealer.Seal("secret")
	require.NoError(t, err)

	_, err = other.Open(sealed)
	assert.Error(t, err, "wrong key must not open")

	_, err = sealer.Open("not base64!")
	assert.Error(t, err)

	_, err = sealer.Open(base64.StdEncoding.EncodeToString([]byte("tiny")))
	assert.Error(t, err)
}
