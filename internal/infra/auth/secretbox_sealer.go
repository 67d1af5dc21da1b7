package auth

import (
	"crypto/rand"
	"encoding/base64"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/nacl/secretbox"

	"kioskdash/config"
	"kioskdash/internal/domain/service"
)

const (
	sealKeySize   = 32
	sealNonceSize = 24
)

// secretboxSealer encrypts provider tokens with NaCl secretbox. The sealed form is
// base64(nonce || box).
type secretboxSealer struct {
	key [sealKeySize]byte
}

// NewCredentialSealer is the constructor for secretboxSealer. The configured key is
// either 32 raw bytes or standard base64 of 32 bytes.
func NewCredentialSealer(cfg *config.Config) (service.CredentialSealer, error) {
	return newSecretboxSealer(cfg.SecretKey.Credentials)
}

func newSecretboxSealer(material string) (*secretboxSealer, error) {
	raw := []byte(material)
	if len(raw) != sealKeySize {
		decoded, err := base64.StdEncoding.DecodeString(material)
		if err != nil || len(decoded) != sealKeySize {
			return nil, errors.New("credentials key must be 32 bytes or base64 of 32 bytes")
		}
		raw = decoded
	}

	s := &secretboxSealer{}
	copy(s.key[:], raw)

	return s, nil
}

// Seal encrypts plaintext under a fresh random nonce.
func (s *secretboxSealer) Seal(plaintext string) (string, error) {
	var nonce [sealNonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", errors.Wrap(err, "failed to read nonce")
	}

	box := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &s.key)

	return base64.StdEncoding.EncodeToString(box), nil
}

// Open decrypts a value produced by Seal.
func (s *secretboxSealer) Open(sealed string) (string, error) {
	box, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", errors.Wrap(err, "sealed value is not base64")
	}
	if len(box) < sealNonceSize+secretbox.Overhead {
		return "", errors.New("sealed value is too short")
	}

	var nonce [sealNonceSize]byte
	copy(nonce[:], box[:sealNonceSize])

	plain, ok := secretbox.Open(nil, box[sealNonceSize:], &nonce, &s.key)
	if !ok {
		return "", errors.New("sealed value failed authentication")
	}

	return string(plain), nil
}
