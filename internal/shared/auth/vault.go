package auth

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// ErrInvalidKey is returned when the vault key is not exactly 32 bytes.
var ErrInvalidKey = errors.New("vault key must be exactly 32 bytes")

// Vault seals the banking credential a session holds between login and
// the mutating calls that need per-call proof of identity. The sealed
// form is what lives in the session store; the plaintext exists only for
// the duration of an outbound request.
type Vault struct {
	aead cipher.AEAD
}

// NewVault creates a credential vault from a 32-byte key.
func NewVault(key string) (*Vault, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, ErrInvalidKey
	}
	aead, err := chacha20poly1305.NewX([]byte(key))
	if err != nil {
		return nil, err
	}
	return &Vault{aead: aead}, nil
}

// Seal encrypts plaintext, prepending a random nonce.
func (v *Vault) Seal(plaintext string) ([]byte, error) {
	nonce := make([]byte, v.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return v.aead.Seal(nonce, nonce, []byte(plaintext), nil), nil
}

// Open decrypts a value produced by Seal.
func (v *Vault) Open(sealed []byte) (string, error) {
	if len(sealed) < v.aead.NonceSize() {
		return "", errors.New("sealed value too short")
	}

	nonce, ciphertext := sealed[:v.aead.NonceSize()], sealed[v.aead.NonceSize():]
	plaintext, err := v.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to open sealed credential: %w", err)
	}
	return string(plaintext), nil
}
