package auth

import (
	"bytes"
	"testing"
)

const testKey = "01234567890123456789012345678901" // 32 bytes

func TestNewVault_ValidKey(t *testing.T) {
	v, err := NewVault(testKey)
	if err != nil {
		t.Fatalf("NewVault() failed: %v", err)
	}
	if v == nil {
		t.Fatal("NewVault() returned nil")
	}
}

func TestNewVault_InvalidKeyLength(t *testing.T) {
	_, err := NewVault("too-short")
	if err == nil {
		t.Error("NewVault() expected error for short key, got nil")
	}
	if err != ErrInvalidKey {
		t.Errorf("NewVault() error = %v, want %v", err, ErrInvalidKey)
	}
}

func TestNewVault_EmptyKey(t *testing.T) {
	if _, err := NewVault(""); err == nil {
		t.Error("NewVault() expected error for empty key, got nil")
	}
}

func TestSealOpen_Roundtrip(t *testing.T) {
	v, _ := NewVault(testKey)

	plaintext := "correct horse battery staple"
	sealed, err := v.Seal(plaintext)
	if err != nil {
		t.Fatalf("Seal() failed: %v", err)
	}
	if bytes.Contains(sealed, []byte(plaintext)) {
		t.Error("Seal() output contains plaintext")
	}

	opened, err := v.Open(sealed)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if opened != plaintext {
		t.Errorf("Open() = %q, want %q", opened, plaintext)
	}
}

func TestSeal_NonDeterministic(t *testing.T) {
	v, _ := NewVault(testKey)

	a, _ := v.Seal("credential")
	b, _ := v.Seal("credential")
	if bytes.Equal(a, b) {
		t.Error("Seal() produced identical output for two calls; nonce not random")
	}
}

func TestOpen_Tampered(t *testing.T) {
	v, _ := NewVault(testKey)

	sealed, _ := v.Seal("credential")
	sealed[len(sealed)-1] ^= 0xff

	if _, err := v.Open(sealed); err == nil {
		t.Error("Open() accepted tampered ciphertext")
	}
}

func TestOpen_TooShort(t *testing.T) {
	v, _ := NewVault(testKey)
	if _, err := v.Open([]byte("short")); err == nil {
		t.Error("Open() accepted truncated input")
	}
}

func TestOpen_WrongKey(t *testing.T) {
	v1, _ := NewVault(testKey)
	v2, _ := NewVault("abcdefghijklmnopqrstuvwxyz012345")

	sealed, _ := v1.Seal("credential")
	if _, err := v2.Open(sealed); err == nil {
		t.Error("Open() accepted ciphertext sealed under a different key")
	}
}
