package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"
)

var ErrUnsealFailed = errors.New("unseal backend token")

const (
	nonceSize = 24
	sealInfo  = "storeadmin backend token"
)

// Sealer encrypts backend bearer tokens before they are persisted.
type Sealer interface {
	Seal(plain string) (string, error)
	Open(sealed string) (string, error)
}

// SecretboxSealer seals values with NaCl secretbox using a key derived from
// the session secret.
type SecretboxSealer struct {
	key [32]byte
}

// NewSecretboxSealer derives the sealing key from secret with HKDF-SHA256.
func NewSecretboxSealer(secret string) (*SecretboxSealer, error) {
	s := &SecretboxSealer{}
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte(sealInfo))
	if _, err := io.ReadFull(kdf, s.key[:]); err != nil {
		return nil, fmt.Errorf("derive sealing key: %w", err)
	}
	return s, nil
}

// Seal encrypts plain and returns nonce||box encoded as base64.
func (s *SecretboxSealer) Seal(plain string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	box := secretbox.Seal(nonce[:], []byte(plain), &nonce, &s.key)
	return base64.StdEncoding.EncodeToString(box), nil
}

// Open reverses Seal.
func (s *SecretboxSealer) Open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrUnsealFailed
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", ErrUnsealFailed
	}
	return string(plain), nil
}
