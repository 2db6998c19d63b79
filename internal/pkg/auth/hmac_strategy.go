package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid auth token")

// HMACStrategy implements session token creation/verification using HMAC signatures.
type HMACStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// IssueToken generates a signed token for the session.
func (s *HMACStrategy) IssueToken(sessionID string) (string, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	expires := s.now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%s:%d", sessionID, expires)
	token := fmt.Sprintf("%s:%s", payload, s.sign(payload))
	return base64.RawURLEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates token and returns the encoded session ID.
func (s *HMACStrategy) ParseToken(token string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		return "", ErrInvalidToken
	}

	payload := strings.Join(parts[:2], ":")
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[2])) {
		return "", ErrInvalidToken
	}

	sessionID, err := uuid.Parse(parts[0])
	if err != nil {
		return "", ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", ErrInvalidToken
	}

	if time.Unix(expires, 0).Before(s.now()) {
		return "", ErrInvalidToken
	}

	return sessionID.String(), nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
