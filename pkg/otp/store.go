package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/shiprakart/seller-backend/pkg/config"
	"github.com/shiprakart/seller-backend/pkg/redis"
)

// Codes is the key/value surface the store needs; satisfied by redis.Client.
type Codes interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

// Store issues and verifies login codes keyed by phone number. Until a real
// SMS provider is wired, the configured dev code is always accepted.
type Store struct {
	codes Codes
	cfg   config.OTPConfig
}

func NewStore(codes Codes, cfg config.OTPConfig) *Store {
	return &Store{codes: codes, cfg: cfg}
}

func key(phone string) string {
	return redis.Key("otp", phone)
}

// Issue generates a 6-digit code for the phone and stores it with a TTL.
func (s *Store) Issue(ctx context.Context, phone string) (string, error) {
	if phone == "" {
		return "", fmt.Errorf("phone is required")
	}
	code, err := randomDigits(6)
	if err != nil {
		return "", fmt.Errorf("generating otp: %w", err)
	}
	if err := s.codes.Set(ctx, key(phone), code, s.cfg.TTL); err != nil {
		return "", fmt.Errorf("storing otp: %w", err)
	}
	return code, nil
}

// Verify reports whether the code is valid for the phone. A matching stored
// code is consumed on success.
func (s *Store) Verify(ctx context.Context, phone, code string) (bool, error) {
	if phone == "" || code == "" {
		return false, nil
	}
	if s.cfg.DevCode != "" && code == s.cfg.DevCode {
		return true, nil
	}
	stored, err := s.codes.Get(ctx, key(phone))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("loading otp: %w", err)
	}
	if stored != code {
		return false, nil
	}
	_ = s.codes.Del(ctx, key(phone))
	return true, nil
}

func randomDigits(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	digits := make([]byte, n)
	for i, b := range buf {
		digits[i] = '0' + b%10
	}
	return string(digits), nil
}
