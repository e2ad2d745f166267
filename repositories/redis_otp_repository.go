package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/HSouheill/inquiry_backend/utils"
)

const otpKeyPrefix = "otp:"

// RedisOTPStore keeps codes in Redis under otp:<email>, so they survive
// restarts and are shared between instances.
type RedisOTPStore struct {
	client  *redis.Client
	ttl     time.Duration
	newCode CodeGenerator
}

// NewRedisOTPStore creates a store on top of client. A ttl of zero stores
// keys without expiry.
func NewRedisOTPStore(client *redis.Client, ttl time.Duration) *RedisOTPStore {
	return &RedisOTPStore{
		client:  client,
		ttl:     ttl,
		newCode: utils.GenerateNumericOTP,
	}
}

// WithCodeGenerator replaces the code source, mainly for tests
func (s *RedisOTPStore) WithCodeGenerator(gen CodeGenerator) *RedisOTPStore {
	s.newCode = gen
	return s
}

func otpKey(email string) string {
	return otpKeyPrefix + email
}

func (s *RedisOTPStore) Issue(ctx context.Context, email string) (string, error) {
	code, err := s.newCode()
	if err != nil {
		return "", err
	}

	if err := s.client.Set(ctx, otpKey(email), code, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store OTP: %w", err)
	}
	return code, nil
}

func (s *RedisOTPStore) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.client.Get(ctx, otpKey(email)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get OTP: %w", err)
	}
	return stored == code, nil
}

func (s *RedisOTPStore) Consume(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, otpKey(email)).Err(); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}
