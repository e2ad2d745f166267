package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/HSouheill/inquiry_backend/models"
	"github.com/HSouheill/inquiry_backend/utils"
)

// OTPStore keeps at most one outstanding code per email. Issuing again
// replaces the previous code; nothing is queued.
type OTPStore interface {
	Issue(ctx context.Context, email string) (string, error)
	Verify(ctx context.Context, email, code string) (bool, error)
	Consume(ctx context.Context, email string) error
}

// CodeGenerator produces a fresh one-time code
type CodeGenerator func() (string, error)

// MemoryOTPStore is the process-local OTP store. State is lost on restart and
// is not shared between instances.
type MemoryOTPStore struct {
	mu      sync.Mutex
	entries map[string]models.OTPEntry
	ttl     time.Duration
	newCode CodeGenerator
	now     func() time.Time
}

// NewMemoryOTPStore creates an empty store. A ttl of zero disables expiry.
func NewMemoryOTPStore(ttl time.Duration) *MemoryOTPStore {
	return &MemoryOTPStore{
		entries: make(map[string]models.OTPEntry),
		ttl:     ttl,
		newCode: utils.GenerateNumericOTP,
		now:     time.Now,
	}
}

// WithCodeGenerator replaces the code source, mainly for tests
func (s *MemoryOTPStore) WithCodeGenerator(gen CodeGenerator) *MemoryOTPStore {
	s.newCode = gen
	return s
}

// WithClock replaces the time source used for expiry
func (s *MemoryOTPStore) WithClock(now func() time.Time) *MemoryOTPStore {
	s.now = now
	return s
}

func (s *MemoryOTPStore) Issue(_ context.Context, email string) (string, error) {
	code, err := s.newCode()
	if err != nil {
		return "", err
	}

	entry := models.OTPEntry{Code: code}
	if s.ttl > 0 {
		entry.ExpiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[email] = entry
	s.mu.Unlock()

	return code, nil
}

func (s *MemoryOTPStore) Verify(_ context.Context, email, code string) (bool, error) {
	s.mu.Lock()
	entry, ok := s.entries[email]
	s.mu.Unlock()

	if !ok || entry.Expired(s.now()) {
		return false, nil
	}
	return entry.Code == code, nil
}

func (s *MemoryOTPStore) Consume(_ context.Context, email string) error {
	s.mu.Lock()
	delete(s.entries, email)
	s.mu.Unlock()
	return nil
}

// Len returns the number of stored codes, expired ones included
func (s *MemoryOTPStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
