package repositories

import (
	"context"
	"errors"
	"testing"
	"time"
)

// sequence returns a generator that yields codes in order
func sequence(codes ...string) CodeGenerator {
	i := 0
	return func() (string, error) {
		code := codes[i%len(codes)]
		i++
		return code, nil
	}
}

func TestMemoryOTPStoreIssueThenVerify(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryOTPStore(0).WithCodeGenerator(sequence("4821"))

	code, err := store.Issue(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if code != "4821" {
		t.Fatalf("code = %q, want 4821", code)
	}

	ok, _ := store.Verify(ctx, "a@x.com", "4821")
	if !ok {
		t.Fatal("expected issued code to verify")
	}
	ok, _ = store.Verify(ctx, "a@x.com", "0000")
	if ok {
		t.Fatal("wrong code verified")
	}

	// Verify does not consume.
	ok, _ = store.Verify(ctx, "a@x.com", "4821")
	if !ok {
		t.Fatal("code stopped verifying after a read")
	}
}

func TestMemoryOTPStoreUnknownIdentity(t *testing.T) {
	store := NewMemoryOTPStore(0)
	ok, err := store.Verify(context.Background(), "nobody@x.com", "1234")
	if err != nil || ok {
		t.Fatalf("Verify on unknown identity = %v, %v; want false, nil", ok, err)
	}
}

func TestMemoryOTPStoreIdentityIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryOTPStore(0).WithCodeGenerator(sequence("1111"))
	if _, err := store.Issue(ctx, "A@x.com"); err != nil {
		t.Fatal(err)
	}
	if ok, _ := store.Verify(ctx, "a@x.com", "1111"); ok {
		t.Fatal("identity lookup should be case-sensitive")
	}
}

func TestMemoryOTPStoreReissueReplacesCode(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryOTPStore(0).WithCodeGenerator(sequence("1111", "2222"))

	first, _ := store.Issue(ctx, "b@x.com")
	second, _ := store.Issue(ctx, "b@x.com")

	if ok, _ := store.Verify(ctx, "b@x.com", first); ok {
		t.Fatal("overwritten code still verifies")
	}
	if ok, _ := store.Verify(ctx, "b@x.com", second); !ok {
		t.Fatal("latest code does not verify")
	}
	if store.Len() != 1 {
		t.Fatalf("Len = %d, want 1", store.Len())
	}
}

func TestMemoryOTPStoreConsume(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryOTPStore(0).WithCodeGenerator(sequence("5555"))
	code, _ := store.Issue(ctx, "c@x.com")

	if err := store.Consume(ctx, "c@x.com"); err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if ok, _ := store.Verify(ctx, "c@x.com", code); ok {
		t.Fatal("consumed code still verifies")
	}
	if err := store.Consume(ctx, "c@x.com"); err != nil {
		t.Fatalf("second Consume: %v", err)
	}
	if err := store.Consume(ctx, "never@x.com"); err != nil {
		t.Fatalf("Consume on absent identity: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("Len = %d, want 0", store.Len())
	}
}

func TestMemoryOTPStoreNoExpiryByDefault(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryOTPStore(0).
		WithCodeGenerator(sequence("7777")).
		WithClock(func() time.Time { return now })

	code, _ := store.Issue(ctx, "d@x.com")
	now = now.Add(365 * 24 * time.Hour)

	if ok, _ := store.Verify(ctx, "d@x.com", code); !ok {
		t.Fatal("code without ttl expired")
	}
}

func TestMemoryOTPStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryOTPStore(10 * time.Minute).
		WithCodeGenerator(sequence("8888")).
		WithClock(func() time.Time { return now })

	code, _ := store.Issue(ctx, "e@x.com")

	now = now.Add(9 * time.Minute)
	if ok, _ := store.Verify(ctx, "e@x.com", code); !ok {
		t.Fatal("code expired early")
	}

	now = now.Add(time.Minute)
	if ok, _ := store.Verify(ctx, "e@x.com", code); ok {
		t.Fatal("expired code still verifies")
	}
}

func TestMemoryOTPStoreGeneratorError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("entropy exhausted")
	store := NewMemoryOTPStore(0).WithCodeGenerator(func() (string, error) { return "", boom })

	if _, err := store.Issue(ctx, "f@x.com"); !errors.Is(err, boom) {
		t.Fatalf("Issue err = %v, want %v", err, boom)
	}
	if store.Len() != 0 {
		t.Fatal("failed issue left an entry behind")
	}
}

func TestMemoryOTPStoreConcurrentIssue(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryOTPStore(0)

	done := make(chan string, 20)
	for i := 0; i < cap(done); i++ {
		go func() {
			code, err := store.Issue(ctx, "race@x.com")
			if err != nil {
				t.Error(err)
			}
			done <- code
		}()
	}

	valid := 0
	for i := 0; i < cap(done); i++ {
		code := <-done
		if ok, _ := store.Verify(ctx, "race@x.com", code); ok {
			valid++
		}
	}
	// Last write wins: once all issues finished exactly the stored code is valid,
	// though several goroutines may have drawn the same digits.
	if valid == 0 {
		t.Fatal("no issued code verifies after concurrent issue")
	}
	if store.Len() != 1 {
		t.Fatalf("Len = %d, want 1", store.Len())
	}
}
