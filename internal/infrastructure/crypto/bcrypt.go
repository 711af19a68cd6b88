// Package crypto implements the PasswordHasher port with bcrypt behind a
// bounded worker pool. Hashing is CPU-bound; the pool caps how many bcrypt
// operations run at once so a signup burst cannot starve request handling.
package crypto

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/shopstack/accounts-service/internal/api/metrics"
)

const minCost = 10

// BcryptHasher hashes and compares secrets with bcrypt. Concurrency is
// bounded by a semaphore; callers queued behind it honor ctx cancellation.
type BcryptHasher struct {
	cost int
	sem  chan struct{}
}

// NewBcryptHasher builds a hasher with the given cost factor and concurrency
// bound. Costs below 10 are raised to 10; a non-positive bound defaults to
// GOMAXPROCS.
func NewBcryptHasher(cost, maxConcurrent int) *BcryptHasher {
	if cost < minCost {
		cost = minCost
	}
	if maxConcurrent <= 0 {
		maxConcurrent = runtime.GOMAXPROCS(0)
	}
	return &BcryptHasher{
		cost: cost,
		sem:  make(chan struct{}, maxConcurrent),
	}
}

func (h *BcryptHasher) Hash(ctx context.Context, secret string) (string, error) {
	if err := h.acquire(ctx); err != nil {
		return "", err
	}
	defer h.release()

	start := time.Now()
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	metrics.PasswordHashDuration.WithLabelValues("hash").Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(ctx context.Context, hash, secret string) error {
	if err := h.acquire(ctx); err != nil {
		return err
	}
	defer h.release()

	start := time.Now()
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	metrics.PasswordHashDuration.WithLabelValues("compare").Observe(time.Since(start).Seconds())
	return err
}

func (h *BcryptHasher) acquire(ctx context.Context) error {
	select {
	case h.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *BcryptHasher) release() {
	<-h.sem
}
