// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"time"

	"identity/config"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/service"
	"identity/internal/errors"
	"identity/internal/infra/metrics"

	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// A weighted semaphore caps how many hashes run at once so a burst of
// registrations can not starve unrelated requests of CPU.
type bcryptHasher struct {
	cost    int
	slots   *semaphore.Weighted
	metrics *metrics.AuthMetrics
}

// HasherParams holds dependencies for the bcrypt hasher, injected by Fx.
type HasherParams struct {
	fx.In

	Config  *config.Config
	Metrics *metrics.AuthMetrics `optional:"true"`
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(params HasherParams) (service.PasswordHasher, error) {
	hasher, err := NewBcryptHasherWithCost(params.Config.Auth.BcryptCost, params.Config.Auth.MaxConcurrentHashes)
	if err != nil {
		return nil, err
	}
	hasher.metrics = params.Metrics

	return hasher, nil
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost and concurrency cap.
func NewBcryptHasherWithCost(cost, maxConcurrent int) (*bcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &bcryptHasher{
		cost:  cost,
		slots: semaphore.NewWeighted(int64(maxConcurrent)),
	}, nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	start := time.Now()
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return "", errors.Wrap(err, "acquire hash slot")
	}
	defer h.slots.Release(1)
	defer h.metrics.ObserveHash(start)

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domainerrors.ErrValidationFailed.WithDetails("password: must be at most 72 bytes")
	}
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(ctx context.Context, password, hash string) bool {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return false
	}
	defer h.slots.Release(1)

	// err is nil if the password and hash match.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
