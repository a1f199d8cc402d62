// Package revocation implements the session denylist consulted on every
// authenticated request.
package revocation

import (
	"context"
	"sync"
	"time"

	"identity/internal/domain/service"
)

// memoryDenylist keeps revoked token ids in process memory. Entries are
// dropped lazily once their token would have expired anyway.
type memoryDenylist struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryDenylist returns a denylist suitable for a single instance.
func NewMemoryDenylist() service.SessionDenylist {
	return newMemoryDenylist(time.Now)
}

func newMemoryDenylist(now func() time.Time) *memoryDenylist {
	return &memoryDenylist{
		entries: make(map[string]time.Time),
		now:     now,
	}
}

func (d *memoryDenylist) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	now := d.now()
	if !expiresAt.After(now) {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.entries[jti] = expiresAt
	d.sweepLocked(now)

	return nil
}

func (d *memoryDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	expiresAt, ok := d.entries[jti]
	if !ok {
		return false, nil
	}
	if !expiresAt.After(d.now()) {
		delete(d.entries, jti)

		return false, nil
	}

	return true, nil
}

func (d *memoryDenylist) sweepLocked(now time.Time) {
	for jti, expiresAt := range d.entries {
		if !expiresAt.After(now) {
			delete(d.entries, jti)
		}
	}
}
