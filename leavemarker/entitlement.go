package leavemarker

import (
	"context"
	"sync"
)

// DefaultEntitlement is the low-privilege snapshot used when no identity is
// present or the feature lookup fails. The UI must never block on missing
// entitlement data.
func DefaultEntitlement() *Entitlement {
	return &Entitlement{
		Tier:                      TierFree,
		MaxEmployees:              10,
		CurrentEmployees:          0,
		RemainingEmployeeSlots:    10,
		MaxLeavePolicies:          3,
		CurrentLeavePolicies:      0,
		RemainingLeavePolicySlots: 3,
	}
}

// EntitlementStore derives and caches the Entitlement snapshot for the
// current identity. It is the single source of truth pages consult before
// rendering gated features.
type EntitlementStore struct {
	client  *Client
	session *SessionStore

	mu       sync.RWMutex
	snapshot *Entitlement
	loading  bool
}

// NewEntitlementStore subscribes to identity changes so the snapshot is
// re-derived (full refetch, never patched) on every login, logout or signup.
func NewEntitlementStore(client *Client, session *SessionStore) *EntitlementStore {
	e := &EntitlementStore{client: client, session: session, loading: true}
	session.OnIdentityChange(func(*Identity) {
		e.Refresh(context.Background())
	})
	return e
}

// Snapshot returns the current entitlement, or nil when it has not loaded
// yet. Callers must treat nil as least privilege.
func (e *EntitlementStore) Snapshot() *Entitlement {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.snapshot == nil {
		return nil
	}
	snap := *e.snapshot
	return &snap
}

// Loading reports whether a fetch is in flight or the first fetch has not
// happened.
func (e *EntitlementStore) Loading() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loading
}

// Refresh re-derives the snapshot immediately. Actions that change
// entitlement server-side (a completed purchase, a plan change) call this
// instead of waiting for an identity change.
func (e *EntitlementStore) Refresh(ctx context.Context) {
	e.mu.Lock()
	e.loading = true
	e.mu.Unlock()

	snap := e.fetch(ctx)

	e.mu.Lock()
	e.snapshot = snap
	e.loading = false
	e.mu.Unlock()
}

func (e *EntitlementStore) fetch(ctx context.Context) *Entitlement {
	if e.session.Identity() == nil {
		return DefaultEntitlement()
	}
	features, err := e.client.Subscriptions().Features(ctx)
	if err != nil {
		e.client.log.Debug().Err(err).Msg("entitlement fetch failed, using default")
		return DefaultEntitlement()
	}
	return features
}
