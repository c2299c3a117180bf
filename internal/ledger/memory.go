package ledger

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"
)

// Memory is an in-process ledger for development and tests. Append-only like
// the real thing: entries are never overwritten or removed.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]Entry

	failWrites error
	failReads  error
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]Entry)}
}

func (m *Memory) Anchor(ctx context.Context, identifier, digest string) (Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWrites != nil {
		return Receipt{}, &WriteError{Err: m.failWrites}
	}
	if _, exists := m.entries[identifier]; exists {
		return Receipt{}, &WriteError{Err: errors.New("identifier already anchored")}
	}

	now := time.Now().UTC().Truncate(time.Second)
	m.entries[identifier] = Entry{
		Identifier: identifier,
		Digest:     digest,
		AnchoredAt: now,
	}
	return Receipt{TxRef: newTxRef(), AnchoredAt: now}, nil
}

func (m *Memory) Lookup(ctx context.Context, identifier string) (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.failReads != nil {
		return Entry{}, &ReadError{Err: m.failReads}
	}
	entry, ok := m.entries[identifier]
	if !ok {
		return Entry{}, ErrNotAnchored
	}
	return entry, nil
}

// FailWrites makes every subsequent Anchor fail with err (nil restores).
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrites = err
}

// FailReads makes every subsequent Lookup fail with err (nil restores).
func (m *Memory) FailReads(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failReads = err
}

// Rewrite replaces the digest anchored for an identifier. Test hook for
// simulating ledger/store divergence; a real ledger cannot do this.
func (m *Memory) Rewrite(identifier, digest string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[identifier]
	if !ok {
		return
	}
	entry.Digest = digest
	m.entries[identifier] = entry
}

func newTxRef() string {
	var buf [32]byte
	_, _ = rand.Read(buf[:])
	return "0x" + hex.EncodeToString(buf[:])
}
