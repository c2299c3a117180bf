// Package ledger defines the anchoring boundary. The rest of the system only
// ever sees these two operations and the canonical Entry shape; whatever the
// underlying ledger client returns is normalized before it leaves the
// adapter.
package ledger

import (
	"context"
	"errors"
	"time"
)

// ErrNotAnchored is the legitimate miss: the ledger holds no entry for the
// identifier. It is an expected outcome, not an infrastructure failure.
var ErrNotAnchored = errors.New("ledger: no entry for identifier")

// WriteError wraps submission or confirmation failures. A caller seeing this
// must not persist a record as anchored.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return "ledger write failed: " + e.Err.Error() }
func (e *WriteError) Unwrap() error { return e.Err }

// ReadError wraps lookup failures that are distinct from ErrNotAnchored.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return "ledger read failed: " + e.Err.Error() }
func (e *ReadError) Unwrap() error { return e.Err }

// Receipt is the proof a write transaction was accepted.
type Receipt struct {
	TxRef      string
	AnchoredAt time.Time
}

// Entry is the canonical shape of one anchored record.
type Entry struct {
	Identifier string
	Digest     string
	AnchoredAt time.Time
}

// Client is the adapter contract against the external ledger.
//
// Anchor submits (identifier, digest) and blocks until the transaction is
// accepted or fails; failures come back as *WriteError. Lookup reads the
// current entry for identifier, returning ErrNotAnchored for a legitimate
// miss and *ReadError for infrastructure failures.
type Client interface {
	Anchor(ctx context.Context, identifier, digest string) (Receipt, error)
	Lookup(ctx context.Context, identifier string) (Entry, error)
}
