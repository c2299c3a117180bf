// Package audit records what happened to which certificate and who asked.
// Events are appended through a store; the postgres store uses a
// transactional outbox relayed to Kafka, which is the durable audit log.
package audit

import (
	"context"
	"time"
)

// Actions recorded by the core.
const (
	ActionIssued   = "certificate.issued"
	ActionVerified = "certificate.verified"
	ActionDeleted  = "certificate.deleted"
	// ActionAnchorOrphaned marks the reconciliation case: the digest is on
	// the ledger but the local record failed to persist. Operators replay
	// these.
	ActionAnchorOrphaned = "certificate.anchor_orphaned"
	ActionFaceCompared   = "face.compared"
)

// Event is one audit record.
type Event struct {
	Action            string    `json:"action"`
	Timestamp         time.Time `json:"timestamp"`
	ActorEmail        string    `json:"actor_email,omitempty"`
	CertificateNumber string    `json:"certificate_number,omitempty"`
	Digest            string    `json:"digest,omitempty"`
	Verdict           string    `json:"verdict,omitempty"`
	TransactionRef    string    `json:"transaction_ref,omitempty"`
	DeviceIP          string    `json:"device_ip,omitempty"`
	Device            string    `json:"device,omitempty"`
	RequestID         string    `json:"request_id,omitempty"`
	Reason            string    `json:"reason,omitempty"`
}

// Store appends audit events. Append failures are logged and swallowed by
// callers: auditing never blocks the business operation it describes.
type Store interface {
	Append(ctx context.Context, event Event) error
}
