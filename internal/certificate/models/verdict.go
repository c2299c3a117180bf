package models

import "time"

// Verdict is the outcome of a verification. Verdicts are routine results,
// never errors: a certificate that fails to verify is still a successful
// verification call.
type Verdict string

const (
	VerdictVerified    Verdict = "verified"
	VerdictNotAnchored Verdict = "not_anchored"
	VerdictTampered    Verdict = "tampered_or_mismatched"
	VerdictUnknown     Verdict = "certificate_unknown"
)

// VerificationResult is produced fresh on every verification call and never
// persisted or cached. The anchoring timestamp and transaction reference come
// from the ledger entry, not the local record, so the proof always traces
// back to the append-only source.
type VerificationResult struct {
	CertificateNumber string
	Verdict           Verdict
	StoredDigest      string
	ComputedDigest    string
	LedgerDigest      string
	AnchoredAt        *time.Time
	TransactionRef    string
}
