package service

import (
	"context"
	"errors"

	"signet/internal/audit"
	"signet/internal/certificate/canonical"
	"signet/internal/certificate/models"
	"signet/internal/certificate/store"
	"signet/internal/ledger"
	dErrors "signet/pkg/domain-errors"
)

// Verify runs the three-way consistency check: the stored record, the digest
// recomputed from the record's current fields, and the ledger entry must all
// agree. Verdicts are successful returns; only infrastructure failures
// (ledger reads, store reads) come back as errors.
func (s *Service) Verify(ctx context.Context, number string) (*models.VerificationResult, error) {
	ctx, sp := span(s.tracer, ctx, "certificate.verify", number)
	defer sp.End()

	result, err := s.verify(ctx, number)
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveVerification(string(result.Verdict))
	s.auditEvent(ctx, audit.Event{
		Action:            audit.ActionVerified,
		CertificateNumber: number,
		Verdict:           string(result.Verdict),
		TransactionRef:    result.TransactionRef,
	})
	return result, nil
}

func (s *Service) verify(ctx context.Context, number string) (*models.VerificationResult, error) {
	result := &models.VerificationResult{CertificateNumber: number}

	cert, err := s.store.GetByNumber(ctx, number)
	if errors.Is(err, store.ErrNotFound) {
		result.Verdict = models.VerdictUnknown
		return result, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "load certificate record", err)
	}
	result.StoredDigest = cert.Digest
	result.TransactionRef = cert.TransactionRef

	// Recompute from current fields: a record edited after issuance fails
	// here even when store and ledger still agree on the stale digest.
	result.ComputedDigest = canonical.Digest(canonical.Fields{
		Number:        cert.Number,
		IssuerEmail:   cert.IssuerEmail,
		Particulars:   cert.Particulars,
		Description:   cert.Description,
		SignatoryName: cert.SignatoryName,
		ExpiryDate:    cert.ExpiryDate,
	})
	if result.ComputedDigest != cert.Digest {
		result.Verdict = models.VerdictTampered
		return result, nil
	}

	entry, err := s.ledger.Lookup(ctx, number)
	if errors.Is(err, ledger.ErrNotAnchored) {
		result.Verdict = models.VerdictNotAnchored
		return result, nil
	}
	if err != nil {
		// A failed lookup is a service error, never "not anchored".
		return nil, dErrors.Wrap(dErrors.CodeLedgerRead, "ledger lookup failed", err)
	}
	result.LedgerDigest = entry.Digest

	if entry.Digest != cert.Digest {
		result.Verdict = models.VerdictTampered
		return result, nil
	}

	// The proof comes from the append-only source: timestamp from the
	// ledger entry, not from anything stored locally.
	result.Verdict = models.VerdictVerified
	anchoredAt := entry.AnchoredAt
	result.AnchoredAt = &anchoredAt
	return result, nil
}
