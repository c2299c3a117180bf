package service

import (
	"context"
	"time"

	"signet/internal/audit"
	"signet/internal/certificate/canonical"
	"signet/internal/certificate/models"
	dErrors "signet/pkg/domain-errors"
)

// IssueContext carries the request-scoped facts stamped onto a record at
// issuance: who issued, from where, with what device.
type IssueContext struct {
	IssuerEmail string
	DeviceIP    string
	Device      string
	RequestID   string
}

// Issue runs the issuance protocol: validate, allocate, hash, anchor,
// persist. Anchoring is a precondition for persistence: on any ledger write
// failure nothing is stored and the caller is told issuance failed.
//
// Once the ledger submission is in flight the work continues on a context
// detached from the caller: a client disconnect must not leave a
// half-anchored, half-persisted state.
func (s *Service) Issue(ctx context.Context, req models.IssueRequest, ic IssueContext) (*models.IssueResult, error) {
	ctx, sp := span(s.tracer, ctx, "certificate.issue", "")
	defer sp.End()

	start := s.now()

	// Validation precedes allocation so rejected requests never consume a
	// number. Gaps from later failures are acceptable, not corruption.
	if err := validateIssueRequest(req); err != nil {
		return nil, err
	}

	number, err := s.allocator.Next(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "allocate certificate number", err)
	}

	now := start.UTC()
	cert := &models.Certificate{
		Number:         number,
		IssuerEmail:    ic.IssuerEmail,
		Particulars:    req.Particulars,
		Description:    req.Description,
		SignatoryName:  req.SignatoryName,
		ExpiryDate:     req.ExpiryDate,
		Location:       req.Location,
		CreationDate:   now.Format("2006-01-02"),
		CreationTime:   now.Format("15:04:05"),
		DeviceIP:       ic.DeviceIP,
		DocumentPhoto:  req.DocumentPhotoRef,
		SignaturePhoto: req.SignaturePhotoRef,
		SignatoryPhoto: req.SignatoryPhotoRef,
		CreatedAt:      now,
	}

	cert.Digest = canonical.Digest(canonical.Fields{
		Number:        cert.Number,
		IssuerEmail:   cert.IssuerEmail,
		Particulars:   cert.Particulars,
		Description:   cert.Description,
		SignatoryName: cert.SignatoryName,
		ExpiryDate:    cert.ExpiryDate,
	})

	// Point of no return: from here the issuance must reach a definite
	// outcome even if the caller goes away.
	anchorCtx := context.WithoutCancel(ctx)

	anchorStart := s.now()
	receipt, err := s.ledger.Anchor(anchorCtx, cert.Number, cert.Digest)
	if err != nil {
		s.metrics.LedgerWriteFailures.Inc()
		s.logger.ErrorContext(ctx, "ledger anchor failed",
			"certificate_number", cert.Number,
			"request_id", ic.RequestID,
			"error", err,
		)
		return nil, dErrors.Wrap(dErrors.CodeLedgerWrite, "failed to anchor certificate on ledger", err)
	}
	s.metrics.AnchorDuration.Observe(s.now().Sub(anchorStart).Seconds())
	cert.TransactionRef = receipt.TxRef

	if err := s.store.Insert(anchorCtx, cert); err != nil {
		// The digest is already immutably on the ledger. Record the orphan
		// for reconciliation instead of silently accepting the loss.
		s.auditEvent(anchorCtx, audit.Event{
			Action:            audit.ActionAnchorOrphaned,
			ActorEmail:        ic.IssuerEmail,
			CertificateNumber: cert.Number,
			Digest:            cert.Digest,
			TransactionRef:    cert.TransactionRef,
			RequestID:         ic.RequestID,
			Reason:            err.Error(),
		})
		s.logger.ErrorContext(ctx, "record persist failed after successful anchor",
			"certificate_number", cert.Number,
			"transaction_ref", cert.TransactionRef,
			"request_id", ic.RequestID,
			"error", err,
		)
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to persist certificate record", err)
	}

	s.auditEvent(anchorCtx, audit.Event{
		Action:            audit.ActionIssued,
		ActorEmail:        ic.IssuerEmail,
		CertificateNumber: cert.Number,
		Digest:            cert.Digest,
		TransactionRef:    cert.TransactionRef,
		DeviceIP:          ic.DeviceIP,
		Device:            ic.Device,
		RequestID:         ic.RequestID,
	})
	s.metrics.ObserveIssuance(s.now().Sub(start))
	s.logger.InfoContext(ctx, "certificate issued",
		"certificate_number", cert.Number,
		"transaction_ref", cert.TransactionRef,
		"request_id", ic.RequestID,
	)

	return &models.IssueResult{
		CertificateNumber: cert.Number,
		Digest:            cert.Digest,
		TransactionRef:    cert.TransactionRef,
	}, nil
}

func validateIssueRequest(req models.IssueRequest) error {
	missing := ""
	switch {
	case req.Particulars == "":
		missing = "particulars"
	case req.Description == "":
		missing = "description"
	case req.SignatoryName == "":
		missing = "signatory name"
	case req.ExpiryDate == "":
		missing = "expiry date"
	}
	if missing != "" {
		return dErrors.New(dErrors.CodeValidation, missing+" is required")
	}
	if _, err := time.Parse("2006-01-02", req.ExpiryDate); err != nil {
		return dErrors.New(dErrors.CodeValidation, "expiry date must be YYYY-MM-DD")
	}
	return nil
}
