package service

import (
	"context"
	"errors"

	"signet/internal/audit"
	"signet/internal/certificate/models"
	"signet/internal/certificate/store"
	"signet/internal/facematch"
	dErrors "signet/pkg/domain-errors"
)

// CertificateView is a record with its asset references resolved to public
// URLs, ready for the transport layer.
type CertificateView struct {
	models.Certificate
	DocumentPhotoURL  string
	SignaturePhotoURL string
	SignatoryPhotoURL string
}

// Get returns one certificate, owner-scoped. Non-owners see NotFound rather
// than Forbidden so record existence is not leaked.
func (s *Service) Get(ctx context.Context, number, ownerEmail string) (*CertificateView, error) {
	cert, err := s.store.GetByNumberAndOwner(ctx, number, ownerEmail)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "load certificate record", err)
	}
	return s.resolveAssets(ctx, cert)
}

// List returns the caller's certificates, newest first.
func (s *Service) List(ctx context.Context, ownerEmail string) ([]*CertificateView, error) {
	certs, err := s.store.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "list certificate records", err)
	}
	views := make([]*CertificateView, 0, len(certs))
	for _, cert := range certs {
		view, err := s.resolveAssets(ctx, cert)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// Delete hard-deletes a certificate: record, asset files and cached asset
// URLs. The ledger anchor stays; the ledger is append-only and outlives the
// record.
func (s *Service) Delete(ctx context.Context, number, ownerEmail string) error {
	if err := s.store.DeleteByNumberAndOwner(ctx, number, ownerEmail); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return err
		}
		return dErrors.Wrap(dErrors.CodeInternal, "delete certificate record", err)
	}
	if err := s.assets.RemoveAll(ctx, number); err != nil {
		// The record is gone; orphaned files are an operational cleanup, not
		// a failed delete.
		s.logger.WarnContext(ctx, "asset cleanup failed after delete",
			"certificate_number", number,
			"error", err,
		)
	}
	s.auditEvent(ctx, audit.Event{
		Action:            audit.ActionDeleted,
		ActorEmail:        ownerEmail,
		CertificateNumber: number,
	})
	s.metrics.CertificatesDeleted.Inc()
	return nil
}

// CompareSignatoryFace checks a candidate image against the signatory photo
// stored for the caller's certificate.
func (s *Service) CompareSignatoryFace(ctx context.Context, comparer facematch.Comparer, number, ownerEmail, candidateRef string) (facematch.Result, error) {
	cert, err := s.store.GetByNumberAndOwner(ctx, number, ownerEmail)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return facematch.Result{}, err
		}
		return facematch.Result{}, dErrors.Wrap(dErrors.CodeInternal, "load certificate record", err)
	}
	if cert.SignatoryPhoto == "" {
		return facematch.Result{}, dErrors.New(dErrors.CodeBadRequest, "certificate has no signatory photo")
	}

	result, err := comparer.Compare(ctx, cert.SignatoryPhoto, candidateRef)
	if err != nil {
		return facematch.Result{}, dErrors.Wrap(dErrors.CodeInternal, "face comparison failed", err)
	}
	s.auditEvent(ctx, audit.Event{
		Action:            audit.ActionFaceCompared,
		ActorEmail:        ownerEmail,
		CertificateNumber: number,
		Verdict:           boolVerdict(result.IsMatch),
	})
	return result, nil
}

func boolVerdict(match bool) string {
	if match {
		return "match"
	}
	return "no_match"
}

func (s *Service) resolveAssets(ctx context.Context, cert *models.Certificate) (*CertificateView, error) {
	view := &CertificateView{Certificate: *cert}
	var err error
	if view.DocumentPhotoURL, err = s.assets.PublicURL(ctx, cert.Number, cert.DocumentPhoto); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "resolve document photo", err)
	}
	if view.SignaturePhotoURL, err = s.assets.PublicURL(ctx, cert.Number, cert.SignaturePhoto); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "resolve signature photo", err)
	}
	if view.SignatoryPhotoURL, err = s.assets.PublicURL(ctx, cert.Number, cert.SignatoryPhoto); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "resolve signatory photo", err)
	}
	return view, nil
}
