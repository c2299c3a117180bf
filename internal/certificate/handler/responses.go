package handler

import (
	"time"

	"signet/internal/certificate/models"
	"signet/internal/certificate/service"
	"signet/internal/facematch"
)

// IssueResponse is returned on successful issuance.
type IssueResponse struct {
	CertificateNumber string `json:"certificate_number"`
	Digest            string `json:"digest"`
	TransactionRef    string `json:"transaction_ref"`
}

// CertificateResponse is the full record view with resolved asset URLs.
type CertificateResponse struct {
	CertificateNumber string    `json:"certificate_number"`
	IssuerEmail       string    `json:"issuer_email"`
	Particulars       string    `json:"particulars"`
	Description       string    `json:"description"`
	SignatoryName     string    `json:"signatory_name"`
	ExpiryDate        string    `json:"expiry_date"`
	Location          string    `json:"location,omitempty"`
	CreationDate      string    `json:"creation_date"`
	CreationTime      string    `json:"creation_time"`
	Digest            string    `json:"digest"`
	TransactionRef    string    `json:"transaction_ref"`
	DocumentPhotoURL  string    `json:"document_photo_url,omitempty"`
	SignaturePhotoURL string    `json:"signature_photo_url,omitempty"`
	SignatoryPhotoURL string    `json:"signatory_photo_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// VerificationResponse is the public verification outcome. Every verdict is
// a 200; the verdict string carries the judgment.
type VerificationResponse struct {
	CertificateNumber string     `json:"certificate_number"`
	Verdict           string     `json:"verdict"`
	StoredDigest      string     `json:"stored_digest,omitempty"`
	LedgerDigest      string     `json:"ledger_digest,omitempty"`
	AnchoredAt        *time.Time `json:"anchored_at,omitempty"`
	TransactionRef    string     `json:"transaction_ref,omitempty"`
}

// FaceVerifyResponse is the comparison outcome.
type FaceVerifyResponse struct {
	IsMatch    bool    `json:"is_match"`
	Confidence float64 `json:"confidence"`
}

func fromIssueResult(r *models.IssueResult) IssueResponse {
	return IssueResponse{
		CertificateNumber: r.CertificateNumber,
		Digest:            r.Digest,
		TransactionRef:    r.TransactionRef,
	}
}

func fromView(v *service.CertificateView) CertificateResponse {
	return CertificateResponse{
		CertificateNumber: v.Number,
		IssuerEmail:       v.IssuerEmail,
		Particulars:       v.Particulars,
		Description:       v.Description,
		SignatoryName:     v.SignatoryName,
		ExpiryDate:        v.ExpiryDate,
		Location:          v.Location,
		CreationDate:      v.CreationDate,
		CreationTime:      v.CreationTime,
		Digest:            v.Digest,
		TransactionRef:    v.TransactionRef,
		DocumentPhotoURL:  v.DocumentPhotoURL,
		SignaturePhotoURL: v.SignaturePhotoURL,
		SignatoryPhotoURL: v.SignatoryPhotoURL,
		CreatedAt:         v.CreatedAt,
	}
}

func fromVerification(r *models.VerificationResult) VerificationResponse {
	return VerificationResponse{
		CertificateNumber: r.CertificateNumber,
		Verdict:           string(r.Verdict),
		StoredDigest:      r.StoredDigest,
		LedgerDigest:      r.LedgerDigest,
		AnchoredAt:        r.AnchoredAt,
		TransactionRef:    r.TransactionRef,
	}
}

func fromFaceResult(r facematch.Result) FaceVerifyResponse {
	return FaceVerifyResponse{IsMatch: r.IsMatch, Confidence: r.Confidence}
}
