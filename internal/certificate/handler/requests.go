package handler

import (
	"strings"

	"signet/internal/certificate/models"
)

// IssueRequest is the wire form of a certificate issuance.
type IssueRequest struct {
	Particulars   string `json:"particulars"`
	Description   string `json:"description"`
	SignatoryName string `json:"signatory_name"`
	ExpiryDate    string `json:"expiry_date"`
	Location      string `json:"location,omitempty"`

	DocumentPhotoRef  string `json:"document_photo_ref,omitempty"`
	SignaturePhotoRef string `json:"signature_photo_ref,omitempty"`
	SignatoryPhotoRef string `json:"signatory_photo_ref,omitempty"`
}

// ToModel trims surrounding whitespace and maps onto the domain request.
// Content validation itself lives in the service.
func (r IssueRequest) ToModel() models.IssueRequest {
	return models.IssueRequest{
		Particulars:       strings.TrimSpace(r.Particulars),
		Description:       strings.TrimSpace(r.Description),
		SignatoryName:     strings.TrimSpace(r.SignatoryName),
		ExpiryDate:        strings.TrimSpace(r.ExpiryDate),
		Location:          strings.TrimSpace(r.Location),
		DocumentPhotoRef:  strings.TrimSpace(r.DocumentPhotoRef),
		SignaturePhotoRef: strings.TrimSpace(r.SignaturePhotoRef),
		SignatoryPhotoRef: strings.TrimSpace(r.SignatoryPhotoRef),
	}
}

// FaceVerifyRequest asks for a comparison between the stored signatory photo
// and a freshly captured image.
type FaceVerifyRequest struct {
	CertificateNumber string `json:"certificate_number"`
	CandidateRef      string `json:"candidate_ref"`
}
