package models

import "time"

// Certificate is the persisted record of one issued certificate. Content
// fields are immutable after issuance; the digest covers exactly the fields
// hashed by the canonical encoder, never the asset or anchor references.
type Certificate struct {
	Number         string
	IssuerEmail    string
	Particulars    string
	Description    string
	SignatoryName  string
	ExpiryDate     string
	Location       string
	CreationDate   string
	CreationTime   string
	DeviceIP       string
	DocumentPhoto  string
	SignaturePhoto string
	SignatoryPhoto string
	Digest         string
	TransactionRef string
	CreatedAt      time.Time
}

// IssueRequest carries the caller-supplied content fields and optional asset
// references for a new certificate.
type IssueRequest struct {
	Particulars   string
	Description   string
	SignatoryName string
	ExpiryDate    string
	Location      string

	DocumentPhotoRef  string
	SignaturePhotoRef string
	SignatoryPhotoRef string
}

// IssueResult is what issuance hands back to the transport layer.
type IssueResult struct {
	CertificateNumber string
	Digest            string
	TransactionRef    string
}
