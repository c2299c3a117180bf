// Package assets handles the binary collaterals of a certificate (document,
// signature and signatory photos). The core never inspects file bytes; it
// passes opaque references in and public URLs out.
package assets

import "context"

// Store resolves and disposes of asset references for a certificate.
type Store interface {
	// PublicURL resolves an opaque stored reference to a URL a client can
	// fetch.
	PublicURL(ctx context.Context, certificateNumber, ref string) (string, error)
	// RemoveAll deletes every asset stored for a certificate. Called on hard
	// delete of the record.
	RemoveAll(ctx context.Context, certificateNumber string) error
}
