package canonical

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// EncodingVersion identifies the frozen canonical encoding. Any change to the
// field set, order, or framing must bump this and keep v1 verifiable forever:
// every digest anchored on the ledger was computed against one exact byte
// layout.
const EncodingVersion = 1

// Fields is the ordered content field set covered by a certificate digest.
// Asset references and the anchor reference are metadata and never included.
type Fields struct {
	Number        string
	IssuerEmail   string
	Particulars   string
	Description   string
	SignatoryName string
	ExpiryDate    string
}

// Digest computes the canonical SHA-256 digest of the fields as a lowercase
// 64-character hex string. Each field is framed as an 8-byte big-endian
// length followed by its UTF-8 bytes, so no pair of distinct field sets can
// collide by shifting bytes across field boundaries.
func Digest(f Fields) string {
	h := sha256.New()
	for _, value := range [...]string{
		f.Number,
		f.IssuerEmail,
		f.Particulars,
		f.Description,
		f.SignatoryName,
		f.ExpiryDate,
	} {
		var length [8]byte
		binary.BigEndian.PutUint64(length[:], uint64(len(value)))
		h.Write(length[:])
		h.Write([]byte(value))
	}
	return hex.EncodeToString(h.Sum(nil))
}
