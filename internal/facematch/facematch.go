// Package facematch consumes the external face comparison service as a black
// box: two image references in, a same-person judgment out.
package facematch

import "context"

// Result is the service's judgment.
type Result struct {
	IsMatch    bool    `json:"is_match"`
	Confidence float64 `json:"confidence"`
}

// Comparer compares a stored reference image against a candidate image.
type Comparer interface {
	Compare(ctx context.Context, referenceRef, candidateRef string) (Result, error)
}
