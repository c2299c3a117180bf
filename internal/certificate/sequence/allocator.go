package sequence

import (
	"context"
	"fmt"
)

// Width is the minimum zero-padded width of certificate numbers. Values past
// 9999 widen naturally rather than wrap or truncate.
const Width = 4

// Allocator hands out certificate numbers. Implementations must be
// linearizable: two concurrent calls never observe the same value.
type Allocator interface {
	Next(ctx context.Context) (string, error)
}

// Format renders a counter value as a certificate number.
func Format(n int64) string {
	return fmt.Sprintf("%0*d", Width, n)
}
