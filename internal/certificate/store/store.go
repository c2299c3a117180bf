package store

import (
	"context"

	"signet/internal/certificate/models"
	dErrors "signet/pkg/domain-errors"
)

// ErrNotFound keeps store-level misses consistent across the in-memory and
// PostgreSQL implementations.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "certificate not found")

// Store persists certificate records. It is interface-driven so services stay
// testable and persistence can be swapped without rewiring business code.
type Store interface {
	Insert(ctx context.Context, cert *models.Certificate) error
	GetByNumber(ctx context.Context, number string) (*models.Certificate, error)
	GetByNumberAndOwner(ctx context.Context, number, ownerEmail string) (*models.Certificate, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]*models.Certificate, error)
	DeleteByNumberAndOwner(ctx context.Context, number, ownerEmail string) error
	MaxNumber(ctx context.Context) (int64, error)
}
