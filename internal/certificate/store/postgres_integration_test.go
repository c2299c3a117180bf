//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"signet/internal/certificate/models"
	"signet/internal/certificate/store"
	"signet/internal/platform/postgres"
	dErrors "signet/pkg/domain-errors"
	"signet/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
	ctx      context.Context
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	s.postgres = containers.NewPostgresContainer(s.T())
	s.Require().NoError(postgres.Migrate(s.ctx, s.postgres.DB))
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.Truncate(s.ctx, "certificates"))
}

func newTestCertificate(number, email string) *models.Certificate {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &models.Certificate{
		Number:         number,
		IssuerEmail:    email,
		Particulars:    "Deed A",
		Description:    "desc",
		SignatoryName:  "J. Doe",
		ExpiryDate:     "2030-01-01",
		Location:       "Pune",
		CreationDate:   now.Format("2006-01-02"),
		CreationTime:   now.Format("15:04:05"),
		DeviceIP:       "127.0.0.1",
		Digest:         "aec070645fe53ee3b3763059376134f058cc337247c978add178b6ccdfb0019f",
		TransactionRef: "0xabc",
		CreatedAt:      now,
	}
}

func (s *PostgresStoreSuite) TestInsertAndGet() {
	cert := newTestCertificate("0001", "issuer@example.com")
	s.Require().NoError(s.store.Insert(s.ctx, cert))

	got, err := s.store.GetByNumber(s.ctx, "0001")
	s.Require().NoError(err)
	s.Equal(cert.Digest, got.Digest)
	s.Equal(cert.IssuerEmail, got.IssuerEmail)
	s.Equal(cert.TransactionRef, got.TransactionRef)
	s.WithinDuration(cert.CreatedAt, got.CreatedAt, time.Millisecond)
}

func (s *PostgresStoreSuite) TestInsertDuplicateConflicts() {
	s.Require().NoError(s.store.Insert(s.ctx, newTestCertificate("0001", "issuer@example.com")))

	err := s.store.Insert(s.ctx, newTestCertificate("0001", "other@example.com"))
	s.True(dErrors.Is(err, dErrors.CodeConflict), "want conflict, got %v", err)
}

func (s *PostgresStoreSuite) TestOwnerScoping() {
	s.Require().NoError(s.store.Insert(s.ctx, newTestCertificate("0001", "issuer@example.com")))

	s.Run("owner sees the record", func() {
		got, err := s.store.GetByNumberAndOwner(s.ctx, "0001", "issuer@example.com")
		s.Require().NoError(err)
		s.Equal("0001", got.Number)
	})

	s.Run("non-owner gets not found", func() {
		_, err := s.store.GetByNumberAndOwner(s.ctx, "0001", "other@example.com")
		s.ErrorIs(err, store.ErrNotFound)
	})

	s.Run("non-owner cannot delete", func() {
		err := s.store.DeleteByNumberAndOwner(s.ctx, "0001", "other@example.com")
		s.ErrorIs(err, store.ErrNotFound)
	})
}

func (s *PostgresStoreSuite) TestListByOwnerNewestFirst() {
	first := newTestCertificate("0001", "issuer@example.com")
	first.CreatedAt = time.Now().UTC().Add(-time.Hour)
	s.Require().NoError(s.store.Insert(s.ctx, first))
	s.Require().NoError(s.store.Insert(s.ctx, newTestCertificate("0002", "issuer@example.com")))
	s.Require().NoError(s.store.Insert(s.ctx, newTestCertificate("0003", "other@example.com")))

	certs, err := s.store.ListByOwner(s.ctx, "issuer@example.com")
	s.Require().NoError(err)
	s.Require().Len(certs, 2)
	s.Equal("0002", certs[0].Number)
	s.Equal("0001", certs[1].Number)
}

func (s *PostgresStoreSuite) TestDelete() {
	s.Require().NoError(s.store.Insert(s.ctx, newTestCertificate("0001", "issuer@example.com")))
	s.Require().NoError(s.store.DeleteByNumberAndOwner(s.ctx, "0001", "issuer@example.com"))

	_, err := s.store.GetByNumber(s.ctx, "0001")
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *PostgresStoreSuite) TestMaxNumber() {
	max, err := s.store.MaxNumber(s.ctx)
	s.Require().NoError(err)
	s.Zero(max)

	s.Require().NoError(s.store.Insert(s.ctx, newTestCertificate("0007", "issuer@example.com")))
	s.Require().NoError(s.store.Insert(s.ctx, newTestCertificate("10001", "issuer@example.com")))

	max, err = s.store.MaxNumber(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(10001, max)
}
