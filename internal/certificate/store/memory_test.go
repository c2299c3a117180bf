package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"signet/internal/certificate/models"
	dErrors "signet/pkg/domain-errors"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *Memory
	ctx   context.Context
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewMemory()
	s.ctx = context.Background()
}

func newTestCertificate(number, owner string) *models.Certificate {
	return &models.Certificate{
		Number:         number,
		IssuerEmail:    owner,
		Particulars:    "Deed A",
		Description:    "desc",
		SignatoryName:  "J. Doe",
		ExpiryDate:     "2030-01-01",
		Location:       "Pune",
		CreationDate:   "2026-09-01",
		CreationTime:   "10:00:00",
		DeviceIP:       "127.0.0.1",
		Digest:         "d0c4e1",
		TransactionRef: "0xabc",
		CreatedAt:      time.Now(),
	}
}

func (s *MemoryStoreSuite) TestInsertAndGet() {
	cert := newTestCertificate("0001", "a@example.com")
	s.Require().NoError(s.store.Insert(s.ctx, cert))

	got, err := s.store.GetByNumber(s.ctx, "0001")
	s.Require().NoError(err)
	s.Equal("Deed A", got.Particulars)

	s.Run("duplicate number conflicts", func() {
		err := s.store.Insert(s.ctx, newTestCertificate("0001", "a@example.com"))
		s.True(dErrors.Is(err, dErrors.CodeConflict))
	})

	s.Run("returned record is a copy", func() {
		got.Particulars = "mutated"
		again, err := s.store.GetByNumber(s.ctx, "0001")
		s.Require().NoError(err)
		s.Equal("Deed A", again.Particulars)
	})
}

func (s *MemoryStoreSuite) TestOwnerScoping() {
	s.Require().NoError(s.store.Insert(s.ctx, newTestCertificate("0001", "a@example.com")))

	s.Run("owner can fetch", func() {
		got, err := s.store.GetByNumberAndOwner(s.ctx, "0001", "a@example.com")
		s.Require().NoError(err)
		s.Equal("0001", got.Number)
	})

	s.Run("non-owner gets not found", func() {
		_, err := s.store.GetByNumberAndOwner(s.ctx, "0001", "b@example.com")
		s.ErrorIs(err, ErrNotFound)
	})

	s.Run("non-owner cannot delete", func() {
		err := s.store.DeleteByNumberAndOwner(s.ctx, "0001", "b@example.com")
		s.ErrorIs(err, ErrNotFound)
	})
}

func (s *MemoryStoreSuite) TestListByOwnerNewestFirst() {
	older := newTestCertificate("0001", "a@example.com")
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := newTestCertificate("0002", "a@example.com")
	other := newTestCertificate("0003", "b@example.com")

	s.Require().NoError(s.store.Insert(s.ctx, older))
	s.Require().NoError(s.store.Insert(s.ctx, newer))
	s.Require().NoError(s.store.Insert(s.ctx, other))

	certs, err := s.store.ListByOwner(s.ctx, "a@example.com")
	s.Require().NoError(err)
	s.Require().Len(certs, 2)
	s.Equal("0002", certs[0].Number)
	s.Equal("0001", certs[1].Number)
}

func (s *MemoryStoreSuite) TestDelete() {
	s.Require().NoError(s.store.Insert(s.ctx, newTestCertificate("0001", "a@example.com")))
	s.Require().NoError(s.store.DeleteByNumberAndOwner(s.ctx, "0001", "a@example.com"))

	_, err := s.store.GetByNumber(s.ctx, "0001")
	s.ErrorIs(err, ErrNotFound)

	s.Run("deleting again reports not found", func() {
		s.ErrorIs(s.store.DeleteByNumberAndOwner(s.ctx, "0001", "a@example.com"), ErrNotFound)
	})
}

func (s *MemoryStoreSuite) TestMaxNumber() {
	s.Run("empty store reports zero", func() {
		max, err := s.store.MaxNumber(s.ctx)
		s.Require().NoError(err)
		s.Zero(max)
	})

	s.Run("reports highest numeric value", func() {
		s.Require().NoError(s.store.Insert(s.ctx, newTestCertificate("0002", "a@example.com")))
		s.Require().NoError(s.store.Insert(s.ctx, newTestCertificate("0010", "a@example.com")))

		max, err := s.store.MaxNumber(s.ctx)
		s.Require().NoError(err)
		s.Equal(int64(10), max)
	})
}
