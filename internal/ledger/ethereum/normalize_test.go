package ethereum

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"signet/internal/ledger"
)

type NormalizeSuite struct {
	suite.Suite
}

func TestNormalizeSuite(t *testing.T) {
	suite.Run(t, new(NormalizeSuite))
}

func (s *NormalizeSuite) TestPositionalResult() {
	out := []interface{}{"0001", "abc123", big.NewInt(1756700000)}

	entry, err := normalizeResult(out)
	s.Require().NoError(err)
	s.Equal("0001", entry.Identifier)
	s.Equal("abc123", entry.Digest)
	s.Equal(time.Unix(1756700000, 0).UTC(), entry.AnchoredAt)
}

func (s *NormalizeSuite) TestStructResult() {
	result := struct {
		CertificateNumber string
		Hash              string
		Timestamp         *big.Int
	}{
		CertificateNumber: "0001",
		Hash:              "abc123",
		Timestamp:         big.NewInt(1756700000),
	}

	s.Run("by value", func() {
		entry, err := normalizeResult([]interface{}{result})
		s.Require().NoError(err)
		s.Equal("0001", entry.Identifier)
		s.Equal("abc123", entry.Digest)
		s.Equal(time.Unix(1756700000, 0).UTC(), entry.AnchoredAt)
	})

	s.Run("by pointer", func() {
		entry, err := normalizeResult([]interface{}{&result})
		s.Require().NoError(err)
		s.Equal("abc123", entry.Digest)
	})
}

func (s *NormalizeSuite) TestEmptyDigestMeansNotAnchored() {
	s.Run("positional", func() {
		_, err := normalizeResult([]interface{}{"", "", big.NewInt(0)})
		s.ErrorIs(err, ledger.ErrNotAnchored)
	})

	s.Run("struct", func() {
		result := struct {
			CertificateNumber string
			Hash              string
			Timestamp         *big.Int
		}{}
		_, err := normalizeResult([]interface{}{result})
		s.ErrorIs(err, ledger.ErrNotAnchored)
	})
}

func (s *NormalizeSuite) TestMalformedResults() {
	var readErr *ledger.ReadError

	s.Run("wrong arity", func() {
		_, err := normalizeResult([]interface{}{"0001", "abc"})
		s.ErrorAs(err, &readErr)
	})

	s.Run("wrong positional types", func() {
		_, err := normalizeResult([]interface{}{1, 2, 3})
		s.ErrorAs(err, &readErr)
	})

	s.Run("struct missing fields", func() {
		_, err := normalizeResult([]interface{}{struct{ Foo string }{"x"}})
		s.ErrorAs(err, &readErr)
	})

	s.Run("malformed result is not mistaken for a miss", func() {
		_, err := normalizeResult([]interface{}{1, 2, 3})
		s.False(errors.Is(err, ledger.ErrNotAnchored))
	})
}

func (s *NormalizeSuite) TestZeroTimestampStaysZero() {
	out := []interface{}{"0001", "abc123", big.NewInt(0)}
	entry, err := normalizeResult(out)
	s.Require().NoError(err)
	s.True(entry.AnchoredAt.IsZero())
}
