package canonical

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"
)

type HasherSuite struct {
	suite.Suite
	base Fields
}

func TestHasherSuite(t *testing.T) {
	suite.Run(t, new(HasherSuite))
}

func (s *HasherSuite) SetupTest() {
	s.base = Fields{
		Number:        "0001",
		IssuerEmail:   "issuer@example.com",
		Particulars:   "Deed A",
		Description:   "desc",
		SignatoryName: "J. Doe",
		ExpiryDate:    "2030-01-01",
	}
}

func (s *HasherSuite) TestDeterminism() {
	first := Digest(s.base)
	for range 10 {
		s.Equal(first, Digest(s.base))
	}
}

func (s *HasherSuite) TestOutputShape() {
	s.Regexp(regexp.MustCompile(`^[0-9a-f]{64}$`), Digest(s.base))
}

func (s *HasherSuite) TestSingleFieldMutationChangesDigest() {
	original := Digest(s.base)

	mutations := map[string]func(f *Fields){
		"number":         func(f *Fields) { f.Number = "0002" },
		"issuer email":   func(f *Fields) { f.IssuerEmail = "other@example.com" },
		"particulars":    func(f *Fields) { f.Particulars = "Deed B" },
		"description":    func(f *Fields) { f.Description = "desc2" },
		"signatory name": func(f *Fields) { f.SignatoryName = "J. Roe" },
		"expiry date":    func(f *Fields) { f.ExpiryDate = "2031-01-01" },
	}
	for name, mutate := range mutations {
		s.Run(name, func() {
			f := s.base
			mutate(&f)
			s.NotEqual(original, Digest(f))
		})
	}
}

func (s *HasherSuite) TestNoBoundaryShifting() {
	// Raw concatenation would make these two collide ("ab"+"c" == "a"+"bc");
	// the length framing must keep them apart.
	left := s.base
	left.Particulars = "ab"
	left.Description = "c"

	right := s.base
	right.Particulars = "a"
	right.Description = "bc"

	s.NotEqual(Digest(left), Digest(right))
}

func (s *HasherSuite) TestEmptyFieldsStillHash() {
	s.Regexp(`^[0-9a-f]{64}$`, Digest(Fields{}))
	s.NotEqual(Digest(Fields{}), Digest(s.base))
}
