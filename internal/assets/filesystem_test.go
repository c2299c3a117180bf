package assets

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type FilesystemSuite struct {
	suite.Suite
	dir   string
	store *Filesystem
	ctx   context.Context
}

func TestFilesystemSuite(t *testing.T) {
	suite.Run(t, new(FilesystemSuite))
}

func (s *FilesystemSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.store = NewFilesystem(s.dir, "http://localhost:8080/certificate_images/")
	s.ctx = context.Background()
}

func (s *FilesystemSuite) TestPublicURL() {
	s.Run("resolves against base url", func() {
		url, err := s.store.PublicURL(s.ctx, "0001", "docphoto_0001.jpg")
		s.Require().NoError(err)
		s.Equal("http://localhost:8080/certificate_images/0001/docphoto_0001.jpg", url)
	})

	s.Run("strips stored path down to its base name", func() {
		url, err := s.store.PublicURL(s.ctx, "0001", "/var/data/certs/0001/signphoto_0001.jpg")
		s.Require().NoError(err)
		s.Equal("http://localhost:8080/certificate_images/0001/signphoto_0001.jpg", url)
	})

	s.Run("empty ref resolves to empty url", func() {
		url, err := s.store.PublicURL(s.ctx, "0001", "")
		s.Require().NoError(err)
		s.Empty(url)
	})
}

func (s *FilesystemSuite) TestRemoveAll() {
	certDir := filepath.Join(s.dir, "0001")
	s.Require().NoError(os.MkdirAll(certDir, 0o755))
	s.Require().NoError(os.WriteFile(filepath.Join(certDir, "docphoto_0001.jpg"), []byte("img"), 0o644))

	s.Require().NoError(s.store.RemoveAll(s.ctx, "0001"))
	_, err := os.Stat(certDir)
	s.True(os.IsNotExist(err))

	s.Run("removing a missing directory is fine", func() {
		s.NoError(s.store.RemoveAll(s.ctx, "0002"))
	})

	s.Run("path traversal rejected", func() {
		s.Error(s.store.RemoveAll(s.ctx, "../0001"))
	})
}
