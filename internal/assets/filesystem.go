package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Filesystem stores certificate assets under <dir>/<certificate number>/ and
// serves them from a public base URL.
type Filesystem struct {
	dir     string
	baseURL string
}

func NewFilesystem(dir, baseURL string) *Filesystem {
	return &Filesystem{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (f *Filesystem) PublicURL(ctx context.Context, certificateNumber, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}
	return f.baseURL + "/" + certificateNumber + "/" + filepath.Base(ref), nil
}

func (f *Filesystem) RemoveAll(ctx context.Context, certificateNumber string) error {
	if certificateNumber == "" || strings.Contains(certificateNumber, "..") {
		return fmt.Errorf("invalid certificate number %q", certificateNumber)
	}
	dir := filepath.Join(f.dir, certificateNumber)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove certificate assets: %w", err)
	}
	return nil
}
