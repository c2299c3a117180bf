package store

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"signet/internal/certificate/models"
	dErrors "signet/pkg/domain-errors"
)

// Memory is the in-process record store for development and tests.
type Memory struct {
	mu    sync.RWMutex
	certs map[string]*models.Certificate
}

func NewMemory() *Memory {
	return &Memory{certs: make(map[string]*models.Certificate)}
}

func (m *Memory) Insert(ctx context.Context, cert *models.Certificate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.certs[cert.Number]; exists {
		return dErrors.New(dErrors.CodeConflict, "certificate number already exists")
	}
	copied := *cert
	m.certs[cert.Number] = &copied
	return nil
}

func (m *Memory) GetByNumber(ctx context.Context, number string) (*models.Certificate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cert, ok := m.certs[number]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *cert
	return &copied, nil
}

func (m *Memory) GetByNumberAndOwner(ctx context.Context, number, ownerEmail string) (*models.Certificate, error) {
	cert, err := m.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if cert.IssuerEmail != ownerEmail {
		return nil, ErrNotFound
	}
	return cert, nil
}

func (m *Memory) ListByOwner(ctx context.Context, ownerEmail string) ([]*models.Certificate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*models.Certificate
	for _, cert := range m.certs {
		if cert.IssuerEmail == ownerEmail {
			copied := *cert
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) DeleteByNumberAndOwner(ctx context.Context, number, ownerEmail string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cert, ok := m.certs[number]
	if !ok || cert.IssuerEmail != ownerEmail {
		return ErrNotFound
	}
	delete(m.certs, number)
	return nil
}

func (m *Memory) MaxNumber(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var max int64
	for number := range m.certs {
		n, err := strconv.ParseInt(number, 10, 64)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max, nil
}

// TamperWith mutates a stored record's field in place. Test hook for
// exercising local-tamper detection; never called by production code.
func (m *Memory) TamperWith(number string, mutate func(*models.Certificate)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	cert, ok := m.certs[number]
	if !ok {
		return false
	}
	mutate(cert)
	return true
}
