package sequence

import (
	"context"
	"database/sql"
	"fmt"
)

// Postgres allocates certificate numbers from a single-row counter table.
// The increment happens inside one UPDATE ... RETURNING statement, so the
// database serializes concurrent issuance without any read-then-write in
// application code. The row is seeded from MAX(certificate_number) at
// migration time.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Next(ctx context.Context) (string, error) {
	var value int64
	err := p.db.QueryRowContext(ctx,
		`UPDATE certificate_sequence SET value = value + 1 WHERE id = 1 RETURNING value`,
	).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("allocate certificate number: %w", err)
	}
	return Format(value), nil
}
