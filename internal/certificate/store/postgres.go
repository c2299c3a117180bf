package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"signet/internal/certificate/models"
	dErrors "signet/pkg/domain-errors"
)

// PostgresStore persists certificate records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed certificate store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const certificateColumns = `certificate_number, issuer_email, particulars, description,
	signatory_name, expiry_date, location, creation_date, creation_time, device_ip,
	document_photo, signature_photo, signatory_photo, digest, transaction_ref, created_at`

func (s *PostgresStore) Insert(ctx context.Context, cert *models.Certificate) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO certificates (`+certificateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		cert.Number, cert.IssuerEmail, cert.Particulars, cert.Description,
		cert.SignatoryName, cert.ExpiryDate, cert.Location, cert.CreationDate,
		cert.CreationTime, cert.DeviceIP,
		nullString(cert.DocumentPhoto), nullString(cert.SignaturePhoto), nullString(cert.SignatoryPhoto),
		cert.Digest, cert.TransactionRef, cert.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return dErrors.New(dErrors.CodeConflict, "certificate number already exists")
		}
		return fmt.Errorf("insert certificate: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetByNumber(ctx context.Context, number string) (*models.Certificate, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+certificateColumns+` FROM certificates WHERE certificate_number = $1`,
		number,
	)
	return scanCertificate(row)
}

func (s *PostgresStore) GetByNumberAndOwner(ctx context.Context, number, ownerEmail string) (*models.Certificate, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+certificateColumns+` FROM certificates
		WHERE certificate_number = $1 AND issuer_email = $2`,
		number, ownerEmail,
	)
	return scanCertificate(row)
}

func (s *PostgresStore) ListByOwner(ctx context.Context, ownerEmail string) ([]*models.Certificate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+certificateColumns+` FROM certificates
		WHERE issuer_email = $1
		ORDER BY created_at DESC`,
		ownerEmail,
	)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	defer rows.Close()

	var certs []*models.Certificate
	for rows.Next() {
		cert, err := scanCertificate(rows)
		if err != nil {
			return nil, err
		}
		certs = append(certs, cert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	return certs, nil
}

func (s *PostgresStore) DeleteByNumberAndOwner(ctx context.Context, number, ownerEmail string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM certificates WHERE certificate_number = $1 AND issuer_email = $2`,
		number, ownerEmail,
	)
	if err != nil {
		return fmt.Errorf("delete certificate: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete certificate: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) MaxNumber(ctx context.Context) (int64, error) {
	var max sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT MAX(certificate_number::BIGINT) FROM certificates`,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max certificate number: %w", err)
	}
	if !max.Valid {
		return 0, nil
	}
	return max.Int64, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCertificate(row rowScanner) (*models.Certificate, error) {
	var cert models.Certificate
	var docPhoto, signPhoto, signatoryPhoto sql.NullString
	err := row.Scan(
		&cert.Number, &cert.IssuerEmail, &cert.Particulars, &cert.Description,
		&cert.SignatoryName, &cert.ExpiryDate, &cert.Location, &cert.CreationDate,
		&cert.CreationTime, &cert.DeviceIP,
		&docPhoto, &signPhoto, &signatoryPhoto,
		&cert.Digest, &cert.TransactionRef, &cert.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan certificate: %w", err)
	}
	cert.DocumentPhoto = docPhoto.String
	cert.SignaturePhoto = signPhoto.String
	cert.SignatoryPhoto = signatoryPhoto.String
	return &cert, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
