// ABOUTME: Principal CRUD methods on SQLiteStore
// ABOUTME: Create, lookup, verification toggle, profile update, list, delete

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)

const principalColumns = `id, name, phone, national_id, role, language, is_verified, password_hash, username, plate_number, created_at, updated_at`

// nullable returns a NULL-storing value for optional unique columns so
// multiple principals without a username or plate don't collide.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// scanPrincipal scans one principal row from a *sql.Row or *sql.Rows.
func scanPrincipal(row interface{ Scan(...any) error }) (*Principal, error) {
	var p Principal
	var username, plate sql.NullString
	var isVerified int
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Phone,
		&p.NationalID,
		&p.Role,
		&p.Language,
		&isVerified,
		&p.PasswordHash,
		&username,
		&plate,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	p.IsVerified = isVerified != 0
	p.Username = username.String
	p.PlateNumber = plate.String

	p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &p, nil
}

// CreatePrincipal inserts a new principal. The UNIQUE indexes are the
// authoritative uniqueness guard; constraint violations are mapped back to
// the field-specific duplicate errors.
func (s *SQLiteStore) CreatePrincipal(ctx context.Context, p *Principal) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	if p.Language == "" {
		p.Language = "en"
	}

	query := `
		INSERT INTO principals (` + principalColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Phone,
		p.NationalID,
		string(p.Role),
		p.Language,
		boolToInt(p.IsVerified),
		p.PasswordHash,
		nullable(p.Username),
		nullable(p.PlateNumber),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if dup := duplicateFieldError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("inserting principal: %w", err)
	}

	s.logger.Info("created principal", "id", p.ID, "role", p.Role)
	return nil
}

// GetPrincipal retrieves a principal by ID.
// Returns ErrPrincipalNotFound if it doesn't exist.
func (s *SQLiteStore) GetPrincipal(ctx context.Context, id string) (*Principal, error) {
	query := `SELECT ` + principalColumns + ` FROM principals WHERE id = ?`

	p, err := scanPrincipal(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPrincipalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying principal: %w", err)
	}
	return p, nil
}

// GetPrincipalByUsername retrieves a principal by username, any role.
func (s *SQLiteStore) GetPrincipalByUsername(ctx context.Context, username string) (*Principal, error) {
	query := `SELECT ` + principalColumns + ` FROM principals WHERE username = ?`

	p, err := scanPrincipal(s.db.QueryRowContext(ctx, query, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPrincipalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying principal by username: %w", err)
	}
	return p, nil
}

// FindByPhoneOrNationalID returns the principal holding either value,
// regardless of role.
func (s *SQLiteStore) FindByPhoneOrNationalID(ctx context.Context, phone, nationalID string) (*Principal, error) {
	query := `SELECT ` + principalColumns + ` FROM principals WHERE phone = ? OR national_id = ? LIMIT 1`

	p, err := scanPrincipal(s.db.QueryRowContext(ctx, query, phone, nationalID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPrincipalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying principal by phone or national ID: %w", err)
	}
	return p, nil
}

// GetDriverByPlate retrieves the driver registered for a plate number.
func (s *SQLiteStore) GetDriverByPlate(ctx context.Context, plate string) (*Principal, error) {
	query := `SELECT ` + principalColumns + ` FROM principals WHERE plate_number = ? AND role = 'driver'`

	p, err := scanPrincipal(s.db.QueryRowContext(ctx, query, plate))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPrincipalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying driver by plate: %w", err)
	}
	return p, nil
}

// FindDriverForLogin retrieves a verified driver matching the exact
// {plate, name, license} triple. A missing record, an unverified driver,
// and a mismatched name or license all return ErrPrincipalNotFound so the
// login path cannot distinguish them.
func (s *SQLiteStore) FindDriverForLogin(ctx context.Context, plate, name, license string) (*Principal, error) {
	query := `
		SELECT ` + principalColumns + `
		FROM principals
		WHERE plate_number = ? AND name = ? AND national_id = ?
		  AND role = 'driver' AND is_verified = 1
	`

	p, err := scanPrincipal(s.db.QueryRowContext(ctx, query, plate, name, license))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPrincipalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying driver for login: %w", err)
	}
	return p, nil
}

// SetVerified flips the verification flag.
func (s *SQLiteStore) SetVerified(ctx context.Context, id string, verified bool) error {
	query := `UPDATE principals SET is_verified = ?, updated_at = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query,
		boolToInt(verified),
		time.Now().UTC().Format(time.RFC3339),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating verification: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return ErrPrincipalNotFound
	}

	s.logger.Info("updated verification", "id", id, "verified", verified)
	return nil
}

// UpdatePrincipal applies a profile update and returns the new record.
// Only nil-able profile fields can change; role and ID never do.
func (s *SQLiteStore) UpdatePrincipal(ctx context.Context, id string, update PrincipalUpdate) (*Principal, error) {
	sets := []string{}
	args := []any{}

	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *update.Phone)
	}
	if update.Language != nil {
		sets = append(sets, "language = ?")
		args = append(args, *update.Language)
	}
	if update.Username != nil {
		sets = append(sets, "username = ?")
		args = append(args, nullable(*update.Username))
	}

	if len(sets) == 0 {
		return s.GetPrincipal(ctx, id)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC().Format(time.RFC3339))
	args = append(args, id)

	query := `UPDATE principals SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dup := duplicateFieldError(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("updating principal: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrPrincipalNotFound
	}

	return s.GetPrincipal(ctx, id)
}

// ListPrincipals returns principals matching the filter, newest first.
func (s *SQLiteStore) ListPrincipals(ctx context.Context, filter PrincipalFilter) ([]Principal, error) {
	query := `SELECT ` + principalColumns + ` FROM principals`
	conditions := []string{}
	args := []any{}

	if filter.Role != nil {
		conditions = append(conditions, "role = ?")
		args = append(args, string(*filter.Role))
	}
	if filter.IsVerified != nil {
		conditions = append(conditions, "is_verified = ?")
		args = append(args, boolToInt(*filter.IsVerified))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing principals: %w", err)
	}
	defer rows.Close()

	var principals []Principal
	for rows.Next() {
		p, err := scanPrincipal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning principal: %w", err)
		}
		principals = append(principals, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating principals: %w", err)
	}

	return principals, nil
}

// DeletePrincipal removes a principal by ID.
func (s *SQLiteStore) DeletePrincipal(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM principals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting principal: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return ErrPrincipalNotFound
	}

	s.logger.Info("deleted principal", "id", id)
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
