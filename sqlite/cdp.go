package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/cdpdoc/cdpdoc"
)

// Compile-time interface verification.
var _ cdpdoc.CDPService = (*CDPService)(nil)

// CDPService implements cdpdoc.CDPService using SQLite.
type CDPService struct {
	db *DB
}

// NewCDPService creates a new CDPService.
func NewCDPService(db *DB) *CDPService {
	return &CDPService{db: db}
}

// CreateCDP registers a new CDP. The caller supplies the ID (a short slug
// such as "segment"); re-registering an existing ID returns ECONFLICT.
func (s *CDPService) CreateCDP(ctx context.Context, cdp *cdpdoc.CDP) error {
	if err := cdp.Validate(); err != nil {
		return err
	}

	if _, err := s.FindCDPByID(ctx, cdp.ID); err == nil {
		return cdpdoc.Errorf(cdpdoc.ECONFLICT, "cdp %q is already registered", cdp.ID)
	} else if cdpdoc.ErrorCode(err) != cdpdoc.ENOTFOUND {
		return err
	}

	cdp.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cdps (id, name, base_url, created_at)
		VALUES (?, ?, ?, ?)
	`, cdp.ID, cdp.Name, cdp.BaseURL, cdp.CreatedAt.Format(time.RFC3339))

	return err
}

// FindCDPByID retrieves a CDP by ID.
func (s *CDPService) FindCDPByID(ctx context.Context, id string) (*cdpdoc.CDP, error) {
	var cdp cdpdoc.CDP
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, base_url, created_at
		FROM cdps
		WHERE id = ?
	`, id).Scan(&cdp.ID, &cdp.Name, &cdp.BaseURL, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, cdpdoc.Errorf(cdpdoc.ENOTFOUND, "cdp %q not found", id)
	}
	if err != nil {
		return nil, err
	}

	cdp.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &cdp, nil
}

// FindCDPs retrieves all registered CDPs ordered by ID.
func (s *CDPService) FindCDPs(ctx context.Context) ([]*cdpdoc.CDP, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, base_url, created_at
		FROM cdps
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cdps []*cdpdoc.CDP
	for rows.Next() {
		var cdp cdpdoc.CDP
		var createdAt string

		if err := rows.Scan(&cdp.ID, &cdp.Name, &cdp.BaseURL, &createdAt); err != nil {
			return nil, err
		}

		cdp.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		cdps = append(cdps, &cdp)
	}

	return cdps, rows.Err()
}

// DeleteCDP permanently removes a CDP. Its documents go with it via the
// foreign key cascade.
func (s *CDPService) DeleteCDP(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM cdps WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return cdpdoc.Errorf(cdpdoc.ENOTFOUND, "cdp %q not found", id)
	}

	return nil
}
