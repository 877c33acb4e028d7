package automobile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ Store = &Repository{}

var (
	ErrNotFound            = errors.New("automobile repository: automobile not found")
	ErrQueryFailed         = errors.New("automobile repository: query failed")
	ErrConstraintViolation = errors.New("automobile repository: constraint violation")
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db}
}

type CreateParams struct {
	Name          string
	Color         string
	OriginalColor bool
}

const automobileColumns = "id, name, color, created_at, updated_at, is_original_color, deleted"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAutomobile(row rowScanner) (Automobile, error) {
	var a Automobile
	err := row.Scan(&a.ID, &a.Name, &a.Color, &a.CreatedAt, &a.UpdatedAt, &a.OriginalColor, &a.Deleted)
	return a, err
}

// wrapQueryError maps length and uniqueness violations reported by
// postgres to ErrConstraintViolation; anything else becomes ErrQueryFailed.
func wrapQueryError(err error, op string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "22001" || strings.HasPrefix(pgErr.Code, "23") {
			return fmt.Errorf("%w: %s: %v", ErrConstraintViolation, op, err)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrQueryFailed, op, err)
}

const QueryAutomobileCreate = `
INSERT INTO automobile (name, color, is_original_color)
VALUES ($1, $2, $3)
RETURNING ` + automobileColumns

func (r *Repository) Create(ctx context.Context, params CreateParams) (Automobile, error) {
	row := r.db.QueryRowContext(ctx, QueryAutomobileCreate, params.Name, params.Color, params.OriginalColor)
	a, err := scanAutomobile(row)
	if err != nil {
		return a, wrapQueryError(err, "create automobile")
	}
	return a, nil
}

const QueryAutomobileListActive = `
SELECT ` + automobileColumns + ` FROM automobile
WHERE deleted IS FALSE
ORDER BY created_at, id
`

// ListActive returns all non-deleted records in insertion order.
func (r *Repository) ListActive(ctx context.Context) ([]Automobile, error) {
	return r.queryList(ctx, "list active automobiles", QueryAutomobileListActive)
}

const QueryAutomobileFind = "SELECT " + automobileColumns + " FROM automobile WHERE id = $1"

// Find fetches a record by id. A soft-deleted record is still returned;
// only the active listing filters on the deleted flag.
func (r *Repository) Find(ctx context.Context, id uuid.UUID) (Automobile, error) {
	row := r.db.QueryRowContext(ctx, QueryAutomobileFind, id)
	a, err := scanAutomobile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return a, ErrNotFound
		}
		return a, wrapQueryError(err, fmt.Sprintf("find automobile with id %s", id))
	}
	return a, nil
}

const QueryAutomobileFindByName = "SELECT " + automobileColumns + " FROM automobile WHERE name = $1"

func (r *Repository) FindByName(ctx context.Context, name string) ([]Automobile, error) {
	return r.queryList(ctx, fmt.Sprintf("find automobiles with name %s", name), QueryAutomobileFindByName, name)
}

const QueryAutomobileFindByColor = "SELECT " + automobileColumns + " FROM automobile WHERE color = $1"

func (r *Repository) FindByColor(ctx context.Context, color string) ([]Automobile, error) {
	return r.queryList(ctx, fmt.Sprintf("find automobiles with color %s", color), QueryAutomobileFindByColor, color)
}

const QueryAutomobileFindByNameAndColor = "SELECT " + automobileColumns + " FROM automobile WHERE name = $1 AND color = $2"

func (r *Repository) FindByNameAndColor(ctx context.Context, name, color string) ([]Automobile, error) {
	op := fmt.Sprintf("find automobiles with name %s and color %s", name, color)
	return r.queryList(ctx, op, QueryAutomobileFindByNameAndColor, name, color)
}

const QueryAutomobileFindByColorPrefix = `
SELECT ` + automobileColumns + ` FROM automobile
WHERE color LIKE $1 || '%'
ORDER BY created_at, id
LIMIT $2 OFFSET $3
`

// FindByColorPrefix returns one zero-based page of records whose color
// starts with prefix, ordered by insertion.
func (r *Repository) FindByColorPrefix(ctx context.Context, prefix string, page, size int) ([]Automobile, error) {
	op := fmt.Sprintf("find automobiles with color prefix %s", prefix)
	return r.queryList(ctx, op, QueryAutomobileFindByColorPrefix, prefix, size, page*size)
}

const QueryAutomobileUpdate = `
UPDATE automobile
SET name = $1, color = $2, is_original_color = $3, updated_at = now()
WHERE id = $4
RETURNING ` + automobileColumns

func (r *Repository) UpdateFields(ctx context.Context, id uuid.UUID, name, color string, originalColor bool) (Automobile, error) {
	row := r.db.QueryRowContext(ctx, QueryAutomobileUpdate, name, color, originalColor, id)
	a, err := scanAutomobile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return a, ErrNotFound
		}
		return a, wrapQueryError(err, fmt.Sprintf("update automobile with id %s", id))
	}
	return a, nil
}

const QueryAutomobileSoftDelete = "UPDATE automobile SET deleted = TRUE, updated_at = now() WHERE id = $1"

// SoftDelete marks a record as deleted. Deleting an unknown id is a no-op.
func (r *Repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, QueryAutomobileSoftDelete, id); err != nil {
		return wrapQueryError(err, fmt.Sprintf("soft delete automobile with id %s", id))
	}
	return nil
}

const QueryAutomobileDeleteAll = "DELETE FROM automobile"

// DeleteAll physically removes every record, bypassing soft-delete.
func (r *Repository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, QueryAutomobileDeleteAll); err != nil {
		return wrapQueryError(err, "delete all automobiles")
	}
	return nil
}

func (r *Repository) queryList(ctx context.Context, op, query string, args ...any) ([]Automobile, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err, op)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var automobiles []Automobile
	for rows.Next() {
		a, err := scanAutomobile(rows)
		if err != nil {
			return nil, fmt.Errorf("automobile repository: scan row: %w", err)
		}
		automobiles = append(automobiles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("automobile repository: iterate over rows: %w", err)
	}

	return automobiles, nil
}
