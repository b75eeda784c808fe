package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hmondejar/notekit/internal/platform/db"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrQueryFailed = errors.New("note repository: query failed")

const pgUniqueViolation = "23505"

type Repository struct {
	db *sql.DB
}

var _ NoteRepository = (*Repository)(nil)

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) exec(ctx context.Context) db.Executor {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

const queryNoteCreate = `
INSERT INTO notes (id, name, content, user_id)
VALUES ($1, $2, $3, $4)
RETURNING id, name, content, user_id, created_at, updated_at
`

func (r *Repository) CreateNote(ctx context.Context, n Note) (Note, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryNoteCreate, n.ID, n.Name, n.Content, n.UserID)
	var created Note
	if err := scanNote(row, &created); err != nil {
		if isUniqueViolation(err) {
			return created, ErrDuplicateName
		}
		return created, fmt.Errorf("%w: create note %q: %v", ErrQueryFailed, n.Name, err)
	}
	return created, nil
}

const queryNoteFind = `
SELECT id, name, content, user_id, created_at, updated_at
FROM notes
WHERE id = $1
LIMIT 1
`

func (r *Repository) FindNote(ctx context.Context, noteID string) (*Note, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryNoteFind, noteID)
	var n Note
	if err := scanNote(row, &n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find note with id %s: %v", ErrQueryFailed, noteID, err)
	}
	return &n, nil
}

const queryNoteUpdate = `
UPDATE notes SET name = $1, content = $2, updated_at = NOW()
WHERE id = $3
RETURNING id, name, content, user_id, created_at, updated_at
`

func (r *Repository) UpdateNote(ctx context.Context, noteID, name, content string) (*Note, error) {
	row := r.exec(ctx).QueryRowContext(ctx, queryNoteUpdate, name, content, noteID)
	var n Note
	if err := scanNote(row, &n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: update note with id %s: %v", ErrQueryFailed, noteID, err)
	}
	return &n, nil
}

func (r *Repository) DeleteNote(ctx context.Context, noteID string) error {
	const query = "DELETE FROM notes WHERE id = $1"

	res, err := r.exec(ctx).ExecContext(ctx, query, noteID)
	if err != nil {
		return fmt.Errorf("%w: delete note with id %s: %v", ErrQueryFailed, noteID, err)
	}

	numRows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if numRows == 0 {
		return ErrNotFound
	}

	return nil
}

// ListNotes returns notes matching the filter, newest first. No owner scoping
// is applied here.
func (r *Repository) ListNotes(ctx context.Context, filter Filter) ([]Note, error) {
	var sb strings.Builder
	sb.WriteString("SELECT id, name, content, user_id, created_at, updated_at FROM notes")

	var conds []string
	var args []any
	if filter.Name != nil {
		args = append(args, *filter.Name)
		conds = append(conds, "name = $"+strconv.Itoa(len(args)))
	}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conds = append(conds, "user_id = $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC")

	rows, err := r.exec(ctx).QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list notes: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	notes := []Note{}
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Name, &n.Content, &n.UserID, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("note repository: scan row: %w", err)
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("note repository: iterate over note rows: %w", err)
	}

	return notes, nil
}

func scanNote(row *sql.Row, n *Note) error {
	return row.Scan(&n.ID, &n.Name, &n.Content, &n.UserID, &n.CreatedAt, &n.UpdatedAt)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
