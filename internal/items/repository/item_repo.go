package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/leoslab/platform-api/internal/items/domain"
)

// ItemRepository provides persistence operations for items.
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new item repository.
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// List returns all items ordered by id.
func (r *ItemRepository) List(ctx context.Context) ([]domain.Item, error) {
	const q = `
SELECT id, name, description, created_at, updated_at
FROM items
ORDER BY id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Item, 0, 16)
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Get returns the item with the given id.
func (r *ItemRepository) Get(ctx context.Context, id int64) (*domain.Item, error) {
	const q = `
SELECT id, name, description, created_at, updated_at
FROM items
WHERE id = $1;
`
	var it domain.Item
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&it.ID, &it.Name, &it.Description, &it.CreatedAt, &it.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return &it, nil
}

// Create inserts a new item. The store assigns the id; both timestamps
// are set to the same instant.
func (r *ItemRepository) Create(ctx context.Context, name string, description *string) (*domain.Item, error) {
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	now := time.Now().UTC()

	const q = `
INSERT INTO items (name, description, created_at, updated_at)
VALUES ($1, $2, $3, $4)
RETURNING id, name, description, created_at, updated_at;
`
	var it domain.Item
	err := r.db.QueryRowContext(ctx, q, name, description, now, now).
		Scan(&it.ID, &it.Name, &it.Description, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}
	return &it, nil
}

// Update overwrites name and description and refreshes updated_at.
func (r *ItemRepository) Update(ctx context.Context, id int64, name string, description *string) (*domain.Item, error) {
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	const q = `
UPDATE items
SET name = $1, description = $2, updated_at = $3
WHERE id = $4
RETURNING id, name, description, created_at, updated_at;
`
	var it domain.Item
	err := r.db.QueryRowContext(ctx, q, name, description, time.Now().UTC(), id).
		Scan(&it.ID, &it.Name, &it.Description, &it.CreatedAt, &it.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}
	return &it, nil
}

// Delete removes the item with the given id.
func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM items WHERE id = $1;`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// Count returns the number of stored items.
func (r *ItemRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting items: %w", err)
	}
	return n, nil
}
