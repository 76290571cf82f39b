package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/oghenefuyereo/spendwise-api/internal/model"
)

var _ model.CategoryStore = (*CategoryRepository)(nil)

type CategoryRepository struct {
	db *Connection
}

func NewCategoryRepository(db *Connection) *CategoryRepository {
	return &CategoryRepository{
		db: db,
	}
}

func scanCategory(row pgx.Row) (model.Category, error) {
	var category model.Category
	err := row.Scan(&category.ID, &category.AccountID, &category.Name, &category.Type)
	if err != nil {
		return model.Category{}, err
	}
	return category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category model.Category) (model.Category, error) {
	query := `INSERT INTO categories (id, account_id, name, type)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, account_id, name, type`

	saved, err := scanCategory(r.db.QueryRow(ctx, query,
		category.ID, category.AccountID, category.Name, category.Type,
	))
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	return saved, nil
}

// GetByID returns a category when it is visible to the account: either owned
// by it or global.
func (r *CategoryRepository) GetByID(ctx context.Context, accountID, id uuid.UUID) (model.Category, error) {
	query := `SELECT id, account_id, name, type FROM categories
			  WHERE id = $1 AND (account_id = $2 OR account_id IS NULL)`

	category, err := scanCategory(r.db.QueryRow(ctx, query, id, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, model.ErrNotFound
		}
		return model.Category{}, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (r *CategoryRepository) GetVisible(ctx context.Context, accountID uuid.UUID) ([]model.Category, error) {
	query := `SELECT id, account_id, name, type FROM categories
			  WHERE account_id = $1 OR account_id IS NULL
			  ORDER BY name`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category model.Category) (model.Category, error) {
	// account_id in the WHERE clause keeps global rows out of reach
	query := `UPDATE categories SET name = $3, type = $4
			  WHERE id = $1 AND account_id = $2
			  RETURNING id, account_id, name, type`

	if category.AccountID == nil {
		return model.Category{}, model.ErrNotFound
	}

	saved, err := scanCategory(r.db.QueryRow(ctx, query,
		category.ID, *category.AccountID, category.Name, category.Type,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, model.ErrNotFound
		}
		return model.Category{}, fmt.Errorf("failed to update category: %w", err)
	}
	return saved, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1 AND account_id = $2`, id, accountID)
	if err != nil {
		if foreignKeyViolation(err) {
			return model.NewValidationError("category", "is referenced by transactions")
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
