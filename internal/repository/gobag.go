package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/shenikar/disaster_preparedness/internal/service"
)

type GoBagRepository struct {
	db *pgxpool.Pool
}

func NewGoBagRepository(db *pgxpool.Pool) service.GoBagRepository {
	return &GoBagRepository{db: db}
}

func (r *GoBagRepository) List(ctx context.Context) ([]*models.GoBagItem, error) {
	rows, err := r.db.Query(ctx, `SELECT id, category, name, checked FROM go_bag_items ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list go-bag items: %w", err)
	}
	defer rows.Close()

	items := make([]*models.GoBagItem, 0)
	for rows.Next() {
		item, err := scanGoBagItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan go-bag item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return items, nil
}

// UpdateChecked меняет только флаг checked и возвращает обновленную строку
func (r *GoBagRepository) UpdateChecked(ctx context.Context, id int64, checked bool) (*models.GoBagItem, error) {
	query := `
		UPDATE go_bag_items SET checked = $1
		WHERE id = $2
		RETURNING id, category, name, checked;
	`
	item, err := scanGoBagItem(r.db.QueryRow(ctx, query, checked, id))
	if err != nil {
		return nil, fmt.Errorf("failed to update go-bag item %d: %w", id, translateError(err))
	}
	return item, nil
}

func scanGoBagItem(row pgx.Row) (*models.GoBagItem, error) {
	item := &models.GoBagItem{}
	err := row.Scan(&item.ID, &item.Category, &item.Name, &item.Checked)
	return item, err
}
