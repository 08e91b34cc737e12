package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/kitchen-planner/backend/internal/models"
)

type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository создает репозиторий кухонных запасов.
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

const inventoryColumns = `id, household_id, name, category, unit, quantity, price,
	min_threshold, usage_frequency, substitution_group, expiry_date, created_at, updated_at`

func scanInventoryItem(row pgx.Row) (models.InventoryItem, error) {
	var item models.InventoryItem
	err := row.Scan(
		&item.ID, &item.HouseholdID, &item.Name, &item.Category, &item.Unit,
		&item.Quantity, &item.Price, &item.MinThreshold, &item.UsageFrequency,
		&item.SubstitutionGroup, &item.ExpiryDate, &item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

// ListByHousehold возвращает запасы домохозяйства по алфавиту.
func (r *InventoryRepository) ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]models.InventoryItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+inventoryColumns+`
		 FROM inventory_items
		 WHERE household_id = $1
		 ORDER BY name`,
		householdID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.InventoryItem, 0)
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// GetByID возвращает позицию запасов с проверкой владельца.
func (r *InventoryRepository) GetByID(ctx context.Context, householdID, itemID uuid.UUID) (models.InventoryItem, error) {
	item, err := scanInventoryItem(r.db.QueryRow(ctx,
		`SELECT `+inventoryColumns+`
		 FROM inventory_items
		 WHERE id = $1 AND household_id = $2`,
		itemID, householdID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return item, ErrNotFound
		}
		return item, err
	}
	return item, nil
}

// Create добавляет позицию запасов. Имя уникально в рамках домохозяйства.
func (r *InventoryRepository) Create(ctx context.Context, item models.InventoryItem) (models.InventoryItem, error) {
	created, err := scanInventoryItem(r.db.QueryRow(ctx,
		`INSERT INTO inventory_items
		 (id, household_id, name, category, unit, quantity, price, min_threshold, usage_frequency, substitution_group, expiry_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+inventoryColumns,
		uuid.New(), item.HouseholdID, item.Name, item.Category, item.Unit,
		item.Quantity, item.Price, item.MinThreshold, item.UsageFrequency,
		item.SubstitutionGroup, item.ExpiryDate,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return created, ErrConflict
		}
		return created, err
	}
	return created, nil
}

// Update изменяет позицию запасов с проверкой владельца.
func (r *InventoryRepository) Update(ctx context.Context, householdID uuid.UUID, item models.InventoryItem) (models.InventoryItem, error) {
	updated, err := scanInventoryItem(r.db.QueryRow(ctx,
		`UPDATE inventory_items
		 SET name = $3, category = $4, unit = $5, quantity = $6, price = $7,
		     min_threshold = $8, usage_frequency = $9, substitution_group = $10,
		     expiry_date = $11, updated_at = NOW()
		 WHERE id = $1 AND household_id = $2
		 RETURNING `+inventoryColumns,
		item.ID, householdID, item.Name, item.Category, item.Unit,
		item.Quantity, item.Price, item.MinThreshold, item.UsageFrequency,
		item.SubstitutionGroup, item.ExpiryDate,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return updated, ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return updated, ErrConflict
		}
		return updated, err
	}
	return updated, nil
}

// Delete удаляет позицию запасов с проверкой владельца.
func (r *InventoryRepository) Delete(ctx context.Context, householdID, itemID uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM inventory_items
		 WHERE id = $1 AND household_id = $2`,
		itemID, householdID,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// AdjustQuantity меняет остаток на дельту, не опускаясь ниже нуля.
func (r *InventoryRepository) AdjustQuantity(ctx context.Context, householdID uuid.UUID, name string, delta float64) (models.InventoryItem, error) {
	item, err := scanInventoryItem(r.db.QueryRow(ctx,
		`UPDATE inventory_items
		 SET quantity = GREATEST(0, quantity + $3), updated_at = NOW()
		 WHERE household_id = $1 AND name = $2
		 RETURNING `+inventoryColumns,
		householdID, name, delta,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return item, ErrNotFound
		}
		return item, err
	}
	return item, nil
}

// ListBelowThreshold возвращает позиции с остатком не выше минимального порога.
func (r *InventoryRepository) ListBelowThreshold(ctx context.Context, householdID uuid.UUID) ([]models.InventoryItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+inventoryColumns+`
		 FROM inventory_items
		 WHERE household_id = $1 AND min_threshold > 0 AND quantity <= min_threshold
		 ORDER BY name`,
		householdID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.InventoryItem, 0)
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
