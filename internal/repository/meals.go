package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/kitchen-planner/backend/internal/models"
)

type MealRepository struct {
	db *pgxpool.Pool
}

// NewMealRepository создает репозиторий журнала готовки.
func NewMealRepository(db *pgxpool.Pool) *MealRepository {
	return &MealRepository{db: db}
}

// Log записывает приготовленное блюдо и в той же транзакции списывает
// ингредиенты с остатков. Журнал только дописывается, записи не правятся.
// Остатки не уходят ниже нуля, отсутствующие на складе ингредиенты
// не блокируют запись.
func (r *MealRepository) Log(ctx context.Context, entry models.MealHistoryEntry) (models.MealHistoryEntry, error) {
	if entry.MealName == "" || len(entry.Items) == 0 {
		return entry, ErrInvalid
	}

	itemsPayload, err := json.Marshal(entry.Items)
	if err != nil {
		return entry, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entry, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	err = tx.QueryRow(ctx,
		`INSERT INTO meal_history (id, household_id, meal_name, meal_type, cooked_at, items)
		 VALUES ($1, $2, $3, $4, $5, $6::jsonb)
		 RETURNING id, created_at`,
		uuid.New(), entry.HouseholdID, entry.MealName, entry.MealType, entry.CookedAt, string(itemsPayload),
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return entry, err
	}

	for _, item := range entry.Items {
		_, err = tx.Exec(ctx,
			`UPDATE inventory_items
			 SET quantity = GREATEST(0, quantity - $3), updated_at = NOW()
			 WHERE household_id = $1 AND name = $2`,
			entry.HouseholdID, item.ItemName, item.Quantity,
		)
		if err != nil {
			return entry, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return entry, err
	}

	return entry, nil
}

// ListByHousehold возвращает записи журнала не старше since, новые первыми.
func (r *MealRepository) ListByHousehold(ctx context.Context, householdID uuid.UUID, since time.Time) ([]models.MealHistoryEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, household_id, meal_name, meal_type, cooked_at, items, created_at
		 FROM meal_history
		 WHERE household_id = $1 AND cooked_at >= $2
		 ORDER BY cooked_at DESC`,
		householdID, since,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.MealHistoryEntry, 0)
	for rows.Next() {
		var entry models.MealHistoryEntry
		var itemsPayload []byte

		err := rows.Scan(&entry.ID, &entry.HouseholdID, &entry.MealName, &entry.MealType,
			&entry.CookedAt, &itemsPayload, &entry.CreatedAt)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(itemsPayload, &entry.Items); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
