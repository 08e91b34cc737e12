package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/kitchen-planner/backend/internal/models"
)

type TargetRepository struct {
	db *pgxpool.Pool
}

// NewTargetRepository создает репозиторий ручных целей закупок.
func NewTargetRepository(db *pgxpool.Pool) *TargetRepository {
	return &TargetRepository{db: db}
}

// Upsert задает или обновляет месячную цель по товару.
func (r *TargetRepository) Upsert(ctx context.Context, householdID uuid.UUID, itemName string, monthlyTarget float64) (models.ShoppingTarget, error) {
	var target models.ShoppingTarget

	if itemName == "" || monthlyTarget <= 0 {
		return target, ErrInvalid
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO shopping_targets (household_id, item_name, monthly_target)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (household_id, item_name) DO UPDATE
		 SET monthly_target = EXCLUDED.monthly_target, updated_at = NOW()
		 RETURNING household_id, item_name, monthly_target, updated_at`,
		householdID, itemName, monthlyTarget,
	).Scan(&target.HouseholdID, &target.ItemName, &target.MonthlyTarget, &target.UpdatedAt)
	if err != nil {
		return target, err
	}

	return target, nil
}

// Delete снимает цель по товару.
func (r *TargetRepository) Delete(ctx context.Context, householdID uuid.UUID, itemName string) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM shopping_targets
		 WHERE household_id = $1 AND item_name = $2`,
		householdID, itemName,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Map возвращает цели домохозяйства картой товар -> месячная цель.
func (r *TargetRepository) Map(ctx context.Context, householdID uuid.UUID) (map[string]float64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT item_name, monthly_target
		 FROM shopping_targets
		 WHERE household_id = $1`,
		householdID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	targets := make(map[string]float64)
	for rows.Next() {
		var name string
		var value float64
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		targets[name] = value
	}

	return targets, rows.Err()
}
