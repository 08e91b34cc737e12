package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/kitchen-planner/backend/internal/models"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository создает репозиторий семейных профилей.
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Upsert создает или обновляет профиль семьи домохозяйства.
func (r *ProfileRepository) Upsert(ctx context.Context, profile models.FamilyProfile) (models.FamilyProfile, error) {
	allowedPayload, err := json.Marshal(profile.AllowedItems)
	if err != nil {
		return profile, err
	}

	var allowedValue []byte
	err = r.db.QueryRow(ctx,
		`INSERT INTO family_profiles
		 (household_id, adults, children, district, monthly_income, target_monthly_budget, diet, allowed_items)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb)
		 ON CONFLICT (household_id) DO UPDATE
		 SET adults = EXCLUDED.adults,
		     children = EXCLUDED.children,
		     district = EXCLUDED.district,
		     monthly_income = EXCLUDED.monthly_income,
		     target_monthly_budget = EXCLUDED.target_monthly_budget,
		     diet = EXCLUDED.diet,
		     allowed_items = EXCLUDED.allowed_items,
		     updated_at = NOW()
		 RETURNING household_id, adults, children, district, monthly_income, target_monthly_budget, diet, allowed_items, created_at, updated_at`,
		profile.HouseholdID, profile.Adults, profile.Children, profile.District,
		profile.MonthlyIncome, profile.TargetMonthlyBudget, profile.Diet, string(allowedPayload),
	).Scan(&profile.HouseholdID, &profile.Adults, &profile.Children, &profile.District,
		&profile.MonthlyIncome, &profile.TargetMonthlyBudget, &profile.Diet,
		&allowedValue, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return profile, err
	}

	if err := json.Unmarshal(allowedValue, &profile.AllowedItems); err != nil {
		return profile, err
	}

	return profile, nil
}

// Get возвращает профиль семьи домохозяйства.
func (r *ProfileRepository) Get(ctx context.Context, householdID uuid.UUID) (models.FamilyProfile, error) {
	var profile models.FamilyProfile
	var allowedValue []byte

	err := r.db.QueryRow(ctx,
		`SELECT household_id, adults, children, district, monthly_income, target_monthly_budget, diet, allowed_items, created_at, updated_at
		 FROM family_profiles
		 WHERE household_id = $1`,
		householdID,
	).Scan(&profile.HouseholdID, &profile.Adults, &profile.Children, &profile.District,
		&profile.MonthlyIncome, &profile.TargetMonthlyBudget, &profile.Diet,
		&allowedValue, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile, ErrNotFound
		}
		return profile, err
	}

	if err := json.Unmarshal(allowedValue, &profile.AllowedItems); err != nil {
		return profile, err
	}

	return profile, nil
}
