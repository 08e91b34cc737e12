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

type HouseholdRepository struct {
	db *pgxpool.Pool
}

// NewHouseholdRepository создает репозиторий домохозяйств.
func NewHouseholdRepository(db *pgxpool.Pool) *HouseholdRepository {
	return &HouseholdRepository{db: db}
}

// Create создает домохозяйство в базе.
func (r *HouseholdRepository) Create(ctx context.Context, email, passwordHash string, name *string) (models.Household, error) {
	var household models.Household
	var nameValue *string

	err := r.db.QueryRow(ctx,
		`INSERT INTO households (email, password_hash, name)
		 VALUES ($1, $2, $3)
		 RETURNING id, email, password_hash, name, created_at, updated_at`,
		email, passwordHash, name,
	).Scan(&household.ID, &household.Email, &household.PasswordHash, &nameValue, &household.CreatedAt, &household.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return household, ErrConflict
		}
		return household, err
	}

	household.Name = nameValue
	return household, nil
}

// GetByEmail возвращает домохозяйство по email.
func (r *HouseholdRepository) GetByEmail(ctx context.Context, email string) (models.Household, error) {
	var household models.Household
	var nameValue *string

	err := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, name, created_at, updated_at
		 FROM households
		 WHERE email = $1`,
		email,
	).Scan(&household.ID, &household.Email, &household.PasswordHash, &nameValue, &household.CreatedAt, &household.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return household, ErrNotFound
		}
		return household, err
	}

	household.Name = nameValue
	return household, nil
}

// GetByID возвращает домохозяйство по идентификатору.
func (r *HouseholdRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Household, error) {
	var household models.Household
	var nameValue *string

	err := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, name, created_at, updated_at
		 FROM households
		 WHERE id = $1`,
		id,
	).Scan(&household.ID, &household.Email, &household.PasswordHash, &nameValue, &household.CreatedAt, &household.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return household, ErrNotFound
		}
		return household, err
	}

	household.Name = nameValue
	return household, nil
}
