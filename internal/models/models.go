package models

import (
	"time"

	"github.com/google/uuid"
)

type Unit string

type UsageFrequency string

type DietType string

type Sector string

const (
	UnitKilogram   Unit = "kg"
	UnitGram       Unit = "g"
	UnitPieces     Unit = "pcs"
	UnitLiter      Unit = "l"
	UnitMilliliter Unit = "ml"
	UnitPack       Unit = "pack"
	UnitCan        Unit = "can"
	UnitBundle     Unit = "bundle"

	FrequencyDaily   UsageFrequency = "daily"
	FrequencyWeekly  UsageFrequency = "weekly"
	FrequencyMonthly UsageFrequency = "monthly"
	FrequencyAdhoc   UsageFrequency = "adhoc"

	DietMixed         DietType = "mixed"
	DietVegetarian    DietType = "vegetarian"
	DietVegan         DietType = "vegan"
	DietPescatarian   DietType = "pescatarian"
	DietHalal         DietType = "halal"
	DietBuddhistHindu DietType = "buddhist_hindu"

	SectorUrban  Sector = "urban"
	SectorRural  Sector = "rural"
	SectorEstate Sector = "estate"
	SectorMixed  Sector = "mixed"
)

// ValidDiet сообщает, поддерживается ли ключ диеты движком.
func ValidDiet(d DietType) bool {
	switch d {
	case DietMixed, DietVegetarian, DietVegan, DietPescatarian, DietHalal, DietBuddhistHindu:
		return true
	}
	return false
}

// ValidFrequency сообщает, допустим ли тег частоты потребления.
func ValidFrequency(f UsageFrequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyAdhoc:
		return true
	}
	return false
}

type CatalogItem struct {
	Name              string         `json:"name"`
	SinhalaName       string         `json:"sinhala_name,omitempty"`
	Category          string         `json:"category"`
	Unit              Unit           `json:"unit"`
	ReferencePrice    float64        `json:"reference_price"`
	UsageFrequency    UsageFrequency `json:"usage_frequency"`
	SubstitutionGroup string         `json:"substitution_group,omitempty"`
	CaloriesPerUnit   float64        `json:"calories_per_unit,omitempty"`
}

type InventoryItem struct {
	ID                uuid.UUID      `json:"id"`
	HouseholdID       uuid.UUID      `json:"household_id"`
	Name              string         `json:"name"`
	Category          string         `json:"category"`
	Unit              Unit           `json:"unit"`
	Quantity          float64        `json:"quantity"`
	Price             float64        `json:"price"`
	MinThreshold      float64        `json:"min_threshold"`
	UsageFrequency    UsageFrequency `json:"usage_frequency"`
	SubstitutionGroup string         `json:"substitution_group,omitempty"`
	ExpiryDate        *time.Time     `json:"expiry_date,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type MealItem struct {
	ItemName string  `json:"item_name"`
	Quantity float64 `json:"quantity"`
	Unit     Unit    `json:"unit"`
}

type MealHistoryEntry struct {
	ID          uuid.UUID  `json:"id"`
	HouseholdID uuid.UUID  `json:"household_id"`
	MealName    string     `json:"meal_name"`
	MealType    string     `json:"meal_type"`
	CookedAt    time.Time  `json:"cooked_at"`
	Items       []MealItem `json:"items"`
	CreatedAt   time.Time  `json:"created_at"`
}

type FamilyProfile struct {
	HouseholdID         uuid.UUID `json:"household_id"`
	Adults              int       `json:"adults"`
	Children            int       `json:"children"`
	District            string    `json:"district"`
	MonthlyIncome       float64   `json:"monthly_income"`
	TargetMonthlyBudget float64   `json:"target_monthly_budget"`
	Diet                DietType  `json:"diet"`
	AllowedItems        []string  `json:"allowed_items,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// FamilySize возвращает общее число членов семьи.
func (p FamilyProfile) FamilySize() int {
	return p.Adults + p.Children
}

type ShoppingTarget struct {
	HouseholdID   uuid.UUID `json:"household_id"`
	ItemName      string    `json:"item_name"`
	MonthlyTarget float64   `json:"monthly_target"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Household struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         *string   `json:"name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RefreshToken struct {
	ID          uuid.UUID  `json:"id"`
	HouseholdID uuid.UUID  `json:"household_id"`
	TokenHash   string     `json:"-"`
	ExpiresAt   time.Time  `json:"expires_at"`
	CreatedAt   time.Time  `json:"created_at"`
	RevokedAt   *time.Time `json:"revoked_at,omitempty"`
	ReplacedBy  *uuid.UUID `json:"replaced_by,omitempty"`
}
