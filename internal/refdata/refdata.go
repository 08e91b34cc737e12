package refdata

import (
	"math"

	"example.com/kitchen-planner/backend/internal/models"
)

// Пакет refdata хранит статические справочные таблицы (экономика Шри-Ланки,
// каталог товаров) и отдает их движку в виде неизменяемых снимков.

type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type NationalAverages struct {
	HouseholdMonthlyIncome   float64 `json:"household_monthly_income"`
	HouseholdFoodExpenditure float64 `json:"household_food_expenditure"`
	FoodPercentageOfIncome   float64 `json:"food_percentage_of_income"`
	AvgHouseholdSize         float64 `json:"avg_household_size"`
}

type IncomeQuintile struct {
	Quintile       int     `json:"quintile"`
	Name           string  `json:"name"`
	MonthlyIncome  float64 `json:"monthly_income"`
	FoodBudget     Range   `json:"food_budget"`
	FoodPercentage float64 `json:"food_percentage"`
}

type SectorProfile struct {
	MedianIncome             float64 `json:"median_income"`
	FoodBudget               Range   `json:"food_budget"`
	RiceConsumptionPerCapita float64 `json:"rice_consumption_per_capita"`
	PreferredRiceType        string  `json:"preferred_rice_type"`
	FoodPercentageOfIncome   float64 `json:"food_percentage_of_income"`
	HomeGrownVegetables      bool    `json:"home_grown_vegetables"`
}

type District struct {
	Name         string        `json:"name"`
	MedianIncome float64       `json:"median_income"`
	FoodBudget   Range         `json:"food_budget"`
	Sector       models.Sector `json:"sector"`
	Population   int           `json:"population"`
}

type Price struct {
	Price    float64 `json:"price"`
	Unit     string  `json:"unit"`
	Seasonal bool    `json:"seasonal,omitempty"`
}

type FoodPrices struct {
	Rice           map[string]Price `json:"rice"`
	WheatFlour     Price            `json:"wheat_flour"`
	DhalRed        Price            `json:"dhal_red"`
	Vegetables     map[string]Price `json:"vegetables"`
	Proteins       map[string]Price `json:"proteins"`
	Dairy          map[string]Price `json:"dairy"`
	Beverages      map[string]Price `json:"beverages"`
	Spices         map[string]Price `json:"spices"`
	OilsCondiments map[string]Price `json:"oils_condiments"`
	Fruits         map[string]Price `json:"fruits"`
	Utilities      map[string]Price `json:"utilities"`
}

type ConsumptionPatterns struct {
	RicePerCapitaKg       float64 `json:"rice_per_capita_kg"`
	ChickenPerCapitaKg    float64 `json:"chicken_per_capita_kg"`
	EggsPerCapitaCount    float64 `json:"eggs_per_capita_count"`
	DhalPerCapitaKg       float64 `json:"dhal_per_capita_kg"`
	VegetablesPerCapitaKg float64 `json:"vegetables_per_capita_kg"`
	FishPerCapitaKg       float64 `json:"fish_per_capita_kg"`
	MilkLitersPerCapita   float64 `json:"milk_liters_per_capita"`
}

type FamilyTemplate struct {
	People       int     `json:"people"`
	Budget       Range   `json:"budget"`
	RiceKg       float64 `json:"rice_kg"`
	VegetablesKg float64 `json:"vegetables_kg"`
	ProteinsKg   float64 `json:"proteins_kg"`
	EggsCount    float64 `json:"eggs_count"`
}

type DietProfile struct {
	Key              models.DietType `json:"key"`
	Name             string          `json:"name"`
	ProteinSources   []string        `json:"protein_sources"`
	BudgetMultiplier float64         `json:"budget_multiplier"`
	Description      string          `json:"description"`
}

type SeasonalWindow struct {
	Months      []int   `json:"months"`
	PriceChange float64 `json:"price_change"`
}

type SeasonalVariations struct {
	VegetablesPeakHarvest SeasonalWindow `json:"vegetables_peak_harvest"`
	VegetablesOffSeason   SeasonalWindow `json:"vegetables_off_season"`
	MangoSeason           SeasonalWindow `json:"mango_season"`
	AvocadoSeason         SeasonalWindow `json:"avocado_season"`
	FishMonsoonLow        SeasonalWindow `json:"fish_monsoon_low"`
	FishCalmSeason        SeasonalWindow `json:"fish_calm_season"`
}

// Contains сообщает, попадает ли месяц (1..12) в сезонное окно.
func (w SeasonalWindow) Contains(month int) bool {
	for _, m := range w.Months {
		if m == month {
			return true
		}
	}
	return false
}

type SavingStrategy struct {
	Strategy    string `json:"strategy"`
	Description string `json:"description"`
	Savings     string `json:"savings"`
}

type Dataset struct {
	DataVersion         string
	NationalAverages    NationalAverages
	IncomeQuintiles     []IncomeQuintile
	Sectors             map[models.Sector]SectorProfile
	Districts           []District
	FoodPrices          FoodPrices
	ConsumptionPatterns ConsumptionPatterns
	FamilyTemplates     []FamilyTemplate
	Diets               map[models.DietType]DietProfile
	Seasonal            SeasonalVariations
	SavingStrategies    []SavingStrategy
	CoastalDistricts    []string
	NorthEastDistricts  []string
	Catalog             []models.CatalogItem
}

// DistrictByName ищет округ по точному имени.
func (d *Dataset) DistrictByName(name string) (District, bool) {
	for _, district := range d.Districts {
		if district.Name == name {
			return district, true
		}
	}
	return District{}, false
}

// QuintileForIncome возвращает самый высокий квинтиль, порог которого не превышает доход.
func (d *Dataset) QuintileForIncome(monthlyIncome float64) IncomeQuintile {
	for i := len(d.IncomeQuintiles) - 1; i >= 0; i-- {
		if monthlyIncome >= d.IncomeQuintiles[i].MonthlyIncome {
			return d.IncomeQuintiles[i]
		}
	}
	return d.IncomeQuintiles[0]
}

// SectorProfile возвращает профиль сектора, по умолчанию urban.
func (d *Dataset) SectorProfile(sector models.Sector) SectorProfile {
	if profile, ok := d.Sectors[sector]; ok {
		return profile
	}
	return d.Sectors[models.SectorUrban]
}

// TemplateForFamily подбирает шаблон потребления по размеру семьи.
// Для семей больше восьми человек шаблон size_8 масштабируется пропорционально.
func (d *Dataset) TemplateForFamily(familySize int) FamilyTemplate {
	if familySize < 1 {
		familySize = 1
	}

	last := d.FamilyTemplates[len(d.FamilyTemplates)-1]
	if familySize <= last.People {
		for _, tmpl := range d.FamilyTemplates {
			if tmpl.People == familySize {
				return tmpl
			}
		}
		return last
	}

	scale := float64(familySize) / float64(last.People)
	return FamilyTemplate{
		People:       familySize,
		Budget:       Range{Min: last.Budget.Min * scale, Max: last.Budget.Max * scale},
		RiceKg:       math.Round(last.RiceKg * scale),
		VegetablesKg: math.Round(last.VegetablesKg * scale),
		ProteinsKg:   math.Round(last.ProteinsKg * scale),
		EggsCount:    math.Round(last.EggsCount * scale),
	}
}

// DietProfile возвращает профиль диеты по ключу.
func (d *Dataset) DietProfile(diet models.DietType) (DietProfile, bool) {
	profile, ok := d.Diets[diet]
	return profile, ok
}

// CatalogItem ищет товар каталога по каноническому имени.
func (d *Dataset) CatalogItem(name string) (models.CatalogItem, bool) {
	for _, item := range d.Catalog {
		if item.Name == name {
			return item, true
		}
	}
	return models.CatalogItem{}, false
}

// IsCoastal сообщает, относится ли округ к прибрежным.
func (d *Dataset) IsCoastal(district string) bool {
	return containsString(d.CoastalDistricts, district)
}

// IsNorthEast сообщает, относится ли округ к северо-восточным.
func (d *Dataset) IsNorthEast(district string) bool {
	return containsString(d.NorthEastDistricts, district)
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
