package engine

import (
	"fmt"
	"math"

	"example.com/kitchen-planner/backend/internal/refdata"
)

// Веса сезонных категорий в продовольственной корзине и месячная инфляция
// (усреднение 2019-2024, около 25% годовых).
const (
	vegetableBudgetWeight = 0.4
	fishBudgetWeight      = 0.2
	monthlyInflationRate  = 0.019
)

type MonthForecast struct {
	Month            int      `json:"month"`
	MonthName        string   `json:"month_name"`
	PredictedExpense float64  `json:"predicted_expense"`
	Change           float64  `json:"change"`
	ChangePercent    float64  `json:"change_percent"`
	Factors          []string `json:"factors"`
}

type SufficiencyStatus string

const (
	SufficiencyCritical   SufficiencyStatus = "critical"
	SufficiencyNeedsWork  SufficiencyStatus = "needs improvement"
	SufficiencySufficient SufficiencyStatus = "sufficient"
)

type SufficiencyAnalysis struct {
	CurrentSpending   float64           `json:"current_spending"`
	MonthlyIncome     float64           `json:"monthly_income"`
	CurrentPercentage float64           `json:"current_percentage"`
	IdealPercentage   float64           `json:"ideal_percentage"`
	Gap               float64           `json:"gap"`
	Status            SufficiencyStatus `json:"status"`
	Recommendations   []string          `json:"recommendations"`
}

type InflationPoint struct {
	Month           int     `json:"month"`
	Price           float64 `json:"price"`
	Increase        float64 `json:"increase"`
	IncreasePercent float64 `json:"increase_percent"`
}

type InflationForecast struct {
	Item         string           `json:"item"`
	CurrentPrice float64          `json:"current_price"`
	Predictions  []InflationPoint `json:"predictions"`
}

// Forecaster прогнозирует расходы на горизонте трех месяцев и инфляцию цен.
// Текущий месяц передает вызывающая сторона, движок часов не читает.
type Forecaster struct {
	data *refdata.Dataset
}

// NewForecaster создает прогнозатор поверх снимка справочника.
func NewForecaster(data *refdata.Dataset) *Forecaster {
	return &Forecaster{data: data}
}

// MonthlyExpenses прогнозирует расходы на три следующих месяца с поправкой
// на сезонность овощей и рыбы.
func (f *Forecaster) MonthlyExpenses(currentBudget float64, currentMonth int) ([]MonthForecast, error) {
	if f.data == nil {
		return nil, ErrMissingData
	}
	if currentBudget <= 0 {
		return nil, fmt.Errorf("%w: budget must be greater than 0", ErrInvalidInput)
	}
	if currentMonth < 1 || currentMonth > 12 {
		return nil, fmt.Errorf("%w: month must be 1..12", ErrInvalidInput)
	}

	forecasts := make([]MonthForecast, 0, 3)
	for i := 1; i <= 3; i++ {
		futureMonth := (currentMonth+i-1)%12 + 1
		adjustment := f.seasonalAdjustment(futureMonth)
		predicted := math.Round(currentBudget * (1 + adjustment/100))

		forecasts = append(forecasts, MonthForecast{
			Month:            futureMonth,
			MonthName:        monthName(futureMonth),
			PredictedExpense: predicted,
			Change:           predicted - currentBudget,
			ChangePercent:    round1((predicted - currentBudget) / currentBudget * 100),
			Factors:          f.predictionFactors(futureMonth),
		})
	}
	return forecasts, nil
}

func (f *Forecaster) seasonalAdjustment(month int) float64 {
	seasonal := f.data.Seasonal
	adjustment := 0.0

	if seasonal.VegetablesPeakHarvest.Contains(month) {
		adjustment += seasonal.VegetablesPeakHarvest.PriceChange * vegetableBudgetWeight
	} else if seasonal.VegetablesOffSeason.Contains(month) {
		adjustment += seasonal.VegetablesOffSeason.PriceChange * vegetableBudgetWeight
	}

	if seasonal.FishMonsoonLow.Contains(month) {
		adjustment += seasonal.FishMonsoonLow.PriceChange * fishBudgetWeight
	} else if seasonal.FishCalmSeason.Contains(month) {
		adjustment += seasonal.FishCalmSeason.PriceChange * fishBudgetWeight
	}

	return adjustment
}

func (f *Forecaster) predictionFactors(month int) []string {
	seasonal := f.data.Seasonal
	factors := make([]string, 0, 3)

	if seasonal.VegetablesPeakHarvest.Contains(month) {
		factors = append(factors, "Peak vegetable harvest season - expect lower prices")
	} else if seasonal.VegetablesOffSeason.Contains(month) {
		factors = append(factors, "Off-season vegetables - prices may be higher")
	}

	if seasonal.FishMonsoonLow.Contains(month) {
		factors = append(factors, "Monsoon season - reduced fishing, higher fish prices")
	} else if seasonal.FishCalmSeason.Contains(month) {
		factors = append(factors, "Calm seas - abundant fish, lower prices")
	}

	if month == 4 {
		factors = append(factors, "Sinhala/Tamil New Year - increased festival spending")
	}
	if month == 12 {
		factors = append(factors, "Christmas season - higher prices on some items")
	}

	return factors
}

// Sufficiency оценивает расходы против идеальных 35% дохода.
// Разрыв больше 15% дохода считается критическим.
func (f *Forecaster) Sufficiency(monthlyIncome, currentSpending float64) (SufficiencyAnalysis, error) {
	if monthlyIncome <= 0 {
		return SufficiencyAnalysis{}, fmt.Errorf("%w: monthly income must be greater than 0", ErrInvalidInput)
	}
	if currentSpending < 0 {
		return SufficiencyAnalysis{}, fmt.Errorf("%w: spending cannot be negative", ErrInvalidInput)
	}

	const idealPercentage = 35.0
	gap := currentSpending - monthlyIncome*idealPercentage/100

	analysis := SufficiencyAnalysis{
		CurrentSpending:   currentSpending,
		MonthlyIncome:     monthlyIncome,
		CurrentPercentage: round1(currentSpending / monthlyIncome * 100),
		IdealPercentage:   idealPercentage,
		Gap:               math.Round(gap),
	}

	switch {
	case gap > monthlyIncome*0.15:
		analysis.Status = SufficiencyCritical
		analysis.Recommendations = []string{
			fmt.Sprintf("Reduce spending by Rs. %.0f to reach sustainable levels", math.Round(gap)),
			"Switch to budget rice varieties (save Rs. 500-800/month)",
			"Reduce meat/fish frequency, increase eggs/dhal (save Rs. 2,000-4,000/month)",
			"Shop at farmers markets (save 20-30%)",
			"Start home garden for vegetables (save Rs. 3,000-5,000/month)",
		}
	case gap > 0:
		analysis.Status = SufficiencyNeedsWork
		analysis.Recommendations = []string{
			fmt.Sprintf("Target Rs. %.0f reduction to optimize budget", math.Round(gap)),
			"Implement bulk purchasing for staples (save 15-20%)",
			"Focus on seasonal vegetables (save 40% on produce)",
			"Compare protein prices and substitute premium items",
		}
	default:
		analysis.Status = SufficiencySufficient
		analysis.Recommendations = []string{
			"Budget is well-managed",
			"Consider building emergency food fund",
			"Opportunity to improve diet quality if desired",
		}
	}

	return analysis, nil
}

// InflationSeries строит помесячный ряд цен при сложной инфляции 1.9%.
func InflationSeries(currentPrice float64, months int) []InflationPoint {
	points := make([]InflationPoint, 0, months)
	for i := 1; i <= months; i++ {
		inflated := math.Round(currentPrice * math.Pow(1+monthlyInflationRate, float64(i)))
		points = append(points, InflationPoint{
			Month:           i,
			Price:           inflated,
			Increase:        inflated - currentPrice,
			IncreasePercent: round1((inflated - currentPrice) / currentPrice * 100),
		})
	}
	return points
}

// PriceInflation прогнозирует инфляцию цены товара по упрощенному справочнику.
func (f *Forecaster) PriceInflation(itemName string, months int) (InflationForecast, error) {
	if f.data == nil {
		return InflationForecast{}, ErrMissingData
	}
	if months < 1 {
		return InflationForecast{}, fmt.Errorf("%w: months must be at least 1", ErrInvalidInput)
	}

	current, ok := f.currentPrice(itemName)
	if !ok {
		return InflationForecast{}, fmt.Errorf("%w: unknown item %q", ErrInvalidInput, itemName)
	}

	return InflationForecast{
		Item:         itemName,
		CurrentPrice: current,
		Predictions:  InflationSeries(current, months),
	}, nil
}

// currentPrice сначала пробует короткие ключи ценового справочника,
// затем каноническое имя товара каталога.
func (f *Forecaster) currentPrice(itemName string) (float64, bool) {
	prices := f.data.FoodPrices
	switch itemName {
	case "rice_samba":
		return prices.Rice["samba"].Price, true
	case "rice_nadu":
		return prices.Rice["nadu"].Price, true
	case "chicken":
		return prices.Proteins["chicken_whole"].Price, true
	case "fish":
		return prices.Proteins["fish_linna"].Price, true
	case "eggs":
		return prices.Proteins["eggs"].Price, true
	case "vegetables":
		return 450, true
	case "oil":
		return prices.OilsCondiments["vegetable_oil"].Price, true
	}

	if item, ok := f.data.CatalogItem(itemName); ok {
		return item.ReferencePrice, true
	}
	return 0, false
}

func monthName(month int) string {
	names := [...]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	return names[month-1]
}
