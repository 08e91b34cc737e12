package engine

import (
	"math"
	"time"

	"example.com/kitchen-planner/backend/internal/models"
)

type RateSource string

const (
	RateSourceHistorical RateSource = "historical"
	RateSourceHeuristic  RateSource = "heuristic"
)

// EstimatorConfig — настроечные константы оценщика потребления.
// Значения по умолчанию подобраны эмпирически и не имеют строгого
// обоснования, поэтому вынесены в конфигурацию.
type EstimatorConfig struct {
	HistoryMinDays        float64
	KgPerPersonPerDay     float64
	GramsPerPersonPerDay  float64
	PiecesPerPersonPerDay float64
}

// DefaultEstimatorConfig возвращает константы оценщика по умолчанию.
func DefaultEstimatorConfig() EstimatorConfig {
	return EstimatorConfig{
		HistoryMinDays:        3,
		KgPerPersonPerDay:     0.05,
		GramsPerPersonPerDay:  50,
		PiecesPerPersonPerDay: 0.5,
	}
}

type Prediction struct {
	ItemName           string                `json:"item_name"`
	Unit               models.Unit           `json:"unit"`
	Frequency          models.UsageFrequency `json:"frequency"`
	Rate               float64               `json:"rate"`
	Source             RateSource            `json:"source"`
	MonthlyRequirement float64               `json:"monthly_requirement"`
	Shortfall          float64               `json:"shortfall"`
	ShortfallValue     float64               `json:"shortfall_value"`
	GroupCovered       bool                  `json:"group_covered,omitempty"`
}

type PredictionSet struct {
	Items               map[string]Prediction `json:"items"`
	TotalDailyValue     float64               `json:"total_daily_value"`
	TotalShortfallValue float64               `json:"total_shortfall_value"`
}

type PredictionInput struct {
	Catalog   []models.CatalogItem
	Inventory []models.InventoryItem
	History   []models.MealHistoryEntry
	Profile   models.FamilyProfile
	// Targets — ручные месячные цели по товарам; перекрывают оба режима оценки.
	Targets map[string]float64
	Now     time.Time
}

// Estimator превращает (каталог, запасы, историю, профиль семьи) в карту
// прогнозов потребления. Чистая функция от входа: повторный запуск на тех же
// данных дает идентичный результат.
type Estimator struct {
	cfg EstimatorConfig
}

// NewEstimator создает оценщик потребления.
func NewEstimator(cfg EstimatorConfig) *Estimator {
	return &Estimator{cfg: cfg}
}

// Predict прогоняет каждый товар каталога через конвейер:
// исключение по диете → фильтр allow-list → оценка темпа потребления →
// масштабирование по частоте → покрытие группой замен → расчет дефицита.
func (e *Estimator) Predict(in PredictionInput) (PredictionSet, error) {
	if len(in.Catalog) == 0 {
		return PredictionSet{}, ErrMissingData
	}
	if in.Profile.FamilySize() <= 0 {
		return PredictionSet{}, ErrInvalidInput
	}

	usage, daysTracked := aggregateUsage(in.History, in.Now)
	historyActive := len(in.History) > 0 && daysTracked >= e.cfg.HistoryMinDays

	catalogGroups := make(map[string]string, len(in.Catalog))
	for _, item := range in.Catalog {
		catalogGroups[item.Name] = item.SubstitutionGroup
	}

	// Пустая группа в запасах значит "не задана": позиция пулится
	// по группе своего товара в каталоге.
	inventoryByName := make(map[string]models.InventoryItem, len(in.Inventory))
	groupStocks := make(map[string]float64)
	for _, item := range in.Inventory {
		inventoryByName[item.Name] = item
		group := item.SubstitutionGroup
		if group == "" {
			group = catalogGroups[item.Name]
		}
		if group != "" {
			groupStocks[group] += item.Quantity
		}
	}

	set := PredictionSet{Items: make(map[string]Prediction)}

	for _, catalogItem := range in.Catalog {
		if excludedByDiet(in.Profile.Diet, catalogItem.Category) {
			continue
		}
		if excludedByAllowList(in.Profile.AllowedItems, catalogItem) {
			continue
		}

		invItem, inStock := inventoryByName[catalogItem.Name]

		currentQty := 0.0
		price := catalogItem.ReferencePrice
		frequency := catalogItem.UsageFrequency
		group := catalogItem.SubstitutionGroup
		if inStock {
			currentQty = invItem.Quantity
			if invItem.Price > 0 {
				price = invItem.Price
			}
			if invItem.UsageFrequency != "" {
				frequency = invItem.UsageFrequency
			}
			if invItem.SubstitutionGroup != "" {
				group = invItem.SubstitutionGroup
			}
		}
		if frequency == "" {
			frequency = models.FrequencyDaily
		}

		rate, source := e.estimateRate(catalogItem, frequency, usage, daysTracked, historyActive, in)

		monthlyNeed := monthlyRequirement(rate, frequency)

		groupCovered := false
		if group != "" && monthlyNeed > 0 && groupStocks[group] >= monthlyNeed {
			groupCovered = true
		}

		shortfall := 0.0
		if monthlyNeed > 0 && !groupCovered {
			shortfall = math.Max(0, monthlyNeed-currentQty)
		}

		if monthlyNeed <= 0 && frequency != models.FrequencyAdhoc {
			continue
		}

		prediction := Prediction{
			ItemName:           catalogItem.Name,
			Unit:               catalogItem.Unit,
			Frequency:          frequency,
			Rate:               round3(rate),
			Source:             source,
			MonthlyRequirement: round2(monthlyNeed),
			Shortfall:          round2(shortfall),
			ShortfallValue:     round2(shortfall * price),
			GroupCovered:       groupCovered,
		}
		set.Items[catalogItem.Name] = prediction

		set.TotalShortfallValue += shortfall * price

		switch frequency {
		case models.FrequencyDaily:
			set.TotalDailyValue += rate * price
		case models.FrequencyWeekly:
			set.TotalDailyValue += rate * price / 7
		case models.FrequencyMonthly:
			set.TotalDailyValue += rate * price / 30
		}
	}

	set.TotalDailyValue = round2(set.TotalDailyValue)
	set.TotalShortfallValue = round2(set.TotalShortfallValue)

	return set, nil
}

func (e *Estimator) estimateRate(item models.CatalogItem, frequency models.UsageFrequency, usage map[string]float64, daysTracked float64, historyActive bool, in PredictionInput) (float64, RateSource) {
	// Ручная месячная цель перекрывает оба режима и для остальной логики
	// считается эквивалентом наблюдаемой истории.
	if target, ok := in.Targets[item.Name]; ok && target > 0 {
		switch frequency {
		case models.FrequencyDaily:
			return target / 30, RateSourceHistorical
		case models.FrequencyWeekly:
			return target / 4, RateSourceHistorical
		default:
			return target, RateSourceHistorical
		}
	}

	// Режим истории включается для товара только при наличии его собственных
	// записей; порог по длине окна общий для всего журнала.
	if historyActive && usage[item.Name] > 0 {
		return usage[item.Name] / daysTracked, RateSourceHistorical
	}

	familySize := float64(in.Profile.FamilySize())
	switch item.Unit {
	case models.UnitKilogram, models.UnitLiter:
		return e.cfg.KgPerPersonPerDay * familySize, RateSourceHeuristic
	case models.UnitGram, models.UnitMilliliter:
		return e.cfg.GramsPerPersonPerDay * familySize, RateSourceHeuristic
	default:
		return e.cfg.PiecesPerPersonPerDay * familySize, RateSourceHeuristic
	}
}

func monthlyRequirement(rate float64, frequency models.UsageFrequency) float64 {
	switch frequency {
	case models.FrequencyDaily:
		return rate * 30
	case models.FrequencyWeekly:
		return rate * 4
	case models.FrequencyMonthly:
		return rate
	default:
		// Разовые покупки не прогнозируются.
		return 0
	}
}

// aggregateUsage сводит журнал готовки в суммарный расход по товарам и длину
// окна наблюдения в днях. Записи о товарах, отсутствующих в каталоге,
// остаются в карте и просто не находят потребителя.
func aggregateUsage(history []models.MealHistoryEntry, now time.Time) (map[string]float64, float64) {
	usage := make(map[string]float64)
	if len(history) == 0 {
		return usage, 0
	}

	earliest := now
	for _, entry := range history {
		if entry.CookedAt.Before(earliest) {
			earliest = entry.CookedAt
		}
		for _, item := range entry.Items {
			usage[item.ItemName] += item.Quantity
		}
	}

	days := now.Sub(earliest).Hours() / 24
	if days < 1 {
		days = 1
	}
	return usage, days
}

func excludedByDiet(diet models.DietType, category string) bool {
	switch diet {
	case models.DietVegetarian:
		return category == "Meats" || category == "Seafood" || category == "Frozen Food"
	case models.DietVegan:
		return category == "Meats" || category == "Seafood" || category == "Frozen Food" || category == "Dairy"
	case models.DietPescatarian:
		return category == "Meats" || category == "Frozen Food"
	}
	return false
}

func excludedByAllowList(allowed []string, item models.CatalogItem) bool {
	if len(allowed) == 0 || item.SubstitutionGroup == "" {
		return false
	}
	for _, name := range allowed {
		if name == item.Name {
			return false
		}
	}
	return true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
