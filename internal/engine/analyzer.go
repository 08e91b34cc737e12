package engine

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"example.com/kitchen-planner/backend/internal/refdata"
)

type DistrictCost struct {
	Name             string  `json:"name"`
	MedianIncome     float64 `json:"median_income"`
	FoodBudgetMin    float64 `json:"food_budget_min"`
	FoodBudgetMax    float64 `json:"food_budget_max"`
	BudgetPercentage float64 `json:"budget_percentage"`
}

type Alternative struct {
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Type    string  `json:"type"`
	Savings float64 `json:"savings,omitempty"`
}

type SeasonalOutlook struct {
	Change         float64 `json:"change"`
	Recommendation string  `json:"recommendation"`
}

type SeasonalSavings struct {
	Month      int             `json:"month"`
	Vegetables SeasonalOutlook `json:"vegetables"`
	Fish       SeasonalOutlook `json:"fish"`
}

type RankedStrategy struct {
	refdata.SavingStrategy
	Priority int `json:"priority"`
}

type Outliers struct {
	Low  []float64 `json:"low"`
	High []float64 `json:"high"`
}

// Analyzer сравнивает цены между округами, сезонами и товарами-заменителями.
type Analyzer struct {
	data *refdata.Dataset
}

// NewAnalyzer создает анализатор цен поверх снимка справочника.
func NewAnalyzer(data *refdata.Dataset) *Analyzer {
	return &Analyzer{data: data}
}

// CompareDistricts сравнивает продовольственные расходы перечисленных округов.
// Неизвестные имена молча пропускаются, результат отсортирован по доходу.
func (a *Analyzer) CompareDistricts(names []string) ([]DistrictCost, error) {
	if a.data == nil {
		return nil, ErrMissingData
	}

	comparison := make([]DistrictCost, 0, len(names))
	for _, name := range names {
		district, ok := a.data.DistrictByName(name)
		if !ok {
			continue
		}
		mid := (district.FoodBudget.Min + district.FoodBudget.Max) / 2
		comparison = append(comparison, DistrictCost{
			Name:             district.Name,
			MedianIncome:     district.MedianIncome,
			FoodBudgetMin:    district.FoodBudget.Min,
			FoodBudgetMax:    district.FoodBudget.Max,
			BudgetPercentage: round1(mid / district.MedianIncome * 100),
		})
	}

	sort.Slice(comparison, func(i, j int) bool {
		return comparison[i].MedianIncome > comparison[j].MedianIncome
	})
	return comparison, nil
}

// CheapestAlternatives возвращает заменители по возрастанию цены.
// Для риса экономия считается относительно samba, для белков цены
// приведены к килограммовому эквиваленту.
func (a *Analyzer) CheapestAlternatives(category string) ([]Alternative, error) {
	if a.data == nil {
		return nil, ErrMissingData
	}

	switch category {
	case "rice":
		base := a.data.FoodPrices.Rice["samba"].Price
		alternatives := make([]Alternative, 0, len(a.data.FoodPrices.Rice))
		for riceType, price := range a.data.FoodPrices.Rice {
			alternatives = append(alternatives, Alternative{
				Name:    riceType,
				Price:   price.Price,
				Type:    "rice",
				Savings: round1((base - price.Price) / base * 100),
			})
		}
		sort.Slice(alternatives, func(i, j int) bool {
			return alternatives[i].Price < alternatives[j].Price
		})
		return alternatives, nil

	case "protein":
		proteins := a.data.FoodPrices.Proteins
		alternatives := []Alternative{
			{Name: "Eggs (per kg equivalent)", Price: proteins["eggs"].Price * 20, Type: "eggs"},
			{Name: "Dhal", Price: a.data.FoodPrices.DhalRed.Price, Type: "legume"},
			{Name: "Soya Meat (per kg equivalent)", Price: proteins["soya_meat"].Price * 11, Type: "plant"},
			{Name: "Dried Fish (Salaya)", Price: proteins["dried_fish_salaya"].Price, Type: "fish"},
			{Name: "Fish (Linna)", Price: proteins["fish_linna"].Price, Type: "fish"},
			{Name: "Chicken", Price: proteins["chicken_whole"].Price, Type: "poultry"},
			{Name: "Beef", Price: proteins["beef_round"].Price, Type: "meat"},
			{Name: "Fish (Kelawalla)", Price: proteins["fish_kelawalla"].Price, Type: "fish"},
			{Name: "Mutton", Price: proteins["mutton"].Price, Type: "meat"},
		}
		sort.Slice(alternatives, func(i, j int) bool {
			return alternatives[i].Price < alternatives[j].Price
		})
		return alternatives, nil
	}

	return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
}

// SeasonalSavings возвращает подписанное сезонное изменение цен на овощи и
// рыбу для месяца: отрицательное значение — сезон дешевых закупок.
func (a *Analyzer) SeasonalSavings(month int) (SeasonalSavings, error) {
	if a.data == nil {
		return SeasonalSavings{}, ErrMissingData
	}
	if month < 1 || month > 12 {
		return SeasonalSavings{}, fmt.Errorf("%w: month must be 1..12", ErrInvalidInput)
	}

	seasonal := a.data.Seasonal

	vegChange := 0.0
	if seasonal.VegetablesPeakHarvest.Contains(month) {
		vegChange = seasonal.VegetablesPeakHarvest.PriceChange
	} else if seasonal.VegetablesOffSeason.Contains(month) {
		vegChange = seasonal.VegetablesOffSeason.PriceChange
	}

	fishChange := 0.0
	if seasonal.FishMonsoonLow.Contains(month) {
		fishChange = seasonal.FishMonsoonLow.PriceChange
	} else if seasonal.FishCalmSeason.Contains(month) {
		fishChange = seasonal.FishCalmSeason.PriceChange
	}

	vegRecommendation := "Consider alternatives or preserved items"
	if vegChange < 0 {
		vegRecommendation = "Great time to buy and preserve vegetables"
	}
	fishRecommendation := "Consider dried fish or alternative proteins"
	if fishChange < 0 {
		fishRecommendation = "Excellent season for fresh fish"
	}

	return SeasonalSavings{
		Month:      month,
		Vegetables: SeasonalOutlook{Change: vegChange, Recommendation: vegRecommendation},
		Fish:       SeasonalOutlook{Change: fishChange, Recommendation: fishRecommendation},
	}, nil
}

// Strategies возвращает стратегии экономии, отсортированные по приоритету.
func (a *Analyzer) Strategies() ([]RankedStrategy, error) {
	if a.data == nil {
		return nil, ErrMissingData
	}

	ranked := make([]RankedStrategy, 0, len(a.data.SavingStrategies))
	for _, strategy := range a.data.SavingStrategies {
		ranked = append(ranked, RankedStrategy{
			SavingStrategy: strategy,
			Priority:       strategyPriority(strategy),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Priority > ranked[j].Priority
	})
	return ranked, nil
}

func strategyPriority(strategy refdata.SavingStrategy) int {
	priority := leadingInt(strategy.Savings)

	// Широко применимые тактики получают надбавку.
	switch strategy.Strategy {
	case "Seasonal Eating":
		priority += 10
	case "Farmers Markets":
		priority += 8
	}
	return priority
}

// leadingInt извлекает ведущее число из строк вида "10-25%".
func leadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// DetectOutliers помечает цены за пределами 1.5×IQR. Квартильные индексы
// грубые (floor(n/4) и ceil(3n/4)-1), без интерполяции: для рыночных цен
// хватает такой точности, а выборки меньше четырех значений не оцениваются.
func DetectOutliers(values []float64) Outliers {
	result := Outliers{Low: []float64{}, High: []float64{}}
	if len(values) < 4 {
		return result
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	q1 := sorted[n/4]
	q3 := sorted[int(math.Ceil(float64(n)*3/4))-1]
	iqr := q3 - q1

	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	for _, v := range values {
		if v < lower {
			result.Low = append(result.Low, v)
		} else if v > upper {
			result.High = append(result.High, v)
		}
	}
	return result
}
