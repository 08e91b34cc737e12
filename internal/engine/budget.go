package engine

import (
	"fmt"
	"math"

	"example.com/kitchen-planner/backend/internal/models"
	"example.com/kitchen-planner/backend/internal/refdata"
)

type RecommendationStatus string

const (
	StatusCritical  RecommendationStatus = "critical"
	StatusWarning   RecommendationStatus = "warning"
	StatusHealthy   RecommendationStatus = "healthy"
	StatusExcellent RecommendationStatus = "excellent"
)

type BudgetLine struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
	Cost     float64 `json:"cost"`
	Note     string  `json:"note,omitempty"`
}

type CategoryBreakdown struct {
	Items []BudgetLine `json:"items"`
	Total float64      `json:"total"`
}

type BudgetBreakdown struct {
	Staples        CategoryBreakdown `json:"staples"`
	Proteins       CategoryBreakdown `json:"proteins"`
	Vegetables     CategoryBreakdown `json:"vegetables"`
	Dairy          CategoryBreakdown `json:"dairy"`
	OilsCondiments CategoryBreakdown `json:"oils_condiments"`
	Fruits         CategoryBreakdown `json:"fruits"`
	Utilities      CategoryBreakdown `json:"utilities"`
}

type BudgetTotals struct {
	FoodOnly           float64 `json:"food_only"`
	WithUtilities      float64 `json:"with_utilities"`
	PerCapita          float64 `json:"per_capita"`
	PercentageOfIncome float64 `json:"percentage_of_income"`
}

type Recommendation struct {
	Status      RecommendationStatus `json:"status"`
	Message     string               `json:"message"`
	Suggestions []string             `json:"suggestions"`
}

type BudgetReport struct {
	FamilySize     int             `json:"family_size"`
	District       string          `json:"district"`
	MonthlyIncome  float64         `json:"monthly_income"`
	Diet           models.DietType `json:"diet"`
	Quintile       string          `json:"quintile"`
	Breakdown      BudgetBreakdown `json:"breakdown"`
	Totals         BudgetTotals    `json:"totals"`
	Recommendation Recommendation  `json:"recommendation"`
}

type DistrictAdvice struct {
	District          string        `json:"district"`
	MedianIncome      float64       `json:"median_income"`
	RecommendedBudget refdata.Range `json:"recommended_budget"`
	Sector            models.Sector `json:"sector"`
	Tips              []string      `json:"tips"`
}

// Calculator строит месячный продовольственный бюджет семьи из статических
// таблиц (цены, шаблоны потребления, квинтили, секторы). Не зависит от
// инвентаря и истории — это отдельный консультативный движок.
type Calculator struct {
	data *refdata.Dataset
}

// NewCalculator создает калькулятор бюджета поверх снимка справочника.
func NewCalculator(data *refdata.Dataset) *Calculator {
	return &Calculator{data: data}
}

// MonthlyBudget считает полный помесячный бюджет. Неизвестный округ — жесткая
// ошибка: бюджет по чужому округу материально неверен. Остальные пропуски в
// таблицах закрываются безопасными значениями по умолчанию.
func (c *Calculator) MonthlyBudget(familySize int, district string, monthlyIncome float64, diet models.DietType) (BudgetReport, error) {
	if c.data == nil {
		return BudgetReport{}, ErrMissingData
	}
	if familySize < 1 {
		return BudgetReport{}, fmt.Errorf("%w: family size must be at least 1", ErrInvalidInput)
	}
	if monthlyIncome <= 0 {
		return BudgetReport{}, fmt.Errorf("%w: monthly income must be greater than 0", ErrInvalidInput)
	}
	if !models.ValidDiet(diet) {
		return BudgetReport{}, fmt.Errorf("%w: unknown diet %q", ErrInvalidInput, diet)
	}

	districtData, ok := c.data.DistrictByName(district)
	if !ok {
		return BudgetReport{}, fmt.Errorf("%w: %s", ErrDistrictNotFound, district)
	}

	quintile := c.data.QuintileForIncome(monthlyIncome)
	template := c.data.TemplateForFamily(familySize)
	dietProfile, _ := c.data.DietProfile(diet)

	staples := c.staples(familySize, districtData.Sector, template)
	proteins := c.proteins(familySize, dietProfile, template)
	vegetables := c.vegetables(districtData.Sector, template)
	dairy := c.dairy(familySize, diet)
	oils := c.oilsCondiments(familySize)
	fruits := c.fruits(familySize, quintile.Quintile)
	utilities := c.utilities()

	foodTotal := staples.Total + proteins.Total + vegetables.Total + dairy.Total + oils.Total + fruits.Total
	withUtilities := foodTotal + utilities.Total
	percentage := round1(withUtilities / monthlyIncome * 100)

	return BudgetReport{
		FamilySize:    familySize,
		District:      districtData.Name,
		MonthlyIncome: monthlyIncome,
		Diet:          diet,
		Quintile:      quintile.Name,
		Breakdown: BudgetBreakdown{
			Staples:        staples,
			Proteins:       proteins,
			Vegetables:     vegetables,
			Dairy:          dairy,
			OilsCondiments: oils,
			Fruits:         fruits,
			Utilities:      utilities,
		},
		Totals: BudgetTotals{
			FoodOnly:           math.Round(foodTotal),
			WithUtilities:      math.Round(withUtilities),
			PerCapita:          math.Round(withUtilities / float64(familySize)),
			PercentageOfIncome: percentage,
		},
		Recommendation: c.recommendation(withUtilities, monthlyIncome),
	}, nil
}

func (c *Calculator) staples(familySize int, sector models.Sector, template refdata.FamilyTemplate) CategoryBreakdown {
	sectorData := c.data.SectorProfile(sector)

	riceType := sectorData.PreferredRiceType
	ricePrice, ok := c.data.FoodPrices.Rice[riceType]
	if !ok {
		riceType = "samba"
		ricePrice = c.data.FoodPrices.Rice["samba"]
	}

	riceKg := template.RiceKg
	dhalKg := float64(familySize) * c.data.ConsumptionPatterns.DhalPerCapitaKg
	flourKg := math.Max(2, float64(familySize)*0.5)

	riceCost := riceKg * ricePrice.Price
	dhalCost := dhalKg * c.data.FoodPrices.DhalRed.Price
	flourCost := flourKg * c.data.FoodPrices.WheatFlour.Price

	return CategoryBreakdown{
		Items: []BudgetLine{
			{Name: fmt.Sprintf("Rice (%s)", riceType), Quantity: riceKg, Unit: "kg", Price: ricePrice.Price, Cost: math.Round(riceCost)},
			{Name: "Red Dhal", Quantity: round1(dhalKg), Unit: "kg", Price: c.data.FoodPrices.DhalRed.Price, Cost: math.Round(dhalCost)},
			{Name: "Wheat Flour", Quantity: round1(flourKg), Unit: "kg", Price: c.data.FoodPrices.WheatFlour.Price, Cost: math.Round(flourCost)},
		},
		Total: math.Round(riceCost + dhalCost + flourCost),
	}
}

func (c *Calculator) proteins(familySize int, diet refdata.DietProfile, template refdata.FamilyTemplate) CategoryBreakdown {
	prices := c.data.FoodPrices.Proteins
	items := make([]BudgetLine, 0, 5)

	// Яйца входят почти во все диеты и считаются всегда.
	eggsCount := template.EggsCount
	eggsCost := eggsCount * prices["eggs"].Price
	items = append(items, BudgetLine{Name: "Eggs", Quantity: eggsCount, Unit: "each", Price: prices["eggs"].Price, Cost: math.Round(eggsCost)})
	total := eggsCost

	sources := diet.ProteinSources

	if hasSource(sources, "chicken") {
		chickenKg := math.Max(2, float64(familySize)*0.45)
		cost := chickenKg * prices["chicken_whole"].Price
		items = append(items, BudgetLine{Name: "Chicken", Quantity: round1(chickenKg), Unit: "kg", Price: prices["chicken_whole"].Price, Cost: math.Round(cost)})
		total += cost
	}

	if hasSource(sources, "fish") {
		fishKg := math.Max(2, float64(familySize)*1.2)
		cost := fishKg * prices["fish_linna"].Price
		items = append(items, BudgetLine{Name: "Fish (Mixed)", Quantity: round1(fishKg), Unit: "kg", Price: prices["fish_linna"].Price, Cost: math.Round(cost)})
		total += cost
	}

	if hasSource(sources, "beef") || hasSource(sources, "mutton") {
		meatKg := math.Max(1, float64(familySize)*0.3)
		name := "Beef"
		price := prices["beef_round"].Price
		if hasSource(sources, "mutton") {
			name = "Mutton"
			price = prices["mutton"].Price
		}
		cost := meatKg * price
		items = append(items, BudgetLine{Name: name, Quantity: round1(meatKg), Unit: "kg", Price: price, Cost: math.Round(cost)})
		total += cost
	}

	if hasSource(sources, "soya") {
		soyaPacks := math.Max(6, float64(familySize)*2)
		cost := soyaPacks * prices["soya_meat"].Price
		items = append(items, BudgetLine{Name: "Soya Meat", Quantity: soyaPacks, Unit: "packs", Price: prices["soya_meat"].Price, Cost: math.Round(cost)})
		total += cost
	}

	return CategoryBreakdown{Items: items, Total: math.Round(total)}
}

func (c *Calculator) vegetables(sector models.Sector, template refdata.FamilyTemplate) CategoryBreakdown {
	// Сельские и плантационные семьи часть овощей выращивают сами.
	purchaseRatio := 1.0
	note := ""
	if sector == models.SectorRural || sector == models.SectorEstate {
		purchaseRatio = 0.6
		note = "Some home-grown"
	}
	purchasedKg := template.VegetablesKg * purchaseRatio

	veg := c.data.FoodPrices.Vegetables
	avgPrice := veg["tomato"].Price*0.1 +
		veg["onion_big"].Price*0.15 +
		veg["potato_local"].Price*0.2 +
		veg["carrot"].Price*0.1 +
		veg["cabbage"].Price*0.15 +
		veg["beans"].Price*0.15 +
		veg["leafy_greens"].Price*0.15

	cost := purchasedKg * avgPrice

	return CategoryBreakdown{
		Items: []BudgetLine{
			{Name: "Mixed Vegetables", Quantity: round1(purchasedKg), Unit: "kg", Price: math.Round(avgPrice), Cost: math.Round(cost), Note: note},
		},
		Total: math.Round(cost),
	}
}

func (c *Calculator) dairy(familySize int, diet models.DietType) CategoryBreakdown {
	if diet == models.DietVegan {
		return CategoryBreakdown{Items: []BudgetLine{}, Total: 0}
	}

	milkLiters := float64(familySize) * c.data.ConsumptionPatterns.MilkLitersPerCapita
	milkPrice := c.data.FoodPrices.Dairy["milk_liquid"].Price
	cost := milkLiters * milkPrice

	return CategoryBreakdown{
		Items: []BudgetLine{
			{Name: "Milk", Quantity: round1(milkLiters), Unit: "liters", Price: milkPrice, Cost: math.Round(cost)},
		},
		Total: math.Round(cost),
	}
}

func (c *Calculator) oilsCondiments(familySize int) CategoryBreakdown {
	oils := c.data.FoodPrices.OilsCondiments
	fs := float64(familySize)

	oilLiters := math.Max(3, fs*0.75)
	coconuts := math.Max(15, fs*5)
	sugarKg := math.Max(2, fs*0.75)
	teaPacks := math.Ceil(math.Max(200, fs*100) / 100)
	spicesCost := fs * 400

	oilCost := oilLiters * oils["vegetable_oil"].Price
	coconutCost := coconuts * oils["coconut"].Price
	sugarCost := sugarKg * oils["sugar"].Price
	teaCost := teaPacks * oils["tea_leaves"].Price

	return CategoryBreakdown{
		Items: []BudgetLine{
			{Name: "Cooking Oil", Quantity: round1(oilLiters), Unit: "liters", Price: oils["vegetable_oil"].Price, Cost: math.Round(oilCost)},
			{Name: "Coconuts", Quantity: coconuts, Unit: "each", Price: oils["coconut"].Price, Cost: math.Round(coconutCost)},
			{Name: "Sugar", Quantity: round1(sugarKg), Unit: "kg", Price: oils["sugar"].Price, Cost: math.Round(sugarCost)},
			{Name: "Tea", Quantity: teaPacks, Unit: "100g packs", Price: oils["tea_leaves"].Price, Cost: math.Round(teaCost)},
			{Name: "Spices (Mixed)", Quantity: 1, Unit: "set", Price: math.Round(spicesCost), Cost: math.Round(spicesCost)},
		},
		Total: math.Round(oilCost + coconutCost + sugarCost + teaCost + spicesCost),
	}
}

func (c *Calculator) fruits(familySize int, quintile int) CategoryBreakdown {
	// Чем выше квинтиль дохода, тем больше фруктов в корзине.
	fruitKg := float64(familySize) * float64(2+quintile)
	fruitPrices := c.data.FoodPrices.Fruits
	avgPrice := fruitPrices["banana"].Price*0.5 +
		fruitPrices["papaya"].Price*0.3 +
		fruitPrices["orange"].Price*0.2
	cost := fruitKg * avgPrice

	return CategoryBreakdown{
		Items: []BudgetLine{
			{Name: "Mixed Fruits", Quantity: round1(fruitKg), Unit: "kg", Price: math.Round(avgPrice), Cost: math.Round(cost)},
		},
		Total: math.Round(cost),
	}
}

func (c *Calculator) utilities() CategoryBreakdown {
	// Баллона хватает примерно на 45 дней, месяц — 0.67 баллона.
	lpg := c.data.FoodPrices.Utilities["lpg_cylinder_12_5kg"]
	monthlyCost := lpg.Price * 0.67

	return CategoryBreakdown{
		Items: []BudgetLine{
			{Name: "LPG Gas (Monthly)", Quantity: 0.67, Unit: "cylinder", Price: lpg.Price, Cost: math.Round(monthlyCost)},
		},
		Total: math.Round(monthlyCost),
	}
}

func (c *Calculator) recommendation(totalBudget, monthlyIncome float64) Recommendation {
	percentage := totalBudget / monthlyIncome * 100

	switch {
	case percentage > 50:
		return Recommendation{
			Status:  StatusCritical,
			Message: fmt.Sprintf("Food expenses (%.1f%%) exceed recommended 35-40%% of income. Consider cost-saving strategies.", percentage),
			Suggestions: []string{
				"Switch to budget rice varieties (Kekulu)",
				"Increase dhal/eggs, reduce meat/fish consumption",
				"Shop at farmers markets on weekends",
				"Buy staples in bulk for 10-25% discount",
			},
		}
	case percentage > 40:
		return Recommendation{
			Status:  StatusWarning,
			Message: fmt.Sprintf("Food expenses (%.1f%%) are above ideal 35%%. Some optimization recommended.", percentage),
			Suggestions: []string{
				"Consider seasonal vegetables for 40% savings",
				"Replace premium fish with local varieties",
				"Start home garden for leafy greens",
			},
		}
	case percentage > 25:
		return Recommendation{
			Status:  StatusHealthy,
			Message: fmt.Sprintf("Food expenses (%.1f%%) are within healthy range (25-35%%).", percentage),
			Suggestions: []string{
				"Maintain current diet",
				"Consider bulk purchasing for additional savings",
				"Explore seasonal variations for variety",
			},
		}
	default:
		return Recommendation{
			Status:  StatusExcellent,
			Message: fmt.Sprintf("Food expenses (%.1f%%) are well-managed. You have flexibility for dietary improvements.", percentage),
			Suggestions: []string{
				"Consider adding more fruits and premium proteins",
				"Explore organic or specialty items",
				"Invest in nutrition quality improvements",
			},
		}
	}
}

// DistrictAdvice возвращает рекомендации по округу (сектор, побережье, север).
func (c *Calculator) DistrictAdvice(name string) (DistrictAdvice, error) {
	if c.data == nil {
		return DistrictAdvice{}, ErrMissingData
	}

	district, ok := c.data.DistrictByName(name)
	if !ok {
		return DistrictAdvice{}, fmt.Errorf("%w: %s", ErrDistrictNotFound, name)
	}

	tips := make([]string, 0, 4)
	switch district.Sector {
	case models.SectorUrban:
		tips = append(tips,
			"Take advantage of multiple supermarket options for competitive pricing",
			"Visit Pettah/Manning Market for wholesale vegetable prices")
	case models.SectorRural:
		tips = append(tips,
			"Utilize home garden space for vegetable cultivation",
			"Connect with local farmers for direct purchases",
			"Preserve seasonal produce through drying/pickling")
	case models.SectorEstate:
		tips = append(tips,
			"Coordinate bulk purchases with community for discounts",
			"Maximize use of estate-allocated land for food production")
	}

	if c.data.IsCoastal(district.Name) {
		tips = append(tips, "Fresh fish available at lower prices - prioritize over meat")
	}
	if c.data.IsNorthEast(district.Name) {
		tips = append(tips, "Focus on locally-produced staples and dried fish")
	}

	return DistrictAdvice{
		District:          district.Name,
		MedianIncome:      district.MedianIncome,
		RecommendedBudget: district.FoodBudget,
		Sector:            district.Sector,
		Tips:              tips,
	}, nil
}

func hasSource(sources []string, name string) bool {
	for _, s := range sources {
		if s == name {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
