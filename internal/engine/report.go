package engine

import (
	"sort"

	"example.com/kitchen-planner/backend/internal/models"
	"example.com/kitchen-planner/backend/internal/refdata"
)

type DietOption struct {
	Key         models.DietType `json:"key"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
}

type CompleteReport struct {
	Budget          BudgetReport        `json:"budget"`
	DistrictAdvice  DistrictAdvice      `json:"district_advice"`
	SeasonalSavings SeasonalSavings     `json:"seasonal_savings"`
	Forecast        []MonthForecast     `json:"forecast"`
	Sufficiency     SufficiencyAnalysis `json:"sufficiency"`
	Strategies      []RankedStrategy    `json:"strategies"`
}

// Analytics объединяет калькулятор, анализатор и прогнозатор над одним
// снимком справочника. Все методы чистые: ни часов, ни ввода-вывода.
type Analytics struct {
	Calculator *Calculator
	Analyzer   *Analyzer
	Forecaster *Forecaster

	data *refdata.Dataset
}

// NewAnalytics собирает аналитический движок поверх снимка справочника.
func NewAnalytics(data *refdata.Dataset) *Analytics {
	return &Analytics{
		Calculator: NewCalculator(data),
		Analyzer:   NewAnalyzer(data),
		Forecaster: NewForecaster(data),
		data:       data,
	}
}

// Districts возвращает имена всех округов по алфавиту.
func (a *Analytics) Districts() []string {
	names := make([]string, 0, len(a.data.Districts))
	for _, d := range a.data.Districts {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names
}

// DietTypes возвращает доступные диеты в стабильном порядке ключей.
func (a *Analytics) DietTypes() []DietOption {
	options := make([]DietOption, 0, len(a.data.Diets))
	for _, profile := range a.data.Diets {
		options = append(options, DietOption{
			Key:         profile.Key,
			Name:        profile.Name,
			Description: profile.Description,
		})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Key < options[j].Key })
	return options
}

// CompleteReport собирает полный отчет: бюджет, советы по округу, сезонность,
// прогноз на три месяца, анализ достаточности и стратегии экономии.
func (a *Analytics) CompleteReport(familySize int, district string, monthlyIncome float64, diet models.DietType, currentMonth int) (CompleteReport, error) {
	budget, err := a.Calculator.MonthlyBudget(familySize, district, monthlyIncome, diet)
	if err != nil {
		return CompleteReport{}, err
	}

	advice, err := a.Calculator.DistrictAdvice(district)
	if err != nil {
		return CompleteReport{}, err
	}

	seasonal, err := a.Analyzer.SeasonalSavings(currentMonth)
	if err != nil {
		return CompleteReport{}, err
	}

	forecast, err := a.Forecaster.MonthlyExpenses(budget.Totals.WithUtilities, currentMonth)
	if err != nil {
		return CompleteReport{}, err
	}

	sufficiency, err := a.Forecaster.Sufficiency(monthlyIncome, budget.Totals.WithUtilities)
	if err != nil {
		return CompleteReport{}, err
	}

	strategies, err := a.Analyzer.Strategies()
	if err != nil {
		return CompleteReport{}, err
	}

	return CompleteReport{
		Budget:          budget,
		DistrictAdvice:  advice,
		SeasonalSavings: seasonal,
		Forecast:        forecast,
		Sufficiency:     sufficiency,
		Strategies:      strategies,
	}, nil
}
