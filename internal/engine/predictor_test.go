package engine

import (
	"errors"
	"testing"

	"example.com/kitchen-planner/backend/internal/models"
	"example.com/kitchen-planner/backend/internal/refdata"
)

// TestInflationSeries проверяет сложную инфляцию 1.9% в месяц:
// 1000 рупий через полгода превращаются в round(1000*1.019^6) = 1120.
func TestInflationSeries(t *testing.T) {
	points := InflationSeries(1000, 6)

	if len(points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(points))
	}
	if points[5].Price != 1120 {
		t.Fatalf("expected price 1120 after 6 months, got %v", points[5].Price)
	}
	for i := 1; i < len(points); i++ {
		if points[i].Price < points[i-1].Price {
			t.Fatalf("inflated prices must not decrease: %+v", points)
		}
	}
}

// TestPriceInflationLookup проверяет ключи справочника, откат к каталогу
// и ошибку для неизвестного товара.
func TestPriceInflationLookup(t *testing.T) {
	forecaster := NewForecaster(refdata.DefaultDataset())

	forecast, err := forecaster.PriceInflation("rice_samba", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if forecast.CurrentPrice != 237.5 {
		t.Fatalf("expected samba price 237.5, got %v", forecast.CurrentPrice)
	}

	catalog, err := forecaster.PriceInflation("Rice (Samba)", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.CurrentPrice != 230 {
		t.Fatalf("expected catalog price 230, got %v", catalog.CurrentPrice)
	}

	if _, err := forecaster.PriceInflation("unobtainium", 3); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown item, got %v", err)
	}
}

// TestMonthlyExpensesWrapAround проверяет перенос месяцев через декабрь
// и праздничные факторы.
func TestMonthlyExpensesWrapAround(t *testing.T) {
	forecaster := NewForecaster(refdata.DefaultDataset())

	forecasts, err := forecaster.MonthlyExpenses(30000, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	months := []int{forecasts[0].Month, forecasts[1].Month, forecasts[2].Month}
	if months[0] != 12 || months[1] != 1 || months[2] != 2 {
		t.Fatalf("expected months 12,1,2, got %v", months)
	}

	foundChristmas := false
	for _, factor := range forecasts[0].Factors {
		if factor == "Christmas season - higher prices on some items" {
			foundChristmas = true
		}
	}
	if !foundChristmas {
		t.Fatalf("expected Christmas factor for December, got %v", forecasts[0].Factors)
	}

	for _, forecast := range forecasts {
		if forecast.PredictedExpense <= 0 {
			t.Fatalf("expected positive predicted expense, got %+v", forecast)
		}
	}
}

// TestSufficiencyStatuses проверяет три статуса достаточности бюджета.
func TestSufficiencyStatuses(t *testing.T) {
	forecaster := NewForecaster(refdata.DefaultDataset())

	cases := []struct {
		name     string
		income   float64
		spending float64
		want     SufficiencyStatus
	}{
		// Идеал 35000, разрыв 21000 > 15% дохода.
		{"critical", 100000, 56000, SufficiencyCritical},
		// Разрыв 1000, положительный, но в пределах допуска.
		{"needs improvement", 100000, 36000, SufficiencyNeedsWork},
		{"sufficient", 100000, 30000, SufficiencySufficient},
	}

	for _, tc := range cases {
		analysis, err := forecaster.Sufficiency(tc.income, tc.spending)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if analysis.Status != tc.want {
			t.Fatalf("%s: expected status %q, got %q", tc.name, tc.want, analysis.Status)
		}
		if len(analysis.Recommendations) == 0 {
			t.Fatalf("%s: expected recommendations", tc.name)
		}
	}
}

// TestCompleteReport проверяет сборку полного отчета.
func TestCompleteReport(t *testing.T) {
	analytics := NewAnalytics(refdata.DefaultDataset())

	report, err := analytics.CompleteReport(4, "Colombo", 100000, models.DietMixed, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Budget.Totals.WithUtilities <= 0 {
		t.Fatalf("expected positive budget, got %+v", report.Budget.Totals)
	}
	if len(report.Forecast) != 3 {
		t.Fatalf("expected 3-month forecast, got %d", len(report.Forecast))
	}
	if report.SeasonalSavings.Month != 7 {
		t.Fatalf("expected seasonal savings for July, got %+v", report.SeasonalSavings)
	}
	if len(report.Strategies) == 0 {
		t.Fatalf("expected saving strategies in report")
	}

	if len(analytics.Districts()) != 25 {
		t.Fatalf("expected 25 districts, got %d", len(analytics.Districts()))
	}
	if len(analytics.DietTypes()) == 0 {
		t.Fatalf("expected diet options")
	}
}
