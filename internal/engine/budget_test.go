package engine

import (
	"errors"
	"testing"

	"example.com/kitchen-planner/backend/internal/models"
	"example.com/kitchen-planner/backend/internal/refdata"
)

// TestMonthlyBudgetColombo проверяет форму отчета для типовой семьи.
func TestMonthlyBudgetColombo(t *testing.T) {
	calc := NewCalculator(refdata.DefaultDataset())

	report, err := calc.MonthlyBudget(4, "Colombo", 100000, models.DietMixed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.District != "Colombo" || report.FamilySize != 4 {
		t.Fatalf("expected Colombo family of 4, got %+v", report)
	}
	if report.Totals.FoodOnly <= 0 {
		t.Fatalf("expected positive food total, got %v", report.Totals.FoodOnly)
	}
	if report.Totals.WithUtilities <= report.Totals.FoodOnly {
		t.Fatalf("expected utilities to add cost, got %v <= %v",
			report.Totals.WithUtilities, report.Totals.FoodOnly)
	}
	if report.Totals.PerCapita <= 0 {
		t.Fatalf("expected positive per-capita total, got %v", report.Totals.PerCapita)
	}
	if report.Recommendation.Status == "" || len(report.Recommendation.Suggestions) == 0 {
		t.Fatalf("expected populated recommendation, got %+v", report.Recommendation)
	}
}

// TestMonthlyBudgetNonNegative проверяет неотрицательность всех статей
// на сетке входов.
func TestMonthlyBudgetNonNegative(t *testing.T) {
	calc := NewCalculator(refdata.DefaultDataset())

	districts := []string{"Colombo", "Monaragala", "Nuwara Eliya", "Jaffna"}
	diets := []models.DietType{models.DietMixed, models.DietVegetarian, models.DietVegan, models.DietPescatarian, models.DietHalal}

	for _, district := range districts {
		for _, diet := range diets {
			for _, familySize := range []int{1, 4, 10} {
				report, err := calc.MonthlyBudget(familySize, district, 60000, diet)
				if err != nil {
					t.Fatalf("%s/%s/%d: unexpected error: %v", district, diet, familySize, err)
				}

				categories := []CategoryBreakdown{
					report.Breakdown.Staples, report.Breakdown.Proteins, report.Breakdown.Vegetables,
					report.Breakdown.Dairy, report.Breakdown.OilsCondiments, report.Breakdown.Fruits,
					report.Breakdown.Utilities,
				}
				for _, category := range categories {
					if category.Total < 0 {
						t.Fatalf("%s/%s/%d: negative category total %v", district, diet, familySize, category.Total)
					}
					for _, line := range category.Items {
						if line.Cost < 0 || line.Quantity < 0 {
							t.Fatalf("%s/%s/%d: negative line %+v", district, diet, familySize, line)
						}
					}
				}
			}
		}
	}
}

// TestMonthlyBudgetVeganDairy проверяет нулевую молочную статью для веганов.
func TestMonthlyBudgetVeganDairy(t *testing.T) {
	calc := NewCalculator(refdata.DefaultDataset())

	report, err := calc.MonthlyBudget(3, "Kandy", 80000, models.DietVegan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Breakdown.Dairy.Total != 0 || len(report.Breakdown.Dairy.Items) != 0 {
		t.Fatalf("expected empty dairy breakdown for vegan diet, got %+v", report.Breakdown.Dairy)
	}
}

// TestMonthlyBudgetGrowsWithFamily проверяет, что бюджет не убывает
// с ростом семьи при прочих равных.
func TestMonthlyBudgetGrowsWithFamily(t *testing.T) {
	calc := NewCalculator(refdata.DefaultDataset())

	previous := 0.0
	for _, familySize := range []int{1, 2, 4, 6, 8, 12} {
		report, err := calc.MonthlyBudget(familySize, "Colombo", 100000, models.DietMixed)
		if err != nil {
			t.Fatalf("family of %d: unexpected error: %v", familySize, err)
		}
		if report.Totals.WithUtilities < previous {
			t.Fatalf("budget shrank for family of %d: %v < %v",
				familySize, report.Totals.WithUtilities, previous)
		}
		previous = report.Totals.WithUtilities
	}
}

// TestMonthlyBudgetUnknownDistrict проверяет жесткую ошибку по чужому округу.
func TestMonthlyBudgetUnknownDistrict(t *testing.T) {
	calc := NewCalculator(refdata.DefaultDataset())

	_, err := calc.MonthlyBudget(4, "Atlantis", 100000, models.DietMixed)
	if !errors.Is(err, ErrDistrictNotFound) {
		t.Fatalf("expected ErrDistrictNotFound, got %v", err)
	}
}

// TestMonthlyBudgetValidation проверяет проверку входных параметров.
func TestMonthlyBudgetValidation(t *testing.T) {
	calc := NewCalculator(refdata.DefaultDataset())

	cases := []struct {
		name       string
		familySize int
		income     float64
		diet       models.DietType
	}{
		{"zero family", 0, 100000, models.DietMixed},
		{"zero income", 4, 0, models.DietMixed},
		{"unknown diet", 4, 100000, models.DietType("carnivore")},
	}

	for _, tc := range cases {
		if _, err := calc.MonthlyBudget(tc.familySize, "Colombo", tc.income, tc.diet); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

// TestDistrictAdvice проверяет советы для прибрежного округа.
func TestDistrictAdvice(t *testing.T) {
	calc := NewCalculator(refdata.DefaultDataset())

	advice, err := calc.DistrictAdvice("Galle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if advice.District != "Galle" || len(advice.Tips) == 0 {
		t.Fatalf("expected populated advice, got %+v", advice)
	}

	foundFishTip := false
	for _, tip := range advice.Tips {
		if tip == "Fresh fish available at lower prices - prioritize over meat" {
			foundFishTip = true
		}
	}
	if !foundFishTip {
		t.Fatalf("expected coastal fish tip for Galle, got %v", advice.Tips)
	}

	if _, err := calc.DistrictAdvice("Atlantis"); !errors.Is(err, ErrDistrictNotFound) {
		t.Fatalf("expected ErrDistrictNotFound, got %v", err)
	}
}
