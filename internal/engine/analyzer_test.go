package engine

import (
	"testing"

	"example.com/kitchen-planner/backend/internal/refdata"
)

// TestDetectOutliers проверяет пометку завышенной цены методом IQR.
func TestDetectOutliers(t *testing.T) {
	result := DetectOutliers([]float64{100, 102, 98, 101, 99, 500})

	if len(result.High) != 1 || result.High[0] != 500 {
		t.Fatalf("expected single high outlier 500, got %v", result.High)
	}
	if len(result.Low) != 0 {
		t.Fatalf("expected no low outliers, got %v", result.Low)
	}
}

// TestDetectOutliersSmallSample проверяет, что короткие выборки не оцениваются.
func TestDetectOutliersSmallSample(t *testing.T) {
	result := DetectOutliers([]float64{100, 500, 90})

	if len(result.Low) != 0 || len(result.High) != 0 {
		t.Fatalf("expected empty result for n<4, got %+v", result)
	}
}

// TestCompareDistricts проверяет сортировку по доходу и пропуск неизвестных имен.
func TestCompareDistricts(t *testing.T) {
	analyzer := NewAnalyzer(refdata.DefaultDataset())

	comparison, err := analyzer.CompareDistricts([]string{"Jaffna", "Colombo", "Atlantis", "Kandy"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(comparison) != 3 {
		t.Fatalf("expected 3 districts, got %d", len(comparison))
	}
	if comparison[0].Name != "Colombo" {
		t.Fatalf("expected Colombo first by income, got %q", comparison[0].Name)
	}
	for i := 1; i < len(comparison); i++ {
		if comparison[i].MedianIncome > comparison[i-1].MedianIncome {
			t.Fatalf("comparison not sorted by income: %+v", comparison)
		}
	}
}

// TestCheapestAlternatives проверяет сортировку заменителей по цене.
func TestCheapestAlternatives(t *testing.T) {
	analyzer := NewAnalyzer(refdata.DefaultDataset())

	proteins, err := analyzer.CheapestAlternatives("protein")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(proteins); i++ {
		if proteins[i].Price < proteins[i-1].Price {
			t.Fatalf("alternatives not sorted by price: %+v", proteins)
		}
	}

	rice, err := analyzer.CheapestAlternatives("rice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rice) == 0 {
		t.Fatalf("expected rice alternatives, got none")
	}

	if _, err := analyzer.CheapestAlternatives("jewelry"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

// TestSeasonalSavings проверяет сезонные изменения для июля:
// пик урожая овощей и муссонное подорожание рыбы.
func TestSeasonalSavings(t *testing.T) {
	analyzer := NewAnalyzer(refdata.DefaultDataset())

	july, err := analyzer.SeasonalSavings(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if july.Vegetables.Change >= 0 {
		t.Fatalf("expected cheaper vegetables in July, got %+v", july.Vegetables)
	}
	if july.Fish.Change <= 0 {
		t.Fatalf("expected pricier fish during monsoon, got %+v", july.Fish)
	}

	if _, err := analyzer.SeasonalSavings(13); err == nil {
		t.Fatalf("expected error for month 13")
	}
}

// TestStrategies проверяет приоритизацию стратегий экономии.
func TestStrategies(t *testing.T) {
	analyzer := NewAnalyzer(refdata.DefaultDataset())

	strategies, err := analyzer.Strategies()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(strategies) == 0 {
		t.Fatalf("expected saving strategies, got none")
	}
	for i := 1; i < len(strategies); i++ {
		if strategies[i].Priority > strategies[i-1].Priority {
			t.Fatalf("strategies not sorted by priority: %+v", strategies)
		}
	}
}
