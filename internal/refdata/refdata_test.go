package refdata

import (
	"testing"

	"example.com/kitchen-planner/backend/internal/models"
)

// TestQuintileForIncome проверяет подбор квинтиля сверху вниз.
func TestQuintileForIncome(t *testing.T) {
	data := DefaultDataset()

	cases := []struct {
		income float64
		want   int
	}{
		{10000, 1},
		{17572, 1},
		{40000, 2},
		{63130, 3},
		{150000, 4},
		{500000, 5},
	}

	for _, tc := range cases {
		got := data.QuintileForIncome(tc.income)
		if got.Quintile != tc.want {
			t.Fatalf("income %v: expected quintile %d, got %d", tc.income, tc.want, got.Quintile)
		}
	}
}

// TestTemplateForFamily проверяет точный подбор и масштабирование size_8.
func TestTemplateForFamily(t *testing.T) {
	data := DefaultDataset()

	exact := data.TemplateForFamily(4)
	if exact.People != 4 || exact.RiceKg != 34 {
		t.Fatalf("expected size_4 template, got %+v", exact)
	}

	scaled := data.TemplateForFamily(12)
	if scaled.People != 12 {
		t.Fatalf("expected people 12, got %d", scaled.People)
	}
	// 68 кг риса на восьмерых, масштаб 1.5.
	if scaled.RiceKg != 102 {
		t.Fatalf("expected rice 102, got %v", scaled.RiceKg)
	}
}

// TestSectorProfileFallback проверяет откат к городскому профилю.
func TestSectorProfileFallback(t *testing.T) {
	data := DefaultDataset()

	mixed := data.SectorProfile(models.SectorMixed)
	urban := data.SectorProfile(models.SectorUrban)

	if mixed.PreferredRiceType != urban.PreferredRiceType {
		t.Fatalf("expected mixed sector to fall back to urban, got %+v", mixed)
	}
}

// TestSeasonalWindowContains проверяет попадание месяца в окно.
func TestSeasonalWindowContains(t *testing.T) {
	data := DefaultDataset()

	if !data.Seasonal.VegetablesPeakHarvest.Contains(7) {
		t.Fatal("expected July in vegetables peak harvest")
	}
	if data.Seasonal.VegetablesPeakHarvest.Contains(2) {
		t.Fatal("did not expect February in vegetables peak harvest")
	}
}

// TestCoastalAndNorthEast проверяет региональные списки округов.
func TestCoastalAndNorthEast(t *testing.T) {
	data := DefaultDataset()

	if !data.IsCoastal("Galle") {
		t.Fatal("expected Galle to be coastal")
	}
	if data.IsCoastal("Kandy") {
		t.Fatal("did not expect Kandy to be coastal")
	}
	if !data.IsNorthEast("Jaffna") {
		t.Fatal("expected Jaffna in the north-east list")
	}
}
