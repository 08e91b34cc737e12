package engine

import (
	"reflect"
	"testing"
	"time"

	"example.com/kitchen-planner/backend/internal/models"
)

func testCatalog() []models.CatalogItem {
	return []models.CatalogItem{
		{Name: "White Rice (Samba)", Category: "Grains", Unit: models.UnitKilogram, ReferencePrice: 237.5, UsageFrequency: models.FrequencyDaily, SubstitutionGroup: "rice"},
		{Name: "Red Dhal", Category: "Grains", Unit: models.UnitKilogram, ReferencePrice: 265, UsageFrequency: models.FrequencyWeekly},
		{Name: "Fresh Milk", Category: "Dairy", Unit: models.UnitLiter, ReferencePrice: 140, UsageFrequency: models.FrequencyDaily},
		{Name: "Chicken (Whole)", Category: "Meats", Unit: models.UnitKilogram, ReferencePrice: 1250, UsageFrequency: models.FrequencyWeekly, SubstitutionGroup: "chicken"},
		{Name: "Turmeric Powder", Category: "Spices", Unit: models.UnitGram, ReferencePrice: 0.9, UsageFrequency: models.FrequencyAdhoc},
	}
}

func testProfile(adults, children int) models.FamilyProfile {
	return models.FamilyProfile{
		Adults:   adults,
		Children: children,
		District: "Colombo",
		Diet:     models.DietMixed,
	}
}

// TestPredictIdempotent проверяет, что повторный прогон на тех же данных
// дает идентичный результат.
func TestPredictIdempotent(t *testing.T) {
	estimator := NewEstimator(DefaultEstimatorConfig())
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	in := PredictionInput{
		Catalog: testCatalog(),
		Inventory: []models.InventoryItem{
			{Name: "White Rice (Samba)", Quantity: 3, Price: 240, UsageFrequency: models.FrequencyDaily, SubstitutionGroup: "rice"},
		},
		History: []models.MealHistoryEntry{
			{MealName: "Rice and curry", CookedAt: now.AddDate(0, 0, -5), Items: []models.MealItem{{ItemName: "White Rice (Samba)", Quantity: 0.5}}},
			{MealName: "Rice and curry", CookedAt: now.AddDate(0, 0, -1), Items: []models.MealItem{{ItemName: "White Rice (Samba)", Quantity: 0.5}}},
		},
		Profile: testProfile(2, 2),
		Now:     now,
	}

	first, err := estimator.Predict(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := estimator.Predict(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical prediction sets, got %+v and %+v", first, second)
	}
}

// TestPredictGroupCoverage проверяет, что запас группы замен гасит дефицит.
func TestPredictGroupCoverage(t *testing.T) {
	estimator := NewEstimator(DefaultEstimatorConfig())
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	in := PredictionInput{
		Catalog: testCatalog(),
		Inventory: []models.InventoryItem{
			// Самого samba нет, но группа rice закрыта запасом nadu.
			{Name: "White Rice (Nadu)", Quantity: 50, SubstitutionGroup: "rice"},
		},
		Profile: testProfile(2, 2),
		Now:     now,
	}

	set, err := estimator.Predict(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rice, ok := set.Items["White Rice (Samba)"]
	if !ok {
		t.Fatalf("expected prediction for samba rice, got %v", set.Items)
	}
	if !rice.GroupCovered {
		t.Fatalf("expected group coverage, got %+v", rice)
	}
	if rice.Shortfall != 0 {
		t.Fatalf("expected zero shortfall for covered group, got %v", rice.Shortfall)
	}
}

// TestPredictGroupCoverageWithoutInventoryTags проверяет, что позиции запасов
// без явной группы замен пулятся по группе своего товара в каталоге.
func TestPredictGroupCoverageWithoutInventoryTags(t *testing.T) {
	estimator := NewEstimator(DefaultEstimatorConfig())

	catalog := []models.CatalogItem{
		{Name: "Fish (Kelawalla)", Category: "Seafood", Unit: models.UnitKilogram, ReferencePrice: 1900, UsageFrequency: models.FrequencyMonthly, SubstitutionGroup: "fish_premium"},
		{Name: "Fish (Thalapath)", Category: "Seafood", Unit: models.UnitKilogram, ReferencePrice: 2100, UsageFrequency: models.FrequencyMonthly, SubstitutionGroup: "fish_premium"},
	}

	set, err := estimator.Predict(PredictionInput{
		Catalog: catalog,
		Inventory: []models.InventoryItem{
			// Группы не проставлены, но суммарный запас закрывает цель.
			{Name: "Fish (Kelawalla)", Quantity: 0.24},
			{Name: "Fish (Thalapath)", Quantity: 0.64},
		},
		Profile: testProfile(2, 0),
		Targets: map[string]float64{"Fish (Kelawalla)": 0.8},
		Now:     time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fish, ok := set.Items["Fish (Kelawalla)"]
	if !ok {
		t.Fatalf("expected prediction for kelawalla, got %v", set.Items)
	}
	if !fish.GroupCovered {
		t.Fatalf("expected group coverage from untagged stock, got %+v", fish)
	}
	if fish.Shortfall != 0 {
		t.Fatalf("expected zero shortfall for covered group, got %v", fish.Shortfall)
	}
}

// TestPredictAdhocNotProjected проверяет, что разовые покупки не дают
// месячной потребности и дефицита.
func TestPredictAdhocNotProjected(t *testing.T) {
	estimator := NewEstimator(DefaultEstimatorConfig())

	set, err := estimator.Predict(PredictionInput{
		Catalog: testCatalog(),
		Profile: testProfile(2, 0),
		Now:     time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spice, ok := set.Items["Turmeric Powder"]
	if !ok {
		t.Fatalf("expected adhoc item to stay in predictions, got %v", set.Items)
	}
	if spice.MonthlyRequirement != 0 || spice.Shortfall != 0 {
		t.Fatalf("expected zero requirement and shortfall for adhoc item, got %+v", spice)
	}
}

// TestPredictVeganExclusions проверяет исключение мяса и молочного для веганов.
func TestPredictVeganExclusions(t *testing.T) {
	estimator := NewEstimator(DefaultEstimatorConfig())

	profile := testProfile(2, 1)
	profile.Diet = models.DietVegan

	set, err := estimator.Predict(PredictionInput{
		Catalog: testCatalog(),
		Profile: profile,
		Now:     time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{"Fresh Milk", "Chicken (Whole)"} {
		if _, ok := set.Items[name]; ok {
			t.Fatalf("expected %q to be excluded for vegan diet", name)
		}
	}
	if _, ok := set.Items["White Rice (Samba)"]; !ok {
		t.Fatalf("expected rice to survive vegan filter, got %v", set.Items)
	}
}

// TestPredictScalesWithFamilySize проверяет, что эвристическая потребность
// не убывает с ростом семьи.
func TestPredictScalesWithFamilySize(t *testing.T) {
	estimator := NewEstimator(DefaultEstimatorConfig())
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	small, err := estimator.Predict(PredictionInput{Catalog: testCatalog(), Profile: testProfile(2, 0), Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	large, err := estimator.Predict(PredictionInput{Catalog: testCatalog(), Profile: testProfile(4, 2), Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if large.TotalShortfallValue < small.TotalShortfallValue {
		t.Fatalf("expected shortfall value to grow with family size, got %v < %v",
			large.TotalShortfallValue, small.TotalShortfallValue)
	}
	if large.Items["White Rice (Samba)"].MonthlyRequirement <= small.Items["White Rice (Samba)"].MonthlyRequirement {
		t.Fatalf("expected rice requirement to grow with family size, got %v <= %v",
			large.Items["White Rice (Samba)"].MonthlyRequirement, small.Items["White Rice (Samba)"].MonthlyRequirement)
	}
}

// TestPredictHistoryThreshold проверяет порог трех дней: короткое окно
// наблюдений оставляет эвристику, длинное включает исторический темп.
func TestPredictHistoryThreshold(t *testing.T) {
	estimator := NewEstimator(DefaultEstimatorConfig())
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	shortHistory := []models.MealHistoryEntry{
		{MealName: "Lunch", CookedAt: now.AddDate(0, 0, -2), Items: []models.MealItem{{ItemName: "White Rice (Samba)", Quantity: 1}}},
		{MealName: "Dinner", CookedAt: now.AddDate(0, 0, -1), Items: []models.MealItem{{ItemName: "White Rice (Samba)", Quantity: 1}}},
	}
	longHistory := []models.MealHistoryEntry{
		{MealName: "Lunch", CookedAt: now.AddDate(0, 0, -4), Items: []models.MealItem{{ItemName: "White Rice (Samba)", Quantity: 4}}},
		{MealName: "Dinner", CookedAt: now.AddDate(0, 0, -1), Items: []models.MealItem{{ItemName: "White Rice (Samba)", Quantity: 4}}},
	}

	profile := testProfile(2, 2)

	short, err := estimator.Predict(PredictionInput{Catalog: testCatalog(), History: shortHistory, Profile: profile, Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	long, err := estimator.Predict(PredictionInput{Catalog: testCatalog(), History: longHistory, Profile: profile, Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := short.Items["White Rice (Samba)"].Source; got != RateSourceHeuristic {
		t.Fatalf("expected heuristic source for a 2-day window, got %q", got)
	}
	if got := long.Items["White Rice (Samba)"].Source; got != RateSourceHistorical {
		t.Fatalf("expected historical source for a 4-day window, got %q", got)
	}
	// 8 кг за 4 дня — темп 2 кг в день.
	if got := long.Items["White Rice (Samba)"].Rate; got != 2 {
		t.Fatalf("expected rate 2, got %v", got)
	}
}

// TestPredictManualTargetOverride проверяет, что ручная месячная цель
// перекрывает эвристику и помечается как историческая.
func TestPredictManualTargetOverride(t *testing.T) {
	estimator := NewEstimator(DefaultEstimatorConfig())

	set, err := estimator.Predict(PredictionInput{
		Catalog: testCatalog(),
		Profile: testProfile(2, 0),
		Targets: map[string]float64{"White Rice (Samba)": 12},
		Now:     time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rice := set.Items["White Rice (Samba)"]
	if rice.Source != RateSourceHistorical {
		t.Fatalf("expected manual target to count as historical, got %q", rice.Source)
	}
	if rice.MonthlyRequirement != 12 {
		t.Fatalf("expected monthly requirement 12, got %v", rice.MonthlyRequirement)
	}
}

// TestPredictValidation проверяет граничные ошибки входа.
func TestPredictValidation(t *testing.T) {
	estimator := NewEstimator(DefaultEstimatorConfig())
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	if _, err := estimator.Predict(PredictionInput{Profile: testProfile(2, 0), Now: now}); err != ErrMissingData {
		t.Fatalf("expected ErrMissingData for empty catalog, got %v", err)
	}
	if _, err := estimator.Predict(PredictionInput{Catalog: testCatalog(), Profile: testProfile(0, 0), Now: now}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty family, got %v", err)
	}
}
