package refdata

import (
	"errors"
	"testing"

	"example.com/kitchen-planner/backend/internal/models"
)

// TestStoreSnapshotIsolation проверяет, что выданный снимок не видит
// последующих изменений каталога.
func TestStoreSnapshotIsolation(t *testing.T) {
	store := NewStore(DefaultDataset())

	before, err := store.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name := before.Catalog[0].Name
	oldPrice := before.Catalog[0].ReferencePrice

	updated, err := store.UpdateCatalogPrice(name, oldPrice+100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ReferencePrice != oldPrice+100 {
		t.Fatalf("expected price %v, got %v", oldPrice+100, updated.ReferencePrice)
	}

	if before.Catalog[0].ReferencePrice != oldPrice {
		t.Fatalf("old snapshot mutated: %v", before.Catalog[0].ReferencePrice)
	}

	after, err := store.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after.Catalog[0].ReferencePrice != oldPrice+100 {
		t.Fatalf("new snapshot missing update: %v", after.Catalog[0].ReferencePrice)
	}
}

// TestStoreUpdateErrors проверяет ошибки обновления цены.
func TestStoreUpdateErrors(t *testing.T) {
	store := NewStore(DefaultDataset())

	if _, err := store.UpdateCatalogPrice("No Such Item", 100); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
	if _, err := store.UpdateCatalogPrice("Rice (Samba)", 0); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}

	empty := NewStore(nil)
	if _, err := empty.Snapshot(); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
}

// TestStoreAddCatalogItem проверяет добавление и защиту от дублей.
func TestStoreAddCatalogItem(t *testing.T) {
	store := NewStore(DefaultDataset())

	item := models.CatalogItem{
		Name:           "Jackfruit (Young)",
		Category:       "Vegetables",
		Unit:           models.UnitKilogram,
		ReferencePrice: 220,
		UsageFrequency: models.FrequencyWeekly,
	}

	if err := store.AddCatalogItem(item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.AddCatalogItem(item); !errors.Is(err, ErrDuplicateItem) {
		t.Fatalf("expected ErrDuplicateItem, got %v", err)
	}

	snapshot, err := store.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := snapshot.CatalogItem("Jackfruit (Young)"); !ok {
		t.Fatalf("expected new item in snapshot")
	}
}
