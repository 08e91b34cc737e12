package refdata

import (
	"errors"
	"sync"

	"example.com/kitchen-planner/backend/internal/models"
)

var (
	ErrNotLoaded     = errors.New("reference data not loaded")
	ErrUnknownItem   = errors.New("unknown catalog item")
	ErrDuplicateItem = errors.New("catalog item already exists")
	ErrInvalidPrice  = errors.New("price must be greater than 0")
)

// Store хранит справочные данные и выдает их неизменяемыми снимками.
// Запись идет через единственного писателя: каждое изменение собирает
// новый снимок и атомарно подменяет указатель, читатели никогда не
// видят частично обновленные таблицы.
type Store struct {
	mu       sync.RWMutex
	snapshot *Dataset
}

// NewStore создает хранилище с начальным набором данных (может быть nil).
func NewStore(dataset *Dataset) *Store {
	return &Store{snapshot: dataset}
}

// Snapshot возвращает текущий снимок справочника.
func (s *Store) Snapshot() (*Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return nil, ErrNotLoaded
	}
	return s.snapshot, nil
}

// UpdateCatalogPrice публикует новый снимок с измененной рыночной ценой товара.
func (s *Store) UpdateCatalogPrice(name string, price float64) (models.CatalogItem, error) {
	if price <= 0 {
		return models.CatalogItem{}, ErrInvalidPrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot == nil {
		return models.CatalogItem{}, ErrNotLoaded
	}

	index := -1
	for i, item := range s.snapshot.Catalog {
		if item.Name == name {
			index = i
			break
		}
	}
	if index == -1 {
		return models.CatalogItem{}, ErrUnknownItem
	}

	catalog := make([]models.CatalogItem, len(s.snapshot.Catalog))
	copy(catalog, s.snapshot.Catalog)
	catalog[index].ReferencePrice = price

	next := *s.snapshot
	next.Catalog = catalog
	s.snapshot = &next

	return catalog[index], nil
}

// AddCatalogItem публикует новый снимок с добавленным товаром каталога.
func (s *Store) AddCatalogItem(item models.CatalogItem) error {
	if item.Name == "" || item.ReferencePrice <= 0 {
		return ErrInvalidPrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot == nil {
		return ErrNotLoaded
	}

	for _, existing := range s.snapshot.Catalog {
		if existing.Name == item.Name {
			return ErrDuplicateItem
		}
	}

	catalog := make([]models.CatalogItem, 0, len(s.snapshot.Catalog)+1)
	catalog = append(catalog, s.snapshot.Catalog...)
	catalog = append(catalog, item)

	next := *s.snapshot
	next.Catalog = catalog
	s.snapshot = &next

	return nil
}
