package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/shoecard/internal/domain/models"
)

// ErrNotFound is returned when no shoe matches the requested slug.
var ErrNotFound = errors.New("shoe not found")

// Source supplies shoe records. Implementations are read-only.
type Source interface {
	ListShoes(ctx context.Context) ([]models.Shoe, error)
}

// SortOrder controls listing order.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortPrice  SortOrder = "price"
)

// ParseSortOrder maps a query value onto a SortOrder, defaulting to newest.
func ParseSortOrder(raw string) SortOrder {
	if SortOrder(raw) == SortPrice {
		return SortPrice
	}
	return SortNewest
}

// Service keeps an in-memory snapshot of the catalog.
type Service struct {
	source Source
	logger *zap.Logger

	// refreshMu serializes loads so an older load never replaces a newer one.
	refreshMu sync.Mutex

	mu        sync.RWMutex
	shoes     []models.Shoe
	bySlug    map[string]int
	loadedAt  time.Time
	lastError error
}

// NewService wires a catalog service around a source. Call Refresh to load.
func NewService(source Source, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, logger: logger, bySlug: map[string]int{}}
}

// Refresh reloads the snapshot. On failure the previous snapshot is kept.
func (s *Service) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	shoes, err := s.source.ListShoes(ctx)
	if err != nil {
		s.mu.Lock()
		s.lastError = err
		s.mu.Unlock()
		return fmt.Errorf("refresh catalog: %w", err)
	}

	index := make(map[string]int, len(shoes))
	kept := make([]models.Shoe, 0, len(shoes))
	for _, shoe := range shoes {
		if shoe.Slug == "" {
			s.logger.Debug("skip shoe without slug", zap.String("name", shoe.Name))
			continue
		}
		if _, dup := index[shoe.Slug]; dup {
			s.logger.Warn("duplicate slug, keeping first", zap.String("slug", shoe.Slug))
			continue
		}
		index[shoe.Slug] = len(kept)
		kept = append(kept, shoe)
	}

	s.mu.Lock()
	s.shoes = kept
	s.bySlug = index
	s.loadedAt = time.Now()
	s.lastError = nil
	s.mu.Unlock()

	s.logger.Info("catalog refreshed", zap.Int("shoes", len(kept)))
	return nil
}

// List returns a copy of the snapshot in the requested order.
func (s *Service) List(order SortOrder) []models.Shoe {
	s.mu.RLock()
	out := make([]models.Shoe, len(s.shoes))
	copy(out, s.shoes)
	s.mu.RUnlock()

	switch order {
	case SortPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice() < out[j].EffectivePrice()
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ReleaseDate.After(out[j].ReleaseDate)
		})
	}
	return out
}

// Get looks a shoe up by slug.
func (s *Service) Get(slug string) (models.Shoe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.bySlug[slug]
	if !ok {
		return models.Shoe{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return s.shoes[i], nil
}

// Status reports the snapshot size, load time and last refresh error.
func (s *Service) Status() (count int, loadedAt time.Time, lastErr error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.shoes), s.loadedAt, s.lastError
}
