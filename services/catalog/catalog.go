package catalog

import (
	"context"
	"sync"
	"time"

	"tourvia/database/repository/tours"
	"tourvia/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service maintains a live mirror of the remote tour collection and a
// derived filtered view. The cache is owned here; consumers read snapshots
// or subscribe for replacements rather than sharing mutable state.
type Service interface {
	Snapshot() []models.Tour
	GetByID(id string) (*models.Tour, bool)
	Filter(criteria *models.FilterCriteria) []models.Tour
	Subscribe() (string, <-chan []models.Tour)
	Unsubscribe(id string)
	Run(ctx context.Context)
}

// DefaultCatalogService implements Service on top of a TourRepository
// live subscription. Each delivered snapshot replaces the cached set
// wholesale (last write wins, no merge).
type DefaultCatalogService struct {
	Repo   tours.TourRepository
	Logger *zap.Logger

	mu    sync.RWMutex
	tours []models.Tour
	subs  map[string]chan []models.Tour
}

// NewCatalogService creates a catalog service around the given repository.
func NewCatalogService(repo tours.TourRepository, logger *zap.Logger) *DefaultCatalogService {
	return &DefaultCatalogService{
		Repo:   repo,
		Logger: logger,
		subs:   make(map[string]chan []models.Tour),
	}
}

// Run attaches to the live tour stream and keeps the mirror current until
// ctx is cancelled. Stream failures are retried with a fixed backoff.
func (s *DefaultCatalogService) Run(ctx context.Context) {
	for {
		err := s.Repo.Listen(ctx, s.Replace)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			s.Logger.Error("catalog: tour subscription failed, retrying", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}

// Replace swaps the cached tour set for the given snapshot and notifies
// subscribers. Slow subscribers are skipped; they read the next snapshot.
func (s *DefaultCatalogService) Replace(snapshot []models.Tour) {
	s.mu.Lock()
	s.tours = snapshot
	subs := make([]chan []models.Tour, 0, len(s.subs))
	for _, ch := range s.subs {
		subs = append(subs, ch)
	}
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- snapshot:
		default:
		}
	}
}

// Snapshot returns the current tour set.
func (s *DefaultCatalogService) Snapshot() []models.Tour {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Tour, len(s.tours))
	copy(out, s.tours)
	return out
}

// GetByID returns the cached tour with the given ID, if present.
func (s *DefaultCatalogService) GetByID(id string) (*models.Tour, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.tours {
		if s.tours[i].ID == id {
			t := s.tours[i]
			return &t, true
		}
	}
	return nil, false
}

// Subscribe registers a subscriber channel receiving each replacement snapshot.
func (s *DefaultCatalogService) Subscribe() (string, <-chan []models.Tour) {
	id := uuid.New().String()
	ch := make(chan []models.Tour, 1)

	s.mu.Lock()
	s.subs[id] = ch
	s.mu.Unlock()

	return id, ch
}

// Unsubscribe removes and closes a subscriber channel.
func (s *DefaultCatalogService) Unsubscribe(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := s.subs[id]; ok {
		close(ch)
		delete(s.subs, id)
	}
}
