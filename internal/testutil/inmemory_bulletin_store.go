package testutil

import (
	"context"
	"sync"

	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/bulletin"
	ierr "github.com/lukilot/bawaria-motors-configurator-sub000/internal/errors"
)

// InMemoryBulletinStore implements bulletin.Repository
type InMemoryBulletinStore struct {
	mu        sync.RWMutex
	bulletins map[string]*bulletin.Bulletin
	order     []string
}

// NewInMemoryBulletinStore creates a new in-memory bulletin store
func NewInMemoryBulletinStore() *InMemoryBulletinStore {
	return &InMemoryBulletinStore{
		bulletins: make(map[string]*bulletin.Bulletin),
	}
}

func copyBulletin(b *bulletin.Bulletin) *bulletin.Bulletin {
	if b == nil {
		return nil
	}

	copied := *b
	copied.Rules = make([]*bulletin.Rule, len(b.Rules))
	for i, r := range b.Rules {
		rule := *r
		copied.Rules[i] = &rule
	}
	return &copied
}

func (s *InMemoryBulletinStore) Create(ctx context.Context, b *bulletin.Bulletin) error {
	if b == nil {
		return ierr.NewError("bulletin cannot be nil").
			WithHint("Bulletin cannot be nil").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bulletins[b.ID]; exists {
		return ierr.NewError("bulletin already exists").
			WithHint("Bulletin already exists").
			WithReportableDetails(map[string]interface{}{
				"id": b.ID,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	s.bulletins[b.ID] = copyBulletin(b)
	s.order = append(s.order, b.ID)
	return nil
}

func (s *InMemoryBulletinStore) Get(ctx context.Context, id string) (*bulletin.Bulletin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bulletins[id]
	if !ok {
		return nil, ierr.NewError("bulletin not found").
			WithHint("Bulletin not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyBulletin(b), nil
}

func (s *InMemoryBulletinStore) Update(ctx context.Context, b *bulletin.Bulletin) error {
	if b == nil {
		return ierr.NewError("bulletin cannot be nil").
			WithHint("Bulletin cannot be nil").
			Mark(ierr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bulletins[b.ID]; !ok {
		return ierr.NewError("bulletin not found").
			WithHint("Bulletin not found").
			Mark(ierr.ErrNotFound)
	}

	s.bulletins[b.ID] = copyBulletin(b)
	return nil
}

func (s *InMemoryBulletinStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bulletins[id]; !ok {
		return ierr.NewError("bulletin not found").
			WithHint("Bulletin not found").
			Mark(ierr.ErrNotFound)
	}

	delete(s.bulletins, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *InMemoryBulletinStore) List(ctx context.Context) ([]*bulletin.Bulletin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*bulletin.Bulletin, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, copyBulletin(s.bulletins[id]))
	}
	return items, nil
}

func (s *InMemoryBulletinStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bulletins = make(map[string]*bulletin.Bulletin)
	s.order = nil
}
