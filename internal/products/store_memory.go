package products

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemStore keeps products in process memory, in insertion order.
// Mutations take the write lock, so readers never see a half-applied change.
type MemStore struct {
	mu    sync.RWMutex
	byID  map[string]Product
	order []string
	newID func() string
}

func NewMemStore(seed ...Product) *MemStore {
	s := &MemStore{
		byID:  make(map[string]Product, len(seed)),
		order: make([]string, 0, len(seed)),
		newID: uuid.NewString,
	}
	for _, p := range seed {
		if _, dup := s.byID[p.ID]; dup {
			continue
		}
		s.byID[p.ID] = p
		s.order = append(s.order, p.ID)
	}
	return s
}

func NewStore() Store {
	return NewMemStore(SeedProducts()...)
}

func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func (s *MemStore) List(_ context.Context, q ListQuery) (ListResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]Product, 0, len(s.order))
	for _, id := range s.order {
		p := s.byID[id]
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		filtered = append(filtered, p)
	}

	page := q.Page
	if page == 0 {
		page = 1
	}
	limit := q.Limit
	if limit == 0 {
		limit = len(filtered)
	}

	start, end := sliceBounds(len(filtered), (page-1)*limit, (page-1)*limit+limit)

	return ListResult{
		Total:    len(filtered),
		Page:     page,
		Limit:    limit,
		Products: filtered[start:end],
	}, nil
}

// sliceBounds clamps [start, end) into [0, n]. Negative bounds count back
// from n.
func sliceBounds(n, start, end int) (int, int) {
	clamp := func(i int) int {
		if i < 0 {
			i += n
			if i < 0 {
				return 0
			}
		}
		if i > n {
			return n
		}
		return i
	}

	start, end = clamp(start), clamp(end)
	if end < start {
		end = start
	}
	return start, end
}

func (s *MemStore) Get(_ context.Context, id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (s *MemStore) Create(_ context.Context, f Fields) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	for {
		if _, taken := s.byID[id]; !taken {
			break
		}
		id = s.newID()
	}

	p := f.withID(id)
	s.byID[id] = p
	s.order = append(s.order, id)
	return p, nil
}

func (s *MemStore) Update(_ context.Context, id string, f Fields) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return Product{}, ErrNotFound
	}

	p := f.withID(id)
	s.byID[id] = p
	return p, nil
}

func (s *MemStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}

	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemStore) Search(_ context.Context, name string) ([]Product, error) {
	needle := strings.ToLower(name)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0)
	for _, id := range s.order {
		p := s.byID[id]
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStore) Stats(_ context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, p := range s.byID {
		counts[p.Category]++
	}
	return Stats{CountByCategory: counts, Total: len(s.byID)}, nil
}
