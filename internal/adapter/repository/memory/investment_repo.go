// Package memory provides in-memory repository implementations backed by
// maps and a mutex. Used by the STORE=memory server mode and the HTTP tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fekaduabera/Financial-Freedom/internal/domain"
)

// InvestmentRepo implements domain.InvestmentRepository in memory
type InvestmentRepo struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*domain.Investment
}

// NewInvestmentRepo creates a new in-memory investment repository
func NewInvestmentRepo() *InvestmentRepo {
	return &InvestmentRepo{items: make(map[int64]*domain.Investment)}
}

func (r *InvestmentRepo) Create(ctx context.Context, investment *domain.Investment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	investment.ID = r.nextID
	stored := *investment
	r.items[investment.ID] = &stored
	return nil
}

func (r *InvestmentRepo) GetByID(ctx context.Context, id int64) (*domain.Investment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *InvestmentRepo) List(ctx context.Context) ([]*domain.Investment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	investments := make([]*domain.Investment, 0, len(r.items))
	for _, stored := range r.items {
		copied := *stored
		investments = append(investments, &copied)
	}
	// Dates use the 2006-01-02 layout, so lexical order is chronological
	sort.Slice(investments, func(i, j int) bool {
		if investments[i].Date != investments[j].Date {
			return investments[i].Date > investments[j].Date
		}
		return investments[i].ID > investments[j].ID
	})
	return investments, nil
}

func (r *InvestmentRepo) Update(ctx context.Context, investment *domain.Investment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[investment.ID]; !ok {
		return domain.ErrNotFound
	}
	stored := *investment
	r.items[investment.ID] = &stored
	return nil
}

func (r *InvestmentRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// InvestmentHistoryRepo implements domain.InvestmentHistoryRepository in memory
type InvestmentHistoryRepo struct {
	mu      sync.RWMutex
	nextID  int64
	entries []*domain.InvestmentHistory
}

// NewInvestmentHistoryRepo creates a new in-memory history repository
func NewInvestmentHistoryRepo() *InvestmentHistoryRepo {
	return &InvestmentHistoryRepo{}
}

func (r *InvestmentHistoryRepo) Append(ctx context.Context, entry *domain.InvestmentHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	entry.ID = r.nextID
	stored := *entry
	r.entries = append(r.entries, &stored)
	return nil
}

func (r *InvestmentHistoryRepo) ListByInvestment(ctx context.Context, investmentID int64) ([]*domain.InvestmentHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*domain.InvestmentHistory, 0)
	for _, stored := range r.entries {
		if stored.InvestmentID == investmentID {
			copied := *stored
			entries = append(entries, &copied)
		}
	}
	// The two entries written by a restore share a timestamp; the entry ID
	// breaks the tie so the restored snapshot lists first.
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].ChangedAt.Equal(entries[j].ChangedAt) {
			return entries[i].ChangedAt.After(entries[j].ChangedAt)
		}
		return entries[i].ID > entries[j].ID
	})
	return entries, nil
}

func (r *InvestmentHistoryRepo) GetVersion(ctx context.Context, investmentID int64, version int) (*domain.InvestmentHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, stored := range r.entries {
		if stored.InvestmentID == investmentID && stored.Version == version {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}
