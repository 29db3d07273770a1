package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fekaduabera/Financial-Freedom/internal/domain"
)

// ContributionRepo implements domain.ContributionRepository in memory
type ContributionRepo struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*domain.MonthlyContribution
}

// NewContributionRepo creates a new in-memory contribution repository
func NewContributionRepo() *ContributionRepo {
	return &ContributionRepo{items: make(map[int64]*domain.MonthlyContribution)}
}

func (r *ContributionRepo) Create(ctx context.Context, contribution *domain.MonthlyContribution) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	contribution.ID = r.nextID
	stored := *contribution
	r.items[contribution.ID] = &stored
	return nil
}

func (r *ContributionRepo) GetByID(ctx context.Context, id int64) (*domain.MonthlyContribution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *ContributionRepo) GetByMonth(ctx context.Context, year, month int) (*domain.MonthlyContribution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, stored := range r.items {
		if stored.Year == year && stored.Month == month {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *ContributionRepo) List(ctx context.Context) ([]*domain.MonthlyContribution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contributions := make([]*domain.MonthlyContribution, 0, len(r.items))
	for _, stored := range r.items {
		copied := *stored
		contributions = append(contributions, &copied)
	}
	sort.Slice(contributions, func(i, j int) bool {
		return contributions[i].Before(contributions[j])
	})
	return contributions, nil
}

func (r *ContributionRepo) Update(ctx context.Context, contribution *domain.MonthlyContribution) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[contribution.ID]; !ok {
		return domain.ErrNotFound
	}
	stored := *contribution
	r.items[contribution.ID] = &stored
	return nil
}

func (r *ContributionRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
