package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fekaduabera/Financial-Freedom/internal/domain"
)

// GoalRepo implements domain.GoalRepository in memory
type GoalRepo struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*domain.Goal
}

// NewGoalRepo creates a new in-memory goal repository
func NewGoalRepo() *GoalRepo {
	return &GoalRepo{items: make(map[int64]*domain.Goal)}
}

func (r *GoalRepo) Create(ctx context.Context, goal *domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	goal.ID = r.nextID
	stored := *goal
	r.items[goal.ID] = &stored
	return nil
}

func (r *GoalRepo) GetByID(ctx context.Context, id int64) (*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (r *GoalRepo) ListActive(ctx context.Context) ([]*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := make([]*domain.Goal, 0, len(r.items))
	for _, stored := range r.items {
		if !stored.IsActive {
			continue
		}
		copied := *stored
		goals = append(goals, &copied)
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].ID < goals[j].ID
	})
	return goals, nil
}

func (r *GoalRepo) Update(ctx context.Context, goal *domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[goal.ID]; !ok {
		return domain.ErrNotFound
	}
	stored := *goal
	r.items[goal.ID] = &stored
	return nil
}
