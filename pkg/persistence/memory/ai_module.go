package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/aiflow/aiflow/pkg/models"
	"github.com/aiflow/aiflow/pkg/persistence/sequence"
)

// AIModuleRepository keeps AI modules in creation order.
type AIModuleRepository struct {
	mu      sync.RWMutex
	ids     sequence.Allocator
	modules []*models.AIModule
}

// NewAIModuleRepository creates a new AI module repository.
func NewAIModuleRepository(ids sequence.Allocator) *AIModuleRepository {
	return &AIModuleRepository{
		ids:     ids,
		modules: make([]*models.AIModule, 0),
	}
}

func (r *AIModuleRepository) List(_ context.Context) ([]*models.AIModule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.AIModule, 0, len(r.modules))
	for _, module := range r.modules {
		result = append(result, module.Clone())
	}

	return result, nil
}

func (r *AIModuleRepository) Create(
	ctx context.Context,
	name, moduleType, description string,
	config map[string]any,
) (*models.AIModule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.ids.Next(ctx, sequence.KindAIModule)
	if err != nil {
		return nil, err
	}

	module := &models.AIModule{
		ID:          id,
		Name:        name,
		Type:        moduleType,
		Description: description,
		Config:      maps.Clone(config),
	}

	if module.Config == nil {
		module.Config = map[string]any{}
	}

	r.modules = append(r.modules, module)

	return module.Clone(), nil
}

func (r *AIModuleRepository) GetByID(_ context.Context, id int64) (*models.AIModule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := slices.IndexFunc(r.modules, func(m *models.AIModule) bool {
		return m.ID == id
	})
	if idx < 0 {
		return nil, nil
	}

	return r.modules[idx].Clone(), nil
}
