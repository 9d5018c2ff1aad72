package mocks

import (
	"context"

	"github.com/aiflow/aiflow/pkg/models"
	"github.com/aiflow/aiflow/pkg/persistence"
	"github.com/stretchr/testify/mock"
)

// MockWorkflowRepository is a mock implementation of persistence.WorkflowRepository interface.
type MockWorkflowRepository struct {
	mock.Mock
}

func (m *MockWorkflowRepository) List(ctx context.Context) ([]*models.Workflow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*models.Workflow), args.Error(1)
}

func (m *MockWorkflowRepository) Create(ctx context.Context, name, description string, steps []string) (*models.Workflow, error) {
	args := m.Called(ctx, name, description, steps)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Workflow), args.Error(1)
}

func (m *MockWorkflowRepository) GetByID(ctx context.Context, id int64) (*models.Workflow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Workflow), args.Error(1)
}

func (m *MockWorkflowRepository) Update(ctx context.Context, id int64, update models.WorkflowUpdate) (*models.Workflow, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Workflow), args.Error(1)
}

func (m *MockWorkflowRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

// MockCanvasRepository is a mock implementation of persistence.CanvasRepository interface.
type MockCanvasRepository struct {
	mock.Mock
}

func (m *MockCanvasRepository) GetByWorkflowID(ctx context.Context, workflowID int64) (*models.WorkflowCanvas, error) {
	args := m.Called(ctx, workflowID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.WorkflowCanvas), args.Error(1)
}

func (m *MockCanvasRepository) Save(
	ctx context.Context,
	workflowID int64,
	canvas *models.WorkflowCanvas,
) (*models.WorkflowCanvas, error) {
	args := m.Called(ctx, workflowID, canvas)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.WorkflowCanvas), args.Error(1)
}

// MockAIModuleRepository is a mock implementation of persistence.AIModuleRepository interface.
type MockAIModuleRepository struct {
	mock.Mock
}

func (m *MockAIModuleRepository) List(ctx context.Context) ([]*models.AIModule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*models.AIModule), args.Error(1)
}

func (m *MockAIModuleRepository) Create(
	ctx context.Context,
	name, moduleType, description string,
	config map[string]any,
) (*models.AIModule, error) {
	args := m.Called(ctx, name, moduleType, description, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.AIModule), args.Error(1)
}

func (m *MockAIModuleRepository) GetByID(ctx context.Context, id int64) (*models.AIModule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.AIModule), args.Error(1)
}

// MockPersistence is a mock implementation of persistence.Persistence interface.
type MockPersistence struct {
	mock.Mock

	Workflows *MockWorkflowRepository
	Canvases  *MockCanvasRepository
	AIModules *MockAIModuleRepository
}

// NewMockPersistence returns a MockPersistence whose repositories are fresh mocks.
func NewMockPersistence() *MockPersistence {
	return &MockPersistence{
		Workflows: &MockWorkflowRepository{},
		Canvases:  &MockCanvasRepository{},
		AIModules: &MockAIModuleRepository{},
	}
}

//nolint:ireturn
func (m *MockPersistence) WorkflowRepository() persistence.WorkflowRepository {
	return m.Workflows
}

//nolint:ireturn
func (m *MockPersistence) CanvasRepository() persistence.CanvasRepository {
	return m.Canvases
}

//nolint:ireturn
func (m *MockPersistence) AIModuleRepository() persistence.AIModuleRepository {
	return m.AIModules
}

func (m *MockPersistence) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

func (m *MockPersistence) Close(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}
