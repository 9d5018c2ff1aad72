package services

import (
	"errors"
	"testing"

	"github.com/aiflow/aiflow/pkg/mocks"
	"github.com/aiflow/aiflow/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errStorage = errors.New("storage unavailable")

func TestWorkflow_HealthCheckUnhealthy(t *testing.T) {
	p := mocks.NewMockPersistence()
	p.On("HealthCheck", mock.Anything).Return(errStorage)

	msg, ok := NewWorkflow(p, nil).HealthCheck(t.Context())
	assert.False(t, ok)
	assert.Contains(t, msg, "storage unavailable")

	msg, ok = NewWorkflow(nil, nil).HealthCheck(t.Context())
	assert.False(t, ok)
	assert.Equal(t, "Persistence layer not initialized", msg)
}

func TestWorkflow_RepositoryFailures(t *testing.T) {
	p := mocks.NewMockPersistence()
	p.Workflows.On("List", mock.Anything).Return(nil, errStorage)
	p.Workflows.On("Create", mock.Anything, "wf", "", []string{}).Return(nil, errStorage)
	p.Workflows.On("Delete", mock.Anything, int64(1)).Return(false, errStorage)

	service := NewWorkflow(p, nil)

	_, err := service.List(t.Context())
	require.ErrorIs(t, err, errStorage)

	_, err = service.Create(t.Context(), "wf", "", nil)
	require.ErrorIs(t, err, errStorage)
	assert.False(t, IsValidationError(err))
	assert.False(t, IsNotFoundError(err))

	err = service.Delete(t.Context(), 1)
	require.ErrorIs(t, err, errStorage)

	p.Workflows.AssertExpectations(t)
}

func TestWorkflow_PublishesThroughEventBus(t *testing.T) {
	p := mocks.NewMockPersistence()
	p.Workflows.On("Create", mock.Anything, "wf", "d", []string{"s"}).
		Return(&models.Workflow{ID: 5, Name: "wf", Description: "d", Steps: []string{"s"}}, nil)

	bus := &mocks.MockEventBus{}
	bus.On("Publish", mock.Anything, "workflow-5", mock.AnythingOfType("events.WorkflowCreated")).Return(nil)

	created, err := NewWorkflow(p, bus).Create(t.Context(), "wf", "d", []string{"s"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)

	bus.AssertExpectations(t)
}

func TestCanvas_RepositoryFailure(t *testing.T) {
	p := mocks.NewMockPersistence()
	p.Canvases.On("Save", mock.Anything, int64(1), mock.Anything).Return(nil, errStorage)
	p.Canvases.On("GetByWorkflowID", mock.Anything, int64(1)).Return(nil, errStorage)

	service := NewCanvas(p, nil)

	_, err := service.Save(t.Context(), 1, &models.WorkflowCanvas{})
	require.ErrorIs(t, err, errStorage)
	assert.False(t, IsNotFoundError(err))

	_, err = service.FetchByWorkflowID(t.Context(), 1)
	require.ErrorIs(t, err, errStorage)
}

func TestDispatcher_RepositoryFailure(t *testing.T) {
	p := mocks.NewMockPersistence()
	p.AIModules.On("GetByID", mock.Anything, int64(1)).Return(nil, errStorage)

	bus := &mocks.MockEventBus{}

	_, err := NewDispatcher(p, WithPublisher(bus)).Run(t.Context(), 1, nil)
	require.ErrorIs(t, err, errStorage)
	assert.False(t, IsNotFoundError(err))
	assert.False(t, IsCollaboratorError(err))

	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestAIModule_SeedStopsOnFailure(t *testing.T) {
	p := mocks.NewMockPersistence()
	p.AIModules.On("Create", mock.Anything, "Text Generator", models.AIModuleTypeTextGeneration, mock.Anything, mock.Anything).
		Return(nil, errStorage)

	seeded, err := NewAIModule(p, nil).Seed(t.Context())
	require.ErrorIs(t, err, errStorage)
	assert.Empty(t, seeded)
	p.AIModules.AssertNumberOfCalls(t, "Create", 1)
}
