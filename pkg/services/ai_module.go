package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aiflow/aiflow/pkg/eventbus"
	"github.com/aiflow/aiflow/pkg/events"
	"github.com/aiflow/aiflow/pkg/log"
	"github.com/aiflow/aiflow/pkg/models"
	"github.com/aiflow/aiflow/pkg/modules"
	"github.com/aiflow/aiflow/pkg/persistence"
)

// DefaultModules is the built-in module library registered by Seed.
var DefaultModules = []models.AIModule{
	{
		Name:        "Text Generator",
		Type:        models.AIModuleTypeTextGeneration,
		Description: "Generates text based on prompts",
		Config:      map[string]any{modules.ModelKey: modules.GPT2Model},
	},
	{
		Name:        "Image Processor",
		Type:        models.AIModuleTypeImageClassification,
		Description: "Processes images with AI filters",
		Config:      map[string]any{},
	},
}

type AIModule struct {
	persistence persistence.Persistence
	publisher   eventbus.EventPublisher
	logger      *slog.Logger
}

// NewAIModule returns the AI-module registry service.
func NewAIModule(persistence persistence.Persistence, publisher eventbus.EventPublisher) *AIModule {
	return &AIModule{
		persistence: persistence,
		publisher:   publisher,
		logger:      log.WithModule("ai_module_service"),
	}
}

func (s *AIModule) List(ctx context.Context) ([]*models.AIModule, error) {
	list, err := s.persistence.AIModuleRepository().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ai modules: %w", err)
	}

	return list, nil
}

// Create registers a module. The type is stored verbatim; unknown types are accepted.
func (s *AIModule) Create(
	ctx context.Context,
	name, moduleType, description string,
	config map[string]any,
) (*models.AIModule, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError("CreateAIModule", "MODULE_NAME_REQUIRED", "ai module name is required", ErrModuleNameRequired)
	}

	if strings.TrimSpace(moduleType) == "" {
		return nil, NewValidationError("CreateAIModule", "MODULE_TYPE_REQUIRED", "ai module type is required", ErrModuleTypeRequired)
	}

	module, err := s.persistence.AIModuleRepository().Create(ctx, name, moduleType, description, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create ai module: %w", err)
	}

	event := events.AIModuleCreated{BaseEvent: events.NewBaseEvent(events.AIModuleCreatedEvent), Module: module}
	publish(ctx, s.publisher, s.logger, moduleKey(module.ID), event)

	if modules.ParseKind(module.Type) == modules.KindUnknown {
		s.logger.WarnContext(ctx, "ai module registered with a type that has no execution logic",
			"module_id", module.ID, "type", module.Type)
	}

	return module, nil
}

func (s *AIModule) FetchByID(ctx context.Context, id int64) (*models.AIModule, error) {
	module, err := s.persistence.AIModuleRepository().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if module == nil {
		return nil, persistence.NewAIModuleError("FetchByID", id, ErrAIModuleNotFound)
	}

	return module, nil
}

// Seed registers DefaultModules.
func (s *AIModule) Seed(ctx context.Context) ([]*models.AIModule, error) {
	seeded := make([]*models.AIModule, 0, len(DefaultModules))

	for _, m := range DefaultModules {
		module, err := s.Create(ctx, m.Name, m.Type, m.Description, m.Config)
		if err != nil {
			return seeded, fmt.Errorf("failed to seed module %q: %w", m.Name, err)
		}

		seeded = append(seeded, module)
	}

	return seeded, nil
}

func moduleKey(id int64) string {
	return "ai-module-" + strconv.FormatInt(id, 10)
}
