package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aiflow/aiflow/pkg/eventbus"
	"github.com/aiflow/aiflow/pkg/events"
	"github.com/aiflow/aiflow/pkg/log"
	"github.com/aiflow/aiflow/pkg/models"
	"github.com/aiflow/aiflow/pkg/modules"
	"github.com/aiflow/aiflow/pkg/otelhelper"
	"github.com/aiflow/aiflow/pkg/persistence"
	"github.com/aiflow/aiflow/pkg/textgen"
	"go.opentelemetry.io/otel/attribute"
)

// DefaultGenerationTimeout bounds generator calls when WithGenerators gets no timeout.
const DefaultGenerationTimeout = 30 * time.Second

// Dispatcher runs an input payload through the execution logic of a module's kind.
type Dispatcher struct {
	persistence  persistence.Persistence
	handlers     modules.Handlers
	generators   *textgen.Registry
	timeout      time.Duration
	defaultModel string
	publisher    eventbus.EventPublisher
	logger       *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithGenerators enables real generation for text generation modules whose
// config names one of the registered providers. Every call is bounded by timeout.
func WithGenerators(registry *textgen.Registry, timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.generators = registry
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// WithDefaultModel sets the model passed to a generator when the module config has none.
func WithDefaultModel(model string) DispatcherOption {
	return func(d *Dispatcher) {
		if model != "" {
			d.defaultModel = model
		}
	}
}

// WithPublisher sets where module.executed events go.
func WithPublisher(publisher eventbus.EventPublisher) DispatcherOption {
	return func(d *Dispatcher) {
		d.publisher = publisher
	}
}

// WithHandlers replaces the kind -> handler table.
func WithHandlers(handlers modules.Handlers) DispatcherOption {
	return func(d *Dispatcher) {
		d.handlers = handlers
	}
}

// NewDispatcher builds a dispatcher with the placeholder handlers installed, then applies opts.
func NewDispatcher(persistence persistence.Persistence, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		persistence:  persistence,
		handlers:     modules.DefaultHandlers(),
		defaultModel: modules.DefaultModel,
		timeout:      DefaultGenerationTimeout,
		logger:       log.WithModule("dispatcher"),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Run executes module moduleID against input. Only an unknown module id or a
// failed generator call is an error; unknown module types answer with a notice.
func (d *Dispatcher) Run(ctx context.Context, moduleID int64, input map[string]any) (string, error) {
	ctx, span := otelhelper.StartSpan(ctx, "ai_module.run", attribute.Int64(otelhelper.ModuleIDKey, moduleID))
	defer span.End()

	module, err := d.persistence.AIModuleRepository().GetByID(ctx, moduleID)
	if err != nil {
		otelhelper.SetError(span, err)

		return "", fmt.Errorf("failed to get ai module: %w", err)
	}

	if module == nil {
		err := persistence.NewAIModuleError("Run", moduleID, ErrAIModuleNotFound)
		otelhelper.SetError(span, err)

		return "", err
	}

	if input == nil {
		input = map[string]any{}
	}

	kind := modules.ParseKind(module.Type)
	span.SetAttributes(attribute.String(otelhelper.ModuleTypeKey, module.Type))

	start := time.Now()
	handler, generated := d.handlerFor(kind, module)

	result, err := handler(ctx, module, input)
	if err != nil {
		otelhelper.SetError(span, err, attribute.String(otelhelper.ModuleTypeKey, module.Type))

		failed := events.AIModuleRunFailed{
			BaseEvent:  events.NewBaseEvent(events.AIModuleRunFailedEvent),
			ModuleID:   module.ID,
			ModuleType: module.Type,
			Error:      err.Error(),
		}
		publish(ctx, d.publisher, d.logger, moduleKey(module.ID), failed)

		d.logger.ErrorContext(ctx, "ai module run failed", "module_id", module.ID, "type", module.Type, "error", err)

		if textgen.IsGenerationFailed(err) {
			return "", NewCollaboratorError("Run", err)
		}

		return "", fmt.Errorf("failed to run ai module %d: %w", module.ID, err)
	}

	span.SetAttributes(attribute.Int(otelhelper.GeneratedTextSize, len(result)))

	completed := events.AIModuleRunCompleted{
		BaseEvent:  events.NewBaseEvent(events.AIModuleRunCompletedEvent),
		ModuleID:   module.ID,
		ModuleType: module.Type,
		Generated:  generated,
		Duration:   time.Since(start),
	}
	publish(ctx, d.publisher, d.logger, moduleKey(module.ID), completed)

	d.logger.DebugContext(ctx, "ai module run completed",
		"module_id", module.ID,
		"kind", kind.String(),
		"generated", generated,
	)

	return result, nil
}

func (d *Dispatcher) handlerFor(kind modules.Kind, module *models.AIModule) (modules.Handler, bool) {
	if kind == modules.KindTextGeneration {
		provider := module.ConfigString(modules.ProviderKey, "")
		if provider != "" {
			if generator, ok := d.generators.Get(provider); ok {
				return d.generate(provider, textgen.WithTimeout(generator, d.timeout)), true
			}

			d.logger.Warn("provider not registered, using placeholder generation",
				"module_id", module.ID, "provider", provider)
		}
	}

	return d.handlers.Lookup(kind), false
}

func (d *Dispatcher) generate(provider string, generator textgen.Generator) modules.Handler {
	return func(ctx context.Context, module *models.AIModule, input map[string]any) (string, error) {
		model := module.ConfigString(modules.ModelKey, d.defaultModel)

		ctx, span := otelhelper.StartSpan(ctx, "textgen.generate",
			attribute.String(otelhelper.ProviderKey, provider),
			attribute.String(otelhelper.ModelKey, model),
		)
		defer span.End()

		text, err := generator.Generate(ctx, model, prompt(input))
		if err != nil {
			otelhelper.SetError(span, err)

			return "", err
		}

		return text, nil
	}
}

// prompt prefers input["prompt"] and falls back to input["input_text"].
func prompt(input map[string]any) string {
	if p, ok := input[modules.PromptKey]; ok && p != nil {
		return fmt.Sprint(p)
	}

	return fmt.Sprint(modules.InputText(input))
}
