package main

import (
	"context"
	"os"

	"github.com/aiflow/aiflow/pkg/cmd"
	"github.com/aiflow/aiflow/pkg/config"
	"github.com/aiflow/aiflow/pkg/log"
	"github.com/aiflow/aiflow/pkg/otelhelper"
	"github.com/aiflow/aiflow/pkg/services"
	cli "github.com/urfave/cli/v3"
)

func main() {
	command := &cli.Command{
		Name:                  "aiflow-api",
		Usage:                 "Serve workflows, canvases and AI modules",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on (defaults to server.port from settings)",
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a JSON, YAML or TOML settings file",
				Value:   "config.json",
				Sources: cli.EnvVars("AIFLOW_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "sequence-url",
				Usage:   "Identifier allocator: memory (default) or redis://host:port/db",
				Sources: cli.EnvVars("SEQUENCE_URL"),
			},
			&cli.StringFlag{
				Name:    "event-bus",
				Usage:   "Event bus type (gochannel, kafka)",
				Value:   "gochannel",
				Sources: cli.EnvVars("EVENT_BUS_TYPE"),
			},
			&cli.StringFlag{
				Name:    "kafka-brokers",
				Usage:   "Comma separated Kafka brokers for the kafka event bus",
				Sources: cli.EnvVars("KAFKA_BROKERS"),
			},
			&cli.StringFlag{
				Name:    "ollama-url",
				Usage:   "Ollama generate endpoint",
				Sources: cli.EnvVars("OLLAMA_URL"),
			},
			&cli.StringFlag{
				Name:    "openai-api-key",
				Usage:   "OpenAI API key; enables the openai provider",
				Sources: cli.EnvVars("OPENAI_API_KEY"),
			},
			&cli.DurationFlag{
				Name:    "generation-timeout",
				Usage:   "Upper bound for a single generation call (defaults to ai_models.generation_timeout)",
				Sources: cli.EnvVars("GENERATION_TIMEOUT"),
			},
			&cli.BoolFlag{
				Name:    "tracing",
				Usage:   "Export traces over OTLP/HTTP",
				Sources: cli.EnvVars("TRACING"),
			},
			&cli.BoolFlag{
				Name:  "seed-modules",
				Usage: "Register the default Text Generator and Image Processor modules on startup",
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger := log.WithModule("api")

			settings, err := config.Load(command.String("config"))
			if err != nil {
				return err
			}

			appName := settings.String(config.KeyAppName)
			logger.InfoContext(ctx, "Initializing "+appName+" API")

			if !settings.Loaded {
				logger.WarnContext(ctx, "Settings file not found, using defaults", "path", command.String("config"))
			}

			if command.Bool("tracing") {
				tracerProvider, err := otelhelper.Init(ctx, appName)
				if err != nil {
					return err
				}

				defer func() {
					if err := tracerProvider.Shutdown(context.Background()); err != nil {
						logger.ErrorContext(ctx, "Failed to shutdown tracer provider", "error", err)
					}
				}()
			}

			persistence, err := cmd.NewPersistence(ctx, command.String("sequence-url"))
			if err != nil {
				return err
			}

			defer func() {
				err := persistence.Close(ctx)
				if err != nil {
					logger.ErrorContext(ctx, "Failed to close persistence", "error", err)
				}
			}()

			eventBus, err := cmd.NewEventBus(command.String("event-bus"), command.String("kafka-brokers"), logger)
			if err != nil {
				return err
			}

			defer func() {
				if err := eventBus.Close(); err != nil {
					logger.ErrorContext(ctx, "Failed to close event bus", "error", err)
				}
			}()

			generators := cmd.NewGenerators(settings, cmd.GeneratorOptions{
				OllamaURL:    command.String("ollama-url"),
				OpenAIAPIKey: command.String("openai-api-key"),
			}, logger)

			timeout := command.Duration("generation-timeout")
			if timeout <= 0 {
				timeout = settings.Duration(config.KeyGenerationTimeout)
			}

			api := NewAPI(
				logger,
				appName,
				persistence,
				eventBus,
				services.WithGenerators(generators, timeout),
				services.WithDefaultModel(settings.String(config.KeyDefaultTextModel)),
			)

			if err := api.WatchEvents(ctx); err != nil {
				return err
			}

			if command.Bool("seed-modules") {
				if err := api.Seed(ctx); err != nil {
					return err
				}
			}

			port := command.Int("port")
			if !command.IsSet("port") {
				port = settings.Int(config.KeyServerPort)
			}

			err = api.Start(settings.String(config.KeyServerHost), port)
			if err != nil {
				logger.ErrorContext(ctx, "Failed to start API server", "error", err)
			}

			return nil
		},
	}

	err := command.Run(context.Background(), os.Args)
	if err != nil {
		panic(err)
	}
}
