package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aiflow/aiflow/pkg/persistence"
	"github.com/aiflow/aiflow/pkg/persistence/memory"
	"github.com/aiflow/aiflow/pkg/persistence/sequence"
)

var supportedSequenceProviders = []string{"memory", "redis", "rediss"}

var ErrUnsupportedSequence = errors.New("unsupported sequence provider")

// NewPersistence builds the in-memory stores. sequenceURL selects the
// identifier allocator: empty or "memory" keeps counters in process,
// "redis://..." shares them across replicas.
func NewPersistence(ctx context.Context, sequenceURL string) (persistence.Persistence, error) {
	switch parseSequenceProvider(sequenceURL) {
	case "memory":
		return memory.NewPersistence(), nil
	case "redis", "rediss":
		ids, err := sequence.NewRedis(ctx, sequenceURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect sequence store: %w", err)
		}

		return memory.NewPersistenceWithAllocator(ids), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSequence, sequenceURL)
	}
}

func parseSequenceProvider(sequenceURL string) string {
	if sequenceURL == "" {
		return "memory"
	}

	provider, _, _ := strings.Cut(sequenceURL, "://")
	for _, supported := range supportedSequenceProviders {
		if provider == supported {
			return provider
		}
	}

	return ""
}
