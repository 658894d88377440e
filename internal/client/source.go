package client

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/Belphemur/TVShowInfo/internal/config"
	"github.com/Belphemur/TVShowInfo/internal/models"
)

// Source defines the interface for querying a show directory
type Source interface {
	// Name identifies the source in configuration, logs and metrics.
	Name() string

	// Search returns every show the source could resolve for the name, in source order.
	// A non-2xx answer is an empty result, not an error.
	Search(ctx context.Context, name string) ([]models.Show, error)

	// TopMatch returns the best show for the name, or nil when there is none.
	TopMatch(ctx context.Context, name string) (*models.Show, error)
}

// SourceFactory is a constructor function that creates a Source from the shared client and config.
type SourceFactory func(httpClient *http.Client, cfg *config.Config) Source

var (
	mu        sync.RWMutex
	factories = make(map[string]SourceFactory)
)

// Register registers a source under the given name.
// It panics if the name is already registered or the factory is nil.
func Register(name string, f SourceFactory) {
	mu.Lock()
	defer mu.Unlock()

	if f == nil {
		panic("client: Register source factory is nil")
	}
	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("client: source %q already registered", name))
	}
	factories[name] = f
}

// NewSources creates the named sources, preserving the given priority order.
func NewSources(names []string, httpClient *http.Client, cfg *config.Config) ([]Source, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("client: no show source configured (registered: %v)", RegisteredSources())
	}

	sources := make([]Source, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("client: source %q listed twice", name)
		}
		seen[name] = struct{}{}

		mu.RLock()
		f, ok := factories[name]
		mu.RUnlock()
		if !ok {
			return nil, fmt.Errorf("client: unknown source %q (registered: %v)", name, RegisteredSources())
		}
		sources = append(sources, f(httpClient, cfg))
	}
	return sources, nil
}

// RegisteredSources returns a sorted list of registered source names.
func RegisteredSources() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
