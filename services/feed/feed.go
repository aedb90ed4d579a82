package feed

import (
	"context"
	"sync"
	"time"

	"bellavie/api"
	"bellavie/models"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	defaultTTL      = 5 * time.Minute
	cleanupInterval = 10 * time.Minute
)

// Feed bundles the browse-screen resources over one shared cache. Resources
// are memoized per key so two screens asking for the same collection share
// state.
type Feed struct {
	api    *api.Client
	cache  *gocache.Cache
	logger *zap.Logger

	mu        sync.Mutex
	resources map[string]any
}

// New builds the feed layer over the API client.
func New(client *api.Client, logger *zap.Logger) *Feed {
	return &Feed{
		api:       client,
		cache:     gocache.New(defaultTTL, cleanupInterval),
		logger:    logger,
		resources: make(map[string]any),
	}
}

func resourceFor[T any](f *Feed, key string, fetch FetchFunc[T]) *Resource[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.resources[key]; ok {
		return r.(*Resource[T])
	}
	r := NewResource(f.cache, key, defaultTTL, fetch, f.logger)
	f.resources[key] = r
	return r
}

// Categories lists service categories.
func (f *Feed) Categories() *Resource[[]models.Category] {
	return resourceFor(f, "categories", func(ctx context.Context) ([]models.Category, error) {
		return f.api.ListCategories(ctx)
	})
}

// Services lists services, optionally per category.
func (f *Feed) Services(categoryID string) *Resource[[]models.Service] {
	return resourceFor(f, "services:"+categoryID, func(ctx context.Context) ([]models.Service, error) {
		return f.api.ListServices(ctx, categoryID)
	})
}

// Therapists lists therapists for a filter.
func (f *Feed) Therapists(filter api.ProviderFilter) *Resource[[]models.Provider] {
	key := "therapists:" + filter.City + ":" + filter.CategoryID + ":" + filter.ServiceID + ":" + filter.Query
	return resourceFor(f, key, func(ctx context.Context) ([]models.Provider, error) {
		return f.api.ListTherapists(ctx, filter)
	})
}

// Salons lists salons for a filter.
func (f *Feed) Salons(filter api.ProviderFilter) *Resource[[]models.Provider] {
	key := "salons:" + filter.City + ":" + filter.CategoryID + ":" + filter.ServiceID + ":" + filter.Query
	return resourceFor(f, key, func(ctx context.Context) ([]models.Provider, error) {
		return f.api.ListSalons(ctx, filter)
	})
}
