package wantlist

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/logger"
	"github.com/osse101/ArcCompanion_Go/internal/metrics"
	"github.com/osse101/ArcCompanion_Go/internal/naming"
	"github.com/osse101/ArcCompanion_Go/internal/repository"
)

// Service manages the persisted want-list and expands it against the current
// item snapshot.
type Service interface {
	List(ctx context.Context) ([]domain.WantListEntry, error)
	Add(ctx context.Context, itemRef string, qty int, reason string) (*domain.WantListEntry, error)
	Remove(ctx context.Context, id string) error

	// Resolve expands every stored entry.
	Resolve(ctx context.Context, ignoredCategories []string) ([]domain.WantListResolvedEntry, error)
	// Expand resolves ad-hoc entries without storing them.
	Expand(ctx context.Context, entries []domain.WantListEntry, ignoredCategories []string) ([]domain.WantListResolvedEntry, error)

	// SetItems replaces the item snapshot and drops cached expansions.
	SetItems(ctx context.Context, items []domain.Item)
}

// Config tunes the expansion cache.
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
	// DefaultIgnored applies when a call passes nil ignored categories. An
	// empty non-nil list ignores nothing.
	DefaultIgnored []string
}

type service struct {
	repo  repository.WantListRepository
	names naming.Resolver
	cache *expansionCache
	cfg   Config
	now   func() time.Time

	mu       sync.RWMutex
	items    []domain.Item
	snapshot string
}

// NewService creates a want-list service over repo. The name resolver is
// reloaded whenever the item snapshot changes; nil creates a fresh one.
func NewService(repo repository.WantListRepository, names naming.Resolver, items []domain.Item, cfg Config) Service {
	if names == nil {
		names = naming.NewResolver(nil)
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	s := &service{
		repo:  repo,
		names: names,
		cache: newExpansionCache(cfg.CacheSize, cfg.CacheTTL),
		cfg:   cfg,
		now:   time.Now,
	}
	s.replaceItems(items)
	return s
}

func (s *service) SetItems(ctx context.Context, items []domain.Item) {
	s.replaceItems(items)
	s.cache.Clear()
	logger.FromContext(ctx).Info(LogMsgItemsReplaced, "items", len(items))
}

func (s *service) replaceItems(items []domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.snapshot = uuid.NewString()
	s.names.Reload(items)
}

func (s *service) List(ctx context.Context) ([]domain.WantListEntry, error) {
	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtRepository, ErrContextList, err)
	}
	return entries, nil
}

// Add resolves itemRef (a canonical id, raw id or display name) and stores
// the entry. Adding an item that is already listed updates its quantity and reason.
func (s *service) Add(ctx context.Context, itemRef string, qty int, reason string) (*domain.WantListEntry, error) {
	log := logger.FromContext(ctx)

	if qty < 1 {
		return nil, fmt.Errorf(ErrFmtQuantity, domain.ErrInvalidQuantity, qty)
	}
	itemID, ok := s.names.Resolve(itemRef)
	if !ok {
		if suggestions := s.names.Suggest(itemRef, naming.DefaultSuggestionLimit); len(suggestions) > 0 {
			return nil, fmt.Errorf(ErrFmtUnknownItemDYM, domain.ErrItemNotFound, itemRef, strings.Join(suggestions, ", "))
		}
		return nil, fmt.Errorf(ErrFmtUnknownItem, domain.ErrItemNotFound, itemRef)
	}

	entry := domain.WantListEntry{
		ID:        uuid.NewString(),
		ItemID:    itemID,
		Qty:       qty,
		Reason:    strings.TrimSpace(reason),
		CreatedAt: s.now().UTC(),
	}
	stored, err := s.repo.UpsertEntry(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtRepository, ErrContextSave, err)
	}

	log.Info(LogMsgEntryAdded, "id", stored.ID, "item_id", stored.ItemID, "qty", stored.Qty)
	return stored, nil
}

func (s *service) Remove(ctx context.Context, id string) error {
	if err := s.repo.DeleteEntry(ctx, id); err != nil {
		return fmt.Errorf(ErrFmtRepository, ErrContextRemove, err)
	}
	logger.FromContext(ctx).Info(LogMsgEntryRemoved, "id", id)
	return nil
}

func (s *service) Resolve(ctx context.Context, ignoredCategories []string) ([]domain.WantListResolvedEntry, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.Expand(ctx, entries, ignoredCategories)
}

func (s *service) Expand(ctx context.Context, entries []domain.WantListEntry, ignoredCategories []string) ([]domain.WantListResolvedEntry, error) {
	log := logger.FromContext(ctx)
	if ignoredCategories == nil {
		ignoredCategories = s.cfg.DefaultIgnored
	}
	ignoredKey := ignoredCacheKey(ignoredCategories)

	s.mu.RLock()
	items, snapshot := s.items, s.snapshot
	s.mu.RUnlock()

	var expander *Expander
	out := make([]domain.WantListResolvedEntry, len(entries))
	for i, entry := range entries {
		if entry.Qty < 1 {
			return nil, fmt.Errorf(ErrFmtQuantity, domain.ErrInvalidQuantity, entry.Qty)
		}

		key := cacheKey(snapshot, ignoredKey, entry.ItemID, entry.Qty)
		if cached, ok := s.cache.Get(key); ok {
			cached.Entry = entry
			out[i] = cached
			metrics.WantListCacheHits.Inc()
			log.Debug(LogMsgExpansionCached, "item_id", entry.ItemID)
			continue
		}

		if expander == nil {
			expander = NewExpander(items, ignoredCategories)
		}
		out[i] = expander.Resolve(entry)
		s.cache.Set(key, out[i])
		metrics.WantListExpansions.Inc()
	}
	return out, nil
}

// ignoredCacheKey normalizes a category list into an order-independent key.
func ignoredCacheKey(categories []string) string {
	set := domain.CategorySet(categories)
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}
