package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"printlite/internal/domain/entities"
	"printlite/internal/domain/pricing"
	"printlite/internal/usecase/interfaces"
)

const quoteCacheTTL = 5 * time.Minute

// QuoteCommand is the quick-quote input. No order is persisted and no tax is
// applied on this path.
type QuoteCommand struct {
	Pages     int
	PageRange string
	Settings  entities.PrintSettings
}

type IQuoteUseCase interface {
	Quote(ctx context.Context, cmd QuoteCommand) (entities.PriceBreakdown, error)
}

type QuoteUseCase struct {
	engine *pricing.Engine
	cache  interfaces.IQuoteCache
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase wires the quick-quote path. cache may be nil, which
// disables quote caching.
func NewQuoteUseCase(engine *pricing.Engine, cache interfaces.IQuoteCache) *QuoteUseCase {
	return &QuoteUseCase{engine: engine, cache: cache}
}

func (u *QuoteUseCase) Quote(ctx context.Context, cmd QuoteCommand) (entities.PriceBreakdown, error) {
	selectedCount := cmd.Pages
	if rangeExpr := strings.TrimSpace(cmd.PageRange); rangeExpr != "" {
		selection, err := pricing.ParsePageRange(rangeExpr, cmd.Pages)
		if err != nil {
			return entities.PriceBreakdown{}, err
		}
		if selection.Count() == 0 {
			return entities.PriceBreakdown{}, ErrEmptySelection
		}
		selectedCount = selection.Count()
	}

	key := quoteCacheKey(selectedCount, cmd.Settings)
	if cached, ok := u.cachedBreakdown(ctx, key); ok {
		return cached, nil
	}

	breakdown, err := u.engine.ComputePrice(selectedCount, cmd.Settings, false)
	if err != nil {
		return entities.PriceBreakdown{}, err
	}

	u.storeBreakdown(ctx, key, breakdown)
	return breakdown, nil
}

func (u *QuoteUseCase) cachedBreakdown(ctx context.Context, key string) (entities.PriceBreakdown, bool) {
	if u.cache == nil {
		return entities.PriceBreakdown{}, false
	}

	raw, err := u.cache.Get(ctx, key)
	if err != nil {
		log.Printf("[quote][usecase] cache get failed key=%s err=%v", key, err)
		return entities.PriceBreakdown{}, false
	}
	if raw == "" {
		return entities.PriceBreakdown{}, false
	}

	var breakdown entities.PriceBreakdown
	if err := json.Unmarshal([]byte(raw), &breakdown); err != nil {
		log.Printf("[quote][usecase] cache entry unreadable key=%s err=%v", key, err)
		return entities.PriceBreakdown{}, false
	}
	return breakdown, true
}

func (u *QuoteUseCase) storeBreakdown(ctx context.Context, key string, breakdown entities.PriceBreakdown) {
	if u.cache == nil {
		return
	}

	raw, err := json.Marshal(breakdown)
	if err != nil {
		return
	}
	if err := u.cache.Set(ctx, key, string(raw), quoteCacheTTL); err != nil {
		log.Printf("[quote][usecase] cache set failed key=%s err=%v", key, err)
	}
}

// quoteCacheKey is deterministic over every input the engine reads, so a
// cached entry can never disagree with a fresh computation.
func quoteCacheKey(pages int, s entities.PrintSettings) string {
	return fmt.Sprintf("quote:%d:%s:%s:%s:%s:%d", pages, s.PaperType, s.ColorMode, s.Sides, s.Binding, s.Copies)
}
