package pricing

import (
	"context"
	"math"
	"time"

	"github.com/raidforge/itemcore/internal/metrics"
	"github.com/raidforge/itemcore/internal/repository"
)

// Service defines the interface for price resolution
type Service interface {
	// StaticPrice returns the fixed reference price for a template, or 0 if
	// the template is unknown or has no listed price.
	StaticPrice(ctx context.Context, tplID string) float64

	// DynamicPrice returns the market-derived price for a template, or 0 if
	// no live listing exists. A present listing is always >= 1.
	DynamicPrice(ctx context.Context, tplID string) float64

	// Price returns the authoritative price: the static price when it is
	// >= 1, otherwise the dynamic price. 0 when neither source has a value.
	Price(ctx context.Context, tplID string) float64

	// MaxPrice returns the larger of the static and dynamic prices.
	MaxPrice(ctx context.Context, tplID string) float64

	// InvalidateQuote drops the cached dynamic quote for a template so the
	// next DynamicPrice call re-reads the offer board. Wired as the board's
	// change listener.
	InvalidateQuote(tplID string)
}

type service struct {
	catalog   repository.Catalog
	priceBook repository.PriceBook
	market    repository.Market
	quotes    *quoteCache
}

// NewService creates a new pricing service. cacheSize and cacheTTL bound the
// dynamic quote cache.
func NewService(catalog repository.Catalog, priceBook repository.PriceBook, market repository.Market, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		catalog:   catalog,
		priceBook: priceBook,
		market:    market,
		quotes:    newQuoteCache(cacheSize, cacheTTL),
	}
}

func (s *service) StaticPrice(ctx context.Context, tplID string) float64 {
	tpl, ok := s.catalog.TemplateByID(ctx, tplID)
	if !ok {
		// Unknown template resolves to 0, never a sentinel. Downstream
		// validity checks depend on unknown meaning priceless.
		metrics.PriceLookups.WithLabelValues(metrics.SourceStatic, metrics.ResultMiss).Inc()
		return 0
	}

	if price, listed := s.priceBook.StaticPriceByID(ctx, tplID); listed && price > 0 {
		metrics.PriceLookups.WithLabelValues(metrics.SourceStatic, metrics.ResultHit).Inc()
		return price
	}

	if tpl.BasePrice > 0 {
		metrics.PriceLookups.WithLabelValues(metrics.SourceStatic, metrics.ResultHit).Inc()
		return tpl.BasePrice
	}

	metrics.PriceLookups.WithLabelValues(metrics.SourceStatic, metrics.ResultMiss).Inc()
	return 0
}

func (s *service) DynamicPrice(ctx context.Context, tplID string) float64 {
	if price, ok := s.quotes.Get(tplID); ok {
		metrics.PriceLookups.WithLabelValues(metrics.SourceDynamic, metrics.ResultHit).Inc()
		return price
	}

	price, ok := s.market.DynamicPriceByID(ctx, tplID)
	if !ok || price <= 0 {
		metrics.PriceLookups.WithLabelValues(metrics.SourceDynamic, metrics.ResultMiss).Inc()
		return 0
	}

	if price < MinDynamicPrice {
		price = MinDynamicPrice
	}
	s.quotes.Set(tplID, price)

	metrics.PriceLookups.WithLabelValues(metrics.SourceDynamic, metrics.ResultHit).Inc()
	return price
}

func (s *service) Price(ctx context.Context, tplID string) float64 {
	if static := s.StaticPrice(ctx, tplID); static >= MinAuthoritativeStatic {
		return static
	}
	return s.DynamicPrice(ctx, tplID)
}

func (s *service) MaxPrice(ctx context.Context, tplID string) float64 {
	return math.Max(s.StaticPrice(ctx, tplID), s.DynamicPrice(ctx, tplID))
}

func (s *service) InvalidateQuote(tplID string) {
	s.quotes.Invalidate(tplID)
}
