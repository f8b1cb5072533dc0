// Package market holds the live offer board backing dynamic price lookups.
// Offers are pushed in by the trade layer; the engine only reads them.
package market

import (
	"context"
	"sync"
)

// Board is a concurrent map of template id → latest market-derived price.
type Board struct {
	mu       sync.RWMutex
	quotes   map[string]float64
	onChange func(id string)
}

// NewBoard creates an empty offer board.
func NewBoard() *Board {
	return &Board{quotes: make(map[string]float64)}
}

// SetListener registers a callback invoked with the template id whenever a
// listing changes. The price resolver uses it to drop stale cached quotes.
func (b *Board) SetListener(fn func(id string)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onChange = fn
}

// SetQuote records the latest market price for a template. A quote that is
// zero or negative removes the listing; the price resolver treats a price of
// 0 as absence.
func (b *Board) SetQuote(id string, price float64) {
	b.mu.Lock()
	if price <= 0 {
		delete(b.quotes, id)
	} else {
		b.quotes[id] = price
	}
	fn := b.onChange
	b.mu.Unlock()

	if fn != nil {
		fn(id)
	}
}

// RemoveQuote drops the listing for a template.
func (b *Board) RemoveQuote(id string) {
	b.mu.Lock()
	delete(b.quotes, id)
	fn := b.onChange
	b.mu.Unlock()

	if fn != nil {
		fn(id)
	}
}

// DynamicPriceByID returns the current market price for a template.
func (b *Board) DynamicPriceByID(ctx context.Context, id string) (float64, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	price, ok := b.quotes[id]
	return price, ok
}

// Len returns the number of live listings.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.quotes)
}
