package catalog

import "context"

// StaticPriceBook is the map-backed fixed reference price lookup, built from
// the catalog file's price table. Read-only after construction.
type StaticPriceBook struct {
	prices map[string]float64
}

// NewStaticPriceBook builds a price book from a template-id → price table.
// Entries that are zero or negative are dropped; absence and zero are the
// same thing to the price resolver.
func NewStaticPriceBook(prices map[string]float64) *StaticPriceBook {
	book := &StaticPriceBook{prices: make(map[string]float64, len(prices))}
	for id, price := range prices {
		if price > 0 {
			book.prices[id] = price
		}
	}
	return book
}

// StaticPriceByID returns the listed reference price for a template.
func (b *StaticPriceBook) StaticPriceByID(ctx context.Context, id string) (float64, bool) {
	price, ok := b.prices[id]
	return price, ok
}
