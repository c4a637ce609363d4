package puxbay

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// InventoryService reads stock state across branches. Transfers and
// stocktakes have their own services.
type InventoryService struct {
	d Doer
}

// StockLevels returns current stock per product. An empty branch covers
// every branch the key can see.
func (s *InventoryService) StockLevels(ctx context.Context, branch string) ([]StockLevel, error) {
	q := url.Values{}
	setIf(q, "branch", branch)

	levels, err := Call[[]StockLevel](ctx, s.d, http.MethodGet, withQuery("inventory/stock-levels/", q), nil)
	if err != nil {
		return nil, err
	}
	return *levels, nil
}

// LowStock returns products whose stock is at or below threshold.
func (s *InventoryService) LowStock(ctx context.Context, threshold int) ([]Product, error) {
	q := url.Values{}
	q.Set("threshold", strconv.Itoa(threshold))

	products, err := Call[[]Product](ctx, s.d, http.MethodGet, withQuery("inventory/low-stock/", q), nil)
	if err != nil {
		return nil, err
	}
	return *products, nil
}
