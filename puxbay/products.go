package puxbay

import "context"

// ProductsService handles product-related API calls.
type ProductsService struct {
	resource resource[Product]
}

// List returns one page of products. Search and Category filter the page.
func (s *ProductsService) List(ctx context.Context, params *ListParams) (*Page[Product], error) {
	return s.resource.list(ctx, params)
}

// Get retrieves a product by ID
func (s *ProductsService) Get(ctx context.Context, id string) (*Product, error) {
	return s.resource.get(ctx, id)
}

// Create adds a new product
func (s *ProductsService) Create(ctx context.Context, product *Product) (*Product, error) {
	return s.resource.create(ctx, product)
}

// Update patches the product with the non-empty fields of product.
func (s *ProductsService) Update(ctx context.Context, id string, product *Product) (*Product, error) {
	return s.resource.update(ctx, id, product)
}

// Delete removes the product with the given ID
func (s *ProductsService) Delete(ctx context.Context, id string) error {
	return s.resource.delete(ctx, id)
}

// AdjustStock changes the stock quantity by quantity (negative to remove)
// and records reason in the product history.
func (s *ProductsService) AdjustStock(ctx context.Context, id string, quantity int, reason string) (*Product, error) {
	body := map[string]any{
		"quantity": quantity,
		"reason":   reason,
	}
	return s.resource.action(ctx, id, "adjust_stock", body)
}
