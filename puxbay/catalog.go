package puxbay

import "context"

// CategoriesService handles product category API calls
type CategoriesService struct {
	resource resource[Category]
}

// List returns one page of categories
func (s *CategoriesService) List(ctx context.Context, params *ListParams) (*Page[Category], error) {
	return s.resource.list(ctx, params)
}

// Get retrieves a category by ID
func (s *CategoriesService) Get(ctx context.Context, id string) (*Category, error) {
	return s.resource.get(ctx, id)
}

// Create adds a new category
func (s *CategoriesService) Create(ctx context.Context, category *Category) (*Category, error) {
	return s.resource.create(ctx, category)
}

// Update patches the category with the given ID
func (s *CategoriesService) Update(ctx context.Context, id string, category *Category) (*Category, error) {
	return s.resource.update(ctx, id, category)
}

// Delete removes the category with the given ID
func (s *CategoriesService) Delete(ctx context.Context, id string) error {
	return s.resource.delete(ctx, id)
}

// SuppliersService handles supplier API calls
type SuppliersService struct {
	resource resource[Supplier]
}

// List returns one page of suppliers
func (s *SuppliersService) List(ctx context.Context, params *ListParams) (*Page[Supplier], error) {
	return s.resource.list(ctx, params)
}

// Get retrieves a supplier by ID
func (s *SuppliersService) Get(ctx context.Context, id string) (*Supplier, error) {
	return s.resource.get(ctx, id)
}

// Create adds a new supplier
func (s *SuppliersService) Create(ctx context.Context, supplier *Supplier) (*Supplier, error) {
	return s.resource.create(ctx, supplier)
}

// Update patches the supplier with the given ID
func (s *SuppliersService) Update(ctx context.Context, id string, supplier *Supplier) (*Supplier, error) {
	return s.resource.update(ctx, id, supplier)
}

// Delete removes the supplier with the given ID
func (s *SuppliersService) Delete(ctx context.Context, id string) error {
	return s.resource.delete(ctx, id)
}
