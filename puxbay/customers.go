package puxbay

import "context"

// CustomersService handles customer-related API calls
type CustomersService struct {
	resource resource[Customer]
}

// List returns one page of customers
func (s *CustomersService) List(ctx context.Context, params *ListParams) (*Page[Customer], error) {
	return s.resource.list(ctx, params)
}

// Get retrieves a customer by ID
func (s *CustomersService) Get(ctx context.Context, id string) (*Customer, error) {
	return s.resource.get(ctx, id)
}

// Create adds a new customer
func (s *CustomersService) Create(ctx context.Context, customer *Customer) (*Customer, error) {
	return s.resource.create(ctx, customer)
}

// Update patches the customer with the given ID
func (s *CustomersService) Update(ctx context.Context, id string, customer *Customer) (*Customer, error) {
	return s.resource.update(ctx, id, customer)
}

// Delete removes the customer with the given ID
func (s *CustomersService) Delete(ctx context.Context, id string) error {
	return s.resource.delete(ctx, id)
}

// AddLoyaltyPoints credits points to the customer's loyalty balance.
func (s *CustomersService) AddLoyaltyPoints(ctx context.Context, id string, points int, description string) (*Customer, error) {
	body := map[string]any{
		"points":      points,
		"description": description,
	}
	return s.resource.action(ctx, id, "add_loyalty_points", body)
}

// AddStoreCredit credits amount to the customer's store credit balance.
func (s *CustomersService) AddStoreCredit(ctx context.Context, id string, amount float64, description string) (*Customer, error) {
	body := map[string]any{
		"amount":      amount,
		"description": description,
	}
	return s.resource.action(ctx, id, "add_store_credit", body)
}
