package puxbay

import "context"

// OrderStatusCancelled is the status Cancel sets.
const OrderStatusCancelled = "cancelled"

// OrdersService handles order-related API calls. Orders are never deleted;
// use Cancel.
type OrdersService struct {
	resource resource[Order]
}

// List returns one page of orders, optionally filtered by Status and Customer.
func (s *OrdersService) List(ctx context.Context, params *ListParams) (*Page[Order], error) {
	return s.resource.list(ctx, params)
}

// Get retrieves an order by ID
func (s *OrdersService) Get(ctx context.Context, id string) (*Order, error) {
	return s.resource.get(ctx, id)
}

// Create adds a new order
func (s *OrdersService) Create(ctx context.Context, order *Order) (*Order, error) {
	return s.resource.create(ctx, order)
}

// Update patches the order with the given ID
func (s *OrdersService) Update(ctx context.Context, id string, order *Order) (*Order, error) {
	return s.resource.update(ctx, id, order)
}

// Cancel marks the order cancelled. An empty reason is not sent.
func (s *OrdersService) Cancel(ctx context.Context, id, reason string) (*Order, error) {
	body := map[string]any{"status": OrderStatusCancelled}
	if reason != "" {
		body["cancellation_reason"] = reason
	}
	return s.resource.update(ctx, id, body)
}
