package puxbay

import "context"

// ReturnsService handles customer returns against past orders.
type ReturnsService struct {
	resource resource[Return]
}

// List returns one page of returns
func (s *ReturnsService) List(ctx context.Context, params *ListParams) (*Page[Return], error) {
	return s.resource.list(ctx, params)
}

// Get retrieves a return by ID
func (s *ReturnsService) Get(ctx context.Context, id string) (*Return, error) {
	return s.resource.get(ctx, id)
}

// Create adds a new return
func (s *ReturnsService) Create(ctx context.Context, ret *Return) (*Return, error) {
	return s.resource.create(ctx, ret)
}

// Approve accepts the return and triggers the refund and any restocking.
func (s *ReturnsService) Approve(ctx context.Context, id string) (*Return, error) {
	return s.resource.action(ctx, id, "approve", nil)
}
