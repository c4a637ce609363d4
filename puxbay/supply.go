package puxbay

import "context"

// PurchaseOrdersService handles purchase orders raised against suppliers.
type PurchaseOrdersService struct {
	resource resource[PurchaseOrder]
}

// List returns one page of purchase orders, optionally filtered by Status.
func (s *PurchaseOrdersService) List(ctx context.Context, params *ListParams) (*Page[PurchaseOrder], error) {
	return s.resource.list(ctx, params)
}

// Get retrieves a purchase order by ID
func (s *PurchaseOrdersService) Get(ctx context.Context, id string) (*PurchaseOrder, error) {
	return s.resource.get(ctx, id)
}

// Create adds a new purchase order
func (s *PurchaseOrdersService) Create(ctx context.Context, po *PurchaseOrder) (*PurchaseOrder, error) {
	return s.resource.create(ctx, po)
}

// Update patches the purchase order with the given ID
func (s *PurchaseOrdersService) Update(ctx context.Context, id string, po *PurchaseOrder) (*PurchaseOrder, error) {
	return s.resource.update(ctx, id, po)
}

// Receive books the delivered items into stock.
func (s *PurchaseOrdersService) Receive(ctx context.Context, id string, items []PurchaseOrderItem) (*PurchaseOrder, error) {
	return s.resource.action(ctx, id, "receive", map[string]any{"items": items})
}

// StockTransfersService moves stock between branches.
type StockTransfersService struct {
	resource resource[StockTransfer]
}

// List returns one page of stock transfers
func (s *StockTransfersService) List(ctx context.Context, params *ListParams) (*Page[StockTransfer], error) {
	return s.resource.list(ctx, params)
}

// Get retrieves a stock transfer by ID
func (s *StockTransfersService) Get(ctx context.Context, id string) (*StockTransfer, error) {
	return s.resource.get(ctx, id)
}

// Create adds a new stock transfer
func (s *StockTransfersService) Create(ctx context.Context, transfer *StockTransfer) (*StockTransfer, error) {
	return s.resource.create(ctx, transfer)
}

// Complete marks the transfer as received at the destination branch.
func (s *StockTransfersService) Complete(ctx context.Context, id string) (*StockTransfer, error) {
	return s.resource.action(ctx, id, "complete", nil)
}

// StocktakesService handles stock counting sessions.
type StocktakesService struct {
	resource resource[StocktakeSession]
}

// List returns one page of stocktake sessions
func (s *StocktakesService) List(ctx context.Context, params *ListParams) (*Page[StocktakeSession], error) {
	return s.resource.list(ctx, params)
}

// Get retrieves a stocktake session by ID
func (s *StocktakesService) Get(ctx context.Context, id string) (*StocktakeSession, error) {
	return s.resource.get(ctx, id)
}

// Create adds a new stocktake session
func (s *StocktakesService) Create(ctx context.Context, session *StocktakeSession) (*StocktakeSession, error) {
	return s.resource.create(ctx, session)
}

// Complete closes the session and applies the counted quantities.
func (s *StocktakesService) Complete(ctx context.Context, id string) (*StocktakeSession, error) {
	return s.resource.action(ctx, id, "complete", nil)
}
