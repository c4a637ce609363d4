package puxbay

import (
	"context"
	"net/http"
	"net/url"
)

// CashDrawersService handles till sessions.
type CashDrawersService struct {
	resource resource[CashDrawerSession]
}

// List returns one page of cash drawer sessions
func (s *CashDrawersService) List(ctx context.Context, params *ListParams) (*Page[CashDrawerSession], error) {
	return s.resource.list(ctx, params)
}

// Get retrieves a cash drawer session by ID
func (s *CashDrawersService) Get(ctx context.Context, id string) (*CashDrawerSession, error) {
	return s.resource.get(ctx, id)
}

// Open starts a new drawer session.
func (s *CashDrawersService) Open(ctx context.Context, session *CashDrawerSession) (*CashDrawerSession, error) {
	return s.resource.create(ctx, session)
}

// Close ends the session with the counted cash; the server computes the
// difference against the expected amount.
func (s *CashDrawersService) Close(ctx context.Context, id string, actualCash float64) (*CashDrawerSession, error) {
	return s.resource.action(ctx, id, "close", map[string]any{"actual_cash": actualCash})
}

// GiftCardsService handles gift card API calls
type GiftCardsService struct {
	resource resource[GiftCard]
}

// List returns one page of gift cards
func (s *GiftCardsService) List(ctx context.Context, params *ListParams) (*Page[GiftCard], error) {
	return s.resource.list(ctx, params)
}

// Get retrieves a gift card by ID
func (s *GiftCardsService) Get(ctx context.Context, id string) (*GiftCard, error) {
	return s.resource.get(ctx, id)
}

// Create adds a new gift card
func (s *GiftCardsService) Create(ctx context.Context, card *GiftCard) (*GiftCard, error) {
	return s.resource.create(ctx, card)
}

// Redeem deducts amount from the card balance.
func (s *GiftCardsService) Redeem(ctx context.Context, id string, amount float64) (*GiftCard, error) {
	return s.resource.action(ctx, id, "redeem", map[string]any{"amount": amount})
}

// CheckBalance looks a card up by its printed code rather than its ID.
func (s *GiftCardsService) CheckBalance(ctx context.Context, code string) (*GiftCard, error) {
	q := url.Values{}
	q.Set("code", code)
	return Call[GiftCard](ctx, s.resource.d, http.MethodGet, withQuery("gift-cards/check-balance/", q), nil)
}

// ExpensesService handles expense API calls
type ExpensesService struct {
	resource resource[Expense]
}

// List returns one page of expenses, optionally filtered by Category.
func (s *ExpensesService) List(ctx context.Context, params *ListParams) (*Page[Expense], error) {
	return s.resource.list(ctx, params)
}

// Get retrieves an expense by ID
func (s *ExpensesService) Get(ctx context.Context, id string) (*Expense, error) {
	return s.resource.get(ctx, id)
}

// Create adds a new expense
func (s *ExpensesService) Create(ctx context.Context, expense *Expense) (*Expense, error) {
	return s.resource.create(ctx, expense)
}

// Update patches the expense with the given ID
func (s *ExpensesService) Update(ctx context.Context, id string, expense *Expense) (*Expense, error) {
	return s.resource.update(ctx, id, expense)
}

// Delete removes the expense with the given ID
func (s *ExpensesService) Delete(ctx context.Context, id string) error {
	return s.resource.delete(ctx, id)
}

// ListCategories returns every expense category. The endpoint is not paginated.
func (s *ExpensesService) ListCategories(ctx context.Context) ([]ExpenseCategory, error) {
	categories, err := Call[[]ExpenseCategory](ctx, s.resource.d, http.MethodGet, "expense-categories/", nil)
	if err != nil {
		return nil, err
	}
	return *categories, nil
}

// BranchesService handles branch API calls
type BranchesService struct {
	resource resource[Branch]
}

// List returns one page of branches
func (s *BranchesService) List(ctx context.Context, params *ListParams) (*Page[Branch], error) {
	return s.resource.list(ctx, params)
}

// Get retrieves a branch by ID
func (s *BranchesService) Get(ctx context.Context, id string) (*Branch, error) {
	return s.resource.get(ctx, id)
}

// Create adds a new branch
func (s *BranchesService) Create(ctx context.Context, branch *Branch) (*Branch, error) {
	return s.resource.create(ctx, branch)
}

// Update patches the branch with the given ID
func (s *BranchesService) Update(ctx context.Context, id string, branch *Branch) (*Branch, error) {
	return s.resource.update(ctx, id, branch)
}

// Delete removes the branch with the given ID
func (s *BranchesService) Delete(ctx context.Context, id string) error {
	return s.resource.delete(ctx, id)
}

// StaffService handles staff membership API calls
type StaffService struct {
	resource resource[StaffMember]
}

// List returns one page of staff members, optionally filtered by Role.
func (s *StaffService) List(ctx context.Context, params *ListParams) (*Page[StaffMember], error) {
	return s.resource.list(ctx, params)
}

// Get retrieves a staff member by ID
func (s *StaffService) Get(ctx context.Context, id string) (*StaffMember, error) {
	return s.resource.get(ctx, id)
}

// Create adds a new staff member
func (s *StaffService) Create(ctx context.Context, member *StaffMember) (*StaffMember, error) {
	return s.resource.create(ctx, member)
}

// Update patches the staff member with the given ID
func (s *StaffService) Update(ctx context.Context, id string, member *StaffMember) (*StaffMember, error) {
	return s.resource.update(ctx, id, member)
}

// Delete removes the staff member with the given ID
func (s *StaffService) Delete(ctx context.Context, id string) error {
	return s.resource.delete(ctx, id)
}
