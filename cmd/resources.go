package cmd

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/s0up4200/puxbay-go/filter"
	"github.com/s0up4200/puxbay-go/puxbay"
)

// resource is what the list and get commands need from one API collection
type resource struct {
	list    func(ctx context.Context, params *puxbay.ListParams) (int, []filter.Record, error)
	get     func(ctx context.Context, id string) (any, error)
	columns []string
}

func listOf[T any](fn func(context.Context, *puxbay.ListParams) (*puxbay.Page[T], error)) func(context.Context, *puxbay.ListParams) (int, []filter.Record, error) {
	return func(ctx context.Context, params *puxbay.ListParams) (int, []filter.Record, error) {
		page, err := fn(ctx, params)
		if err != nil {
			return 0, nil, err
		}
		records, err := filter.ToRecords(page.Results)
		if err != nil {
			return 0, nil, err
		}
		return page.Count, records, nil
	}
}

func getOf[T any](fn func(context.Context, string) (*T, error)) func(context.Context, string) (any, error) {
	return func(ctx context.Context, id string) (any, error) {
		return fn(ctx, id)
	}
}

// resources maps CLI resource names to the client's services
func resources(c *puxbay.Client) map[string]resource {
	return map[string]resource{
		"products": {
			list:    listOf(c.Products.List),
			get:     getOf(c.Products.Get),
			columns: []string{"id", "sku", "name", "price", "stock_quantity"},
		},
		"orders": {
			list:    listOf(c.Orders.List),
			get:     getOf(c.Orders.Get),
			columns: []string{"id", "order_number", "status", "total_amount", "created_at"},
		},
		"customers": {
			list:    listOf(c.Customers.List),
			get:     getOf(c.Customers.Get),
			columns: []string{"id", "name", "email", "loyalty_points", "store_credit_balance"},
		},
		"categories": {
			list:    listOf(c.Categories.List),
			get:     getOf(c.Categories.Get),
			columns: []string{"id", "name"},
		},
		"suppliers": {
			list:    listOf(c.Suppliers.List),
			get:     getOf(c.Suppliers.Get),
			columns: []string{"id", "name", "email", "phone"},
		},
		"purchase-orders": {
			list:    listOf(c.PurchaseOrders.List),
			get:     getOf(c.PurchaseOrders.Get),
			columns: []string{"id", "reference_id", "status", "total_cost"},
		},
		"stock-transfers": {
			list:    listOf(c.StockTransfers.List),
			get:     getOf(c.StockTransfers.Get),
			columns: []string{"id", "reference_id", "status"},
		},
		"stocktakes": {
			list:    listOf(c.Stocktakes.List),
			get:     getOf(c.Stocktakes.Get),
			columns: []string{"id", "branch_name", "status", "started_at"},
		},
		"cash-drawers": {
			list:    listOf(c.CashDrawers.List),
			get:     getOf(c.CashDrawers.Get),
			columns: []string{"id", "branch_name", "status", "starting_balance"},
		},
		"gift-cards": {
			list:    listOf(c.GiftCards.List),
			get:     getOf(c.GiftCards.Get),
			columns: []string{"id", "code", "balance", "status"},
		},
		"expenses": {
			list:    listOf(c.Expenses.List),
			get:     getOf(c.Expenses.Get),
			columns: []string{"id", "description", "amount", "date"},
		},
		"branches": {
			list:    listOf(c.Branches.List),
			get:     getOf(c.Branches.Get),
			columns: []string{"id", "name", "unique_id", "branch_type"},
		},
		"staff": {
			list:    listOf(c.Staff.List),
			get:     getOf(c.Staff.Get),
			columns: []string{"id", "username", "full_name", "role"},
		},
		"webhooks": {
			list:    listOf(c.Webhooks.List),
			get:     getOf(c.Webhooks.Get),
			columns: []string{"id", "url", "is_active"},
		},
		"notifications": {
			list:    listOf(c.Notifications.List),
			get:     getOf(c.Notifications.Get),
			columns: []string{"id", "title", "is_read"},
		},
		"returns": {
			list:    listOf(c.Returns.List),
			get:     getOf(c.Returns.Get),
			columns: []string{"id", "order_number", "status", "refund_amount"},
		},
	}
}

func lookupResource(c *puxbay.Client, name string) (resource, error) {
	all := resources(c)
	r, ok := all[strings.ToLower(name)]
	if !ok {
		return resource{}, fmt.Errorf("unknown resource %q (available: %s)", name,
			strings.Join(slices.Sorted(maps.Keys(all)), ", "))
	}
	return r, nil
}
