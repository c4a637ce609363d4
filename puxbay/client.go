package puxbay

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Version is reported in the User-Agent header.
const Version = "1.0.0"

const (
	// APIKeyPrefix is the prefix every Puxbay API key starts with.
	APIKeyPrefix = "pb_"

	DefaultBaseURL        = "https://api.puxbay.com/api/v1"
	DefaultTimeout        = 30 * time.Second
	DefaultMaxRetries     = 3
	DefaultRetryBaseDelay = time.Second

	defaultMaxIdleConns    = 100
	defaultMaxConnsPerHost = 10
	defaultIdleConnTimeout = 90 * time.Second
)

// Config is the immutable connection configuration of a Client.
type Config struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	RetryBaseDelay time.Duration
	// MaxRetryDelay caps a single backoff delay. Zero means uncapped.
	MaxRetryDelay time.Duration
	UserAgent     string
}

// Client dispatches requests against the Puxbay API and exposes one
// service per resource. A Client is safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     zerolog.Logger
	limiter    *rate.Limiter
	metrics    *Metrics
	wait       func(ctx context.Context, d time.Duration) error

	Products       *ProductsService
	Orders         *OrdersService
	Customers      *CustomersService
	Inventory      *InventoryService
	Reports        *ReportsService
	Categories     *CategoriesService
	Suppliers      *SuppliersService
	PurchaseOrders *PurchaseOrdersService
	StockTransfers *StockTransfersService
	Stocktakes     *StocktakesService
	CashDrawers    *CashDrawersService
	GiftCards      *GiftCardsService
	Expenses       *ExpensesService
	Branches       *BranchesService
	Staff          *StaffService
	Webhooks       *WebhooksService
	Notifications  *NotificationsService
	Returns        *ReturnsService
}

// New creates a client for the given API key. It validates the key format
// and the options but never touches the network.
func New(apiKey string, opts ...Option) (*Client, error) {
	if !strings.HasPrefix(apiKey, APIKeyPrefix) {
		return nil, ErrInvalidAPIKey
	}

	o := &clientOptions{
		baseURL:        DefaultBaseURL,
		timeout:        DefaultTimeout,
		maxRetries:     DefaultMaxRetries,
		retryBaseDelay: DefaultRetryBaseDelay,
		userAgent:      "puxbay-go/" + Version,
		logger:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := o.validate(); err != nil {
		return nil, err
	}

	cfg := Config{
		BaseURL:        strings.TrimRight(o.baseURL, "/"),
		APIKey:         apiKey,
		Timeout:        o.timeout,
		MaxRetries:     o.maxRetries,
		RetryBaseDelay: o.retryBaseDelay,
		MaxRetryDelay:  o.maxRetryDelay,
		UserAgent:      o.userAgent,
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: newTransport(),
		}
	}

	c := &Client{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     o.logger,
		metrics:    o.metrics,
		wait:       sleepContext,
	}
	if o.rateLimit > 0 {
		c.limiter = rate.NewLimiter(o.rateLimit, max(o.rateBurst, 1))
	}

	bindServices(c, c)

	return c, nil
}

// Config returns a copy of the client's configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// Ping checks connectivity and credentials with the cheapest list call the
// API offers. New never calls it.
func (c *Client) Ping(ctx context.Context) error {
	q := url.Values{}
	q.Set("page", "1")
	q.Set("page_size", "1")

	if err := c.Do(ctx, http.MethodGet, withQuery("branches/", q), nil, nil); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// bindServices points every resource service of c at d.
func bindServices(c *Client, d Doer) {
	c.Products = &ProductsService{resource: newResource[Product](d, "products")}
	c.Orders = &OrdersService{resource: newResource[Order](d, "orders")}
	c.Customers = &CustomersService{resource: newResource[Customer](d, "customers")}
	c.Inventory = &InventoryService{d: d}
	c.Reports = &ReportsService{d: d}
	c.Categories = &CategoriesService{resource: newResource[Category](d, "categories")}
	c.Suppliers = &SuppliersService{resource: newResource[Supplier](d, "suppliers")}
	c.PurchaseOrders = &PurchaseOrdersService{resource: newResource[PurchaseOrder](d, "purchase-orders")}
	c.StockTransfers = &StockTransfersService{resource: newResource[StockTransfer](d, "stock-transfers")}
	c.Stocktakes = &StocktakesService{resource: newResource[StocktakeSession](d, "stocktakes")}
	c.CashDrawers = &CashDrawersService{resource: newResource[CashDrawerSession](d, "cash-drawers")}
	c.GiftCards = &GiftCardsService{resource: newResource[GiftCard](d, "gift-cards")}
	c.Expenses = &ExpensesService{resource: newResource[Expense](d, "expenses")}
	c.Branches = &BranchesService{resource: newResource[Branch](d, "branches")}
	c.Staff = &StaffService{resource: newResource[StaffMember](d, "staff")}
	c.Webhooks = &WebhooksService{resource: newResource[Webhook](d, "webhooks")}
	c.Notifications = &NotificationsService{resource: newResource[Notification](d, "notifications")}
	c.Returns = &ReturnsService{resource: newResource[Return](d, "returns")}
}

// newTransport returns the pooled transport shared by every request of a client.
func newTransport() *http.Transport {
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        defaultMaxIdleConns,
		MaxIdleConnsPerHost: defaultMaxConnsPerHost,
		MaxConnsPerHost:     defaultMaxConnsPerHost,
		IdleConnTimeout:     defaultIdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}
