package puxbay

import "time"

// Models mirror the server JSON. Fields the server computes are omitempty
// or omitzero so a decoded value can be sent back as a create/update body.

type Category struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ProductVariant struct {
	ID            string         `json:"id,omitempty"`
	Name          string         `json:"name"`
	SKU           string         `json:"sku"`
	Price         float64        `json:"price"`
	StockQuantity int            `json:"stock_quantity"`
	Attributes    map[string]any `json:"attributes,omitempty"`
	IsActive      bool           `json:"is_active"`
}

// ProductComponent is one part of a composite product.
type ProductComponent struct {
	ID               string `json:"id,omitempty"`
	ComponentProduct string `json:"component_product"`
	ComponentName    string `json:"component_name,omitempty"`
	ComponentSKU     string `json:"component_sku,omitempty"`
	Quantity         int    `json:"quantity"`
}

type ProductHistory struct {
	ID             string `json:"id,omitempty"`
	Action         string `json:"action"`
	ChangedBy      string `json:"changed_by"`
	ChangedByName  string `json:"changed_by_name,omitempty"`
	ChangedAt      string `json:"changed_at"`
	ChangesSummary string `json:"changes_summary,omitempty"`
}

type Product struct {
	ID                       string             `json:"id,omitempty"`
	Name                     string             `json:"name"`
	SKU                      string             `json:"sku"`
	Price                    float64            `json:"price"`
	StockQuantity            int                `json:"stock_quantity"`
	Description              string             `json:"description,omitempty"`
	Category                 string             `json:"category,omitempty"`
	CategoryName             string             `json:"category_name,omitempty"`
	Variants                 []ProductVariant   `json:"variants,omitempty"`
	LowStockThreshold        int                `json:"low_stock_threshold,omitempty"`
	CostPrice                float64            `json:"cost_price,omitempty"`
	ExpiryDate               string             `json:"expiry_date,omitempty"`
	Barcode                  string             `json:"barcode,omitempty"`
	IsActive                 bool               `json:"is_active"`
	MinimumWholesaleQuantity int                `json:"minimum_wholesale_quantity,omitempty"`
	IsComposite              bool               `json:"is_composite"`
	Components               []ProductComponent `json:"components,omitempty"`
	Metadata                 map[string]any     `json:"metadata,omitempty"`
	CreatedAt                time.Time          `json:"created_at,omitzero"`
	UpdatedAt                time.Time          `json:"updated_at,omitzero"`
}

type CustomerTier struct {
	ID                 string  `json:"id,omitempty"`
	Name               string  `json:"name"`
	MinSpend           float64 `json:"min_spend"`
	DiscountPercentage float64 `json:"discount_percentage"`
	Color              string  `json:"color,omitempty"`
	Icon               string  `json:"icon,omitempty"`
}

type Customer struct {
	ID                 string         `json:"id,omitempty"`
	Name               string         `json:"name"`
	Email              string         `json:"email,omitempty"`
	Phone              string         `json:"phone,omitempty"`
	Address            string         `json:"address,omitempty"`
	CustomerType       string         `json:"customer_type,omitempty"`
	LoyaltyPoints      int            `json:"loyalty_points"`
	StoreCreditBalance float64        `json:"store_credit_balance"`
	TotalSpend         float64        `json:"total_spend"`
	Tier               string         `json:"tier,omitempty"`
	TierName           string         `json:"tier_name,omitempty"`
	MarketingOptIn     bool           `json:"marketing_opt_in"`
	Metadata           map[string]any `json:"metadata,omitempty"`
	CreatedAt          time.Time      `json:"created_at,omitzero"`
}

type OrderItem struct {
	ID             string  `json:"id,omitempty"`
	Product        string  `json:"product"`
	ProductName    string  `json:"product_name,omitempty"`
	SKU            string  `json:"sku,omitempty"`
	ItemNumber     string  `json:"item_number,omitempty"`
	Quantity       int     `json:"quantity"`
	Price          float64 `json:"price"`
	CostPrice      float64 `json:"cost_price,omitempty"`
	TotalItemPrice float64 `json:"get_total_item_price,omitempty"`
}

type Order struct {
	ID            string         `json:"id,omitempty"`
	OrderNumber   string         `json:"order_number,omitempty"`
	Status        string         `json:"status,omitempty"`
	Subtotal      float64        `json:"subtotal"`
	TaxAmount     float64        `json:"tax_amount"`
	TotalAmount   float64        `json:"total_amount"`
	AmountPaid    float64        `json:"amount_paid"`
	PaymentMethod string         `json:"payment_method,omitempty"`
	OrderingType  string         `json:"ordering_type,omitempty"`
	OfflineUUID   string         `json:"offline_uuid,omitempty"`
	Customer      string         `json:"customer,omitempty"`
	CustomerName  string         `json:"customer_name,omitempty"`
	Cashier       string         `json:"cashier,omitempty"`
	CashierName   string         `json:"cashier_name,omitempty"`
	Branch        string         `json:"branch,omitempty"`
	BranchName    string         `json:"branch_name,omitempty"`
	Items         []OrderItem    `json:"items,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"created_at,omitzero"`
	UpdatedAt     time.Time      `json:"updated_at,omitzero"`
}

type Supplier struct {
	ID            string    `json:"id,omitempty"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitzero"`
}

type PurchaseOrderItem struct {
	ID          string  `json:"id,omitempty"`
	Product     string  `json:"product"`
	ProductName string  `json:"product_name,omitempty"`
	SKU         string  `json:"sku,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitCost    float64 `json:"unit_cost"`
}

type PurchaseOrder struct {
	ID            string              `json:"id,omitempty"`
	ReferenceID   string              `json:"reference_id,omitempty"`
	Status        string              `json:"status,omitempty"`
	Supplier      string              `json:"supplier"`
	SupplierName  string              `json:"supplier_name,omitempty"`
	Branch        string              `json:"branch"`
	BranchName    string              `json:"branch_name,omitempty"`
	TotalCost     float64             `json:"total_cost"`
	ExpectedDate  string              `json:"expected_date,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	CreatedBy     string              `json:"created_by,omitempty"`
	CreatedByName string              `json:"created_by_name,omitempty"`
	CreatedAt     time.Time           `json:"created_at,omitzero"`
	Items         []PurchaseOrderItem `json:"items,omitempty"`
}

type StockTransferItem struct {
	ID            string  `json:"id,omitempty"`
	Product       string  `json:"product"`
	ProductName   string  `json:"product_name,omitempty"`
	Quantity      int     `json:"quantity"`
	TransferPrice float64 `json:"transfer_price,omitempty"`
}

type StockTransfer struct {
	ID                    string              `json:"id,omitempty"`
	ReferenceID           string              `json:"reference_id,omitempty"`
	Status                string              `json:"status,omitempty"`
	SourceBranch          string              `json:"source_branch"`
	SourceBranchName      string              `json:"source_branch_name,omitempty"`
	DestinationBranch     string              `json:"destination_branch"`
	DestinationBranchName string              `json:"destination_branch_name,omitempty"`
	Notes                 string              `json:"notes,omitempty"`
	CreatedBy             string              `json:"created_by,omitempty"`
	CreatedByName         string              `json:"created_by_name,omitempty"`
	CreatedAt             time.Time           `json:"created_at,omitzero"`
	CompletedAt           *time.Time          `json:"completed_at,omitempty"`
	Items                 []StockTransferItem `json:"items,omitempty"`
}

type StocktakeEntry struct {
	ID               string    `json:"id,omitempty"`
	Product          string    `json:"product"`
	ProductName      string    `json:"product_name,omitempty"`
	SKU              string    `json:"sku,omitempty"`
	CountedQuantity  int       `json:"counted_quantity"`
	ExpectedQuantity int       `json:"expected_quantity"`
	Difference       int       `json:"difference,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	UpdatedAt        time.Time `json:"updated_at,omitzero"`
}

type StocktakeSession struct {
	ID            string           `json:"id,omitempty"`
	Branch        string           `json:"branch"`
	BranchName    string           `json:"branch_name,omitempty"`
	Status        string           `json:"status,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	CreatedBy     string           `json:"created_by,omitempty"`
	CreatedByName string           `json:"created_by_name,omitempty"`
	StartedAt     time.Time        `json:"started_at,omitzero"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`
	Entries       []StocktakeEntry `json:"entries,omitempty"`
}

type CashDrawerSession struct {
	ID              string     `json:"id,omitempty"`
	Branch          string     `json:"branch"`
	BranchName      string     `json:"branch_name,omitempty"`
	Employee        string     `json:"employee,omitempty"`
	EmployeeName    string     `json:"employee_name,omitempty"`
	Status          string     `json:"status,omitempty"`
	StartTime       time.Time  `json:"start_time,omitzero"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	StartingBalance float64    `json:"starting_balance"`
	ExpectedCash    float64    `json:"expected_cash,omitempty"`
	ActualCash      float64    `json:"actual_cash,omitempty"`
	Difference      float64    `json:"difference,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}

type Notification struct {
	ID               string    `json:"id,omitempty"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	NotificationType string    `json:"notification_type"`
	Category         string    `json:"category"`
	IsRead           bool      `json:"is_read"`
	CreatedAt        time.Time `json:"created_at,omitzero"`
}

type CustomerFeedback struct {
	ID           string    `json:"id,omitempty"`
	Customer     string    `json:"customer"`
	CustomerName string    `json:"customer_name,omitempty"`
	Transaction  string    `json:"transaction,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
}

type GiftCard struct {
	ID         string  `json:"id,omitempty"`
	Code       string  `json:"code"`
	Balance    float64 `json:"balance"`
	Status     string  `json:"status,omitempty"`
	ExpiryDate string  `json:"expiry_date,omitempty"`
}

type LoyaltyTransaction struct {
	ID              string    `json:"id,omitempty"`
	Customer        string    `json:"customer"`
	Order           string    `json:"order,omitempty"`
	Points          int       `json:"points"`
	TransactionType string    `json:"transaction_type"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitzero"`
}

type StoreCreditTransaction struct {
	ID        string    `json:"id,omitempty"`
	Customer  string    `json:"customer"`
	Amount    float64   `json:"amount"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

type ReturnItem struct {
	ID          string  `json:"id,omitempty"`
	Product     string  `json:"product"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	Condition   string  `json:"condition"`
	Restock     bool    `json:"restock"`
	UnitPrice   float64 `json:"unit_price"`
}

type Return struct {
	ID           string       `json:"id,omitempty"`
	Order        string       `json:"order"`
	OrderNumber  string       `json:"order_number,omitempty"`
	Customer     string       `json:"customer,omitempty"`
	CustomerName string       `json:"customer_name,omitempty"`
	Reason       string       `json:"reason"`
	ReasonDetail string       `json:"reason_detail,omitempty"`
	Status       string       `json:"status,omitempty"`
	RefundMethod string       `json:"refund_method"`
	RefundAmount float64      `json:"refund_amount"`
	CreatedAt    time.Time    `json:"created_at,omitzero"`
	Items        []ReturnItem `json:"items,omitempty"`
}

type ExpenseCategory struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type Expense struct {
	ID            string    `json:"id,omitempty"`
	Category      string    `json:"category"`
	CategoryName  string    `json:"category_name,omitempty"`
	Amount        float64   `json:"amount"`
	Date          string    `json:"date"`
	Description   string    `json:"description,omitempty"`
	ReceiptFile   string    `json:"receipt_file,omitempty"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedByName string    `json:"created_by_name,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitzero"`
}

type PaymentMethod struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Provider string `json:"provider,omitempty"`
	IsActive bool   `json:"is_active"`
}

type Branch struct {
	ID                string    `json:"id,omitempty"`
	Name              string    `json:"name"`
	UniqueID          string    `json:"unique_id,omitempty"`
	Address           string    `json:"address,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	BranchType        string    `json:"branch_type,omitempty"`
	CurrencyCode      string    `json:"currency_code,omitempty"`
	CurrencySymbol    string    `json:"currency_symbol,omitempty"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at,omitzero"`
	UpdatedAt         time.Time `json:"updated_at,omitzero"`
}

type TaxConfiguration struct {
	ID                 string    `json:"id,omitempty"`
	TaxType            string    `json:"tax_type"`
	TaxRate            float64   `json:"tax_rate"`
	TaxNumber          string    `json:"tax_number,omitempty"`
	IncludeTaxInPrices bool      `json:"include_tax_in_prices"`
	IsActive           bool      `json:"is_active"`
	UpdatedAt          time.Time `json:"updated_at,omitzero"`
}

type StaffMember struct {
	ID         string `json:"id,omitempty"`
	Username   string `json:"username,omitempty"`
	FullName   string `json:"full_name,omitempty"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role"`
	Branch     string `json:"branch,omitempty"`
	BranchName string `json:"branch_name,omitempty"`
}

type Webhook struct {
	ID        string    `json:"id,omitempty"`
	URL       string    `json:"url"`
	Events    []string  `json:"events"`
	IsActive  bool      `json:"is_active"`
	Secret    string    `json:"secret,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// WebhookEvent is one delivery attempt recorded in the webhook log.
type WebhookEvent struct {
	ID         string    `json:"id,omitempty"`
	Webhook    string    `json:"webhook"`
	EventType  string    `json:"event_type"`
	Payload    any       `json:"payload"`
	StatusCode int       `json:"status_code,omitempty"`
	Response   string    `json:"response,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitzero"`
}

// StockLevel is the current quantity of one product at one branch.
type StockLevel struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Branch    string `json:"branch"`
}

type SalesSummary struct {
	TotalSales   float64   `json:"total_sales"`
	TotalOrders  int       `json:"total_orders"`
	AverageOrder float64   `json:"average_order"`
	TopProducts  []Product `json:"top_products"`
}

type CustomerAnalytics struct {
	NewCustomers         int     `json:"new_customers"`
	RetentionRate        float64 `json:"retention_rate"`
	AverageLifetimeValue float64 `json:"average_lifetime_value"`
}

type ProfitLoss struct {
	Revenue     float64 `json:"revenue"`
	Costs       float64 `json:"costs"`
	GrossProfit float64 `json:"gross_profit"`
	NetProfit   float64 `json:"net_profit"`
}
