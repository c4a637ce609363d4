package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/puxbay-go/filter"
	"github.com/s0up4200/puxbay-go/puxbay"
)

const productsPage = `{
	"count": 2,
	"next": null,
	"previous": null,
	"results": [
		{"id": "p-1", "name": "Blue Widget", "sku": "SKU-1", "price": 9.5, "stock_quantity": 3, "is_active": true},
		{"id": "p-2", "name": "Red Gadget", "sku": "SKU-2", "price": 25, "stock_quantity": 40, "is_active": true}
	]
}`

func countPage(n int) string {
	return fmt.Sprintf(`{"count": %d, "next": null, "previous": null, "results": []}`, n)
}

type requestLog struct {
	mu       sync.Mutex
	requests []*http.Request
}

func (l *requestLog) all() []*http.Request {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.requests)
}

// newAPI starts a fake API and points the environment at it
func newAPI(t *testing.T, routes map[string]string) *requestLog {
	t.Helper()

	log := &requestLog{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.mu.Lock()
		log.requests = append(log.requests, r)
		log.mu.Unlock()

		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"detail": "Not found."}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("PUXBAY_API_KEY", "pb_test_key")
	t.Setenv("PUXBAY_BASE_URL", server.URL)
	t.Setenv("PUXBAY_API_MAX_RETRIES", "0")
	t.Setenv("PUXBAY_LOGGING_LEVEL", "error")

	return log
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if slice, ok := f.Value.(pflag.SliceValue); ok {
			_ = slice.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestListTable(t *testing.T) {
	requests := newAPI(t, map[string]string{"/products/": productsPage})

	out, err := execute(t, "list", "products", "--page-size", "50", "--search", "widget")
	require.NoError(t, err)

	assert.Contains(t, out, "SKU-1")
	assert.Contains(t, out, "Red Gadget")
	assert.Contains(t, out, "Showing 2 of 2 products (page 1)")

	reqs := requests.all()
	require.Len(t, reqs, 1)
	query := reqs[0].URL.Query()
	assert.Equal(t, "1", query.Get("page"))
	assert.Equal(t, "50", query.Get("page_size"))
	assert.Equal(t, "widget", query.Get("search"))
	assert.Equal(t, "pb_test_key", reqs[0].Header.Get("X-API-Key"))
}

func TestListFilterJSON(t *testing.T) {
	newAPI(t, map[string]string{"/products/": productsPage})
	t.Setenv("PUXBAY_OUTPUT_FORMAT", "json")

	out, err := execute(t, "list", "products", "--filter", "stock_quantity < 5")
	require.NoError(t, err)

	var records []filter.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "p-1", records[0]["id"])
}

func TestListPreset(t *testing.T) {
	newAPI(t, map[string]string{"/products/": productsPage})

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
filter:
  expensive: "price > 20"
`), 0o600))

	out, err := execute(t, "--config", configPath, "list", "products", "--preset", "expensive")
	require.NoError(t, err)
	assert.Contains(t, out, "SKU-2")
	assert.NotContains(t, out, "SKU-1")

	_, err = execute(t, "--config", configPath, "list", "products", "--preset", "missing")
	assert.ErrorContains(t, err, "preset 'missing' not found")
}

func writePresets(t *testing.T) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
filter:
  expensive: "price > 20"
  restock: "stock_quantity < 5"
  widgets: 'icontains(name, "widget")'
evaluation:
  workers: 2
  batch_size: 1
`), 0o600))
	return configPath
}

func TestListPresetSummary(t *testing.T) {
	requests := newAPI(t, map[string]string{"/products/": productsPage})
	configPath := writePresets(t)

	out, err := execute(t, "--config", configPath, "list", "products", "--preset", "restock", "--preset", "expensive")
	require.NoError(t, err)

	assert.Regexp(t, `expensive\s+price > 20\s+1`, out)
	assert.Regexp(t, `restock\s+stock_quantity < 5\s+1`, out)
	assert.NotContains(t, out, "widgets")
	assert.NotContains(t, out, "SKU-1")
	assert.Contains(t, out, "Evaluated 2 presets against 2 of 2 products (page 1)")
	assert.Len(t, requests.all(), 1)
}

func TestListPresetAllJSON(t *testing.T) {
	newAPI(t, map[string]string{"/products/": productsPage})
	configPath := writePresets(t)
	t.Setenv("PUXBAY_OUTPUT_FORMAT", "json")

	out, err := execute(t, "--config", configPath, "list", "products", "--preset", "all")
	require.NoError(t, err)

	var matches map[string][]filter.Record
	require.NoError(t, json.Unmarshal([]byte(out), &matches))
	require.Len(t, matches, 3)
	require.Len(t, matches["widgets"], 1)
	assert.Equal(t, "p-1", matches["widgets"][0]["id"])
	require.Len(t, matches["expensive"], 1)
	assert.Equal(t, "p-2", matches["expensive"][0]["id"])
	assert.Len(t, matches["restock"], 1)
}

func TestListPresetSummaryErrors(t *testing.T) {
	requests := newAPI(t, map[string]string{"/products/": productsPage})

	_, err := execute(t, "--config", writePresets(t), "list", "products", "--preset", "restock,missing")
	assert.ErrorContains(t, err, "preset 'missing' not found")

	_, err = execute(t, "list", "products", "--preset", "all")
	assert.ErrorContains(t, err, "no presets configured")

	assert.Empty(t, requests.all())
}

func TestListNoMatches(t *testing.T) {
	newAPI(t, map[string]string{"/products/": productsPage})

	out, err := execute(t, "list", "products", "--filter", "price > 1000")
	require.NoError(t, err)
	assert.Contains(t, out, "No records found.")
}

func TestListErrors(t *testing.T) {
	newAPI(t, map[string]string{"/products/": productsPage})

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown resource", []string{"list", "widgets"}, `unknown resource "widgets"`},
		{"invalid filter", []string{"list", "products", "--filter", "price >"}, "invalid filter expression"},
		{"api error", []string{"list", "orders"}, "failed to list orders"},
		{"missing argument", []string{"list"}, "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestListAPIErrorKind(t *testing.T) {
	newAPI(t, nil)

	_, err := execute(t, "list", "customers")
	require.Error(t, err)
	assert.ErrorIs(t, err, puxbay.ErrNotFound)
}

func TestGet(t *testing.T) {
	newAPI(t, map[string]string{
		"/customers/c-1/": `{"id": "c-1", "name": "Ada", "loyalty_points": 120, "store_credit_balance": 5}`,
	})

	out, err := execute(t, "get", "customers", "c-1")
	require.NoError(t, err)

	var customer puxbay.Customer
	require.NoError(t, json.Unmarshal([]byte(out), &customer))
	assert.Equal(t, "Ada", customer.Name)
	assert.Equal(t, 120, customer.LoyaltyPoints)
}

func TestTestCommand(t *testing.T) {
	requests := newAPI(t, map[string]string{
		"/branches/":  countPage(2),
		"/products/":  countPage(150),
		"/orders/":    countPage(42),
		"/customers/": countPage(7),
	})

	out, err := execute(t, "test")
	require.NoError(t, err)

	assert.Contains(t, out, "✓ Connection successful!")
	assert.Regexp(t, `products:\s+150`, out)
	assert.Regexp(t, `orders:\s+42`, out)
	assert.Regexp(t, `customers:\s+7`, out)
	assert.Regexp(t, `branches:\s+2`, out)
	assert.Len(t, requests.all(), 5)
}

func TestTestCommandUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"detail": "Invalid API key."}`)
	}))
	t.Cleanup(server.Close)
	newAPI(t, nil)
	t.Setenv("PUXBAY_BASE_URL", server.URL)

	_, err := execute(t, "test")
	assert.ErrorIs(t, err, puxbay.ErrUnauthorized)
	assert.ErrorContains(t, err, "Invalid API key.")
}

func TestMissingAPIKey(t *testing.T) {
	newAPI(t, nil)
	t.Setenv("PUXBAY_API_KEY", "")

	_, err := execute(t, "list", "products")
	assert.ErrorContains(t, err, "failed to load config")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sdkVersion: "+puxbay.Version)
	assert.Contains(t, out, "version: dev")
}

func TestUpdateRefusesDevBuild(t *testing.T) {
	_, err := execute(t, "update", "--check")
	assert.ErrorContains(t, err, "development build")
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "-"},
		{"", "-"},
		{"abc", "abc"},
		{float64(42), "42"},
		{9.5, "9.50"},
		{true, "true"},
		{[]any{"a", "b"}, `["a","b"]`},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, formatCell(tt.in))
		})
	}
}
