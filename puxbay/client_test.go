package puxbay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "pb_test_key"

// waitRecorder replaces Client.wait so tests observe backoff without sleeping.
type waitRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (w *waitRecorder) wait(ctx context.Context, d time.Duration) error {
	w.mu.Lock()
	w.delays = append(w.delays, d)
	w.mu.Unlock()
	return ctx.Err()
}

func (w *waitRecorder) recorded() []time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]time.Duration(nil), w.delays...)
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *waitRecorder) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]Option{WithBaseURL(server.URL), WithLogger(zerolog.Nop())}, opts...)
	client, err := New(testAPIKey, opts...)
	require.NoError(t, err)

	waits := &waitRecorder{}
	client.wait = waits.wait
	return client, waits
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		opts    []Option
		wantErr error
	}{
		{
			name:   "valid key",
			apiKey: "pb_live_123",
		},
		{
			name:    "empty key",
			apiKey:  "",
			wantErr: ErrInvalidAPIKey,
		},
		{
			name:    "wrong prefix",
			apiKey:  "sk_live_123",
			wantErr: ErrInvalidAPIKey,
		},
		{
			name:    "prefix is case sensitive",
			apiKey:  "PB_live_123",
			wantErr: ErrInvalidAPIKey,
		},
		{
			name:    "negative retries",
			apiKey:  testAPIKey,
			opts:    []Option{WithMaxRetries(-1)},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "zero timeout",
			apiKey:  testAPIKey,
			opts:    []Option{WithTimeout(0)},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "empty base URL",
			apiKey:  testAPIKey,
			opts:    []Option{WithBaseURL("")},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "relative base URL",
			apiKey:  testAPIKey,
			opts:    []Option{WithBaseURL("api/v1")},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "negative retry delay",
			apiKey:  testAPIKey,
			opts:    []Option{WithRetryBaseDelay(-time.Second)},
			wantErr: ErrInvalidConfig,
		},
		{
			name:   "zero retries allowed",
			apiKey: testAPIKey,
			opts:   []Option{WithMaxRetries(0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.apiKey, tt.opts...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestNewInvalidKeyKind(t *testing.T) {
	_, err := New("bad")
	assert.Equal(t, KindInvalidAPIKey, KindOf(err))
}

func TestNewPerformsNoIO(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	}))
	defer server.Close()

	_, err := New(testAPIKey, WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = New("nope", WithBaseURL(server.URL))
	require.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestConfigDefaults(t *testing.T) {
	client, err := New(testAPIKey)
	require.NoError(t, err)

	cfg := client.Config()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, testAPIKey, cfg.APIKey)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, time.Second, cfg.RetryBaseDelay)
	assert.Zero(t, cfg.MaxRetryDelay)
	assert.Equal(t, "puxbay-go/"+Version, cfg.UserAgent)

	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	transport, ok := client.httpClient.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, 100, transport.MaxIdleConns)
	assert.Equal(t, 10, transport.MaxIdleConnsPerHost)
	assert.Equal(t, 90*time.Second, transport.IdleConnTimeout)
	assert.True(t, transport.ForceAttemptHTTP2)
	assert.Nil(t, client.limiter)
	assert.Nil(t, client.metrics)
}

func TestClientOptions(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}

	client, err := New(testAPIKey,
		WithBaseURL("https://pos.example.com/api/v1/"),
		WithTimeout(10*time.Second),
		WithMaxRetries(5),
		WithRetryBaseDelay(250*time.Millisecond),
		WithMaxRetryDelay(2*time.Second),
		WithUserAgent("inventory-sync/2.0"),
		WithHTTPClient(custom),
		WithRateLimit(20, 5),
	)
	require.NoError(t, err)

	cfg := client.Config()
	assert.Equal(t, "https://pos.example.com/api/v1", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryBaseDelay)
	assert.Equal(t, 2*time.Second, cfg.MaxRetryDelay)
	assert.Equal(t, "inventory-sync/2.0", cfg.UserAgent)
	assert.Same(t, custom, client.httpClient)
	require.NotNil(t, client.limiter)
	assert.Equal(t, 5, client.limiter.Burst())
}

func TestConfigIsACopy(t *testing.T) {
	client, err := New(testAPIKey)
	require.NoError(t, err)

	cfg := client.Config()
	cfg.APIKey = "pb_other"
	cfg.MaxRetries = 99

	assert.Equal(t, testAPIKey, client.Config().APIKey)
	assert.Equal(t, 3, client.Config().MaxRetries)
}

func TestClientsAreIndependent(t *testing.T) {
	keys := make(chan string, 2)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keys <- r.Header.Get("X-API-Key")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	a, err := New("pb_store_a", WithBaseURL(server.URL))
	require.NoError(t, err)
	b, err := New("pb_store_b", WithBaseURL(server.URL))
	require.NoError(t, err)

	require.NoError(t, a.Do(context.Background(), http.MethodDelete, "products/1/", nil, nil))
	require.NoError(t, b.Do(context.Background(), http.MethodDelete, "products/1/", nil, nil))

	assert.Equal(t, "pb_store_a", <-keys)
	assert.Equal(t, "pb_store_b", <-keys)
}

func TestPing(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/branches/", r.URL.Path)
			assert.Equal(t, "1", r.URL.Query().Get("page"))
			assert.Equal(t, "1", r.URL.Query().Get("page_size"))
			w.Write([]byte(`{"count":1,"next":null,"previous":null,"results":[]}`))
		})

		assert.NoError(t, client.Ping(context.Background()))
	})

	t.Run("unauthorized", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Invalid API key"}`))
		})

		err := client.Ping(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Contains(t, err.Error(), "Invalid API key")
	})
}
