package puxbay

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// WebhooksService manages webhook subscriptions and their delivery log.
type WebhooksService struct {
	resource resource[Webhook]
}

// List returns one page of webhooks
func (s *WebhooksService) List(ctx context.Context, params *ListParams) (*Page[Webhook], error) {
	return s.resource.list(ctx, params)
}

// Get retrieves a webhook by ID
func (s *WebhooksService) Get(ctx context.Context, id string) (*Webhook, error) {
	return s.resource.get(ctx, id)
}

// Create subscribes endpoint to events. An empty secret is not sent.
func (s *WebhooksService) Create(ctx context.Context, endpoint string, events []string, secret string) (*Webhook, error) {
	body := map[string]any{
		"url":    endpoint,
		"events": events,
	}
	if secret != "" {
		body["secret"] = secret
	}
	return s.resource.create(ctx, body)
}

// Update patches the webhook with the given ID
func (s *WebhooksService) Update(ctx context.Context, id string, webhook *Webhook) (*Webhook, error) {
	return s.resource.update(ctx, id, webhook)
}

// Delete removes the webhook with the given ID
func (s *WebhooksService) Delete(ctx context.Context, id string) error {
	return s.resource.delete(ctx, id)
}

// ListEvents returns one page of delivery attempts for the webhook.
func (s *WebhooksService) ListEvents(ctx context.Context, id string, page int) (*Page[WebhookEvent], error) {
	if id == "" {
		return nil, ErrMissingID
	}

	q := url.Values{}
	q.Set("webhook", id)
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	return Call[Page[WebhookEvent]](ctx, s.resource.d, http.MethodGet, withQuery("webhook-logs/", q), nil)
}

// NotificationsService reads the account's notification feed.
type NotificationsService struct {
	resource resource[Notification]
}

// List returns one page of notifications
func (s *NotificationsService) List(ctx context.Context, params *ListParams) (*Page[Notification], error) {
	return s.resource.list(ctx, params)
}

// Get retrieves a notification by ID
func (s *NotificationsService) Get(ctx context.Context, id string) (*Notification, error) {
	return s.resource.get(ctx, id)
}

// MarkAsRead flags a notification as read and returns it
func (s *NotificationsService) MarkAsRead(ctx context.Context, id string) (*Notification, error) {
	return s.resource.action(ctx, id, "mark-read", nil)
}
