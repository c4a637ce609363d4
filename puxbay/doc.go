// Package puxbay provides a client for the Puxbay retail and point-of-sale API.
//
// Puxbay manages products, orders, customers, inventory and the day-to-day
// operations of physical stores. This package wraps its REST API with typed
// models and a single request dispatcher that every resource service shares.
//
// # Architecture
//
//   - Client: owns the immutable Config, the pooled HTTP transport and the
//     retry loop. It implements Doer.
//   - Doer and Call: the one dispatch capability resource services consume,
//     plus a generic helper that decodes into a caller-chosen type.
//   - Services: Products, Orders, Customers and the rest, reachable as fields
//     on Client.
//   - Errors: sentinels for errors.Is and structured types for errors.As.
//
// # Usage
//
//	client, err := puxbay.New(
//		os.Getenv("PUXBAY_API_KEY"),
//		puxbay.WithTimeout(10*time.Second),
//		puxbay.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	page, err := client.Products.List(ctx, &puxbay.ListParams{Page: 1, PageSize: 50})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, p := range page.Results {
//		fmt.Println(p.SKU, p.StockQuantity)
//	}
//
// # Retries
//
// Transport failures, 429 and 5xx responses are retried up to MaxRetries
// times. Retry n waits RetryBaseDelay * 2^n, capped by MaxRetryDelay when set.
// Cancelling the context stops both the in-flight attempt and any pending
// backoff. Every attempt of one call carries the same X-Request-ID.
//
// # Error Handling
//
//   - ErrInvalidAPIKey: the key does not start with pb_
//   - ErrInvalidConfig: an option is out of range
//   - ErrUnauthorized, ErrRateLimited, ErrValidation, ErrNotFound, ErrServer:
//     matched by *APIError for 401, 429, 400, 404 and 5xx
//   - ErrTransport: matched by *TransportError
//   - ErrDecode: matched by *DecodeError
//
// KindOf classifies any returned error:
//
//	if puxbay.KindOf(err) == puxbay.KindNotFound {
//		// create it instead
//	}
//
//	var apiErr *puxbay.APIError
//	if errors.As(err, &apiErr) {
//		log.Printf("request %s: %s", apiErr.RequestID, apiErr.Message)
//	}
package puxbay
