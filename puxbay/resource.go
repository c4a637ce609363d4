package puxbay

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Page is the pagination envelope every list endpoint returns.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// HasNext reports whether the server advertised another page.
func (p *Page[T]) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

// ListParams holds the paging and filter parameters list endpoints accept.
// Zero values are omitted from the query.
type ListParams struct {
	Page     int
	PageSize int
	Search   string
	Category string
	Status   string
	Customer string
	Branch   string
	Role     string
}

func (p *ListParams) values() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(p.PageSize))
	}
	setIf(q, "search", p.Search)
	setIf(q, "category", p.Category)
	setIf(q, "status", p.Status)
	setIf(q, "customer", p.Customer)
	setIf(q, "branch", p.Branch)
	setIf(q, "role", p.Role)
	return q
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// withQuery appends an encoded query to path when q is non-empty.
func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// resource implements the list/get/create/update/delete pattern shared by
// the collection endpoints, decoding into T.
type resource[T any] struct {
	d    Doer
	name string
}

func newResource[T any](d Doer, name string) resource[T] {
	return resource[T]{d: d, name: name}
}

func (r resource[T]) collection() string {
	return r.name + "/"
}

func (r resource[T]) member(id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("%s: %w", r.name, ErrMissingID)
	}
	return r.name + "/" + url.PathEscape(id) + "/", nil
}

func (r resource[T]) list(ctx context.Context, params *ListParams) (*Page[T], error) {
	return Call[Page[T]](ctx, r.d, http.MethodGet, withQuery(r.collection(), params.values()), nil)
}

func (r resource[T]) get(ctx context.Context, id string) (*T, error) {
	path, err := r.member(id)
	if err != nil {
		return nil, err
	}
	return Call[T](ctx, r.d, http.MethodGet, path, nil)
}

func (r resource[T]) create(ctx context.Context, body any) (*T, error) {
	return Call[T](ctx, r.d, http.MethodPost, r.collection(), body)
}

// update sends a partial update; the API treats PATCH bodies as field sets.
func (r resource[T]) update(ctx context.Context, id string, body any) (*T, error) {
	path, err := r.member(id)
	if err != nil {
		return nil, err
	}
	return Call[T](ctx, r.d, http.MethodPatch, path, body)
}

func (r resource[T]) delete(ctx context.Context, id string) error {
	path, err := r.member(id)
	if err != nil {
		return err
	}
	return r.d.Do(ctx, http.MethodDelete, path, nil, nil)
}

// action POSTs to a detail route such as products/{id}/adjust_stock/.
func (r resource[T]) action(ctx context.Context, id, name string, body any) (*T, error) {
	path, err := r.member(id)
	if err != nil {
		return nil, err
	}
	return Call[T](ctx, r.d, http.MethodPost, path+name+"/", body)
}
