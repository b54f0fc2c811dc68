package paystack

import (
	"context"
	"net/http"
)

// CreateCustomer registers a customer. A nil payload is read from the source
// using CustomerFields.
func (c *Client) CreateCustomer(ctx context.Context, p Payload) (Response, error) {
	return c.do(ctx, http.MethodPost, PathCustomer, c.orDefault(p, CustomerFields))
}

// FetchCustomer accepts a customer id, code or email.
func (c *Client) FetchCustomer(ctx context.Context, customerID string) (Response, error) {
	return c.do(ctx, http.MethodGet, join(PathCustomer, customerID), nil)
}

func (c *Client) UpdateCustomer(ctx context.Context, customerID string, p Payload) (Response, error) {
	return c.do(ctx, http.MethodPut, join(PathCustomer, customerID), c.orDefault(p, CustomerFields))
}

// ListCustomers returns the data subtree of the customer list.
func (c *Client) ListCustomers(ctx context.Context) (any, error) {
	return c.doData(ctx, http.MethodGet, PathCustomer)
}
