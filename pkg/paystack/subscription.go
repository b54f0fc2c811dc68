package paystack

import (
	"context"
	"net/http"
)

// CreateSubscription subscribes a customer to a plan. When read from the
// source, the authorization field comes from authorization_code.
func (c *Client) CreateSubscription(ctx context.Context, p Payload) (Response, error) {
	return c.do(ctx, http.MethodPost, PathSubscription, c.orDefault(p, SubscriptionFields))
}

func (c *Client) FetchSubscription(ctx context.Context, subscriptionID string) (Response, error) {
	return c.do(ctx, http.MethodGet, join(PathSubscription, subscriptionID), nil)
}

func (c *Client) ListSubscriptions(ctx context.Context) (any, error) {
	return c.doData(ctx, http.MethodGet, PathSubscription)
}

func (c *Client) ListCustomerSubscriptions(ctx context.Context, customerID string) (any, error) {
	return c.doData(ctx, http.MethodGet, withQuery(PathSubscription, query("customer", customerID)))
}

func (c *Client) ListPlanSubscriptions(ctx context.Context, planCode string) (any, error) {
	return c.doData(ctx, http.MethodGet, withQuery(PathSubscription, query("plan", planCode)))
}

// EnableSubscription takes code and token, the subscription code and its
// email token.
func (c *Client) EnableSubscription(ctx context.Context, p Payload) (Response, error) {
	return c.do(ctx, http.MethodPost, PathSubscriptionEnable, c.orDefault(p, SubscriptionToggle))
}

func (c *Client) DisableSubscription(ctx context.Context, p Payload) (Response, error) {
	return c.do(ctx, http.MethodPost, PathSubscriptionDisable, c.orDefault(p, SubscriptionToggle))
}
