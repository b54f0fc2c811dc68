package paystack

import (
	"context"
	"net/http"
)

// CreatePlan creates a subscription plan. A nil payload holds every field of
// PlanFields, nil where the source has no value; nothing is filtered.
func (c *Client) CreatePlan(ctx context.Context, p Payload) (Response, error) {
	return c.do(ctx, http.MethodPost, PathPlan, c.orDefault(p, PlanFields))
}

func (c *Client) FetchPlan(ctx context.Context, planCode string) (Response, error) {
	return c.do(ctx, http.MethodGet, join(PathPlan, planCode), nil)
}

func (c *Client) UpdatePlan(ctx context.Context, planCode string, p Payload) (Response, error) {
	return c.do(ctx, http.MethodPut, join(PathPlan, planCode), c.orDefault(p, PlanFields))
}

// ListPlans returns the data subtree of the plan list.
func (c *Client) ListPlans(ctx context.Context) (any, error) {
	return c.doData(ctx, http.MethodGet, PathPlan)
}
