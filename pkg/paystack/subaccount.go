package paystack

import (
	"context"
	"net/http"
	"strconv"
)

// CreateSubAccount creates a settlement subaccount. Empty fields are removed
// from the payload whether it was passed in or read from the source.
func (c *Client) CreateSubAccount(ctx context.Context, p Payload) (Response, error) {
	return c.do(ctx, http.MethodPost, PathSubAccount, filterEmpty(c.orDefault(p, SubAccountFields)))
}

func (c *Client) FetchSubAccount(ctx context.Context, code string) (Response, error) {
	return c.do(ctx, http.MethodGet, join(PathSubAccount, code), nil)
}

func (c *Client) UpdateSubAccount(ctx context.Context, code string, p Payload) (Response, error) {
	return c.do(ctx, http.MethodPut, join(PathSubAccount, code), filterEmpty(c.orDefault(p, SubAccountUpdateFields)))
}

func (c *Client) ListSubAccounts(ctx context.Context, perPage, page int) (Response, error) {
	q := query("perPage", strconv.Itoa(perPage), "page", strconv.Itoa(page))
	return c.do(ctx, http.MethodGet, withQuery(PathSubAccount, q), nil)
}
