package paystack

import (
	"context"
	"net/http"
)

func (c *Client) CreatePage(ctx context.Context, p Payload) (Response, error) {
	return c.do(ctx, http.MethodPost, PathPage, c.orDefault(p, PageFields))
}

// FetchPage accepts a page id or slug.
func (c *Client) FetchPage(ctx context.Context, pageID string) (Response, error) {
	return c.do(ctx, http.MethodGet, join(PathPage, pageID), nil)
}

func (c *Client) UpdatePage(ctx context.Context, pageID string, p Payload) (Response, error) {
	return c.do(ctx, http.MethodPut, join(PathPage, pageID), c.orDefault(p, PageFields))
}

func (c *Client) ListPages(ctx context.Context) (Response, error) {
	return c.do(ctx, http.MethodGet, PathPage, nil)
}
