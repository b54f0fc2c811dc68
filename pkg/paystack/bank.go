package paystack

import (
	"context"
	"net/http"
	"strconv"
)

const (
	defaultCountry      = "nigeria"
	defaultBanksPerPage = 50
)

// GetBanks lists banks of a country. An empty country is read from the
// source, then defaults to nigeria. perPage <= 0 selects 50.
func (c *Client) GetBanks(ctx context.Context, country string, perPage int, useCursor bool) (Response, error) {
	if country == "" {
		country = lookupString(c.source, "country")
	}
	if country == "" {
		country = defaultCountry
	}
	if perPage <= 0 {
		perPage = defaultBanksPerPage
	}
	q := query("country", country, "use_cursor", strconv.FormatBool(useCursor), "perPage", strconv.Itoa(perPage))
	return c.do(ctx, http.MethodGet, withQuery(PathBank, q), nil)
}

// ConfirmAccount resolves the account name behind an account number.
func (c *Client) ConfirmAccount(ctx context.Context, accountNumber, bankCode string) (Response, error) {
	q := query("account_number", accountNumber, "bank_code", bankCode)
	return c.do(ctx, http.MethodGet, withQuery(PathBankResolve, q), nil)
}
