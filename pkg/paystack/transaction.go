package paystack

import (
	"context"
	"net/http"
)

const (
	verificationSuccessful = "Verification successful"
	defaultCurrency        = "NGN"
)

// initializePayload builds the initialize body from the bound source. The
// amount is multiplied by an optional quantity field and empty fields are
// dropped.
func (c *Client) initializePayload() Payload {
	p := defaultPayload(c.source, InitializeFields)

	quantity := int64(1)
	if c.source != nil {
		if v, ok := c.source.Lookup("quantity"); ok {
			if q, ok := toInt(v); ok && q > 0 {
				quantity = q
			}
		}
	}
	if amount, ok := toInt(p["amount"]); ok {
		p["amount"] = amount * quantity
	}
	if isEmpty(p["currency"]) {
		p["currency"] = defaultCurrency
	}
	return filterEmpty(p)
}

// InitializeTransaction starts a checkout. A nil payload is built from the
// source fields in InitializeFields.
func (c *Client) InitializeTransaction(ctx context.Context, p Payload) (*Result, error) {
	if p == nil {
		p = c.initializePayload()
	}
	return c.Dispatch(ctx, http.MethodPost, PathTransactionInitialize, p)
}

// GetAuthorizationURL initializes a transaction and returns the authorization
// session to send the customer to.
func (c *Client) GetAuthorizationURL(ctx context.Context, p Payload) (*AuthorizationSession, error) {
	resp, err := c.GetAuthorizationResponse(ctx, p)
	if err != nil {
		return nil, err
	}
	return sessionFromResponse(resp)
}

// GetAuthorizationResponse initializes a transaction and returns the whole
// decoded response.
func (c *Client) GetAuthorizationResponse(ctx context.Context, p Payload) (Response, error) {
	res, err := c.InitializeTransaction(ctx, p)
	if err != nil {
		return nil, err
	}
	return res.Response()
}

// reference resolves a transaction reference, falling back to the trxref
// and reference fields of the source.
func (c *Client) reference(ref string) (string, error) {
	if ref == "" {
		ref = lookupString(c.source, "trxref", "reference")
	}
	if ref == "" {
		return "", &ValidationError{Missing: []string{"reference"}}
	}
	return ref, nil
}

func (c *Client) VerifyTransaction(ctx context.Context, ref string) (*Result, error) {
	ref, err := c.reference(ref)
	if err != nil {
		return nil, err
	}
	return c.Dispatch(ctx, http.MethodGet, join(PathTransactionVerify, ref), nil)
}

// IsTransactionVerificationValid reports whether the gateway answered the
// verification of ref with "Verification successful". Every other message,
// including "Invalid transaction reference", yields false.
func (c *Client) IsTransactionVerificationValid(ctx context.Context, ref string) (bool, error) {
	resp, err := c.verify(ctx, ref)
	if err != nil {
		return false, err
	}
	return resp.Message() == verificationSuccessful, nil
}

// GetPaymentData returns the verification response of ref, or a
// *VerificationError when the transaction did not verify.
func (c *Client) GetPaymentData(ctx context.Context, ref string) (Response, error) {
	ref, err := c.reference(ref)
	if err != nil {
		return nil, err
	}
	resp, err := c.verify(ctx, ref)
	if err != nil {
		return nil, err
	}
	if resp.Message() != verificationSuccessful {
		return nil, &VerificationError{Reference: ref, Message: resp.Message()}
	}
	return resp, nil
}

func (c *Client) verify(ctx context.Context, ref string) (Response, error) {
	res, err := c.VerifyTransaction(ctx, ref)
	if err != nil {
		return nil, err
	}
	return res.Response()
}

// ListTransactions returns the data subtree of the transaction list.
func (c *Client) ListTransactions(ctx context.Context) (any, error) {
	return c.doData(ctx, http.MethodGet, PathTransaction)
}

// ExportTransactions requests a CSV export link. The payload is sent as query
// parameters; a nil payload reads from, to and settled from the source.
func (c *Client) ExportTransactions(ctx context.Context, p Payload) (Response, error) {
	p = filterEmpty(c.orDefault(p, ExportFields))
	return c.do(ctx, http.MethodGet, withQuery(PathTransactionExport, payloadQuery(p, ExportFields)), nil)
}
