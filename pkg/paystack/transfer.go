package paystack

import (
	"context"
	"net/http"
	"sort"
)

// requirePayload checks that every required field holds a value. An explicit
// payload is returned unchanged. A payload read from the source holds the
// required fields plus the optional ones that are set.
func (c *Client) requirePayload(p Payload, required, optional []string) (Payload, error) {
	explicit := p != nil
	if !explicit {
		p = defaultPayload(c.source, fields(append(append([]string{}, required...), optional...)...))
	}

	rules := make(map[string]any, len(required))
	for _, k := range required {
		rules[k] = "required"
	}
	if errs := c.validate.ValidateMap(p, rules); len(errs) > 0 {
		missing := make([]string, 0, len(errs))
		for k := range errs {
			missing = append(missing, k)
		}
		sort.Strings(missing)
		return nil, &ValidationError{Missing: missing}
	}
	if explicit {
		return p, nil
	}

	out := make(Payload, len(required)+len(optional))
	for _, k := range required {
		out[k] = p[k]
	}
	pick(out, p, optional)
	return out, nil
}

// CreateTransferRecipient registers the account a transfer is paid into.
// type, name, account_number and bank_code are required.
func (c *Client) CreateTransferRecipient(ctx context.Context, p Payload) (Response, error) {
	body, err := c.requirePayload(p, TransferRecipientRequired, TransferRecipientOptional)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, PathTransferRecipient, body)
}

func (c *Client) RetrieveTransferRecipient(ctx context.Context, recipientCode string) (Response, error) {
	return c.do(ctx, http.MethodGet, join(PathTransferRecipient, recipientCode), nil)
}

func (c *Client) GetTransferRecipients(ctx context.Context) (Response, error) {
	return c.do(ctx, http.MethodGet, PathTransferRecipient, nil)
}

// RetrieveTransfer fetches one transfer by id or code, or lists transfers
// when idOrCode is empty.
func (c *Client) RetrieveTransfer(ctx context.Context, idOrCode string) (Response, error) {
	path := PathTransfer
	if idOrCode != "" {
		path = join(PathTransfer, idOrCode)
	}
	return c.do(ctx, http.MethodGet, path, nil)
}

// MakeTransfer initiates a transfer. source, reason, amount and recipient
// are required.
func (c *Client) MakeTransfer(ctx context.Context, p Payload) (Response, error) {
	body, err := c.requirePayload(p, MakeTransferRequired, MakeTransferOptional)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, PathTransfer, body)
}

// FinalizeTransfer completes a transfer that is waiting for its OTP.
func (c *Client) FinalizeTransfer(ctx context.Context, p Payload) (Response, error) {
	body, err := c.requirePayload(p, FinalizeTransferRequired, nil)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, PathTransferFinalize, body)
}

func (c *Client) VerifyTransfer(ctx context.Context, reference string) (Response, error) {
	if reference == "" {
		return nil, &ValidationError{Missing: []string{"reference"}}
	}
	return c.do(ctx, http.MethodGet, join(PathTransferVerify, reference), nil)
}
