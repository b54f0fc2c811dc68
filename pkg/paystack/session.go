package paystack

import "fmt"

// AuthorizationSession is the checkout handle returned by transaction
// initialization.
type AuthorizationSession struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// Redirector sends the customer's browser to a URL.
type Redirector interface {
	Redirect(url string) error
}

// RedirectFunc adapts a function to the Redirector interface.
type RedirectFunc func(url string) error

func (f RedirectFunc) Redirect(url string) error { return f(url) }

// RedirectNow hands the authorization URL to r.
func (s *AuthorizationSession) RedirectNow(r Redirector) error {
	if s == nil || s.AuthorizationURL == "" {
		return ErrNoAuthorizationURL
	}
	return r.Redirect(s.AuthorizationURL)
}

func sessionFromResponse(resp Response) (*AuthorizationSession, error) {
	data := resp.DataMap()
	url, _ := data["authorization_url"].(string)
	if url == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoAuthorizationURL, resp.Message())
	}
	s := &AuthorizationSession{AuthorizationURL: url}
	s.AccessCode, _ = data["access_code"].(string)
	s.Reference, _ = data["reference"].(string)
	return s, nil
}
