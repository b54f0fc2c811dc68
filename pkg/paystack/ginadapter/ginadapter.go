// Package ginadapter lets a paystack.Client read default payload fields from
// an inbound gin request and redirect that request's browser.
package ginadapter

import (
	"net/http"
	"sync"

	"paystack-client/pkg/paystack"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type source struct {
	c *gin.Context

	once sync.Once
	body map[string]any
}

// Source returns a PayloadSource over the form body, the JSON body, the
// query string and the route parameters of c, in that order.
func Source(c *gin.Context) paystack.PayloadSource {
	return &source{c: c}
}

// jsonBody decodes a JSON request body once. The raw body stays cached on
// the context, so handlers can still bind it afterwards.
func (s *source) jsonBody() map[string]any {
	s.once.Do(func() {
		if s.c.Request == nil || s.c.ContentType() != binding.MIMEJSON {
			return
		}
		var m map[string]any
		if err := s.c.ShouldBindBodyWith(&m, binding.JSON); err == nil {
			s.body = m
		}
	})
	return s.body
}

func (s *source) Lookup(field string) (any, bool) {
	if v, ok := s.c.GetPostForm(field); ok {
		return v, true
	}
	if v, ok := s.jsonBody()[field]; ok {
		return v, true
	}
	if v, ok := s.c.GetQuery(field); ok {
		return v, true
	}
	if v := s.c.Param(field); v != "" {
		return v, true
	}
	return nil, false
}

// Redirector answers c with a 302 to the given URL.
func Redirector(c *gin.Context) paystack.Redirector {
	return paystack.RedirectFunc(func(url string) error {
		c.Redirect(http.StatusFound, url)
		return nil
	})
}
