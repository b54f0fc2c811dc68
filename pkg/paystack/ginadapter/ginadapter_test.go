package ginadapter

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"paystack-client/pkg/paystack"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestSourceLookup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	form := url.Values{"email": {"ada@example.com"}, "amount": {"500"}}
	req := httptest.NewRequest(http.MethodPost, "/pay?amount=100&plan=PLN_1", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "reference", Value: "ref-1"}}

	src := Source(c)

	v, ok := src.Lookup("amount")
	assert.True(t, ok)
	assert.Equal(t, "500", v, "form body wins over query")

	v, ok = src.Lookup("plan")
	assert.True(t, ok)
	assert.Equal(t, "PLN_1", v)

	v, ok = src.Lookup("reference")
	assert.True(t, ok)
	assert.Equal(t, "ref-1", v)

	_, ok = src.Lookup("currency")
	assert.False(t, ok)
}

func TestRedirector(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	session := &paystack.AuthorizationSession{AuthorizationURL: "https://checkout.paystack.com/abc"}
	err := session.RedirectNow(Redirector(c))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://checkout.paystack.com/abc", w.Header().Get("Location"))
}

func TestSourceLookupJSONBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	req := httptest.NewRequest(http.MethodPost, "/pay?email=query@example.com&plan=PLN_1",
		strings.NewReader(`{"email":"a@b.c","amount":5000}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	src := Source(c)

	v, ok := src.Lookup("email")
	assert.True(t, ok)
	assert.Equal(t, "a@b.c", v, "JSON body wins over query")

	v, ok = src.Lookup("amount")
	assert.True(t, ok)
	assert.Equal(t, float64(5000), v)

	v, ok = src.Lookup("plan")
	assert.True(t, ok)
	assert.Equal(t, "PLN_1", v)

	var again map[string]any
	assert.NoError(t, c.ShouldBindBodyWith(&again, binding.JSON), "body can still be bound")
	assert.Equal(t, "a@b.c", again["email"])
}
