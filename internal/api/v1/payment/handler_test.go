package payment

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"paystack-client/pkg/paystack"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway, statusFor(fmt.Errorf("wrapped: %w", &paystack.APIError{StatusCode: 401})))
	assert.Equal(t, http.StatusBadRequest, statusFor(&paystack.ValidationError{Missing: []string{"otp"}}))
	assert.Equal(t, http.StatusBadRequest, statusFor(&paystack.VerificationError{Reference: "r"}))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("boom")))
}

func TestGatewayResponse(t *testing.T) {
	r := gatewayResponse(paystack.Response{"status": true, "message": "Banks retrieved", "data": []any{"044"}})

	assert.Equal(t, http.StatusOK, r.Status)
	assert.Equal(t, "Banks retrieved", r.Message)
	assert.Equal(t, []any{"044"}, r.Data)
}

func TestRecipientPayload(t *testing.T) {
	p := CreateRecipientRequest{Type: "nuban", Name: "Ada", AccountNumber: "0001", BankCode: "058"}.Payload()

	assert.Equal(t, "nuban", p["type"])
	assert.NotContains(t, p, "description")
}
