package payment

import (
	"errors"
	"net/http"
	"strconv"

	"paystack-client/internal/session"
	"paystack-client/internal/utils"
	"paystack-client/pkg/paystack"
	"paystack-client/pkg/paystack/ginadapter"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Checkout holds the merchant settings exposed to checkout pages.
type Checkout struct {
	PublicKey     string
	MerchantEmail string
}

type Handler struct {
	client   *paystack.Client
	sessions session.Store
	checkout Checkout
	logger   *zap.Logger
}

func NewHandler(client *paystack.Client, sessions session.Store, checkout Checkout, logger *zap.Logger) *Handler {
	return &Handler{client: client, sessions: sessions, checkout: checkout, logger: logger}
}

// source reads the request first. MerchantEmail fills in a missing email.
func (h *Handler) source(c *gin.Context) paystack.PayloadSource {
	src := ginadapter.Source(c)
	if h.checkout.MerchantEmail == "" {
		return src
	}
	return paystack.ChainSource{src, paystack.MapSource{"email": h.checkout.MerchantEmail}}
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		c.Error(err)
	}
	c.JSON(status, utils.NewErrorResponse(status, err.Error()))
}

// Pay initializes a transaction from the posted form or JSON body and redirects the
// browser to the checkout page.
//
// @Summary Start a checkout
// @Description Initialize a transaction from the posted form or JSON fields and redirect to the gateway checkout page. A missing email falls back to the merchant email.
// @Tags payments
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param email formData string false "Customer email"
// @Param amount formData int true "Amount in the smallest currency unit"
// @Param quantity formData int false "Multiplier applied to amount"
// @Param reference formData string false "Transaction reference"
// @Param currency formData string false "Currency, NGN when empty"
// @Param callback_url formData string false "URL the gateway returns to"
// @Success 302 "Redirect to the authorization URL"
// @Failure 400 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Router /pay [post]
func (h *Handler) Pay(c *gin.Context) {
	client := h.client.WithSource(h.source(c))

	s, err := client.GetAuthorizationURL(c.Request.Context(), nil)
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.sessions.Save(c.Request.Context(), s); err != nil {
		h.logger.Warn("could not store authorization session", zap.String("reference", s.Reference), zap.Error(err))
	}

	if err := s.RedirectNow(ginadapter.Redirector(c)); err != nil {
		h.fail(c, err)
	}
}

// Redirect re-sends the browser to a checkout page created earlier.
//
// @Summary Resume a checkout
// @Tags payments
// @Produce json
// @Param reference path string true "Transaction reference"
// @Success 302 "Redirect to the authorization URL"
// @Failure 404 {object} utils.Response
// @Router /pay/{reference}/redirect [get]
func (h *Handler) Redirect(c *gin.Context) {
	s, err := h.sessions.Get(c.Request.Context(), c.Param("reference"))
	if errors.Is(err, session.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := s.RedirectNow(ginadapter.Redirector(c)); err != nil {
		h.fail(c, err)
	}
}

// Callback verifies the trxref the gateway appends to the callback URL.
//
// @Summary Verify a returning checkout
// @Tags payments
// @Produce json
// @Param trxref query string true "Transaction reference appended by the gateway"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Router /payment/callback [get]
func (h *Handler) Callback(c *gin.Context) {
	resp, err := h.client.WithSource(ginadapter.Source(c)).GetPaymentData(c.Request.Context(), "")
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gatewayResponse(resp))
}

// Banks godoc
// @Summary List banks
// @Tags banks
// @Produce json
// @Param country query string false "Country, nigeria when empty"
// @Param per_page query int false "Page size" default(50)
// @Param use_cursor query bool false "Use cursor pagination"
// @Success 200 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Router /banks [get]
func (h *Handler) Banks(c *gin.Context) {
	perPage, _ := strconv.Atoi(c.Query("per_page"))
	useCursor, _ := strconv.ParseBool(c.Query("use_cursor"))

	resp, err := h.client.GetBanks(c.Request.Context(), c.Query("country"), perPage, useCursor)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gatewayResponse(resp))
}

// ResolveAccount godoc
// @Summary Resolve an account number
// @Tags banks
// @Produce json
// @Param account_number query string true "Account number"
// @Param bank_code query string true "Bank code"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Router /banks/resolve [get]
func (h *Handler) ResolveAccount(c *gin.Context) {
	accountNumber, bankCode := c.Query("account_number"), c.Query("bank_code")
	if accountNumber == "" || bankCode == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "account_number and bank_code are required"))
		return
	}

	resp, err := h.client.ConfirmAccount(c.Request.Context(), accountNumber, bankCode)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gatewayResponse(resp))
}

// CreateRecipient godoc
// @Summary Create a transfer recipient
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body CreateRecipientRequest true "Recipient"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Router /transfers/recipients [post]
func (h *Handler) CreateRecipient(c *gin.Context) {
	var req CreateRecipientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.client.CreateTransferRecipient(c.Request.Context(), req.Payload())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gatewayResponse(resp))
}

// MakeTransfer godoc
// @Summary Initiate a transfer
// @Description A reference is generated when none is given.
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body MakeTransferRequest true "Transfer"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Router /transfers [post]
func (h *Handler) MakeTransfer(c *gin.Context) {
	var req MakeTransferRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if req.Reference == "" {
		req.Reference = paystack.GenTranxRef()
	}

	resp, err := h.client.MakeTransfer(c.Request.Context(), req.Payload())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gatewayResponse(resp))
}

// FinalizeTransfer godoc
// @Summary Finalize a transfer with its OTP
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body FinalizeTransferRequest true "Transfer code and OTP"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Router /transfers/finalize [post]
func (h *Handler) FinalizeTransfer(c *gin.Context) {
	var req FinalizeTransferRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.client.FinalizeTransfer(c.Request.Context(), req.Payload())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gatewayResponse(resp))
}

// VerifyTransfer godoc
// @Summary Verify a transfer
// @Tags transfers
// @Produce json
// @Param reference path string true "Transfer reference"
// @Success 200 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Router /transfers/{reference}/verify [get]
func (h *Handler) VerifyTransfer(c *gin.Context) {
	resp, err := h.client.VerifyTransfer(c.Request.Context(), c.Param("reference"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gatewayResponse(resp))
}

// NewReference hands out a fresh transaction reference for client-side
// checkout forms.
//
// @Summary Generate a transaction reference
// @Tags payments
// @Produce json
// @Success 200 {object} utils.Response{data=ReferenceResponse}
// @Router /reference [get]
func (h *Handler) NewReference(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse("success", ReferenceResponse{
		Reference: paystack.GenTranxRef(),
		PublicKey: h.checkout.PublicKey,
	}))
}

// gatewayResponse forwards a decoded gateway answer in the local envelope.
func gatewayResponse(resp paystack.Response) utils.Response {
	return utils.NewSuccessResponse(resp.Message(), resp.Data())
}

// statusFor maps client errors onto the HTTP status returned to callers.
func statusFor(err error) int {
	var apiErr *paystack.APIError
	switch {
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	case errors.Is(err, paystack.ErrInvalidPayload),
		errors.Is(err, paystack.ErrVerificationFailed),
		errors.Is(err, paystack.ErrNoAuthorizationURL):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
