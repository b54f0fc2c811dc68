package payment

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/pay", h.Pay)
	r.GET("/pay/:reference/redirect", h.Redirect)
	r.GET("/payment/callback", h.Callback)
	r.GET("/reference", h.NewReference)

	banks := r.Group("/banks")
	{
		banks.GET("", h.Banks)
		banks.GET("/resolve", h.ResolveAccount)
	}

	transfers := r.Group("/transfers")
	{
		transfers.POST("", h.MakeTransfer)
		transfers.POST("/recipients", h.CreateRecipient)
		transfers.POST("/finalize", h.FinalizeTransfer)
		transfers.GET("/:reference/verify", h.VerifyTransfer)
	}
}
