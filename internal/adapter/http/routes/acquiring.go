package routes

import (
	"monopay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMerchant = "/merchant"
	PathInvoices = "/invoices"
)

func addMerchantRoutes(rg *gin.RouterGroup, merchantHandler *handlers.MerchantHandler) {
	merchant := rg.Group(PathMerchant)
	{
		merchant.GET("", merchantHandler.GetMerchant)
		merchant.GET("/statement", merchantHandler.GetStatement)
		merchant.GET("/pubkey", merchantHandler.GetPublicKey)
	}
}

func addInvoiceRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.POST("/direct", invoiceHandler.DirectPayment)
		invoices.GET("/:invoice_id", invoiceHandler.GetInvoice)
		invoices.POST("/:invoice_id/refund", invoiceHandler.RefundInvoice)
		invoices.POST("/:invoice_id/cancel", invoiceHandler.CancelInvoice)
		invoices.POST("/:invoice_id/capture", invoiceHandler.CaptureInvoice)
		invoices.GET("/:invoice_id/receipt", invoiceHandler.GetReceipt)
		invoices.GET("/:invoice_id/fiscal-checks", invoiceHandler.GetFiscalChecks)
		invoices.GET("/:invoice_id/qr", invoiceHandler.GetQRCode)
		invoices.GET("/:invoice_id/operations", invoiceHandler.ListOperations)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
