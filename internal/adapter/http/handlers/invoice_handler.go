package handlers

import (
	"errors"
	"io"
	"net/http"

	"monopay/internal/adapter/http/dto/request"
	"monopay/internal/adapter/http/dto/response"
	"monopay/internal/infrastructure/logging"
	"monopay/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler handles HTTP requests for gateway invoices.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	logger  *zap.Logger
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, logger *zap.Logger) *InvoiceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceHandler{usecase: uc, logger: logger}
}

// CreateInvoice godoc
// @Summary      Create invoice
// @Description  Creates a gateway invoice. Pass with_qr to receive a PNG QR code of the payment page.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request  body      request.InvoiceCreateRequest  true  "Invoice"
// @Success      201      {object}  response.InvoiceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req request.InvoiceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, h.logger, "[payment][handler] create invalid payload", err)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		writeError(c, h.logger, "[payment][handler] create invalid amount", err)
		return
	}

	inv, err := h.usecase.Create(c.Request.Context(), params, req.WithQR)
	if err != nil {
		writeError(c, h.logger, "[payment][handler] create failed", err)
		return
	}
	logging.FromContext(c.Request.Context(), h.logger).Info("[payment][handler] create success", zap.String("invoice_id", inv.InvoiceID))
	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

// GetInvoice godoc
// @Summary      Invoice status
// @Tags         invoices
// @Produce      json
// @Param        invoice_id  path      string  true  "Invoice ID"
// @Success      200         {object}  response.InvoiceResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /invoices/{invoice_id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.Status(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		writeError(c, h.logger, "[payment][handler] status failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// RefundInvoice godoc
// @Summary      Refund invoice
// @Tags         invoices
// @Produce      json
// @Param        invoice_id  path      string  true  "Invoice ID"
// @Success      200         {object}  response.InvoiceResponse
// @Failure      502         {object}  pkg.HTTPError
// @Router       /invoices/{invoice_id}/refund [post]
func (h *InvoiceHandler) RefundInvoice(c *gin.Context) {
	inv, err := h.usecase.Refund(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		writeError(c, h.logger, "[payment][handler] refund failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// CancelInvoice godoc
// @Summary      Cancel unpaid invoice
// @Tags         invoices
// @Param        invoice_id  path  string  true  "Invoice ID"
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Router       /invoices/{invoice_id}/cancel [post]
func (h *InvoiceHandler) CancelInvoice(c *gin.Context) {
	if err := h.usecase.Cancel(c.Request.Context(), c.Param("invoice_id")); err != nil {
		writeError(c, h.logger, "[payment][handler] cancel failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CaptureInvoice godoc
// @Summary      Capture held invoice
// @Description  Without an amount the invoice's current amount is captured.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice_id  path      string                  true   "Invoice ID"
// @Param        request     body      request.CaptureRequest  false  "Capture"
// @Success      200         {object}  response.InvoiceResponse
// @Failure      502         {object}  pkg.HTTPError
// @Router       /invoices/{invoice_id}/capture [post]
func (h *InvoiceHandler) CaptureInvoice(c *gin.Context) {
	var req request.CaptureRequest
	// The body is optional; an empty one (io.EOF) captures the current amount.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		writeBadRequest(c, h.logger, "[payment][handler] capture invalid payload", err)
		return
	}
	amount, err := req.ResolveAmountPtr()
	if err != nil {
		writeError(c, h.logger, "[payment][handler] capture invalid amount", err)
		return
	}

	inv, err := h.usecase.Capture(c.Request.Context(), c.Param("invoice_id"), amount, req.Items)
	if err != nil {
		writeError(c, h.logger, "[payment][handler] capture failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// GetReceipt godoc
// @Summary      Invoice receipt
// @Tags         invoices
// @Produce      application/pdf
// @Param        invoice_id  path  string  true  "Invoice ID"
// @Success      200  {file}    binary
// @Failure      502  {object}  pkg.HTTPError
// @Router       /invoices/{invoice_id}/receipt [get]
func (h *InvoiceHandler) GetReceipt(c *gin.Context) {
	file, err := h.usecase.Receipt(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		writeError(c, h.logger, "[payment][handler] receipt failed", err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="receipt.pdf"`)
	c.Data(http.StatusOK, "application/pdf", file)
}

// GetFiscalChecks godoc
// @Summary      Invoice fiscal checks
// @Tags         invoices
// @Produce      json
// @Param        invoice_id  path      string  true  "Invoice ID"
// @Success      200         {object}  response.FiscalChecksResponse
// @Failure      502         {object}  pkg.HTTPError
// @Router       /invoices/{invoice_id}/fiscal-checks [get]
func (h *InvoiceHandler) GetFiscalChecks(c *gin.Context) {
	checks, err := h.usecase.FiscalChecks(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		writeError(c, h.logger, "[payment][handler] fiscal checks failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FiscalChecksResponse{Checks: checks})
}

// GetQRCode godoc
// @Summary      Payment page QR code
// @Tags         invoices
// @Produce      image/png
// @Param        invoice_id  path  string  true  "Invoice ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  pkg.HTTPError
// @Router       /invoices/{invoice_id}/qr [get]
func (h *InvoiceHandler) GetQRCode(c *gin.Context) {
	png, err := h.usecase.QRCode(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		writeError(c, h.logger, "[payment][handler] qr failed", err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// DirectPayment godoc
// @Summary      Pay with card data
// @Description  Charges raw card data. A 3-D Secure redirect is returned as page_url.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        request  body      request.DirectPaymentRequest  true  "Payment"
// @Success      200      {object}  response.InvoiceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /invoices/direct [post]
func (h *InvoiceHandler) DirectPayment(c *gin.Context) {
	var req request.DirectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, h.logger, "[payment][handler] direct payment invalid payload", err)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		writeError(c, h.logger, "[payment][handler] direct payment invalid amount", err)
		return
	}

	inv, err := h.usecase.DirectPayment(c.Request.Context(), params)
	if err != nil {
		writeError(c, h.logger, "[payment][handler] direct payment failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// ListOperations godoc
// @Summary      Gateway operations journal
// @Tags         invoices
// @Produce      json
// @Param        invoice_id  path  string  true  "Invoice ID"
// @Success      200  {array}   response.GatewayOperationResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /invoices/{invoice_id}/operations [get]
func (h *InvoiceHandler) ListOperations(c *gin.Context) {
	ops, err := h.usecase.Operations(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		writeError(c, h.logger, "[payment][handler] operations failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromGatewayOperations(ops))
}
