package monopay

import (
	"context"
	"encoding/base64"
	"strings"
)

// Invoice statuses reported by the gateway. The SDK passes statuses through untouched;
// these names exist for callers' comparisons only.
const (
	StatusCreated    = "created"
	StatusProcessing = "processing"
	StatusHold       = "hold"
	StatusSuccess    = "success"
	StatusFailure    = "failure"
	StatusReversed   = "reversed"
	StatusExpired    = "expired"
)

// Invoice proxies a gateway invoice. Every successful call that returns a new representation
// replaces the record's data wholesale.
type Invoice struct {
	Record
}

// NewInvoice returns an empty invoice bound to c.
func NewInvoice(c *Client) *Invoice {
	inv := &Invoice{}
	inv.BindClient(c)
	return inv
}

// SetInvoiceID points the record at an existing invoice, typically before LoadInfo.
func (inv *Invoice) SetInvoiceID(id string) *Invoice {
	inv.Set("invoiceId", id)
	return inv
}

func (inv *Invoice) SetPageURL(u string) *Invoice {
	inv.Set("pageUrl", u)
	return inv
}

func (inv *Invoice) InvoiceID() string     { return inv.StringValue("invoiceId") }
func (inv *Invoice) Status() string        { return inv.StringValue("status") }
func (inv *Invoice) PageURL() string       { return inv.StringValue("pageUrl") }
func (inv *Invoice) FailureReason() string { return inv.StringValue("failureReason") }
func (inv *Invoice) ErrCode() string       { return inv.StringValue("errCode") }
func (inv *Invoice) CreatedDate() string   { return inv.StringValue("createdDate") }
func (inv *Invoice) ModifiedDate() string  { return inv.StringValue("modifiedDate") }
func (inv *Invoice) Reference() string     { return inv.StringValue("reference") }
func (inv *Invoice) Destination() string   { return inv.StringValue("destination") }

// Amount is in minor units (kopiykas for UAH).
func (inv *Invoice) Amount() (int64, bool)      { return inv.IntValue("amount") }
func (inv *Invoice) Ccy() (int64, bool)         { return inv.IntValue("ccy") }
func (inv *Invoice) FinalAmount() (int64, bool) { return inv.IntValue("finalAmount") }

func (inv *Invoice) CancelList() []any {
	v, _ := inv.Get("cancelList")
	list, _ := v.([]any)
	return list
}

func (inv *Invoice) PaymentInfo() map[string]any { return inv.object("paymentInfo") }
func (inv *Invoice) WalletData() map[string]any  { return inv.object("walletData") }
func (inv *Invoice) TipsInfo() map[string]any    { return inv.object("tipsInfo") }

func (inv *Invoice) object(key string) map[string]any {
	v, _ := inv.Get(key)
	m, _ := v.(map[string]any)
	return m
}

// Create validates the amount locally and then creates the invoice.
// More info: https://api.monobank.ua/docs/acquiring.html#/paths/~1api~1merchant~1invoice~1create/post
func (inv *Invoice) Create(ctx context.Context, params Params) (*Invoice, error) {
	c, err := inv.gateway()
	if err != nil {
		return inv, err
	}
	if err := validateAmount(params); err != nil {
		return inv, err
	}

	resp, err := c.CreateInvoice(ctx, params)
	if err != nil {
		return inv, err
	}
	_, hasID := present(resp, "invoiceId")
	_, hasURL := present(resp, "pageUrl")
	if !hasID || !hasURL {
		return inv, contractError(CodeInvoiceCreateFailed, "Invoice can't be created on Mono.")
	}

	inv.ReplaceAll(resp)
	return inv, nil
}

// LoadInfo refreshes the record from the invoice status endpoint.
func (inv *Invoice) LoadInfo(ctx context.Context) (*Invoice, error) {
	c, id, err := inv.target()
	if err != nil {
		return inv, err
	}

	resp, err := c.InvoiceStatus(ctx, id)
	if err != nil {
		return inv, err
	}
	_, hasID := present(resp, "invoiceId")
	_, hasStatus := present(resp, "status")
	if !hasID || !hasStatus {
		return inv, contractError(CodeInvoiceNotFound, "Invoice can't be found on Mono.")
	}

	inv.ReplaceAll(resp)
	return inv, nil
}

// Refund reverses a paid invoice. Which responses count as accepted depends on the client's
// RefundPolicy.
func (inv *Invoice) Refund(ctx context.Context) (*Invoice, error) {
	c, id, err := inv.target()
	if err != nil {
		return inv, err
	}

	resp, err := c.InvoiceCancel(ctx, id)
	if err != nil {
		return inv, err
	}
	status, hasStatus := present(resp, "status")
	accepted := hasStatus
	if c.refundPolicy == RefundRequireSuccess {
		accepted = hasStatus && stringify(status) == StatusSuccess
	}
	if !accepted {
		return inv, contractError(CodeInvoiceRefundFailed, "Invoice can't be canceled on Mono.")
	}

	inv.ReplaceAll(resp)
	return inv, nil
}

// Cancel invalidates an unpaid invoice. The response is not inspected and the record is left as is.
func (inv *Invoice) Cancel(ctx context.Context) (*Invoice, error) {
	c, id, err := inv.target()
	if err != nil {
		return inv, err
	}
	if _, err := c.InvoiceRemove(ctx, id); err != nil {
		return inv, err
	}
	return inv, nil
}

// Capture finalizes a hold. The invoice is always reloaded first; when amount is nil the
// freshly loaded amount is captured. The record keeps the pre-capture representation.
func (inv *Invoice) Capture(ctx context.Context, amount *int64, items []any) (*Invoice, error) {
	if _, err := inv.LoadInfo(ctx); err != nil {
		return inv, err
	}
	c, id, err := inv.target()
	if err != nil {
		return inv, err
	}

	req := Params{"invoiceId": id}
	if amount != nil {
		req["amount"] = *amount
	} else {
		loaded, _ := inv.Get("amount")
		req["amount"] = loaded
	}
	if len(items) > 0 {
		req["items"] = items
	}

	resp, err := c.CaptureInvoice(ctx, req)
	if err != nil {
		return inv, err
	}
	if status, ok := present(resp, "status"); ok && stringify(status) != StatusSuccess {
		return inv, contractError(CodeInvoiceCaptureFailed,
			"Invoice can't be captured. Current invoice status is "+inv.Status()+".")
	}
	return inv, nil
}

// Receipt returns the base64-encoded receipt file. The record is not modified.
func (inv *Invoice) Receipt(ctx context.Context) (string, error) {
	c, id, err := inv.target()
	if err != nil {
		return "", err
	}
	resp, err := c.InvoiceReceipt(ctx, id)
	if err != nil {
		return "", err
	}
	file, ok := present(resp, "file")
	if !ok {
		return "", contractError(CodeReceiptUnavailable, "Invoice receipt can't be loaded.")
	}
	return stringify(file), nil
}

// ReceiptBytes is Receipt with the base64 payload decoded.
func (inv *Invoice) ReceiptBytes(ctx context.Context) ([]byte, error) {
	encoded, err := inv.Receipt(ctx)
	if err != nil {
		return nil, err
	}
	out, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, &Error{Kind: KindDecode, Message: "Invoice receipt is not valid base64", StatusCode: 500, Err: err}
	}
	return out, nil
}

// FiscalChecks returns the fiscal checks issued for the invoice. The record is not modified.
func (inv *Invoice) FiscalChecks(ctx context.Context) ([]any, error) {
	c, id, err := inv.target()
	if err != nil {
		return nil, err
	}
	resp, err := c.InvoiceFiscalChecks(ctx, id)
	if err != nil {
		return nil, err
	}
	raw, ok := present(resp, "checks")
	if !ok {
		return nil, contractError(CodeChecksUnavailable, "Invoice fiscal checks can't be loaded.")
	}
	checks, ok := raw.([]any)
	if !ok {
		return nil, contractError(CodeChecksUnavailable, "Invoice fiscal checks can't be loaded.")
	}
	return checks, nil
}

// DirectPayment pays with raw card data. Amount and card fields are checked before any request.
// A 3-D Secure redirect (tdsUrl) is also exposed as PageURL.
func (inv *Invoice) DirectPayment(ctx context.Context, params Params) (*Invoice, error) {
	c, err := inv.gateway()
	if err != nil {
		return inv, err
	}
	if err := validateAmount(params); err != nil {
		return inv, err
	}
	if err := validateCardData(params); err != nil {
		return inv, err
	}

	resp, err := c.InvoicePaymentDirect(ctx, params)
	if err != nil {
		return inv, err
	}
	_, hasID := present(resp, "invoiceId")
	_, hasStatus := present(resp, "status")
	if !hasID || !hasStatus {
		return inv, contractError(CodePaymentFailed, "Invoice can't be payed on Mono.")
	}

	inv.ReplaceAll(resp)
	if tds, ok := present(resp, "tdsUrl"); ok {
		inv.SetPageURL(stringify(tds))
	}
	return inv, nil
}

func (inv *Invoice) target() (*Client, string, error) {
	c, err := inv.gateway()
	if err != nil {
		return nil, "", err
	}
	id := strings.TrimSpace(inv.InvoiceID())
	if id == "" {
		return nil, "", validationError(CodeInvoiceIDMissing, "Invoice id is required.")
	}
	return c, id, nil
}
