package response

import (
	"encoding/base64"
	"time"

	"monopay/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type InvoiceResponse struct {
	InvoiceID          string         `json:"invoice_id"`
	Status             string         `json:"status,omitempty"`
	PageURL            string         `json:"page_url,omitempty"`
	Reference          string         `json:"reference,omitempty"`
	Amount             int64          `json:"amount,omitempty"`
	AmountDisplay      string         `json:"amount_display,omitempty"`
	Ccy                int64          `json:"ccy,omitempty"`
	FinalAmount        int64          `json:"final_amount,omitempty"`
	FinalAmountDisplay string         `json:"final_amount_display,omitempty"`
	FailureReason      string         `json:"failure_reason,omitempty"`
	ErrCode            string         `json:"err_code,omitempty"`
	CreatedDate        string         `json:"created_date,omitempty"`
	ModifiedDate       string         `json:"modified_date,omitempty"`
	QRCode             string         `json:"qr_code,omitempty"`
	Details            map[string]any `json:"details,omitempty"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	out := InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		Status:        inv.Status,
		PageURL:       inv.PageURL,
		Reference:     inv.Reference,
		Amount:        inv.Amount,
		Ccy:           inv.Ccy,
		FinalAmount:   inv.FinalAmount,
		FailureReason: inv.FailureReason,
		ErrCode:       inv.ErrCode,
		CreatedDate:   inv.CreatedDate,
		ModifiedDate:  inv.ModifiedDate,
		Details:       inv.Raw,
	}
	if inv.Amount != 0 {
		out.AmountDisplay = FormatMinor(inv.Amount)
	}
	if inv.FinalAmount != 0 {
		out.FinalAmountDisplay = FormatMinor(inv.FinalAmount)
	}
	if len(inv.QRCode) > 0 {
		out.QRCode = base64.StdEncoding.EncodeToString(inv.QRCode)
	}
	return out
}

// FormatMinor renders minor units as a major-unit decimal, e.g. 4250 -> "42.50".
func FormatMinor(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}

type MerchantResponse struct {
	MerchantID   string `json:"merchant_id"`
	MerchantName string `json:"merchant_name"`
	Edrpou       string `json:"edrpou,omitempty"`
}

func FromMerchant(m entities.Merchant) MerchantResponse {
	return MerchantResponse{MerchantID: m.MerchantID, MerchantName: m.MerchantName, Edrpou: m.Edrpou}
}

type StatementResponse struct {
	List []any `json:"list"`
}

type PublicKeyResponse struct {
	Key string `json:"key"`
}

type FiscalChecksResponse struct {
	Checks []any `json:"checks"`
}

type GatewayOperationResponse struct {
	ID            string    `json:"id"`
	Operation     string    `json:"operation"`
	InvoiceID     string    `json:"invoice_id,omitempty"`
	Outcome       string    `json:"outcome"`
	InvoiceStatus string    `json:"invoice_status,omitempty"`
	ErrorKind     string    `json:"error_kind,omitempty"`
	ErrorCode     string    `json:"error_code,omitempty"`
	HTTPStatus    int       `json:"http_status,omitempty"`
	Date          time.Time `json:"date"`
}

func FromGatewayOperations(ops []entities.GatewayOperation) []GatewayOperationResponse {
	out := make([]GatewayOperationResponse, 0, len(ops))
	for _, op := range ops {
		out = append(out, GatewayOperationResponse{
			ID:            op.ID,
			Operation:     string(op.Operation),
			InvoiceID:     op.InvoiceID,
			Outcome:       string(op.Outcome),
			InvoiceStatus: op.InvoiceStatus,
			ErrorKind:     op.ErrorKind,
			ErrorCode:     op.ErrorCode,
			HTTPStatus:    op.HTTPStatus,
			Date:          op.Date,
		})
	}
	return out
}
