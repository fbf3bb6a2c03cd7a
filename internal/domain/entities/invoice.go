package entities

// Invoice is a snapshot of a gateway invoice as returned to service callers.
//
// The service never stores invoices; every snapshot is built from a live gateway response.
// Raw keeps the full response so undocumented fields are not lost.

type Invoice struct {
	InvoiceID     string         `json:"invoice_id"`
	Status        string         `json:"status,omitempty"`
	PageURL       string         `json:"page_url,omitempty"`
	Reference     string         `json:"reference,omitempty"`
	Amount        int64          `json:"amount,omitempty"`
	Ccy           int64          `json:"ccy,omitempty"`
	FinalAmount   int64          `json:"final_amount,omitempty"`
	FailureReason string         `json:"failure_reason,omitempty"`
	ErrCode       string         `json:"err_code,omitempty"`
	CreatedDate   string         `json:"created_date,omitempty"`
	ModifiedDate  string         `json:"modified_date,omitempty"`
	Raw           map[string]any `json:"raw,omitempty"`

	// QRCode is a PNG of PageURL, filled only when requested.
	QRCode []byte `json:"-"`
}

type Merchant struct {
	MerchantID   string `json:"merchant_id"`
	MerchantName string `json:"merchant_name"`
	Edrpou       string `json:"edrpou,omitempty"`
}
