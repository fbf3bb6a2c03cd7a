package entities

import "time"

type OperationType string

const (
	OperationMerchant      OperationType = "merchant"
	OperationStatement     OperationType = "statement"
	OperationPublicKey     OperationType = "pubkey"
	OperationCreate        OperationType = "create"
	OperationStatus        OperationType = "status"
	OperationRefund        OperationType = "refund"
	OperationCancel        OperationType = "cancel"
	OperationCapture       OperationType = "capture"
	OperationReceipt       OperationType = "receipt"
	OperationFiscalChecks  OperationType = "fiscal_checks"
	OperationDirectPayment OperationType = "direct_payment"
)

type OperationOutcome string

const (
	OutcomeSuccess OperationOutcome = "success"
	OutcomeFailure OperationOutcome = "failure"
)

// GatewayOperation is one journal entry describing a call the service made to the gateway.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (invoice_id-index): invoice_id
//
// Merchant-level calls have no invoice id and are not visible through the index.

type GatewayOperation struct {
	ID            string           `json:"id"`
	Operation     OperationType    `json:"operation"`
	InvoiceID     string           `json:"invoice_id,omitempty"`
	Outcome       OperationOutcome `json:"outcome"`
	InvoiceStatus string           `json:"invoice_status,omitempty"`
	PageURL       string           `json:"page_url,omitempty"`
	ErrorKind     string           `json:"error_kind,omitempty"`
	ErrorCode     string           `json:"error_code,omitempty"`
	HTTPStatus    int              `json:"http_status,omitempty"`
	Date          time.Time        `json:"date"`
}
