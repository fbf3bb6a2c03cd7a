package interfaces

import (
	"context"

	"monopay/internal/domain/entities"
)

//go:generate mockgen -source=acquiring_gateway_interface.go -destination=mocks/acquiring_gateway_mock.go -package=mock_interfaces

// IAcquiringGateway abstracts the monobank acquiring API.
//
// Errors are returned as produced by the SDK (*monopay.Error) so callers can classify them.
type IAcquiringGateway interface {
	Merchant(ctx context.Context) (entities.Merchant, error)
	Statement(ctx context.Context, from, to int64, code string) ([]any, error)
	PublicKey(ctx context.Context) (string, error)

	CreateInvoice(ctx context.Context, params map[string]any) (entities.Invoice, error)
	InvoiceStatus(ctx context.Context, invoiceID string) (entities.Invoice, error)
	Refund(ctx context.Context, invoiceID string) (entities.Invoice, error)
	Cancel(ctx context.Context, invoiceID string) error
	Capture(ctx context.Context, invoiceID string, amount *int64, items []any) (entities.Invoice, error)
	Receipt(ctx context.Context, invoiceID string) ([]byte, error)
	FiscalChecks(ctx context.Context, invoiceID string) ([]any, error)
	DirectPayment(ctx context.Context, params map[string]any) (entities.Invoice, error)
}
