package payments

import (
	"context"
	"errors"

	"monopay/internal/domain/entities"
	"monopay/internal/usecase/interfaces"
	"monopay/pkg/monopay"

	"go.uber.org/zap"
)

var ErrMonobankGatewayNotConfigured = errors.New("monobank gateway not configured")

// MonobankGateway implements IAcquiringGateway on top of the monopay SDK. Each call builds a
// fresh record, so the gateway is safe for concurrent use.
type MonobankGateway struct {
	client *monopay.Client
	logger *zap.Logger
}

var _ interfaces.IAcquiringGateway = (*MonobankGateway)(nil)

func NewMonobankGateway(client *monopay.Client, logger *zap.Logger) (*MonobankGateway, error) {
	if client == nil {
		return nil, ErrMonobankGatewayNotConfigured
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("[payment][gateway] monobank client initialized", zap.Stringer("refund_policy", client.RefundPolicy()))
	return &MonobankGateway{client: client, logger: logger}, nil
}

func (g *MonobankGateway) Merchant(ctx context.Context) (entities.Merchant, error) {
	m, err := monopay.NewMerchant(g.client).Load(ctx)
	if err != nil {
		return entities.Merchant{}, err
	}
	return entities.Merchant{MerchantID: m.MerchantID(), MerchantName: m.MerchantName(), Edrpou: m.Edrpou()}, nil
}

func (g *MonobankGateway) Statement(ctx context.Context, from, to int64, code string) ([]any, error) {
	return monopay.NewMerchant(g.client).Statement(ctx, from, to, code)
}

func (g *MonobankGateway) PublicKey(ctx context.Context) (string, error) {
	return monopay.NewMerchant(g.client).PublicKey(ctx)
}

func (g *MonobankGateway) CreateInvoice(ctx context.Context, params map[string]any) (entities.Invoice, error) {
	inv, err := monopay.NewInvoice(g.client).Create(ctx, monopay.Params(params))
	if err != nil {
		return entities.Invoice{}, err
	}
	g.logger.Debug("[payment][gateway] invoice created", zap.String("invoice_id", inv.InvoiceID()))
	return toInvoice(inv), nil
}

func (g *MonobankGateway) InvoiceStatus(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	inv, err := g.invoice(invoiceID).LoadInfo(ctx)
	if err != nil {
		return entities.Invoice{}, err
	}
	return toInvoice(inv), nil
}

func (g *MonobankGateway) Refund(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	inv, err := g.invoice(invoiceID).Refund(ctx)
	if err != nil {
		return entities.Invoice{}, err
	}
	return toInvoice(inv), nil
}

func (g *MonobankGateway) Cancel(ctx context.Context, invoiceID string) error {
	_, err := g.invoice(invoiceID).Cancel(ctx)
	return err
}

// Capture returns the invoice as loaded right before the capture request.
func (g *MonobankGateway) Capture(ctx context.Context, invoiceID string, amount *int64, items []any) (entities.Invoice, error) {
	inv, err := g.invoice(invoiceID).Capture(ctx, amount, items)
	if err != nil {
		return entities.Invoice{}, err
	}
	return toInvoice(inv), nil
}

func (g *MonobankGateway) Receipt(ctx context.Context, invoiceID string) ([]byte, error) {
	return g.invoice(invoiceID).ReceiptBytes(ctx)
}

func (g *MonobankGateway) FiscalChecks(ctx context.Context, invoiceID string) ([]any, error) {
	return g.invoice(invoiceID).FiscalChecks(ctx)
}

func (g *MonobankGateway) DirectPayment(ctx context.Context, params map[string]any) (entities.Invoice, error) {
	inv, err := monopay.NewInvoice(g.client).DirectPayment(ctx, monopay.Params(params))
	if err != nil {
		return entities.Invoice{}, err
	}
	return toInvoice(inv), nil
}

func (g *MonobankGateway) invoice(invoiceID string) *monopay.Invoice {
	return monopay.NewInvoice(g.client).SetInvoiceID(invoiceID)
}

func toInvoice(inv *monopay.Invoice) entities.Invoice {
	out := entities.Invoice{
		InvoiceID:     inv.InvoiceID(),
		Status:        inv.Status(),
		PageURL:       inv.PageURL(),
		Reference:     inv.Reference(),
		FailureReason: inv.FailureReason(),
		ErrCode:       inv.ErrCode(),
		CreatedDate:   inv.CreatedDate(),
		ModifiedDate:  inv.ModifiedDate(),
		Raw:           inv.Data(),
	}
	out.Amount, _ = inv.Amount()
	out.Ccy, _ = inv.Ccy()
	out.FinalAmount, _ = inv.FinalAmount()
	return out
}
