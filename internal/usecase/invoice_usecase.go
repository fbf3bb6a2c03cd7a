package usecase

import (
	"context"
	"errors"
	"strings"

	"monopay/internal/domain/entities"
	"monopay/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidInvoiceID     = errors.New("invalid invoice_id")
	ErrGatewayNotConfigured = errors.New("acquiring gateway not configured")
	ErrJournalNotConfigured = errors.New("operation journal not configured")
	ErrQRCodeUnavailable    = errors.New("invoice payment page unavailable")
)

// IInvoiceUseCase exposes invoice operations against the acquiring gateway.
//
// Invoice state always comes from the gateway; the journal only records what was called.
type IInvoiceUseCase interface {
	Create(ctx context.Context, params map[string]any, withQR bool) (entities.Invoice, error)
	Status(ctx context.Context, invoiceID string) (entities.Invoice, error)
	Refund(ctx context.Context, invoiceID string) (entities.Invoice, error)
	Cancel(ctx context.Context, invoiceID string) error
	Capture(ctx context.Context, invoiceID string, amount *int64, items []any) (entities.Invoice, error)
	Receipt(ctx context.Context, invoiceID string) ([]byte, error)
	FiscalChecks(ctx context.Context, invoiceID string) ([]any, error)
	DirectPayment(ctx context.Context, params map[string]any) (entities.Invoice, error)
	QRCode(ctx context.Context, invoiceID string) ([]byte, error)
	Operations(ctx context.Context, invoiceID string) ([]entities.GatewayOperation, error)
}

type InvoiceUseCase struct {
	gateway interfaces.IAcquiringGateway
	qr      interfaces.IQRGenerator
	journal operationJournal
	logger  *zap.Logger
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(gateway interfaces.IAcquiringGateway, repo interfaces.IGatewayOperationRepository, qr interfaces.IQRGenerator, logger *zap.Logger) *InvoiceUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceUseCase{
		gateway: gateway,
		qr:      qr,
		journal: newOperationJournal(repo, logger),
		logger:  logger,
	}
}

func (u *InvoiceUseCase) Create(ctx context.Context, params map[string]any, withQR bool) (entities.Invoice, error) {
	if u.gateway == nil {
		return entities.Invoice{}, ErrGatewayNotConfigured
	}
	u.logger.Info("[payment][usecase] create start", zap.Any("amount", params["amount"]), zap.Bool("with_qr", withQR))

	inv, err := u.gateway.CreateInvoice(ctx, params)
	u.journal.record(ctx, entities.OperationCreate, "", inv, err)
	if err != nil {
		u.logger.Warn("[payment][usecase] create failed", zap.Error(err))
		return entities.Invoice{}, err
	}

	if withQR {
		if png, qrErr := u.renderQR(inv.PageURL); qrErr != nil {
			// Create still succeeds without the image.
			u.logger.Warn("[payment][usecase] qr render failed", zap.String("invoice_id", inv.InvoiceID), zap.Error(qrErr))
		} else {
			inv.QRCode = png
		}
	}
	u.logger.Info("[payment][usecase] create success", zap.String("invoice_id", inv.InvoiceID))
	return inv, nil
}

func (u *InvoiceUseCase) Status(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	id, err := u.prepare(invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	inv, err := u.gateway.InvoiceStatus(ctx, id)
	u.journal.record(ctx, entities.OperationStatus, id, inv, err)
	if err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (u *InvoiceUseCase) Refund(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	id, err := u.prepare(invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	u.logger.Info("[payment][usecase] refund start", zap.String("invoice_id", id))
	inv, err := u.gateway.Refund(ctx, id)
	u.journal.record(ctx, entities.OperationRefund, id, inv, err)
	if err != nil {
		u.logger.Warn("[payment][usecase] refund failed", zap.String("invoice_id", id), zap.Error(err))
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (u *InvoiceUseCase) Cancel(ctx context.Context, invoiceID string) error {
	id, err := u.prepare(invoiceID)
	if err != nil {
		return err
	}
	err = u.gateway.Cancel(ctx, id)
	u.journal.record(ctx, entities.OperationCancel, id, entities.Invoice{}, err)
	return err
}

func (u *InvoiceUseCase) Capture(ctx context.Context, invoiceID string, amount *int64, items []any) (entities.Invoice, error) {
	id, err := u.prepare(invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	u.logger.Info("[payment][usecase] capture start", zap.String("invoice_id", id), zap.Bool("explicit_amount", amount != nil))
	inv, err := u.gateway.Capture(ctx, id, amount, items)
	u.journal.record(ctx, entities.OperationCapture, id, inv, err)
	if err != nil {
		u.logger.Warn("[payment][usecase] capture failed", zap.String("invoice_id", id), zap.Error(err))
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (u *InvoiceUseCase) Receipt(ctx context.Context, invoiceID string) ([]byte, error) {
	id, err := u.prepare(invoiceID)
	if err != nil {
		return nil, err
	}
	file, err := u.gateway.Receipt(ctx, id)
	u.journal.record(ctx, entities.OperationReceipt, id, entities.Invoice{}, err)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func (u *InvoiceUseCase) FiscalChecks(ctx context.Context, invoiceID string) ([]any, error) {
	id, err := u.prepare(invoiceID)
	if err != nil {
		return nil, err
	}
	checks, err := u.gateway.FiscalChecks(ctx, id)
	u.journal.record(ctx, entities.OperationFiscalChecks, id, entities.Invoice{}, err)
	if err != nil {
		return nil, err
	}
	return checks, nil
}

func (u *InvoiceUseCase) DirectPayment(ctx context.Context, params map[string]any) (entities.Invoice, error) {
	if u.gateway == nil {
		return entities.Invoice{}, ErrGatewayNotConfigured
	}
	u.logger.Info("[payment][usecase] direct payment start", zap.Any("amount", params["amount"]))
	inv, err := u.gateway.DirectPayment(ctx, params)
	u.journal.record(ctx, entities.OperationDirectPayment, "", inv, err)
	if err != nil {
		u.logger.Warn("[payment][usecase] direct payment failed", zap.Error(err))
		return entities.Invoice{}, err
	}
	u.logger.Info("[payment][usecase] direct payment done", zap.String("invoice_id", inv.InvoiceID), zap.String("status", inv.Status))
	return inv, nil
}

// QRCode renders the invoice payment page. The status response carries no pageUrl, so the
// page is taken from the journal first and from the gateway only as a fallback.
func (u *InvoiceUseCase) QRCode(ctx context.Context, invoiceID string) ([]byte, error) {
	id := strings.TrimSpace(invoiceID)
	if id == "" {
		return nil, ErrInvalidInvoiceID
	}

	pageURL := ""
	if ops, err := u.journal.list(ctx, id); err == nil {
		pageURL = latestPageURL(ops)
	} else if !errors.Is(err, ErrJournalNotConfigured) {
		u.logger.Warn("[payment][usecase] journal lookup failed", zap.String("invoice_id", id), zap.Error(err))
	}
	if pageURL == "" {
		inv, err := u.Status(ctx, id)
		if err != nil {
			return nil, err
		}
		pageURL = inv.PageURL
	}
	if pageURL == "" {
		return nil, ErrQRCodeUnavailable
	}
	return u.renderQR(pageURL)
}

func (u *InvoiceUseCase) Operations(ctx context.Context, invoiceID string) ([]entities.GatewayOperation, error) {
	id := strings.TrimSpace(invoiceID)
	if id == "" {
		return nil, ErrInvalidInvoiceID
	}
	return u.journal.list(ctx, id)
}

func (u *InvoiceUseCase) prepare(invoiceID string) (string, error) {
	id := strings.TrimSpace(invoiceID)
	if id == "" {
		return "", ErrInvalidInvoiceID
	}
	if u.gateway == nil {
		return "", ErrGatewayNotConfigured
	}
	return id, nil
}

func (u *InvoiceUseCase) renderQR(pageURL string) ([]byte, error) {
	if u.qr == nil || pageURL == "" {
		return nil, ErrQRCodeUnavailable
	}
	return u.qr.Generate(pageURL)
}

func latestPageURL(ops []entities.GatewayOperation) string {
	var (
		url    string
		latest entities.GatewayOperation
	)
	for _, op := range ops {
		if op.PageURL == "" || op.Outcome != entities.OutcomeSuccess {
			continue
		}
		if url == "" || op.Date.After(latest.Date) {
			url = op.PageURL
			latest = op
		}
	}
	return url
}
