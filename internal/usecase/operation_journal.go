package usecase

import (
	"context"
	"errors"
	"time"

	"monopay/internal/domain/entities"
	"monopay/internal/usecase/interfaces"
	"monopay/pkg/monopay"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// operationJournal appends one GatewayOperation per gateway call. Write failures are
// logged and swallowed: the journal must never change the outcome of the call it describes.
type operationJournal struct {
	repo   interfaces.IGatewayOperationRepository
	logger *zap.Logger
	now    func() time.Time
}

func newOperationJournal(repo interfaces.IGatewayOperationRepository, logger *zap.Logger) operationJournal {
	if logger == nil {
		logger = zap.NewNop()
	}
	return operationJournal{repo: repo, logger: logger, now: time.Now}
}

func (j operationJournal) record(ctx context.Context, op entities.OperationType, invoiceID string, inv entities.Invoice, callErr error) {
	if j.repo == nil {
		return
	}
	entry := newGatewayOperation(op, invoiceID, inv, callErr, j.now().UTC())
	if _, err := j.repo.Create(ctx, entry); err != nil {
		j.logger.Warn("[payment][journal] write failed",
			zap.String("operation", string(op)),
			zap.String("invoice_id", entry.InvoiceID),
			zap.Error(err),
		)
	}
}

func newGatewayOperation(op entities.OperationType, invoiceID string, inv entities.Invoice, callErr error, at time.Time) entities.GatewayOperation {
	entry := entities.GatewayOperation{
		ID:        uuid.NewString(),
		Operation: op,
		InvoiceID: invoiceID,
		Outcome:   entities.OutcomeSuccess,
		Date:      at,
	}
	if entry.InvoiceID == "" {
		entry.InvoiceID = inv.InvoiceID
	}
	if callErr != nil {
		entry.Outcome = entities.OutcomeFailure
		entry.ErrorKind = string(monopay.KindOf(callErr))
		entry.ErrorCode = string(monopay.CodeOf(callErr))
		var sdkErr *monopay.Error
		if errors.As(callErr, &sdkErr) {
			entry.HTTPStatus = sdkErr.StatusCode
		}
		return entry
	}
	entry.InvoiceStatus = inv.Status
	entry.PageURL = inv.PageURL
	return entry
}

func (j operationJournal) list(ctx context.Context, invoiceID string) ([]entities.GatewayOperation, error) {
	if j.repo == nil {
		return nil, ErrJournalNotConfigured
	}
	return j.repo.ListByInvoiceID(ctx, invoiceID)
}
